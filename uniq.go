package dedupe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FilterChan returns a channel carrying the lines from in that p keeps, in input order,
// and an error channel. It is the streaming counterpart of Filter for callers that already
// produce lines on a channel.
//
// The output channel is closed when in is closed or ctx is done. The error channel then
// receives ctx.Err() if the context ended the stream, and is closed.
func FilterChan(ctx context.Context, in <-chan string, p Predicate) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	var errGroup *errgroup.Group
	errGroup, ctx = errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		defer close(out)
		for {
			select {
			case line, ok := <-in:
				if !ok {
					return nil
				}
				if !p.Keep(line) {
					continue
				}
				select {
				case out <- line:
				case <-ctx.Done():
					return ctx.Err()
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	go func() {
		if err := errGroup.Wait(); err != nil {
			errChan <- err
		}
		close(errChan)
	}()

	return out, errChan
}
