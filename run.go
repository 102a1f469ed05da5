// Package dedupe implements a line deduplication filter.
// Lines are read in full from a file or standard input, passed once through a
// Predicate that keeps either the first occurrence of every line or only the
// repeats, optionally sorted ignoring case, and written to standard output or
// atomically back to a file.
package dedupe

import (
	"io"
	"os"
)

// Logger is the subset of a leveled logger used by Runner.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}

// Runner wires the standard streams and logger for a run.
// Nil fields fall back to the process's stdin, stdout and no logging.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger Logger
}

// Run is Runner.Run using the process's standard streams
func Run(opts *Options) error {
	var r Runner
	return r.Run(opts)
}

// Run reads the input, filters it, sorts it if asked and delivers it to the destination.
// Either the output is fully written or an error is returned; a failed file
// replacement leaves the previous file content in place.
func (r *Runner) Run(opts *Options) error {
	o := mergeOptions(opts)
	if err := o.Validate(); err != nil {
		return err
	}
	log := r.logger()

	lines, err := r.read(o.Input)
	if err != nil {
		return err
	}
	log.Debug("read input", "input", displayName(o.Input), "lines", len(lines))

	kept := Filter(lines, NewPredicate(o))
	log.Debug("filtered lines", "mode", o.Mode.String(), "allow_blanks", o.AllowBlanks,
		"kept", len(kept), "dropped", len(lines)-len(kept))

	if o.Sort {
		SortFold(kept)
		log.Debug("sorted lines", "lines", len(kept))
	}

	dst := o.Destination()
	if dst == "" {
		return WriteLines(r.stdout(), kept)
	}
	if err := WriteFile(dst, kept); err != nil {
		return err
	}
	log.Info("replaced file", "path", dst, "lines", len(kept))
	return nil
}

func (r *Runner) read(path string) ([]string, error) {
	if path != "" {
		return ReadFile(path)
	}
	if r.Stdin == nil {
		return ReadLines(os.Stdin)
	}
	return ReadLines(r.Stdin)
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}
