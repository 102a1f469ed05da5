package dedupe

import (
	"bufio"
	"errors"
	"io"

	"github.com/lanrat/dedupe/atomicfile"
)

// stdout IO buffer size
var writeBufferSize = 1 << 16 // 64k

// WriteLines writes each line followed by '\n' to w.
// Output already flushed before an error is not retracted.
func WriteLines(w io.Writer, lines []string) error {
	bufWriter := bufio.NewWriterSize(w, writeBufferSize)
	if err := writeLines(bufWriter, lines); err != nil {
		return NewOutputError(err, "write", "")
	}
	if err := bufWriter.Flush(); err != nil {
		return NewOutputError(err, "write", "")
	}
	return nil
}

// WriteFile atomically replaces path with lines, each followed by '\n'.
// On any failure the existing file at path is left unchanged.
func WriteFile(path string, lines []string) error {
	err := atomicfile.WriteFile(path, func(w *atomicfile.Writer) error {
		return writeLines(w, lines)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, atomicfile.ErrNoParent) {
		return NewConfigError("Output", path, "output path has no parent directory")
	}
	var aerr *atomicfile.Error
	if errors.As(err, &aerr) {
		return NewOutputError(aerr.Err, aerr.Op, path)
	}
	return NewOutputError(err, "write", path)
}

func writeLines(w io.StringWriter, lines []string) error {
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}
