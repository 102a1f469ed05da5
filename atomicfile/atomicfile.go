// Package atomicfile implements crash-safe replacement of a file on disk.
// Data is written to a temporary file created in the same directory as the target
// and renamed over the target only once every byte has been written and synced,
// so the target path only ever shows the old content or the complete new content.
package atomicfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// file IO buffer size for the temp file
	fileBufferSize = 1 << 16 // 64k
	// permissions for targets that do not exist yet
	defaultPerm os.FileMode = 0644
	// infix between the target base name and the random temp suffix
	tempFilenameInfix = ".dedupe-*"
)

var (
	// ErrNoParent is returned when the target path has no parent directory
	ErrNoParent = errors.New("atomicfile: target path has no parent directory")
	// ErrNotDir is returned when the parent of the target is not a directory
	ErrNotDir = errors.New("atomicfile: parent is not a directory")
	// ErrClosed is returned when writing to a Writer that was committed or aborted
	ErrClosed = errors.New("atomicfile: writer already closed")
)

// Error records the step and path of a failed atomic write
type Error struct {
	Op   string // "create", "write", "sync", "close", "chmod" or "rename"
	Path string // target path
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("atomicfile: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Writer buffers writes into a temp file next to its target.
// Commit moves the temp file onto the target, Close aborts and removes it.
type Writer struct {
	target    string
	perm      os.FileMode
	file      *os.File
	bufWriter *bufio.Writer
	done      bool
}

// New creates a temp file in the directory of target and returns a Writer for it.
// The target itself is not touched until Commit.
// If target is a symlink the file it points to is replaced and the link is kept;
// a dangling link is replaced by a regular file.
func New(target string) (*Writer, error) {
	if !HasParent(target) {
		return nil, &Error{Op: "create", Path: target, Err: ErrNoParent}
	}
	target = resolveLink(target)
	dir := filepath.Dir(target)
	if err := isDirectoryUsable(dir); err != nil {
		return nil, &Error{Op: "create", Path: target, Err: err}
	}

	var w Writer
	var err error
	w.target = target
	w.perm = targetPerm(target)
	w.file, err = os.CreateTemp(dir, "."+filepath.Base(target)+tempFilenameInfix)
	if err != nil {
		return nil, &Error{Op: "create", Path: target, Err: err}
	}
	w.bufWriter = bufio.NewWriterSize(w.file, fileBufferSize)
	return &w, nil
}

// Name returns the path of the temp file
func (w *Writer) Name() string {
	return w.file.Name()
}

// Target returns the path the temp file will be renamed to, with symlinks resolved
func (w *Writer) Target() string {
	return w.target
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, ErrClosed
	}
	return w.bufWriter.Write(p)
}

// WriteString writes s to the temp file
func (w *Writer) WriteString(s string) (int, error) {
	if w.done {
		return 0, ErrClosed
	}
	return w.bufWriter.WriteString(s)
}

// Commit flushes and syncs the temp file and renames it onto the target.
// On failure the temp file is removed and the target is left as it was.
func (w *Writer) Commit() error {
	if w.done {
		return ErrClosed
	}
	w.done = true
	tmpPath := w.file.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := w.bufWriter.Flush(); err != nil {
		w.file.Close()
		return &Error{Op: "write", Path: w.target, Err: err}
	}
	w.bufWriter = nil
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return &Error{Op: "sync", Path: w.target, Err: err}
	}
	if err := w.file.Close(); err != nil {
		return &Error{Op: "close", Path: w.target, Err: err}
	}
	if err := os.Chmod(tmpPath, w.perm); err != nil {
		return &Error{Op: "chmod", Path: w.target, Err: err}
	}
	if err := os.Rename(tmpPath, w.target); err != nil {
		return &Error{Op: "rename", Path: w.target, Err: err}
	}

	success = true
	return nil
}

// Close aborts the write, closes and removes the temp file.
// Calling Close after Commit does nothing, so it is safe to defer.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.bufWriter = nil
	err := w.file.Close()
	rmErr := os.Remove(w.file.Name())
	if err != nil {
		return err
	}
	return rmErr
}

// WriteFile atomically replaces target with whatever fn writes to the Writer.
// If fn returns an error nothing is committed and the error is returned.
func WriteFile(target string, fn func(w *Writer) error) error {
	w, err := New(target)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := fn(w); err != nil {
		return err
	}
	return w.Commit()
}
