package dedupe

import (
	"io"
	"os"
	"strings"
)

// ReadLines reads all of r into a single buffer and returns its trimmed lines.
// Every returned line is a substring of that buffer.
func ReadLines(r io.Reader) ([]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, NewInputError(err, "")
	}
	return SplitLines(string(buf)), nil
}

// ReadFile reads the named file, or standard input when path is empty or "-",
// and returns its trimmed lines
func ReadFile(path string) ([]string, error) {
	if path == "" || path == "-" {
		return ReadLines(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, NewInputError(err, path)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, NewInputError(err, path)
	}
	return SplitLines(string(buf)), nil
}

// SplitLines splits buf on '\n' and trims surrounding whitespace (including '\r') from each line.
// A final line without a terminator is kept, a terminator at the very end does not add an empty line.
func SplitLines(buf string) []string {
	if buf == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(buf, "\n")+1)
	for len(buf) > 0 {
		i := strings.IndexByte(buf, '\n')
		if i < 0 {
			lines = append(lines, strings.TrimSpace(buf))
			break
		}
		lines = append(lines, strings.TrimSpace(buf[:i]))
		buf = buf[i+1:]
	}
	return lines
}
