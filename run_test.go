package dedupe

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, opts *Options, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := Runner{Stdin: strings.NewReader(stdin), Stdout: &out}
	err := r.Run(opts)
	return out.String(), err
}

func TestRunStdinToStdout(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		input string
		want  string
	}{
		{"unique", Options{}, "a\nb\na\nc\nb\n", "a\nb\nc\n"},
		{"invert", Options{Mode: Invert}, "a\na\na\nb\n", "a\na\n"},
		{"sort", Options{Sort: true}, "banana\nApple\napple\nbanana\n", "Apple\napple\nbanana\n"},
		{"sort after invert", Options{Mode: Invert, Sort: true}, "b\nB\nb\na\na\n", "a\nb\n"},
		{"allow blanks", Options{AllowBlanks: true}, "a\n\na\n\n", "a\n\n\n"},
		{"trimmed", Options{}, "  a\r\na  \n", "a\n"},
		{"no trailing newline", Options{}, "a\nb", "a\nb\n"},
		{"empty", Options{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runWith(t, &tt.opts, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("x\ny\nx\n"), 0644))

	stdout, err := runWith(t, &Options{Input: in, Output: out}, "")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", string(b))

	b, err = os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\nx\n", string(b), "input must not change")
}

func TestRunOverwriteIgnoresOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("c\nB\na\nc\n"), 0644))

	_, err := runWith(t, &Options{Input: in, Output: out, Overwrite: true, Sort: true}, "")
	require.NoError(t, err)

	b, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "a\nB\nc\n", string(b))

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output path must be ignored with overwrite")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runWith(t, &Options{Input: filepath.Join(dir, "missing.txt")}, "")
	var inErr *InputError
	assert.ErrorAs(t, err, &inErr)

	_, err = runWith(t, &Options{Overwrite: true}, "a\n")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = runWith(t, &Options{Output: filepath.Join(dir, "nodir", "out.txt")}, "a\n")
	var outErr *OutputError
	assert.ErrorAs(t, err, &outErr)
}

func TestRunLogs(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := Runner{Stdin: strings.NewReader("a\na\nb\n"), Stdout: &out, Logger: logger}

	require.NoError(t, r.Run(&Options{Mode: Invert}))
	assert.Equal(t, "a\n", out.String())
	assert.Contains(t, logs.String(), "<stdin>")
	assert.Contains(t, logs.String(), "mode=invert")
	assert.Contains(t, logs.String(), "kept=1")
	assert.Contains(t, logs.String(), "dropped=2")
}
