// Package cli implements the dedupe command line on top of the dedupe library.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lanrat/dedupe"
	"github.com/lanrat/dedupe/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the dedupe command.
// Streams are taken from the command (SetIn/SetOut/SetErr) so callers can redirect them.
func NewRootCommand() *cobra.Command {
	var opts dedupe.Options
	var invert bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "dedupe [flags] [input] [output]",
		Short: "Remove duplicate lines from text",
		Long: `dedupe prints the first occurrence of every distinct line of its input,
or with --invert only the lines that repeat. Lines are trimmed of surrounding
whitespace and compared exactly.

Input defaults to standard input and output to standard output; "-" names
either explicitly. With --overwrite the input file is replaced atomically.`,
		Args:          positionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !logging.IsValidLevel(logLevel) {
				return dedupe.NewConfigError("log-level", logLevel,
					"must be one of "+strings.Join(logging.ValidLevels(), ", "))
			}
			if len(args) > 0 && args[0] != "-" {
				opts.Input = args[0]
			}
			if len(args) > 1 {
				opts.Output = args[1]
			}
			if invert {
				opts.Mode = dedupe.Invert
			}

			logger := logging.New(cmd.ErrOrStderr(), logLevel).With("input", inputName(opts.Input))
			if opts.Input == "" && isTerminal(cmd.InOrStdin()) {
				logger.Info("reading standard input until EOF")
			}
			if opts.Overwrite && opts.Output != "" && opts.Output != "-" {
				logger.Warn("ignoring output path, overwriting input", "output", opts.Output)
			}

			r := dedupe.Runner{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Logger: logger,
			}
			return r.Run(&opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.Overwrite, "overwrite", false, "write the result back to the input file, ignoring any output path")
	flags.BoolVar(&opts.Sort, "sort", false, "sort the output ignoring case, keeping the input order of equal lines")
	flags.BoolVar(&invert, "invert", false, "print only repeated lines, every occurrence after the first")
	flags.BoolVar(&opts.AllowBlanks, "allow-blanks", false, "always print blank lines and never count them as duplicates")
	flags.StringVar(&logLevel, "log-level", logging.DefaultLevel, "diagnostics level on stderr: "+strings.Join(logging.ValidLevels(), ", "))

	return cmd
}

func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return dedupe.NewConfigError("args", strings.Join(args, " "), "expected at most an input and an output path")
	}
	return nil
}

func inputName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the command with args against the given streams and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
	return 1
}
