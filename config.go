package dedupe

import (
	"github.com/lanrat/dedupe/atomicfile"
)

// Mode selects the base predicate policy
type Mode int

const (
	// Unique keeps the first occurrence of every distinct line
	Unique Mode = iota
	// Invert keeps every occurrence of a line except the first
	Invert
)

func (m Mode) String() string {
	switch m {
	case Unique:
		return "unique"
	case Invert:
		return "invert"
	default:
		return "unknown"
	}
}

// Options holds the settings for a single run
type Options struct {
	Mode        Mode   // Unique or Invert
	AllowBlanks bool   // blank lines always survive and are never recorded as seen
	Sort        bool   // case-insensitive stable sort after filtering
	Input       string // input path, empty or "-" for standard input
	Output      string // output path, empty or "-" for standard output
	Overwrite   bool   // write the result back to Input, Output is ignored
}

// DefaultOptions returns the options used when none are provided:
// unique mode, standard input to standard output
func DefaultOptions() *Options {
	return &Options{
		Mode: Unique,
	}
}

// mergeOptions returns the defaults if o is nil, and normalizes "-" targets
func mergeOptions(o *Options) *Options {
	if o == nil {
		return DefaultOptions()
	}
	c := *o
	if c.Input == "-" {
		c.Input = ""
	}
	if c.Output == "-" {
		c.Output = ""
	}
	return &c
}

// Validate checks the options for settings that can never succeed
func (o *Options) Validate() error {
	c := mergeOptions(o)
	if c.Mode != Unique && c.Mode != Invert {
		return NewConfigError("Mode", int(c.Mode), "unknown mode")
	}
	if c.Overwrite && c.Input == "" {
		return NewConfigError("Overwrite", true, "overwrite requires an input path")
	}
	if dst := c.Destination(); dst != "" && !atomicfile.HasParent(dst) {
		return NewConfigError("Output", dst, "output path has no parent directory")
	}
	return nil
}

// Destination returns the resolved output path, or the empty string for standard output.
// Overwrite takes precedence over any explicit output path.
func (o *Options) Destination() string {
	c := mergeOptions(o)
	if c.Overwrite {
		return c.Input
	}
	return c.Output
}
