package dedupe

import (
	"fmt"
)

// InputError represents a failure to open or read the line source
type InputError struct {
	// Path is the input file, empty for standard input
	Path string
	// Err is the underlying I/O error
	Err error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("input error reading %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("input error reading standard input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates an InputError wrapping the underlying I/O error
func NewInputError(err error, path string) error {
	return &InputError{Path: path, Err: err}
}

// OutputError represents a failure while delivering lines to the sink
type OutputError struct {
	// Path is the target file, empty for standard output
	Path string
	// Op names the step that failed, ex: "write", "rename"
	Op string
	// Err is the underlying I/O error
	Err error
}

func (e *OutputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("output error during %s on %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("output error during %s on standard output: %v", e.Op, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// NewOutputError creates an OutputError wrapping the underlying I/O error
func NewOutputError(err error, op, path string) error {
	return &OutputError{Path: path, Op: op, Err: err}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}
