package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrShape indicates a document node has an unexpected kind.
	ErrShape = errors.New("shape error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
// This covers YAML/JSON deserialization errors only; read failures are
// reported as the underlying os error.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Cause is the decoder error describing the failure
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ShapeError reports a node whose kind does not fit where it appears in the
// document, such as a path item that is a string or a tags entry that is
// not a mapping.
type ShapeError struct {
	// Path is the dotted location of the node (e.g., "paths./pets.get")
	Path string
	// Expected is the node kind required at Path
	Expected string
	// Actual is the node kind found at Path
	Actual string
	// Line is the 1-based source line of the node (0 if unknown)
	Line int
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	return msg
}

// Unwrap returns nil as ShapeError has no underlying cause.
func (e *ShapeError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
