package parityerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrLookup indicates an internal reference failed to resolve.
	ErrLookup = errors.New("lookup error")

	// ErrMismatch indicates a compatibility assertion failed.
	ErrMismatch = errors.New("compatibility mismatch")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an API description document.
// This includes JSON/YAML deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LookupError represents a failure to resolve an internal reference of the
// form #/a/b/c within a loaded document. Callers that expect an absent
// schema (request-body lookups) recover from this error by substituting an
// empty descriptor; everywhere else it indicates a malformed document.
type LookupError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// MissingKey is the path segment that was not found
	MissingKey string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LookupError) Error() string {
	msg := "lookup error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.MissingKey != "" {
		msg += fmt.Sprintf(" (missing key: %s)", e.MissingKey)
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
func (e *LookupError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// MismatchError represents an aggregate compatibility failure: one or more
// facets differed between the open and hosted documents. It is returned by
// surfaces that need a single error for a whole run (CLI exit paths); the
// per-entry detail lives in checker.Finding values.
type MismatchError struct {
	// Count is the number of individual mismatches found
	Count int
	// Message summarizes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *MismatchError) Error() string {
	msg := "compatibility mismatch"
	if e.Count > 0 {
		msg = fmt.Sprintf("%d compatibility mismatch(es)", e.Count)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MismatchError has no underlying cause.
func (e *MismatchError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
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
