package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrInvalidValue is matched by every InvalidValueError through errors.Is.
var ErrInvalidValue = stdErrors.New("invalid value")

// InvalidValueError reports a name that does not belong to an enumeration
// (foreground, background, format, border).
type InvalidValueError struct {
	Value string
	Enum  string
}

// NewInvalidValueError constructs an InvalidValueError.
func NewInvalidValueError(value, enum string) error {
	return &InvalidValueError{Value: value, Enum: enum}
}

func (e *InvalidValueError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%q is not a valid %s value", e.Value, e.Enum)
}

// Is lets errors.Is(err, ErrInvalidValue) succeed.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// WriteError wraps a failed write against a named sink.
type WriteError struct {
	Target string
	Err    error
}

// NewWriteError constructs a WriteError. A nil err yields nil.
func NewWriteError(target string, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{Target: target, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("write to %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("write: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML or CSV parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
