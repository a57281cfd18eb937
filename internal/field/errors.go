package field

import (
	"errors"
	"fmt"
)

// Rejection kinds. Every *Error unwraps to exactly one of these.
var (
	// ErrMalformed is returned when a value cannot be interpreted as the
	// expected primitive type or does not match the required syntax.
	ErrMalformed = errors.New("malformed input")

	// ErrOutOfRange is returned when a value has the right primitive type but
	// violates a domain constraint such as positivity or calendar validity.
	ErrOutOfRange = errors.New("value out of range")
)

// Error reports a rejected field value. It carries the field name and the
// offending raw value so callers can diagnose which input failed.
type Error struct {
	Field string
	Value any
	Kind  error
	msg   string
}

func malformed(name string, value any, format string, args ...any) *Error {
	return &Error{Field: name, Value: value, Kind: ErrMalformed, msg: fmt.Sprintf(format, args...)}
}

func outOfRange(name string, value any, format string, args ...any) *Error {
	return &Error{Field: name, Value: value, Kind: ErrOutOfRange, msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Kind)
}

// Unwrap exposes the rejection kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }
