package domain

import "fmt"

// ConstructError is returned by the New* constructors when a field is
// rejected. It names the entity being built and wraps the field-level
// rejection, so errors.Is(err, field.ErrOutOfRange) and errors.As into
// *field.Error both work on it.
type ConstructError struct {
	Entity string
	Err    error
}

// Error implements the error interface.
func (e *ConstructError) Error() string {
	return fmt.Sprintf("unable to construct %s: %v", e.Entity, e.Err)
}

// Unwrap returns the field-level rejection.
func (e *ConstructError) Unwrap() error { return e.Err }

// construct runs setters in order and stops at the first rejection.
func construct(entity string, setters ...func() error) error {
	for _, set := range setters {
		if err := set(); err != nil {
			return &ConstructError{Entity: entity, Err: err}
		}
	}
	return nil
}
