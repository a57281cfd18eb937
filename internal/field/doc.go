// Package field validates and normalizes raw external values (form fields,
// rehydrated database columns) for the storefront value objects.
//
// Each validator takes the field name and an untyped raw value and either
// returns the normalized value or a *Error whose kind is ErrMalformed or
// ErrOutOfRange.
package field
