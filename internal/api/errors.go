package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/storefront-kit/internal/csrf"
	"github.com/phrazzld/storefront-kit/internal/field"
	"github.com/phrazzld/storefront-kit/internal/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// CSRF verification failures are terminal for the request
	case errors.Is(err, csrf.ErrAuthorizationMismatch):
		return http.StatusForbidden

	// Rejected field values
	case errors.Is(err, field.ErrMalformed),
		errors.Is(err, field.ErrOutOfRange):
		return http.StatusBadRequest

	// Retry budget of the session backend ran out
	case errors.Is(err, session.ErrConflict):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Field rejections name the field and the kind of
// problem but never echo the submitted value.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	var fieldErr *field.Error
	switch {
	case errors.Is(err, csrf.ErrNoSuchContext):
		return "unknown or already used CSRF context"

	case errors.Is(err, csrf.ErrTokenMismatch):
		return "CSRF token does not match"

	case errors.Is(err, csrf.ErrAuthorizationMismatch):
		return "authorization mismatch"

	case errors.As(err, &fieldErr):
		return fmt.Sprintf("invalid %s: %v", fieldErr.Field, fieldErr.Kind)

	case errors.Is(err, session.ErrConflict):
		return "session busy, please retry"

	default:
		return "an unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'SubmitRequest.Password' Error:Field validation for 'Password' failed on the 'required_with' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				name := strings.ToLower(fieldParts[1])
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("invalid %s: %s", name, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("invalid %s", name)
			}
		}
	}

	return "validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "required_with":
		return "required field"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
