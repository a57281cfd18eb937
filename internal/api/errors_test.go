package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/storefront-kit/internal/csrf"
	"github.com/phrazzld/storefront-kit/internal/domain"
	"github.com/phrazzld/storefront-kit/internal/field"
	"github.com/phrazzld/storefront-kit/internal/session"
)

func fieldError(t *testing.T) error {
	t.Helper()
	_, err := field.PositiveID("product id", 0)
	require.Error(t, err)
	return err
}

func constructError(t *testing.T) error {
	t.Helper()
	_, err := domain.NewUser(nil, "not-an-email", nil, nil, nil)
	require.Error(t, err)
	return err
}

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "no such CSRF context",
			err:            csrf.ErrNoSuchContext,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "wrapped token mismatch",
			err:            fmt.Errorf("submit: %w", csrf.ErrTokenMismatch),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "field error",
			err:            fieldError(t),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "entity construction error",
			err:            constructError(t),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "session conflict",
			err:            fmt.Errorf("verify: %w", session.ErrConflict),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown error",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "an unexpected error occurred"},
		{"no such context", csrf.ErrNoSuchContext, "unknown or already used CSRF context"},
		{"token mismatch", csrf.ErrTokenMismatch, "CSRF token does not match"},
		{"bare authorization mismatch", csrf.ErrAuthorizationMismatch, "authorization mismatch"},
		{"field error", fieldError(t), "invalid product id: value out of range"},
		{"construct error", constructError(t), "invalid email: malformed input"},
		{"session conflict", session.ErrConflict, "session busy, please retry"},
		{"internal error", errors.New("redis://u:p@host exploded"), "an unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverEchoesInput(t *testing.T) {
	_, err := domain.NewUser(nil, "<script>alert(1)</script>", nil, nil, nil)
	require.Error(t, err)

	msg := GetSafeErrorMessage(err)
	assert.NotContains(t, msg, "script")
}

func TestSanitizeValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(SubmitRequest{Username: "bob@example.com"})
	require.Error(t, err)
	assert.Equal(t, "invalid password: required field", SanitizeValidationError(err))

	assert.Equal(t, "validation error", SanitizeValidationError(errors.New("something else")))
}
