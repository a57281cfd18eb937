package shared

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxFormBytes caps the size of a url-encoded request body.
const MaxFormBytes = 64 << 10

// Global validator instance for reuse
var validate = validator.New()

// ParseForm limits the body to MaxFormBytes and parses it into r.PostForm.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	}
	return r.ParseForm()
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}
