package api

import (
	"net/url"

	"github.com/phrazzld/storefront-kit/internal/csrf"
)

// SubmitRequest is the url-encoded body posted by the demo form. The account
// fields are optional, but when one is given the other must be too.
type SubmitRequest struct {
	CSRFName  string
	CSRFToken string
	Username  string `validate:"required_with=Password,max=254"`
	Password  string `validate:"required_with=Username,max=1024"`
}

func submitRequestFromForm(form url.Values) SubmitRequest {
	return SubmitRequest{
		CSRFName:  form.Get(csrf.NameField),
		CSRFToken: form.Get(csrf.TokenField),
		Username:  form.Get("username"),
		Password:  form.Get("password"),
	}
}

// HasAccount reports whether account credentials were submitted.
func (r SubmitRequest) HasAccount() bool {
	return r.Username != "" || r.Password != ""
}
