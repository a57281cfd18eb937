package shared

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseForm(t *testing.T) {
	t.Run("url-encoded body", func(t *testing.T) {
		body := url.Values{"csrfName": {"abc"}, "username": {"bob"}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		require.NoError(t, ParseForm(httptest.NewRecorder(), req))
		assert.Equal(t, "abc", req.PostForm.Get("csrfName"))
		assert.Equal(t, "bob", req.PostForm.Get("username"))
	})

	t.Run("oversized body", func(t *testing.T) {
		body := "csrfName=" + strings.Repeat("a", MaxFormBytes+1)
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.Error(t, ParseForm(httptest.NewRecorder(), req))
	})
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return assert.AnError
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type account struct {
		Username string `validate:"required_with=Password"`
		Password string `validate:"required_with=Username"`
	}

	assert.NoError(t, ValidateRequest(account{}))
	assert.NoError(t, ValidateRequest(account{Username: "u", Password: "p"}))
	assert.Error(t, ValidateRequest(account{Username: "u"}))

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{}), assert.AnError)
}
