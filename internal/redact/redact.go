// Package redact removes sensitive information from strings before they are
// logged. Error messages in this service can carry CSRF tokens, password
// hashes and salts, customer email addresses, Redis URLs with credentials and
// file paths; none of these may reach a log line or a response body verbatim.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedDigestPlaceholder     = "[REDACTED_DIGEST]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; earlier rules consume text later ones would also match.
var rules = []rule{
	// userinfo part of redis:// and rediss:// URLs
	{regexp.MustCompile(`(?i)\brediss?://[^@\s/]+@`), RedactedCredentialPlaceholder},

	// key=value and key: value assignments of secrets, including the CSRF
	// form fields
	{
		regexp.MustCompile(`(?i)(csrf_?(?:name|token)|token|secret|password|passwd|salt)(['"]?\s*[:=]\s*['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},

	// hex digests: CSRF names (32) and tokens (64), salts (64), password
	// hashes (128), auth tokens (32)
	{regexp.MustCompile(`\b[0-9a-fA-F]{32,}\b`), RedactedDigestPlaceholder},

	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},

	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
