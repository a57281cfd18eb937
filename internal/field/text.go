package field

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Text validates and normalizes a required free-text value.
//
// Normalization is not output escaping: the result may still contain
// characters such as '<' or '&' in text position, and callers must escape for
// the context they render into.
func Text(name string, raw any) (string, error) {
	s, err := asString(name, raw)
	if err != nil {
		return "", err
	}
	return Sanitize(s), nil
}

// OptionalText is Text for columns that accept NULL.
func OptionalText(name string, raw any) (*string, error) {
	if isNil(raw) {
		return nil, nil
	}
	s, err := Text(name, raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Sanitize converts s to NFC, drops markup (tags, comments, doctypes),
// removes control characters other than newline and tab and trims
// surrounding whitespace.
func Sanitize(s string) string {
	s = stripMarkup(norm.NFC.String(s))
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func stripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var out bytes.Buffer
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or an unreadable remainder; either way the rest is dropped
			return out.String()
		case html.TextToken:
			out.Write(z.Raw())
		}
	}
}

func asString(name string, raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case *string:
		if v != nil {
			return *v, nil
		}
	case []byte:
		return string(v), nil
	}
	return "", malformed(name, raw, "%s %v is not a string", name, raw)
}
