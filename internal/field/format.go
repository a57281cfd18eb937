package field

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Digest widths in hex characters.
const (
	PasswordHashLength = 128 // SHA-512 output
	SaltLength         = 64
	AuthTokenLength    = 32
)

// DateTimeLayout is the external date-time format, as produced by SQL DATETIME columns.
const DateTimeLayout = "2006-01-02 15:04:05"

var (
	dateTimePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})$`)
	statePattern    = regexp.MustCompile(`^[A-Z]{2}$`)
	zipCodePattern  = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	passwordHashPattern = regexp.MustCompile(`^[\da-f]{128}$`)
	saltPattern         = regexp.MustCompile(`^[\da-f]{64}$`)
	authTokenPattern    = regexp.MustCompile(`^[\da-f]{32}$`)

	validate = validator.New()
)

// DateTime parses a "YYYY-MM-DD HH:MM:SS" string into a UTC time.Time.
// An already-parsed time.Time is accepted unchanged.
func DateTime(name string, raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), nil
	case *time.Time:
		if v != nil {
			return v.UTC(), nil
		}
	}

	s, err := asString(name, raw)
	if err != nil {
		return time.Time{}, err
	}
	s = strings.TrimSpace(s)

	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, malformed(name, raw, "%s %q is not a %s formatted date", name, s, DateTimeLayout)
	}

	// the pattern guarantees every group is all digits
	var parts [6]int
	for i := range parts {
		parts[i], _ = strconv.Atoi(m[i+1])
	}
	year, month, day := parts[0], parts[1], parts[2]
	hour, minute, second := parts[3], parts[4], parts[5]

	if !validDate(year, month, day) {
		return time.Time{}, outOfRange(name, raw, "%s %q is not a Gregorian date", name, s)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, outOfRange(name, raw, "%s %q is not a valid time of day", name, s)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC), nil
}

func validDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	// day 0 of the following month is the last day of this one
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

// State validates a USPS two-letter state abbreviation.
func State(name string, raw any) (string, error) {
	return matchTrimmed(name, raw, statePattern, "%s %q is not a postal abbreviation")
}

// ZipCode validates a ZIP or ZIP+4 code.
func ZipCode(name string, raw any) (string, error) {
	return matchTrimmed(name, raw, zipCodePattern, "%s %q is not a ZIP code")
}

// Email performs a permissive syntactic check; deliverability is not verified.
func Email(name string, raw any) (string, error) {
	s, err := asString(name, raw)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,email"); err != nil {
		return "", malformed(name, raw, "%s %q does not appear to be an email address", name, s)
	}
	return s, nil
}

// PasswordHash validates a hex-encoded SHA-512 PBKDF2 hash.
func PasswordHash(name string, raw any) (string, error) {
	return hexDigest(name, raw, passwordHashPattern, "%s is not a valid SHA512 PBKDF2 hash")
}

// Salt validates a hex-encoded 32-byte salt.
func Salt(name string, raw any) (string, error) {
	return hexDigest(name, raw, saltPattern, "%s is not 64 hexadecimal characters")
}

// AuthToken validates a pending activation or reset token. A nil token means
// none is pending.
func AuthToken(name string, raw any) (*string, error) {
	if isNil(raw) {
		return nil, nil
	}
	s, err := hexDigest(name, raw, authTokenPattern, "%s is not 32 hexadecimal characters")
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func matchTrimmed(name string, raw any, pattern *regexp.Regexp, format string) (string, error) {
	s, err := asString(name, raw)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if !pattern.MatchString(s) {
		return "", malformed(name, raw, format, name, s)
	}
	return s, nil
}

// hexDigest never echoes the value in its message; digests are secrets.
func hexDigest(name string, raw any, pattern *regexp.Regexp, format string) (string, error) {
	s, err := asString(name, raw)
	if err != nil {
		return "", malformed(name, nil, "%s is not a string", name)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !pattern.MatchString(s) {
		return "", malformed(name, nil, format, name)
	}
	return s, nil
}
