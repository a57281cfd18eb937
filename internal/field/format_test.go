package field

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    time.Time
		wantErr error
	}{
		{
			name: "valid date",
			raw:  "2014-09-22 13:45:07",
			want: time.Date(2014, time.September, 22, 13, 45, 7, 0, time.UTC),
		},
		{
			name: "leap day",
			raw:  "2024-02-29 00:00:00",
			want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "surrounding whitespace",
			raw:  " 1999-12-31 23:59:59\n",
			want: time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
		{name: "february 30", raw: "2023-02-30 10:00:00", wantErr: ErrOutOfRange},
		{name: "non-leap february 29", raw: "2023-02-29 10:00:00", wantErr: ErrOutOfRange},
		{name: "month 13", raw: "2023-13-01 10:00:00", wantErr: ErrOutOfRange},
		{name: "month 0", raw: "2023-00-10 10:00:00", wantErr: ErrOutOfRange},
		{name: "day 0", raw: "2023-01-00 10:00:00", wantErr: ErrOutOfRange},
		{name: "hour 24", raw: "2023-01-01 24:00:00", wantErr: ErrOutOfRange},
		{name: "ISO T separator", raw: "2023-01-01T10:00:00", wantErr: ErrMalformed},
		{name: "date only", raw: "2023-01-01", wantErr: ErrMalformed},
		{name: "not a date", raw: "yesterday", wantErr: ErrMalformed},
		{name: "number", raw: 20230101, wantErr: ErrMalformed},
		{name: "nil", raw: nil, wantErr: ErrMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DateTime("order date", tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestDateTimeComponents(t *testing.T) {
	got, err := DateTime("ship date", "2031-07-04 08:09:10")
	require.NoError(t, err)

	assert.Equal(t, 2031, got.Year())
	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, 4, got.Day())
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 9, got.Minute())
	assert.Equal(t, 10, got.Second())
	assert.Equal(t, "2031-07-04 08:09:10", got.Format(DateTimeLayout))
}

func TestDateTimeAcceptsParsedTime(t *testing.T) {
	loc := time.FixedZone("MST", -7*60*60)
	parsed := time.Date(2014, time.September, 22, 9, 0, 0, 0, loc)
	want := time.Date(2014, time.September, 22, 16, 0, 0, 0, time.UTC)

	got, err := DateTime("order date", parsed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, parsed.Equal(got))

	got, err = DateTime("order date", &parsed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestState(t *testing.T) {
	got, err := State("state", "NM")
	require.NoError(t, err)
	assert.Equal(t, "NM", got)

	got, err = State("state", " TX ")
	require.NoError(t, err)
	assert.Equal(t, "TX", got)

	for _, bad := range []any{"nm", "New Mexico", "N", "NMX", "", 35} {
		_, err := State("state", bad)
		assert.ErrorIs(t, err, ErrMalformed, "state %v should be rejected", bad)
	}
}

func TestZipCode(t *testing.T) {
	for _, good := range []string{"87104", "87104-1234", " 87104 "} {
		got, err := ZipCode("zip", good)
		require.NoError(t, err, "zip %q", good)
		assert.Equal(t, strings.TrimSpace(good), got)
	}

	for _, bad := range []any{"1234", "ABCDE", "87104-12", "87104 1234", "871041234", nil} {
		_, err := ZipCode("zip", bad)
		assert.ErrorIs(t, err, ErrMalformed, "zip %v should be rejected", bad)
	}
}

func TestEmail(t *testing.T) {
	got, err := Email("email", "  dylan@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "dylan@example.com", got)

	for _, good := range []string{"user+tag@example.com", "first.last@sub.example.org"} {
		_, err := Email("email", good)
		assert.NoError(t, err, "email %q", good)
	}

	for _, bad := range []any{"", "userexample.com", "user@", "@example.com", nil, 12} {
		_, err := Email("email", bad)
		assert.ErrorIs(t, err, ErrMalformed, "email %v should be rejected", bad)
	}
}

func TestHexDigests(t *testing.T) {
	hash := strings.Repeat("AbC123", 21) + "de"
	require.Len(t, hash, PasswordHashLength)

	got, err := PasswordHash("password", hash)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(hash), got)

	_, err = PasswordHash("password", hash[:127])
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = PasswordHash("password", strings.Repeat("g", PasswordHashLength))
	assert.ErrorIs(t, err, ErrMalformed)

	salt := strings.Repeat("0f", SaltLength/2)
	got, err = Salt("salt", salt)
	require.NoError(t, err)
	assert.Equal(t, salt, got)

	_, err = Salt("salt", salt+"0")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestHexDigestErrorsDoNotEchoValue(t *testing.T) {
	secret := strings.Repeat("z", PasswordHashLength)
	_, err := PasswordHash("password", secret)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)

	var fieldErr *Error
	require.ErrorAs(t, err, &fieldErr)
	assert.Nil(t, fieldErr.Value)
}

func TestAuthToken(t *testing.T) {
	got, err := AuthToken("authentication token", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	token := strings.Repeat("A1", AuthTokenLength/2)
	got, err = AuthToken("authentication token", token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, strings.ToLower(token), *got)

	_, err = AuthToken("authentication token", "deadbeef")
	assert.ErrorIs(t, err, ErrMalformed)
}
