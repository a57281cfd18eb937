package field

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositiveID(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		wantErr error
	}{
		{name: "int", raw: 42, want: 42},
		{name: "int64", raw: int64(1), want: 1},
		{name: "uint32", raw: uint32(7), want: 7},
		{name: "string", raw: "17", want: 17},
		{name: "string with whitespace", raw: "  17 ", want: 17},
		{name: "json number", raw: json.Number("99"), want: 99},
		{name: "integral float", raw: 3.0, want: 3},
		{name: "zero", raw: 0, wantErr: ErrOutOfRange},
		{name: "negative", raw: -4, wantErr: ErrOutOfRange},
		{name: "negative string", raw: "-4", wantErr: ErrOutOfRange},
		{name: "non-numeric string", raw: "abc", wantErr: ErrMalformed},
		{name: "decimal string", raw: "1.5", wantErr: ErrMalformed},
		{name: "fractional float", raw: 1.5, wantErr: ErrMalformed},
		{name: "NaN", raw: math.NaN(), wantErr: ErrMalformed},
		{name: "overflowing uint64", raw: uint64(math.MaxUint64), wantErr: ErrMalformed},
		{name: "nil", raw: nil, wantErr: ErrMalformed},
		{name: "bool", raw: true, wantErr: ErrMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PositiveID("user id", tc.raw)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)

				var fieldErr *Error
				require.True(t, errors.As(err, &fieldErr))
				assert.Equal(t, "user id", fieldErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPositiveIDRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 2, 1000, math.MaxInt32, math.MaxInt64} {
		got, err := PositiveID("product id", n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestOptionalPositiveID(t *testing.T) {
	got, err := OptionalPositiveID("profile id", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	var nilPtr *int64
	got, err = OptionalPositiveID("profile id", nilPtr)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalPositiveID("profile id", "12")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(12), *got)

	_, err = OptionalPositiveID("profile id", 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPositiveMoney(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    float64
		wantErr error
	}{
		{name: "float", raw: 19.99, want: 19.99},
		{name: "string", raw: "4.50", want: 4.5},
		{name: "int", raw: 3, want: 3},
		{name: "zero", raw: 0.0, wantErr: ErrOutOfRange},
		{name: "negative", raw: "-1.25", wantErr: ErrOutOfRange},
		{name: "text", raw: "cheap", wantErr: ErrMalformed},
		{name: "infinity string", raw: "Inf", wantErr: ErrMalformed},
		{name: "infinity", raw: math.Inf(1), wantErr: ErrMalformed},
		{name: "nil", raw: nil, wantErr: ErrMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PositiveMoney("price", tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestNegativeDiscount(t *testing.T) {
	got, err := NegativeDiscount("discount", -5.00)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, got, 1e-9)

	got, err = NegativeDiscount("discount", "-0.25")
	require.NoError(t, err)
	assert.InDelta(t, -0.25, got, 1e-9)

	_, err = NegativeDiscount("discount", 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NegativeDiscount("discount", 5.00)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.EqualError(t, err, "discount 5 is not negative")

	_, err = NegativeDiscount("discount", "five off")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestPositiveInt(t *testing.T) {
	got, err := PositiveInt("quantity", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	_, err = PositiveInt("quantity", 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.EqualError(t, err, "quantity 0 is not positive")
}
