package field

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PositiveID validates a required identifier or foreign key reference.
func PositiveID(name string, raw any) (int64, error) {
	n, err := toInt(name, raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, outOfRange(name, raw, "%s %d is not positive", name, n)
	}
	return n, nil
}

// OptionalPositiveID validates a surrogate key that is nil until the entity
// has been persisted.
func OptionalPositiveID(name string, raw any) (*int64, error) {
	if isNil(raw) {
		return nil, nil
	}
	n, err := PositiveID(name, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// PositiveInt validates a strictly positive count such as a quantity.
func PositiveInt(name string, raw any) (int64, error) {
	return PositiveID(name, raw)
}

// PositiveMoney validates a currency amount greater than zero.
func PositiveMoney(name string, raw any) (float64, error) {
	f, err := toFloat(name, raw)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, outOfRange(name, raw, "%s %v is not positive", name, f)
	}
	return f, nil
}

// NegativeDiscount validates a discount, which is stored as a negative delta.
func NegativeDiscount(name string, raw any) (float64, error) {
	f, err := toFloat(name, raw)
	if err != nil {
		return 0, err
	}
	if f >= 0 {
		return 0, outOfRange(name, raw, "%s %v is not negative", name, f)
	}
	return f, nil
}

func toInt(name string, raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt(name, raw, uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt(name, raw, v)
	case float32:
		return floatToInt(name, raw, float64(v))
	case float64:
		return floatToInt(name, raw, v)
	case *int64:
		if v != nil {
			return *v, nil
		}
	case json.Number:
		return parseInt(name, raw, string(v))
	case string:
		return parseInt(name, raw, v)
	}
	return 0, malformed(name, raw, "%s %v is not numeric", name, raw)
}

func parseInt(name string, raw any, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, malformed(name, raw, "%s %q is not numeric", name, s)
	}
	return n, nil
}

func uintToInt(name string, raw any, v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, malformed(name, raw, "%s %d overflows an integer", name, v)
	}
	return int64(v), nil
}

func floatToInt(name string, raw any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f > math.MaxInt64 || f < math.MinInt64 {
		return 0, malformed(name, raw, "%s %v is not an integer", name, f)
	}
	return int64(f), nil
}

func toFloat(name string, raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case string:
		return parseFloat(name, raw, v)
	case json.Number:
		return parseFloat(name, raw, string(v))
	default:
		n, err := toInt(name, raw)
		if err != nil {
			return 0, malformed(name, raw, "%s %v is not numeric", name, raw)
		}
		f = float64(n)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed(name, raw, "%s %v is not a finite number", name, f)
	}
	return f, nil
}

func parseFloat(name string, raw any, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed(name, raw, "%s %q is not numeric", name, s)
	}
	return f, nil
}

func isNil(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case *int64:
		return v == nil
	case *string:
		return v == nil
	}
	return false
}
