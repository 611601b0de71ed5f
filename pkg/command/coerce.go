package command

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// toInt converts user input to an integer. Integral floats and numeric
// strings are accepted; booleans are not.
func toInt(setting string, v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint:
		return uintToInt(setting, v, uint64(x))
	case uint64:
		return uintToInt(setting, v, x)
	case float32:
		return floatToInt(setting, v, float64(x))
	case float64:
		return floatToInt(setting, v, x)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, invalidValue(setting, v, "not a number")
		}
		return n, nil
	}
	return 0, invalidValue(setting, v, "expected a number")
}

func floatToInt(setting string, v any, f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalidValue(setting, v, "not an integer")
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, invalidValue(setting, v, "out of range")
	}
	return int64(f), nil
}

func uintToInt(setting string, v any, u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, invalidValue(setting, v, "out of range")
	}
	return int64(u), nil
}

// toBool converts user input to a boolean. Integers 0 and 1 and the usual
// on/off spellings are accepted.
func toBool(setting string, v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "on", "yes", "enabled":
			return true, nil
		case "0", "false", "off", "no", "disabled":
			return false, nil
		}
		return false, invalidValue(setting, v, "expected on or off")
	}
	n, err := toInt(setting, v)
	if err != nil {
		return false, invalidValue(setting, v, "expected a boolean")
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, invalidValue(setting, v, "expected 0 or 1")
}

// toEnum converts an enum name or numeric code.
func toEnum[E ~int](setting string, v any, lookup func(string) (E, bool)) (int64, error) {
	if s, ok := v.(string); ok {
		if e, ok := lookup(s); ok {
			return int64(e), nil
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n, nil
		}
		return 0, invalidValue(setting, v, "unknown option")
	}
	return toInt(setting, v)
}

// checkRange validates an inclusive range.
func checkRange(setting string, n, lo, hi int64) error {
	if n < lo || n > hi {
		return invalidValue(setting, n, "must be between %d and %d", lo, hi)
	}
	return nil
}

// checkOption validates against a capability option list.
func checkOption(setting string, n int64, options []int) error {
	if len(options) == 0 {
		return invalidValue(setting, n, "no options available on this model")
	}
	if !slices.Contains(options, int(n)) {
		return invalidValue(setting, n, "not available on this model (options %v)", options)
	}
	return nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
