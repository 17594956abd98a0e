// Package attr coerces loosely typed attribute values into canonical numbers.
//
// Values come from graph files where the same quantity may be stored as an
// integer, a float, or text using either a dot or a comma as the decimal
// separator. Coercion never fails: callers get a fallback or a missing marker.
package attr

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Optional is a float that may be missing. Missing is distinct from zero and
// encodes as JSON null.
type Optional struct {
	Value float64
	Valid bool
}

// Some returns a present Optional.
func Some(v float64) Optional {
	return Optional{Value: v, Valid: true}
}

// None is the missing Optional.
var None = Optional{}

// MarshalJSON implements json.Marshaler.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Int coerces v to an integer.
//
// Direct conversion is tried first; then the value is read as a decimal number
// with "," accepted as the separator and truncated toward zero. Anything else,
// including a nil value, yields fallback.
func Int(v any, fallback int64) int64 {
	if n, ok := toInt(v); ok {
		return n
	}
	return fallback
}

// IntOK is Int without a fallback: ok reports whether v could be coerced.
func IntOK(v any) (int64, bool) {
	return toInt(v)
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		return truncate(x)
	case float32:
		return truncate(float64(x))
	case json.Number:
		return parseInt(string(x))
	case string:
		return parseInt(x)
	default:
		return 0, false
	}
}

func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	return truncate(f)
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float coerces v to a float, treating "," as a decimal separator.
// Unparseable, absent and non-finite values are missing.
func Float(v any) Optional {
	var f float64
	switch x := v.(type) {
	case nil:
		return None
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int64:
		f = float64(x)
	case int:
		f = float64(x)
	case json.Number:
		p, ok := parseFloat(string(x))
		if !ok {
			return None
		}
		f = p
	case string:
		p, ok := parseFloat(x)
		if !ok {
			return None
		}
		f = p
	default:
		return None
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return None
	}
	return Some(f)
}

func parseFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// DefaultWeight is the weight given to edges without a usable weight.
const DefaultWeight = 1.0

// Weight returns the edge weight encoded by v.
//
// Missing or unparseable weights become DefaultWeight, and so does a weight of
// exactly zero.
// TODO: decide whether zero-weight edges should keep weight 0; existing
// reports have always shown them as 1.
func Weight(v any) float64 {
	w := Float(v)
	if !w.Valid || w.Value == 0 {
		return DefaultWeight
	}
	return w.Value
}
