package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Record is a decoded request object, keyed by wire field name.
type Record map[string]any

// Has reports whether the field is present with a non-null value.
func (r Record) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

// Text returns the string held by name, or "" when absent or not a string.
func (r Record) Text(name string) string {
	s, _ := r[name].(string)
	return s
}

// Int returns the positive integer held by name, or 0 when the value does
// not pass the RequiredPositiveInteger rule.
func (r Record) Int(name string) int {
	n, _ := PositiveInteger(r[name])
	return int(n)
}

// Sequence returns the elements held by name, or nil when it is not a sequence.
func (r Record) Sequence(name string) []any {
	s, _ := r[name].([]any)
	return s
}

// Identity renders the id field the way it is addressed in routes. Numbers
// are formatted in decimal and other values as JSON; ok is false when the
// field is absent, null or empty.
func (r Record) Identity() (string, bool) {
	switch v := r["id"].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case json.Number:
		return v.String(), v != ""
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		if b, err := json.Marshal(v); err == nil {
			return string(b), true
		}
		return fmt.Sprint(v), true
	}
}

// AsRecord converts a sequence element into a Record.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}

// PositiveInteger reports whether v is a numeric value holding a positive
// integer, and returns it. Floating point values must be integral and at
// most 2^53, the largest range in which a JSON number keeps every integer.
func PositiveInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return positiveFloat(n)
	case float32:
		return positiveFloat(float64(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return inRange(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return positiveFloat(f)
	case int:
		return inRange(int64(n))
	case int32:
		return inRange(int64(n))
	case int64:
		return inRange(n)
	case uint32:
		return inRange(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return inRange(int64(n))
	default:
		return 0, false
	}
}

func positiveFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f <= 0 || f > maxExactFloat {
		return 0, false
	}
	return int64(f), true
}

const maxExactFloat = 1 << 53

func inRange(n int64) (int64, bool) {
	if n <= 0 {
		return 0, false
	}
	return n, true
}
