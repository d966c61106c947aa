package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/luxdta/errs"
)

// TypedValue is a decoded value paired with its unit.
//
// The held value is always one of float64, int64, bool or string. Values
// decoded from files are read-only; values decoded through a writable live
// field are mutable and accept Set.
type TypedValue struct {
	value   any
	unit    string
	mutable bool
}

// Of returns a read-only TypedValue.
func Of(v any, unit string) TypedValue {
	return TypedValue{value: normalize(v), unit: unit}
}

// Mutable returns a TypedValue that accepts Set.
func Mutable(v any, unit string) TypedValue {
	return TypedValue{value: normalize(v), unit: unit, mutable: true}
}

// Value returns the held value.
func (v TypedValue) Value() any { return v.value }

// Unit returns the unit suffix, empty when the value is unitless.
func (v TypedValue) Unit() string { return v.unit }

// IsMutable reports whether Set is allowed.
func (v TypedValue) IsMutable() bool { return v.mutable }

// Set replaces the held value of a mutable TypedValue.
//
// Returns:
//   - error: ErrImmutableValue if the value is read-only
func (v *TypedValue) Set(x any) error {
	if !v.mutable {
		return errs.ErrImmutableValue
	}
	v.value = normalize(x)

	return nil
}

// Float64 returns the value as float64 if it is numeric.
func (v TypedValue) Float64() (float64, bool) {
	switch x := v.value.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// Int64 returns the value as int64 if it is an integer.
func (v TypedValue) Int64() (int64, bool) {
	x, ok := v.value.(int64)
	return x, ok
}

// Bool returns the value as bool if it is a boolean.
func (v TypedValue) Bool() (bool, bool) {
	x, ok := v.value.(bool)
	return x, ok
}

// Text returns the value as string if it is a string.
func (v TypedValue) Text() (string, bool) {
	x, ok := v.value.(string)
	return x, ok
}

// Equal reports whether two values hold the same value and unit.
func (v TypedValue) Equal(o TypedValue) bool {
	return v.value == o.value && v.unit == o.unit
}

func (v TypedValue) String() string {
	s := fmt.Sprint(v.value)
	if f, ok := v.value.(float64); ok {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	if v.unit == "" {
		return s
	}

	return s + " " + v.unit
}

type persisted struct {
	Value any    `json:"value"`
	Unit  string `json:"unit"`
}

// MarshalJSON encodes the value as {"value": v, "unit": u}. Whole floats
// keep a fractional digit so they decode back as float64.
func (v TypedValue) MarshalJSON() ([]byte, error) {
	p := persisted{Value: v.value, Unit: v.unit}
	if f, ok := v.value.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e21 {
		p.Value = json.RawMessage(strconv.FormatFloat(f, 'f', 1, 64))
	}

	return json.Marshal(p)
}

// UnmarshalJSON decodes {"value": v, "unit": u}. Integral JSON numbers
// become int64, all other numbers float64. The result is read-only.
func (v *TypedValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var p persisted
	if err := dec.Decode(&p); err != nil {
		return err
	}

	*v = Of(p.Value, p.Unit)

	return nil
}

// Persisted returns the value and unit as stored in exports.
func (v TypedValue) Persisted() (any, string) {
	return v.value, v.unit
}

// normalize folds Go's numeric types onto int64 and float64.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case float32:
		return float64(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}

		return x.String()
	default:
		return v
	}
}
