package value

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
)

// Codec is the decode/encode pair of a Custom field.
//
// Encode may be nil for read-only fields. Encode reports a wrong runtime
// shape with *errs.EncodeTypeMismatchError; the Field name is filled in by
// Datatype.Encode.
type Codec struct {
	Decode func(raw int32) any
	Encode func(v any) (int32, error)
}

// Datatype describes how one raw int32 register maps to a typed value.
//
// Datatype is a closed tagged union over format.Kind: the kind selects which
// of scale, labels or codec is used. Values are immutable; WithUnit returns a
// modified copy.
type Datatype struct {
	name     string
	kind     format.Kind
	unit     string
	writable bool

	scale   float64
	divisor float64 // 1/scale when that is integral, else 0
	labels  []string
	codec   Codec
}

// Base returns a passthrough integer field.
func Base(name string, writable bool) Datatype {
	return Datatype{name: name, kind: format.KindBase, writable: writable}
}

// Scaling returns a field decoding raw*scale and encoding round(value/scale).
func Scaling(name string, writable bool, scale float64) Datatype {
	d := Datatype{name: name, kind: format.KindScaling, writable: writable, scale: scale}
	if inv := 1 / scale; inv >= 1 && math.Abs(inv-math.Round(inv)) < 1e-9 {
		d.divisor = math.Round(inv)
	}

	return d
}

// Boolean returns a field decoding raw != 0.
func Boolean(name string, writable bool) Datatype {
	return Datatype{name: name, kind: format.KindBoolean, writable: writable}
}

// Selection returns a field decoding raw as an index into labels.
func Selection(name string, writable bool, labels ...string) Datatype {
	return Datatype{name: name, kind: format.KindSelection, writable: writable, labels: slices.Clone(labels)}
}

// Custom returns a field using an arbitrary codec.
func Custom(name string, writable bool, codec Codec) Datatype {
	return Datatype{name: name, kind: format.KindCustom, writable: writable, codec: codec}
}

// WithUnit returns a copy of d carrying unit.
func (d Datatype) WithUnit(unit string) Datatype {
	d.unit = unit
	return d
}

// AsWritable returns a copy of d that accepts write-back.
func (d Datatype) AsWritable() Datatype {
	d.writable = true
	return d
}

// Name returns the field name.
func (d Datatype) Name() string { return d.name }

// Kind returns the field kind.
func (d Datatype) Kind() format.Kind { return d.kind }

// Unit returns the unit suffix.
func (d Datatype) Unit() string { return d.unit }

// Writable reports whether the field accepts write-back.
func (d Datatype) Writable() bool { return d.writable }

// Scale returns the scale of a Scaling field.
func (d Datatype) Scale() float64 { return d.scale }

// Labels returns the labels of a Selection field.
func (d Datatype) Labels() []string { return slices.Clone(d.labels) }

// Decode converts a raw register value into a TypedValue.
//
// Writable fields produce mutable values. A Selection raw value without a
// label decodes to the raw integer.
func (d Datatype) Decode(raw int32) TypedValue {
	var v any
	switch d.kind {
	case format.KindScaling:
		if d.divisor != 0 {
			v = float64(raw) / d.divisor
		} else {
			v = float64(raw) * d.scale
		}
	case format.KindBoolean:
		v = raw != 0
	case format.KindSelection:
		if raw >= 0 && int(raw) < len(d.labels) {
			v = d.labels[raw]
		} else {
			v = int64(raw)
		}
	case format.KindCustom:
		v = d.codec.Decode(raw)
	default:
		v = int64(raw)
	}

	if d.writable {
		return Mutable(v, d.unit)
	}

	return Of(v, d.unit)
}

// Encode converts a value back into its raw register value.
//
// Parameters:
//   - v: A TypedValue or a plain Go value
//
// Returns:
//   - int32: Raw register value
//   - error: *errs.EncodeTypeMismatchError for a wrong runtime shape,
//     *errs.ValueOutOfRangeError for a value without int32 representation,
//     *errs.EncodeLabelNotFoundError for an unknown selection label,
//     ErrNotWritable for a Custom field without encoder
func (d Datatype) Encode(v any) (int32, error) {
	if tv, ok := v.(TypedValue); ok {
		v = tv.value
	}
	v = normalize(v)

	switch d.kind {
	case format.KindBase:
		switch x := v.(type) {
		case int64:
			if x < math.MinInt32 || x > math.MaxInt32 {
				return 0, d.outOfRange(v)
			}

			return int32(x), nil
		case float64:
			raw, ok := toInt32(math.Trunc(x))
			if !ok {
				return 0, d.outOfRange(v)
			}

			return raw, nil
		}
	case format.KindScaling:
		var f float64
		switch x := v.(type) {
		case int64:
			f = float64(x)
		case float64:
			f = x
		default:
			return 0, d.mismatch(v)
		}
		scaled := f / d.scale
		if d.divisor != 0 {
			scaled = f * d.divisor
		}
		raw, ok := roundHalfUp(scaled)
		if !ok {
			return 0, d.outOfRange(v)
		}

		return raw, nil
	case format.KindBoolean:
		if b, ok := v.(bool); ok {
			if b {
				return 1, nil
			}

			return 0, nil
		}
	case format.KindSelection:
		s, ok := v.(string)
		if !ok {
			return 0, d.mismatch(v)
		}
		idx := slices.Index(d.labels, s)
		if idx < 0 {
			return 0, &errs.EncodeLabelNotFoundError{Field: d.name, Label: s}
		}

		return int32(idx), nil
	case format.KindCustom:
		if d.codec.Encode == nil {
			return 0, fmt.Errorf("%w: %s", errs.ErrNotWritable, d.name)
		}
		raw, err := d.codec.Encode(v)
		if err != nil {
			var mm *errs.EncodeTypeMismatchError
			if errors.As(err, &mm) && mm.Field == "" {
				mm.Field = d.name
			}
			var oor *errs.ValueOutOfRangeError
			if errors.As(err, &oor) && oor.Field == "" {
				oor.Field = d.name
			}

			return 0, err
		}

		return raw, nil
	}

	return 0, d.mismatch(v)
}

func (d Datatype) mismatch(v any) error {
	return &errs.EncodeTypeMismatchError{Field: d.name, GotKind: kindOf(v)}
}

func kindOf(v any) string {
	if v == nil {
		return "nil"
	}

	return fmt.Sprintf("%T", v)
}

func (d Datatype) outOfRange(v any) error {
	return &errs.ValueOutOfRangeError{Field: d.name, Value: fmt.Sprint(v)}
}

// roundHalfUp rounds to the nearest integer, ties towards positive infinity.
// It reports false when the result does not fit an int32.
func roundHalfUp(f float64) (int32, bool) {
	return toInt32(math.Floor(f + 0.5))
}

// toInt32 converts an integral float64, rejecting NaN, infinities and values
// beyond the int32 range.
func toInt32(f float64) (int32, bool) {
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}

	return int32(f), true
}
