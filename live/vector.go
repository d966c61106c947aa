package live

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/value"
)

// unknownPrefix names positions the vector does not describe.
const unknownPrefix = "Unknown_"

// WriteRequest is one encoded write-back: the register position and the raw
// value to transmit.
type WriteRequest struct {
	Position int
	Value    int32
}

// Assignment pairs a field name with the value to write.
type Assignment struct {
	Name  string
	Value any
}

// Vector is a fixed positional schema for one live readout.
//
// Position i of a wire array is decoded with the field at index i. A Vector
// is immutable and safe for concurrent use.
type Vector struct {
	name   string
	fields []value.Datatype
	index  map[string]int
}

func newVector(name string, fields []value.Datatype) *Vector {
	v := &Vector{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, dup := v.index[f.Name()]; !dup {
			v.index[f.Name()] = i
		}
	}

	return v
}

// Name returns the vector name.
func (v *Vector) Name() string { return v.name }

// Len returns the number of described positions.
func (v *Vector) Len() int { return len(v.fields) }

// Fields returns the fields in position order.
func (v *Vector) Fields() []value.Datatype {
	out := make([]value.Datatype, len(v.fields))
	copy(out, v.fields)

	return out
}

// At returns the field at position i. Positions past the schema yield an
// Unknown_<i> base field.
func (v *Vector) At(i int) value.Datatype {
	if i >= 0 && i < len(v.fields) {
		return v.fields[i]
	}

	return value.Base(unknownPrefix+strconv.Itoa(i), false)
}

// Field returns the field called name.
func (v *Vector) Field(name string) (value.Datatype, bool) {
	i, ok := v.index[name]
	if !ok {
		return value.Datatype{}, false
	}

	return v.fields[i], true
}

// Position returns the position of the field called name, or -1.
func (v *Vector) Position(name string) int {
	if i, ok := v.index[name]; ok {
		return i
	}

	return -1
}

// Read decodes a wire array into a sample.
//
// The sample has no time field; callers stamp the readout time with
// SetTime. Values past the end of the schema are kept as Unknown_<i>.
func (v *Vector) Read(raw []int32) *sample.Sample {
	s := sample.New(len(raw))
	for i, r := range raw {
		f := v.At(i)
		s.Set(f.Name(), f.Decode(r))
	}

	return s
}

// EncodeWrite encodes a write-back of val into the field called name.
//
// Parameters:
//   - name: Field name
//   - val: A value.TypedValue or a plain Go value matching the field kind
//
// Returns:
//   - WriteRequest: Position and raw value to transmit
//   - error: ErrFieldNotFound, ErrNotWritable or an encode error of the field
func (v *Vector) EncodeWrite(name string, val any) (WriteRequest, error) {
	i, ok := v.index[name]
	if !ok {
		return WriteRequest{}, fmt.Errorf("%w: %s has no field %q", errs.ErrFieldNotFound, v.name, name)
	}

	f := v.fields[i]
	if !f.Writable() {
		return WriteRequest{}, fmt.Errorf("%w: %s", errs.ErrNotWritable, name)
	}

	raw, err := f.Encode(val)
	if err != nil {
		return WriteRequest{}, err
	}

	return WriteRequest{Position: i, Value: raw}, nil
}

// EncodeBatch encodes several assignments.
//
// A failing assignment does not stop the others: the requests that encoded
// are returned together with all failures joined by errors.Join.
func (v *Vector) EncodeBatch(assignments []Assignment) ([]WriteRequest, error) {
	reqs := make([]WriteRequest, 0, len(assignments))
	var errList []error
	for _, a := range assignments {
		req, err := v.EncodeWrite(a.Name, a.Value)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		reqs = append(reqs, req)
	}

	return reqs, errors.Join(errList...)
}

// ParseAssignment parses a "name=value" expression against the vector.
//
// The value text is converted according to the kind of the named field:
// Base and Scaling fields take a number, Boolean fields take
// strconv.ParseBool syntax, Selection and Custom fields take the text as is.
//
// Returns:
//   - Assignment: Name and converted value, ready for EncodeBatch
//   - error: ErrFieldNotFound, or ErrEncodeTypeMismatch for unparsable text
func (v *Vector) ParseAssignment(expr string) (Assignment, error) {
	name, text, ok := strings.Cut(expr, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Assignment{}, fmt.Errorf("%w: %q is not name=value", errs.ErrEncodeTypeMismatch, expr)
	}
	text = strings.TrimSpace(text)

	f, found := v.Field(name)
	if !found {
		return Assignment{}, fmt.Errorf("%w: %s has no field %q", errs.ErrFieldNotFound, v.name, name)
	}

	switch f.Kind() {
	case format.KindBase, format.KindScaling:
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Assignment{}, &errs.EncodeTypeMismatchError{Field: name, GotKind: strconv.Quote(text)}
		}

		return Assignment{Name: name, Value: n}, nil
	case format.KindBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Assignment{}, &errs.EncodeTypeMismatchError{Field: name, GotKind: strconv.Quote(text)}
		}

		return Assignment{Name: name, Value: b}, nil
	default:
		return Assignment{Name: name, Value: text}, nil
	}
}

var (
	parameters   = newVector("Parameters", parameterFields())
	calculations = newVector("Calculations", calculationFields)
	visibilities = newVector("Visibilities", visibilityFields)
)

// Parameters returns the writable settings vector, read with command 3003.
func Parameters() *Vector { return parameters }

// Calculations returns the measured values vector, read with command 3004.
func Calculations() *Vector { return calculations }

// Visibilities returns the menu visibility flags, read with command 3005.
func Visibilities() *Vector { return visibilities }
