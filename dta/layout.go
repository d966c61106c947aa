package dta

import (
	"math"

	"github.com/arloliu/luxdta/calib"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/value"
)

type opKind uint8

const (
	opTime       opKind = iota // int32 epoch seconds
	opSkip                     // n unused bytes
	opDigital                  // int16 word split into named bits
	opAnalogue                 // int16 / divisor
	opAnalogue32               // int32 / divisor
	opCurve                    // int16 through a calibration curve
	opTagged                   // type byte, then int8 or int16, / divisor
)

const celsius = "°C"

// bit names one position of a digital word.
type bit struct {
	name     string
	pos      uint8
	inverted bool
}

// value decodes the bit from word. Inverted bits model active-low signals.
func (b bit) value(word uint16) bool {
	set := (word>>b.pos)&1 == 1
	return set != b.inverted
}

// field is one typed read of a fixed record layout.
type field struct {
	kind     opKind
	category string
	name     string
	unit     string
	n        int
	divisor  float64
	curve    *calib.Curve
	bits     []bit
}

// layout is an ordered sequence of reads making up one record.
type layout []field

// tailRule appends fields to records whose sub-version lies in [min, max].
type tailRule struct {
	min, max int32
	fields   layout
}

// recordLayout is a common prefix plus sub-version gated tails.
type recordLayout struct {
	common layout
	tails  []tailRule
}

// resolve returns the full record layout for a sub-version. Every matching
// tail rule is appended, in table order.
func (rl recordLayout) resolve(subVersion int32) layout {
	full := append(layout(nil), rl.common...)
	for _, rule := range rl.tails {
		if subVersion >= rule.min && subVersion <= rule.max {
			full = append(full, rule.fields...)
		}
	}

	return full
}

// size returns the fixed byte width of l, or -1 if l contains variable-width reads.
func (l layout) size() int {
	n := 0
	for _, f := range l {
		switch f.kind {
		case opTime, opAnalogue32:
			n += 4
		case opSkip:
			n += f.n
		case opDigital, opAnalogue, opCurve:
			n += 2
		case opTagged:
			return -1
		}
	}

	return n
}

// names returns the value-bearing field names of l in order, time first.
func (l layout) names() []string {
	var names []string
	for _, f := range l {
		switch f.kind {
		case opSkip:
		case opTime:
			names = append(names, sample.TimeField)
		case opDigital:
			for _, b := range f.bits {
				names = append(names, b.name)
			}
		default:
			names = append(names, f.name)
		}
	}

	return names
}

// decode reads one record.
func (l layout) decode(r *rawbuf.Reader) (*sample.Sample, error) {
	s := sample.New(len(l) + 16)
	for _, f := range l {
		if err := f.read(r, s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (f field) read(r *rawbuf.Reader, s *sample.Sample) error {
	switch f.kind {
	case opTime:
		v, err := r.Int32()
		if err != nil {
			return err
		}
		s.SetTime(int64(v))
	case opSkip:
		return r.Skip(f.n)
	case opDigital:
		word, err := r.Uint16()
		if err != nil {
			return err
		}
		for _, b := range f.bits {
			s.Set(b.name, value.Of(b.value(word), ""))
		}
	case opAnalogue:
		v, err := r.Int16()
		if err != nil {
			return err
		}
		s.Set(f.name, value.Of(float64(v)/f.divisor, f.unit))
	case opAnalogue32:
		v, err := r.Int32()
		if err != nil {
			return err
		}
		s.Set(f.name, value.Of(float64(v)/f.divisor, f.unit))
	case opCurve:
		v, err := r.Int16()
		if err != nil {
			return err
		}
		s.Set(f.name, value.Of(f.curve.Interpolate(v), f.unit))
	case opTagged:
		v, err := readTagged(r)
		if err != nil {
			return err
		}
		s.Set(f.name, value.Of(float64(v)/f.divisor, f.unit))
	}

	return nil
}

// readTagged reads a 9000 analogue: a type byte selecting the width and sign
// of the following value.
func readTagged(r *rawbuf.Reader) (int32, error) {
	off := r.Offset()
	tag, err := r.Uint8()
	if err != nil {
		return 0, err
	}

	switch tag {
	case 0, 4:
		v, err := r.Int8()
		if err != nil {
			return 0, err
		}
		if tag == 4 {
			return -int32(v), nil
		}

		return int32(v), nil
	case 1, 5:
		v, err := r.Int16()
		if err != nil {
			return 0, err
		}
		if tag == 5 {
			return -int32(v), nil
		}

		return int32(v), nil
	default:
		return 0, &errs.MalformedRecordError{Offset: off, Tag: tag}
	}
}

func timeField() field { return field{kind: opTime} }

func skip(n int) field { return field{kind: opSkip, n: n} }

func digital(category string, bits ...bit) field {
	return field{kind: opDigital, category: category, bits: bits}
}

// high is an active-high bit.
func high(name string, pos uint8) bit { return bit{name: name, pos: pos} }

// low is an active-low bit, true when the raw bit is 0.
func low(name string, pos uint8) bit { return bit{name: name, pos: pos, inverted: true} }

func analogue(category, name string, divisor float64, unit string) field {
	return field{kind: opAnalogue, category: category, name: name, divisor: divisor, unit: unit}
}

func analogue32(category, name string, divisor float64, unit string) field {
	return field{kind: opAnalogue32, category: category, name: name, divisor: divisor, unit: unit}
}

func curve(category, name string, c *calib.Curve) field {
	return field{kind: opCurve, category: category, name: name, curve: c, unit: celsius}
}

func tagged(category, name string, unit string) field {
	return field{kind: opTagged, category: category, name: name, divisor: 10, unit: unit}
}

// anySubVersion is the lower bound of tail rules without a minimum.
const anySubVersion = math.MinInt32
