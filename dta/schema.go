package dta

import (
	"fmt"
	"strings"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/collision"
	"github.com/arloliu/luxdta/internal/hash"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/sample"
)

// DescriptorKind is the kind of a 9003 schema descriptor, taken from the
// low nibble of its tag byte.
type DescriptorKind uint8

const (
	DescriptorCategory DescriptorKind = 0
	DescriptorAnalogue DescriptorKind = 1
	DescriptorDigital  DescriptorKind = 2
	DescriptorEnum     DescriptorKind = 3
)

func (k DescriptorKind) String() string {
	switch k {
	case DescriptorCategory:
		return "Category"
	case DescriptorAnalogue:
		return "Analogue"
	case DescriptorDigital:
		return "Digital"
	case DescriptorEnum:
		return "Enum"
	default:
		return fmt.Sprintf("DescriptorKind(%d)", uint8(k))
	}
}

// Descriptor tag layout.
const (
	tagKindMask       = 0x0F
	tagAnalogueScale  = 0x80 // analogue: explicit int16 scale follows the color
	tagDigitalAllOut  = 0x80 // digital: every bit is an output unless tagDigitalIOs is set
	tagDigitalVisible = 0x40 // digital: int16 visibility mask
	tagDigitalFactory = 0x20 // digital: int16 factory-only mask
	tagDigitalIOs     = 0x04 // digital: int16 direction mask

	defaultAnalogueScale = 10
	digitalWordBits      = 16
	legacyTextPrefix     = "Text_"
)

// Color is a descriptor display color, 0xFFRRGGBB.
type Color uint32

// DigitalBit is one named bit of a digital descriptor.
type DigitalBit struct {
	Name     string
	Color    Color
	Position uint8
	// Inverted is set for input bits, whose direction-mask bit is 0.
	Inverted bool
}

// FieldDescriptor is one entry of a 9003 schema.
type FieldDescriptor struct {
	Offset int            // buffer offset of the tag byte
	Tag    byte           // raw tag byte
	Kind   DescriptorKind // low nibble of Tag

	// Category is the category in effect when the descriptor was parsed.
	// For Category descriptors it is the category name itself.
	Category string

	// Name is set for Category, Analogue and Enum descriptors.
	Name string

	Color Color // analogue display color
	Scale int16 // analogue divisor

	Bits            []DigitalBit // digital bits in position order
	DirectionMask   uint16       // 1 = output, 0 = inverted input
	VisibilityMask  uint16
	FactoryOnlyMask uint16

	Labels []string // enum labels
}

// HasValue reports whether the descriptor reads a value from each record.
// Category and Enum descriptors are schema-only.
func (d *FieldDescriptor) HasValue() bool {
	return d.Kind == DescriptorAnalogue || d.Kind == DescriptorDigital
}

// ValueNames returns the sample field names the descriptor produces.
func (d *FieldDescriptor) ValueNames() []string {
	switch d.Kind {
	case DescriptorAnalogue:
		return []string{d.Name}
	case DescriptorDigital:
		names := make([]string, len(d.Bits))
		for i, b := range d.Bits {
			names[i] = b.Name
		}

		return names
	default:
		return nil
	}
}

// SchemaTable is the parsed schema of a 9003 file. It is built once and is
// read-only afterwards.
type SchemaTable struct {
	descriptors []FieldDescriptor
	fingerprint uint64
	duplicates  []string
	recordWidth int
}

// Descriptors returns the descriptors in schema order.
func (t *SchemaTable) Descriptors() []FieldDescriptor {
	return t.descriptors
}

// Len returns the number of descriptors, Category and Enum included.
func (t *SchemaTable) Len() int {
	return len(t.descriptors)
}

// Fingerprint returns an xxHash64 over the descriptor kinds, categories and
// value names. Files logged by the same firmware share a fingerprint.
func (t *SchemaTable) Fingerprint() uint64 {
	return t.fingerprint
}

// Duplicates returns value names produced by more than one descriptor.
func (t *SchemaTable) Duplicates() []string {
	return t.duplicates
}

// RecordWidth returns the number of bytes one record consumes: the time
// field plus one int16 per value-bearing descriptor.
func (t *SchemaTable) RecordWidth() int {
	return t.recordWidth
}

// FieldNames returns the sample field names in record order, time first.
// Repeated names are listed once.
func (t *SchemaTable) FieldNames() []string {
	names := []string{sample.TimeField}
	seen := map[string]bool{sample.TimeField: true}
	for i := range t.descriptors {
		for _, name := range t.descriptors[i].ValueNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}

// ParseSchema parses 9003 descriptors from r until the cursor reaches end.
//
// Parameters:
//   - r: Reader positioned at the first descriptor
//   - end: Buffer offset of the first byte after the schema
//
// Returns:
//   - *SchemaTable: Parsed schema
//   - error: *errs.MalformedSchemaError for unknown tags, ErrInvalidBitPosition
//     for digital groups wider than 16 bits, *errs.BufferUnderrunError for
//     truncated descriptors
func ParseSchema(r *rawbuf.Reader, end int) (*SchemaTable, error) {
	var (
		descriptors []FieldDescriptor
		category    string
		width       = 4
		names       = collision.NewTracker()
		fp          = hash.NewFingerprint()
	)

	for r.Offset() < end {
		d, err := parseDescriptor(r, category)
		if err != nil {
			return nil, err
		}

		switch d.Kind {
		case DescriptorCategory:
			category = d.Name
		case DescriptorAnalogue, DescriptorDigital:
			width += 2
		}

		fp.Add(d.Kind.String())
		fp.Add(d.Category)
		fp.Add(d.Name)
		for _, name := range d.ValueNames() {
			fp.Add(name)
			names.Track(name)
		}

		descriptors = append(descriptors, d)
	}

	if r.Offset() > end {
		return nil, fmt.Errorf("%w: last descriptor ends at offset %d, past schema end %d",
			errs.ErrMalformedSchema, r.Offset(), end)
	}

	return &SchemaTable{
		descriptors: descriptors,
		fingerprint: fp.Sum64(),
		duplicates:  names.Duplicates(),
		recordWidth: width,
	}, nil
}

func parseDescriptor(r *rawbuf.Reader, category string) (FieldDescriptor, error) {
	off := r.Offset()
	tag, err := r.Uint8()
	if err != nil {
		return FieldDescriptor{}, err
	}

	d := FieldDescriptor{Offset: off, Tag: tag, Category: category}

	switch tag & tagKindMask {
	case 0:
		d.Kind = DescriptorCategory
		if d.Name, err = readName(r); err != nil {
			return d, err
		}
		d.Category = d.Name
	case 1:
		d.Kind = DescriptorAnalogue
		err = parseAnalogue(r, &d)
	case 2, 4:
		d.Kind = DescriptorDigital
		err = parseDigital(r, &d)
	case 3:
		d.Kind = DescriptorEnum
		err = parseEnum(r, &d)
	default:
		return d, &errs.MalformedSchemaError{Offset: off, Tag: tag}
	}

	return d, err
}

func parseAnalogue(r *rawbuf.Reader, d *FieldDescriptor) error {
	var err error
	if d.Name, err = readName(r); err != nil {
		return err
	}
	if d.Color, err = readColor(r); err != nil {
		return err
	}

	d.Scale = defaultAnalogueScale
	if d.Tag&tagAnalogueScale != 0 {
		if d.Scale, err = r.Int16(); err != nil {
			return err
		}
		if d.Scale == 0 {
			return fmt.Errorf("%w: analogue %q at offset %d has scale 0",
				errs.ErrMalformedSchema, d.Name, d.Offset)
		}
	}

	return nil
}

func parseDigital(r *rawbuf.Reader, d *FieldDescriptor) error {
	count, err := r.Uint8()
	if err != nil {
		return err
	}
	if int(count) > digitalWordBits {
		return fmt.Errorf("%w: digital group at offset %d declares %d bits",
			errs.ErrInvalidBitPosition, d.Offset, count)
	}

	d.VisibilityMask = 0xFFFF
	if d.Tag&tagDigitalVisible != 0 {
		if d.VisibilityMask, err = r.Uint16(); err != nil {
			return err
		}
	}
	if d.Tag&tagDigitalFactory != 0 {
		if d.FactoryOnlyMask, err = r.Uint16(); err != nil {
			return err
		}
	}
	switch {
	case d.Tag&tagDigitalIOs != 0:
		if d.DirectionMask, err = r.Uint16(); err != nil {
			return err
		}
	case d.Tag&tagDigitalAllOut != 0:
		d.DirectionMask = 0xFFFF
	}

	d.Bits = make([]DigitalBit, count)
	for i := range d.Bits {
		name, err := readName(r)
		if err != nil {
			return err
		}
		color, err := readColor(r)
		if err != nil {
			return err
		}
		d.Bits[i] = DigitalBit{
			Name:     name,
			Color:    color,
			Position: uint8(i),
			Inverted: d.DirectionMask&(1<<i) == 0,
		}
	}

	return nil
}

func parseEnum(r *rawbuf.Reader, d *FieldDescriptor) error {
	var err error
	if d.Name, err = readName(r); err != nil {
		return err
	}
	count, err := r.Uint8()
	if err != nil {
		return err
	}

	d.Labels = make([]string, count)
	for i := range d.Labels {
		if d.Labels[i], err = readName(r); err != nil {
			return err
		}
	}

	return nil
}

func readName(r *rawbuf.Reader) (string, error) {
	s, err := r.CString()
	if err != nil {
		return "", err
	}

	return strings.TrimPrefix(s, legacyTextPrefix), nil
}

func readColor(r *rawbuf.Reader) (Color, error) {
	var c Color = 0xFF000000
	for shift := 16; shift >= 0; shift -= 8 {
		b, err := r.Uint8()
		if err != nil {
			return 0, err
		}
		c |= Color(b) << shift
	}

	return c, nil
}
