// Package dtatest builds synthetic DTA buffers for tests.
//
// A Builder appends little-endian values and schema descriptors to a
// pooled buffer:
//
//	data := dtatest.New().
//		SchemaHeader(2, 8).
//		Category("Temperaturen").
//		Analogue("TVL").
//		EndSchema().
//		Int32(1700000000).Int16(215).
//		Bytes()
package dtatest

import (
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/pool"
	"github.com/arloliu/luxdta/section"
)

// Descriptor tags.
const (
	TagCategory       byte = 0x00
	TagAnalogue       byte = 0x01
	TagAnalogueScaled byte = 0x81
	TagDigitalInputs  byte = 0x02
	TagDigitalOutputs byte = 0x82
	TagDigitalIO      byte = 0x04
	TagEnum           byte = 0x03
)

// Builder appends DTA fields in file byte order.
type Builder struct {
	buf *pool.ByteBuffer
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{buf: pool.NewByteBuffer(256)}
}

// Bytes returns a copy of the built buffer.
func (b *Builder) Bytes() []byte {
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())

	return out
}

// Len returns the number of bytes built so far.
func (b *Builder) Len() int { return b.buf.Len() }

// Uint8 appends one byte.
func (b *Builder) Uint8(v uint8) *Builder {
	b.buf.AppendUint8(v)
	return b
}

// Int8 appends a signed byte.
func (b *Builder) Int8(v int8) *Builder {
	b.buf.AppendUint8(uint8(v))
	return b
}

// Int16 appends a little-endian int16.
func (b *Builder) Int16(v int16) *Builder {
	b.buf.AppendInt16(v)
	return b
}

// Uint16 appends a little-endian uint16.
func (b *Builder) Uint16(v uint16) *Builder {
	b.buf.AppendInt16(int16(v))
	return b
}

// Int32 appends a little-endian int32.
func (b *Builder) Int32(v int32) *Builder {
	b.buf.AppendInt32(v)
	return b
}

// Zero appends n zero bytes.
func (b *Builder) Zero(n int) *Builder {
	for range n {
		b.buf.AppendUint8(0)
	}

	return b
}

// CString appends a NUL-terminated string.
func (b *Builder) CString(s string) *Builder {
	b.buf.AppendCString(s)
	return b
}

// LegacyHeader appends an 8208, 8209 or 9000 header.
func (b *Builder) LegacyHeader(version format.Version, subVersion int32) *Builder {
	h := section.LegacyHeader{Version: version, SubVersion: subVersion}
	_, _ = b.buf.Write(h.Bytes())

	return b
}

// CountedHeader appends a 9001 header.
func (b *Builder) CountedHeader(subVersion int32, count int16) *Builder {
	h := section.CountedHeader{Version: format.Version9001, SubVersion: subVersion, RecordCount: count}
	_, _ = b.buf.Write(h.Bytes())

	return b
}

// SchemaHeader appends a 9003 header. The schema length is filled in by EndSchema.
func (b *Builder) SchemaHeader(count, recordLength int16) *Builder {
	h := section.SchemaHeader{Version: format.Version9003, RecordCount: count, RecordByteLength: recordLength}
	_, _ = b.buf.Write(h.Bytes())

	return b
}

// EndSchema patches the schema length of a 9003 header so the schema ends
// at the current position.
func (b *Builder) EndSchema() *Builder {
	b.buf.PutInt32At(4, int32(b.buf.Len()-section.SchemaLengthBase))

	return b
}

// Category appends a category descriptor.
func (b *Builder) Category(name string) *Builder {
	return b.Uint8(TagCategory).CString(name)
}

// Analogue appends an analogue descriptor with the default scale.
func (b *Builder) Analogue(name string) *Builder {
	return b.Uint8(TagAnalogue).CString(name).color()
}

// AnalogueScaled appends an analogue descriptor with an explicit scale.
func (b *Builder) AnalogueScaled(name string, scale int16) *Builder {
	return b.Uint8(TagAnalogueScaled).CString(name).color().Int16(scale)
}

// DigitalInputs appends a digital group without direction mask. Every bit
// decodes inverted.
func (b *Builder) DigitalInputs(names ...string) *Builder {
	b.Uint8(TagDigitalInputs).Uint8(uint8(len(names)))
	return b.bits(names)
}

// DigitalOutputs appends a digital group whose bits are all outputs.
func (b *Builder) DigitalOutputs(names ...string) *Builder {
	b.Uint8(TagDigitalOutputs).Uint8(uint8(len(names)))
	return b.bits(names)
}

// DigitalIO appends a digital group with an explicit direction mask.
func (b *Builder) DigitalIO(directionMask uint16, names ...string) *Builder {
	b.Uint8(TagDigitalIO).Uint8(uint8(len(names))).Uint16(directionMask)
	return b.bits(names)
}

// Digital appends a digital group with every optional mask present.
func (b *Builder) Digital(visibility, factoryOnly, directionMask uint16, names ...string) *Builder {
	b.Uint8(TagDigitalIO | 0x40 | 0x20).Uint8(uint8(len(names)))
	b.Uint16(visibility).Uint16(factoryOnly).Uint16(directionMask)

	return b.bits(names)
}

// Enum appends an enum descriptor.
func (b *Builder) Enum(name string, labels ...string) *Builder {
	b.Uint8(TagEnum).CString(name).Uint8(uint8(len(labels)))
	for _, l := range labels {
		b.CString(l)
	}

	return b
}

func (b *Builder) bits(names []string) *Builder {
	for _, n := range names {
		b.CString(n).color()
	}

	return b
}

func (b *Builder) color() *Builder {
	return b.Uint8(0x20).Uint8(0x40).Uint8(0x60)
}
