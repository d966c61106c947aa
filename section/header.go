package section

import (
	"fmt"

	"github.com/arloliu/luxdta/endian"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
)

var engine = endian.FileEngine()

// LegacyHeader is the 8-byte header of the 8208, 8209 and 9000 formats.
type LegacyHeader struct {
	Version    format.Version // byte offset 0-3
	SubVersion int32          // byte offset 4-7
}

// Parse parses the header from a byte slice of exactly LegacyHeaderSize bytes.
func (h *LegacyHeader) Parse(data []byte) error {
	if len(data) != LegacyHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Version = format.Version(int32(engine.Uint32(data[0:4])))
	h.SubVersion = int32(engine.Uint32(data[4:8]))

	return nil
}

// Bytes serializes the header.
func (h *LegacyHeader) Bytes() []byte {
	b := make([]byte, 0, LegacyHeaderSize)
	b = engine.AppendUint32(b, uint32(h.Version))
	b = engine.AppendUint32(b, uint32(h.SubVersion))

	return b
}

// ParseLegacyHeader parses a LegacyHeader from the start of a DTA buffer.
//
// Parameters:
//   - data: DTA buffer (at least 8 bytes)
//
// Returns:
//   - LegacyHeader: Parsed header
//   - error: BufferUnderrunError if data is shorter than the header
func ParseLegacyHeader(data []byte) (LegacyHeader, error) {
	if len(data) < LegacyHeaderSize {
		return LegacyHeader{}, &errs.BufferUnderrunError{Offset: 0, Expected: LegacyHeaderSize}
	}

	h := LegacyHeader{}
	if err := h.Parse(data[:LegacyHeaderSize]); err != nil {
		return LegacyHeader{}, err
	}

	return h, nil
}

// CountedHeader is the 10-byte header of the 9001 format.
type CountedHeader struct {
	Version     format.Version // byte offset 0-3
	SubVersion  int32          // byte offset 4-7
	RecordCount int16          // byte offset 8-9
}

// Parse parses the header from a byte slice of exactly CountedHeaderSize bytes.
func (h *CountedHeader) Parse(data []byte) error {
	if len(data) != CountedHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Version = format.Version(int32(engine.Uint32(data[0:4])))
	h.SubVersion = int32(engine.Uint32(data[4:8]))
	h.RecordCount = int16(engine.Uint16(data[8:10]))

	return nil
}

// Bytes serializes the header.
func (h *CountedHeader) Bytes() []byte {
	b := make([]byte, 0, CountedHeaderSize)
	b = engine.AppendUint32(b, uint32(h.Version))
	b = engine.AppendUint32(b, uint32(h.SubVersion))
	b = engine.AppendUint16(b, uint16(h.RecordCount))

	return b
}

// ParseCountedHeader parses a CountedHeader from the start of a DTA buffer.
//
// Parameters:
//   - data: DTA buffer (at least 10 bytes)
//
// Returns:
//   - CountedHeader: Parsed header
//   - error: BufferUnderrunError if data is shorter than the header
func ParseCountedHeader(data []byte) (CountedHeader, error) {
	if len(data) < CountedHeaderSize {
		return CountedHeader{}, &errs.BufferUnderrunError{Offset: 0, Expected: CountedHeaderSize}
	}

	h := CountedHeader{}
	if err := h.Parse(data[:CountedHeaderSize]); err != nil {
		return CountedHeader{}, err
	}

	return h, nil
}

// SchemaHeader is the 12-byte header of the self-describing 9003 format.
type SchemaHeader struct {
	Version          format.Version // byte offset 0-3
	SchemaByteLength int32          // byte offset 4-7
	RecordCount      int16          // byte offset 8-9
	RecordByteLength int16          // byte offset 10-11
}

// Parse parses the header from a byte slice of exactly SchemaHeaderSize bytes.
func (h *SchemaHeader) Parse(data []byte) error {
	if len(data) != SchemaHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Version = format.Version(int32(engine.Uint32(data[0:4])))
	h.SchemaByteLength = int32(engine.Uint32(data[4:8]))
	h.RecordCount = int16(engine.Uint16(data[8:10]))
	h.RecordByteLength = int16(engine.Uint16(data[10:12]))

	return nil
}

// Bytes serializes the header.
func (h *SchemaHeader) Bytes() []byte {
	b := make([]byte, 0, SchemaHeaderSize)
	b = engine.AppendUint32(b, uint32(h.Version))
	b = engine.AppendUint32(b, uint32(h.SchemaByteLength))
	b = engine.AppendUint16(b, uint16(h.RecordCount))
	b = engine.AppendUint16(b, uint16(h.RecordByteLength))

	return b
}

// SchemaEnd returns the offset of the first byte after the schema section.
func (h *SchemaHeader) SchemaEnd() int {
	return SchemaLengthBase + int(h.SchemaByteLength)
}

// ParseSchemaHeader parses a SchemaHeader from the start of a DTA buffer.
//
// Parameters:
//   - data: DTA buffer (at least 12 bytes)
//
// Returns:
//   - SchemaHeader: Parsed header
//   - error: BufferUnderrunError if data is shorter than the header,
//     ErrMalformedSchema if the schema length points before the header end
func ParseSchemaHeader(data []byte) (SchemaHeader, error) {
	if len(data) < SchemaHeaderSize {
		return SchemaHeader{}, &errs.BufferUnderrunError{Offset: 0, Expected: SchemaHeaderSize}
	}

	h := SchemaHeader{}
	if err := h.Parse(data[:SchemaHeaderSize]); err != nil {
		return SchemaHeader{}, err
	}

	if h.SchemaEnd() < SchemaHeaderSize {
		return SchemaHeader{}, fmt.Errorf("%w: schema length %d ends inside the header", errs.ErrMalformedSchema, h.SchemaByteLength)
	}

	return h, nil
}

// PeekVersion reads the version tag at offset 0 without parsing the rest of the header.
func PeekVersion(data []byte) (format.Version, error) {
	if len(data) < VersionSize {
		return 0, &errs.BufferUnderrunError{Offset: 0, Expected: VersionSize}
	}

	return format.Version(int32(engine.Uint32(data[0:4]))), nil
}
