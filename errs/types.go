package errs

import "fmt"

// UnsupportedVersionError reports a version tag no decoder is registered for.
type UnsupportedVersionError struct {
	Tag int32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: tag %d", ErrUnsupportedVersion, e.Tag)
}

func (e *UnsupportedVersionError) Unwrap() error { return ErrUnsupportedVersion }

// MalformedSchemaError reports an unknown descriptor tag in a self-describing schema.
type MalformedSchemaError struct {
	Offset int
	Tag    byte
}

func (e *MalformedSchemaError) Error() string {
	return fmt.Sprintf("%s: unknown field tag 0x%02X at offset %d", ErrMalformedSchema, e.Tag, e.Offset)
}

func (e *MalformedSchemaError) Unwrap() error { return ErrMalformedSchema }

// MalformedRecordError reports an unknown value type tag inside a record.
type MalformedRecordError struct {
	Offset int
	Tag    byte
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: unknown value type 0x%02X at offset %d", ErrMalformedRecord, e.Tag, e.Offset)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// BufferUnderrunError reports a fixed-width read past the end of the buffer.
//
// Offset is the cursor position where the read started and Expected the
// number of bytes the read needed.
type BufferUnderrunError struct {
	Offset   int
	Expected int
}

func (e *BufferUnderrunError) Error() string {
	return fmt.Sprintf("%s: need %d bytes at offset %d", ErrBufferUnderrun, e.Expected, e.Offset)
}

func (e *BufferUnderrunError) Unwrap() error { return ErrBufferUnderrun }

// EncodeTypeMismatchError reports a value whose runtime type does not fit the field kind.
type EncodeTypeMismatchError struct {
	Field   string
	GotKind string
}

func (e *EncodeTypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q got %s", ErrEncodeTypeMismatch, e.Field, e.GotKind)
}

func (e *EncodeTypeMismatchError) Unwrap() error { return ErrEncodeTypeMismatch }

// EncodeLabelNotFoundError reports a selection label absent from the field's label set.
type EncodeLabelNotFoundError struct {
	Field string
	Label string
}

func (e *EncodeLabelNotFoundError) Error() string {
	return fmt.Sprintf("%s: field %q has no label %q", ErrEncodeLabelNotFound, e.Field, e.Label)
}

func (e *EncodeLabelNotFoundError) Unwrap() error { return ErrEncodeLabelNotFound }

// ValueOutOfRangeError reports a value that has no raw register representation,
// such as NaN or a number beyond int32 after scaling.
type ValueOutOfRangeError struct {
	Field string
	Value string
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: field %q cannot hold %s", ErrValueOutOfRange, e.Field, e.Value)
}

func (e *ValueOutOfRangeError) Unwrap() error { return ErrValueOutOfRange }
