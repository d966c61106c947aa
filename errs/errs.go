// Package errs defines the errors returned by the luxdta packages.
//
// Every failure is reachable through a sentinel error so callers can branch
// with errors.Is. Failures that carry structured context (buffer offsets,
// schema tags, field names) are additionally returned as typed errors which
// unwrap to their sentinel, so errors.As recovers the details:
//
//	var underrun *errs.BufferUnderrunError
//	if errors.As(err, &underrun) {
//	    fmt.Println(underrun.Offset, underrun.Expected)
//	}
package errs

import "errors"

// Decode errors. These abort the whole decode of a buffer.
var (
	ErrUnsupportedVersion  = errors.New("unsupported DTA version")
	ErrMalformedSchema     = errors.New("malformed DTA schema")
	ErrMalformedRecord     = errors.New("malformed DTA record")
	ErrBufferUnderrun      = errors.New("buffer underrun")
	ErrInvalidBitPosition  = errors.New("invalid bit position")
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidCurve        = errors.New("invalid calibration curve")
	ErrInvalidRecordLength = errors.New("invalid record length")
)

// Encode errors. These are local to a single field.
var (
	ErrEncodeTypeMismatch  = errors.New("encode type mismatch")
	ErrEncodeLabelNotFound = errors.New("encode label not found")
	ErrValueOutOfRange     = errors.New("value out of range")
	ErrFieldNotFound       = errors.New("field not found")
	ErrNotWritable         = errors.New("field is not writable")
	ErrImmutableValue      = errors.New("value is immutable")
)

// Collaborator errors.
var (
	ErrUnexpectedReply     = errors.New("unexpected reply")
	ErrUnknownCompression  = errors.New("unknown compression type")
	ErrInvalidCompression  = errors.New("invalid compression data")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrMissingTime         = errors.New("sample has no time field")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrConnectionNotActive = errors.New("connection is not active")
	ErrUnknownVector       = errors.New("unknown live vector")
	ErrLoginFailed         = errors.New("login failed")
)
