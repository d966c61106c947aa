package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrorsUnwrapToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"unsupported version", &UnsupportedVersionError{Tag: 9002}, ErrUnsupportedVersion, "tag 9002"},
		{"malformed schema", &MalformedSchemaError{Offset: 12, Tag: 0x07}, ErrMalformedSchema, "0x07 at offset 12"},
		{"malformed record", &MalformedRecordError{Offset: 9, Tag: 0x02}, ErrMalformedRecord, "0x02 at offset 9"},
		{"buffer underrun", &BufferUnderrunError{Offset: 8, Expected: 4}, ErrBufferUnderrun, "need 4 bytes at offset 8"},
		{"type mismatch", &EncodeTypeMismatchError{Field: "TVL", GotKind: "string"}, ErrEncodeTypeMismatch, `"TVL" got string`},
		{"label not found", &EncodeLabelNotFoundError{Field: "mode", Label: "Turbo"}, ErrEncodeLabelNotFound, `no label "Turbo"`},
		{"out of range", &ValueOutOfRangeError{Field: "TVL", Value: "NaN"}, ErrValueOutOfRange, `"TVL" cannot hold NaN`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("decode: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)
			require.Contains(t, tt.err.Error(), tt.message)
		})
	}
}

func TestErrorsAsRecoversDetails(t *testing.T) {
	err := fmt.Errorf("record 3: %w", &BufferUnderrunError{Offset: 170, Expected: 2})

	var underrun *BufferUnderrunError
	require.True(t, errors.As(err, &underrun))
	require.Equal(t, 170, underrun.Offset)
	require.Equal(t, 2, underrun.Expected)
}
