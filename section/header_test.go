package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
)

func TestLegacyHeader(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		h := LegacyHeader{Version: format.Version9000, SubVersion: 675}
		data := h.Bytes()
		require.Len(t, data, LegacyHeaderSize)

		parsed, err := ParseLegacyHeader(data)
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	})

	t.Run("short buffer", func(t *testing.T) {
		_, err := ParseLegacyHeader([]byte{0x11, 0x20, 0x00})
		require.ErrorIs(t, err, errs.ErrBufferUnderrun)
	})

	t.Run("parse requires exact size", func(t *testing.T) {
		var h LegacyHeader
		require.ErrorIs(t, h.Parse(make([]byte, 9)), errs.ErrInvalidHeaderSize)
	})
}

func TestCountedHeader(t *testing.T) {
	h := CountedHeader{Version: format.Version9001, SubVersion: 3, RecordCount: 2}
	data := append(h.Bytes(), 0xAA, 0xBB)

	parsed, err := ParseCountedHeader(data)
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = ParseCountedHeader(data[:9])
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestSchemaHeader(t *testing.T) {
	t.Run("schema end counts from byte eight", func(t *testing.T) {
		h := SchemaHeader{Version: format.Version9003, SchemaByteLength: 20, RecordCount: 2, RecordByteLength: 8}
		parsed, err := ParseSchemaHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, h, parsed)
		require.Equal(t, 28, parsed.SchemaEnd())
	})

	t.Run("schema length inside header", func(t *testing.T) {
		h := SchemaHeader{Version: format.Version9003, SchemaByteLength: 2}
		_, err := ParseSchemaHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrMalformedSchema)
	})

	t.Run("empty schema is valid", func(t *testing.T) {
		h := SchemaHeader{Version: format.Version9003, SchemaByteLength: 4}
		parsed, err := ParseSchemaHeader(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, SchemaHeaderSize, parsed.SchemaEnd())
	})
}

func TestPeekVersion(t *testing.T) {
	v, err := PeekVersion([]byte{0x11, 0x20, 0x00, 0x00, 0xFF})
	require.NoError(t, err)
	require.Equal(t, format.Version8209, v)

	_, err = PeekVersion(nil)
	var underrun *errs.BufferUnderrunError
	require.ErrorAs(t, err, &underrun)
	require.Equal(t, 4, underrun.Expected)
}
