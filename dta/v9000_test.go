package dta

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/dtatest"
)

// tagged9000Value appends one type-tagged analogue.
func tagged9000Value(b *dtatest.Builder, tag uint8, v int16) {
	b.Uint8(tag)
	switch tag {
	case 0, 4:
		b.Int8(int8(v))
	default:
		b.Int16(v)
	}
}

func append9000Record(b *dtatest.Builder, epoch int32, withTail bool) {
	b.Int32(epoch)
	tagged9000Value(b, 1, 355) // TVL
	tagged9000Value(b, 0, 30)  // TRL
	tagged9000Value(b, 4, 25)  // TWQein
	tagged9000Value(b, 5, 100) // TWQaus
	// THG .. TRLsoll
	for range 6 {
		tagged9000Value(b, 0, 0)
	}
	b.Zero(2)
	b.Uint16(1 << 2) // BUP
	b.Uint16(1 << 4) // EVU raw set
	b.Zero(9)
	tagged9000Value(b, 1, 1200) // Durchfluss
	b.Zero(1)

	if withTail {
		b.Zero(2)
		tagged9000Value(b, 0, -52) // Asg.VDi
		tagged9000Value(b, 0, 10)  // Asg.VDa
		tagged9000Value(b, 1, 610) // VDHz
		b.Zero(5)
		tagged9000Value(b, 0, 58) // UeHz
		tagged9000Value(b, 0, 60) // UeHzsoll
		b.Zero(1)
	}
}

func TestDecoder9000_WithTail(t *testing.T) {
	b := dtatest.New().LegacyHeader(format.Version9000, 600)
	append9000Record(b, 1700000000, true)
	append9000Record(b, 1700000060, true)

	res, err := Decode(b.Bytes())
	require.NoError(t, err)
	require.Equal(t, format.Version9000, res.Version)
	require.Equal(t, int32(600), res.SubVersion)
	require.Len(t, res.Samples, 2)

	s := res.Samples[0]
	require.Equal(t, int64(1700000000), epochOf(t, s))
	require.InDelta(t, 35.5, floatField(t, s, "TVL"), 1e-12)
	require.InDelta(t, 3.0, floatField(t, s, "TRL"), 1e-12)
	require.InDelta(t, -2.5, floatField(t, s, "TWQein"), 1e-12)
	require.InDelta(t, -10.0, floatField(t, s, "TWQaus"), 1e-12)
	require.InDelta(t, 120.0, floatField(t, s, "Durchfluss"), 1e-12)
	require.InDelta(t, -5.2, floatField(t, s, "Asg.VDi"), 1e-12)
	require.InDelta(t, 61.0, floatField(t, s, "VDHz"), 1e-12)
	require.InDelta(t, 5.8, floatField(t, s, "UeHz"), 1e-12)
	require.InDelta(t, 6.0, floatField(t, s, "UeHzsoll"), 1e-12)

	ue, _ := s.Get("UeHz")
	require.Equal(t, "K", ue.Unit())

	require.True(t, boolField(t, s, "BUP"))
	require.False(t, boolField(t, s, "HUP"))
	require.True(t, boolField(t, s, "HD"))
	require.False(t, boolField(t, s, "EVU"))

	require.Equal(t, int64(1700000060), epochOf(t, res.Samples[1]))
}

func TestDecoder9000_WithoutTail(t *testing.T) {
	b := dtatest.New().LegacyHeader(format.Version9000, 676)
	append9000Record(b, 1700000000, false)

	res, err := Decode(b.Bytes())
	require.NoError(t, err)
	require.Len(t, res.Samples, 1)

	s := res.Samples[0]
	require.True(t, s.Has("Durchfluss"))
	for _, name := range []string{"Asg.VDi", "Asg.VDa", "VDHz", "UeHz", "UeHzsoll"} {
		require.False(t, s.Has(name), name)
	}
}

func TestDecoder9000_TailBoundary(t *testing.T) {
	require.Contains(t, record9000.resolve(675).names(), "UeHz")
	require.NotContains(t, record9000.resolve(676).names(), "UeHz")
	require.Contains(t, record9000.resolve(0).names(), "Asg.VDi")
	require.Equal(t, -1, record9000.resolve(0).size())
}

func TestDecoder9000_HeaderOnly(t *testing.T) {
	data := dtatest.New().LegacyHeader(format.Version9000, 700).Bytes()

	res, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, res.Samples)
}

func TestDecoder9000_UnknownValueTag(t *testing.T) {
	data := dtatest.New().
		LegacyHeader(format.Version9000, 700).
		Int32(1700000000).
		Uint8(7).Int16(0).
		Bytes()

	res, err := Decode(data)
	require.Nil(t, res)
	require.ErrorIs(t, err, errs.ErrMalformedRecord)

	var mr *errs.MalformedRecordError
	require.ErrorAs(t, err, &mr)
	require.Equal(t, 12, mr.Offset)
	require.Equal(t, byte(7), mr.Tag)
}

func TestDecoder9000_TruncatedRecord(t *testing.T) {
	b := dtatest.New().LegacyHeader(format.Version9000, 700)
	append9000Record(b, 1700000000, false)
	b.Int32(1700000060).Uint8(1)

	_, err := Decode(b.Bytes())
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}
