package dta

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/dtatest"
)

var common9001Names = []string{
	"time",
	"TVL", "TRL", "TWQein", "TWQaus", "THG", "TBW", "TFB1", "TA", "TRLext", "TRLsoll", "TMK1soll",
	"HD", "ND", "MOT", "ASD", "EVU",
	"HUP", "ZUP", "BUP", "ZW2", "MA1", "MZ1", "ZIP", "VD1", "VD2", "VENT", "AV", "VBS", "ZW1",
	"TSS", "TSK", "TFB2", "TFB3", "TEE",
	"TMK2soll", "TMK3soll",
	"AI1", "AO1",
}

func append9001Record(b *dtatest.Builder, epoch int32, subVersion int32) {
	b.Int32(epoch)
	b.Int16(352) // TVL
	b.Int16(298) // TRL
	b.Zero(2 * 9)
	b.Uint16(1<<0 | 1<<4) // HD set, EVU raw set
	b.Uint16(1 << 7)      // VD1
	b.Zero(2)
	b.Int16(-45) // TSS
	b.Zero(2*4 + 4 + 2*2)
	b.Int16(4500) // AI1
	b.Int16(1000) // AO1

	if subVersion >= 1 && subVersion <= 3 {
		b.Int16(2500) // AO2
		b.Zero(2)
		b.Int16(-31) // Asg.VDi
		b.Int16(12)  // Asg.VDa
		b.Int16(655) // VDHz
		b.Zero(8)
	}
	if subVersion == 1 || subVersion == 3 {
		b.Zero(2)
		b.Int16(53) // UeHz
		b.Int16(50) // UeHzsoll
		b.Zero(2)
	}
	if subVersion == 3 {
		b.Zero(18)
	}
}

func TestRecord9001Width(t *testing.T) {
	tests := []struct {
		subVersion int32
		width      int
	}{
		{0, 54},
		{1, 80},
		{2, 72},
		{3, 98},
		{4, 54},
		{-1, 54},
	}
	for _, tt := range tests {
		require.Equal(t, tt.width, Record9001Width(tt.subVersion), "sub-version %d", tt.subVersion)
	}
}

func TestDecoder9001_SubVersion0(t *testing.T) {
	b := dtatest.New().CountedHeader(0, 2)
	append9001Record(b, 1700000000, 0)
	append9001Record(b, 1700000060, 0)
	data := b.Bytes()
	require.Len(t, data, 10+2*54)

	res, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, format.Version9001, res.Version)
	require.Equal(t, int32(0), res.SubVersion)
	require.Len(t, res.Samples, 2)

	for i, s := range res.Samples {
		require.Equal(t, common9001Names, s.Names())
		require.False(t, s.Has("AO2"))
		require.False(t, s.Has("UeHz"))
		require.Equal(t, int64(1700000000+60*i), epochOf(t, s))
	}

	s := res.Samples[0]
	require.InDelta(t, 35.2, floatField(t, s, "TVL"), 1e-12)
	require.InDelta(t, 29.8, floatField(t, s, "TRL"), 1e-12)
	require.InDelta(t, -4.5, floatField(t, s, "TSS"), 1e-12)
	require.InDelta(t, 4.5, floatField(t, s, "AI1"), 1e-12)
	require.InDelta(t, 1.0, floatField(t, s, "AO1"), 1e-12)

	ai, _ := s.Get("AI1")
	require.Equal(t, "V", ai.Unit())

	// Inputs are active high here, except EVU.
	require.True(t, boolField(t, s, "HD"))
	require.False(t, boolField(t, s, "ND"))
	require.False(t, boolField(t, s, "EVU"))
	require.True(t, boolField(t, s, "VD1"))
	require.False(t, boolField(t, s, "HUP"))
}

func TestDecoder9001_SubVersionTails(t *testing.T) {
	tests := []struct {
		subVersion int32
		present    []string
		absent     []string
	}{
		{1, []string{"AO2", "Asg.VDi", "Asg.VDa", "VDHz", "UeHz", "UeHzsoll"}, nil},
		{2, []string{"AO2", "Asg.VDi", "VDHz"}, []string{"UeHz", "UeHzsoll"}},
		{3, []string{"AO2", "Asg.VDi", "UeHz", "UeHzsoll"}, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("sub-version %d", tt.subVersion), func(t *testing.T) {
			b := dtatest.New().CountedHeader(tt.subVersion, 2)
			append9001Record(b, 1700000000, tt.subVersion)
			append9001Record(b, 1700000060, tt.subVersion)
			data := b.Bytes()
			require.Len(t, data, 10+2*Record9001Width(tt.subVersion))

			res, err := Decode(data)
			require.NoError(t, err)
			require.Len(t, res.Samples, 2)

			s := res.Samples[1]
			require.Equal(t, int64(1700000060), epochOf(t, s))
			for _, name := range tt.present {
				require.True(t, s.Has(name), "sub-version %d: missing %s", tt.subVersion, name)
			}
			for _, name := range tt.absent {
				require.False(t, s.Has(name), "sub-version %d: unexpected %s", tt.subVersion, name)
			}

			require.InDelta(t, 2.5, floatField(t, s, "AO2"), 1e-12)
			require.InDelta(t, -3.1, floatField(t, s, "Asg.VDi"), 1e-12)
			require.InDelta(t, 65.5, floatField(t, s, "VDHz"), 1e-12)
			if s.Has("UeHz") {
				require.InDelta(t, 5.3, floatField(t, s, "UeHz"), 1e-12)
			}
		})
	}
}

func TestDecoder9001_CountExceedsData(t *testing.T) {
	b := dtatest.New().CountedHeader(0, 3)
	append9001Record(b, 1700000000, 0)
	append9001Record(b, 1700000060, 0)

	res, err := Decode(b.Bytes())
	require.Nil(t, res)

	var under *errs.BufferUnderrunError
	require.ErrorAs(t, err, &under)
	require.Equal(t, 10+2*54, under.Offset)
	require.Equal(t, 4, under.Expected)
}

func TestDecoder9001_HeaderTooShort(t *testing.T) {
	data := dtatest.New().Int32(int32(format.Version9001)).Int32(0).Bytes()

	_, err := Decode(data)

	var under *errs.BufferUnderrunError
	require.ErrorAs(t, err, &under)
	require.Equal(t, 10, under.Expected)
}

func TestDecoder9001_ZeroRecords(t *testing.T) {
	data := dtatest.New().CountedHeader(2, 0).Bytes()

	res, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, res.Samples)
	require.Equal(t, int32(2), res.SubVersion)
}
