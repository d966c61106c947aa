package dta

import (
	"fmt"

	"github.com/arloliu/luxdta/calib"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/section"
)

const (
	catOutputs = "Digitale Ausgänge"
	catInputs  = "Digitale Eingänge"
	catHeating = "Heizkreis"
	catComfort = "Comfort-Platine"
	catComfIO  = "Comfort-Platine EA"
)

// outputBits is the output status word shared by the 8209, 9000 and 9001 layouts.
var outputBits = []bit{
	high("HUP", 0),  // heating circulation pump
	high("ZUP", 1),  // auxiliary circulation pump
	high("BUP", 2),  // hot water pump or three-way valve
	high("ZW2", 3),  // second auxiliary heater / fault
	high("MA1", 4),  // mixer 1 open
	high("MZ1", 5),  // mixer 1 close
	high("ZIP", 6),  // circulation pump
	high("VD1", 7),  // compressor 1
	high("VD2", 8),  // compressor 2
	high("VENT", 9), // housing ventilation
	high("AV", 10),  // defrost valve
	high("VBS", 11), // fan, well or brine pump
	high("ZW1", 12), // first auxiliary heater
}

// legacyRecord is the 8209 record layout; 8208 appends 20 unused bytes.
// Tail rules are keyed by the version tag itself.
var legacyRecord = recordLayout{
	common: layout{
		timeField(),
		skip(4),
		digital(catOutputs, outputBits...),
		skip(34),
		digital(catInputs,
			low("HD", 0),  // high pressure switch
			low("ND", 1),  // low pressure switch
			low("MOT", 2), // motor protection
			low("ASD", 3), // defrost, brine pressure or flow
			high("EVU", 4),
		),
		skip(6),
		curve(catHeating, "TFB1", calib.HeatingCircuit),
		curve(catHeating, "TBW", calib.HeatingCircuit),
		curve(catHeating, "TA", calib.HeatSource),
		curve(catHeating, "TRLext", calib.HeatingCircuit),
		curve(catHeating, "TRL", calib.HeatingCircuit),
		curve(catHeating, "TVL", calib.HeatingCircuit),
		curve(catHeating, "THG", calib.HotGas),
		curve(catHeating, "TWQaus", calib.HeatSource),
		skip(2),
		curve(catHeating, "TWQein", calib.HeatSource),
		skip(8),
		analogue32(catHeating, "TRLsoll", 10, celsius),
		analogue32(catHeating, "TMK1soll", 10, celsius),
		skip(44),
		digital(catComfIO,
			high("AI1DIV", 6),
			high("SUP", 7),
			high("FUP2", 8),
			high("MA2", 9),
			high("MZ2", 10),
			high("MA3", 11),
			high("MZ3", 11),
			high("FUP3", 12),
			high("ZW3", 14),
			high("SLP", 15),
		),
		skip(2),
		analogue(catComfort, "AO1", 381.825, "V"),
		analogue(catComfort, "AO2", 381.825, "V"),
		digital(catComfIO, low("SWT", 4)),
		skip(2),
		curve(catComfort, "TSS", calib.Solar),
		curve(catComfort, "TSK", calib.Solar),
		curve(catComfort, "TFB2", calib.MixedCircuit),
		curve(catComfort, "TFB3", calib.MixedCircuit),
		curve(catComfort, "TEE", calib.MixedCircuit),
		skip(4),
		analogue(catComfort, "AI1", 275.406, "V"),
		analogue32(catComfort, "TMK2soll", 10, celsius),
		analogue32(catComfort, "TMK3soll", 10, celsius),
	},
	tails: []tailRule{
		{min: int32(format.Version8208), max: int32(format.Version8208), fields: layout{skip(20)}},
	},
}

// LegacyDecoder decodes the 8208 and 8209 formats.
//
// Records have a fixed width of 168 bytes (8209) or 188 bytes (8208) and
// start after the 8-byte header. Temperatures are converted through the
// calibration curves of package calib.
type LegacyDecoder struct{}

// Decode implements Decoder.
func (d *LegacyDecoder) Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, err := section.ParseLegacyHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Version != format.Version8208 && hdr.Version != format.Version8209 {
		return nil, &errs.UnsupportedVersionError{Tag: int32(hdr.Version)}
	}

	rec := legacyRecord.resolve(int32(hdr.Version))
	width := rec.size()
	count := len(data) / width

	r := rawbuf.New(data)
	if err := r.Seek(section.LegacyHeaderSize); err != nil {
		return nil, err
	}

	samples := make(sample.Series, 0, count)
	for i := range count {
		s, err := rec.decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		samples = append(samples, s)
	}

	return finish(&Result{Version: hdr.Version, Samples: samples}, cfg), nil
}

// LegacyRecordWidth returns the record width of a legacy version tag.
func LegacyRecordWidth(version format.Version) int {
	return legacyRecord.resolve(int32(version)).size()
}
