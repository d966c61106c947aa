package dta

import (
	"fmt"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/section"
)

var superheat9001 = layout{
	skip(2),
	analogue(catHeating, "UeHz", 10, "K"),
	analogue(catHeating, "UeHzsoll", 10, "K"),
	skip(2),
}

var record9001 = recordLayout{
	common: layout{
		timeField(),
		analogue(catHeating, "TVL", 10, celsius),
		analogue(catHeating, "TRL", 10, celsius),
		analogue(catHeating, "TWQein", 10, celsius),
		analogue(catHeating, "TWQaus", 10, celsius),
		analogue(catHeating, "THG", 10, celsius),
		analogue(catHeating, "TBW", 10, celsius),
		analogue(catHeating, "TFB1", 10, celsius),
		analogue(catHeating, "TA", 10, celsius),
		analogue(catHeating, "TRLext", 10, celsius),
		analogue(catHeating, "TRLsoll", 10, celsius),
		analogue(catHeating, "TMK1soll", 10, celsius),
		digital(catInputs,
			high("HD", 0),
			high("ND", 1),
			high("MOT", 2),
			high("ASD", 3),
			low("EVU", 4),
		),
		digital(catOutputs, outputBits...),
		skip(2),
		analogue(catHeating, "TSS", 10, celsius),
		analogue(catHeating, "TSK", 10, celsius),
		analogue(catHeating, "TFB2", 10, celsius),
		analogue(catHeating, "TFB3", 10, celsius),
		analogue(catHeating, "TEE", 10, celsius),
		skip(4),
		analogue(catHeating, "TMK2soll", 10, celsius),
		analogue(catHeating, "TMK3soll", 10, celsius),
		analogue(catHeating, "AI1", 1000, "V"),
		analogue(catHeating, "AO1", 1000, "V"),
	},
	tails: []tailRule{
		{min: 1, max: 3, fields: layout{
			analogue(catHeating, "AO2", 1000, "V"),
			skip(2),
			analogue(catHeating, "Asg.VDi", 10, celsius),
			analogue(catHeating, "Asg.VDa", 10, celsius),
			analogue(catHeating, "VDHz", 10, celsius),
			skip(8),
		}},
		{min: 1, max: 1, fields: superheat9001},
		{min: 3, max: 3, fields: superheat9001},
		{min: 3, max: 3, fields: layout{skip(18)}},
	},
}

// Decoder9001 decodes the 9001 format.
//
// The header carries an explicit record count. Records are fixed width for
// a given sub-version: 54 bytes for sub-version 0, extended by tails for
// sub-versions 1 to 3.
type Decoder9001 struct{}

// Decode implements Decoder.
func (d *Decoder9001) Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, err := section.ParseCountedHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Version != format.Version9001 {
		return nil, &errs.UnsupportedVersionError{Tag: int32(hdr.Version)}
	}

	rec := record9001.resolve(hdr.SubVersion)

	r := rawbuf.New(data)
	if err := r.Seek(section.CountedHeaderSize); err != nil {
		return nil, err
	}

	count := max(int(hdr.RecordCount), 0)
	samples := make(sample.Series, 0, count)
	for i := range count {
		s, err := rec.decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		samples = append(samples, s)
	}

	if r.Remaining() > 0 {
		cfg.logger.Debug("trailing bytes after 9001 records",
			log.Int("records", count),
			log.Int("trailing", r.Remaining()),
		)
	}

	return finish(&Result{Version: hdr.Version, SubVersion: hdr.SubVersion, Samples: samples}, cfg), nil
}

// Record9001Width returns the record width of a 9001 sub-version.
func Record9001Width(subVersion int32) int {
	return record9001.resolve(subVersion).size()
}
