package dta

import (
	"fmt"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/section"
)

// record9000Tail is gated on sub-versions below 676.
const record9000TailMax = 675

var record9000 = recordLayout{
	common: layout{
		timeField(),
		tagged(catHeating, "TVL", celsius),
		tagged(catHeating, "TRL", celsius),
		tagged(catHeating, "TWQein", celsius),
		tagged(catHeating, "TWQaus", celsius),
		tagged(catHeating, "THG", celsius),
		tagged(catHeating, "TBW", celsius),
		tagged(catHeating, "TFB1", celsius),
		tagged(catHeating, "TA", celsius),
		tagged(catHeating, "TRLext", celsius),
		tagged(catHeating, "TRLsoll", celsius),
		skip(2),
		digital(catOutputs, outputBits...),
		digital(catInputs,
			low("HD", 0),
			low("ND", 1),
			low("MOT", 2),
			low("ASD", 3),
			low("EVU", 4),
		),
		skip(9),
		tagged(catHeating, "Durchfluss", "l/h"),
		skip(1),
	},
	tails: []tailRule{
		{min: anySubVersion, max: record9000TailMax, fields: layout{
			skip(2),
			tagged(catHeating, "Asg.VDi", celsius),
			tagged(catHeating, "Asg.VDa", celsius),
			tagged(catHeating, "VDHz", celsius),
			skip(5),
			tagged(catHeating, "UeHz", "K"),
			tagged(catHeating, "UeHzsoll", "K"),
			skip(1),
		}},
	},
}

// Decoder9000 decodes the 9000 format.
//
// Analogue values carry a one-byte type tag selecting an 8 or 16 bit value
// and its sign. Records are variable width and are read until the buffer is
// exhausted.
type Decoder9000 struct{}

// Decode implements Decoder.
func (d *Decoder9000) Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, err := section.ParseLegacyHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Version != format.Version9000 {
		return nil, &errs.UnsupportedVersionError{Tag: int32(hdr.Version)}
	}

	rec := record9000.resolve(hdr.SubVersion)

	r := rawbuf.New(data)
	if err := r.Seek(section.LegacyHeaderSize); err != nil {
		return nil, err
	}

	var samples sample.Series
	for i := 0; r.Remaining() > 0; i++ {
		s, err := rec.decode(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		samples = append(samples, s)
	}

	return finish(&Result{Version: hdr.Version, SubVersion: hdr.SubVersion, Samples: samples}, cfg), nil
}
