package dta

import (
	"fmt"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/rawbuf"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/section"
	"github.com/arloliu/luxdta/value"
)

// Decoder9003 decodes the self-describing 9003 format.
//
// Decoding runs in two passes. ParseSchema turns the embedded schema into a
// SchemaTable, then every record is decoded against that table in schema
// order. Records that carry nothing but the time field are dropped.
type Decoder9003 struct{}

// Decode implements Decoder.
func (d *Decoder9003) Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	hdr, err := section.ParseSchemaHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Version != format.Version9003 {
		return nil, &errs.UnsupportedVersionError{Tag: int32(hdr.Version)}
	}

	r := rawbuf.New(data)
	if err := r.Seek(section.SchemaHeaderSize); err != nil {
		return nil, err
	}

	table, err := ParseSchema(r, hdr.SchemaEnd())
	if err != nil {
		return nil, err
	}

	if dups := table.Duplicates(); len(dups) > 0 {
		cfg.logger.Warn("schema repeats field names, later values win",
			log.Any("names", dups),
		)
	}

	if err := checkRecordLength(hdr, table, cfg); err != nil {
		return nil, err
	}

	count := max(int(hdr.RecordCount), 0)
	samples := make(sample.Series, 0, count)
	dropped := 0
	for i := range count {
		s, err := decodeRecord(table, r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if s.Len() <= 1 {
			dropped++
			continue
		}
		samples = append(samples, s)
	}

	cfg.logger.Debug("decoded 9003 schema",
		log.Int("descriptors", table.Len()),
		log.Int("record_width", table.RecordWidth()),
		log.Uint64("fingerprint", table.Fingerprint()),
		log.Int("dropped_records", dropped),
	)

	return finish(&Result{Version: hdr.Version, Samples: samples, Schema: table}, cfg), nil
}

// checkRecordLength compares the declared record length with the width the
// schema consumes. Records are always read at the schema width; a mismatch
// is only an error in strict mode.
func checkRecordLength(hdr section.SchemaHeader, table *SchemaTable, cfg *decodeConfig) error {
	declared := int(hdr.RecordByteLength)
	consumed := table.RecordWidth()
	if declared == consumed {
		return nil
	}
	if cfg.strictRecordLength {
		return fmt.Errorf("%w: header declares %d bytes per record, schema consumes %d",
			errs.ErrInvalidRecordLength, declared, consumed)
	}

	cfg.logger.Debug("9003 record length differs from schema width",
		log.Int("declared", declared),
		log.Int("consumed", consumed),
	)

	return nil
}

// decodeRecord decodes one record against table. It never modifies table.
func decodeRecord(table *SchemaTable, r *rawbuf.Reader) (*sample.Sample, error) {
	epoch, err := r.Int32()
	if err != nil {
		return nil, err
	}

	s := sample.New(table.Len() + 1)
	s.SetTime(int64(epoch))

	for i := range table.descriptors {
		d := &table.descriptors[i]
		switch d.Kind {
		case DescriptorAnalogue:
			raw, err := r.Int16()
			if err != nil {
				return nil, err
			}
			s.Set(d.Name, value.Of(float64(raw)/float64(d.Scale), ""))
		case DescriptorDigital:
			word, err := r.Uint16()
			if err != nil {
				return nil, err
			}
			for _, b := range d.Bits {
				set := (word>>b.Position)&1 == 1
				s.Set(b.Name, value.Of(set != b.Inverted, ""))
			}
		}
	}

	return s, nil
}
