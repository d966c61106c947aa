// Package dta decodes heat-pump DTA telemetry files.
//
// A DTA file starts with a little-endian int32 version tag. Decode reads the
// tag and hands the buffer to the decoder registered for it:
//
//	8208, 8209  LegacyDecoder  fixed 168/188 byte records, calibrated temperatures
//	9000        Decoder9000    type-tagged analogues, records until end of buffer
//	9001        Decoder9001    counted fixed-width records, sub-version tails
//	9003        Decoder9003    self-describing: embedded schema, then records
//
// The fixed-schema decoders describe their records as declarative layouts:
// an ordered list of typed reads plus sub-version gated tail rules. The
// 9003 decoder parses the embedded schema into a SchemaTable first and then
// decodes every record against it.
//
// Decoding is all or nothing. Any read past the end of the buffer aborts
// with *errs.BufferUnderrunError and no samples are returned, because every
// record position depends on the records before it.
//
// # Usage
//
//	data, err := os.ReadFile("proclog.dta")
//	if err != nil {
//	    return err
//	}
//
//	res, err := dta.Decode(data, dta.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	for _, s := range res.Samples {
//	    tvl, _ := s.Get("TVL")
//	    fmt.Println(s.Time())
//	    fmt.Println(tvl)
//	}
//
// # Thread Safety
//
// Decoders hold no state; a Decoder may be used from multiple goroutines.
// A SchemaTable is read-only once parsed.
package dta
