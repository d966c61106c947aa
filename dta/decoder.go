package dta

import (
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/options"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/section"
)

// Result is the output of a successful decode.
type Result struct {
	// Version is the resolved format tag.
	Version format.Version
	// SubVersion is the header sub-version of 9000 and 9001 files, 0 otherwise.
	SubVersion int32
	// Samples holds one sample per record, in file order.
	Samples sample.Series
	// Schema is the parsed schema of a 9003 file, nil for other versions.
	Schema *SchemaTable
}

// Decoder decodes one family of DTA formats.
type Decoder interface {
	// Decode decodes a complete DTA buffer. Either the whole buffer decodes
	// or an error is returned; partial results are never produced.
	Decode(data []byte, opts ...DecodeOption) (*Result, error)
}

var (
	legacy     Decoder = &LegacyDecoder{}
	tagged9000 Decoder = &Decoder9000{}
	counted    Decoder = &Decoder9001{}
	selfDesc   Decoder = &Decoder9003{}
)

// DecoderFor returns the decoder registered for a version tag.
//
// Parameters:
//   - version: DTA version tag
//
// Returns:
//   - Decoder: The decoder; 8208 and 8209 share one instance
//   - error: *errs.UnsupportedVersionError for unknown tags
func DecoderFor(version format.Version) (Decoder, error) {
	switch version {
	case format.Version8208, format.Version8209:
		return legacy, nil
	case format.Version9000:
		return tagged9000, nil
	case format.Version9001:
		return counted, nil
	case format.Version9003:
		return selfDesc, nil
	default:
		return nil, &errs.UnsupportedVersionError{Tag: int32(version)}
	}
}

// Decode reads the version tag at offset 0 and decodes data with the
// matching decoder.
//
// Parameters:
//   - data: Complete DTA file contents
//   - opts: Decode options
//
// Returns:
//   - *Result: Resolved version and decoded samples
//   - error: *errs.UnsupportedVersionError, *errs.BufferUnderrunError,
//     *errs.MalformedSchemaError or *errs.MalformedRecordError
func Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	version, err := section.PeekVersion(data)
	if err != nil {
		return nil, err
	}

	dec, err := DecoderFor(version)
	if err != nil {
		return nil, err
	}

	return dec.Decode(data, opts...)
}

// finish applies the series post-processing shared by all decoders.
func finish(res *Result, cfg *decodeConfig) *Result {
	if cfg.dropConstant {
		res.Samples = res.Samples.DropConstant()
	}

	cfg.logger.Debug("decoded DTA buffer",
		log.Int("version", int(res.Version)),
		log.Int("sub_version", int(res.SubVersion)),
		log.Int("samples", len(res.Samples)),
	)

	return res
}

func newConfig(opts []DecodeOption) (*decodeConfig, error) {
	return options.Build(defaultDecodeConfig, opts...)
}
