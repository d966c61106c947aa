// Package luxdta decodes the DTA history dumps of heat pump controllers.
//
// A controller keeps its recent operating history in a ring buffer and hands
// it out as a binary DTA file. Five layouts exist in the field, told apart by
// the int32 version tag in the first four bytes:
//
//   - 8208 and 8209: fixed records with calibration-curve temperatures
//   - 9000: type-tagged analogue values
//   - 9001: a counted header with sub-version dependent record tails
//   - 9003: a self-describing file that embeds its own record schema
//
// Every layout decodes into the same shape: a sample.Series whose samples map
// field names to value.TypedValue, each sample carrying the record time in the
// "time" field as Unix seconds.
//
// # Basic Usage
//
// Decoding a buffer:
//
//	res, err := luxdta.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for _, s := range res.Samples {
//	    tvl, _ := s.Get("TVL")
//	    fmt.Println(tvl)
//	}
//
// Decoding an archived file, compressed or not:
//
//	res, err := luxdta.DecodeFile("proclog-2024-01-07.dta.zst",
//	    luxdta.WithDropConstantFields(),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dta package.
// The other building blocks live in their own packages:
//
//   - dta: version dispatcher and the per-format decoders
//   - live: Parameters, Calculations and Visibilities vectors of the live interface
//   - transport: TCP and WebSocket clients for the live interface
//   - export: JSON and YAML persistence of decoded series
//   - compress: zstd, s2 and lz4 codecs for archived files
package luxdta

import (
	"fmt"
	"os"

	"github.com/arloliu/luxdta/compress"
	"github.com/arloliu/luxdta/dta"
	"github.com/arloliu/luxdta/format"
	"github.com/arloliu/luxdta/internal/hash"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/section"
)

type (
	// Result is the output of a successful decode.
	Result = dta.Result
	// DecodeOption configures a decode.
	DecodeOption = dta.DecodeOption
)

// WithLogger sets the logger used while decoding.
func WithLogger(logger log.Logger) DecodeOption {
	return dta.WithLogger(logger)
}

// WithDropConstantFields removes fields whose value never changes across
// the decoded series.
func WithDropConstantFields() DecodeOption {
	return dta.WithDropConstantFields()
}

// WithStrictRecordLength makes 9003 decoding fail when the record byte
// length stored in the header disagrees with the schema.
func WithStrictRecordLength() DecodeOption {
	return dta.WithStrictRecordLength()
}

// Decode decodes a complete DTA buffer.
//
// Parameters:
//   - data: Complete DTA file contents, uncompressed
//   - opts: Decode options
//
// Returns:
//   - *Result: Resolved version, samples and, for 9003 files, the schema
//   - error: The first decode error; no partial result is returned
func Decode(data []byte, opts ...DecodeOption) (*Result, error) {
	return dta.Decode(data, opts...)
}

// DecodeFile reads and decodes the DTA file at path.
//
// Files ending in .zst, .zstd, .s2 or .lz4 are decompressed first, so an
// archived dump decodes the same way as a fresh one.
//
// Parameters:
//   - path: File to decode
//   - opts: Decode options
//
// Returns:
//   - *Result: Decoded result
//   - error: A read, decompression or decode error
func DecodeFile(path string, opts ...DecodeOption) (*Result, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return dta.Decode(data, opts...)
}

// ReadFile returns the uncompressed contents of the DTA file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compress.Detect(path))
	if err != nil {
		return nil, err
	}

	data, err = codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return data, nil
}

// Version returns the version tag of a DTA buffer without decoding it.
// The tag is returned even when no decoder supports it.
func Version(data []byte) (format.Version, error) {
	return section.PeekVersion(data)
}

// FieldID returns the 64-bit hash of a field name. Two sample fields with
// the same name always share an ID, across versions and files.
func FieldID(name string) uint64 {
	return hash.ID(name)
}
