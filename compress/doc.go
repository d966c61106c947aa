// Package compress provides the codecs for compressed DTA archives.
//
// Controllers write plain .dta files, but archived logs are commonly kept
// compressed. Every codec reads the stream or frame format of the matching
// command line tool, so files produced outside this module decode as well:
//
//	| Extension  | Type                   | Format                    |
//	|------------|------------------------|---------------------------|
//	| .zst .zstd | format.CompressionZstd | Zstandard frames          |
//	| .s2        | format.CompressionS2   | S2 stream (s2c/s2d)       |
//	| .lz4       | format.CompressionLZ4  | LZ4 frame                 |
//	| other      | format.CompressionNone | passthrough               |
//
// # Usage
//
//	ct := compress.Detect("heatpump.dta.zst")
//	codec, err := compress.GetCodec(ct)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(data)
//
// Decompression failures wrap errs.ErrInvalidCompression; unknown types and
// names wrap errs.ErrUnknownCompression.
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool, and are safe
// for concurrent use.
package compress
