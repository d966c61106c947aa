package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/format"
)

// Compressor compresses a whole buffer.
//
// Memory management:
//   - Returned slice is owned by the caller; NoOpCompressor returns the input itself
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a whole buffer produced by the matching
// Compressor or by the reference command line tool of the algorithm.
//
// Thread Safety: all built-in decompressors are safe for concurrent use.
type Decompressor interface {
	// Decompress returns an error wrapping ErrInvalidCompression if data is
	// corrupted or was written with a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared codec instance
//   - error: ErrUnknownCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, compressionType)
}

var extensions = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
}

// Detect returns the compression type implied by the file extension of
// path. Unknown extensions are reported as format.CompressionNone.
func Detect(path string) format.CompressionType {
	if ct, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}

	return format.CompressionNone
}

// Extension returns the canonical file extension of a compression type,
// or an empty string for format.CompressionNone.
func Extension(compressionType format.CompressionType) string {
	switch compressionType {
	case format.CompressionZstd:
		return ".zst"
	case format.CompressionS2:
		return ".s2"
	case format.CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// TrimExtension strips a recognized compression extension from path, so
// "log.dta.zst" becomes "log.dta".
func TrimExtension(path string) string {
	if Detect(path) == format.CompressionNone {
		return path
	}

	return strings.TrimSuffix(path, filepath.Ext(path))
}

// ParseType parses a compression name as used in configuration files:
// "none", "zstd", "s2" or "lz4", case-insensitive.
func ParseType(name string) (format.CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd", "zst":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCompression, name)
	}
}

func invalid(algorithm string, err error) error {
	return fmt.Errorf("%w: %s: %w", errs.ErrInvalidCompression, algorithm, err)
}
