package format

import "strconv"

type (
	// Version is the int32 discriminator stored in the first four bytes of a DTA file.
	Version int32
	// Kind identifies a field kind of the semantic value layer.
	Kind uint8
	// CompressionType identifies the codec an archived DTA or export file was written with.
	CompressionType uint8
)

const (
	Version8208 Version = 8208 // Version8208 is the legacy 188-byte record format.
	Version8209 Version = 8209 // Version8209 is the legacy 168-byte record format.
	Version9000 Version = 9000 // Version9000 uses type-tagged analogue values.
	Version9001 Version = 9001 // Version9001 uses a counted header and sub-version tails.
	Version9003 Version = 9003 // Version9003 embeds its record schema.

	KindBase      Kind = 0x1 // KindBase passes the raw integer through.
	KindScaling   Kind = 0x2 // KindScaling multiplies the raw integer by a scale.
	KindBoolean   Kind = 0x3 // KindBoolean maps non-zero to true.
	KindSelection Kind = 0x4 // KindSelection maps the raw integer to a label.
	KindCustom    Kind = 0x5 // KindCustom uses a paired decode/encode function.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Known reports whether v is one of the documented DTA versions.
func (v Version) Known() bool {
	switch v {
	case Version8208, Version8209, Version9000, Version9001, Version9003:
		return true
	default:
		return false
	}
}

func (v Version) String() string {
	if v.Known() {
		return "DTA " + strconv.Itoa(int(v))
	}

	return "Unknown(" + strconv.Itoa(int(v)) + ")"
}

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "Base"
	case KindScaling:
		return "Scaling"
	case KindBoolean:
		return "Boolean"
	case KindSelection:
		return "Selection"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
