package section

// Header sizes in bytes.
const (
	VersionSize       = 4  // int32 version tag shared by every format
	LegacyHeaderSize  = 8  // version + sub-version
	CountedHeaderSize = 10 // version + sub-version + record count
	SchemaHeaderSize  = 12 // version + schema length + record count + record length
)

// Offsets inside a 9003 file.
const (
	// SchemaLengthBase is the offset SchemaByteLength is counted from.
	SchemaLengthBase = 8
)
