// Package section defines the fixed-size file headers of the DTA formats.
//
// Every DTA file starts with a little-endian int32 version tag. What follows
// the tag depends on the format family, so this package provides one header
// type per family, each with Parse/Bytes methods and a ParseXxx constructor
// that validates the buffer length first.
//
// # Header Layouts
//
// LegacyHeader (8 bytes), used by 8208, 8209 and 9000:
//
//	Bytes  | Field        | Type  | Description
//	-------|--------------|-------|----------------------------------
//	0-3    | Version      | int32 | Format tag
//	4-7    | SubVersion   | int32 | Firmware sub-version (9000 only)
//
// CountedHeader (10 bytes), used by 9001:
//
//	Bytes  | Field        | Type  | Description
//	-------|--------------|-------|----------------------------------
//	0-3    | Version      | int32 | Format tag
//	4-7    | SubVersion   | int32 | Selects the record tail variant
//	8-9    | RecordCount  | int16 | Number of records that follow
//
// SchemaHeader (12 bytes), used by 9003:
//
//	Bytes  | Field            | Type  | Description
//	-------|------------------|-------|------------------------------
//	0-3    | Version          | int32 | Format tag
//	4-7    | SchemaByteLength | int32 | Schema length, counted from byte 8
//	8-9    | RecordCount      | int16 | Number of records
//	10-11  | RecordByteLength | int16 | Declared bytes per record
//
// The schema length of a 9003 file includes the two int16 count fields, so
// the schema section ends at byte 8+SchemaByteLength.
//
// # Byte Order
//
// All headers are little-endian. Bytes uses the same engine, so
// Parse(Bytes()) reproduces the header.
package section
