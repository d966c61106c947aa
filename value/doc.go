// Package value implements the semantic value layer shared by the DTA
// decoders and the live telemetry schemas.
//
// A Datatype turns one raw int32 register into a TypedValue and back. The
// set of kinds is closed:
//
//   - Base: the raw integer, unchanged
//   - Scaling: raw*scale, encoded as round(value/scale)
//   - Boolean: raw != 0, encoded as 1 or 0
//   - Selection: labels[raw], encoded by reverse label lookup
//   - Custom: a paired decode/encode Codec (IPv4, TimeOfDay, TimeWindow,
//     MajorMinor, HalfHours, Timestamp, Character, ErrorCode)
//
// # Round Trip
//
// For every writable field and every value x in the field's domain,
// Decode(Encode(x)) returns x:
//
//	mode := value.Selection("ID_Ba_Hz_akt", true, "Automatic", "Party", "Off")
//	raw, _ := mode.Encode("Party")   // 1
//	v := mode.Decode(raw)            // "Party"
//
// # Errors
//
// Encode reports problems per field and never panics:
//   - *errs.EncodeTypeMismatchError when the runtime type does not fit the kind
//   - *errs.EncodeLabelNotFoundError when a selection label is unknown
//   - errs.ErrNotWritable when a Custom field has no encoder
package value
