// Package live describes the positional vectors a heat pump controller
// returns over its live interface.
//
// The controller answers three read commands with flat int32 arrays:
// Parameters (settings, partly writable), Calculations (measured and derived
// values) and Visibilities (menu flags). Each array is decoded by zipping
// position i with field i of the matching Vector:
//
//	raw, _ := client.ReadCalculations(ctx)
//	s := live.Calculations().Read(raw)
//	s.SetTime(time.Now().Unix())
//
// Arrays longer than the known schema are kept; the extra positions are
// named Unknown_<i>.
//
// # Write path
//
// Only Parameters fields marked writable accept writes. EncodeWrite resolves
// the field by name and returns the position and raw value to send:
//
//	req, err := live.Parameters().EncodeWrite("ID_Einst_BWS_akt", 48.5)
//
// EncodeBatch encodes several assignments at once and reports every failure
// through a single joined error.
package live
