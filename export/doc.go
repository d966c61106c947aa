// Package export persists decoded series as JSON or YAML.
//
// Both formats hold an array of samples, each an object mapping field names
// to {"value": v, "unit": u}; every sample carries a "time" field:
//
//	[
//	  {"time": {"value": 1700000000, "unit": ""}, "TVL": {"value": 30.5, "unit": "°C"}}
//	]
//
// Save and Load pick the format from the file extension and transparently
// compress when it ends in .zst, .s2 or .lz4 (see package compress). Merge
// adds samples to an existing file, ordered by time, skipping times the file
// already holds.
package export
