// Package log provides the logging abstraction used across luxdta.
//
// Library packages never log on their own: decoders and transport clients
// accept a Logger through their options and default to a no-op logger. The
// command line tool wires a zerolog console logger.
//
// # Usage
//
//	logger := log.NewZerologAdapter(zerolog.InfoLevel)
//	res, err := dta.Decode(data, dta.WithLogger(logger))
//
// Tests use the no-op logger:
//
//	logger := log.NewNoopLogger()
package log
