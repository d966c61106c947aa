// Package endian provides the byte order engines used by luxdta.
//
// DTA files written by the controller are little-endian, while the live TCP
// protocol transmits big-endian int32 words. Both sides go through the same
// EndianEngine interface so readers and frame builders stay byte-order
// agnostic:
//
//	file := endian.GetLittleEndianEngine()
//	tag := int32(file.Uint32(data[0:4]))
//
//	wire := endian.GetBigEndianEngine()
//	frame = wire.AppendUint32(frame, uint32(3004))
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used for DTA files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine used on the live wire.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// FileEngine returns the engine matching the DTA file byte order.
func FileEngine() EndianEngine {
	return GetLittleEndianEngine()
}

// WireEngine returns the engine matching the live protocol byte order.
func WireEngine() EndianEngine {
	return GetBigEndianEngine()
}
