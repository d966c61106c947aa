package pool

import (
	"io"
	"sync"

	"github.com/arloliu/luxdta/endian"
)

// Buffer sizes of the default pools.
const (
	FrameBufferDefaultSize  = 1024 * 4        // 4KiB, one live wire frame
	FrameBufferMaxThreshold = 1024 * 64       // 64KiB
	FileBufferDefaultSize   = 1024 * 256      // 256KiB, one decompressed DTA file
	FileBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte slice with byte-order aware append helpers.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
	// engine is the byte order used by the Append helpers.
	engine endian.EndianEngine
}

// NewByteBuffer creates a new ByteBuffer with the specified default size,
// appending integers in DTA file byte order.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B:      make([]byte, 0, defaultSize),
		engine: endian.FileEngine(),
	}
}

// SetEngine changes the byte order used by the Append helpers.
func (bb *ByteBuffer) SetEngine(engine endian.EndianEngine) {
	bb.engine = engine
}

// Engine returns the byte order used by the Append helpers.
func (bb *ByteBuffer) Engine() endian.EndianEngine {
	return bb.engine
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// AppendUint8 appends one byte.
func (bb *ByteBuffer) AppendUint8(v uint8) {
	bb.B = append(bb.B, v)
}

// AppendInt16 appends v in the buffer's byte order.
func (bb *ByteBuffer) AppendInt16(v int16) {
	bb.B = bb.engine.AppendUint16(bb.B, uint16(v))
}

// AppendInt32 appends v in the buffer's byte order.
func (bb *ByteBuffer) AppendInt32(v int32) {
	bb.B = bb.engine.AppendUint32(bb.B, uint32(v))
}

// AppendCString appends s followed by a NUL terminator.
func (bb *ByteBuffer) AppendCString(s string) {
	bb.B = append(bb.B, s...)
	bb.B = append(bb.B, 0)
}

// PutInt32At overwrites four bytes at off in the buffer's byte order.
// Panics if off is out of bounds.
func (bb *ByteBuffer) PutInt32At(off int, v int32) {
	bb.engine.PutUint32(bb.B[off:off+4:len(bb.B)], uint32(v))
}

// PutInt16At overwrites two bytes at off in the buffer's byte order.
// Panics if off is out of bounds.
func (bb *ByteBuffer) PutInt16At(off int, v int16) {
	bb.engine.PutUint16(bb.B[off:off+2:len(bb.B)], uint16(v))
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by FrameBufferDefaultSize, larger ones by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := FrameBufferDefaultSize
	if cap(bb.B) > 4*FrameBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ReadFrom appends everything read from r until EOF.
func (bb *ByteBuffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		bb.Grow(512)
		n, err := r.Read(bb.B[len(bb.B):cap(bb.B)])
		bb.B = bb.B[:len(bb.B)+n]
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers larger than maxThreshold are not returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool. The buffer uses the DTA file byte order.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bb.engine = endian.FileEngine()
	bbp.pool.Put(bb)
}

var (
	frameDefaultPool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
	fileDefaultPool  = NewByteBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)
)

// GetFrameBuffer retrieves a ByteBuffer for a live wire frame. The buffer
// uses the wire byte order.
func GetFrameBuffer() *ByteBuffer {
	bb := frameDefaultPool.Get()
	bb.engine = endian.WireEngine()

	return bb
}

// PutFrameBuffer returns a frame buffer to its pool.
func PutFrameBuffer(bb *ByteBuffer) {
	frameDefaultPool.Put(bb)
}

// GetFileBuffer retrieves a ByteBuffer sized for a whole DTA file.
func GetFileBuffer() *ByteBuffer {
	return fileDefaultPool.Get()
}

// PutFileBuffer returns a file buffer to its pool.
func PutFileBuffer(bb *ByteBuffer) {
	fileDefaultPool.Put(bb)
}
