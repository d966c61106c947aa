package pool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/luxdta/endian"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
	assert.Equal(t, endian.FileEngine(), bb.Engine())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.AppendCString("TVL")
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_AppendLittleEndian(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.AppendInt32(9003)
	bb.AppendInt16(-2)
	bb.AppendUint8(0x81)

	require.Equal(t, []byte{0x2B, 0x23, 0x00, 0x00, 0xFE, 0xFF, 0x81}, bb.Bytes())
}

func TestByteBuffer_AppendBigEndian(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetEngine(endian.WireEngine())

	bb.AppendInt32(3004)
	bb.AppendInt16(1)

	require.Equal(t, []byte{0x00, 0x00, 0x0B, 0xBC, 0x00, 0x01}, bb.Bytes())
}

func TestByteBuffer_AppendCString(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.AppendCString("HUP")
	bb.AppendCString("")

	require.Equal(t, []byte{'H', 'U', 'P', 0, 0}, bb.Bytes())
}

func TestByteBuffer_PutAt(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.AppendInt32(0)
	bb.AppendInt16(0)

	bb.PutInt32At(0, 8209)
	bb.PutInt16At(4, 168)

	require.Equal(t, []byte{0x11, 0x20, 0x00, 0x00, 0xA8, 0x00}, bb.Bytes())
	require.Panics(t, func() { bb.PutInt32At(4, 1) })
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.B = append(bb.B, "0123456789"...)
		bb.Grow(1)
		assert.Equal(t, 10+FrameBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("0123456789"), bb.Bytes())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * FrameBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(FrameBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), FrameBufferDefaultSize*3)
	})
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	var out bytes.Buffer
	m, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), m)
	require.Equal(t, "hello", out.String())
}

func TestByteBuffer_ReadFrom(t *testing.T) {
	payload := strings.Repeat("x", 3000)
	bb := NewByteBuffer(0)

	n, err := bb.ReadFrom(strings.NewReader(payload))
	require.NoError(t, err)
	require.Equal(t, int64(len(payload)), n)
	require.Equal(t, payload, string(bb.Bytes()))
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestByteBuffer_ReadFrom_Error(t *testing.T) {
	boom := errors.New("boom")
	bb := NewByteBuffer(0)

	_, err := bb.ReadFrom(failingReader{err: boom})
	require.ErrorIs(t, err, boom)

	_, err = bb.ReadFrom(io.LimitReader(strings.NewReader("abc"), 2))
	require.NoError(t, err)
	require.Equal(t, "ab", string(bb.Bytes()))
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.AppendCString("TRL")
	bb.SetEngine(endian.WireEngine())
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")
	require.Equal(t, endian.FileEngine(), again.Engine(), "pooled buffers come back in file order")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(32, 128)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := NewByteBuffer(256)
	p.Put(bb)

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 128)
}

func TestFrameBuffer_UsesWireOrder(t *testing.T) {
	bb := GetFrameBuffer()
	defer PutFrameBuffer(bb)

	bb.AppendInt32(1)
	require.Equal(t, []byte{0, 0, 0, 1}, bb.Bytes())
}

func TestFileBuffer(t *testing.T) {
	bb := GetFileBuffer()
	defer PutFileBuffer(bb)

	require.Equal(t, 0, bb.Len())
	bb.AppendInt32(1)
	require.Equal(t, []byte{1, 0, 0, 0}, bb.Bytes())
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for range 100 {
				bb := p.Get()
				bb.AppendInt32(int32(i))
				assert.Equal(t, 4, bb.Len())
				p.Put(bb)
			}
		}(i)
	}
	wg.Wait()
}
