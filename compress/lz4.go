package compress

import (
	"bytes"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/luxdta/internal/pool"
)

// lz4ReaderPool pools frame readers; Reset rebinds them to new input.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// LZ4Compressor reads and writes the LZ4 frame format, the format of
// .dta.lz4 archives written by the lz4 command line tool.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 frame with a content checksum.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer
	w := lz4.NewWriter(&out)
	if err := w.Apply(lz4.ChecksumOption(true), lz4.ConcurrencyOption(1)); err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decompress decompresses an LZ4 frame.
//
// The frame is streamed into a pooled file buffer, so the decompressed size
// does not need to be known in advance.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(r)
	r.Reset(bytes.NewReader(data))

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, invalid("lz4", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}
