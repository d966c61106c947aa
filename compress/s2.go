package compress

import (
	"bytes"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/luxdta/internal/pool"
)

// S2Compressor reads and writes the S2 stream format used by the s2c and
// s2d tools. Plain Snappy framed streams decode as well.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data into an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out bytes.Buffer
	w := s2.NewWriter(&out, s2.WriterConcurrency(1))
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decompress decompresses an S2 stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(s2.NewReader(bytes.NewReader(data))); err != nil {
		return nil, invalid("s2", err)
	}

	return bytes.Clone(buf.Bytes()), nil
}
