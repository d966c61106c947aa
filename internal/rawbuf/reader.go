// Package rawbuf provides a bounds-checked cursor over an immutable byte slice.
package rawbuf

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/luxdta/endian"
	"github.com/arloliu/luxdta/errs"
)

// Reader reads fixed-width values from a byte slice through a single cursor.
//
// The underlying slice is never modified. Every read that would run past the
// end of the slice fails with *errs.BufferUnderrunError and leaves the cursor
// where it was. A Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// New returns a little-endian Reader positioned at offset 0.
func New(data []byte) *Reader {
	return &Reader{data: data, engine: endian.FileEngine()}
}

// NewWithEngine returns a Reader using the given byte order.
func NewWithEngine(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Offset returns the cursor position.
func (r *Reader) Offset() int { return r.off }

// Len returns the total length of the underlying slice.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return &errs.BufferUnderrunError{Offset: r.off, Expected: off - r.off}
	}
	r.off = off

	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// Uint8 reads one unsigned byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// Int8 reads one signed byte.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

// Int16 reads a signed 16-bit integer.
func (r *Reader) Int16() (int16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return int16(r.engine.Uint16(b)), nil
}

// Uint16 reads an unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// Int32 reads a signed 32-bit integer.
func (r *Reader) Int32() (int32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil
}

// CString reads a NUL-terminated ISO 8859-1 string, returns it as UTF-8 and
// consumes the terminator.
//
// A missing terminator is reported as an underrun of one byte past the end.
func (r *Reader) CString() (string, error) {
	for i := r.off; i < len(r.data); i++ {
		if r.data[i] == 0 {
			s, err := latin1(r.data[r.off:i])
			if err != nil {
				return "", err
			}
			r.off = i + 1

			return s, nil
		}
	}

	return "", &errs.BufferUnderrunError{Offset: r.off, Expected: len(r.data) - r.off + 1}
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, &errs.BufferUnderrunError{Offset: r.off, Expected: n}
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

func latin1(b []byte) (string, error) {
	for _, c := range b {
		if c >= 0x80 {
			out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
			if err != nil {
				return "", err
			}

			return string(out), nil
		}
	}

	return string(b), nil
}
