package codec

import "encoding/binary"

// Reader decodes little-endian primitives from a byte slice while tracking
// the absolute offset of every read. All failures carry that offset and a
// caller-supplied label so errors can be traced back to a file position.
type Reader struct {
	buf  []byte
	pos  int
	base int64 // absolute offset of buf[0] in the enclosing stream
}

// NewReader creates a reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the absolute offset of the next byte to be read.
func (r *Reader) Offset() int64 {
	return r.base + int64(r.pos)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Bytes reads exactly n bytes. The returned slice aliases the reader's
// buffer and must be copied if the caller retains it.
func (r *Reader) Bytes(n int, label string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, &TruncatedError{Offset: r.Offset(), Label: label, Want: n, Have: r.Remaining()}
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Uint16 reads a little-endian 16-bit unsigned integer.
func (r *Reader) Uint16(label string) (uint16, error) {
	b, err := r.Bytes(2, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian 32-bit unsigned integer.
func (r *Reader) Uint32(label string) (uint32, error) {
	b, err := r.Bytes(4, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 reads a little-endian 64-bit unsigned integer.
func (r *Reader) Uint64(label string) (uint64, error) {
	b, err := r.Bytes(8, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Int64 reads a little-endian 64-bit integer, reinterpreting the on-disk
// unsigned form as signed.
func (r *Reader) Int64(label string) (int64, error) {
	v, err := r.Uint64(label)
	return int64(v), err
}

// Isolate runs fn against a sub-reader covering exactly the next n bytes.
// The sub-parser must consume the window completely; anything else is an
// IsolationMismatchError. On success the enclosing reader advances past
// the window.
func (r *Reader) Isolate(n int, label string, fn func(*Reader) error) error {
	start := r.Offset()
	window, err := r.Bytes(n, label)
	if err != nil {
		return err
	}
	sub := &Reader{buf: window, base: start}
	if err := fn(sub); err != nil {
		return err
	}
	if sub.pos != n {
		return &IsolationMismatchError{Offset: start, Label: label, Window: n, Consumed: sub.pos}
	}
	return nil
}
