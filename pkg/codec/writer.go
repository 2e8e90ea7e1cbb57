package codec

import (
	"bytes"
	"encoding/binary"
)

// Writer builds a byte stream out of little-endian primitives. It is the
// mirror of Reader; writes cannot fail.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated stream.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// PutBytes appends b verbatim.
func (w *Writer) PutBytes(b []byte) {
	w.buf.Write(b)
}

// PutFixed appends exactly n bytes: b truncated or zero-padded to n.
func (w *Writer) PutFixed(b []byte, n int) {
	if len(b) > n {
		b = b[:n]
	}
	w.buf.Write(b)
	for i := len(b); i < n; i++ {
		w.buf.WriteByte(0)
	}
}

// PutUint16 appends a little-endian 16-bit unsigned integer.
func (w *Writer) PutUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// PutUint32 appends a little-endian 32-bit unsigned integer.
func (w *Writer) PutUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// PutUint64 appends a little-endian 64-bit unsigned integer.
func (w *Writer) PutUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// PutInt64 appends a 64-bit integer in its unsigned little-endian form.
func (w *Writer) PutInt64(v int64) {
	w.PutUint64(uint64(v))
}
