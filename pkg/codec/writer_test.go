package codec

import (
	"bytes"
	"testing"
)

func TestWriter_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutUint16(0x1234)
	w.PutUint32(0x89ABCDEF)
	w.PutUint64(42)
	w.PutInt64(-42)
	w.PutBytes([]byte{0xFE})

	r := NewReader(w.Bytes())
	if v, _ := r.Uint16("u16"); v != 0x1234 {
		t.Errorf("u16 = %#x", v)
	}
	if v, _ := r.Uint32("u32"); v != 0x89ABCDEF {
		t.Errorf("u32 = %#x", v)
	}
	if v, _ := r.Uint64("u64"); v != 42 {
		t.Errorf("u64 = %d", v)
	}
	if v, _ := r.Int64("i64"); v != -42 {
		t.Errorf("i64 = %d", v)
	}
	tail, err := r.Bytes(1, "tail")
	if err != nil || tail[0] != 0xFE {
		t.Errorf("tail = %v, err = %v", tail, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d", r.Remaining())
	}
}

func TestWriter_PutFixed(t *testing.T) {
	w := NewWriter()
	w.PutFixed([]byte("abc"), 6)
	if !bytes.Equal(w.Bytes(), []byte{'a', 'b', 'c', 0, 0, 0}) {
		t.Errorf("padded = %v", w.Bytes())
	}

	w = NewWriter()
	w.PutFixed([]byte("abcdef"), 4)
	if !bytes.Equal(w.Bytes(), []byte("abcd")) {
		t.Errorf("truncated = %v", w.Bytes())
	}
}
