// Package lzf frames the LZF compressor the way YXDB block payloads use
// it: compression is attempted against a hard output bound and simply
// declined when the data does not shrink, and decompression runs into a
// fixed 256 KiB buffer shared by every conforming reader.
package lzf

import (
	"fmt"

	golzf "github.com/zhuyie/golzf"
)

// DecompressionBufferSize is the output bound every YXDB reader applies
// when inflating a block. A block whose decompressed form exceeds it is
// unreadable and must never be written.
const DecompressionBufferSize = 0x40000

// BufferTooSmallError reports LZF output that would exceed the bound the
// caller supplied.
type BufferTooSmallError struct {
	Limit int
	Err   error // underlying decoder error, if any
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("lzf output exceeds %d-byte buffer", e.Limit)
}

func (e *BufferTooSmallError) Unwrap() error {
	return e.Err
}

// Compress compresses input into at most maxOut bytes. The second return
// is false when the compressed form would not fit, which callers treat as
// "store literally". Inputs too short for LZF to shrink report false
// without invoking the compressor.
func Compress(input []byte, maxOut int) ([]byte, bool) {
	if maxOut <= 0 || len(input) < 2 {
		return nil, false
	}
	out := make([]byte, maxOut)
	n, err := golzf.Compress(input, out)
	if err != nil || n <= 0 || n > maxOut {
		return nil, false
	}
	return out[:n], true
}

// Decompress inflates input into a buffer of bufSize bytes and returns
// the decompressed prefix. Output exceeding the buffer is a
// BufferTooSmallError.
func Decompress(input []byte, bufSize int) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}
	out := make([]byte, bufSize)
	n, err := golzf.Decompress(input, out)
	if err != nil {
		return nil, &BufferTooSmallError{Limit: bufSize, Err: err}
	}
	return out[:n], nil
}
