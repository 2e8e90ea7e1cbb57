// Package codec provides the primitive binary layer for YXDB files.
//
// Every multi-byte integer in a YXDB file is little-endian. The Reader
// decodes those primitives from an in-memory byte slice while tracking the
// absolute offset of each read, so a failure deep inside a nested section
// still names the file position and the field being read. The Writer is
// the mirror image and cannot fail.
//
// # Offsets and labels
//
// Reads take a short human label ("header", "block payload", ...). When a
// read runs past the end of the stream the resulting TruncatedError
// carries that label together with the absolute offset, the byte count
// required and the byte count available.
//
// # Isolation
//
// YXDB sections are framed by byte counts declared elsewhere in the file:
// the header is exactly 512 bytes, the metadata window is 2*metaInfoLength
// bytes, and the block region runs up to recordBlockIndexPos. Isolate runs
// a sub-parser against exactly such a window:
//
//	err := r.Isolate(512, "header", func(r *codec.Reader) error {
//	    ...
//	})
//
// A sub-parser that consumes fewer or more bytes than its window is a
// framing bug in the file (or the parser); Isolate reports it as an
// IsolationMismatchError rather than letting the misalignment corrupt
// every subsequent read.
package codec
