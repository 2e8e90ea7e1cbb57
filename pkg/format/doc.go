// Package format implements the YXDB file format: a fixed 512-byte
// header, a UTF-16LE XML schema section, a stream of optionally
// LZF-compressed blocks holding the record payload, and a trailing block
// index.
//
// # File layout
//
//	[Header(512)][Metadata(2*metaInfoLength)][Blocks...][BlockIndex]
//
// The sections are contiguous: the first block starts at
// 512 + 2*metaInfoLength and the block region ends at the header's
// recordBlockIndexPos, where the index section runs to end of file.
//
// # Blocks
//
// Each block is a u32 little-endian length prefix followed by its
// payload. Bit 31 of the prefix is set when the payload is stored
// literally and clear when it is LZF-compressed; the remaining 31 bits
// are the stored payload size. Writers compress a chunk only when the
// compressed form is strictly smaller than the original, so a compressed
// block always inflates to more bytes than it stores. Readers inflate
// into a fixed 256 KiB buffer.
//
// # Metadata
//
// The schema section is an XML document:
//
//	<MetaInfo>
//	  <RecordInfo>
//	    <Field name="x" type="Double" />
//	  </RecordInfo>
//	</MetaInfo>
//
// rendered compactly, terminated by a newline and a NUL, and encoded as
// UTF-16LE without a BOM. The header's metaInfoLength counts UTF-16 code
// units, i.e. half the section's byte length.
//
// # Values
//
// Record cells use a fixed layout per field kind followed by one
// null-indicator byte (zero = present). The per-kind codec table
// currently implements Double; other kinds fail with UnimplementedError
// until a codec row is added.
package format
