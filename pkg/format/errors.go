package format

import "fmt"

// NegativeBlockRegionError reports a header whose recordBlockIndexPos
// points before the end of the metadata section.
type NegativeBlockRegionError struct {
	BlockIndexPos int64 // recordBlockIndexPos from the header
	StartOfBlocks int64 // first byte after the metadata section
}

func (e *NegativeBlockRegionError) Error() string {
	return fmt.Sprintf("record block index position %d precedes end of metadata at %d", e.BlockIndexPos, e.StartOfBlocks)
}

// MetadataTruncatedError reports a metadata window too short to hold the
// trailing newline and NUL sentinels, or one that lacks them.
type MetadataTruncatedError struct {
	Length int // byte length of the window
}

func (e *MetadataTruncatedError) Error() string {
	return fmt.Sprintf("metadata window of %d bytes lacks the trailing newline and NUL sentinels", e.Length)
}

// XMLMalformedError wraps an XML parser rejection of the metadata text.
type XMLMalformedError struct {
	Err error
}

func (e *XMLMalformedError) Error() string {
	return fmt.Sprintf("malformed metadata xml: %v", e.Err)
}

func (e *XMLMalformedError) Unwrap() error {
	return e.Err
}

// BadFieldAttributeError reports a Field size or scale attribute that is
// not a base-10 integer.
type BadFieldAttributeError struct {
	Field string // field name, if known
	Attr  string // attribute name
	Value string // offending text
}

func (e *BadFieldAttributeError) Error() string {
	return fmt.Sprintf("field %q: attribute %s=%q is not a base-10 integer", e.Field, e.Attr, e.Value)
}

// UnimplementedError reports an encode or decode of a field kind the
// value codec table has no entry for.
type UnimplementedError struct {
	Kind FieldType
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("no value codec for field type %s", e.Kind)
}

// OffsetOverflowError reports a block index entry above the signed 64-bit
// range. The on-disk form is unsigned; offsets that large are not
// addressable and decoding fails rather than truncating silently.
type OffsetOverflowError struct {
	Index int    // position within the block index
	Value uint64 // raw on-disk value
}

func (e *OffsetOverflowError) Error() string {
	return fmt.Sprintf("block index entry %d overflows int64: %#x", e.Index, e.Value)
}
