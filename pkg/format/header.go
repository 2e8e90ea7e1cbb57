package format

import (
	"bytes"

	"github.com/ssargent/yxdb/pkg/codec"
)

const (
	// HeaderPageSize is the fixed byte size of the header page.
	HeaderPageSize = 512

	// Magic identifies a YXDB file without a spatial index.
	Magic = 0x00440204
	// MagicSpatial identifies a YXDB file carrying a spatial index.
	MagicSpatial = 0x00440205

	// DescriptionSize is the width of the free-form description field.
	DescriptionSize = 64

	headerReservedSize = HeaderPageSize - DescriptionSize - 4*7 - 8*3
)

// Header is the fixed 512-byte page at the start of every YXDB file.
// Fields the codec does not interpret (creation date, flags, mystery,
// reserved space) are preserved verbatim across a decode/encode cycle.
type Header struct {
	Description         [DescriptionSize]byte
	FileID              uint32
	CreationDate        uint32
	Flags1              uint32
	Flags2              uint32
	MetaInfoLength      uint32 // UTF-16 code units; byte length is twice this
	Mystery             uint32
	SpatialIndexPos     uint64 // absolute byte offset, 0 when absent
	RecordBlockIndexPos uint64 // absolute byte offset of the block index
	NumRecords          uint64
	CompressionVersion  uint32
	Reserved            [headerReservedSize]byte
}

// StartOfBlocks returns the absolute byte offset of the first block,
// which is pinned to the header page plus the metadata window.
func (h *Header) StartOfBlocks() int64 {
	return HeaderPageSize + 2*int64(h.MetaInfoLength)
}

// HasSpatialIndex reports whether the file magic declares a spatial
// index. The index body itself is opaque to this codec.
func (h *Header) HasSpatialIndex() bool {
	return h.FileID == MagicSpatial
}

// SetDescription stores a label in the fixed description field,
// truncating to its 64-byte width.
func (h *Header) SetDescription(s string) {
	h.Description = [DescriptionSize]byte{}
	copy(h.Description[:], s)
}

// DescriptionString returns the description up to its first NUL.
func (h *Header) DescriptionString() string {
	b := h.Description[:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// DecodeHeader decodes the 512-byte header page.
func DecodeHeader(b []byte) (*Header, error) {
	var h Header
	r := codec.NewReader(b)
	if err := r.Isolate(HeaderPageSize, "header", func(r *codec.Reader) error {
		return decodeHeaderFields(r, &h)
	}); err != nil {
		return nil, err
	}
	return &h, nil
}

func decodeHeaderFields(r *codec.Reader, h *Header) error {
	desc, err := r.Bytes(DescriptionSize, "description")
	if err != nil {
		return err
	}
	copy(h.Description[:], desc)

	for _, f := range []struct {
		dst   *uint32
		label string
	}{
		{&h.FileID, "file id"},
		{&h.CreationDate, "creation date"},
		{&h.Flags1, "flags1"},
		{&h.Flags2, "flags2"},
		{&h.MetaInfoLength, "meta info length"},
		{&h.Mystery, "mystery"},
	} {
		if *f.dst, err = r.Uint32(f.label); err != nil {
			return err
		}
	}

	if h.SpatialIndexPos, err = r.Uint64("spatial index position"); err != nil {
		return err
	}
	if h.RecordBlockIndexPos, err = r.Uint64("record block index position"); err != nil {
		return err
	}
	if h.NumRecords, err = r.Uint64("record count"); err != nil {
		return err
	}
	if h.CompressionVersion, err = r.Uint32("compression version"); err != nil {
		return err
	}

	reserved, err := r.Bytes(headerReservedSize, "reserved space")
	if err != nil {
		return err
	}
	copy(h.Reserved[:], reserved)
	return nil
}

// EncodeHeader serializes the header; the result is always exactly 512
// bytes.
func EncodeHeader(h *Header) []byte {
	w := codec.NewWriter()
	w.PutFixed(h.Description[:], DescriptionSize)
	w.PutUint32(h.FileID)
	w.PutUint32(h.CreationDate)
	w.PutUint32(h.Flags1)
	w.PutUint32(h.Flags2)
	w.PutUint32(h.MetaInfoLength)
	w.PutUint32(h.Mystery)
	w.PutUint64(h.SpatialIndexPos)
	w.PutUint64(h.RecordBlockIndexPos)
	w.PutUint64(h.NumRecords)
	w.PutUint32(h.CompressionVersion)
	w.PutFixed(h.Reserved[:], headerReservedSize)
	return w.Bytes()
}
