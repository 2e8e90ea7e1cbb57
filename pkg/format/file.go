package format

import (
	"github.com/ssargent/yxdb/pkg/codec"
)

// File is one fully decoded YXDB file. The value owns its header,
// metadata, flat record payload and block index; the on-disk block
// segmentation is a property of the encoding, not of the value.
type File struct {
	Header     Header
	Metadata   Metadata
	Payload    []byte
	BlockIndex []int64
}

// DecodeFile decodes a complete file image: the 512-byte header, the
// metadata window it declares, the block region up to
// recordBlockIndexPos, and the trailing block index.
func DecodeFile(b []byte) (*File, error) {
	f := &File{}
	r := codec.NewReader(b)

	if err := r.Isolate(HeaderPageSize, "header", func(r *codec.Reader) error {
		return decodeHeaderFields(r, &f.Header)
	}); err != nil {
		return nil, err
	}

	metaBytes, err := r.Bytes(2*int(f.Header.MetaInfoLength), "metadata")
	if err != nil {
		return nil, err
	}
	meta, err := DecodeMetadata(metaBytes)
	if err != nil {
		return nil, err
	}
	f.Metadata = *meta

	numBlocksBytes := int64(f.Header.RecordBlockIndexPos) - r.Offset()
	if numBlocksBytes < 0 {
		return nil, &NegativeBlockRegionError{
			BlockIndexPos: int64(f.Header.RecordBlockIndexPos),
			StartOfBlocks: r.Offset(),
		}
	}
	blockBytes, err := r.Bytes(int(numBlocksBytes), "block region")
	if err != nil {
		return nil, err
	}
	if f.Payload, err = DecodeBlocks(blockBytes); err != nil {
		return nil, err
	}

	indexBytes, err := r.Bytes(r.Remaining(), "block index")
	if err != nil {
		return nil, err
	}
	if f.BlockIndex, err = DecodeBlockIndex(indexBytes); err != nil {
		return nil, err
	}
	return f, nil
}

// EncodeFile serializes the file sections in on-disk order. Header fields
// that frame the other sections (metaInfoLength, recordBlockIndexPos,
// numRecords) are written as-is; call Finalize first unless the caller
// maintains them itself.
func EncodeFile(f *File) ([]byte, error) {
	metaBytes, err := EncodeMetadata(&f.Metadata)
	if err != nil {
		return nil, err
	}
	w := codec.NewWriter()
	w.PutBytes(EncodeHeader(&f.Header))
	w.PutBytes(metaBytes)
	w.PutBytes(EncodeBlocks(f.Payload))
	w.PutBytes(EncodeBlockIndex(f.BlockIndex))
	return w.Bytes(), nil
}

// Finalize recomputes the header fields that depend on section contents:
// metaInfoLength from the encoded metadata, recordBlockIndexPos from the
// encoded block region, and numRecords from the payload when the first
// schema has a computable record width. The file magic defaults to the
// non-spatial variant when unset.
func (f *File) Finalize() error {
	metaBytes, err := EncodeMetadata(&f.Metadata)
	if err != nil {
		return err
	}
	f.Header.MetaInfoLength = uint32(len(metaBytes) / 2)
	blockBytes := EncodeBlocks(f.Payload)
	f.Header.RecordBlockIndexPos = uint64(HeaderPageSize + len(metaBytes) + len(blockBytes))

	if f.Header.FileID == 0 {
		f.Header.FileID = Magic
	}
	if len(f.Metadata.Records) > 0 {
		if width, err := f.Metadata.Records[0].Width(); err == nil && width > 0 {
			f.Header.NumRecords = uint64(len(f.Payload) / width)
		}
	}
	return nil
}
