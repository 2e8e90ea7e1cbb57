package format

import (
	"github.com/ssargent/yxdb/pkg/codec"
	"github.com/ssargent/yxdb/pkg/lzf"
)

const (
	// blockSizeMask extracts the 31-bit payload size from a block's
	// length prefix.
	blockSizeMask = 0x7FFFFFFF
	// blockUncompressedFlag is bit 31 of the length prefix. Set means
	// the payload is stored literally; clear means it is LZF-compressed.
	blockUncompressedFlag = 0x80000000

	// MaxBlockPayload is the writer's chunk bound. It equals the reader
	// decompression buffer, so any block this writer emits inflates
	// within every conforming reader's buffer.
	MaxBlockPayload = lzf.DecompressionBufferSize

	// RecordsPerBlock is the upstream writer's chunking hint. The
	// on-disk format does not constrain chunk sizes; this is kept for
	// writers that chunk by record count.
	RecordsPerBlock = 65536

	// SpatialIndexRecordBlockSize is the record group size used by
	// spatial block indexes. The index body is opaque here; the constant
	// is informational.
	SpatialIndexRecordBlockSize = 32
)

// EncodeBlock frames one chunk as a single block: LZF-compressed when
// that is strictly smaller, literal otherwise. Callers chunking their own
// payload (the file writer does) must keep chunks within MaxBlockPayload.
func EncodeBlock(payload []byte) []byte {
	w := codec.NewWriter()
	encodeBlock(w, payload)
	return w.Bytes()
}

// decodeBlock reads one length-prefixed block and returns its payload in
// literal form.
func decodeBlock(r *codec.Reader) ([]byte, error) {
	prefix, err := r.Uint32("block length prefix")
	if err != nil {
		return nil, err
	}
	size := int(prefix & blockSizeMask)
	payload, err := r.Bytes(size, "block payload")
	if err != nil {
		return nil, err
	}
	if prefix&blockUncompressedFlag != 0 {
		out := make([]byte, size)
		copy(out, payload)
		return out, nil
	}
	return lzf.Decompress(payload, lzf.DecompressionBufferSize)
}

// encodeBlock writes one block, compressing only when the LZF form is
// strictly smaller than the literal payload.
func encodeBlock(w *codec.Writer, payload []byte) {
	if compressed, ok := lzf.Compress(payload, len(payload)-1); ok {
		w.PutUint32(uint32(len(compressed)))
		w.PutBytes(compressed)
		return
	}
	w.PutUint32(uint32(len(payload)) | blockUncompressedFlag)
	w.PutBytes(payload)
}

// DecodeBlocks decodes a block region into the flat record payload: each
// block's literal bytes, concatenated in order, until the region is
// exhausted.
func DecodeBlocks(b []byte) ([]byte, error) {
	r := codec.NewReader(b)
	var payload []byte
	for r.Remaining() > 0 {
		block, err := decodeBlock(r)
		if err != nil {
			return nil, err
		}
		payload = append(payload, block...)
	}
	if payload == nil {
		payload = []byte{}
	}
	return payload, nil
}

// EncodeBlocks chunks the flat payload into blocks of at most
// MaxBlockPayload bytes. An empty payload is still one block: a
// zero-payload literal, so the block region is never empty on disk.
func EncodeBlocks(payload []byte) []byte {
	w := codec.NewWriter()
	if len(payload) == 0 {
		encodeBlock(w, nil)
		return w.Bytes()
	}
	for len(payload) > 0 {
		n := len(payload)
		if n > MaxBlockPayload {
			n = MaxBlockPayload
		}
		encodeBlock(w, payload[:n])
		payload = payload[n:]
	}
	return w.Bytes()
}
