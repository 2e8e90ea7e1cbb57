package format

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/yxdb/pkg/lzf"
)

func TestBlocks_RoundTripRepetitive(t *testing.T) {
	payload := bytes.Repeat([]byte{0x41}, 1000)

	encoded := EncodeBlocks(payload)

	// Repetitive data compresses: flag clear, stored size strictly
	// below the literal length.
	prefix := binary.LittleEndian.Uint32(encoded[:4])
	require.Zero(t, prefix&blockUncompressedFlag, "block must be compressed")
	require.Less(t, int(prefix&blockSizeMask), 1000)

	decoded, err := DecodeBlocks(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestBlocks_RoundTripIncompressible(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	payload := make([]byte, 1000)
	rng.Read(payload)

	encoded := EncodeBlocks(payload)

	prefix := binary.LittleEndian.Uint32(encoded[:4])
	require.NotZero(t, prefix&blockUncompressedFlag, "noise must be stored literally")
	require.Equal(t, uint32(1000), prefix&blockSizeMask)
	require.Equal(t, payload, encoded[4:])

	decoded, err := DecodeBlocks(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestBlocks_EmptyPayloadIsOneBlock(t *testing.T) {
	encoded := EncodeBlocks(nil)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x80}, encoded)

	decoded, err := DecodeBlocks(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestBlocks_ChunksLargePayloads(t *testing.T) {
	payload := bytes.Repeat([]byte{0x7A}, MaxBlockPayload+MaxBlockPayload/2)

	encoded := EncodeBlocks(payload)
	decoded, err := DecodeBlocks(encoded)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)

	// Two chunks, two blocks.
	r := bytes.NewReader(encoded)
	blocks := 0
	for r.Len() > 0 {
		var prefix uint32
		require.NoError(t, binary.Read(r, binary.LittleEndian, &prefix))
		_, err := r.Seek(int64(prefix&blockSizeMask), 1)
		require.NoError(t, err)
		blocks++
	}
	require.Equal(t, 2, blocks)
}

func TestBlocks_CompressedInflatesLarger(t *testing.T) {
	payload := bytes.Repeat([]byte("yxdb"), 500)

	encoded := EncodeBlocks(payload)
	prefix := binary.LittleEndian.Uint32(encoded[:4])
	require.Zero(t, prefix&blockUncompressedFlag)

	stored := encoded[4 : 4+int(prefix&blockSizeMask)]
	inflated, err := lzf.Decompress(stored, lzf.DecompressionBufferSize)
	require.NoError(t, err)
	require.Greater(t, len(inflated), len(stored), "writer only compresses when strictly smaller")
}

func TestBlocks_TruncatedPayload(t *testing.T) {
	encoded := EncodeBlocks(bytes.Repeat([]byte{0x41}, 100))

	_, err := DecodeBlocks(encoded[:len(encoded)-1])
	require.Error(t, err)
}

func TestBlocks_MultipleBlocksConcatenate(t *testing.T) {
	w := EncodeBlocks(bytes.Repeat([]byte{0x01}, 300))
	w = append(w, EncodeBlocks(bytes.Repeat([]byte{0x02}, 300))...)

	decoded, err := DecodeBlocks(w)
	require.NoError(t, err)
	want := append(bytes.Repeat([]byte{0x01}, 300), bytes.Repeat([]byte{0x02}, 300)...)
	require.Equal(t, want, decoded)
}
