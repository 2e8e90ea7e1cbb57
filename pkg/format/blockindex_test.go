package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/yxdb/pkg/codec"
)

func TestBlockIndex_RoundTrip(t *testing.T) {
	for _, index := range [][]int64{
		{},
		{0},
		{0, 262144, 524288},
		{1<<62 + 3},
	} {
		encoded := EncodeBlockIndex(index)
		require.Len(t, encoded, 4+8*len(index))

		decoded, err := DecodeBlockIndex(encoded)
		require.NoError(t, err)
		require.Equal(t, len(index), len(decoded))
		for i := range index {
			require.Equal(t, index[i], decoded[i])
		}
	}
}

func TestBlockIndex_RegionMustMatchCount(t *testing.T) {
	encoded := EncodeBlockIndex([]int64{1, 2, 3})

	var ie *codec.IsolationMismatchError

	_, err := DecodeBlockIndex(encoded[:len(encoded)-8])
	require.ErrorAs(t, err, &ie)

	_, err = DecodeBlockIndex(append(encoded, 0x00))
	require.ErrorAs(t, err, &ie)
}

func TestBlockIndex_OffsetOverflow(t *testing.T) {
	w := codec.NewWriter()
	w.PutUint32(1)
	w.PutUint64(1 << 63)

	_, err := DecodeBlockIndex(w.Bytes())
	var oe *OffsetOverflowError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, uint64(1)<<63, oe.Value)
}

func TestBlockIndex_TruncatedCount(t *testing.T) {
	_, err := DecodeBlockIndex([]byte{0x01, 0x00})
	var te *codec.TruncatedError
	require.ErrorAs(t, err, &te)
}
