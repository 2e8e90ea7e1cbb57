package format

import (
	"math"

	"github.com/ssargent/yxdb/pkg/codec"
)

// DecodeBlockIndex decodes the trailing index section: a u32 count
// followed by exactly count 64-bit offsets. The section must hold the
// declared entries and nothing else.
func DecodeBlockIndex(b []byte) ([]int64, error) {
	r := codec.NewReader(b)
	count, err := r.Uint32("block index count")
	if err != nil {
		return nil, err
	}
	if r.Remaining() != int(count)*8 {
		return nil, &codec.IsolationMismatchError{
			Offset:   r.Offset(),
			Label:    "block index entries",
			Window:   int(count) * 8,
			Consumed: r.Remaining(),
		}
	}
	index := make([]int64, 0, count)
	for i := 0; i < int(count); i++ {
		raw, err := r.Uint64("block index entry")
		if err != nil {
			return nil, err
		}
		if raw > math.MaxInt64 {
			return nil, &OffsetOverflowError{Index: i, Value: raw}
		}
		index = append(index, int64(raw))
	}
	return index, nil
}

// EncodeBlockIndex serializes the index as a count plus each offset in
// its unsigned little-endian form.
func EncodeBlockIndex(index []int64) []byte {
	w := codec.NewWriter()
	w.PutUint32(uint32(len(index)))
	for _, off := range index {
		w.PutInt64(off)
	}
	return w.Bytes()
}
