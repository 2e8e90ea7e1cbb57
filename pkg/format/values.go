package format

import (
	"math"

	"github.com/ssargent/yxdb/pkg/codec"
)

// Value is one decoded cell. Only the member matching the field kind is
// meaningful; Null reports a non-zero null-indicator byte.
type Value struct {
	Type   FieldType
	Double float64
	Null   bool
}

// DoubleValue builds a present Double cell.
func DoubleValue(f float64) Value {
	return Value{Type: Double, Double: f}
}

// NullValue builds a null cell of the given kind.
func NullValue(t FieldType) Value {
	return Value{Type: t, Null: true}
}

// valueCodec is one entry of the per-type codec table. Fixed-width kinds
// encode their payload followed by a single null-indicator byte: zero for
// present, non-zero for null.
type valueCodec struct {
	width  int
	encode func(w *codec.Writer, v Value)
	decode func(r *codec.Reader) (Value, error)
}

// valueCodecs dispatches by field kind. Kinds without an entry fail with
// UnimplementedError; extending the format means adding a row here, not
// touching the framing.
var valueCodecs = map[FieldType]valueCodec{
	Double: {
		width: 9,
		encode: func(w *codec.Writer, v Value) {
			if v.Null {
				w.PutUint64(0)
				w.PutBytes([]byte{1})
				return
			}
			w.PutUint64(math.Float64bits(v.Double))
			w.PutBytes([]byte{0})
		},
		decode: func(r *codec.Reader) (Value, error) {
			bits, err := r.Uint64("double value")
			if err != nil {
				return Value{}, err
			}
			flag, err := r.Bytes(1, "double null indicator")
			if err != nil {
				return Value{}, err
			}
			return Value{Type: Double, Double: math.Float64frombits(bits), Null: flag[0] != 0}, nil
		},
	},
}

// ValueWidth returns the encoded byte width of one cell of this kind.
func (t FieldType) ValueWidth() (int, error) {
	vc, ok := valueCodecs[t]
	if !ok {
		return 0, &UnimplementedError{Kind: t}
	}
	return vc.width, nil
}

// EncodeValue appends one cell to w.
func EncodeValue(w *codec.Writer, v Value) error {
	vc, ok := valueCodecs[v.Type]
	if !ok {
		return &UnimplementedError{Kind: v.Type}
	}
	vc.encode(w, v)
	return nil
}

// DecodeValue reads one cell of the given kind from r.
func DecodeValue(r *codec.Reader, t FieldType) (Value, error) {
	vc, ok := valueCodecs[t]
	if !ok {
		return Value{}, &UnimplementedError{Kind: t}
	}
	return vc.decode(r)
}

// Width returns the byte width of one full record under this schema, or
// UnimplementedError if any field kind has no codec.
func (ri *RecordInfo) Width() (int, error) {
	total := 0
	for _, f := range ri.Fields {
		w, err := f.Type.ValueWidth()
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}
