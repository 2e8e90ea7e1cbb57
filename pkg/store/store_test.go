package store

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/yxdb/pkg/format"
)

func doubleSchema(names ...string) format.Metadata {
	fields := make([]format.Field, 0, len(names))
	for _, n := range names {
		fields = append(fields, format.Field{Name: n, Type: format.Double})
	}
	return format.Metadata{Records: []format.RecordInfo{{Fields: fields}}}
}

func TestWriterReader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yxdb")

	w, err := NewWriter(WriterConfig{
		FilePath:    path,
		Metadata:    doubleSchema("x", "y"),
		Description: "round trip",
	})
	require.NoError(t, err)

	rows := [][]float64{{1.5, -2.5}, {3.14, 2.71}, {0, math.MaxFloat64}}
	for _, row := range rows {
		err := w.Append([]format.Value{format.DoubleValue(row[0]), format.DoubleValue(row[1])})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, uint64(3), r.Header().NumRecords)
	require.Equal(t, uint64(3), r.NumRecords())
	require.Equal(t, "round trip", r.Header().DescriptionString())
	require.False(t, r.Header().HasSpatialIndex())

	for _, row := range rows {
		values, err := r.Next()
		require.NoError(t, err)
		require.Len(t, values, 2)
		require.Equal(t, row[0], values[0].Double)
		require.Equal(t, row[1], values[1].Double)
	}
	_, err = r.Next()
	require.Equal(t, io.EOF, err)
}

func TestWriterReader_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yxdb")

	w, err := NewWriter(WriterConfig{FilePath: path, Metadata: doubleSchema("x")})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, uint64(0), r.NumRecords())
	// A record-less file still carries exactly one block.
	require.Equal(t, []int64{0}, r.BlockIndex())

	_, err = r.Next()
	require.Equal(t, io.EOF, err)
}

func TestWriter_SchemaRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yxdb")

	_, err := NewWriter(WriterConfig{FilePath: path})
	require.ErrorIs(t, err, ErrSchemaRequired)

	_, err = NewWriter(WriterConfig{FilePath: path, Metadata: format.Metadata{Records: []format.RecordInfo{{}}}})
	require.ErrorIs(t, err, ErrSchemaRequired)
}

func TestWriter_UnimplementedSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yxdb")
	meta := format.Metadata{Records: []format.RecordInfo{
		{Fields: []format.Field{{Name: "s", Type: format.VString, Size: 10}}},
	}}

	_, err := NewWriter(WriterConfig{FilePath: path, Metadata: meta})
	var ue *format.UnimplementedError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, format.VString, ue.Kind)
}

func TestWriter_RowValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yxdb")

	w, err := NewWriter(WriterConfig{FilePath: path, Metadata: doubleSchema("x", "y")})
	require.NoError(t, err)
	defer w.Close()

	err = w.Append([]format.Value{format.DoubleValue(1)})
	require.ErrorIs(t, err, ErrValueMismatch)

	err = w.Append([]format.Value{format.DoubleValue(1), {Type: format.Bool}})
	require.ErrorIs(t, err, ErrValueMismatch)
}

func TestWriterReader_NullValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nulls.yxdb")

	w, err := NewWriter(WriterConfig{FilePath: path, Metadata: doubleSchema("x")})
	require.NoError(t, err)
	require.NoError(t, w.Append([]format.Value{format.NullValue(format.Double)}))
	require.NoError(t, w.Append([]format.Value{format.DoubleValue(7)}))
	require.NoError(t, w.Close())

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer r.Close()

	first, err := r.Next()
	require.NoError(t, err)
	require.True(t, first[0].Null)

	second, err := r.Next()
	require.NoError(t, err)
	require.False(t, second[0].Null)
	require.Equal(t, 7.0, second[0].Double)
}

func TestWriter_MultiBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yxdb")

	// 9-byte records against a 90-byte block bound: one block per ten
	// records.
	w, err := NewWriter(WriterConfig{
		FilePath:  path,
		Metadata:  doubleSchema("x"),
		BlockSize: 90,
	})
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		require.NoError(t, w.Append([]format.Value{format.DoubleValue(float64(i))}))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, uint64(25), r.NumRecords())
	require.Len(t, r.BlockIndex(), 3)
	require.Equal(t, int64(0), r.BlockIndex()[0])

	for i := 0; i < 25; i++ {
		values, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, float64(i), values[0].Double)
	}
	_, err = r.Next()
	require.Equal(t, io.EOF, err)
}

func TestReader_RandomAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.yxdb")

	w, err := NewWriter(WriterConfig{FilePath: path, Metadata: doubleSchema("x")})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, w.Append([]format.Value{format.DoubleValue(float64(i) * 1.5)}))
	}
	require.NoError(t, w.Close())

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer r.Close()

	values, err := r.Record(7)
	require.NoError(t, err)
	require.Equal(t, 10.5, values[0].Double)

	raw, err := r.RawRecord(7)
	require.NoError(t, err)
	require.Len(t, raw, 9)
	decoded, err := r.DecodeRecord(raw)
	require.NoError(t, err)
	require.Equal(t, 10.5, decoded[0].Double)

	_, err = r.Record(10)
	require.ErrorIs(t, err, ErrRecordOutOfRange)
}

func TestReader_ClosedAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.yxdb")

	w, err := NewWriter(WriterConfig{FilePath: path, Metadata: doubleSchema("x")})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Close(), ErrClosed)
	require.ErrorIs(t, w.Append(nil), ErrClosed)

	r, err := NewReader(ReaderConfig{FilePath: path})
	require.NoError(t, err)
	require.NoError(t, r.Close())
	_, err = r.Next()
	require.ErrorIs(t, err, ErrClosed)
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader(ReaderConfig{FilePath: filepath.Join(t.TempDir(), "nope.yxdb")})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrClosed))
}
