package store

import (
	"fmt"
	"io"
	"os"

	"github.com/ssargent/yxdb/pkg/codec"
	"github.com/ssargent/yxdb/pkg/format"
)

// Reader provides sequential and random access to the records of a YXDB
// file. The file image is decoded up front; iteration then walks the flat
// record payload with the first declared schema.
type Reader struct {
	file    *format.File
	records *codec.Reader
	width   int
	config  ReaderConfig
	closed  bool
}

// NewReader opens and decodes the file at config.FilePath.
func NewReader(config ReaderConfig) (*Reader, error) {
	data, err := os.ReadFile(config.FilePath)
	if err != nil {
		return nil, err
	}
	f, err := format.DecodeFile(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", config.FilePath, err)
	}

	r := &Reader{
		file:    f,
		records: codec.NewReader(f.Payload),
		config:  config,
	}
	if len(f.Metadata.Records) > 0 {
		// Record iteration needs a computable width; files with only
		// unimplemented field kinds still open for header and schema
		// inspection.
		if w, err := f.Metadata.Records[0].Width(); err == nil {
			r.width = w
		}
	}
	metrics.filesOpened.Inc()
	return r, nil
}

// Header returns the decoded header page.
func (r *Reader) Header() *format.Header {
	return &r.file.Header
}

// Metadata returns every record schema the file declares.
func (r *Reader) Metadata() *format.Metadata {
	return &r.file.Metadata
}

// BlockIndex returns the trailing block index section.
func (r *Reader) BlockIndex() []int64 {
	return r.file.BlockIndex
}

// NumRecords returns the record count derivable from the payload, falling
// back to the header's count when the schema width is unknown.
func (r *Reader) NumRecords() uint64 {
	if r.width > 0 {
		return uint64(len(r.file.Payload) / r.width)
	}
	return r.file.Header.NumRecords
}

// schema returns the iteration schema or ErrSchemaRequired.
func (r *Reader) schema() (*format.RecordInfo, error) {
	if len(r.file.Metadata.Records) == 0 || r.width == 0 {
		return nil, ErrSchemaRequired
	}
	return &r.file.Metadata.Records[0], nil
}

// Next decodes the record at the cursor and advances. io.EOF signals the
// end of the payload.
func (r *Reader) Next() ([]format.Value, error) {
	if r.closed {
		return nil, ErrClosed
	}
	ri, err := r.schema()
	if err != nil {
		return nil, err
	}
	if r.records.Remaining() == 0 {
		return nil, io.EOF
	}
	return decodeRecord(r.records, ri)
}

// Record decodes the record at index i without moving the cursor.
func (r *Reader) Record(i uint64) ([]format.Value, error) {
	if r.closed {
		return nil, ErrClosed
	}
	raw, err := r.RawRecord(i)
	if err != nil {
		return nil, err
	}
	ri, _ := r.schema()
	return decodeRecord(codec.NewReader(raw), ri)
}

// RawRecord returns the encoded bytes of record i. The slice aliases the
// decoded payload.
func (r *Reader) RawRecord(i uint64) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if _, err := r.schema(); err != nil {
		return nil, err
	}
	off := i * uint64(r.width)
	if off+uint64(r.width) > uint64(len(r.file.Payload)) {
		return nil, ErrRecordOutOfRange
	}
	return r.file.Payload[off : off+uint64(r.width)], nil
}

// DecodeRecord decodes one encoded record with the reader's schema. Used
// by callers holding raw record bytes from RawRecord or a cache.
func (r *Reader) DecodeRecord(raw []byte) ([]format.Value, error) {
	ri, err := r.schema()
	if err != nil {
		return nil, err
	}
	return decodeRecord(codec.NewReader(raw), ri)
}

// DecodeRecordWith decodes one encoded record against an explicit
// schema, for callers that have record bytes but no open Reader (the
// record cache path).
func DecodeRecordWith(ri *format.RecordInfo, raw []byte) ([]format.Value, error) {
	return decodeRecord(codec.NewReader(raw), ri)
}

func decodeRecord(cr *codec.Reader, ri *format.RecordInfo) ([]format.Value, error) {
	values := make([]format.Value, 0, len(ri.Fields))
	for _, f := range ri.Fields {
		v, err := format.DecodeValue(cr, f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		values = append(values, v)
	}
	metrics.recordsRead.Inc()
	return values, nil
}

// Close releases the reader. Further record access fails with ErrClosed.
func (r *Reader) Close() error {
	r.closed = true
	return nil
}
