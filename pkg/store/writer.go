package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ssargent/yxdb/pkg/codec"
	"github.com/ssargent/yxdb/pkg/format"
)

// Writer builds a YXDB file record by record. Records buffer into blocks
// of at most BlockSize payload bytes; Close flushes the last block,
// appends the block index, and rewrites the header page with the final
// counts and offsets.
type Writer struct {
	file         *os.File
	schema       format.RecordInfo
	width        int
	header       format.Header
	metaLen      int   // encoded metadata byte length
	block        []byte
	blockOffsets []int64 // each block's offset relative to startOfBlocks
	blocksLen    int64   // encoded bytes emitted into the block region
	numRecords   uint64
	config       WriterConfig
	closed       bool
}

// NewWriter creates the file at config.FilePath and writes the header
// page and metadata section. The header's framing fields are finalized on
// Close.
func NewWriter(config WriterConfig) (*Writer, error) {
	if len(config.Metadata.Records) == 0 || len(config.Metadata.Records[0].Fields) == 0 {
		return nil, ErrSchemaRequired
	}
	schema := config.Metadata.Records[0]
	width, err := schema.Width()
	if err != nil {
		return nil, err
	}

	if config.BlockSize <= 0 || config.BlockSize > format.MaxBlockPayload {
		config.BlockSize = format.MaxBlockPayload
	}

	metaBytes, err := format.EncodeMetadata(&config.Metadata)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		file:    file,
		schema:  schema,
		width:   width,
		metaLen: len(metaBytes),
		config:  config,
	}
	w.header.FileID = format.Magic
	w.header.CreationDate = uint32(time.Now().Unix())
	w.header.MetaInfoLength = uint32(len(metaBytes) / 2)
	w.header.SetDescription(config.Description)

	// Header and metadata go down now; the header page is rewritten on
	// Close once the block region size and record count are known.
	if _, err := file.Write(format.EncodeHeader(&w.header)); err != nil {
		file.Close()
		return nil, err
	}
	if _, err := file.Write(metaBytes); err != nil {
		file.Close()
		return nil, err
	}
	metrics.filesCreated.Inc()
	return w, nil
}

// Append encodes one row against the writer's schema and buffers it.
func (w *Writer) Append(values []format.Value) error {
	if w.closed {
		return ErrClosed
	}
	if len(values) != len(w.schema.Fields) {
		return fmt.Errorf("%w: got %d values, schema has %d fields", ErrValueMismatch, len(values), len(w.schema.Fields))
	}

	cw := codec.NewWriter()
	for i, v := range values {
		if v.Type != w.schema.Fields[i].Type {
			return fmt.Errorf("%w: field %q is %s, value is %s", ErrValueMismatch, w.schema.Fields[i].Name, w.schema.Fields[i].Type, v.Type)
		}
		if err := format.EncodeValue(cw, v); err != nil {
			return err
		}
	}

	w.block = append(w.block, cw.Bytes()...)
	w.numRecords++
	metrics.recordsAppended.Inc()

	for len(w.block) >= w.config.BlockSize {
		if err := w.flushBlock(w.block[:w.config.BlockSize]); err != nil {
			return err
		}
		w.block = w.block[w.config.BlockSize:]
	}
	return nil
}

// flushBlock frames one chunk and appends it to the block region.
func (w *Writer) flushBlock(chunk []byte) error {
	encoded := format.EncodeBlock(chunk)
	if _, err := w.file.Write(encoded); err != nil {
		return err
	}
	w.blockOffsets = append(w.blockOffsets, w.blocksLen)
	w.blocksLen += int64(len(encoded))
	metrics.blocksWritten.Inc()
	metrics.payloadBytes.Add(float64(len(chunk)))
	return nil
}

// Close flushes buffered records, writes the block index, finalizes the
// header page and closes the file.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	// The block region is never empty: a file with no records still
	// carries one zero-payload block.
	if len(w.block) > 0 || w.blocksLen == 0 {
		if err := w.flushBlock(w.block); err != nil {
			w.file.Close()
			return err
		}
		w.block = nil
	}

	w.header.RecordBlockIndexPos = uint64(format.HeaderPageSize + w.metaLen + int(w.blocksLen))
	w.header.NumRecords = w.numRecords

	if _, err := w.file.Write(format.EncodeBlockIndex(w.blockOffsets)); err != nil {
		w.file.Close()
		return err
	}
	if _, err := w.file.Seek(0, 0); err != nil {
		w.file.Close()
		return err
	}
	if _, err := w.file.Write(format.EncodeHeader(&w.header)); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
