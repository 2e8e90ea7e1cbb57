package store

import (
	"errors"

	"github.com/ssargent/yxdb/pkg/format"
)

var (
	// ErrClosed is returned by operations on a closed reader or writer.
	ErrClosed = errors.New("yxdb: file is closed")

	// ErrSchemaRequired is returned when a writer is created without a
	// record schema, or a reader is asked for records from a file whose
	// metadata declares none.
	ErrSchemaRequired = errors.New("yxdb: a record schema with at least one field is required")

	// ErrRecordOutOfRange is returned for a record index past the end of
	// the payload.
	ErrRecordOutOfRange = errors.New("yxdb: record index out of range")

	// ErrValueMismatch is returned when an appended row does not match
	// the writer's schema.
	ErrValueMismatch = errors.New("yxdb: row does not match the record schema")
)

// ReaderConfig configures a file reader.
type ReaderConfig struct {
	FilePath string
}

// WriterConfig configures a file writer.
type WriterConfig struct {
	FilePath string

	// Metadata must declare at least one record schema; records appended
	// to the writer follow the first one.
	Metadata format.Metadata

	// Description is stamped into the header's 64-byte label field.
	Description string

	// BlockSize bounds the payload bytes per block. Zero means
	// format.MaxBlockPayload; larger values are clamped to it so every
	// emitted block stays readable with the standard decompression
	// buffer.
	BlockSize int
}
