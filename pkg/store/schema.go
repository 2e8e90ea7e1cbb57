package store

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ssargent/yxdb/pkg/format"
)

// ReadSchema reads only the header page and metadata section of a file,
// skipping the block region entirely. Cache hits and schema inspection
// use this to avoid inflating payload they do not need.
func ReadSchema(path string) (*format.Header, *format.Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	headerBytes := make([]byte, format.HeaderPageSize)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	header, err := format.DecodeHeader(headerBytes)
	if err != nil {
		return nil, nil, err
	}

	metaBytes := make([]byte, 2*int(header.MetaInfoLength))
	if _, err := io.ReadFull(reader, metaBytes); err != nil {
		return nil, nil, fmt.Errorf("reading metadata of %s: %w", path, err)
	}
	metadata, err := format.DecodeMetadata(metaBytes)
	if err != nil {
		return nil, nil, err
	}
	return header, metadata, nil
}
