// Package storage caches decoded YXDB records in a pebble database so
// repeated random lookups skip re-reading and re-inflating the source
// file. Each cached file gets a ksuid namespace; dropping the namespace
// invalidates every record cached under it.
package storage

import (
	"encoding/binary"
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// RecordCache is a pebble-backed map from (file namespace, record index)
// to encoded record bytes.
type RecordCache struct {
	db *pebble.DB
}

// OpenRecordCache opens (or creates) the cache database at path.
func OpenRecordCache(path string) (*RecordCache, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &RecordCache{db: db}, nil
}

// namespaceKey is where a source file's ksuid lives, keyed by the name
// the caller identifies the file with.
func namespaceKey(name string) []byte {
	return append([]byte("ns:"), name...)
}

func recordKey(ns ksuid.KSUID, index uint64) []byte {
	key := make([]byte, 0, 28)
	key = append(key, ns.Bytes()...)
	key = binary.BigEndian.AppendUint64(key, index)
	return key
}

// Namespace returns the cache namespace for a source file, creating one
// on first use.
func (c *RecordCache) Namespace(name string) (ksuid.KSUID, error) {
	data, closer, err := c.db.Get(namespaceKey(name))
	if err == nil {
		defer closer.Close()
		return ksuid.FromBytes(data)
	}
	if !errors.Is(err, pebble.ErrNotFound) {
		return ksuid.Nil, err
	}

	id := ksuid.New()
	if err := c.db.Set(namespaceKey(name), id.Bytes(), pebble.NoSync); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Put caches the encoded bytes of one record.
func (c *RecordCache) Put(ns ksuid.KSUID, index uint64, record []byte) error {
	return c.db.Set(recordKey(ns, index), record, pebble.NoSync)
}

// Get returns the cached record bytes, or ok=false on a miss.
func (c *RecordCache) Get(ns ksuid.KSUID, index uint64) ([]byte, bool, error) {
	data, closer, err := c.db.Get(recordKey(ns, index))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	record := make([]byte, len(data))
	copy(record, data)
	return record, true, nil
}

// DropNamespace removes every record cached under ns and forgets the
// name binding.
func (c *RecordCache) DropNamespace(name string, ns ksuid.KSUID) error {
	if err := c.db.DeleteRange(ns.Bytes(), ns.Next().Bytes(), pebble.NoSync); err != nil {
		return err
	}
	return c.db.Delete(namespaceKey(name), pebble.NoSync)
}

// Close closes the underlying database.
func (c *RecordCache) Close() error {
	return c.db.Close()
}
