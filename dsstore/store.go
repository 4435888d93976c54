/*
Package dsstore lets numtree trees be saved to a key/value datastore.

Any implementation of the IPFS datastore interface will do; NewInMemory
creates a map-backed one, mainly for tests and for short-lived caches of trees.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dsstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Store is a numtree.Store on a datastore. Locations are mapped to datastore
// keys with datastore.NewKey, i.e. "a/b" and "/a/b" denote the same entry.
type Store struct {
	ctx context.Context
	ds  datastore.Datastore
}

// New creates a store on d. ctx is used for all datastore calls.
func New(ctx context.Context, d datastore.Datastore) *Store {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Store{ctx: ctx, ds: d}
}

// NewInMemory creates a store on a thread-safe in-memory map datastore.
func NewInMemory() *Store {
	return New(context.Background(), dssync.MutexWrap(datastore.NewMapDatastore()))
}

// Datastore returns the underlying datastore.
func (s *Store) Datastore() datastore.Datastore {
	return s.ds
}

// Open returns the bytes stored for location. A missing key is reported with
// an error matching fs.ErrNotExist.
func (s *Store) Open(location string) (io.ReadCloser, error) {
	key := datastore.NewKey(location)
	value, err := s.ds.Get(s.ctx, key)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, fmt.Errorf("datastore key %s: %w", key, fs.ErrNotExist)
	} else if err != nil {
		return nil, err
	}
	T().Debugf("dsstore: read %d bytes from %s", len(value), key)
	return io.NopCloser(bytes.NewReader(value)), nil
}

// Create returns a writer for location. Bytes are buffered and put to the
// datastore on Close.
func (s *Store) Create(location string) (io.WriteCloser, error) {
	return &entry{store: s, key: datastore.NewKey(location)}, nil
}

// Delete removes location from the datastore.
func (s *Store) Delete(location string) error {
	return s.ds.Delete(s.ctx, datastore.NewKey(location))
}

type entry struct {
	store  *Store
	key    datastore.Key
	buf    bytes.Buffer
	closed bool
}

func (e *entry) Write(p []byte) (int, error) {
	if e.closed {
		return 0, fs.ErrClosed
	}
	return e.buf.Write(p)
}

func (e *entry) Close() error {
	if e.closed {
		return fs.ErrClosed
	}
	e.closed = true
	T().Debugf("dsstore: put %d bytes to %s", e.buf.Len(), e.key)
	return e.store.ds.Put(e.store.ctx, e.key, e.buf.Bytes())
}
