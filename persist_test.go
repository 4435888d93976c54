package numtree

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// memStore is an in-memory Store with hooks to simulate faults.
type memStore struct {
	data      map[string][]byte
	createErr error
	openErr   error
	tamper    func([]byte) []byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

type memWriter struct {
	bytes.Buffer
	store    *memStore
	location string
}

func (w *memWriter) Close() error {
	w.store.data[w.location] = w.Bytes()
	return nil
}

func (m *memStore) Create(location string) (io.WriteCloser, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &memWriter{store: m, location: location}, nil
}

func (m *memStore) Open(location string) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	data, ok := m.data[location]
	if !ok {
		return nil, fs.ErrNotExist
	}
	if m.tamper != nil {
		data = m.tamper(data)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestSaveRestoreFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	store := FileStore{Dir: t.TempDir()}
	tree := sampleTree()
	if err := tree.SaveTo(store, "sample.nbt"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	target := MustLeaf(1)
	if err := target.RestoreFrom(store, "sample.nbt"); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !target.Equal(tree) {
		t.Errorf("restored tree differs:\n%s", target)
	}
	into := Empty()
	if err := into.RestoreFrom(store, "sample.nbt"); err != nil || !into.Equal(tree) {
		t.Errorf("restore into empty tree failed: %v", err)
	}
}

func TestSaveRestoreEmptyTree(t *testing.T) {
	store := newMemStore()
	if err := Empty().SaveTo(store, "empty"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	target := sampleTree()
	if err := target.RestoreFrom(store, "empty"); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !target.IsEmpty() || !target.Equal(Empty()) {
		t.Errorf("expected restored tree to be empty, is %s", target)
	}
}

func TestSaveRestoreDefaultLocation(t *testing.T) {
	t.Chdir(t.TempDir())
	tree := sampleTree()
	if err := tree.Save(""); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(DefaultLocation); err != nil {
		t.Errorf("expected file %s: %v", DefaultLocation, err)
	}
	target := Empty()
	if err := target.Restore(""); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if !target.Equal(tree) {
		t.Errorf("restored tree differs")
	}
}

func TestRestoreMissingLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "afile"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := FileStore{Dir: dir}
	for _, location := range []string{"nothing-here", "subdir", "afile/inner.nbt"} {
		target := sampleTree()
		err := target.RestoreFrom(store, location)
		if !errors.Is(err, ErrLocationNotFound) || !errors.Is(err, ErrPersistence) {
			t.Errorf("%s: expected location not found, got %v", location, err)
		}
		if !target.Equal(sampleTree()) {
			t.Errorf("%s: failed restore changed tree", location)
		}
	}
}

func TestRestoreMalformedLeavesTreeUnchanged(t *testing.T) {
	store := newMemStore()
	store.data["garbage"] = []byte("this is not a tree")
	store.data["java"] = []byte{0xac, 0xed, 0x00, 0x05}
	valid := encoded(t, sampleTree())
	store.data["truncated"] = valid[:len(valid)/2]
	for location, cause := range map[string]error{
		"garbage":   ErrPersistence,
		"java":      ErrIncompatibleFormat,
		"truncated": ErrMalformedStream,
	} {
		target := MustNode(1, MustLeaf(2), nil)
		err := target.RestoreFrom(store, location)
		if !errors.Is(err, cause) || !errors.Is(err, ErrPersistence) {
			t.Errorf("%s: expected %v, got %v", location, cause, err)
		}
		if !target.Equal(MustNode(1, MustLeaf(2), nil)) {
			t.Errorf("%s: failed restore changed tree to %s", location, target)
		}
	}
}

func TestRestorePropagatesIOFaults(t *testing.T) {
	store := newMemStore()
	store.openErr = errMedium
	target := sampleTree()
	err := target.RestoreFrom(store, "x")
	if !errors.Is(err, errMedium) || errors.Is(err, ErrPersistence) {
		t.Errorf("expected unexpected I/O fault to propagate, got %v", err)
	}
	if !target.Equal(sampleTree()) {
		t.Errorf("failed restore changed tree")
	}
	var nilTree *Tree
	if err := nilTree.RestoreFrom(store, "x"); !errors.Is(err, ErrNilTree) {
		t.Errorf("expected ErrNilTree, got %v", err)
	}
}

func TestSavePropagatesIOFaults(t *testing.T) {
	store := newMemStore()
	store.createErr = errMedium
	err := sampleTree().SaveTo(store, "x")
	if !errors.Is(err, errMedium) || errors.Is(err, ErrPersistence) {
		t.Errorf("expected unexpected I/O fault to propagate, got %v", err)
	}
	err = sampleTree().SaveTo(FileStore{Dir: filepath.Join(t.TempDir(), "missing")}, "x")
	if err == nil || errors.Is(err, ErrPersistence) {
		t.Errorf("expected file creation error, got %v", err)
	}
}

func TestSaveVerification(t *testing.T) {
	store := newMemStore()
	store.tamper = func(data []byte) []byte {
		return encoded(t, MustLeaf(99))
	}
	err := sampleTree().SaveTo(store, "x")
	if !errors.Is(err, ErrVerification) || !errors.Is(err, ErrPersistence) {
		t.Errorf("expected verification failure, got %v", err)
	}
	store.tamper = func(data []byte) []byte {
		return data[:1]
	}
	err = sampleTree().SaveTo(store, "x")
	if !errors.Is(err, ErrVerification) {
		t.Errorf("expected verification failure for unreadable copy, got %v", err)
	}
}

func TestSaveNilStoreUsesFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := sampleTree().SaveTo(nil, "t.nbt"); err != nil {
		t.Fatal(err)
	}
	target := Empty()
	if err := target.RestoreFrom(nil, "t.nbt"); err != nil || !target.Equal(sampleTree()) {
		t.Errorf("nil store round trip failed: %v", err)
	}
}
