package numtree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// DefaultLocation is the location used by Save and Restore when clients do
// not name one.
const DefaultLocation = "numtree.nbt"

// Store maps location names to byte streams.
//
// Open must report a location without content with an error matching
// fs.ErrNotExist. Any other error is considered an I/O fault of the store.
type Store interface {
	Create(location string) (io.WriteCloser, error)
	Open(location string) (io.ReadCloser, error)
}

// FileStore is a Store keeping every location in a file of directory Dir.
// An empty Dir denotes the current working directory.
type FileStore struct {
	Dir string
}

var _ Store = FileStore{}

func (fst FileStore) path(location string) string {
	if fst.Dir == "" {
		return location
	}
	return filepath.Join(fst.Dir, location)
}

// Create truncates or creates the file for location.
func (fst FileStore) Create(location string) (io.WriteCloser, error) {
	return os.Create(fst.path(location))
}

// Open opens the file for location, which must be a regular file. A path
// running through a non-directory counts as missing.
func (fst FileStore) Open(location string) (io.ReadCloser, error) {
	name := fst.path(location)
	fi, err := os.Stat(name)
	if errors.Is(err, syscall.ENOTDIR) {
		return nil, fmt.Errorf("%w: %w", fs.ErrNotExist, err)
	} else if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file: %w", name, fs.ErrNotExist)
	}
	return os.Open(name) // just open for read access
}
