package numtree

import (
	"errors"
	"io/fs"
)

// Save writes t to location in the file system, using DefaultLocation if
// location is empty. See SaveTo.
func (t *Tree) Save(location string) error {
	return t.SaveTo(FileStore{}, location)
}

// SaveTo writes t to location in store, using DefaultLocation if location
// is empty. A nil store is the file system.
//
// After writing, SaveTo reads the tree back and compares it to t. If this
// does not yield an identical tree, an error matching ErrVerification and
// ErrPersistence is returned. Errors while writing are I/O faults and are
// returned as they are.
func (t *Tree) SaveTo(store Store, location string) error {
	store, location = normalize(store, location)
	w, err := store.Create(location)
	if err != nil {
		T().Errorf("numtree: unsuccessful save: %v", err)
		return err
	}
	if err = t.Encode(w); err != nil {
		_ = w.Close()
		T().Errorf("numtree: unsuccessful save: %v", err)
		return err
	}
	if err = w.Close(); err != nil {
		T().Errorf("numtree: unsuccessful save: %v", err)
		return err
	}
	T().Debugf("numtree: saved %d nodes to %q", t.Len(), location)
	restored, err := readTree(store, location)
	if err != nil {
		return persistenceFailure(ErrVerification, "%s: %v", location, err)
	}
	if t.String() != restored.String() {
		return persistenceFailure(ErrVerification, "%s: rendering differs", location)
	}
	if !equalTrees(t, restored) {
		return persistenceFailure(ErrVerification, "%s: trees differ", location)
	}
	return nil
}

// Restore replaces t by the tree stored at location in the file system,
// using DefaultLocation if location is empty. See RestoreFrom.
func (t *Tree) Restore(location string) error {
	return t.RestoreFrom(FileStore{}, location)
}

// RestoreFrom replaces value and subtrees of t by the tree stored at location
// in store, using DefaultLocation if location is empty. A nil store is the
// file system. Restoring an empty tree makes t empty.
//
// If location does not hold a well-formed tree, t is left unchanged and an
// error matching ErrPersistence is returned. It will match ErrLocationNotFound,
// ErrMalformedStream or ErrIncompatibleFormat as well. Other errors are I/O
// faults of store; t is unchanged in this case, too.
func (t *Tree) RestoreFrom(store Store, location string) error {
	if t == nil {
		return ErrNilTree
	}
	store, location = normalize(store, location)
	restored, err := readTree(store, location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			err = persistenceFailure(ErrLocationNotFound, "%s", location)
		}
		if errors.Is(err, ErrPersistence) {
			T().Infof("numtree: cannot restore: %v", err)
		} else {
			T().Errorf("numtree: cannot restore: %v", err)
		}
		return err
	}
	*t = *restored
	T().Debugf("numtree: restored %d nodes from %q", t.Len(), location)
	return nil
}

func normalize(store Store, location string) (Store, string) {
	if store == nil {
		store = FileStore{}
	}
	if location == "" {
		location = DefaultLocation
	}
	return store, location
}

func readTree(store Store, location string) (*Tree, error) {
	r, err := store.Open(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Decode(r)
}
