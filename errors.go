package numtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue signals a missing or non-numeric node value.
	ErrInvalidValue = errors.New("numtree: invalid value")
	// ErrEmptyTree signals an operation which requires node content on the empty tree.
	ErrEmptyTree = errors.New("numtree: operation on empty tree")
	// ErrNilTree signals a nil *Tree where a tree instance is required.
	ErrNilTree = errors.New("numtree: nil tree")
	// ErrAliasedNode signals a node reachable more than once from a root.
	ErrAliasedNode = errors.New("numtree: node is shared or cyclic")

	// ErrPersistence is the common cause of all reported (non-fatal) failures
	// of Save and Restore. The tree is unchanged whenever it is returned.
	ErrPersistence = errors.New("numtree: persistence failure")
	// ErrLocationNotFound signals that a store has nothing at a location.
	ErrLocationNotFound = errors.New("numtree: no tree at location")
	// ErrMalformedStream signals a byte stream which does not decode to a tree.
	ErrMalformedStream = errors.New("numtree: malformed stream")
	// ErrIncompatibleFormat signals a stream from a different encoder or
	// encoder version.
	ErrIncompatibleFormat = errors.New("numtree: incompatible stream format")
	// ErrVerification signals that a saved tree did not read back identical.
	ErrVerification = errors.New("numtree: save could not be verified")
)

// persistenceFailure wraps cause as a reported failure, matching both
// ErrPersistence and cause with errors.Is.
func persistenceFailure(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %w: %s", ErrPersistence, cause, msg)
}
