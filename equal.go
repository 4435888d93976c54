package numtree

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Equal reports whether t and other have the same shape and equal values
// at respective nodes.
//
// Unlike the queries, Equal does not treat a nil *Tree as the empty tree:
// if either t or other is nil, the result is false.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return false
	}
	return equalTrees(t, other)
}

func equalTrees(a, b *Tree) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	if !sameNumber(a.value, b.value) {
		return false
	}
	return equalTrees(a.left, b.left) && equalTrees(a.right, b.right)
}

// emptyHash is the hash of the empty tree.
const emptyHash uint64 = 2

// Hash returns a hash code for t. Equal trees have equal hash codes.
func (t *Tree) Hash() uint64 {
	if t.IsEmpty() {
		return emptyHash
	}
	var buf [9]byte
	buf[0] = byte(kindOf(t.value))
	binary.BigEndian.PutUint64(buf[1:], bits(t.value))
	h := murmur3.Sum64(buf[:])
	// children are position-sensitive
	return h + 31*t.left.Hash() + 37*t.right.Hash()
}
