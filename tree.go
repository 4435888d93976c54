package numtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Tree is a binary tree holding a Number at every node.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like the empty tree.
//
// Children are owned by their parent. Clients must not link a node into more
// than one position of a tree, and a tree must never become its own
// descendant (see Check).
type Tree struct {
	value Number // nil for the empty tree
	left  *Tree  // nil means empty
	right *Tree  // nil means empty
}

// Empty returns a new empty tree.
func Empty() *Tree {
	return &Tree{}
}

// Leaf creates a tree with a single node holding v.
func Leaf(v Number) (*Tree, error) {
	return NewNode(v, nil, nil)
}

// NewNode creates a node holding v with subtrees left and right.
// A nil or empty subtree is taken as the empty tree.
func NewNode(v Number, left, right *Tree) (*Tree, error) {
	if err := validate(v); err != nil {
		return nil, err
	}
	return &Tree{
		value: v,
		left:  child(left),
		right: child(right),
	}, nil
}

// MustLeaf is like Leaf, but panics for an invalid value.
func MustLeaf(v Number) *Tree {
	return MustNode(v, nil, nil)
}

// MustNode is like NewNode, but panics for an invalid value. It simplifies
// writing literal trees.
func MustNode(v Number, left, right *Tree) *Tree {
	t, err := NewNode(v, left, right)
	if err != nil {
		panic(fmt.Sprintf("numtree.MustNode: %v", err))
	}
	return t
}

// child normalizes a subtree argument, mapping an empty tree to nil.
func child(t *Tree) *Tree {
	if t.IsEmpty() {
		return nil
	}
	return t
}

// --- Queries ---------------------------------------------------------------

// IsEmpty reports whether t is the empty tree. A nil tree is empty.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.value == nil
}

// Len returns the number of nodes of t.
func (t *Tree) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return 1 + t.left.Len() + t.right.Len()
}

// Height returns the number of edges on the longest path from the root of t
// down to a leaf. The height of a single node is 0, the empty tree has height -1.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return -1
	}
	return 1 + max(t.left.Height(), t.right.Height())
}

// Value returns the number stored at the root of t.
func (t *Tree) Value() (Number, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTree
	}
	return t.value, nil
}

// Left returns the left subtree of t, or nil if it is empty.
//
// The subtree is returned by reference: changing it changes t.
func (t *Tree) Left() (*Tree, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTree
	}
	return child(t.left), nil
}

// Right returns the right subtree of t, or nil if it is empty.
//
// The subtree is returned by reference: changing it changes t.
func (t *Tree) Right() (*Tree, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTree
	}
	return child(t.right), nil
}

// IsLeaf reports whether t is a single node.
func (t *Tree) IsLeaf() (bool, error) {
	if t.IsEmpty() {
		return false, ErrEmptyTree
	}
	return t.isLeaf(), nil
}

func (t *Tree) isLeaf() bool {
	return t.left.IsEmpty() && t.right.IsEmpty()
}

// LeafCount returns the number of leaves of t.
func (t *Tree) LeafCount() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	return t.leafCount(), nil
}

func (t *Tree) leafCount() int {
	if t.IsEmpty() {
		return 0
	}
	if t.isLeaf() {
		return 1
	}
	return t.left.leafCount() + t.right.leafCount()
}

// ChildCount returns the number of non-empty subtrees of the root of t (0, 1 or 2).
func (t *Tree) ChildCount() (int, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}
	n := 0
	if !t.left.IsEmpty() {
		n++
	}
	if !t.right.IsEmpty() {
		n++
	}
	return n, nil
}

// --- Mutators --------------------------------------------------------------

// SetValue replaces the number stored at the root of t.
func (t *Tree) SetValue(v Number) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	if err := validate(v); err != nil {
		return err
	}
	t.value = v
	return nil
}

// SetLeft replaces the left subtree of t. A nil subtree empties the left side.
func (t *Tree) SetLeft(subtree *Tree) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	t.left = child(subtree)
	return nil
}

// SetRight replaces the right subtree of t. A nil subtree empties the right side.
func (t *Tree) SetRight(subtree *Tree) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	t.right = child(subtree)
	return nil
}
