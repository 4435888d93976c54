package numtree

import "iter"

// order is one of the depth-first visitation orders.
type order int

const (
	preorder order = iota
	inorder
	postorder
)

// walk visits the nodes of t in order o. Walking stops early if fn
// returns false; walk then returns false as well.
func (t *Tree) walk(o order, fn func(node *Tree) bool) bool {
	if t.IsEmpty() {
		return true
	}
	if o == preorder && !fn(t) {
		return false
	}
	if !t.left.walk(o, fn) {
		return false
	}
	if o == inorder && !fn(t) {
		return false
	}
	if !t.right.walk(o, fn) {
		return false
	}
	if o == postorder && !fn(t) {
		return false
	}
	return true
}

func (t *Tree) subtrees(o order) []*Tree {
	list := make([]*Tree, 0, t.Len())
	t.walk(o, func(node *Tree) bool {
		list = append(list, node)
		return true
	})
	return list
}

func (t *Tree) values(o order) []Number {
	list := make([]Number, 0, t.Len())
	t.walk(o, func(node *Tree) bool {
		list = append(list, node.value)
		return true
	})
	return list
}

// PreorderValues lists the values of t, each node before its left and right subtree.
func (t *Tree) PreorderValues() []Number {
	return t.values(preorder)
}

// InorderValues lists the values of t, each node between its left and right subtree.
func (t *Tree) InorderValues() []Number {
	return t.values(inorder)
}

// PostorderValues lists the values of t, each node after its left and right subtree.
func (t *Tree) PostorderValues() []Number {
	return t.values(postorder)
}

// PreorderSubtrees lists the nodes of t in preorder.
func (t *Tree) PreorderSubtrees() []*Tree {
	return t.subtrees(preorder)
}

// InorderSubtrees lists the nodes of t in inorder.
func (t *Tree) InorderSubtrees() []*Tree {
	return t.subtrees(inorder)
}

// PostorderSubtrees lists the nodes of t in postorder.
func (t *Tree) PostorderSubtrees() []*Tree {
	return t.subtrees(postorder)
}

// All returns an iterator over all subtrees of t, in postorder.
// The iterator is empty for the empty tree and may be ranged over repeatedly.
//
// Clients must not restructure t while iterating.
func (t *Tree) All() iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		t.walk(postorder, yield)
	}
}

// ForEach calls fn for every subtree of t in postorder.
//
// Iteration stops early if fn returns false.
func (t *Tree) ForEach(fn func(node *Tree) bool) {
	if fn == nil {
		return
	}
	t.walk(postorder, fn)
}

// Values maps a list of trees to their root values.
//
// A nil entry yields a nil placeholder, whereas an empty tree contributes
// nothing at all.
func Values(trees []*Tree) []Number {
	list := make([]Number, 0, len(trees))
	for _, t := range trees {
		if t == nil {
			list = append(list, nil)
		} else if !t.IsEmpty() {
			list = append(list, t.value)
		}
	}
	return list
}
