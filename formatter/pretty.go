package formatter

import (
	"github.com/npillmayer/numtree"
	"github.com/xlab/treeprint"
)

// Pretty renders t with box-drawing characters, one node per line. Children
// are tagged with [L] or [R]; the missing sibling of a single child is shown
// as ∅.
//
//	42
//	├── [L]  21
//	└── [R]  63
func Pretty(t *numtree.Tree) string {
	if t.IsEmpty() {
		return treeprint.NewWithRoot(emptyMarker).String()
	}
	v, _ := t.Value()
	root := treeprint.NewWithRoot(v)
	addChildren(root, t)
	return root.String()
}

func addChildren(branch treeprint.Tree, t *numtree.Tree) {
	left, _ := t.Left()
	right, _ := t.Right()
	if left == nil && right == nil {
		return
	}
	addSide(branch, leftMarker, left)
	addSide(branch, rightMarker, right)
}

func addSide(branch treeprint.Tree, side string, sub *numtree.Tree) {
	if sub == nil {
		branch.AddMetaNode(side, emptyMarker)
		return
	}
	v, _ := sub.Value()
	addChildren(branch.AddMetaBranch(side, v), sub)
}
