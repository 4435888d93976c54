package numtree

import "fmt"

// Check validates structural tree invariants: every node carries a valid
// number and no node is reachable twice from t (which also rules out cycles).
//
// Check is meant for tests and for trees assembled from untrusted parts;
// regular operations never create shared nodes.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: cannot check", ErrNilTree)
	}
	seen := make(map[*Tree]struct{})
	return t.checkNode(seen, 0)
}

func (t *Tree) checkNode(seen map[*Tree]struct{}, depth int) error {
	if t.IsEmpty() {
		return nil
	}
	if _, ok := seen[t]; ok {
		return fmt.Errorf("%w: node %v at depth %d", ErrAliasedNode, t.value, depth)
	}
	seen[t] = struct{}{}
	if err := validate(t.value); err != nil {
		return fmt.Errorf("node at depth %d: %w", depth, err)
	}
	if err := t.left.checkNode(seen, depth+1); err != nil {
		return err
	}
	return t.right.checkNode(seen, depth+1)
}
