package numtree

import (
	"math"
	"testing"
)

func TestEqualIsStructural(t *testing.T) {
	a, b := sampleTree(), sampleTree()
	if !a.Equal(a) {
		t.Errorf("equality must be reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Errorf("separately built identical trees must be equal")
	}
	c := sampleTree()
	if !b.Equal(c) || !a.Equal(c) {
		t.Errorf("equality must be transitive")
	}
	if !Empty().Equal(&Tree{}) {
		t.Errorf("empty trees must be equal")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	base := sampleTree()
	changedValue := sampleTree()
	changedValue.PreorderSubtrees()[5].SetValue(51)
	mirrored := MustNode(1, MustLeaf(2), nil)
	other := MustNode(1, nil, MustLeaf(2))
	cases := []struct {
		name string
		a, b *Tree
	}{
		{"different value", base, changedValue},
		{"different side", mirrored, other},
		{"missing subtree", base, MustNode(42, base.left, nil)},
		{"empty vs node", Empty(), MustLeaf(0)},
		{"int vs int64", MustLeaf(5), MustLeaf(int64(5))},
		{"int vs float", MustLeaf(5), MustLeaf(5.0)},
		{"positive vs negative zero", MustLeaf(0.0), MustLeaf(math.Copysign(0, -1))},
	}
	for _, c := range cases {
		if c.a.Equal(c.b) || c.b.Equal(c.a) {
			t.Errorf("%s: trees should differ", c.name)
		}
	}
	if base.Equal(nil) {
		t.Errorf("comparing with nil must be false")
	}
	if Empty().Equal(nil) {
		t.Errorf("comparing empty tree with nil must be false")
	}
	var nilTree *Tree
	if nilTree.Equal(Empty()) || nilTree.Equal(nil) {
		t.Errorf("nil receiver must not be equal to anything")
	}
	if !nilTree.IsEmpty() {
		t.Errorf("nil receiver must still query as empty")
	}
}

func TestEqualWithNaN(t *testing.T) {
	a := MustNode(math.NaN(), MustLeaf(float32(1.5)), nil)
	if !a.Equal(a) {
		t.Errorf("tree with NaN must equal itself")
	}
}

func TestEqualTreesHashEqual(t *testing.T) {
	a, b := sampleTree(), sampleTree()
	if a.Hash() != b.Hash() {
		t.Errorf("equal trees have different hashes %x, %x", a.Hash(), b.Hash())
	}
	if Empty().Hash() != (&Tree{}).Hash() {
		t.Errorf("empty trees have different hashes")
	}
	mirrored := MustNode(1, MustLeaf(2), nil)
	other := MustNode(1, nil, MustLeaf(2))
	if mirrored.Hash() == other.Hash() {
		t.Errorf("expected hash to depend on the side of a child")
	}
}
