package formatter

import (
	"fmt"
	"io"

	"github.com/npillmayer/numtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs t as nested unordered lists. The outermost list carries class
// "numtree"; list items carry class "inner", "leaf" or "empty".
//
//	<ul class="numtree"><li class="inner">42<ul><li class="leaf">21</li>…
func HTML(t *numtree.Tree, w io.Writer) error {
	root := element(atom.Ul, "numtree")
	if !t.IsEmpty() {
		root.AppendChild(htmlItem(t))
	}
	return html.Render(w, root)
}

func htmlItem(t *numtree.Tree) *html.Node {
	v, _ := t.Value()
	isLeaf, _ := t.IsLeaf()
	class := "inner"
	if isLeaf {
		class = "leaf"
	}
	li := element(atom.Li, class)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
	if isLeaf {
		return li
	}
	ul := element(atom.Ul, "")
	for _, side := range subtrees(t) {
		if side == nil {
			empty := element(atom.Li, "empty")
			empty.AppendChild(&html.Node{Type: html.TextNode, Data: emptyMarker})
			ul.AppendChild(empty)
			continue
		}
		ul.AppendChild(htmlItem(side))
	}
	li.AppendChild(ul)
	return li
}

func subtrees(t *numtree.Tree) [2]*numtree.Tree {
	left, _ := t.Left()
	right, _ := t.Right()
	return [2]*numtree.Tree{left, right}
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
