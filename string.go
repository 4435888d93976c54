package numtree

import (
	"fmt"
	"strings"
)

// String renders t in an indented bracket notation, one node per line.
// An empty subtree is shown as `_`, the empty tree as `X_`.
//
//	[42:
//	  [21:
//	   _,
//	   _],
//	 _]
func (t *Tree) String() string {
	var sb strings.Builder
	t.render(&sb, 0)
	return sb.String()
}

func (t *Tree) render(sb *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	sb.WriteString(indent)
	if t.IsEmpty() {
		sb.WriteString("X_")
		return
	}
	fmt.Fprintf(sb, "[%v:\n", t.value)
	t.renderChild(sb, t.left, level)
	sb.WriteString(",\n")
	t.renderChild(sb, t.right, level)
	sb.WriteString("]")
}

func (t *Tree) renderChild(sb *strings.Builder, sub *Tree, level int) {
	if sub.IsEmpty() {
		sb.WriteString(strings.Repeat("  ", level))
		sb.WriteString(" _")
		return
	}
	sub.render(sb, level+1)
}
