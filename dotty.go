package numtree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Tree]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Tree]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Tree) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Tree) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	nilid := 10000
	nilNode := func(parent int) {
		nilid++
		nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", parent, nilid)
	}
	t.walk(preorder, func(node *Tree) bool {
		ID := ids.alloc(node)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", ID, node.value, nodeDotStyles(node.isLeaf()))
		if node.isLeaf() {
			return true
		}
		for _, sub := range []*Tree{node.left, node.right} {
			if sub.IsEmpty() {
				nilNode(ID)
			} else {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(sub))
			}
		}
		return true
	})
	if t.IsEmpty() {
		T().Debugf("tree DOT: empty tree")
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
