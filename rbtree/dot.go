package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders an item; it may be nil.
func (t *Tree[I, S]) WriteDot(w io.Writer, label func(I) string) error {
	var nodelist, edgelist string
	nilid := 0
	for n := range t.All() {
		text := fmt.Sprintf("#%d", n.id)
		if label != nil {
			text += "\\n" + strings.ReplaceAll(label(n.item), "\"", "\\\"")
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", n.id, text, nodeDotStyles(n.color))
		for _, child := range []*Node[I, S]{n.left, n.right} {
			if child == nil {
				nilid++
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", n.id, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n.id, child.id)
		}
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=box"
	if c == red {
		s += ",color=\"#b01010\",fillcolor=\"#ffcccc\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
