package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot writes the structure of t in Graphviz DOT format (for debugging
// purposes). Nodes are named by their arena handle, empty child links are
// drawn as small black boxes.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	a := t.a
	nilcnt := 0
	link := func(from, to uint32) {
		if to == 0 {
			nilcnt++
			nilid := fmt.Sprintf("nil%d", nilcnt)
			fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", from, nilid)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, to)
	}
	for n := a.min; n != 0; n = a.successor(n) {
		nd := &a.nodes[n]
		label := strings.ReplaceAll(fmt.Sprintf("%v", nd.key), "\"", "\\\"")
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", n, label, nodeDotStyles(nd.color))
		link(n, nd.left)
		link(n, nd.right)
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("rbtree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.15,height=.15]"
}

func nodeDotStyles(c nodeColor) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == red {
		s += ",color=\"#aa0000\",fillcolor=\"#dd2222\""
	} else {
		s += ",color=black,fillcolor=\"#333333\""
	}
	return s
}
