/*
Package rbtree implements a red-black search tree over unique keys.

Nodes live in an arena and are addressed by uint32 handles. Handle 0 is a
sentinel: it stands for every empty child link, for the parent of the root
and for the End position. It is always black. Each node carries a
non-owning back link to its parent, which lets positions walk to their
in-order successor and predecessor without a stack.

Keys are ordered by a three-way comparison function (see Config). Two keys
a and b are order-equivalent if Compare(a, b) == 0; the tree never holds two
order-equivalent keys.

Positions stay valid across insertions and across erasure of other
elements, with one exception: erasing a node with two children moves the
payload of its in-order successor into the erased node's slot and removes
the successor's slot instead. A position to the erased element then shows
the successor's key and value, and a position to the successor becomes
invalid.

Trees may be dumped for debugging, either in Graphviz DOT format (ToDot) or
as an indented, colored listing on a console (Fprint).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
