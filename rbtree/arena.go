package rbtree

import "fmt"

type nodeColor uint8

const (
	black nodeColor = iota // zero value, so the sentinel and released slots are black
	red
)

func (c nodeColor) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

type node[K, V any] struct {
	key                 K
	value               V
	parent, left, right uint32
	color               nodeColor
	live                bool
}

// arena holds the nodes of one tree. Slot 0 is the sentinel.
type arena[K, V any] struct {
	nodes    []node[K, V]
	free     []uint32 // released slots
	root     uint32
	min, max uint32
	count    int
}

func newArena[K, V any](capacity int) *arena[K, V] {
	return &arena[K, V]{
		nodes: make([]node[K, V], 1, capacity+1),
	}
}

// alloc returns the handle of a fresh red node. It may move the node slice.
func (a *arena[K, V]) alloc(k K, v V) uint32 {
	var n uint32
	if l := len(a.free); l > 0 {
		n = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		if len(a.nodes) > MaxNodes {
			panic(fmt.Errorf("%w: %d nodes in use", ErrArenaExhausted, a.count))
		}
		a.nodes = append(a.nodes, node[K, V]{})
		n = uint32(len(a.nodes) - 1)
	}
	a.nodes[n] = node[K, V]{key: k, value: v, color: red, live: true}
	return n
}

func (a *arena[K, V]) release(n uint32) {
	assert(n != 0, "rbtree: the sentinel cannot be released")
	a.nodes[n] = node[K, V]{}
	a.free = append(a.free, n)
}

// reset drops all nodes but keeps the storage.
func (a *arena[K, V]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
	a.root, a.min, a.max, a.count = 0, 0, 0, 0
}

func (a *arena[K, V]) clone() *arena[K, V] {
	c := *a
	c.nodes = make([]node[K, V], len(a.nodes), cap(a.nodes))
	copy(c.nodes, a.nodes)
	c.free = append([]uint32(nil), a.free...)
	return &c
}

func (a *arena[K, V]) isLeft(n uint32) bool {
	return n == a.nodes[a.nodes[n].parent].left
}

func (a *arena[K, V]) leftmost(n uint32) uint32 {
	for a.nodes[n].left != 0 {
		n = a.nodes[n].left
	}
	return n
}

func (a *arena[K, V]) rightmost(n uint32) uint32 {
	for a.nodes[n].right != 0 {
		n = a.nodes[n].right
	}
	return n
}

// successor returns the in-order successor of n, or 0 if n is the maximum.
func (a *arena[K, V]) successor(n uint32) uint32 {
	if r := a.nodes[n].right; r != 0 {
		return a.leftmost(r)
	}
	for p := a.nodes[n].parent; p != 0; n, p = p, a.nodes[p].parent {
		if a.nodes[p].left == n {
			return p
		}
	}
	return 0
}

// predecessor returns the in-order predecessor of n, or 0 if n is the
// minimum.
func (a *arena[K, V]) predecessor(n uint32) uint32 {
	if l := a.nodes[n].left; l != 0 {
		return a.rightmost(l)
	}
	for p := a.nodes[n].parent; p != 0; n, p = p, a.nodes[p].parent {
		if a.nodes[p].right == n {
			return p
		}
	}
	return 0
}

// replace puts subtree m in the place of subtree n.
func (a *arena[K, V]) replace(n, m uint32) {
	p := a.nodes[n].parent
	switch {
	case p == 0:
		a.root = m
	case a.nodes[p].left == n:
		a.nodes[p].left = m
	default:
		a.nodes[p].right = m
	}
	if m != 0 {
		a.nodes[m].parent = p
	}
}

/*
	  x              y
	 / \            / \
	α   y    =>    x   γ
	   / \        / \
	  β   γ      α   β
*/
func (a *arena[K, V]) rotateLeft(x uint32) {
	y := a.nodes[x].right
	b := a.nodes[y].left
	a.nodes[x].right = b
	if b != 0 {
		a.nodes[b].parent = x
	}
	a.replace(x, y)
	a.nodes[y].left = x
	a.nodes[x].parent = y
}

// rotateRight mirrors rotateLeft.
func (a *arena[K, V]) rotateRight(y uint32) {
	x := a.nodes[y].left
	b := a.nodes[x].right
	a.nodes[y].left = b
	if b != 0 {
		a.nodes[b].parent = y
	}
	a.replace(y, x)
	a.nodes[x].right = y
	a.nodes[y].parent = x
}

// attach links a new red node below parent and restores the red-black
// properties. A parent of 0 makes the node the root of an empty tree.
func (a *arena[K, V]) attach(parent uint32, left bool, k K, v V) uint32 {
	n := a.alloc(k, v)
	a.nodes[n].parent = parent
	switch {
	case parent == 0:
		assert(a.root == 0, "rbtree: attaching a second root")
		a.root, a.min, a.max = n, n, n
	case left:
		assert(a.nodes[parent].left == 0, "rbtree: left child slot taken")
		a.nodes[parent].left = n
		if parent == a.min {
			a.min = n
		}
	default:
		assert(a.nodes[parent].right == 0, "rbtree: right child slot taken")
		a.nodes[parent].right = n
		if parent == a.max {
			a.max = n
		}
	}
	a.count++
	a.fixRedRed(n)
	return n
}

// fixRedRed walks up from a red node n whose parent may be red as well.
func (a *arena[K, V]) fixRedRed(n uint32) {
	for {
		p := a.nodes[n].parent
		if a.nodes[p].color == black { // includes p == 0
			break
		}
		g := a.nodes[p].parent // p is red, so it is not the root
		var u uint32
		pIsLeft := a.nodes[g].left == p
		if pIsLeft {
			u = a.nodes[g].right
		} else {
			u = a.nodes[g].left
		}
		if a.nodes[u].color == red {
			a.nodes[p].color = black
			a.nodes[u].color = black
			a.nodes[g].color = red
			n = g
			continue
		}
		// black uncle: rotate an inner grandchild to the outside first
		if pIsLeft && n == a.nodes[p].right {
			a.rotateLeft(p)
			n, p = p, n
		} else if !pIsLeft && n == a.nodes[p].left {
			a.rotateRight(p)
			n, p = p, n
		}
		a.nodes[p].color = black
		a.nodes[g].color = red
		if pIsLeft {
			a.rotateRight(g)
		} else {
			a.rotateLeft(g)
		}
		break
	}
	a.nodes[a.root].color = black
}

// remove erases node n and returns the handle of the element following it.
//
// A node with two children is not unlinked itself: its in-order successor's
// payload moves into n, and the successor is unlinked instead. n is then
// the following element.
func (a *arena[K, V]) remove(n uint32) uint32 {
	assert(n != 0 && a.nodes[n].live, "rbtree: erasing an invalid position")
	if a.nodes[n].left != 0 && a.nodes[n].right != 0 {
		s := a.leftmost(a.nodes[n].right)
		tracer().Debugf("rbtree: node %d takes payload of successor %d", n, s)
		a.nodes[n].key = a.nodes[s].key
		a.nodes[n].value = a.nodes[s].value
		a.unlink(s)
		return n
	}
	next := a.successor(n)
	a.unlink(n)
	return next
}

// unlink removes n, which has at most one child, from the tree.
func (a *arena[K, V]) unlink(n uint32) {
	child := a.nodes[n].left
	if child == 0 {
		child = a.nodes[n].right
	}
	if a.nodes[n].color == black {
		if a.nodes[child].color == red {
			a.nodes[child].color = black
		} else {
			// n is a black leaf; it stays in place as the carrier of the
			// missing black until the fix-up is done
			a.fixDoubleBlack(n)
		}
	}
	a.replace(n, child)
	if a.min == n {
		a.min = 0
	}
	if a.max == n {
		a.max = 0
	}
	a.release(n)
	a.count--
	if a.root != 0 {
		if a.min == 0 {
			a.min = a.leftmost(a.root)
		}
		if a.max == 0 {
			a.max = a.rightmost(a.root)
		}
	}
}

// fixDoubleBlack restores equal black heights after the removal of a black
// node below x's position. Every path through x lacks one black node.
func (a *arena[K, V]) fixDoubleBlack(x uint32) {
	for x != a.root && a.nodes[x].color == black {
		p := a.nodes[x].parent
		if x == a.nodes[p].left {
			s := a.nodes[p].right
			if a.nodes[s].color == red {
				a.nodes[s].color = black
				a.nodes[p].color = red
				a.rotateLeft(p)
				s = a.nodes[p].right
			}
			if a.nodes[a.nodes[s].left].color == black && a.nodes[a.nodes[s].right].color == black {
				a.nodes[s].color = red
				x = p
				continue
			}
			if a.nodes[a.nodes[s].right].color == black {
				a.nodes[a.nodes[s].left].color = black
				a.nodes[s].color = red
				a.rotateRight(s)
				s = a.nodes[p].right
			}
			a.nodes[s].color = a.nodes[p].color
			a.nodes[p].color = black
			a.nodes[a.nodes[s].right].color = black
			a.rotateLeft(p)
		} else {
			s := a.nodes[p].left
			if a.nodes[s].color == red {
				a.nodes[s].color = black
				a.nodes[p].color = red
				a.rotateRight(p)
				s = a.nodes[p].left
			}
			if a.nodes[a.nodes[s].left].color == black && a.nodes[a.nodes[s].right].color == black {
				a.nodes[s].color = red
				x = p
				continue
			}
			if a.nodes[a.nodes[s].left].color == black {
				a.nodes[a.nodes[s].right].color = black
				a.nodes[s].color = red
				a.rotateLeft(s)
				s = a.nodes[p].left
			}
			a.nodes[s].color = a.nodes[p].color
			a.nodes[p].color = black
			a.nodes[a.nodes[s].left].color = black
			a.rotateRight(p)
		}
		x = a.root
	}
	a.nodes[x].color = black
}
