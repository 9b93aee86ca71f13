package rbtree

import "fmt"

// Check validates the structure of t: link consistency, key order, the
// red-black coloring rules and the bookkeeping of the node arena. It
// returns nil for a well-formed tree.
func (t *Tree[K, V]) Check() error {
	a := t.a
	if a == nil {
		return fmt.Errorf("%w: tree without arena", ErrBrokenInvariant)
	}
	if len(a.nodes) == 0 || a.nodes[0].color != black || a.nodes[0].live {
		return fmt.Errorf("%w: sentinel modified", ErrBrokenInvariant)
	}
	if live := len(a.nodes) - 1 - len(a.free); live != a.count {
		return fmt.Errorf("%w: %d nodes in use, count is %d", ErrBrokenInvariant, live, a.count)
	}
	if a.root == 0 {
		if a.count != 0 || a.min != 0 || a.max != 0 {
			return fmt.Errorf("%w: empty tree with count=%d min=%d max=%d",
				ErrBrokenInvariant, a.count, a.min, a.max)
		}
		return nil
	}
	if a.nodes[a.root].parent != 0 {
		return fmt.Errorf("%w: root %d has parent", ErrBrokenInvariant, a.root)
	}
	if a.nodes[a.root].color != black {
		return fmt.Errorf("%w: root is red", ErrBrokenInvariant)
	}
	if l := a.leftmost(a.root); l != a.min {
		return fmt.Errorf("%w: minimum is %d, recorded %d", ErrBrokenInvariant, l, a.min)
	}
	if r := a.rightmost(a.root); r != a.max {
		return fmt.Errorf("%w: maximum is %d, recorded %d", ErrBrokenInvariant, r, a.max)
	}
	count, _, err := t.checkNode(a.root, 0)
	if err != nil {
		return err
	}
	if count != a.count {
		return fmt.Errorf("%w: %d reachable nodes, count is %d", ErrBrokenInvariant, count, a.count)
	}
	var prev uint32
	for n := a.min; n != 0; prev, n = n, a.successor(n) {
		if prev != 0 && t.compare(a.nodes[prev].key, a.nodes[n].key) >= 0 {
			return fmt.Errorf("%w: keys of nodes %d and %d out of order", ErrBrokenInvariant, prev, n)
		}
	}
	return nil
}

// checkNode checks the subtree at n and returns its node count and black
// height.
func (t *Tree[K, V]) checkNode(n uint32, depth int) (count int, height int, err error) {
	if n == 0 {
		return 0, 1, nil
	}
	a := t.a
	if depth > 2*64 {
		return 0, 0, fmt.Errorf("%w: tree too deep, cycle suspected", ErrBrokenInvariant)
	}
	nd := a.nodes[n]
	if !nd.live {
		return 0, 0, fmt.Errorf("%w: released node %d is linked", ErrBrokenInvariant, n)
	}
	for _, c := range []uint32{nd.left, nd.right} {
		if c == 0 {
			continue
		}
		if a.nodes[c].parent != n {
			return 0, 0, fmt.Errorf("%w: child %d of %d links to parent %d",
				ErrBrokenInvariant, c, n, a.nodes[c].parent)
		}
		if nd.color == red && a.nodes[c].color == red {
			return 0, 0, fmt.Errorf("%w: red node %d has red child %d", ErrBrokenInvariant, n, c)
		}
	}
	lcount, lheight, err := t.checkNode(nd.left, depth+1)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(nd.right, depth+1)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: black heights %d and %d below node %d",
			ErrBrokenInvariant, lheight, rheight, n)
	}
	if nd.color == black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}
