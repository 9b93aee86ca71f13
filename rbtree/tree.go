package rbtree

import (
	"cmp"
	"iter"

	"github.com/npillmayer/containers/iterator"
)

// Tree is a red-black tree mapping unique keys of type K to values of
// type V.
//
// A Tree is not safe for concurrent mutation.
type Tree[K, V any] struct {
	compare func(a, b K) int
	a       *arena[K, V]
}

// New creates an empty tree ordered by cfg.Compare.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		compare: cfg.Compare,
		a:       newArena[K, V](cfg.Capacity),
	}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		compare: cmp.Compare[K],
		a:       newArena[K, V](0),
	}
}

// Compare returns the key comparison function of t.
func (t *Tree[K, V]) Compare() func(a, b K) int {
	return t.compare
}

// Len returns the number of elements in t.
func (t *Tree[K, V]) Len() int {
	return t.a.count
}

// Empty is true if t has no elements.
func (t *Tree[K, V]) Empty() bool {
	return t.a.count == 0
}

// MaxSize is the maximum number of elements a tree can hold.
func (t *Tree[K, V]) MaxSize() int {
	return MaxNodes
}

func (t *Tree[K, V]) at(n uint32) Iterator[K, V] {
	return Iterator[K, V]{a: t.a, n: n}
}

// Begin returns a position to the element with the smallest key.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return t.at(t.a.min)
}

// End returns the position one past the element with the largest key.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return t.at(0)
}

// RBegin returns a reverse position to the element with the largest key.
func (t *Tree[K, V]) RBegin() ReverseIterator[K, V] {
	return iterator.MakeReverse[Pair[K, V]](t.End())
}

// REnd returns the reverse position one before the element with the
// smallest key.
func (t *Tree[K, V]) REnd() ReverseIterator[K, V] {
	return iterator.MakeReverse[Pair[K, V]](t.Begin())
}

// Min returns a position to the smallest key, or End() for an empty tree.
func (t *Tree[K, V]) Min() Iterator[K, V] {
	return t.Begin()
}

// Max returns a position to the largest key, or End() for an empty tree.
func (t *Tree[K, V]) Max() Iterator[K, V] {
	return t.at(t.a.max)
}

// Find returns a position to the element with a key order-equivalent to k,
// or End().
func (t *Tree[K, V]) Find(k K) Iterator[K, V] {
	n := t.a.root
	for n != 0 {
		c := t.compare(k, t.a.nodes[n].key)
		switch {
		case c < 0:
			n = t.a.nodes[n].left
		case c > 0:
			n = t.a.nodes[n].right
		default:
			return t.at(n)
		}
	}
	return t.End()
}

// Count returns the number of elements with a key order-equivalent to k,
// which is either 0 or 1.
func (t *Tree[K, V]) Count(k K) int {
	if t.Find(k).IsEnd() {
		return 0
	}
	return 1
}

// LowerBound returns a position to the first element whose key does not
// sort before k, or End().
func (t *Tree[K, V]) LowerBound(k K) Iterator[K, V] {
	n, bound := t.a.root, uint32(0)
	for n != 0 {
		if t.compare(t.a.nodes[n].key, k) < 0 {
			n = t.a.nodes[n].right
		} else {
			bound, n = n, t.a.nodes[n].left
		}
	}
	return t.at(bound)
}

// UpperBound returns a position to the first element whose key sorts
// after k, or End().
func (t *Tree[K, V]) UpperBound(k K) Iterator[K, V] {
	n, bound := t.a.root, uint32(0)
	for n != 0 {
		if t.compare(k, t.a.nodes[n].key) < 0 {
			bound, n = n, t.a.nodes[n].left
		} else {
			n = t.a.nodes[n].right
		}
	}
	return t.at(bound)
}

// EqualRange returns the range of elements with a key order-equivalent to
// k. It contains at most one element.
func (t *Tree[K, V]) EqualRange(k K) (Iterator[K, V], Iterator[K, V]) {
	return t.LowerBound(k), t.UpperBound(k)
}

// Insert adds k with value v. If an order-equivalent key is present, the
// tree is left unchanged and a position to the existing element is
// returned together with false.
func (t *Tree[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	parent, n, left := uint32(0), t.a.root, false
	for n != 0 {
		c := t.compare(k, t.a.nodes[n].key)
		if c == 0 {
			return t.at(n), false
		}
		parent, left = n, c < 0
		if left {
			n = t.a.nodes[n].left
		} else {
			n = t.a.nodes[n].right
		}
	}
	return t.at(t.a.attach(parent, left, k, v)), true
}

// InsertHint is like Insert, but uses hint as a suggestion where k belongs.
// If k sorts directly before hint, the new element is attached next to hint
// without a descent from the root. A wrong hint costs nothing but the
// attempt. The position of the inserted or existing element is returned.
func (t *Tree[K, V]) InsertHint(hint Iterator[K, V], k K, v V) Iterator[K, V] {
	a := t.a
	if hint.a != a || (hint.n != 0 && !a.nodes[hint.n].live) {
		tracer().Debugf("rbtree: ignoring foreign or stale hint")
		it, _ := t.Insert(k, v)
		return it
	}
	if a.root == 0 {
		return t.at(a.attach(0, false, k, v))
	}
	if hint.n != 0 {
		c := t.compare(k, a.nodes[hint.n].key)
		if c == 0 {
			return hint
		}
		if c > 0 { // try the gap after hint
			next := a.successor(hint.n)
			if next == 0 || t.compare(k, a.nodes[next].key) < 0 {
				if a.nodes[hint.n].right == 0 {
					return t.at(a.attach(hint.n, false, k, v))
				}
				return t.at(a.attach(next, true, k, v))
			}
			tracer().Debugf("rbtree: hint insert missed")
			it, _ := t.Insert(k, v)
			return it
		}
	}
	// k sorts before hint (or hint is End): try the gap before hint
	var prev uint32
	if hint.n == 0 {
		prev = a.max
	} else {
		prev = a.predecessor(hint.n)
	}
	if prev != 0 {
		c := t.compare(a.nodes[prev].key, k)
		if c == 0 {
			return t.at(prev)
		}
		if c > 0 {
			tracer().Debugf("rbtree: hint insert missed")
			it, _ := t.Insert(k, v)
			return it
		}
	}
	if hint.n != 0 && a.nodes[hint.n].left == 0 {
		return t.at(a.attach(hint.n, true, k, v))
	}
	return t.at(a.attach(prev, false, k, v))
}

// Erase removes the element at pos and returns a position to the element
// following it. pos must refer to an element of t.
func (t *Tree[K, V]) Erase(pos Iterator[K, V]) Iterator[K, V] {
	assert(pos.a == t.a, "rbtree: erasing a position of another tree")
	return t.at(t.a.remove(pos.n))
}

// EraseKey removes the element with a key order-equivalent to k and
// returns the number of elements removed (0 or 1).
func (t *Tree[K, V]) EraseKey(k K) int {
	pos := t.Find(k)
	if pos.IsEnd() {
		return 0
	}
	t.a.remove(pos.n)
	return 1
}

// EraseRange removes the elements of [first, last) and returns a position to
// the element that followed the range.
func (t *Tree[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	if first.Equal(t.Begin()) && last.IsEnd() {
		t.Clear()
		return t.End()
	}
	// erased nodes may take their successor's payload, so positions are
	// counted rather than compared against last
	n := iterator.Distance[Pair[K, V]](first, last)
	for ; n > 0; n-- {
		first = t.Erase(first)
	}
	return first
}

// Clear removes all elements. The node storage is kept.
func (t *Tree[K, V]) Clear() {
	tracer().Debugf("rbtree: clearing %d nodes", t.a.count)
	t.a.reset()
}

// Clone returns a deep copy of t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{compare: t.compare, a: t.a.clone()}
}

// Swap exchanges the contents of t and other in constant time. Positions
// keep referring to their elements, which now belong to the other tree.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	t.a, other.a = other.a, t.a
	t.compare, other.compare = other.compare, t.compare
}

// All iterates over keys and values in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		a := t.a
		for n := a.min; n != 0; n = a.successor(n) {
			if !yield(a.nodes[n].key, a.nodes[n].value) {
				return
			}
		}
	}
}

// Backward iterates over keys and values in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		a := t.a
		for n := a.max; n != 0; n = a.predecessor(n) {
			if !yield(a.nodes[n].key, a.nodes[n].value) {
				return
			}
		}
	}
}
