package rbtree

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
)

// Pair is the element type a position dereferences to.
type Pair[K, V any] = containers.Pair[K, V]

// Iterator is a bidirectional position in a Tree. The zero value is not a
// valid position.
//
// Iterators are values; Next and Prev return new positions.
type Iterator[K, V any] struct {
	a *arena[K, V]
	n uint32
}

var _ iterator.BidirectionalPosition[Pair[int, int], Iterator[int, int]] = Iterator[int, int]{}

// ReverseIterator walks a tree in descending key order.
type ReverseIterator[K, V any] = iterator.Reverse[Pair[K, V], Iterator[K, V]]

func (it Iterator[K, V]) node() *node[K, V] {
	assert(it.n != 0, "rbtree: dereferencing End")
	nd := &it.a.nodes[it.n]
	assert(nd.live, "rbtree: dereferencing an erased position")
	return nd
}

// Key returns the key at the position.
func (it Iterator[K, V]) Key() K {
	return it.node().key
}

// Value returns the value at the position.
func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// ValuePtr returns a pointer to the value at the position. The pointer is
// valid until the next insertion into the tree.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.node().value
}

// SetValue replaces the value at the position. Keys cannot be changed.
func (it Iterator[K, V]) SetValue(v V) {
	it.node().value = v
}

// Deref returns key and value at the position.
func (it Iterator[K, V]) Deref() Pair[K, V] {
	nd := it.node()
	return containers.MakePair(nd.key, nd.value)
}

// Next returns the position of the in-order successor. It must not be
// called on End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	assert(it.n != 0, "rbtree: advancing End")
	return Iterator[K, V]{a: it.a, n: it.a.successor(it.n)}
}

// Prev returns the position of the in-order predecessor. Prev of End is the
// maximum. It must not be called on the minimum.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	var p uint32
	if it.n == 0 {
		p = it.a.max
	} else {
		p = it.a.predecessor(it.n)
	}
	assert(p != 0, "rbtree: retreating before the first element")
	return Iterator[K, V]{a: it.a, n: p}
}

// Equal is true if both positions refer to the same node of the same tree.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.n == other.n && it.a == other.a
}

// IsEnd is true for the position past the last element.
func (it Iterator[K, V]) IsEnd() bool {
	return it.n == 0
}

func (it Iterator[K, V]) Category() iterator.Category {
	return iterator.Bidirectional
}
