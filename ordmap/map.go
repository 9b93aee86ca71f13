package ordmap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/rbtree"
)

// Pair is the element type of a map.
type Pair[K, V any] = containers.Pair[K, V]

// Iterator is a bidirectional position in a Map.
type Iterator[K, V any] = rbtree.Iterator[K, V]

// ReverseIterator walks a Map in descending key order.
type ReverseIterator[K, V any] = rbtree.ReverseIterator[K, V]

// Map associates unique keys of type K with values of type V, ordered by
// key.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
}

// New creates an empty map for keys with a natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: rbtree.NewOrdered[K, V]()}
}

// NewFunc creates an empty map ordered by compare. compare must not be nil.
func NewFunc[K, V any](compare func(a, b K) int) (*Map[K, V], error) {
	tree, err := rbtree.New[K, V](rbtree.Config[K]{Compare: compare})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// FromRange creates a map holding the pairs of [first, last). For pairs
// with order-equivalent keys only the first one is kept.
func FromRange[K cmp.Ordered, V any, P iterator.InputPosition[Pair[K, V], P]](first, last P) *Map[K, V] {
	m := New[K, V]()
	InsertRange(m, first, last)
	return m
}

// Clone returns a copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// --- Element access --------------------------------------------------------

// At returns the value for key k, or ErrKeyNotFound. At never inserts.
func (m *Map[K, V]) At(k K) (V, error) {
	pos := m.tree.Find(k)
	if pos.IsEnd() {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return pos.Value(), nil
}

// Index returns a pointer to the value for key k. If k is absent, it is
// inserted with the zero value first. The pointer is valid until the next
// insertion.
func (m *Map[K, V]) Index(k K) *V {
	var zero V
	pos, inserted := m.tree.Insert(k, zero)
	if inserted {
		tracer().Debugf("ordmap: index inserted missing key %v", k)
	}
	return pos.ValuePtr()
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of elements in m.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Empty is true if m has no elements.
func (m *Map[K, V]) Empty() bool {
	return m.tree.Empty()
}

// MaxSize is the maximum number of elements a map can hold.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// --- Modifiers -------------------------------------------------------------

// Insert adds k with value v unless an order-equivalent key is present. It
// returns the position of the element with key k and whether it was
// inserted.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	return m.tree.Insert(k, v)
}

// InsertHint is like Insert, with hint as a suggestion of the position
// directly following k.
func (m *Map[K, V]) InsertHint(hint Iterator[K, V], k K, v V) Iterator[K, V] {
	return m.tree.InsertHint(hint, k, v)
}

// InsertRange inserts the pairs of [first, last) into m.
func InsertRange[K, V any, P iterator.InputPosition[Pair[K, V], P]](m *Map[K, V], first, last P) {
	hint := m.End()
	for ; !first.Equal(last); first = first.Next() {
		p := first.Deref()
		hint = m.tree.InsertHint(hint, p.Key, p.Value).Next()
	}
}

// Erase removes the element at pos and returns the position following it.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) Iterator[K, V] {
	return m.tree.Erase(pos)
}

// EraseKey removes the element with key k and returns the number of
// elements removed.
func (m *Map[K, V]) EraseKey(k K) int {
	return m.tree.EraseKey(k)
}

// EraseRange removes the elements of [first, last).
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	return m.tree.EraseRange(first, last)
}

// Swap exchanges the contents of m and other in constant time.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Clear removes all elements.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// --- Lookup ----------------------------------------------------------------

func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return m.tree.Find(k)
}

func (m *Map[K, V]) Count(k K) int {
	return m.tree.Count(k)
}

func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] {
	return m.tree.LowerBound(k)
}

func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] {
	return m.tree.UpperBound(k)
}

func (m *Map[K, V]) EqualRange(k K) (Iterator[K, V], Iterator[K, V]) {
	return m.tree.EqualRange(k)
}

// --- Positions and sequences -----------------------------------------------

func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.tree.Begin()
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return m.tree.End()
}

func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return m.tree.RBegin()
}

func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return m.tree.REnd()
}

// All iterates over keys and values in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Backward iterates over keys and values in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.tree.Backward()
}

// Keys iterates over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// --- Observers -------------------------------------------------------------

// KeyCompare returns the function ordering the keys of m.
func (m *Map[K, V]) KeyCompare() func(a, b K) int {
	return m.tree.Compare()
}

// ValueCompare returns a function ordering pairs by their keys.
func (m *Map[K, V]) ValueCompare() func(a, b Pair[K, V]) int {
	compare := m.tree.Compare()
	return func(a, b Pair[K, V]) int {
		return compare(a.Key, b.Key)
	}
}

// Tree returns the tree backing m.
func (m *Map[K, V]) Tree() *rbtree.Tree[K, V] {
	return m.tree
}
