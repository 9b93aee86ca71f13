package vector

import "github.com/npillmayer/containers/iterator"

// Iterator is a random-access position into the buffer of a Vector.
//
// An Iterator is a value; Next, Prev and Add return new positions. It holds
// on to the buffer it was created from and becomes stale when the vector
// reallocates.
type Iterator[T any] struct {
	buf []T
	i   int
}

var (
	_ iterator.RandomAccessPosition[int, Iterator[int]] = Iterator[int]{}
	_ iterator.OutputPosition[int, Iterator[int]]       = Iterator[int]{}
)

// Index returns the offset of the position from the start of the buffer.
func (it Iterator[T]) Index() int {
	return it.i
}

// Deref returns the element at the position.
func (it Iterator[T]) Deref() T {
	return it.buf[it.i]
}

// Ptr returns a pointer to the slot at the position.
func (it Iterator[T]) Ptr() *T {
	return &it.buf[it.i]
}

// Put overwrites the element at the position.
func (it Iterator[T]) Put(v T) {
	it.buf[it.i] = v
}

func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{buf: it.buf, i: it.i + 1}
}

func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{buf: it.buf, i: it.i - 1}
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{buf: it.buf, i: it.i + n}
}

// Diff returns the signed number of steps from other to it.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.i - other.i
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.i < other.i
}

// At returns the element n steps away from the position.
func (it Iterator[T]) At(n int) T {
	return it.buf[it.i+n]
}

// Equal compares offsets only. Positions of different vectors must not be
// compared.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.i == other.i
}

func (it Iterator[T]) Category() iterator.Category {
	return iterator.RandomAccess
}

// ReverseIterator walks a vector from back to front.
type ReverseIterator[T any] = iterator.RandomReverse[T, Iterator[T]]
