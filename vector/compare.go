package vector

import (
	"cmp"

	"github.com/npillmayer/containers/iterator"
)

// Equal is true if a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.Len() == b.Len() && iterator.Equal[T](a.Begin(), a.End(), b.Begin())
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return a.Len() == b.Len() && iterator.EqualFunc[T, U](a.Begin(), a.End(), b.Begin(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return iterator.LexicographicalCompare[T](a.Begin(), a.End(), b.Begin(), b.End())
}

// CompareFunc is like Compare, using c to compare elements.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], c func(T, U) int) int {
	return iterator.LexicographicalCompareFunc[T, U](a.Begin(), a.End(), b.Begin(), b.End(), c)
}

// Less is true if a sorts before b lexicographically.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}
