package ordmap

import (
	"cmp"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/iterator"
)

// Equal is true if a and b hold the same keys mapped to equal values.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, containers.PairEqual[K, V])
}

// EqualFunc is like Equal, using eq to compare pairs in key order.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(x, y Pair[K, V]) bool) bool {
	return a.Len() == b.Len() && iterator.EqualFunc[Pair[K, V], Pair[K, V]](a.Begin(), a.End(), b.Begin(), eq)
}

// Compare compares the in-order pair sequences of a and b lexicographically,
// pairs ordered by key first, then by value.
func Compare[K, V cmp.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, containers.PairCompare[K, V])
}

// CompareFunc is like Compare, using c to order pairs.
func CompareFunc[K, V any](a, b *Map[K, V], c func(x, y Pair[K, V]) int) int {
	return iterator.LexicographicalCompareFunc[Pair[K, V], Pair[K, V]](a.Begin(), a.End(), b.Begin(), b.End(), c)
}

// Swap exchanges the contents of a and b.
func Swap[K, V any](a, b *Map[K, V]) {
	a.Swap(b)
}
