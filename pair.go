package containers

import (
	"cmp"
	"fmt"
)

// Pair couples a key with a mapped value. Maps hand out pairs when a position
// is dereferenced.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair creates a pair from k and v.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// PairEqual reports whether both keys and both values are equal.
func PairEqual[K, V comparable](a, b Pair[K, V]) bool {
	return a.Key == b.Key && a.Value == b.Value
}

// PairCompare orders pairs by key first, then by value.
func PairCompare[K, V cmp.Ordered](a, b Pair[K, V]) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// PairCompareFunc orders pairs by key first, then by value, using the given
// comparison functions.
func PairCompareFunc[K, V any](a, b Pair[K, V], keyCmp func(K, K) int, valCmp func(V, V) int) int {
	if c := keyCmp(a.Key, b.Key); c != 0 {
		return c
	}
	return valCmp(a.Value, b.Value)
}
