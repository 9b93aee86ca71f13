package iterator

import (
	"cmp"
	"iter"
)

// differ is implemented by random-access positions.
type differ[P any] interface {
	Diff(other P) int
}

type adder[P any] interface {
	Add(n int) P
}

type retreater[P any] interface {
	Prev() P
}

// Distance returns the number of increments needed to get from first to last.
//
// Random-access positions answer in constant time, all others are walked,
// which requires last to be reachable from first.
func Distance[T any, P InputPosition[T, P]](first, last P) int {
	if first.Category().Refines(RandomAccess) {
		if d, ok := any(last).(differ[P]); ok {
			return d.Diff(first)
		}
	}
	n := 0
	for !first.Equal(last) {
		first = first.Next()
		n++
	}
	return n
}

// Advance returns p moved by n steps. Negative n requires a bidirectional
// position.
func Advance[T any, P InputPosition[T, P]](p P, n int) P {
	if p.Category().Refines(RandomAccess) {
		if a, ok := any(p).(adder[P]); ok {
			return a.Add(n)
		}
	}
	for ; n > 0; n-- {
		p = p.Next()
	}
	if n < 0 {
		assert(p.Category().Refines(Bidirectional), "iterator.Advance: negative distance for non-bidirectional position")
		for ; n < 0; n++ {
			r, ok := any(p).(retreater[P])
			assert(ok, "iterator.Advance: position has no Prev")
			p = r.Prev()
		}
	}
	return p
}

// Equal reports whether the range [first1,last1) equals the range of the
// same length starting at first2.
func Equal[T comparable, P InputPosition[T, P], Q InputPosition[T, Q]](first1, last1 P, first2 Q) bool {
	return EqualFunc[T, T](first1, last1, first2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal, but uses eq to compare elements.
func EqualFunc[T, U any, P InputPosition[T, P], Q InputPosition[U, Q]](first1, last1 P, first2 Q, eq func(T, U) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Deref(), first2.Deref()) {
			return false
		}
	}
	return true
}

// LexicographicalCompare compares [first1,last1) and [first2,last2)
// element by element. The result is -1, 0 or +1. A range which is a proper
// prefix of the other compares less.
func LexicographicalCompare[T cmp.Ordered, P InputPosition[T, P], Q InputPosition[T, Q]](first1, last1 P, first2, last2 Q) int {
	return LexicographicalCompareFunc[T, T](first1, last1, first2, last2, cmp.Compare[T])
}

// LexicographicalCompareFunc is like LexicographicalCompare, but uses compare
// to order elements.
func LexicographicalCompareFunc[T, U any, P InputPosition[T, P], Q InputPosition[U, Q]](
	first1, last1 P, first2, last2 Q, compare func(T, U) int) int {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if first2.Equal(last2) {
			return 1
		}
		if c := compare(first1.Deref(), first2.Deref()); c != 0 {
			return c
		}
	}
	if first2.Equal(last2) {
		return 0
	}
	return -1
}

// Collect returns the elements of [first,last) as a slice.
func Collect[T any, P InputPosition[T, P]](first, last P) []T {
	var out []T
	if first.Category().Refines(RandomAccess) {
		out = make([]T, 0, Distance[T](first, last))
	}
	for ; !first.Equal(last); first = first.Next() {
		out = append(out, first.Deref())
	}
	return out
}

// All returns an iterator over the elements of [first,last).
func All[T any, P InputPosition[T, P]](first, last P) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := first; !p.Equal(last); p = p.Next() {
			if !yield(p.Deref()) {
				return
			}
		}
	}
}
