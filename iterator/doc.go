/*
Package iterator defines the position abstraction shared by all containers.

A position is a small value which references one element of a container, or
the one-past-last end position. Positions are classified by a capability
Category; categories form a refinement chain

	Input ⊂ Forward ⊂ Bidirectional ⊂ RandomAccess

and generic algorithms (Distance, Advance) select the most efficient strategy
a position's category allows. Output is a separate, write-only category.

Position interfaces are parameterized by the element type T and by the
position type P itself, so that Next/Prev return the concrete position type
without boxing:

	type Iterator[T any] struct{ ... }
	func (it Iterator[T]) Next() Iterator[T]
	var _ iterator.BidirectionalPosition[int, Iterator[int]] = Iterator[int]{}

Reverse and RandomReverse adapt a bidirectional (random-access) position P so
that traversal runs backwards: the logical current element of a reverse
position is the element just before its base position.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package iterator

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
