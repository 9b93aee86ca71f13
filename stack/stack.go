package stack

import (
	"cmp"
	"iter"

	"github.com/npillmayer/containers/vector"
)

// BackContainer is a sequence which can grow and shrink at its back. C is
// the container type itself.
type BackContainer[T, C any] interface {
	PushBack(T)
	PopBack()
	Back() T
	Len() int
	Empty() bool
	// Clone returns an independent copy of the container.
	Clone() C
	// All iterates over index/element pairs from front to back.
	All() iter.Seq2[int, T]
}

var _ BackContainer[int, *vector.Vector[int]] = (*vector.Vector[int])(nil)

// Stack is a last-in first-out sequence of elements of type T, kept in a
// container of type C.
type Stack[T any, C BackContainer[T, C]] struct {
	c C
}

// New creates an empty stack backed by a vector.
func New[T any]() *Stack[T, *vector.Vector[T]] {
	return &Stack[T, *vector.Vector[T]]{c: vector.New[T]()}
}

// NewOn creates a stack on top of container c. Elements already in c form
// the stack's contents, the back element being the top.
func NewOn[T any, C BackContainer[T, C]](c C) *Stack[T, C] {
	return &Stack[T, C]{c: c}
}

// Push puts x on top of the stack.
func (s *Stack[T, C]) Push(x T) {
	s.c.PushBack(x)
}

// Pop removes the top element. On an empty stack it does nothing and
// returns ErrEmpty.
func (s *Stack[T, C]) Pop() error {
	if s.c.Empty() {
		tracer().Debugf("stack: pop on empty stack")
		return ErrEmpty
	}
	s.c.PopBack()
	return nil
}

// Top returns the top element, or ErrEmpty.
func (s *Stack[T, C]) Top() (T, error) {
	if s.c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.c.Back(), nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T, C]) Len() int {
	return s.c.Len()
}

// Empty is true if the stack has no elements.
func (s *Stack[T, C]) Empty() bool {
	return s.c.Empty()
}

// Clone returns a copy of s with a copy of its container.
func (s *Stack[T, C]) Clone() *Stack[T, C] {
	return &Stack[T, C]{c: s.c.Clone()}
}

// Container returns the underlying container.
func (s *Stack[T, C]) Container() C {
	return s.c
}

// Equal is true if a and b hold equal elements in the same order.
func Equal[T comparable, C BackContainer[T, C]](a, b *Stack[T, C]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return compareBottomUp(a, b, func(x, y T) int {
		if x == y {
			return 0
		}
		return 1
	}) == 0
}

// Compare compares a and b lexicographically from bottom to top and returns
// -1, 0 or +1.
func Compare[T cmp.Ordered, C BackContainer[T, C]](a, b *Stack[T, C]) int {
	return compareBottomUp(a, b, cmp.Compare[T])
}

func compareBottomUp[T any, C BackContainer[T, C]](a, b *Stack[T, C], compare func(x, y T) int) int {
	next, stop := iter.Pull2(b.c.All())
	defer stop()
	for _, x := range a.c.All() {
		_, y, ok := next()
		if !ok {
			return 1
		}
		if c := compare(x, y); c != 0 {
			return max(-1, min(c, 1))
		}
	}
	if _, _, ok := next(); ok {
		return -1
	}
	return 0
}
