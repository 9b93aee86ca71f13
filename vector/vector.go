package vector

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/iterator"
)

// Vector is a growable sequence of elements of type T, stored contiguously.
//
// The zero value is not usable; create vectors with New, NewWithConfig,
// Fill, FromSlice or FromRange. A Vector is not safe for concurrent
// mutation.
type Vector[T any] struct {
	alloc Allocator[T]
	buf   []T // len(buf) is the capacity
	size  int // slots [0, size) are constructed
}

// New creates an empty vector using the default allocator.
func New[T any]() *Vector[T] {
	return &Vector[T]{alloc: DefaultAllocator[T]{}}
}

// NewWithConfig creates an empty vector with the allocator and initial
// capacity given by cfg.
func NewWithConfig[T any](cfg Config[T]) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	v := &Vector[T]{alloc: cfg.Allocator}
	if cfg.Capacity > 0 {
		v.buf = v.alloc.Allocate(cfg.Capacity)
	}
	return v, nil
}

// Fill creates a vector holding n copies of value.
func Fill[T any](n int, value T) (*Vector[T], error) {
	v := New[T]()
	if err := v.Assign(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding a copy of the elements of s.
func FromSlice[T any](s []T) *Vector[T] {
	v := New[T]()
	if len(s) > 0 {
		v.buf = v.alloc.Allocate(len(s))
		v.constructFrom(0, s)
	}
	return v
}

// FromRange creates a vector holding the elements of [first, last).
func FromRange[T any, P iterator.InputPosition[T, P]](first, last P) *Vector[T] {
	return FromSlice(iterator.Collect[T](first, last))
}

// Clone returns a copy of v using the same allocator. The copy's capacity
// equals its length.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{alloc: v.alloc}
	if v.size > 0 {
		c.buf = c.alloc.Allocate(v.size)
		c.constructFrom(0, v.buf[:v.size])
	}
	return c
}

// Allocator returns the allocator managing v's storage.
func (v *Vector[T]) Allocator() Allocator[T] {
	return v.alloc
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots allocated for v.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty is true if v has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// MaxSize is the maximum number of elements v can hold.
func (v *Vector[T]) MaxSize() int {
	return v.alloc.MaxSize()
}

// Reserve makes room for at least n elements. If n exceeds the current
// capacity, exactly n slots are allocated and all positions into v become
// invalid.
func (v *Vector[T]) Reserve(n int) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	if n > len(v.buf) {
		v.reallocate(n)
	}
	return nil
}

func (v *Vector[T]) checkLength(n int) error {
	if n < 0 || n > v.alloc.MaxSize() {
		return fmt.Errorf("%w: requested %d, maximum is %d", ErrLengthExceeded, n, v.alloc.MaxSize())
	}
	return nil
}

// reallocate moves the live elements into a fresh region of n slots.
func (v *Vector[T]) reallocate(n int) {
	assert(n >= v.size, "vector: reallocation would drop elements")
	fresh := v.alloc.Allocate(n)
	for i := 0; i < v.size; i++ {
		v.alloc.Construct(&fresh[i], v.buf[i])
		v.alloc.Destroy(&v.buf[i])
	}
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
	}
	tracer().Debugf("vector: reallocated %d -> %d slots", len(v.buf), n)
	v.buf = fresh
}

// grow ensures room for extra more elements, reallocating to exactly the
// required length.
func (v *Vector[T]) grow(extra int) error {
	need := v.size + extra
	if extra < 0 || need < v.size {
		return fmt.Errorf("%w: cannot add %d elements to %d", ErrLengthExceeded, extra, v.size)
	}
	if err := v.checkLength(need); err != nil {
		return err
	}
	if need > len(v.buf) {
		v.reallocate(need)
	}
	return nil
}

// --- Element access --------------------------------------------------------

// At returns the element at index i, or ErrIndexOutOfBounds if i is not in
// [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, v.size)
	}
	return v.buf[i], nil
}

// Index returns the element at index i without checking against Len().
// Indices in [Len(), Cap()) read raw storage.
func (v *Vector[T]) Index(i int) T {
	return v.buf[i]
}

// Ref returns a pointer to slot i without checking against Len().
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf[i]
}

// Set overwrites the element at index i without checking against Len().
func (v *Vector[T]) Set(i int, value T) {
	v.buf[i] = value
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	return v.buf[0]
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	return v.buf[v.size-1]
}

// Slice returns a copy of the live elements.
func (v *Vector[T]) Slice() []T {
	s := make([]T, v.size)
	copy(s, v.buf[:v.size])
	return s
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf[:v.size])
}

// --- Positions -------------------------------------------------------------

func (v *Vector[T]) iter(i int) Iterator[T] {
	return Iterator[T]{buf: v.buf, i: i}
}

// Begin returns a position to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iter(0)
}

// End returns the position one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iter(v.size)
}

// RBegin returns a reverse position to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return iterator.MakeRandomReverse[T](v.End())
}

// REnd returns the reverse position one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return iterator.MakeRandomReverse[T](v.Begin())
}

// All iterates over index/element pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward iterates over index/element pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
