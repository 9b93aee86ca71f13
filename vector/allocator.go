package vector

import (
	"math"
	"unsafe"
)

// Allocator manages the storage of a Vector.
//
// Allocate and Deallocate operate on whole regions of slots, Construct and
// Destroy on single slots inside a region. A Vector constructs every slot
// before it is read and destroys every constructed slot exactly once before
// the region is deallocated.
type Allocator[T any] interface {
	// Allocate returns a region of n uninitialized slots.
	Allocate(n int) []T
	// Deallocate releases a region previously returned by Allocate.
	Deallocate(region []T)
	// Construct initializes slot with a copy of v.
	Construct(slot *T, v T)
	// Destroy ends the lifetime of the value in slot.
	Destroy(slot *T)
	// MaxSize is the largest number of slots Allocate can be asked for.
	MaxSize() int
}

// DefaultAllocator allocates regions from the Go heap.
//
// Destroy resets a slot to the zero value, so that values referenced from a
// released slot may be garbage collected.
type DefaultAllocator[T any] struct{}

var _ Allocator[int] = DefaultAllocator[int]{}

func (DefaultAllocator[T]) Allocate(n int) []T {
	return make([]T, n)
}

func (DefaultAllocator[T]) Deallocate([]T) {}

func (DefaultAllocator[T]) Construct(slot *T, v T) {
	*slot = v
}

func (DefaultAllocator[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// MaxSize returns the number of elements of type T addressable with an int.
func (DefaultAllocator[T]) MaxSize() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}
