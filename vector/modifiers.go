package vector

import (
	"fmt"

	"github.com/npillmayer/containers/iterator"
)

// constructFrom constructs src into the slots starting at index at, which
// must all be unconstructed, and extends the length accordingly.
func (v *Vector[T]) constructFrom(at int, src []T) {
	for j, x := range src {
		v.alloc.Construct(&v.buf[at+j], x)
	}
	v.size = at + len(src)
}

// PushBack appends x. If v is full, its capacity is doubled first.
//
// PushBack panics with ErrLengthExceeded if v already holds MaxSize elements.
func (v *Vector[T]) PushBack(x T) {
	if v.size == len(v.buf) {
		if v.size >= v.alloc.MaxSize() {
			panic(fmt.Errorf("%w: push onto vector of maximum size %d", ErrLengthExceeded, v.size))
		}
		newcap := 1
		if v.size > 0 {
			newcap = 2 * v.size
		}
		if newcap > v.alloc.MaxSize() || newcap < 0 {
			newcap = v.alloc.MaxSize()
		}
		v.reallocate(newcap)
	}
	v.alloc.Construct(&v.buf[v.size], x)
	v.size++
}

// PopBack removes the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.alloc.Destroy(&v.buf[v.size])
}

// Insert inserts x before pos and returns a position to it.
//
// Insert panics with ErrLengthExceeded if v already holds MaxSize elements.
func (v *Vector[T]) Insert(pos Iterator[T], x T) Iterator[T] {
	it, err := v.InsertN(pos, 1, x)
	if err != nil {
		panic(err)
	}
	return it
}

// InsertN inserts n copies of x before pos and returns a position to the
// first inserted element. If the vector has to grow, all positions into v
// become invalid.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, x T) (Iterator[T], error) {
	at := pos.i
	if err := v.openGap(at, n); err != nil {
		return pos, err
	}
	for j := 0; j < n; j++ {
		v.fillSlot(at+j, x)
	}
	v.size += n
	return v.iter(at), nil
}

// InsertSlice inserts copies of the elements of s before pos and returns a
// position to the first inserted element.
func (v *Vector[T]) InsertSlice(pos Iterator[T], s []T) (Iterator[T], error) {
	at, n := pos.i, len(s)
	if err := v.openGap(at, n); err != nil {
		return pos, err
	}
	for j, x := range s {
		v.fillSlot(at+j, x)
	}
	v.size += n
	return v.iter(at), nil
}

// InsertRange inserts the elements of [first, last) into v before pos and
// returns a position to the first inserted element. The range is read
// completely before v is modified, so it may refer to v itself.
func InsertRange[T any, P iterator.InputPosition[T, P]](v *Vector[T], pos Iterator[T], first, last P) (Iterator[T], error) {
	return v.InsertSlice(pos, iterator.Collect[T](first, last))
}

// openGap makes room for n elements at index at. Elements at and after
// index at are moved n slots towards the end. Slots beyond the current
// length are constructed, occupied slots are assigned to. The length is not
// changed.
func (v *Vector[T]) openGap(at, n int) error {
	assert(at >= 0 && at <= v.size, "vector: insert position out of range")
	if err := v.grow(n); err != nil {
		return err
	}
	for i := v.size - 1; i >= at; i-- {
		v.fillSlot(i+n, v.buf[i])
	}
	return nil
}

// fillSlot stores x into slot i, which is constructed if it lies beyond
// the current length.
func (v *Vector[T]) fillSlot(i int, x T) {
	if i < v.size {
		v.buf[i] = x
		return
	}
	v.alloc.Construct(&v.buf[i], x)
}

// Erase removes the element at pos and returns a position to the element
// following it. Erasing from an empty vector returns End().
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if v.size == 0 {
		return v.End()
	}
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements of [first, last) and returns a position to
// the element following the removed range.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	f, l := first.i, last.i
	assert(0 <= f && f <= l && l <= v.size, "vector: erase range out of bounds")
	if f == l {
		return v.iter(f)
	}
	d := l - f
	for i := f; i < l; i++ {
		v.alloc.Destroy(&v.buf[i])
	}
	for i := l; i < v.size; i++ {
		if i-d < l { // destroyed above
			v.alloc.Construct(&v.buf[i-d], v.buf[i])
		} else {
			v.buf[i-d] = v.buf[i]
		}
	}
	for i := max(l, v.size-d); i < v.size; i++ {
		v.alloc.Destroy(&v.buf[i])
	}
	v.size -= d
	return v.iter(f)
}

// Resize changes the length of v to n. New elements are copies of value.
func (v *Vector[T]) Resize(n int, value T) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	if n > len(v.buf) {
		v.reallocate(n)
	}
	for v.size > n {
		v.PopBack()
	}
	for ; v.size < n; v.size++ {
		v.alloc.Construct(&v.buf[v.size], value)
	}
	return nil
}

// Assign replaces the contents of v with n copies of value.
func (v *Vector[T]) Assign(n int, value T) error {
	if err := v.checkLength(n); err != nil {
		return err
	}
	v.prepareAssign(n)
	for ; v.size < n; v.size++ {
		v.alloc.Construct(&v.buf[v.size], value)
	}
	return nil
}

// AssignSlice replaces the contents of v with copies of the elements of s.
func (v *Vector[T]) AssignSlice(s []T) error {
	if err := v.checkLength(len(s)); err != nil {
		return err
	}
	v.prepareAssign(len(s))
	v.constructFrom(0, s)
	return nil
}

// AssignRange replaces the contents of v with the elements of [first, last).
// The range is read completely before v is modified.
func AssignRange[T any, P iterator.InputPosition[T, P]](v *Vector[T], first, last P) error {
	return v.AssignSlice(iterator.Collect[T](first, last))
}

// prepareAssign clears v and makes sure there is storage for n elements. If
// the current storage is too small it is released and exactly n slots are
// allocated.
func (v *Vector[T]) prepareAssign(n int) {
	v.Clear()
	if n <= len(v.buf) {
		return
	}
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
	}
	v.buf = v.alloc.Allocate(n)
}

// Clear destroys all elements. The storage is kept.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.alloc.Destroy(&v.buf[i])
	}
	v.size = 0
}

// Release destroys all elements and hands the storage back to the
// allocator. v stays usable.
func (v *Vector[T]) Release() {
	v.Clear()
	if v.buf != nil {
		v.alloc.Deallocate(v.buf)
		v.buf = nil
	}
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.alloc, other.alloc = other.alloc, v.alloc
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}
