package iterator

// Reverse adapts a bidirectional position so that it traverses backwards.
//
// A reverse position built from base refers to the element just before base:
// Deref returns base.Prev().Deref(). Advancing a reverse position retreats
// its base and vice versa. Hence, for a container c, MakeReverse(c.End())
// references the last element and MakeReverse(c.Begin()) is the reverse end.
type Reverse[T any, P BidirectionalPosition[T, P]] struct {
	base P
}

// MakeReverse wraps base into a reverse position.
func MakeReverse[T any, P BidirectionalPosition[T, P]](base P) Reverse[T, P] {
	return Reverse[T, P]{base: base}
}

// Base returns the underlying position, which is one element past the
// element r refers to.
func (r Reverse[T, P]) Base() P {
	return r.base
}

// Deref returns the element before the base position.
func (r Reverse[T, P]) Deref() T {
	return r.base.Prev().Deref()
}

// Next advances r, i.e. retreats its base.
func (r Reverse[T, P]) Next() Reverse[T, P] {
	return Reverse[T, P]{base: r.base.Prev()}
}

// Prev retreats r, i.e. advances its base.
func (r Reverse[T, P]) Prev() Reverse[T, P] {
	return Reverse[T, P]{base: r.base.Next()}
}

// Equal compares the base positions.
func (r Reverse[T, P]) Equal(other Reverse[T, P]) bool {
	return r.base.Equal(other.base)
}

// Category is Bidirectional. Offset arithmetic is available through
// RandomReverse only.
func (r Reverse[T, P]) Category() Category {
	if c := r.base.Category(); c < Bidirectional {
		return c
	}
	return Bidirectional
}

// RandomReverse is the reverse adaptor for random-access positions. In
// addition to the bidirectional operations it supports offset arithmetic,
// mirrored with respect to the base position.
type RandomReverse[T any, P RandomAccessPosition[T, P]] struct {
	base P
}

// MakeRandomReverse wraps base into a random-access reverse position.
func MakeRandomReverse[T any, P RandomAccessPosition[T, P]](base P) RandomReverse[T, P] {
	return RandomReverse[T, P]{base: base}
}

// Base returns the underlying position.
func (r RandomReverse[T, P]) Base() P {
	return r.base
}

// Deref returns the element before the base position.
func (r RandomReverse[T, P]) Deref() T {
	return r.base.At(-1)
}

// Next advances r, i.e. retreats its base.
func (r RandomReverse[T, P]) Next() RandomReverse[T, P] {
	return RandomReverse[T, P]{base: r.base.Prev()}
}

// Prev retreats r, i.e. advances its base.
func (r RandomReverse[T, P]) Prev() RandomReverse[T, P] {
	return RandomReverse[T, P]{base: r.base.Next()}
}

// Equal compares the base positions.
func (r RandomReverse[T, P]) Equal(other RandomReverse[T, P]) bool {
	return r.base.Equal(other.base)
}

// Category returns the category of the base position.
func (r RandomReverse[T, P]) Category() Category {
	return r.base.Category()
}

// Add moves r by n elements towards the front of the container.
func (r RandomReverse[T, P]) Add(n int) RandomReverse[T, P] {
	return RandomReverse[T, P]{base: r.base.Add(-n)}
}

// Diff returns the signed distance r - other in reverse direction.
func (r RandomReverse[T, P]) Diff(other RandomReverse[T, P]) int {
	return other.base.Diff(r.base)
}

// Less reports whether r comes before other in reverse traversal order.
func (r RandomReverse[T, P]) Less(other RandomReverse[T, P]) bool {
	return other.base.Less(r.base)
}

// At returns the element n steps ahead of r.
func (r RandomReverse[T, P]) At(n int) T {
	return r.base.At(-n - 1)
}
