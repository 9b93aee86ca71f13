package iterator

import "fmt"

// Category classifies the navigation capabilities of a position type.
type Category uint8

// Position categories. Input through RandomAccess form a refinement chain;
// Output stands outside of it.
const (
	NoCategory Category = iota
	Input
	Forward
	Bidirectional
	RandomAccess
	Output
)

var categoryNames = [...]string{"none", "input", "forward", "bidirectional", "random-access", "output"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Refines reports whether a position of category c may be used wherever a
// position of category other is required.
//
// Every category refines itself. Output refines nothing but Output.
func (c Category) Refines(other Category) bool {
	if c == NoCategory || other == NoCategory {
		return false
	}
	if c == Output || other == Output {
		return c == other
	}
	return c >= other
}

// InputPosition is the minimal read-only, single-pass position.
//
// P is the concrete position type, which is returned from Next.
type InputPosition[T, P any] interface {
	Deref() T
	Next() P
	Equal(other P) bool
	Category() Category
}

// ForwardPosition is a multi-pass InputPosition. Copies of a forward position
// may be advanced independently.
type ForwardPosition[T, P any] interface {
	InputPosition[T, P]
}

// BidirectionalPosition may be retreated as well as advanced.
type BidirectionalPosition[T, P any] interface {
	ForwardPosition[T, P]
	Prev() P
}

// RandomAccessPosition supports constant-time offset arithmetic.
//
// Add moves by a signed distance, Diff returns the signed distance
// p - other, Less orders positions of the same container and At(n) is
// Add(n).Deref().
type RandomAccessPosition[T, P any] interface {
	BidirectionalPosition[T, P]
	Add(n int) P
	Diff(other P) int
	Less(other P) bool
	At(n int) T
}

// OutputPosition is a write-only position.
type OutputPosition[T, P any] interface {
	Put(v T)
	Next() P
}

// Traits is the projection of a position type onto its associated properties.
type Traits struct {
	Category  Category
	ValueType string // Go type of dereferenced values, as printed by %T
}

// TraitsOf returns the traits of position p.
func TraitsOf[T any, P InputPosition[T, P]](p P) Traits {
	var zero T
	return Traits{
		Category:  p.Category(),
		ValueType: fmt.Sprintf("%T", zero),
	}
}

// CategoryOf returns the category of position p.
func CategoryOf[T any, P InputPosition[T, P]](p P) Category {
	return p.Category()
}
