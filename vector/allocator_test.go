package vector

import (
	"fmt"
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingAllocator records the lifetime of every slot it hands out and
// reports violations of the construct/destroy discipline.
type trackingAllocator struct {
	limit      int
	live       map[*int]bool
	regions    int
	violations []string
}

var _ Allocator[int] = &trackingAllocator{}

func (a *trackingAllocator) Allocate(n int) []int {
	if a.live == nil {
		a.live = make(map[*int]bool)
	}
	a.regions++
	region := make([]int, n)
	for i := range region {
		region[i] = -1 // garbage
	}
	return region
}

func (a *trackingAllocator) Deallocate(region []int) {
	a.regions--
	for i := range region {
		if a.live[&region[i]] {
			a.violations = append(a.violations, fmt.Sprintf("deallocating live slot %d", i))
		}
	}
}

func (a *trackingAllocator) Construct(slot *int, v int) {
	if a.live[slot] {
		a.violations = append(a.violations, "constructing into live slot")
	}
	a.live[slot] = true
	*slot = v
}

func (a *trackingAllocator) Destroy(slot *int) {
	if !a.live[slot] {
		a.violations = append(a.violations, "destroying dead slot")
	}
	delete(a.live, slot)
	*slot = -1
}

func (a *trackingAllocator) MaxSize() int {
	if a.limit > 0 {
		return a.limit
	}
	return math.MaxInt32
}

func (a *trackingAllocator) check(t *testing.T, v *Vector[int], step string) {
	t.Helper()
	require.Empty(t, a.violations, "allocator discipline violated after %s", step)
	tassert.Equal(t, v.Len(), len(a.live), "live slots after %s", step)
	tassert.LessOrEqual(t, v.Len(), v.Cap(), "length exceeds capacity after %s", step)
	for i := 0; i < v.Len(); i++ {
		require.True(t, a.live[v.Ref(i)], "element %d not constructed after %s", i, step)
	}
}

func TestAllocatorDiscipline(t *testing.T) {
	alloc := &trackingAllocator{}
	v, err := NewWithConfig(Config[int]{Allocator: alloc})
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		v.PushBack(i)
	}
	alloc.check(t, v, "push")
	_, err = v.InsertN(v.Begin().Add(2), 3, 100)
	require.NoError(t, err)
	alloc.check(t, v, "insert within capacity")
	_, err = v.InsertSlice(v.Begin().Add(10), []int{7, 7, 7, 7, 7, 7, 7, 7})
	require.NoError(t, err)
	alloc.check(t, v, "insert with growth")
	_, err = v.InsertN(v.End().Add(-1), 1, 5)
	require.NoError(t, err)
	alloc.check(t, v, "insert before last")
	v.EraseRange(v.Begin().Add(1), v.Begin().Add(4))
	alloc.check(t, v, "erase short range")
	v.EraseRange(v.Begin().Add(2), v.End().Add(-2))
	alloc.check(t, v, "erase long range")
	v.Erase(v.End().Add(-1))
	alloc.check(t, v, "erase last")
	require.NoError(t, v.Resize(30, 1))
	alloc.check(t, v, "resize up")
	require.NoError(t, v.Resize(3, 1))
	alloc.check(t, v, "resize down")
	require.NoError(t, v.Assign(50, 2))
	alloc.check(t, v, "assign with reallocation")
	require.NoError(t, v.AssignSlice([]int{1, 2}))
	alloc.check(t, v, "assign into storage")
	c := v.Clone()
	tassert.Equal(t, v.Len()+c.Len(), len(alloc.live), "clone shares the allocator")
	c.Release()
	alloc.check(t, v, "release of clone")
	v.Release()
	alloc.check(t, v, "release")
	tassert.Zero(t, alloc.regions, "all regions must be handed back")
}
