/*
Package vector implements a growable sequence stored in one contiguous buffer.

A Vector owns a buffer of Cap() slots, the first Len() of which hold live
elements. The buffer is managed through an Allocator, which separates
allocation of a region from construction and destruction of single slots.
Growth, insertion and erasure are composed from these primitives only:

  - Reserve(n) allocates exactly n slots, moves all live elements over and
    releases the old region,
  - PushBack doubles the capacity (0 → 1 → 2 → 4 …) when the buffer is full,
  - Insert grows the buffer to exactly the new length if needed, shifts the
    tail towards the end, constructing into free slots and
    assigning to occupied ones, then constructs the new elements into the gap,
  - Erase shifts the tail down and destroys the trailing duplicates.

Positions (type Iterator) are random-access. A position keeps referring to
the buffer it was taken from; after a reallocation it is stale and reads
released storage. This is a documented hazard, it is not detected.

Mutations are not transactional: if an Allocator panics in the middle of an
operation, the vector is left in an unspecified state.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
