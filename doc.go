/*
Package containers is a small library of generic containers: a growable
contiguous sequence (package vector), an ordered unique-key map backed by a
red-black tree (packages rbtree and ordmap) and a LIFO adapter (package stack).

All containers are generic only through the position abstraction in package
iterator. Positions are lightweight values which reference an element (or
the one-past-last end position) of a container; they never own anything.
Their validity follows the usual rules for contiguous and node-based storage:

  - vector positions become stale on reallocation (Reserve, growth on insert)
    and on erasure at or before the position,
  - rbtree positions stay valid until the referenced node is erased.

Stale positions are a caller contract violation, they are not detected.

This package holds the key/value Pair shared by the map packages.

Containers are not safe for concurrent use. Every operation runs to completion
on the caller's goroutine.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package containers
