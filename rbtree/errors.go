package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrArenaExhausted signals that no more node handles are available.
	ErrArenaExhausted = errors.New("rbtree: node arena exhausted")
	// ErrBrokenInvariant is reported by Check for a malformed tree.
	ErrBrokenInvariant = errors.New("rbtree: broken invariant")
)
