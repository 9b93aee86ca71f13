package rbtree

import (
	"fmt"
	"math"
)

// MaxNodes is the maximum number of nodes a single tree can hold.
const MaxNodes = min(math.MaxInt, math.MaxUint32-1)

// Config configures a Tree.
type Config[K any] struct {
	// Compare orders keys. It returns a negative number if a sorts before b,
	// a positive number if b sorts before a, and 0 if they are
	// order-equivalent. Compare must define a strict weak ordering.
	Compare func(a, b K) int
	// Capacity is the number of nodes to pre-allocate.
	Capacity int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparison function is required", ErrInvalidConfig)
	}
	if cfg.Capacity > MaxNodes {
		return fmt.Errorf("%w: capacity %d exceeds %d nodes", ErrInvalidConfig, cfg.Capacity, MaxNodes)
	}
	return nil
}
