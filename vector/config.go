package vector

import "fmt"

// Config configures a Vector.
type Config[T any] struct {
	// Allocator manages the vector's storage. Defaults to DefaultAllocator.
	Allocator Allocator[T]
	// Capacity is the number of slots to reserve initially.
	Capacity int
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Allocator == nil {
		cfg.Allocator = DefaultAllocator[T]{}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	max := cfg.Allocator.MaxSize()
	if max <= 0 {
		return fmt.Errorf("%w: allocator reports max size %d", ErrInvalidConfig, max)
	}
	if cfg.Capacity < 0 || cfg.Capacity > max {
		return fmt.Errorf("%w: capacity %d not in [0, %d]", ErrInvalidConfig, cfg.Capacity, max)
	}
	return nil
}
