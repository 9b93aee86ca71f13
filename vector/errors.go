package vector

import "errors"

var (
	// ErrIndexOutOfBounds signals a checked access outside of [0, Len()).
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrLengthExceeded signals a requested size or capacity beyond MaxSize().
	ErrLengthExceeded = errors.New("vector: length exceeds maximum size")
	// ErrInvalidConfig signals an invalid vector configuration.
	ErrInvalidConfig = errors.New("vector: invalid configuration")
)
