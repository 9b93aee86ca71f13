package stack

import "errors"

// ErrEmpty signals an access to the top of an empty stack.
var ErrEmpty = errors.New("stack: empty")
