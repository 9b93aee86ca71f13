package ordmap

import "errors"

// ErrKeyNotFound signals a checked lookup of an absent key.
var ErrKeyNotFound = errors.New("ordmap: key not found")
