/*
Package stack provides a LIFO adapter over a back-insertion container.

A Stack delegates to its container: Push appends at the back, Pop removes
from the back and Top reads the back. By default the container is a
vector.Vector; any type satisfying BackContainer may be used instead.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
