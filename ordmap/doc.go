/*
Package ordmap provides an ordered map with unique keys.

Map is a thin layer over a red-black tree (package rbtree). Elements are
kept in ascending key order; positions are bidirectional and dereference to
key/value pairs.

	m := ordmap.New[string, int]()
	m.Insert("b", 2)
	*m.Index("a") = 1 // Index inserts a zero value for a missing key
	for k, v := range m.All() {
	    fmt.Println(k, v)
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
