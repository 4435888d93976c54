/*
Package formatter renders numtree trees for humans.

Tree.String from package numtree gives a plain bracket notation. This package
adds a box-drawing layout (Pretty), colored console output (Console) and
HTML nested lists (HTML). All renderings contain every value of a tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Side markers used by all layouts.
const (
	leftMarker  = "L"
	rightMarker = "R"
	emptyMarker = "∅"
)
