/*
Package numtree implements a binary tree of numeric values.

Trees

A tree is either the empty tree or a node carrying a number, a left subtree
and a right subtree. Placement of values is entirely up to the client: this is
not a search tree, there is no ordering invariant over values and no
re-balancing. Clients build trees bottom-up

	t := numtree.MustNode(42, numtree.MustLeaf(21), numtree.MustLeaf(63))

and edit them in place with SetValue, SetLeft and SetRight.

The empty tree is distinguished by

	IsEmpty() == true
	Height()  == -1
	Len()     == 0

and every operation which needs node content (Value, Left, Right, IsLeaf,
LeafCount, ChildCount and the mutators) returns ErrEmptyTree when called on it.
A leaf is a node with two empty subtrees. Child accessors never hand out an
empty tree: an empty side is reported as nil.

Two trees are equal if and only if they have the same shape and the values at
respective nodes are equal. Values are equal if they have the same Go type and
the same value; floats compare by bit pattern.

Persistence

Trees may be saved to and restored from a Store, which maps location names to
byte streams. The default store is the file system. Save reads back what it has
written and verifies the round trip. Restore changes the receiver only if a
well-formed tree has been read.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package numtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
