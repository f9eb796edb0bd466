/*
Package parray implements a persistent (immutable) indexed sequence.

A sequence organizes its elements in a rope-like binary tree of array
blocks: leaf nodes hold contiguous runs of elements, while branch nodes
hold a weight and references to a left and a right child. The weight of a
branch is the number of elements stored under its left child, which makes
positional descent an O(log n) operation.

Sequences are persistent: every mutating operation returns a new sequence
value which shares all unchanged subtrees with its predecessor. Old
versions stay valid and are cheap to retain, which makes sequences a
natural fit for undo/redo histories, snapshots handed to concurrent
readers, and speculative edits.

	Operation     |   Seq           |  Slice
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Split         |   O(log n)      |   O(n)
	Concat        |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)

For workloads with many editing operations on long sequences, sequences
have stable performance and space characteristics; for short-lived small
collections a plain slice will usually win.

Two ownership disciplines are available. In the default Shared discipline
node reference counts are maintained atomically and handles may be cloned
and used from multiple goroutines. The Local discipline trades that for
cheaper bookkeeping and restricts all handles of a sequence family to a
single goroutine. Both disciplines present the same operations.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package parray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray'.
func tracer() tracing.Trace {
	return tracing.Select("parray")
}

// assert guards internal invariants. A failing assertion is a bug in this
// package, not an input error, and aborts the process.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
