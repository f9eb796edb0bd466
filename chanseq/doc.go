/*
Package chanseq bulk-loads sequences from channels.

A Loader drains a channel of elements into a parray.Seq, chunking the
incoming stream into full leaf runs so the resulting tree is balanced from
the start. Interested parties (progress bars, other goroutines waiting for
partial data) may subscribe to the loader and will receive broadcast
Progress messages while the load is running.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package chanseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray.chanseq'.
func tracer() tracing.Trace {
	return tracing.Select("parray.chanseq")
}
