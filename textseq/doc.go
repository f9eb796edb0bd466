/*
Package textseq constructs sequences from text.

Text is the workload persistent sequences come from historically (ropes),
and "element" for user-perceived text means grapheme cluster, not byte:
editing operations that insert or delete at byte positions will tear
combined characters apart. This package segments text into grapheme
clusters (Unicode Annex #29) and loads them as elements of a
parray.Seq[string], so positional editing operates on user-perceived
characters. A second constructor extracts the textual content of HTML
fragments.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parray.textseq'.
func tracer() tracing.Trace {
	return tracing.Select("parray.textseq")
}
