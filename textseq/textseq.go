package textseq

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/parray"
	"github.com/npillmayer/uax/grapheme"
)

// ErrInvalidText signals input that is not valid UTF-8.
const ErrInvalidText = textseqError("text is not valid UTF-8")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = textseqError("illegal arguments")

type textseqError string

func (e textseqError) Error() string {
	return string(e)
}

var setupClasses sync.Once

// Graphemes segments text into grapheme clusters and returns a sequence
// with one cluster per element, using the default sequence configuration.
//
// The input must be valid UTF-8.
func Graphemes(text string) (parray.Seq[string], error) {
	return GraphemesWith(parray.Config{}, text)
}

// GraphemesWith is like Graphemes with an explicit sequence configuration.
func GraphemesWith(cfg parray.Config, text string) (parray.Seq[string], error) {
	if !utf8.ValidString(text) {
		return parray.Seq[string]{}, ErrInvalidText
	}
	return parray.FromSliceWith(cfg, clusters(text))
}

// clusters splits text into its grapheme clusters in order.
func clusters(text string) []string {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	out := make([]string, 0, gstr.Len())
	for i := 0; i < gstr.Len(); i++ {
		out = append(out, gstr.Nth(i))
	}
	tracer().Debugf("textseq: segmented %d bytes into %d grapheme clusters", len(text), len(out))
	return out
}
