package textseq

import (
	"io"

	"github.com/npillmayer/parray"
	"golang.org/x/net/html"
)

// InnerText builds a grapheme sequence from the textual content of an
// HTML element and all its descendants. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that it cannot respect CSS styling suppressing
// the visibility of the node's descendants).
func InnerText(n *html.Node) (parray.Seq[string], error) {
	if n == nil {
		return parray.Seq[string]{}, ErrIllegalArguments
	}
	seq := parray.New[string]()
	collectText(n, &seq)
	return seq, nil
}

// FromHTML builds a grapheme sequence from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func FromHTML(input io.Reader) (parray.Seq[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return parray.Seq[string]{}, err
	}
	seq := parray.New[string]()
	for _, n := range nodes {
		collectText(n, &seq)
	}
	return seq, nil
}

func collectText(n *html.Node, seq *parray.Seq[string]) {
	if n.Type == html.TextNode {
		for _, cluster := range clusters(n.Data) {
			seq.PushMut(cluster)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, seq)
	}
}
