package parray

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	tp "github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Dump writes a human-readable rendering of the internal tree structure to
// w (for debugging purposes). Branch nodes show weight and subtree size,
// leaves show their run length and a preview of their element run.
// Previews are clipped to 48 bytes, or to half the terminal width when w is
// a terminal wider than 16 columns. On a terminal, node kinds are colorized.
func (s Seq[T]) Dump(w io.Writer) {
	previewWidth := 48
	branchLabel := fmt.Sprintf
	leafLabel := fmt.Sprintf
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 16 {
			previewWidth = tw / 2
		}
		branchLabel = color.New(color.FgBlue).Sprintf
		leafLabel = color.New(color.FgGreen).Sprintf
	}
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("seq(len=%d, cap=%d, %s)", s.length, s.leafCap(), s.cfg.Ownership))
	if s.root != nil {
		s.dumpNode(printer, s.root, previewWidth, branchLabel, leafLabel)
	}
	fmt.Fprint(w, printer.String())
}

func (s Seq[T]) dumpNode(p tp.Tree, n *node[T], width int,
	branchLabel, leafLabel func(string, ...interface{}) string) {
	//
	if n.isLeaf() {
		preview := fmt.Sprintf("%v", n.items)
		if len(preview) > width {
			preview = preview[:width-1] + "…"
		}
		p.AddNode(leafLabel("%d %s", len(n.items), preview))
		return
	}
	branch := p.AddBranch(branchLabel("|%d| %d", n.weight, n.size()))
	s.dumpNode(branch, n.left, width, branchLabel, leafLabel)
	s.dumpNode(branch, n.right, width, branchLabel, leafLabel)
}
