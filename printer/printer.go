// Package printer regenerates source text from syntax trees. A tree that
// came from the parser prints back byte-for-byte identical to the source
// it was parsed from.
package printer

import (
	"io"
	"strings"

	"github.com/pycst-go/pycst/ast"
)

// Fprint writes the source text of the tree rooted at n to w. Terminals
// contribute their leading trivia followed by their token text; a Module
// additionally contributes its footer after the last statement.
func Fprint(w io.Writer, n ast.Node) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = &plainWriter{w}
	}
	return print(sw, n)
}

// Print returns the source text of the tree rooted at n.
func Print(n ast.Node) string {
	var sb strings.Builder
	print(&sb, n)
	return sb.String()
}

func print(w io.StringWriter, n ast.Node) error {
	if t, ok := n.(ast.Terminal); ok {
		if _, err := w.WriteString(t.LeadingTrivia()); err != nil {
			return err
		}
		_, err := w.WriteString(t.TokenText())
		return err
	}
	for _, child := range n.Children() {
		if err := print(w, child); err != nil {
			return err
		}
	}
	if m, ok := n.(*ast.Module); ok {
		_, err := w.WriteString(m.Footer)
		return err
	}
	return nil
}

type plainWriter struct {
	w io.Writer
}

func (p *plainWriter) WriteString(s string) (int, error) {
	return io.WriteString(p.w, s)
}
