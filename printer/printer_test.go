package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/internal/corpora"
	"github.com/pycst-go/pycst/parser"
	"github.com/pycst-go/pycst/printer"
)

// TestRoundTrip parses every file under testdata and asserts that printing
// the tree reproduces the file byte for byte.
func TestRoundTrip(t *testing.T) {
	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PYCST_REFRESH",
		Extension: "py",
		Outputs:   []corpora.Output{{Extension: ""}},
		Test: func(t *testing.T, path, text string) []string {
			mod, err := parser.Parse(text)
			require.NoError(t, err)
			return []string{printer.Print(mod)}
		},
	}.Run(t)
}

func TestPrintHandBuiltTree(t *testing.T) {
	expr := &ast.BinaryOperation{
		Left:     &ast.Name{Lexeme: ast.Lexeme{Text: "total"}},
		Operator: &ast.Op{Lexeme: ast.Lexeme{Leading: " ", Text: "+"}},
		Right:    &ast.Integer{Lexeme: ast.Lexeme{Leading: " ", Text: "1"}},
	}
	assert.Equal(t, "total + 1", printer.Print(expr))
}

func TestFprint(t *testing.T) {
	mod, err := parser.Parse("x = 1  # keep\n")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, printer.Fprint(&sb, mod))
	assert.Equal(t, "x = 1  # keep\n", sb.String())
}

// Fprint must also work through a writer that is not a StringWriter.
func TestFprintPlainWriter(t *testing.T) {
	mod, err := parser.Parse("y = 2\n")
	require.NoError(t, err)

	w := &byteWriter{}
	require.NoError(t, printer.Fprint(w, mod))
	assert.Equal(t, "y = 2\n", string(w.buf))
}

type byteWriter struct {
	buf []byte
}

func (w *byteWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func TestPrintEditedTree(t *testing.T) {
	mod, err := parser.Parse("limit = 10\n")
	require.NoError(t, err)

	line := mod.Body[0].(*ast.SimpleStatementLine)
	assign := line.Body[0].(*ast.Assign)
	edited := ast.WithChanges(assign, func(a *ast.Assign) {
		a.Value = &ast.Integer{Lexeme: ast.Lexeme{Leading: " ", Text: "20"}}
	})
	assert.Equal(t, "limit = 20", printer.Print(edited))
	assert.Equal(t, "limit = 10\n", printer.Print(mod), "the original tree keeps its text")
}
