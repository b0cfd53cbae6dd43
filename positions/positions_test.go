package positions_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/parser"
	"github.com/pycst-go/pycst/positions"
	"github.com/pycst-go/pycst/token"
)

func resolve(t *testing.T, source string) *positions.Index {
	t.Helper()
	mod, err := parser.Parse(source)
	require.NoError(t, err)
	return positions.Resolve(mod)
}

func TestAt(t *testing.T) {
	// Offsets:   012345
	idx := resolve(t, "x = 1\n")

	tests := []struct {
		offset int
		text   string
	}{
		{0, "x"},
		{1, "="}, // the space before `=` is its leading trivia
		{2, "="},
		{3, "1"},
		{4, "1"},
		{5, "\n"},
	}
	for _, tt := range tests {
		term := idx.At(tt.offset)
		require.NotNil(t, term, "offset %d", tt.offset)
		assert.Equal(t, tt.text, term.TokenText(), "offset %d", tt.offset)
	}

	assert.Nil(t, idx.At(6), "past the last terminal")
	assert.Nil(t, idx.At(100))
}

func TestAtFooter(t *testing.T) {
	idx := resolve(t, "x = 1\n# tail\n")
	// The footer comment lives on the module, not on any terminal.
	assert.Nil(t, idx.At(8))
}

func TestSpanHull(t *testing.T) {
	idx := resolve(t, "x = 1\n")
	mod := idx.Root().(*ast.Module)

	sp, ok := idx.Span(mod.Body[0])
	require.True(t, ok)
	assert.Equal(t, token.Position{Line: 1, Col: 1, Offset: 0}, sp.Start)
	assert.Equal(t, token.Position{Line: 2, Col: 1, Offset: 6}, sp.End)

	line := mod.Body[0].(*ast.SimpleStatementLine)
	assign := line.Body[0].(*ast.Assign)
	sp, ok = idx.Span(assign.Value)
	require.True(t, ok)
	assert.Equal(t, 4, sp.Start.Offset)
	assert.Equal(t, 5, sp.End.Offset)
}

func TestSpanOfForeignNode(t *testing.T) {
	idx := resolve(t, "x = 1\n")
	_, ok := idx.Span(ast.NewName("elsewhere"))
	assert.False(t, ok)
}

func TestParent(t *testing.T) {
	idx := resolve(t, "x = 1\n")
	mod := idx.Root().(*ast.Module)
	line := mod.Body[0].(*ast.SimpleStatementLine)
	assign := line.Body[0].(*ast.Assign)

	assert.Same(t, ast.Node(line), idx.Parent(assign))
	assert.Same(t, idx.Root(), idx.Parent(line))
	assert.Nil(t, idx.Parent(idx.Root()))
	assert.Nil(t, idx.Parent(ast.NewName("elsewhere")))
}

func TestPath(t *testing.T) {
	idx := resolve(t, "x = 1\n")
	mod := idx.Root().(*ast.Module)
	line := mod.Body[0].(*ast.SimpleStatementLine)
	assign := line.Body[0].(*ast.Assign)
	target := assign.Targets[0].Target

	path := idx.Path(target)
	kinds := make([]string, len(path))
	for i, n := range path {
		kinds[i] = n.Kind().String()
	}
	want := []string{"Module", "SimpleStatementLine", "Assign", "AssignTarget", "Name"}
	assert.Empty(t, cmp.Diff(want, kinds))

	assert.Nil(t, idx.Path(ast.NewName("elsewhere")))
	assert.Equal(t, []ast.Node{idx.Root()}, idx.Path(idx.Root()))
}

func TestInnermost(t *testing.T) {
	idx := resolve(t, "x = 1\n")

	path := idx.Innermost(4)
	require.NotEmpty(t, path)
	assert.Equal(t, ast.KindModule, path[0].Kind())
	last := path[len(path)-1]
	assert.Equal(t, "1", last.(ast.Terminal).TokenText())

	assert.Nil(t, idx.Innermost(42))
}

// An offset inside a nested call resolves through every enclosing node.
func TestInnermostNested(t *testing.T) {
	source := "result = outer(inner(arg))\n"
	idx := resolve(t, source)

	off := len("result = outer(inner(")
	path := idx.Innermost(off)
	require.NotEmpty(t, path)

	last := path[len(path)-1]
	assert.Equal(t, "arg", last.(ast.Terminal).TokenText())

	var calls int
	for _, n := range path {
		if n.Kind() == ast.KindCall {
			calls++
		}
	}
	assert.Equal(t, 2, calls, "both calls enclose the offset")
}

func TestResolveMultiLine(t *testing.T) {
	source := "def f(x):\n    return x\n"
	idx := resolve(t, source)
	mod := idx.Root().(*ast.Module)

	fd := mod.Body[0].(*ast.FunctionDef)
	sp, ok := idx.Span(fd)
	require.True(t, ok)
	assert.Equal(t, 0, sp.Start.Offset)
	assert.Equal(t, len(source), sp.End.Offset)

	// The `return` keyword owns its indentation as leading trivia.
	term := idx.At(len("def f(x):\n") + 2)
	require.NotNil(t, term)
	assert.Equal(t, "return", term.TokenText())
}

// Nodes spliced in by hand have no spans, but the rest of the tree still
// resolves.
func TestResolveSplicedSubtree(t *testing.T) {
	mod, err := parser.Parse("x = 1\n")
	require.NoError(t, err)

	line := mod.Body[0].(*ast.SimpleStatementLine)
	assign := line.Body[0].(*ast.Assign)
	edited := ast.WithChanges(assign, func(a *ast.Assign) {
		a.Value = &ast.Integer{Lexeme: ast.Lexeme{Leading: " ", Text: "2"}}
	})

	idx := positions.Resolve(edited)
	_, ok := idx.Span(edited.Value)
	assert.False(t, ok, "hand-built nodes carry no span")
	sp, ok := idx.Span(edited.Targets[0].Target)
	require.True(t, ok)
	assert.Equal(t, 0, sp.Start.Offset)
}
