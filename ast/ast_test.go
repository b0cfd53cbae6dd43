package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/token"
)

// onePlusTwo builds the tree for `1 + 2` with the conventional spacing.
func onePlusTwo() *ast.BinaryOperation {
	op := ast.NewOp("+")
	op.Leading = " "
	two := ast.NewInteger("2")
	two.Leading = " "
	return &ast.BinaryOperation{
		Left:     ast.NewInteger("1"),
		Operator: op,
		Right:    two,
	}
}

func TestWithChanges(t *testing.T) {
	name := ast.NewName("x")
	renamed := ast.WithChanges(name, func(n *ast.Name) { n.Text = "y" })

	assert.Equal(t, "y", renamed.Text)
	assert.Equal(t, "x", name.Text, "the original node must not change")
	assert.NotSame(t, name, renamed)
}

func TestWithChangesSharesUntouchedChildren(t *testing.T) {
	expr := onePlusTwo()
	wider := ast.WithChanges(expr, func(n *ast.BinaryOperation) {
		n.Right = ast.NewInteger("3")
	})

	require.NotSame(t, expr, wider)
	assert.Same(t, expr.Left, wider.Left, "the untouched child is shared, not copied")
	assert.Equal(t, "2", expr.Right.(*ast.Integer).Text)
}

func TestWithChangesPanicsOnInvalidEdit(t *testing.T) {
	nl := ast.NewNewline()
	defer func() {
		r := recover()
		require.NotNil(t, r, "an invalid edit must panic")
		inv, ok := r.(*ast.InvalidNodeError)
		require.True(t, ok, "panic value is %T, want *ast.InvalidNodeError", r)
		assert.Equal(t, ast.KindNewline, inv.Kind)
	}()
	ast.WithChanges(nl, func(n *ast.Newline) { n.Text = "oops" })
}

func TestMapChildrenIdentityReturnsReceiver(t *testing.T) {
	expr := onePlusTwo()
	out := ast.MapChildren(expr, func(child ast.Node) ast.Node { return child })
	assert.Same(t, expr, out)
}

func TestMapChildrenReplacesOneChild(t *testing.T) {
	expr := onePlusTwo()
	three := ast.NewInteger("3")
	three.Leading = " "
	out := ast.MapChildren(expr, func(child ast.Node) ast.Node {
		if child == ast.Node(expr.Right) {
			return three
		}
		return child
	})

	replaced, ok := out.(*ast.BinaryOperation)
	require.True(t, ok)
	require.NotSame(t, expr, replaced)
	assert.Same(t, three, replaced.Right)
	assert.Same(t, expr.Left, replaced.Left)
	assert.Equal(t, "2", expr.Right.(*ast.Integer).Text, "the input tree must not change")
}

func TestMapChildrenPanicsOnIncompatibleReplacement(t *testing.T) {
	expr := onePlusTwo()
	assert.Panics(t, func() {
		ast.MapChildren(expr, func(child ast.Node) ast.Node {
			if child.Kind() == ast.KindOp {
				return ast.NewName("plus")
			}
			return child
		})
	})
}

func TestDeepEqual(t *testing.T) {
	a := onePlusTwo()
	b := onePlusTwo()
	assert.True(t, ast.DeepEqual(a, b))
	assert.True(t, ast.DeepEqual(nil, nil))
	assert.False(t, ast.DeepEqual(a, nil))

	// Trivia differences are significant.
	c := onePlusTwo()
	c.Right.(*ast.Integer).Leading = "  "
	assert.False(t, ast.DeepEqual(a, c))

	// Token text differences are significant.
	d := onePlusTwo()
	d.Left = ast.NewInteger("9")
	assert.False(t, ast.DeepEqual(a, d))

	// Source positions are not.
	e := onePlusTwo()
	e.Left.(*ast.Integer).Span = token.Span{
		Start: token.Position{Line: 3, Col: 1, Offset: 40},
		End:   token.Position{Line: 3, Col: 2, Offset: 41},
	}
	assert.True(t, ast.DeepEqual(a, e))
}

func TestDeepEqualModuleFooter(t *testing.T) {
	a := &ast.Module{Footer: "# end\n"}
	b := &ast.Module{Footer: "# end\n"}
	c := &ast.Module{Footer: ""}
	assert.True(t, ast.DeepEqual(a, b))
	assert.False(t, ast.DeepEqual(a, c))
}

func TestIntegerValue(t *testing.T) {
	for text, want := range map[string]uint64{
		"42":        42,
		"0x1f":      31,
		"0o17":      15,
		"0b1010":    10,
		"1_000_000": 1000000,
	} {
		n := ast.NewInteger(text)
		v, err := n.Value()
		require.NoError(t, err, text)
		assert.Equal(t, want, v, text)
	}
}

func TestFloatValue(t *testing.T) {
	n := ast.NewFloat("2.5e2")
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, 250.0, v)
}

func TestDump(t *testing.T) {
	out := ast.Dump(onePlusTwo())
	assert.Contains(t, out, "BinaryOperation")
	assert.Contains(t, out, `Integer "1"`)
	assert.Contains(t, out, `Op " " "+"`)
	assert.Contains(t, out, `Integer " " "2"`)
}
