package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/printer"
)

func TestParseExpression(t *testing.T) {
	e, err := ParseExpression("1 + 2")
	require.NoError(t, err)

	bin, ok := e.(*ast.BinaryOperation)
	require.True(t, ok, "got %T", e)

	left := bin.Left.(*ast.Integer)
	assert.Equal(t, "1", left.Text)
	assert.Equal(t, "", left.Leading)

	assert.Equal(t, "+", bin.Operator.Text)
	assert.Equal(t, " ", bin.Operator.Leading)

	right := bin.Right.(*ast.Integer)
	assert.Equal(t, "2", right.Text)
	assert.Equal(t, " ", right.Leading)
}

func TestParseExpressionRejectsTrailingTokens(t *testing.T) {
	_, err := ParseExpression("1 + 2; x")
	require.Error(t, err)
}

func TestParseStatementFragment(t *testing.T) {
	st, err := ParseStatement("def f(x: int) -> str: ...\n")
	require.NoError(t, err)

	fd, ok := st.(*ast.FunctionDef)
	require.True(t, ok, "got %T", st)
	assert.Equal(t, "f", fd.Name.Text)
	require.Len(t, fd.Params.Params, 1)
	require.NotNil(t, fd.Params.Params[0].Annotation)
	assert.Equal(t, "int", fd.Params.Params[0].Annotation.(*ast.Name).Text)
	require.NotNil(t, fd.Returns)
	assert.Equal(t, "str", fd.Returns.(*ast.Name).Text)
	_, inline := fd.Body.(*ast.SimpleStatementSuite)
	assert.True(t, inline)
}

func TestParseIndependentParsesAreDeepEqual(t *testing.T) {
	const source = "def f(x):\n    return x + 1\n"
	a, err := Parse(source)
	require.NoError(t, err)
	b, err := Parse(source)
	require.NoError(t, err)

	assert.True(t, ast.DeepEqual(a, b))
	assert.NotSame(t, a, b)
}

func TestParseEmptyAndCommentOnly(t *testing.T) {
	mod, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, mod.Body)
	assert.Equal(t, "", mod.Footer)

	mod, err = Parse("# just a comment\n")
	require.NoError(t, err)
	assert.Empty(t, mod.Body)
	assert.Equal(t, "# just a comment\n", mod.Footer)
}

func TestParseModuleFooter(t *testing.T) {
	mod, err := Parse("x = 1\n\n# done\n")
	require.NoError(t, err)
	require.Len(t, mod.Body, 1)
	assert.Equal(t, "\n# done\n", mod.Footer)
}

func TestParseChainedAssignment(t *testing.T) {
	mod, err := Parse("a = b = 1\n")
	require.NoError(t, err)
	line := mod.Body[0].(*ast.SimpleStatementLine)
	as := line.Body[0].(*ast.Assign)
	require.Len(t, as.Targets, 2)
	assert.Equal(t, "a", as.Targets[0].Target.(*ast.Name).Text)
	assert.Equal(t, "b", as.Targets[1].Target.(*ast.Name).Text)
	assert.Equal(t, "1", as.Value.(*ast.Integer).Text)
}

func TestParseSemicolons(t *testing.T) {
	mod, err := Parse("a = 1; b = 2\n")
	require.NoError(t, err)
	line := mod.Body[0].(*ast.SimpleStatementLine)
	require.Len(t, line.Body, 2)
	first := line.Body[0].(*ast.Assign)
	require.NotNil(t, first.Semicolon)
	second := line.Body[1].(*ast.Assign)
	assert.Nil(t, second.Semicolon)
	assert.Equal(t, "a = 1; b = 2\n", printer.Print(mod))
}

func TestParseElifChain(t *testing.T) {
	mod, err := Parse("if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n")
	require.NoError(t, err)
	top := mod.Body[0].(*ast.If)
	assert.Equal(t, "if", top.Keyword.Text)
	elif, ok := top.Orelse.(*ast.If)
	require.True(t, ok, "got %T", top.Orelse)
	assert.Equal(t, "elif", elif.Keyword.Text)
	_, ok = elif.Orelse.(*ast.Else)
	assert.True(t, ok)
}

func TestParseComparisonChain(t *testing.T) {
	e, err := ParseExpression("a < b <= c")
	require.NoError(t, err)
	cmpExpr := e.(*ast.Comparison)
	require.Len(t, cmpExpr.Comparisons, 2)
	assert.Equal(t, "<", cmpExpr.Comparisons[0].Operator.TokenText())
	assert.Equal(t, "<=", cmpExpr.Comparisons[1].Operator.TokenText())

	e, err = ParseExpression("x is not None")
	require.NoError(t, err)
	cmpExpr = e.(*ast.Comparison)
	require.Len(t, cmpExpr.Comparisons, 1)
	assert.Equal(t, "is", cmpExpr.Comparisons[0].Operator.TokenText())
	assert.Equal(t, "not", cmpExpr.Comparisons[0].Operator2.TokenText())
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	e, err := ParseExpression("2 ** 3 ** 4")
	require.NoError(t, err)
	outer := e.(*ast.BinaryOperation)
	assert.Equal(t, "2", outer.Left.(*ast.Integer).Text)
	inner := outer.Right.(*ast.BinaryOperation)
	assert.Equal(t, "3", inner.Left.(*ast.Integer).Text)
}

func TestParsePrecedence(t *testing.T) {
	e, err := ParseExpression("1 + 2 * 3")
	require.NoError(t, err)
	sum := e.(*ast.BinaryOperation)
	assert.Equal(t, "+", sum.Operator.Text)
	product := sum.Right.(*ast.BinaryOperation)
	assert.Equal(t, "*", product.Operator.Text)
}

func TestParseVersionGates(t *testing.T) {
	_, err := Parse("if (n := f()):\n    pass\n")
	require.NoError(t, err)

	_, err = Parse("if (n := f()):\n    pass\n", WithVersion(Py35))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3.8")

	_, err = Parse("def f(a, /, b):\n    pass\n", WithVersion(Py35))
	require.Error(t, err)

	_, err = Parse("y = a @ b\n", WithVersion(Py35))
	require.NoError(t, err)
}

func TestParseErrorPositions(t *testing.T) {
	_, err := Parse("x = )\n")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	pos := perr.Pos()
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 5, pos.Col)
}

func TestParseUnexpectedIndent(t *testing.T) {
	_, err := Parse("    x = 1\n")
	var ierr *IndentationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Msg, "unexpected indent")
}

func TestParseMissingBlock(t *testing.T) {
	_, err := Parse("if x:\npass\n")
	var ierr *IndentationError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Msg, "expected an indented block")
}

type parseCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Kind   string `yaml:"kind"`
}

func TestParseCases(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "statements.yaml"))
	require.NoError(t, err)
	var cases []parseCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			mod, err := Parse(tc.Source)
			require.NoError(t, err)
			require.NotEmpty(t, mod.Body)

			st := ast.Node(mod.Body[0])
			if line, ok := st.(*ast.SimpleStatementLine); ok && tc.Kind != "SimpleStatementLine" {
				st = line.Body[0]
			}
			assert.Equal(t, tc.Kind, st.Kind().String())
			assert.Equal(t, tc.Source, printer.Print(mod), "round trip")
		})
	}
}

type errorCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Error  string `yaml:"error"`
}

func TestParseErrorCases(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "errors.yaml"))
	require.NoError(t, err)
	var cases []errorCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := Parse(tc.Source)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.Error)
		})
	}
}
