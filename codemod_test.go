package pycst_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycst-go/pycst"
	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/parser"
	"github.com/pycst-go/pycst/walk"
)

// annotator grafts the signature of a stub declaration onto the matching
// function, keeping the function's body and layout untouched.
type annotator struct {
	stub *ast.FunctionDef
}

func (a *annotator) Enter(n ast.Node) (bool, error) { return true, nil }

func (a *annotator) Leave(original, updated ast.Node) (ast.Node, error) {
	fd, ok := updated.(*ast.FunctionDef)
	if !ok || fd.Name.Text != a.stub.Name.Text {
		return updated, nil
	}
	return ast.WithChanges(fd, func(fd *ast.FunctionDef) {
		fd.Params = a.stub.Params
		fd.Arrow = a.stub.Arrow
		fd.Returns = a.stub.Returns
	}), nil
}

func parseStub(t *testing.T, source string) *ast.FunctionDef {
	t.Helper()
	st, err := parser.ParseStatement(source)
	require.NoError(t, err)
	fd, ok := st.(*ast.FunctionDef)
	require.True(t, ok, "got %T", st)
	return fd
}

func TestRunTransplantsAnnotations(t *testing.T) {
	stub := parseStub(t, "def f(x: int) -> str: ...")

	sources := map[string]string{
		"lib.py": "def f(x):\n    return x",
	}
	results, err := pycst.Run(context.Background(), sources, func() walk.Transformer {
		return &annotator{stub: stub}
	})
	require.NoError(t, err)

	res := results["lib.py"]
	require.NoError(t, res.Err)
	assert.True(t, res.Changed)
	assert.Equal(t, "def f(x: int) -> str:\n    return x", res.Output)
}

func TestRunLeavesUnmatchedFilesAlone(t *testing.T) {
	stub := parseStub(t, "def f(x: int) -> str: ...")

	sources := map[string]string{
		"a.py": "def f(x):\n    return x\n",
		"b.py": "def g(y):\n    return y\n",
	}
	results, err := pycst.Run(context.Background(), sources, func() walk.Transformer {
		return &annotator{stub: stub}
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results["a.py"].Changed)
	assert.False(t, results["b.py"].Changed)
	assert.Equal(t, sources["b.py"], results["b.py"].Output, "untouched files round-trip")
}

func TestRunReportsPerFileErrors(t *testing.T) {
	sources := map[string]string{
		"good.py":   "x = 1\n",
		"broken.py": "def oops(:\n",
	}
	results, err := pycst.Run(context.Background(), sources, func() walk.Transformer {
		return walk.TransformerFuncs{}
	})
	require.NoError(t, err, "per-file failures do not fail the run")

	assert.NoError(t, results["good.py"].Err)
	assert.Error(t, results["broken.py"].Err)
	assert.Empty(t, results["broken.py"].Output)
}

func TestRunWithParallelism(t *testing.T) {
	sources := make(map[string]string)
	for _, name := range []string{"a.py", "b.py", "c.py", "d.py"} {
		sources[name] = "value = 0\n"
	}
	results, err := pycst.Run(context.Background(), sources, func() walk.Transformer {
		return walk.TransformerFuncs{}
	}, pycst.WithParallelism(1))
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pycst.Run(ctx, map[string]string{"a.py": "x = 1\n"}, func() walk.Transformer {
		return walk.TransformerFuncs{}
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunForwardsParserOptions(t *testing.T) {
	sources := map[string]string{"old.py": "if (n := f()):\n    pass\n"}

	results, err := pycst.Run(context.Background(), sources, func() walk.Transformer {
		return walk.TransformerFuncs{}
	}, pycst.WithParserOptions(parser.WithVersion(parser.Py35)))
	require.NoError(t, err)
	assert.Error(t, results["old.py"].Err, "assignment expressions are rejected for 3.5")
}
