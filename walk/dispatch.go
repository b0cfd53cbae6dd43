package walk

import (
	"github.com/pycst-go/pycst/ast"
)

// Dispatch is a Visitor that routes each node to a handler registered for
// its kind, falling back to Default when no handler matches. Handlers run
// on Enter; Dispatch never skips children.
type Dispatch struct {
	Handlers map[ast.Kind]func(n ast.Node) error
	Default  func(n ast.Node) error
}

func (d Dispatch) Enter(n ast.Node) (bool, error) {
	if h, ok := d.Handlers[n.Kind()]; ok {
		return true, h(n)
	}
	if d.Default != nil {
		return true, d.Default(n)
	}
	return true, nil
}

func (d Dispatch) Leave(ast.Node) error { return nil }

// TransformDispatch is a Transformer that routes each node to a rewrite
// handler registered for its kind. Handlers run on Leave with the
// child-updated node; nodes without a handler pass through unchanged.
type TransformDispatch struct {
	Handlers map[ast.Kind]func(original, updated ast.Node) (ast.Node, error)
	Default  func(original, updated ast.Node) (ast.Node, error)
}

func (d TransformDispatch) Enter(ast.Node) (bool, error) { return true, nil }

func (d TransformDispatch) Leave(original, updated ast.Node) (ast.Node, error) {
	if h, ok := d.Handlers[original.Kind()]; ok {
		return h(original, updated)
	}
	if d.Default != nil {
		return d.Default(original, updated)
	}
	return updated, nil
}
