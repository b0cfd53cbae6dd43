// Package walk traverses and rewrites syntax trees.
//
// [Visit] runs a read-only depth-first traversal. [Transform] rebuilds a
// tree bottom-up through the ast package's copy-on-write primitives, so
// untouched subtrees are shared between the input and the result; a
// transform that changes nothing returns the input root itself.
package walk

import (
	"github.com/pycst-go/pycst/ast"
)

// Visitor observes nodes during a traversal. Enter runs before a node's
// children; returning false skips the children but Leave still runs for
// the node. Any error aborts the walk immediately.
type Visitor interface {
	Enter(n ast.Node) (bool, error)
	Leave(n ast.Node) error
}

// Visit walks the tree rooted at n in depth-first source order.
func Visit(n ast.Node, v Visitor) error {
	descend, err := v.Enter(n)
	if err != nil {
		return err
	}
	if descend {
		for _, child := range n.Children() {
			if err := Visit(child, v); err != nil {
				return err
			}
		}
	}
	return v.Leave(n)
}

// Transformer rewrites nodes during a traversal. Enter runs before the
// children are transformed; returning false leaves the subtree untouched.
// Leave runs after the children and returns the node's replacement:
// original is the node in the input tree, updated is the node with any
// child replacements already applied. Returning updated unchanged keeps
// it; returning a different node splices that node in. The replacement
// must be kind-compatible with the slot it fills or the rebuild panics
// with [*ast.InvalidNodeError].
type Transformer interface {
	Enter(n ast.Node) (bool, error)
	Leave(original, updated ast.Node) (ast.Node, error)
}

// Transform rewrites the tree rooted at n and returns the new root. The
// input tree is never mutated. If no Leave call replaces anything, the
// returned root is n itself.
func Transform(n ast.Node, t Transformer) (ast.Node, error) {
	descend, err := t.Enter(n)
	if err != nil {
		return nil, err
	}
	updated := n
	if descend {
		var walkErr error
		updated = ast.MapChildren(n, func(child ast.Node) ast.Node {
			if walkErr != nil {
				return child
			}
			out, err := Transform(child, t)
			if err != nil {
				walkErr = err
				return child
			}
			return out
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	return t.Leave(n, updated)
}

// VisitorFuncs adapts plain functions to the Visitor interface. Nil
// callbacks are no-ops.
type VisitorFuncs struct {
	EnterFunc func(n ast.Node) (bool, error)
	LeaveFunc func(n ast.Node) error
}

func (v VisitorFuncs) Enter(n ast.Node) (bool, error) {
	if v.EnterFunc == nil {
		return true, nil
	}
	return v.EnterFunc(n)
}

func (v VisitorFuncs) Leave(n ast.Node) error {
	if v.LeaveFunc == nil {
		return nil
	}
	return v.LeaveFunc(n)
}

// TransformerFuncs adapts plain functions to the Transformer interface.
// Nil callbacks are no-ops.
type TransformerFuncs struct {
	EnterFunc func(n ast.Node) (bool, error)
	LeaveFunc func(original, updated ast.Node) (ast.Node, error)
}

func (t TransformerFuncs) Enter(n ast.Node) (bool, error) {
	if t.EnterFunc == nil {
		return true, nil
	}
	return t.EnterFunc(n)
}

func (t TransformerFuncs) Leave(original, updated ast.Node) (ast.Node, error) {
	if t.LeaveFunc == nil {
		return updated, nil
	}
	return t.LeaveFunc(original, updated)
}
