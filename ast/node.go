package ast

import (
	"fmt"
	"slices"

	"github.com/pycst-go/pycst/token"
)

// Node is a single node of the concrete syntax tree. All implementations
// live in this package; the set of kinds is closed.
//
// Children returns the node's declared children, terminals included, in
// exact source order. The ordering is load-bearing: the printer concatenates
// children in this order to regenerate source text, and traversal visits
// them in this order.
type Node interface {
	Kind() Kind
	Children() []Node

	// clone returns a shallow copy of the node.
	clone() Node
	// mapChildren applies fn to every child in source order and returns a
	// node reflecting the replacements. If fn returns every child
	// unchanged, the receiver itself is returned, so unchanged subtrees
	// are shared rather than copied.
	mapChildren(fn func(Node) Node) Node
	validate() error
}

// Expr is a node that can appear in expression position.
type Expr interface {
	Node
	exprNode()
}

// Statement is a node that can appear in a statement list: a simple
// statement line or a compound statement. Else is included so that it can
// hang off If, While and For nodes; it is not valid on its own.
type Statement interface {
	Node
	stmtNode()
}

// SmallStatement is a statement that fits on a single logical line,
// possibly sharing the line with others separated by semicolons.
type SmallStatement interface {
	Node
	smallNode()
	SetSemicolon(op *Op)
}

// Suite is the body of a compound statement: an indented block or an
// inline run of small statements after the colon.
type Suite interface {
	Node
	suiteNode()
}

// Terminal is a leaf node: a single token plus the whitespace it owns.
type Terminal interface {
	Node
	LeadingTrivia() string
	TokenText() string
	TokenSpan() token.Span
}

// InvalidNodeError reports construction or substitution of a structurally
// invalid node. It indicates a bug in the caller, so the package panics
// with it rather than returning it.
type InvalidNodeError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("invalid %v node: %s", e.Kind, e.Reason)
}

func invalidf(k Kind, format string, args ...any) *InvalidNodeError {
	return &InvalidNodeError{Kind: k, Reason: fmt.Sprintf(format, args...)}
}

// WithChanges returns a copy of node with the edits applied by edit. The
// copy is shallow: every field the edit does not touch is shared with the
// original, which remains untouched. The result is re-validated; an edit
// that produces an invalid shape panics with [*InvalidNodeError].
//
//	wider := ast.WithChanges(name, func(n *ast.Name) { n.Text = "renamed" })
func WithChanges[N Node](node N, edit func(N)) N {
	c := node.clone().(N)
	edit(c)
	mustValidate(c)
	return c
}

// MapChildren applies fn to each declared child of n in source order and
// returns a node with the replacements applied. If no child changes, n
// itself is returned. Replacing a child with a node of an incompatible
// kind panics with [*InvalidNodeError].
//
// This is the copy-on-write primitive the walk package is built on.
func MapChildren(n Node, fn func(Node) Node) Node {
	out := n.mapChildren(fn)
	if out != n {
		mustValidate(out)
	}
	return out
}

func mustValidate(n Node) {
	if err := n.validate(); err != nil {
		if inv, ok := err.(*InvalidNodeError); ok {
			panic(inv)
		}
		panic(invalidf(n.Kind(), "%v", err))
	}
}

// mapChild applies fn to a single non-nil child and asserts the replacement
// back to the declared field type.
func mapChild[N Node](child N, fn func(Node) Node, field string, changed *bool) N {
	out := fn(child)
	if out == Node(child) {
		return child
	}
	repl, ok := out.(N)
	if !ok {
		panic(invalidf(child.Kind(), "replacement for %s has incompatible type %T", field, out))
	}
	*changed = true
	return repl
}

// mapSlice is mapChild over an ordered child sequence. The input slice is
// returned as-is when nothing changes.
func mapSlice[N Node](children []N, fn func(Node) Node, field string, changed *bool) []N {
	out := children
	copied := false
	for i, c := range children {
		var elemChanged bool
		r := mapChild(c, fn, field, &elemChanged)
		if !elemChanged {
			continue
		}
		if !copied {
			out = slices.Clone(children)
			copied = true
		}
		out[i] = r
		*changed = true
	}
	return out
}
