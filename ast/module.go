package ast

// Module is the root of a parsed file. Footer holds the raw bytes after
// the last token: trailing blank lines and comments that no statement
// owns. An empty file is a Module with no body and the whole source in
// Footer.
type Module struct {
	Body   []Statement
	Footer string
}

func (n *Module) Kind() Kind { return KindModule }

func (n *Module) Children() []Node {
	out := make([]Node, len(n.Body))
	for i, s := range n.Body {
		out[i] = s
	}
	return out
}

func (n *Module) clone() Node { c := *n; return &c }

func (n *Module) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Body = mapSlice(n.Body, fn, "Body", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Module) validate() error { return nil }
