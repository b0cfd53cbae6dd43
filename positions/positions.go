// Package positions computes source locations for parsed trees. The
// parser stamps spans on terminals only; Resolve derives spans for every
// interior node and builds an index for position-based queries, such as
// mapping an editor offset back to the innermost node there.
package positions

import (
	"github.com/tidwall/btree"

	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/token"
)

// Index answers location queries about one resolved tree. It is immutable
// after Resolve and safe for concurrent readers.
type Index struct {
	root    ast.Node
	spans   map[ast.Node]token.Span
	parents map[ast.Node]ast.Node

	// terminals maps the byte offset where a terminal's coverage begins,
	// leading trivia included, to the terminal. Coverage regions are
	// disjoint and contiguous, so a floor lookup finds the owner of any
	// offset.
	terminals btree.Map[int, ast.Terminal]
}

// Resolve indexes the tree rooted at root. Hand-built nodes carry no
// spans, so only trees that came from the parser resolve usefully;
// subtrees spliced in by a transform simply stay span-less.
func Resolve(root ast.Node) *Index {
	idx := &Index{
		root:    root,
		spans:   make(map[ast.Node]token.Span),
		parents: make(map[ast.Node]ast.Node),
	}
	idx.index(root, nil)
	return idx
}

// index walks the tree recording parents and computing each node's span
// as the hull of its terminals' spans.
func (idx *Index) index(n ast.Node, parent ast.Node) token.Span {
	if parent != nil {
		idx.parents[n] = parent
	}
	if t, ok := n.(ast.Terminal); ok {
		sp := t.TokenSpan()
		if !sp.IsZero() {
			idx.spans[n] = sp
			covered := sp.Start.Offset - len(t.LeadingTrivia())
			idx.terminals.Set(covered, t)
		}
		return sp
	}
	var hull token.Span
	for _, child := range n.Children() {
		sp := idx.index(child, n)
		if sp.IsZero() {
			continue
		}
		if hull.IsZero() {
			hull = sp
		} else {
			hull.End = sp.End
		}
	}
	if !hull.IsZero() {
		idx.spans[n] = hull
	}
	return hull
}

// Root returns the tree the index was built from.
func (idx *Index) Root() ast.Node { return idx.root }

// Span returns the source span of n: for terminals the token text itself,
// for interior nodes the hull from the first to the last terminal
// underneath. ok is false for nodes with no positioned terminals.
func (idx *Index) Span(n ast.Node) (sp token.Span, ok bool) {
	sp, ok = idx.spans[n]
	return sp, ok
}

// Parent returns the parent of n in the indexed tree, or nil for the root
// and for nodes outside the tree.
func (idx *Index) Parent(n ast.Node) ast.Node {
	return idx.parents[n]
}

// At returns the terminal owning the given byte offset, counting a
// terminal's leading trivia as part of it. It returns nil for offsets past
// the last terminal, such as inside a module's footer.
func (idx *Index) At(offset int) ast.Terminal {
	var found ast.Terminal
	iter := idx.terminals.Iter()
	switch {
	case iter.Seek(offset) && iter.Key() == offset:
		found = iter.Value()
	case iter.Prev():
		// Seek stopped at the first entry past offset, or past the end;
		// either way the floor entry is one step back.
		found = iter.Value()
	case iter.Last() && iter.Key() <= offset:
		found = iter.Value()
	default:
		return nil
	}
	if offset >= found.TokenSpan().End.Offset {
		return nil
	}
	return found
}

// Path returns the chain of nodes from the root down to n inclusive, or
// nil if n is not in the indexed tree.
func (idx *Index) Path(n ast.Node) []ast.Node {
	if n != idx.root {
		if _, ok := idx.parents[n]; !ok {
			return nil
		}
	}
	var rev []ast.Node
	for cur := n; cur != nil; {
		rev = append(rev, cur)
		if cur == idx.root {
			break
		}
		cur = idx.parents[cur]
	}
	out := make([]ast.Node, len(rev))
	for i, node := range rev {
		out[len(rev)-1-i] = node
	}
	return out
}

// Innermost returns the path from the root to the terminal owning the
// given byte offset. It returns nil when no terminal owns the offset.
func (idx *Index) Innermost(offset int) []ast.Node {
	t := idx.At(offset)
	if t == nil {
		return nil
	}
	return idx.Path(t)
}
