// Package ast defines the lossless concrete syntax tree produced by the
// parser.
//
// Unlike an abstract syntax tree, every byte of the original source is owned
// by exactly one node in the tree: each terminal node carries the raw
// whitespace, comments, blank lines and line continuations that precede its
// token text, and the module owns whatever trails the final token. Printing
// a freshly parsed tree therefore reproduces the source exactly.
//
// Nodes are immutable once constructed. Structural change goes through
// [WithChanges] (or a transformer, see the walk package), which produces a
// new node and shares every untouched field with the original. A node holds
// no parent reference, so the same node value may appear in any number of
// trees.
//
// Shape violations (a nil required child, a child of the wrong kind) are
// programmer errors: constructors and [WithChanges] fail fast by panicking
// with [*InvalidNodeError].
package ast
