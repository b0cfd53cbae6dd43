package ast

import (
	"strconv"
	"strings"

	"github.com/pycst-go/pycst/token"
)

// Lexeme is the common core embedded by every terminal node: the token's
// raw text, the whitespace/comment bytes the token owns, and where in the
// source it came from. Span is provenance only: it is zero on hand-built
// nodes and ignored by [DeepEqual].
type Lexeme struct {
	// Leading is every raw byte between the previous token and this one:
	// spaces, tabs, comments, blank lines, line continuations.
	Leading string
	// Text is the token's own text, exactly as it appeared in the source.
	Text string
	// Span records where the parser found Text.
	Span token.Span
}

func (l *Lexeme) LeadingTrivia() string  { return l.Leading }
func (l *Lexeme) TokenText() string      { return l.Text }
func (l *Lexeme) TokenSpan() token.Span  { return l.Span }
func (l *Lexeme) Children() []Node       { return nil }

// Name is an identifier, including the constants True, False and None.
type Name struct {
	Lexeme
}

// NewName returns a Name with no surrounding whitespace.
func NewName(text string) *Name {
	n := &Name{Lexeme{Text: text}}
	mustValidate(n)
	return n
}

func (n *Name) Kind() Kind { return KindName }
func (n *Name) exprNode()  {}

func (n *Name) clone() Node                        { c := *n; return &c }
func (n *Name) mapChildren(func(Node) Node) Node   { return n }
func (n *Name) validate() error {
	if n.Text == "" {
		return invalidf(KindName, "empty identifier")
	}
	return nil
}

// Keyword is a reserved word used as part of a statement or operator, such
// as def, return, not or in.
type Keyword struct {
	Lexeme
}

// NewKeyword returns a Keyword with a single leading space, the usual
// shape when splicing keywords into existing code.
func NewKeyword(text string) *Keyword {
	k := &Keyword{Lexeme{Leading: " ", Text: text}}
	mustValidate(k)
	return k
}

func (n *Keyword) Kind() Kind { return KindKeyword }

func (n *Keyword) clone() Node                      { c := *n; return &c }
func (n *Keyword) mapChildren(func(Node) Node) Node { return n }
func (n *Keyword) validate() error {
	if n.Text == "" {
		return invalidf(KindKeyword, "empty keyword")
	}
	return nil
}

// Op is an operator or punctuation token: `+`, `->`, `(`, `,`, `:` and so
// on.
type Op struct {
	Lexeme
}

// NewOp returns an Op with no surrounding whitespace.
func NewOp(text string) *Op {
	o := &Op{Lexeme{Text: text}}
	mustValidate(o)
	return o
}

func (n *Op) Kind() Kind { return KindOp }

func (n *Op) clone() Node                      { c := *n; return &c }
func (n *Op) mapChildren(func(Node) Node) Node { return n }
func (n *Op) validate() error {
	if n.Text == "" {
		return invalidf(KindOp, "empty operator")
	}
	return nil
}

// Newline terminates a logical line. Its text is "\n" or "\r\n", or empty
// for the synthetic newline minted when a file or fragment does not end
// with one. A trailing same-line comment is the newline's leading trivia,
// so it stays attached to the statement that owns the line.
type Newline struct {
	Lexeme
}

func NewNewline() *Newline {
	return &Newline{Lexeme{Text: "\n"}}
}

func (n *Newline) Kind() Kind { return KindNewline }

func (n *Newline) clone() Node                      { c := *n; return &c }
func (n *Newline) mapChildren(func(Node) Node) Node { return n }
func (n *Newline) validate() error {
	switch n.Text {
	case "", "\n", "\r\n", "\r":
		return nil
	}
	return invalidf(KindNewline, "text %q is not a line ending", n.Text)
}

// Integer is an integer literal in any radix, underscores included.
type Integer struct {
	Lexeme
}

func NewInteger(text string) *Integer {
	n := &Integer{Lexeme{Text: text}}
	mustValidate(n)
	return n
}

func (n *Integer) Kind() Kind { return KindInteger }
func (n *Integer) exprNode()  {}

// Value parses the literal's numeric value.
func (n *Integer) Value() (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(n.Text, "_", ""), 0, 64)
}

func (n *Integer) clone() Node                      { c := *n; return &c }
func (n *Integer) mapChildren(func(Node) Node) Node { return n }
func (n *Integer) validate() error {
	if n.Text == "" {
		return invalidf(KindInteger, "empty literal")
	}
	return nil
}

// Float is a floating-point literal, scientific notation included.
type Float struct {
	Lexeme
}

func NewFloat(text string) *Float {
	n := &Float{Lexeme{Text: text}}
	mustValidate(n)
	return n
}

func (n *Float) Kind() Kind { return KindFloat }
func (n *Float) exprNode()  {}

// Value parses the literal's numeric value. Imaginary literals report an
// error; callers that care about the imaginary part parse Text themselves.
func (n *Float) Value() (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(n.Text, "_", ""), 64)
}

func (n *Float) clone() Node                      { c := *n; return &c }
func (n *Float) mapChildren(func(Node) Node) Node { return n }
func (n *Float) validate() error {
	if n.Text == "" {
		return invalidf(KindFloat, "empty literal")
	}
	return nil
}

// String is a single string literal token, prefix and quotes included.
// Adjacent literals that concatenate implicitly are separate String nodes
// under a [ConcatenatedString].
type String struct {
	Lexeme
}

func NewString(text string) *String {
	n := &String{Lexeme{Text: text}}
	mustValidate(n)
	return n
}

func (n *String) Kind() Kind { return KindString }
func (n *String) exprNode()  {}

func (n *String) clone() Node                      { c := *n; return &c }
func (n *String) mapChildren(func(Node) Node) Node { return n }
func (n *String) validate() error {
	if !strings.ContainsAny(n.Text, `'"`) {
		return invalidf(KindString, "text %q has no quotes", n.Text)
	}
	return nil
}

// Ellipsis is the `...` literal.
type Ellipsis struct {
	Lexeme
}

func NewEllipsis() *Ellipsis {
	return &Ellipsis{Lexeme{Text: "..."}}
}

func (n *Ellipsis) Kind() Kind { return KindEllipsis }
func (n *Ellipsis) exprNode()  {}

func (n *Ellipsis) clone() Node                      { c := *n; return &c }
func (n *Ellipsis) mapChildren(func(Node) Node) Node { return n }
func (n *Ellipsis) validate() error {
	if n.Text != "..." {
		return invalidf(KindEllipsis, "text %q is not ...", n.Text)
	}
	return nil
}
