// Package token defines the lexical vocabulary shared by the tokenizer,
// the parser, and the CST: token kinds, source positions, and the Token
// value itself.
//
// A Token owns, as its Leading text, every raw byte between the end of the
// previous token and its own first byte: whitespace, comments, blank lines,
// and backslash line continuations. This single-ownership rule is what makes
// byte-exact regeneration of source text possible.
package token

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Kind identifies what kind of token a particular [Token] is.
type Kind uint8

const (
	EOF Kind = iota
	Newline
	Indent
	Dedent
	Name
	Keyword
	Int
	Float
	String
	Op
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of file"
	case Newline:
		return "newline"
	case Indent:
		return "indent"
	case Dedent:
		return "dedent"
	case Name:
		return "identifier"
	case Keyword:
		return "keyword"
	case Int:
		return "int literal"
	case Float:
		return "float literal"
	case String:
		return "string literal"
	case Op:
		return "operator"
	default:
		return fmt.Sprintf("token.Kind(%d)", uint8(k))
	}
}

// Position identifies a location in a source file. Lines and columns are
// 1-indexed; Offset is the zero-based byte offset.
type Position struct {
	Line, Col int
	Offset    int
}

func (p Position) String() string {
	if p.Line <= 0 || p.Col <= 0 {
		return fmt.Sprintf("offset %d", p.Offset)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsZero reports whether p carries no location, which is the case for
// positions of nodes constructed by hand rather than by the parser.
func (p Position) IsZero() bool {
	return p == Position{}
}

// Span is a half-open [Start, End) region of a source file.
type Span struct {
	Start, End Position
}

func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("%v-%v", s.Start, s.End)
}

// Advance returns the position obtained by consuming text starting at p.
// Newlines reset the column; column advance is measured in terminal display
// cells so that diagnostics column numbers line up with what an editor shows.
func Advance(p Position, text string) Position {
	p.Offset += len(text)
	runStart := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		p.Line++
		p.Col = 1
		runStart = i + 1
	}
	if run := text[runStart:]; run != "" {
		p.Col += width(run)
	}
	return p
}

// width computes the display width of a single-line chunk of text. The
// common case of plain ASCII avoids the grapheme segmenter entirely.
func width(s string) int {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] == '\t' {
			ascii = false
			break
		}
	}
	if ascii {
		return len(s)
	}

	w := 0
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\t' {
			continue
		}
		w += uniseg.StringWidth(s[col:i])
		w += 8 - (w % 8) // next tab stop
		col = i + 1
	}
	w += uniseg.StringWidth(s[col:])
	return w
}

// Token is a single lexical unit. Tokens are immutable values: the lexer
// produces them once per scan and nothing ever rewrites one.
//
// Indent, Dedent and end-of-line-at-EOF Newline tokens are synthetic: their
// Text is empty and they occupy no bytes of the source.
type Token struct {
	Kind    Kind
	Text    string
	Leading string
	Span    Span
}

func (t Token) String() string {
	switch t.Kind {
	case EOF, Indent, Dedent:
		return t.Kind.String()
	case Newline:
		if t.Text == "" {
			return "newline"
		}
		return fmt.Sprintf("%q", t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}
