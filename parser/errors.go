package parser

import (
	"fmt"
	"strings"

	"github.com/pycst-go/pycst/token"
)

// PositionedError is an error that points at a location in the source
// being parsed. All errors returned by this package implement it.
type PositionedError interface {
	error
	Pos() token.Position
}

// EncodingError reports source text that is not valid UTF-8, or a PEP 263
// coding declaration naming an encoding other than UTF-8 or ASCII.
type EncodingError struct {
	Offset int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error at byte %d: %s", e.Offset, e.Reason)
}

func (e *EncodingError) Pos() token.Position {
	return token.Position{Offset: e.Offset}
}

// IndentationError reports inconsistent or unexpected indentation.
type IndentationError struct {
	Position token.Position
	Msg      string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Col, e.Msg)
}

func (e *IndentationError) Pos() token.Position { return e.Position }

// ParseError reports a token that does not fit the grammar. Expected lists
// the token kinds that would have been accepted, when the parser knows
// them.
type ParseError struct {
	Expected []token.Kind
	Found    token.Token
	Msg      string
}

func (e *ParseError) Error() string {
	pos := e.Found.Span.Start
	found := e.Found.String()
	if e.Msg != "" {
		return fmt.Sprintf("%d:%d: %s, found %s", pos.Line, pos.Col, e.Msg, found)
	}
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		return fmt.Sprintf("%d:%d: expected %s, found %s", pos.Line, pos.Col, strings.Join(names, " or "), found)
	}
	return fmt.Sprintf("%d:%d: unexpected %s", pos.Line, pos.Col, found)
}

func (e *ParseError) Pos() token.Position { return e.Found.Span.Start }
