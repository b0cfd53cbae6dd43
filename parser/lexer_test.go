package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pycst-go/pycst/token"
)

func lexAll(t *testing.T, source string) []token.Token {
	t.Helper()
	lex, err := newLexer(source, newConfig(nil))
	require.NoError(t, err)
	var out []token.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexSimpleStatement(t *testing.T) {
	tokens := lexAll(t, "x = 1\n")
	require.Equal(t, []token.Kind{
		token.Name, token.Op, token.Int, token.Newline, token.EOF,
	}, kindsOf(tokens))

	assert.Equal(t, "x", tokens[0].Text)
	assert.Equal(t, "", tokens[0].Leading)
	assert.Equal(t, "=", tokens[1].Text)
	assert.Equal(t, " ", tokens[1].Leading)
	assert.Equal(t, "1", tokens[2].Text)
	assert.Equal(t, " ", tokens[2].Leading)
	assert.Equal(t, "\n", tokens[3].Text)
	assert.Equal(t, "", tokens[3].Leading)
}

func TestLexSpans(t *testing.T) {
	tokens := lexAll(t, "x = 1\n")
	assert.Equal(t, token.Position{Line: 1, Col: 1, Offset: 0}, tokens[0].Span.Start)
	assert.Equal(t, token.Position{Line: 1, Col: 3, Offset: 2}, tokens[1].Span.Start)
	assert.Equal(t, token.Position{Line: 1, Col: 5, Offset: 4}, tokens[2].Span.Start)
	assert.Equal(t, token.Position{Line: 2, Col: 1, Offset: 6}, tokens[4].Span.Start)
}

// Every byte of the input must end up in exactly one token, either as its
// text or as its leading trivia.
func TestLexOwnsEveryByte(t *testing.T) {
	sources := []string{
		"",
		"x = 1\n",
		"x = 1",
		"x = 1  # trailing comment\n",
		"# leading comment\n\nx = 1\n\n# footer\n",
		"if x:\n    pass\nelse:\n    pass\n",
		"f(a,\n  b,\n)\n",
		"x = [1,\n     2]\n",
		"total = 1 + \\\n    2\n",
		"s = '''multi\nline'''\n",
		"a = 1\r\nb = 2\r\n",
		"\ufeffx = 1\n",
		"def f(a, b=1):\n\n    return a\n",
		"class C:\n    x = 1\n\n    y = 2\n",
	}
	for _, source := range sources {
		var sb strings.Builder
		for _, tok := range lexAll(t, source) {
			sb.WriteString(tok.Leading)
			sb.WriteString(tok.Text)
		}
		assert.Equal(t, source, sb.String(), "source %q", source)
	}
}

func TestLexIndentDedent(t *testing.T) {
	tokens := lexAll(t, "if x:\n    pass\n")
	assert.Equal(t, []token.Kind{
		token.Keyword, token.Name, token.Op, token.Newline,
		token.Indent, token.Keyword, token.Newline,
		token.Dedent, token.EOF,
	}, kindsOf(tokens))
}

func TestLexNestedDedents(t *testing.T) {
	tokens := lexAll(t, "if a:\n    if b:\n        pass\nx = 1\n")
	var dedents int
	for _, tok := range tokens {
		if tok.Kind == token.Dedent {
			dedents++
		}
	}
	assert.Equal(t, 2, dedents)
}

func TestLexSyntheticNewlineAtEOF(t *testing.T) {
	tokens := lexAll(t, "x = 1")
	require.Equal(t, []token.Kind{
		token.Name, token.Op, token.Int, token.Newline, token.EOF,
	}, kindsOf(tokens))
	assert.Equal(t, "", tokens[3].Text, "the synthetic newline holds no bytes")
}

func TestLexTrailingCommentBelongsToNewline(t *testing.T) {
	tokens := lexAll(t, "x = 1  # note\n")
	nl := tokens[3]
	require.Equal(t, token.Newline, nl.Kind)
	assert.Equal(t, "  # note", nl.Leading)
	assert.Equal(t, "\n", nl.Text)
}

func TestLexFooterOnEOF(t *testing.T) {
	tokens := lexAll(t, "x = 1\n\n# the end\n")
	eof := tokens[len(tokens)-1]
	assert.Equal(t, "\n# the end\n", eof.Leading)
}

func TestLexBlankLinesAreTrivia(t *testing.T) {
	tokens := lexAll(t, "a = 1\n\n\nb = 2\n")
	// No Newline tokens for the blank lines; they ride along as the
	// leading trivia of `b`.
	require.Equal(t, []token.Kind{
		token.Name, token.Op, token.Int, token.Newline,
		token.Name, token.Op, token.Int, token.Newline,
		token.EOF,
	}, kindsOf(tokens))
	assert.Equal(t, "\n\n", tokens[4].Leading)
}

func TestLexImplicitLineJoining(t *testing.T) {
	tokens := lexAll(t, "f(a,\n  b)\n")
	for _, tok := range tokens[:len(tokens)-2] {
		assert.NotEqual(t, token.Newline, tok.Kind, "no newline tokens inside brackets")
	}
}

func TestLexCRLF(t *testing.T) {
	tokens := lexAll(t, "x = 1\r\n")
	require.Equal(t, token.Newline, tokens[3].Kind)
	assert.Equal(t, "\r\n", tokens[3].Text)
}

func TestLexKeywordsAndConstants(t *testing.T) {
	tokens := lexAll(t, "return True\n")
	assert.Equal(t, token.Keyword, tokens[0].Kind)
	assert.Equal(t, token.Name, tokens[1].Kind, "True lexes as a name")

	tokens = lexAll(t, "x = None\n")
	assert.Equal(t, token.Name, tokens[2].Kind)
}

func TestLexStrings(t *testing.T) {
	tests := []struct {
		source string
		text   string
	}{
		{`s = 'abc'` + "\n", `'abc'`},
		{`s = "a'b"` + "\n", `"a'b"`},
		{`s = 'it\'s'` + "\n", `'it\'s'`},
		{`s = r'\d+'` + "\n", `r'\d+'`},
		{`s = rb'\x00'` + "\n", `rb'\x00'`},
		{`s = f"hi {name}"` + "\n", `f"hi {name}"`},
		{"s = '''a\nb'''\n", "'''a\nb'''"},
		{`s = """doc"""` + "\n", `"""doc"""`},
	}
	for _, tt := range tests {
		tokens := lexAll(t, tt.source)
		require.Equal(t, token.String, tokens[2].Kind, tt.source)
		assert.Equal(t, tt.text, tokens[2].Text, tt.source)
	}
}

func TestLexStringErrors(t *testing.T) {
	for _, source := range []string{
		"s = 'abc\n",
		"s = 'abc",
		"s = '''abc\n",
	} {
		lex, err := newLexer(source, newConfig(nil))
		require.NoError(t, err)
		for {
			tok, lexErr := lex.Next()
			if lexErr != nil {
				var parseErr *ParseError
				require.ErrorAs(t, lexErr, &parseErr, source)
				break
			}
			require.NotEqual(t, token.EOF, tok.Kind, "expected an error for %q", source)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		text string
		kind token.Kind
	}{
		{"42", token.Int},
		{"0x1F", token.Int},
		{"0o17", token.Int},
		{"0b1010", token.Int},
		{"1_000_000", token.Int},
		{"3.14", token.Float},
		{"1.", token.Float},
		{".5", token.Float},
		{"1e10", token.Float},
		{"2.5e-3", token.Float},
		{"3j", token.Float},
	}
	for _, tt := range tests {
		tokens := lexAll(t, "x = "+tt.text+"\n")
		require.Equal(t, tt.kind, tokens[2].Kind, tt.text)
		assert.Equal(t, tt.text, tokens[2].Text, tt.text)
	}
}

func TestLexOperatorsLongestMatch(t *testing.T) {
	tokens := lexAll(t, "x **= 2\n")
	assert.Equal(t, "**=", tokens[1].Text)

	tokens = lexAll(t, "a = b // c\n")
	assert.Equal(t, "//", tokens[3].Text)

	tokens = lexAll(t, "x = ...\n")
	assert.Equal(t, "...", tokens[2].Text)
}

func TestLexIndentationErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		msg    string
	}{
		{
			"bad unindent",
			"if x:\n    a = 1\n  b = 2\n",
			"unindent does not match",
		},
		{
			"tab space mix",
			"if x:\n\ta = 1\n        b = 2\n",
			"inconsistent use of tabs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := newLexer(tt.source, newConfig(nil))
			require.NoError(t, err)
			for {
				tok, lexErr := lex.Next()
				if lexErr != nil {
					var indentErr *IndentationError
					require.ErrorAs(t, lexErr, &indentErr)
					assert.Contains(t, indentErr.Error(), tt.msg)
					return
				}
				require.NotEqual(t, token.EOF, tok.Kind, "expected an indentation error")
			}
		})
	}
}

func TestLexEncodingErrors(t *testing.T) {
	_, err := newLexer("# -*- coding: latin-1 -*-\nx = 1\n", newConfig(nil))
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Contains(t, encErr.Reason, "latin-1")

	_, err = newLexer("x = '\xff'\n", newConfig(nil))
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 5, encErr.Offset)
}

func TestLexCodingDeclarationAccepted(t *testing.T) {
	for _, source := range []string{
		"# -*- coding: utf-8 -*-\nx = 1\n",
		"#!/usr/bin/env python\n# coding=utf8\nx = 1\n",
		"# coding: ascii\nx = 1\n",
	} {
		_, err := newLexer(source, newConfig(nil))
		assert.NoError(t, err, source)
	}
}

func TestLexStrayBackslash(t *testing.T) {
	lex, err := newLexer("x = 1 \\ 2\n", newConfig(nil))
	require.NoError(t, err)
	for {
		tok, lexErr := lex.Next()
		if lexErr != nil {
			assert.Contains(t, lexErr.Error(), "line continuation")
			return
		}
		require.NotEqual(t, token.EOF, tok.Kind, "expected an error")
	}
}
