package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pycst-go/pycst/token"
)

func TestAdvance(t *testing.T) {
	start := token.Position{Line: 1, Col: 1, Offset: 0}
	tests := []struct {
		name string
		text string
		want token.Position
	}{
		{"empty", "", token.Position{Line: 1, Col: 1, Offset: 0}},
		{"ascii", "abc", token.Position{Line: 1, Col: 4, Offset: 3}},
		{"newline", "ab\n", token.Position{Line: 2, Col: 1, Offset: 3}},
		{"newline then text", "ab\ncd", token.Position{Line: 2, Col: 3, Offset: 5}},
		{"two newlines", "\n\nx", token.Position{Line: 3, Col: 2, Offset: 3}},
		{"tab stop", "\t", token.Position{Line: 1, Col: 9, Offset: 1}},
		{"wide rune", "日", token.Position{Line: 1, Col: 3, Offset: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.Advance(start, tt.text))
		})
	}
}

func TestAdvanceChained(t *testing.T) {
	p := token.Position{Line: 1, Col: 1, Offset: 0}
	p = token.Advance(p, "x = ")
	p = token.Advance(p, "1")
	assert.Equal(t, token.Position{Line: 1, Col: 6, Offset: 5}, p)
}

func TestPositionIsZero(t *testing.T) {
	assert.True(t, token.Position{}.IsZero())
	assert.False(t, token.Position{Line: 1, Col: 1}.IsZero())
}

func TestSpanString(t *testing.T) {
	sp := token.Span{
		Start: token.Position{Line: 1, Col: 5, Offset: 4},
		End:   token.Position{Line: 1, Col: 6, Offset: 5},
	}
	assert.Equal(t, "1:5-1:6", sp.String())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `"foo"`, token.Token{Kind: token.Name, Text: "foo"}.String())
	assert.Equal(t, "end of file", token.Token{Kind: token.EOF}.String())
	assert.Equal(t, "newline", token.Token{Kind: token.Newline}.String())
}
