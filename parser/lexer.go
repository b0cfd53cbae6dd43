package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pycst-go/pycst/token"
)

// keywords are the hard keywords. True, False and None lex as identifiers,
// matching how Python's own tokenizer reports them.
var keywords = map[string]bool{
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

var codingRE = regexp.MustCompile(`coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)

// indentLevel is one entry of the indentation stack. Width is measured
// twice, with tabs worth one column and with tabs advancing to the next
// multiple of eight; a line whose two widths do not order the same way
// against the stack top mixes tabs and spaces inconsistently.
type indentLevel struct {
	w1, w8 int
	raw    string
}

type lexer struct {
	data string
	cfg  config

	// lastEnd is the byte offset just past the previous token's text, and
	// lastPos the position there. Everything between lastEnd and the next
	// token's first byte becomes that token's leading trivia.
	lastEnd int
	lastPos token.Position

	parens       int
	freshLine    bool
	lineHadToken bool
	indents      []indentLevel
	pending      []token.Token
	eofToken     *token.Token
}

func newLexer(data string, cfg config) (*lexer, error) {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, &EncodingError{Offset: i, Reason: "invalid UTF-8"}
		}
		i += size
	}
	if err := checkCoding(data); err != nil {
		return nil, err
	}
	return &lexer{
		data:      data,
		cfg:       cfg,
		lastPos:   token.Position{Line: 1, Col: 1},
		freshLine: true,
		indents:   []indentLevel{{}},
	}, nil
}

// checkCoding enforces PEP 263: a coding declaration in a comment on the
// first two lines must name UTF-8 or ASCII. Any other encoding would make
// the byte-for-byte round trip meaningless, so it is rejected up front.
func checkCoding(data string) error {
	rest := strings.TrimPrefix(data, "\ufeff")
	offset := len(data) - len(rest)
	for line := 0; line < 2; line++ {
		end := strings.IndexByte(rest, '\n')
		if end < 0 {
			end = len(rest)
		}
		text := rest[:end]
		if hash := strings.IndexByte(text, '#'); hash >= 0 {
			if m := codingRE.FindStringSubmatch(text[hash:]); m != nil {
				switch strings.ToLower(m[1]) {
				case "utf-8", "utf8", "ascii", "us-ascii":
				default:
					return &EncodingError{
						Offset: offset,
						Reason: "declared encoding " + m[1] + " is not supported; only UTF-8 and ASCII sources round-trip",
					}
				}
				return nil
			}
		}
		if end == len(rest) {
			break
		}
		offset += end + 1
		rest = rest[end+1:]
	}
	return nil
}

// Next returns the next token. After the EOF token has been returned, it
// keeps returning EOF.
func (l *lexer) Next() (token.Token, error) {
	if len(l.pending) > 0 {
		t := l.pending[0]
		l.pending = l.pending[1:]
		return t, nil
	}
	if l.eofToken != nil {
		return *l.eofToken, nil
	}

	start, err := l.skipTrivia()
	if err != nil {
		return token.Token{}, err
	}
	if start >= len(l.data) {
		return l.finish()
	}

	if c := l.data[start]; c == '\n' || c == '\r' {
		end := start + 1
		if c == '\r' && end < len(l.data) && l.data[end] == '\n' {
			end++
		}
		t := l.emit(token.Newline, start, end)
		l.freshLine = true
		l.lineHadToken = false
		return t, nil
	}

	var synthetic []token.Kind
	if l.freshLine && l.parens == 0 {
		synthetic, err = l.lineIndent(start)
		if err != nil {
			return token.Token{}, err
		}
	}
	l.freshLine = false
	l.lineHadToken = true

	t, err := l.lexToken(start)
	if err != nil {
		return token.Token{}, err
	}
	if len(synthetic) == 0 {
		return t, nil
	}
	at := token.Span{Start: t.Span.Start, End: t.Span.Start}
	for _, k := range synthetic[1:] {
		l.pending = append(l.pending, token.Token{Kind: k, Span: at})
	}
	l.pending = append(l.pending, t)
	return token.Token{Kind: synthetic[0], Span: at}, nil
}

// skipTrivia advances over whitespace, comments, line continuations and
// insignificant newlines, returning the offset of the next significant
// byte. It consumes nothing: the skipped bytes become the next token's
// leading trivia when that token is emitted.
func (l *lexer) skipTrivia() (int, error) {
	i := l.lastEnd
	if i == 0 && strings.HasPrefix(l.data, "\ufeff") {
		i = len("\ufeff")
	}
	for i < len(l.data) {
		switch c := l.data[i]; c {
		case ' ', '\t', '\f':
			i++
		case '#':
			for i < len(l.data) && l.data[i] != '\n' && l.data[i] != '\r' {
				i++
			}
		case '\n', '\r':
			if l.parens == 0 && l.lineHadToken {
				return i, nil
			}
			i++
			if c == '\r' && i < len(l.data) && l.data[i] == '\n' {
				i++
			}
		case '\\':
			j := i + 1
			if j < len(l.data) && l.data[j] == '\r' {
				j++
			}
			if j < len(l.data) && l.data[j] == '\n' {
				i = j + 1
				continue
			}
			return 0, l.lexError(i, i+1, "unexpected character after line continuation character")
		default:
			return i, nil
		}
	}
	return i, nil
}

// lineIndent measures the indentation of the line holding the token at
// start and returns the Indent or Dedent tokens implied by the change
// against the indentation stack.
func (l *lexer) lineIndent(start int) ([]token.Kind, error) {
	lineStart := start
	for lineStart > 0 && l.data[lineStart-1] != '\n' && l.data[lineStart-1] != '\r' {
		lineStart--
	}
	raw := l.data[lineStart:start]
	var w1, w8 int
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ' ':
			w1++
			w8++
		case '\t':
			w1++
			w8 = w8/8*8 + 8
		case '\f':
			w1, w8 = 0, 0
		}
	}

	top := l.indents[len(l.indents)-1]
	switch {
	case w1 == top.w1 && w8 == top.w8:
		return nil, nil
	case w1 > top.w1 && w8 > top.w8:
		l.indents = append(l.indents, indentLevel{w1, w8, raw})
		return []token.Kind{token.Indent}, nil
	case w1 < top.w1 && w8 < top.w8:
		var out []token.Kind
		for {
			l.indents = l.indents[:len(l.indents)-1]
			out = append(out, token.Dedent)
			top = l.indents[len(l.indents)-1]
			if w1 == top.w1 && w8 == top.w8 {
				return out, nil
			}
			if w1 > top.w1 && w8 > top.w8 {
				return nil, l.indentError(start, "unindent does not match any outer indentation level")
			}
			if !(w1 < top.w1 && w8 < top.w8) {
				return nil, l.indentError(start, "inconsistent use of tabs and spaces in indentation")
			}
		}
	default:
		return nil, l.indentError(start, "inconsistent use of tabs and spaces in indentation")
	}
}

// finish queues the synthetic tokens that close out the file: a zero-width
// newline if the last line lacks one, a dedent per open indentation level,
// and the EOF token carrying any trailing trivia.
func (l *lexer) finish() (token.Token, error) {
	trivia := l.data[l.lastEnd:]
	pos := token.Advance(l.lastPos, trivia)
	at := token.Span{Start: pos, End: pos}
	if l.lineHadToken {
		l.pending = append(l.pending, token.Token{Kind: token.Newline, Leading: trivia, Span: at})
		trivia = ""
		l.lineHadToken = false
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.pending = append(l.pending, token.Token{Kind: token.Dedent, Span: at})
	}
	eof := token.Token{Kind: token.EOF, Leading: trivia, Span: at}
	l.pending = append(l.pending, eof)
	l.eofToken = &eof
	l.lastEnd = len(l.data)
	l.lastPos = pos

	t := l.pending[0]
	l.pending = l.pending[1:]
	return t, nil
}

func (l *lexer) lexToken(start int) (token.Token, error) {
	c := l.data[start]
	switch {
	case c == '\'' || c == '"':
		end, err := l.scanString(start, start)
		if err != nil {
			return token.Token{}, err
		}
		return l.emit(token.String, start, end), nil
	case c >= '0' && c <= '9':
		end, isFloat := scanNumber(l.data, start)
		kind := token.Int
		if isFloat {
			kind = token.Float
		}
		return l.emit(kind, start, end), nil
	case c == '.' && start+1 < len(l.data) && isDigit(l.data[start+1]):
		end, _ := scanNumber(l.data, start)
		return l.emit(token.Float, start, end), nil
	case isIdentStart(l.data[start:]):
		end := scanIdent(l.data, start)
		text := l.data[start:end]
		if end < len(l.data) && (l.data[end] == '\'' || l.data[end] == '"') && isStringPrefix(text) {
			strEnd, err := l.scanString(start, end)
			if err != nil {
				return token.Token{}, err
			}
			return l.emit(token.String, start, strEnd), nil
		}
		if keywords[text] {
			return l.emit(token.Keyword, start, end), nil
		}
		return l.emit(token.Name, start, end), nil
	default:
		return l.lexOperator(start)
	}
}

var operators3 = []string{"**=", "//=", ">>=", "<<=", "..."}
var operators2 = []string{
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=",
}

func (l *lexer) lexOperator(start int) (token.Token, error) {
	rest := l.data[start:]
	for _, op := range operators3 {
		if strings.HasPrefix(rest, op) {
			return l.emit(token.Op, start, start+3), nil
		}
	}
	for _, op := range operators2 {
		if strings.HasPrefix(rest, op) {
			return l.emit(token.Op, start, start+2), nil
		}
	}
	if strings.IndexByte("+-*/%@&|^~<>()[]{},:.;=", rest[0]) >= 0 {
		switch rest[0] {
		case '(', '[', '{':
			l.parens++
		case ')', ']', '}':
			if l.parens > 0 {
				l.parens--
			}
		}
		return l.emit(token.Op, start, start+1), nil
	}
	r, size := utf8.DecodeRuneInString(rest)
	return token.Token{}, l.lexError(start, start+size, "invalid character '"+string(r)+"'")
}

// scanString scans a string literal whose prefix starts at start and whose
// opening quote is at quote. It returns the offset just past the closing
// quote.
func (l *lexer) scanString(start, quote int) (int, error) {
	q := l.data[quote]
	i := quote + 1
	raw := false
	for _, c := range l.data[start:quote] {
		if c == 'r' || c == 'R' {
			raw = true
		}
	}
	if strings.HasPrefix(l.data[i:], string([]byte{q, q})) {
		// triple-quoted: newlines are part of the literal
		i += 2
		for i < len(l.data) {
			switch {
			case l.data[i] == '\\' && !raw && i+1 < len(l.data):
				i += 2
			case l.data[i] == q && strings.HasPrefix(l.data[i:], string([]byte{q, q, q})):
				return i + 3, nil
			default:
				_, size := utf8.DecodeRuneInString(l.data[i:])
				i += size
			}
		}
		return 0, l.lexError(start, len(l.data), "unterminated triple-quoted string literal")
	}
	for i < len(l.data) {
		switch c := l.data[i]; {
		case c == '\\' && i+1 < len(l.data):
			// in raw strings a backslash still cannot end the literal
			i += 2
			if l.data[i-1] == '\r' && i < len(l.data) && l.data[i] == '\n' {
				i++
			}
		case c == q:
			return i + 1, nil
		case c == '\n' || c == '\r':
			return 0, l.lexError(start, i, "EOL while scanning string literal")
		default:
			_, size := utf8.DecodeRuneInString(l.data[i:])
			i += size
		}
	}
	return 0, l.lexError(start, len(l.data), "unterminated string literal")
}

// scanNumber scans an integer or float literal starting at start and
// reports whether it is a float. Imaginary literals count as floats.
func scanNumber(data string, start int) (end int, isFloat bool) {
	i := start
	if data[i] == '0' && i+1 < len(data) {
		switch data[i+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i += 2
			for i < len(data) && (isHexDigit(data[i]) || data[i] == '_') {
				i++
			}
			return i, false
		}
	}
	for i < len(data) && (isDigit(data[i]) || data[i] == '_') {
		i++
	}
	if i < len(data) && data[i] == '.' {
		isFloat = true
		i++
		for i < len(data) && (isDigit(data[i]) || data[i] == '_') {
			i++
		}
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		if j < len(data) && isDigit(data[j]) {
			isFloat = true
			i = j
			for i < len(data) && (isDigit(data[i]) || data[i] == '_') {
				i++
			}
		}
	}
	if i < len(data) && (data[i] == 'j' || data[i] == 'J') {
		isFloat = true
		i++
	}
	return i, isFloat
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r)
}

func scanIdent(data string, start int) int {
	i := start
	for i < len(data) {
		r, size := utf8.DecodeRuneInString(data[i:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return i
}

func isStringPrefix(s string) bool {
	if len(s) > 2 {
		return false
	}
	for _, c := range strings.ToLower(s) {
		if c != 'r' && c != 'b' && c != 'u' && c != 'f' {
			return false
		}
	}
	return true
}

// emit builds a token whose text is data[start:end], attaching everything
// since the previous token as leading trivia.
func (l *lexer) emit(kind token.Kind, start, end int) token.Token {
	leading := l.data[l.lastEnd:start]
	sp := token.Advance(l.lastPos, leading)
	ep := token.Advance(sp, l.data[start:end])
	t := token.Token{
		Kind:    kind,
		Text:    l.data[start:end],
		Leading: leading,
		Span:    token.Span{Start: sp, End: ep},
	}
	l.lastEnd = end
	l.lastPos = ep
	return t
}

func (l *lexer) lexError(start, end int, msg string) error {
	sp := token.Advance(l.lastPos, l.data[l.lastEnd:start])
	ep := token.Advance(sp, l.data[start:end])
	return &ParseError{
		Found: token.Token{Text: l.data[start:end], Span: token.Span{Start: sp, End: ep}},
		Msg:   msg,
	}
}

func (l *lexer) indentError(offset int, msg string) error {
	pos := token.Advance(l.lastPos, l.data[l.lastEnd:offset])
	return &IndentationError{Position: pos, Msg: msg}
}
