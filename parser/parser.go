package parser

import (
	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/token"
)

// Parse parses a complete source file into a module whose printed form is
// byte-for-byte identical to source.
func Parse(source string, opts ...Option) (*ast.Module, error) {
	p, err := newParser(source, opts)
	if err != nil {
		return nil, err
	}
	return p.parseModule()
}

// ParseStatement parses a single statement, simple or compound, for
// splicing into an existing tree. The fragment may use any indentation for
// nested blocks but must itself start at column one.
func ParseStatement(source string, opts ...Option) (ast.Statement, error) {
	p, err := newParser(source, opts)
	if err != nil {
		return nil, err
	}
	st, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.EOF {
		return nil, &ParseError{Found: p.tok, Msg: "expected a single statement"}
	}
	return st, nil
}

// ParseExpression parses a single expression for splicing into an existing
// tree.
func ParseExpression(source string, opts ...Option) (ast.Expr, error) {
	p, err := newParser(source, opts)
	if err != nil {
		return nil, err
	}
	e, err := p.parseNamedTest()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == token.Newline && p.tok.Text == "" {
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if p.tok.Kind != token.EOF {
		return nil, &ParseError{Found: p.tok, Msg: "expected a single expression"}
	}
	return e, nil
}

type parser struct {
	lex *lexer
	cfg config
	tok token.Token
}

func newParser(source string, opts []Option) (*parser, error) {
	cfg := newConfig(opts)
	lex, err := newLexer(source, cfg)
	if err != nil {
		return nil, err
	}
	p := &parser{lex: lex, cfg: cfg}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) next() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) atOp(text string) bool {
	return p.tok.Kind == token.Op && p.tok.Text == text
}

func (p *parser) atKeyword(text string) bool {
	return p.tok.Kind == token.Keyword && p.tok.Text == text
}

// takeOp consumes the current token, which the caller has already matched,
// and returns it as an Op node.
func (p *parser) takeOp() (*ast.Op, error) {
	op := opOf(p.tok)
	return op, p.next()
}

func (p *parser) takeKeyword() (*ast.Keyword, error) {
	kw := keywordOf(p.tok)
	return kw, p.next()
}

func (p *parser) takeName() (*ast.Name, error) {
	n := nameOf(p.tok)
	return n, p.next()
}

func (p *parser) expectOp(text string) (*ast.Op, error) {
	if !p.atOp(text) {
		return nil, &ParseError{Found: p.tok, Msg: "expected " + "`" + text + "`"}
	}
	return p.takeOp()
}

func (p *parser) expectKeyword(text string) (*ast.Keyword, error) {
	if !p.atKeyword(text) {
		return nil, &ParseError{Found: p.tok, Msg: "expected `" + text + "`"}
	}
	return p.takeKeyword()
}

func (p *parser) expectName() (*ast.Name, error) {
	if p.tok.Kind != token.Name {
		return nil, &ParseError{Expected: []token.Kind{token.Name}, Found: p.tok}
	}
	return p.takeName()
}

func (p *parser) expectNewline() (*ast.Newline, error) {
	if p.tok.Kind != token.Newline {
		return nil, &ParseError{Expected: []token.Kind{token.Newline}, Found: p.tok}
	}
	nl := newlineOf(p.tok)
	return nl, p.next()
}

func opOf(t token.Token) *ast.Op {
	return &ast.Op{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func keywordOf(t token.Token) *ast.Keyword {
	return &ast.Keyword{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func nameOf(t token.Token) *ast.Name {
	return &ast.Name{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func newlineOf(t token.Token) *ast.Newline {
	return &ast.Newline{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func (p *parser) parseModule() (*ast.Module, error) {
	var body []ast.Statement
	for p.tok.Kind != token.EOF {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, st)
	}
	return &ast.Module{Body: body, Footer: p.tok.Leading}, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.tok.Kind == token.Indent:
		return nil, &IndentationError{Position: p.tok.Span.Start, Msg: "unexpected indent"}
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("while"):
		return p.parseWhile()
	case p.atKeyword("for"):
		return p.parseFor()
	case p.atKeyword("def"):
		return p.parseFunctionDef(nil)
	case p.atKeyword("class"):
		return p.parseClassDef(nil)
	case p.atOp("@"):
		return p.parseDecorated()
	case p.atKeyword("elif"), p.atKeyword("else"):
		return nil, &ParseError{Found: p.tok, Msg: "`" + p.tok.Text + "` without a matching statement"}
	case p.atKeyword("with"), p.atKeyword("try"), p.atKeyword("except"), p.atKeyword("finally"), p.atKeyword("async"):
		return nil, &ParseError{Found: p.tok, Msg: "`" + p.tok.Text + "` statements are not supported"}
	default:
		body, nl, err := p.parseSmallStatementList()
		if err != nil {
			return nil, err
		}
		return &ast.SimpleStatementLine{Body: body, Newline: nl}, nil
	}
}

// parseSmallStatementList parses semicolon-separated small statements up
// to and including the terminating newline.
func (p *parser) parseSmallStatementList() ([]ast.SmallStatement, *ast.Newline, error) {
	var body []ast.SmallStatement
	for {
		st, err := p.parseSmallStatement()
		if err != nil {
			return nil, nil, err
		}
		body = append(body, st)
		if !p.atOp(";") {
			break
		}
		semi, err := p.takeOp()
		if err != nil {
			return nil, nil, err
		}
		st.SetSemicolon(semi)
		if p.tok.Kind == token.Newline {
			break
		}
	}
	nl, err := p.expectNewline()
	if err != nil {
		return nil, nil, err
	}
	return body, nl, nil
}

func (p *parser) parseSmallStatement() (ast.SmallStatement, error) {
	if p.tok.Kind == token.Keyword {
		switch p.tok.Text {
		case "pass":
			kw, err := p.takeKeyword()
			return &ast.Pass{Pass: kw}, err
		case "break":
			kw, err := p.takeKeyword()
			return &ast.Break{Break: kw}, err
		case "continue":
			kw, err := p.takeKeyword()
			return &ast.Continue{Continue: kw}, err
		case "return":
			return p.parseReturn()
		case "raise":
			return p.parseRaise()
		case "del":
			return p.parseDel()
		case "global", "nonlocal":
			return p.parseNameListStatement()
		case "assert":
			return p.parseAssert()
		case "import":
			return p.parseImport()
		case "from":
			return p.parseImportFrom()
		case "yield":
			return nil, &ParseError{Found: p.tok, Msg: "yield expressions are not supported"}
		}
	}
	return p.parseExprStatement()
}

// atLineEnd reports whether the current token ends a simple statement.
func (p *parser) atLineEnd() bool {
	return p.tok.Kind == token.Newline || p.atOp(";")
}

func (p *parser) parseReturn() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Return: kw}
	if !p.atLineEnd() {
		if ret.Value, err = p.parseTestList(); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (p *parser) parseRaise() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	r := &ast.Raise{Raise: kw}
	if !p.atLineEnd() {
		if r.Exc, err = p.parseTest(); err != nil {
			return nil, err
		}
		if p.atKeyword("from") {
			return nil, &ParseError{Found: p.tok, Msg: "`raise ... from` is not supported"}
		}
	}
	return r, nil
}

func (p *parser) parseDel() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	target, err := p.parseTestList()
	if err != nil {
		return nil, err
	}
	return &ast.Del{Del: kw, Target: target}, nil
}

func (p *parser) parseNameListStatement() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	var names []*ast.Element
	for {
		name, err := p.expectName()
		if err != nil {
			return nil, err
		}
		el := &ast.Element{Value: name}
		names = append(names, el)
		if !p.atOp(",") {
			break
		}
		if el.Comma, err = p.takeOp(); err != nil {
			return nil, err
		}
	}
	if kw.Text == "global" {
		return &ast.Global{Global: kw, Names: names}, nil
	}
	return &ast.Nonlocal{Nonlocal: kw, Names: names}, nil
}

func (p *parser) parseAssert() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	test, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	a := &ast.Assert{Assert: kw, Test: test}
	if p.atOp(",") {
		if a.Comma, err = p.takeOp(); err != nil {
			return nil, err
		}
		if a.Msg, err = p.parseTest(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (p *parser) parseImport() (ast.SmallStatement, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	names, err := p.parseImportAliases(true)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Import: kw, Names: names}, nil
}

func (p *parser) parseImportFrom() (ast.SmallStatement, error) {
	from, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.ImportFrom{From: from}
	for p.atOp(".") || p.atOp("...") {
		dot, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		st.Dots = append(st.Dots, dot)
	}
	if p.tok.Kind == token.Name {
		if st.Module, err = p.parseDottedName(); err != nil {
			return nil, err
		}
	} else if len(st.Dots) == 0 {
		return nil, &ParseError{Expected: []token.Kind{token.Name}, Found: p.tok}
	}
	if st.Import, err = p.expectKeyword("import"); err != nil {
		return nil, err
	}
	switch {
	case p.atOp("*"):
		if st.Star, err = p.takeOp(); err != nil {
			return nil, err
		}
	case p.atOp("("):
		if st.LParen, err = p.takeOp(); err != nil {
			return nil, err
		}
		if st.Names, err = p.parseImportAliases(false); err != nil {
			return nil, err
		}
		if st.RParen, err = p.expectOp(")"); err != nil {
			return nil, err
		}
	default:
		if st.Names, err = p.parseImportAliases(false); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// parseImportAliases parses a comma-separated alias list. Dotted names are
// only legal in plain `import` statements; `from ... import` names are
// bare.
func (p *parser) parseImportAliases(dotted bool) ([]*ast.ImportAlias, error) {
	var out []*ast.ImportAlias
	for {
		alias := &ast.ImportAlias{}
		var err error
		if dotted {
			alias.Name, err = p.parseDottedName()
		} else {
			alias.Name, err = p.expectName()
		}
		if err != nil {
			return nil, err
		}
		if p.atKeyword("as") {
			if alias.As, err = p.takeKeyword(); err != nil {
				return nil, err
			}
			if alias.AsName, err = p.expectName(); err != nil {
				return nil, err
			}
		}
		out = append(out, alias)
		if !p.atOp(",") {
			return out, nil
		}
		if alias.Comma, err = p.takeOp(); err != nil {
			return nil, err
		}
		// a trailing comma inside parentheses ends the list
		if p.atOp(")") {
			return out, nil
		}
	}
}

// parseDottedName parses `a` or `a.b.c` as a left-nested Attribute chain.
func (p *parser) parseDottedName() (ast.Expr, error) {
	var expr ast.Expr
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	expr = name
	for p.atOp(".") {
		dot, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		attr, err := p.expectName()
		if err != nil {
			return nil, err
		}
		expr = &ast.Attribute{Value: expr, Dot: dot, Attr: attr}
	}
	return expr, nil
}

// augmentedOps are the operators of augmented assignment statements.
var augmentedOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true, "//=": true, "%=": true,
	"**=": true, ">>=": true, "<<=": true, "&=": true, "|=": true, "^=": true,
	"@=": true,
}

// parseExprStatement parses a statement that begins with an expression:
// a bare expression, an assignment, an annotated assignment or an
// augmented assignment, told apart by the token after the first
// expression.
func (p *parser) parseExprStatement() (ast.SmallStatement, error) {
	first, err := p.parseTestList()
	if err != nil {
		return nil, err
	}
	switch {
	case p.atOp("="):
		var targets []*ast.AssignTarget
		value := first
		for p.atOp("=") {
			eq, err := p.takeOp()
			if err != nil {
				return nil, err
			}
			targets = append(targets, &ast.AssignTarget{Target: value, Equal: eq})
			if value, err = p.parseTestList(); err != nil {
				return nil, err
			}
		}
		return &ast.Assign{Targets: targets, Value: value}, nil

	case p.atOp(":"):
		colon, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		ann, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		st := &ast.AnnAssign{Target: first, Colon: colon, Annotation: ann}
		if p.atOp("=") {
			if st.Equal, err = p.takeOp(); err != nil {
				return nil, err
			}
			if st.Value, err = p.parseTestList(); err != nil {
				return nil, err
			}
		}
		return st, nil

	case p.tok.Kind == token.Op && augmentedOps[p.tok.Text]:
		if p.tok.Text == "@=" && p.cfg.version < Py35 {
			return nil, &ParseError{Found: p.tok, Msg: "the `@=` operator requires Python 3.5"}
		}
		op, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		value, err := p.parseTestList()
		if err != nil {
			return nil, err
		}
		return &ast.AugAssign{Target: first, Operator: op, Value: value}, nil

	default:
		return &ast.ExprStatement{Value: first}, nil
	}
}

func (p *parser) parseIf() (*ast.If, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.If{Keyword: kw}
	if st.Test, err = p.parseNamedTest(); err != nil {
		return nil, err
	}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	switch {
	case p.atKeyword("elif"):
		if st.Orelse, err = p.parseIf(); err != nil {
			return nil, err
		}
	case p.atKeyword("else"):
		if st.Orelse, err = p.parseElse(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (p *parser) parseElse() (*ast.Else, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.Else{Else: kw}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	return st, nil
}

func (p *parser) parseWhile() (*ast.While, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.While{While: kw}
	if st.Test, err = p.parseNamedTest(); err != nil {
		return nil, err
	}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	if p.atKeyword("else") {
		if st.Orelse, err = p.parseElse(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (p *parser) parseFor() (*ast.For, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.For{For: kw}
	if st.Target, err = p.parseTestList(); err != nil {
		return nil, err
	}
	if st.In, err = p.expectKeyword("in"); err != nil {
		return nil, err
	}
	if st.Iter, err = p.parseTestList(); err != nil {
		return nil, err
	}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	if p.atKeyword("else") {
		if st.Orelse, err = p.parseElse(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (p *parser) parseDecorated() (ast.Statement, error) {
	var decorators []*ast.Decorator
	for p.atOp("@") {
		at, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		expr, err := p.parseNamedTest()
		if err != nil {
			return nil, err
		}
		nl, err := p.expectNewline()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, &ast.Decorator{At: at, Expr: expr, Newline: nl})
	}
	switch {
	case p.atKeyword("def"):
		return p.parseFunctionDef(decorators)
	case p.atKeyword("class"):
		return p.parseClassDef(decorators)
	}
	return nil, &ParseError{Found: p.tok, Msg: "expected `def` or `class` after decorators"}
}

func (p *parser) parseFunctionDef(decorators []*ast.Decorator) (*ast.FunctionDef, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.FunctionDef{Decorators: decorators, Def: kw}
	if st.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if st.LParen, err = p.expectOp("("); err != nil {
		return nil, err
	}
	if st.Params, err = p.parseParameters(); err != nil {
		return nil, err
	}
	if st.RParen, err = p.expectOp(")"); err != nil {
		return nil, err
	}
	if p.atOp("->") {
		if st.Arrow, err = p.takeOp(); err != nil {
			return nil, err
		}
		if st.Returns, err = p.parseTest(); err != nil {
			return nil, err
		}
	}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	return st, nil
}

func (p *parser) parseParameters() (*ast.Parameters, error) {
	params := &ast.Parameters{}
	for !p.atOp(")") {
		param := &ast.Param{}
		var err error
		switch {
		case p.atOp("*"), p.atOp("**"):
			if param.Star, err = p.takeOp(); err != nil {
				return nil, err
			}
			if p.tok.Kind == token.Name {
				if param.Name, err = p.takeName(); err != nil {
					return nil, err
				}
			} else if param.Star.Text == "**" {
				return nil, &ParseError{Expected: []token.Kind{token.Name}, Found: p.tok}
			}
		case p.atOp("/"):
			if p.cfg.version < Py38 {
				return nil, &ParseError{Found: p.tok, Msg: "positional-only parameter markers require Python 3.8"}
			}
			if param.Star, err = p.takeOp(); err != nil {
				return nil, err
			}
		default:
			if param.Name, err = p.expectName(); err != nil {
				return nil, err
			}
		}
		if param.Name != nil && p.atOp(":") {
			if param.Colon, err = p.takeOp(); err != nil {
				return nil, err
			}
			if param.Annotation, err = p.parseTest(); err != nil {
				return nil, err
			}
		}
		if param.Name != nil && p.atOp("=") {
			if param.Equal, err = p.takeOp(); err != nil {
				return nil, err
			}
			if param.Default, err = p.parseTest(); err != nil {
				return nil, err
			}
		}
		if p.atOp(",") {
			if param.Comma, err = p.takeOp(); err != nil {
				return nil, err
			}
		} else if !p.atOp(")") {
			return nil, &ParseError{Found: p.tok, Msg: "expected `,` or `)` in parameter list"}
		}
		params.Params = append(params.Params, param)
	}
	return params, nil
}

func (p *parser) parseClassDef(decorators []*ast.Decorator) (*ast.ClassDef, error) {
	kw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	st := &ast.ClassDef{Decorators: decorators, Class: kw}
	if st.Name, err = p.expectName(); err != nil {
		return nil, err
	}
	if p.atOp("(") {
		if st.LParen, err = p.takeOp(); err != nil {
			return nil, err
		}
		if st.Args, err = p.parseArgs(); err != nil {
			return nil, err
		}
		if st.RParen, err = p.expectOp(")"); err != nil {
			return nil, err
		}
	}
	if st.Colon, err = p.expectOp(":"); err != nil {
		return nil, err
	}
	if st.Body, err = p.parseSuite(); err != nil {
		return nil, err
	}
	return st, nil
}

// parseSuite parses the body after a compound statement's colon: either an
// indented block on the following lines or small statements on the same
// line.
func (p *parser) parseSuite() (ast.Suite, error) {
	if p.tok.Kind != token.Newline {
		body, nl, err := p.parseSmallStatementList()
		if err != nil {
			return nil, err
		}
		return &ast.SimpleStatementSuite{Body: body, Newline: nl}, nil
	}
	nl, err := p.expectNewline()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != token.Indent {
		return nil, &IndentationError{Position: p.tok.Span.Start, Msg: "expected an indented block"}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for p.tok.Kind != token.Dedent && p.tok.Kind != token.EOF {
		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, st)
	}
	if p.tok.Kind == token.Dedent {
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return &ast.IndentedBlock{Newline: nl, Body: body}, nil
}
