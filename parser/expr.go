package parser

import (
	"github.com/pycst-go/pycst/ast"
	"github.com/pycst-go/pycst/token"
)

func integerOf(t token.Token) *ast.Integer {
	return &ast.Integer{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func floatOf(t token.Token) *ast.Float {
	return &ast.Float{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func stringOf(t token.Token) *ast.String {
	return &ast.String{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

func ellipsisOf(t token.Token) *ast.Ellipsis {
	return &ast.Ellipsis{Lexeme: ast.Lexeme{Leading: t.Leading, Text: t.Text, Span: t.Span}}
}

// canStartExpr reports whether the current token can begin an expression,
// which decides where comma-separated lists end.
func (p *parser) canStartExpr() bool {
	switch p.tok.Kind {
	case token.Name, token.Int, token.Float, token.String:
		return true
	case token.Keyword:
		return p.tok.Text == "not" || p.tok.Text == "lambda" || p.tok.Text == "await"
	case token.Op:
		switch p.tok.Text {
		case "(", "[", "{", "+", "-", "~", "...":
			return true
		}
	}
	return false
}

// parseTestList parses `test (',' test)*` with an optional trailing comma.
// A single expression without commas comes back as itself; anything with a
// comma becomes a bare Tuple.
func (p *parser) parseTestList() (ast.Expr, error) {
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if !p.atOp(",") {
		return first, nil
	}
	elements := []*ast.Element{{Value: first}}
	for p.atOp(",") {
		comma, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		elements[len(elements)-1].Comma = comma
		if !p.canStartExpr() {
			break
		}
		next, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		elements = append(elements, &ast.Element{Value: next})
	}
	return &ast.Tuple{Elements: elements}, nil
}

// parseNamedTest parses a test with an optional `:=` assignment
// expression.
func (p *parser) parseNamedTest() (ast.Expr, error) {
	e, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if !p.atOp(":=") {
		return e, nil
	}
	if p.cfg.version < Py38 {
		return nil, &ParseError{Found: p.tok, Msg: "assignment expressions require Python 3.8"}
	}
	target, ok := e.(*ast.Name)
	if !ok {
		return nil, &ParseError{Found: p.tok, Msg: "assignment expression target must be a name"}
	}
	op, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	value, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	return &ast.NamedExpr{Target: target, Operator: op, Value: value}, nil
}

func (p *parser) parseTest() (ast.Expr, error) {
	if p.atKeyword("lambda") {
		return nil, &ParseError{Found: p.tok, Msg: "lambda expressions are not supported"}
	}
	e, err := p.parseOrTest()
	if err != nil {
		return nil, err
	}
	if !p.atKeyword("if") {
		return e, nil
	}
	ifKw, err := p.takeKeyword()
	if err != nil {
		return nil, err
	}
	test, err := p.parseOrTest()
	if err != nil {
		return nil, err
	}
	elseKw, err := p.expectKeyword("else")
	if err != nil {
		return nil, err
	}
	orelse, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	return &ast.IfExp{Body: e, If: ifKw, Test: test, Else: elseKw, Orelse: orelse}, nil
}

func (p *parser) parseOrTest() (ast.Expr, error) {
	left, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("or") {
		op, err := p.takeKeyword()
		if err != nil {
			return nil, err
		}
		right, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		left = &ast.BooleanOperation{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseAndTest() (ast.Expr, error) {
	left, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("and") {
		op, err := p.takeKeyword()
		if err != nil {
			return nil, err
		}
		right, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		left = &ast.BooleanOperation{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseNotTest() (ast.Expr, error) {
	if p.atKeyword("not") {
		op, err := p.takeKeyword()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{Operator: op, Operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	var targets []*ast.ComparisonTarget
	for {
		ct, err := p.parseCompOp()
		if err != nil {
			return nil, err
		}
		if ct == nil {
			break
		}
		if ct.Comparator, err = p.parseBitOr(); err != nil {
			return nil, err
		}
		targets = append(targets, ct)
	}
	if len(targets) == 0 {
		return left, nil
	}
	return &ast.Comparison{Left: left, Comparisons: targets}, nil
}

// parseCompOp consumes a comparison operator if one is present, returning
// a target with the operator tokens filled in and Comparator still unset.
func (p *parser) parseCompOp() (*ast.ComparisonTarget, error) {
	if p.tok.Kind == token.Op {
		switch p.tok.Text {
		case "<", ">", "<=", ">=", "==", "!=":
			op, err := p.takeOp()
			return &ast.ComparisonTarget{Operator: op}, err
		}
		return nil, nil
	}
	switch {
	case p.atKeyword("in"):
		kw, err := p.takeKeyword()
		return &ast.ComparisonTarget{Operator: kw}, err
	case p.atKeyword("not"):
		kw, err := p.takeKeyword()
		if err != nil {
			return nil, err
		}
		in, err := p.expectKeyword("in")
		if err != nil {
			return nil, err
		}
		return &ast.ComparisonTarget{Operator: kw, Operator2: in}, nil
	case p.atKeyword("is"):
		kw, err := p.takeKeyword()
		if err != nil {
			return nil, err
		}
		ct := &ast.ComparisonTarget{Operator: kw}
		if p.atKeyword("not") {
			if ct.Operator2, err = p.takeKeyword(); err != nil {
				return nil, err
			}
		}
		return ct, nil
	}
	return nil, nil
}

// parseBinaryLevel builds one left-associative precedence level of
// BinaryOperation over the given operator texts.
func (p *parser) parseBinaryLevel(next func() (ast.Expr, error), ops ...string) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == token.Op && contains(ops, p.tok.Text) {
		if p.tok.Text == "@" && p.cfg.version < Py35 {
			return nil, &ParseError{Found: p.tok, Msg: "the matrix multiplication operator requires Python 3.5"}
		}
		op, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOperation{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (p *parser) parseBitOr() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseBitXor, "|")
}

func (p *parser) parseBitXor() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseBitAnd, "^")
}

func (p *parser) parseBitAnd() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseShift, "&")
}

func (p *parser) parseShift() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseArith, "<<", ">>")
}

func (p *parser) parseArith() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseTerm, "+", "-")
}

func (p *parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, "*", "/", "//", "%", "@")
}

func (p *parser) parseFactor() (ast.Expr, error) {
	if p.atOp("+") || p.atOp("-") || p.atOp("~") {
		op, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{Operator: op, Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePower parses `atom_expr ['**' factor]`. Exponentiation binds
// tighter on the right, so `2**3**4` nests rightward.
func (p *parser) parsePower() (ast.Expr, error) {
	base, err := p.parseAtomExpr()
	if err != nil {
		return nil, err
	}
	if !p.atOp("**") {
		return base, nil
	}
	op, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOperation{Left: base, Operator: op, Right: right}, nil
}

// parseAtomExpr parses an atom and any attribute, call or subscript
// trailers hanging off it.
func (p *parser) parseAtomExpr() (ast.Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atOp("."):
			dot, err := p.takeOp()
			if err != nil {
				return nil, err
			}
			attr, err := p.expectName()
			if err != nil {
				return nil, err
			}
			e = &ast.Attribute{Value: e, Dot: dot, Attr: attr}
		case p.atOp("("):
			lp, err := p.takeOp()
			if err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			rp, err := p.expectOp(")")
			if err != nil {
				return nil, err
			}
			e = &ast.Call{Func: e, LParen: lp, Args: args, RParen: rp}
		case p.atOp("["):
			lb, err := p.takeOp()
			if err != nil {
				return nil, err
			}
			index, err := p.parseSubscriptIndex()
			if err != nil {
				return nil, err
			}
			rb, err := p.expectOp("]")
			if err != nil {
				return nil, err
			}
			e = &ast.Subscript{Value: e, LBracket: lb, Index: index, RBracket: rb}
		default:
			return e, nil
		}
	}
}

// parseArgs parses a call or class-base argument list up to the closing
// parenthesis, which the caller consumes.
func (p *parser) parseArgs() ([]*ast.Arg, error) {
	var args []*ast.Arg
	for !p.atOp(")") {
		arg := &ast.Arg{}
		var err error
		if p.atOp("*") || p.atOp("**") {
			if arg.Star, err = p.takeOp(); err != nil {
				return nil, err
			}
			if arg.Value, err = p.parseTest(); err != nil {
				return nil, err
			}
		} else {
			v, err := p.parseNamedTest()
			if err != nil {
				return nil, err
			}
			if name, ok := v.(*ast.Name); ok && p.atOp("=") {
				arg.Keyword = name
				if arg.Equal, err = p.takeOp(); err != nil {
					return nil, err
				}
				if arg.Value, err = p.parseTest(); err != nil {
					return nil, err
				}
			} else {
				arg.Value = v
			}
		}
		if p.atKeyword("for") {
			return nil, &ParseError{Found: p.tok, Msg: "comprehensions are not supported"}
		}
		if p.atOp(",") {
			if arg.Comma, err = p.takeOp(); err != nil {
				return nil, err
			}
		} else if !p.atOp(")") {
			return nil, &ParseError{Found: p.tok, Msg: "expected `,` or `)` in argument list"}
		}
		args = append(args, arg)
	}
	return args, nil
}

// parseSubscriptIndex parses the inside of `value[...]`: a single index or
// slice, or a comma-separated tuple of them.
func (p *parser) parseSubscriptIndex() (ast.Expr, error) {
	first, err := p.parseSliceItem()
	if err != nil {
		return nil, err
	}
	if !p.atOp(",") {
		return first, nil
	}
	elements := []*ast.Element{{Value: first}}
	for p.atOp(",") {
		comma, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		elements[len(elements)-1].Comma = comma
		if p.atOp("]") {
			break
		}
		next, err := p.parseSliceItem()
		if err != nil {
			return nil, err
		}
		elements = append(elements, &ast.Element{Value: next})
	}
	return &ast.Tuple{Elements: elements}, nil
}

func (p *parser) parseSliceItem() (ast.Expr, error) {
	var lower ast.Expr
	var err error
	if !p.atOp(":") {
		if lower, err = p.parseTest(); err != nil {
			return nil, err
		}
		if !p.atOp(":") {
			return lower, nil
		}
	}
	s := &ast.Slice{Lower: lower}
	if s.Colon, err = p.takeOp(); err != nil {
		return nil, err
	}
	if p.canStartExpr() {
		if s.Upper, err = p.parseTest(); err != nil {
			return nil, err
		}
	}
	if p.atOp(":") {
		if s.Colon2, err = p.takeOp(); err != nil {
			return nil, err
		}
		if p.canStartExpr() {
			if s.Step, err = p.parseTest(); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch p.tok.Kind {
	case token.Name:
		return p.takeName()
	case token.Int:
		n := integerOf(p.tok)
		return n, p.next()
	case token.Float:
		n := floatOf(p.tok)
		return n, p.next()
	case token.String:
		return p.parseStringGroup()
	case token.Keyword:
		switch p.tok.Text {
		case "lambda":
			return nil, &ParseError{Found: p.tok, Msg: "lambda expressions are not supported"}
		case "yield":
			return nil, &ParseError{Found: p.tok, Msg: "yield expressions are not supported"}
		case "await":
			return nil, &ParseError{Found: p.tok, Msg: "await expressions are not supported"}
		}
	case token.Op:
		switch p.tok.Text {
		case "(":
			return p.parseParenAtom()
		case "[":
			return p.parseListAtom()
		case "{":
			return p.parseBraceAtom()
		case "...":
			n := ellipsisOf(p.tok)
			return n, p.next()
		}
	}
	return nil, &ParseError{Found: p.tok, Msg: "expected an expression"}
}

// parseStringGroup parses one string literal, folding any directly
// adjacent literals into a ConcatenatedString.
func (p *parser) parseStringGroup() (ast.Expr, error) {
	s := stringOf(p.tok)
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Kind != token.String {
		return s, nil
	}
	right, err := p.parseStringGroup()
	if err != nil {
		return nil, err
	}
	return &ast.ConcatenatedString{Left: s, Right: right}, nil
}

func (p *parser) parseParenAtom() (ast.Expr, error) {
	lp, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	if p.atOp(")") {
		rp, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		return &ast.Parenthesized{LParen: lp, Value: &ast.Tuple{}, RParen: rp}, nil
	}
	value, err := p.parseNamedTest()
	if err != nil {
		return nil, err
	}
	if p.atKeyword("for") {
		return nil, &ParseError{Found: p.tok, Msg: "comprehensions are not supported"}
	}
	if p.atOp(",") {
		elements := []*ast.Element{{Value: value}}
		for p.atOp(",") {
			comma, err := p.takeOp()
			if err != nil {
				return nil, err
			}
			elements[len(elements)-1].Comma = comma
			if p.atOp(")") {
				break
			}
			next, err := p.parseNamedTest()
			if err != nil {
				return nil, err
			}
			elements = append(elements, &ast.Element{Value: next})
		}
		value = &ast.Tuple{Elements: elements}
	}
	rp, err := p.expectOp(")")
	if err != nil {
		return nil, err
	}
	return &ast.Parenthesized{LParen: lp, Value: value, RParen: rp}, nil
}

func (p *parser) parseListAtom() (ast.Expr, error) {
	lb, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	var elements []*ast.Element
	for !p.atOp("]") {
		v, err := p.parseNamedTest()
		if err != nil {
			return nil, err
		}
		if p.atKeyword("for") {
			return nil, &ParseError{Found: p.tok, Msg: "comprehensions are not supported"}
		}
		el := &ast.Element{Value: v}
		if p.atOp(",") {
			if el.Comma, err = p.takeOp(); err != nil {
				return nil, err
			}
		} else if !p.atOp("]") {
			return nil, &ParseError{Found: p.tok, Msg: "expected `,` or `]` in list display"}
		}
		elements = append(elements, el)
	}
	rb, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	return &ast.List{LBracket: lb, Elements: elements, RBracket: rb}, nil
}

// parseBraceAtom parses a dict or set display, told apart by the colon
// after the first item. `{}` is the empty dict.
func (p *parser) parseBraceAtom() (ast.Expr, error) {
	lb, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	if p.atOp("}") {
		rb, err := p.takeOp()
		if err != nil {
			return nil, err
		}
		return &ast.Dict{LBrace: lb, RBrace: rb}, nil
	}
	if p.atOp("**") || p.atOp("*") {
		return nil, &ParseError{Found: p.tok, Msg: "unpacking in displays is not supported"}
	}
	first, err := p.parseNamedTest()
	if err != nil {
		return nil, err
	}
	if p.atOp(":") {
		return p.parseDictRest(lb, first)
	}
	return p.parseSetRest(lb, first)
}

func (p *parser) parseDictRest(lb *ast.Op, firstKey ast.Expr) (ast.Expr, error) {
	var elements []*ast.DictElement
	key := firstKey
	for {
		el := &ast.DictElement{Key: key}
		var err error
		if el.Colon, err = p.expectOp(":"); err != nil {
			return nil, err
		}
		if el.Value, err = p.parseNamedTest(); err != nil {
			return nil, err
		}
		if p.atKeyword("for") {
			return nil, &ParseError{Found: p.tok, Msg: "comprehensions are not supported"}
		}
		if p.atOp(",") {
			if el.Comma, err = p.takeOp(); err != nil {
				return nil, err
			}
		} else if !p.atOp("}") {
			return nil, &ParseError{Found: p.tok, Msg: "expected `,` or `}` in dict display"}
		}
		elements = append(elements, el)
		if p.atOp("}") {
			break
		}
		if key, err = p.parseNamedTest(); err != nil {
			return nil, err
		}
	}
	rb, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	return &ast.Dict{LBrace: lb, Elements: elements, RBrace: rb}, nil
}

func (p *parser) parseSetRest(lb *ast.Op, first ast.Expr) (ast.Expr, error) {
	if p.atKeyword("for") {
		return nil, &ParseError{Found: p.tok, Msg: "comprehensions are not supported"}
	}
	elements := []*ast.Element{{Value: first}}
	for !p.atOp("}") {
		el := elements[len(elements)-1]
		var err error
		if p.atOp(",") {
			if el.Comma, err = p.takeOp(); err != nil {
				return nil, err
			}
			if p.atOp("}") {
				break
			}
			v, err := p.parseNamedTest()
			if err != nil {
				return nil, err
			}
			elements = append(elements, &ast.Element{Value: v})
			continue
		}
		return nil, &ParseError{Found: p.tok, Msg: "expected `,` or `}` in set display"}
	}
	rb, err := p.takeOp()
	if err != nil {
		return nil, err
	}
	return &ast.Set{LBrace: lb, Elements: elements, RBrace: rb}, nil
}
