package ast

// Parenthesized is an expression wrapped in explicit parentheses. The
// parentheses are real tokens, so `(x)` and `x` are different trees that
// print differently. An empty pair of parentheses is a Parenthesized whose
// Value is a Tuple with no elements.
type Parenthesized struct {
	LParen *Op
	Value  Expr
	RParen *Op
}

func (n *Parenthesized) Kind() Kind { return KindParenthesized }
func (n *Parenthesized) exprNode()  {}

func (n *Parenthesized) Children() []Node {
	return []Node{n.LParen, n.Value, n.RParen}
}

func (n *Parenthesized) clone() Node { c := *n; return &c }

func (n *Parenthesized) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.LParen = mapChild(n.LParen, fn, "LParen", &changed)
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	c.RParen = mapChild(n.RParen, fn, "RParen", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Parenthesized) validate() error {
	if n.LParen == nil || n.Value == nil || n.RParen == nil {
		return invalidf(KindParenthesized, "LParen, Value and RParen are required")
	}
	return nil
}

// BinaryOperation is `Left <op> Right` for an arithmetic, bitwise or shift
// operator.
type BinaryOperation struct {
	Left     Expr
	Operator *Op
	Right    Expr
}

func (n *BinaryOperation) Kind() Kind { return KindBinaryOperation }
func (n *BinaryOperation) exprNode()  {}

func (n *BinaryOperation) Children() []Node {
	return []Node{n.Left, n.Operator, n.Right}
}

func (n *BinaryOperation) clone() Node { c := *n; return &c }

func (n *BinaryOperation) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Left = mapChild(n.Left, fn, "Left", &changed)
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	c.Right = mapChild(n.Right, fn, "Right", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *BinaryOperation) validate() error {
	if n.Left == nil || n.Operator == nil || n.Right == nil {
		return invalidf(KindBinaryOperation, "Left, Operator and Right are required")
	}
	return nil
}

// BooleanOperation is `Left and Right` or `Left or Right`.
type BooleanOperation struct {
	Left     Expr
	Operator *Keyword
	Right    Expr
}

func (n *BooleanOperation) Kind() Kind { return KindBooleanOperation }
func (n *BooleanOperation) exprNode()  {}

func (n *BooleanOperation) Children() []Node {
	return []Node{n.Left, n.Operator, n.Right}
}

func (n *BooleanOperation) clone() Node { c := *n; return &c }

func (n *BooleanOperation) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Left = mapChild(n.Left, fn, "Left", &changed)
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	c.Right = mapChild(n.Right, fn, "Right", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *BooleanOperation) validate() error {
	if n.Left == nil || n.Operator == nil || n.Right == nil {
		return invalidf(KindBooleanOperation, "Left, Operator and Right are required")
	}
	if t := n.Operator.Text; t != "and" && t != "or" {
		return invalidf(KindBooleanOperation, "operator %q is not and/or", t)
	}
	return nil
}

// UnaryOperation is a prefix operation: `-x`, `+x`, `~x` or `not x`. The
// operator is an Op for the symbolic forms and a Keyword for `not`.
type UnaryOperation struct {
	Operator Terminal
	Operand  Expr
}

func (n *UnaryOperation) Kind() Kind { return KindUnaryOperation }
func (n *UnaryOperation) exprNode()  {}

func (n *UnaryOperation) Children() []Node {
	return []Node{n.Operator, n.Operand}
}

func (n *UnaryOperation) clone() Node { c := *n; return &c }

func (n *UnaryOperation) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	c.Operand = mapChild(n.Operand, fn, "Operand", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *UnaryOperation) validate() error {
	if n.Operator == nil || n.Operand == nil {
		return invalidf(KindUnaryOperation, "Operator and Operand are required")
	}
	switch n.Operator.Kind() {
	case KindOp, KindKeyword:
	default:
		return invalidf(KindUnaryOperation, "operator must be an Op or Keyword, not %v", n.Operator.Kind())
	}
	return nil
}

// Comparison is a possibly chained comparison: `a < b`, `a < b <= c`,
// `x is not None`. Left is the first operand; each ComparisonTarget holds
// one operator and the operand to its right.
type Comparison struct {
	Left        Expr
	Comparisons []*ComparisonTarget
}

func (n *Comparison) Kind() Kind { return KindComparison }
func (n *Comparison) exprNode()  {}

func (n *Comparison) Children() []Node {
	out := make([]Node, 0, 1+len(n.Comparisons))
	out = append(out, n.Left)
	for _, c := range n.Comparisons {
		out = append(out, c)
	}
	return out
}

func (n *Comparison) clone() Node { c := *n; return &c }

func (n *Comparison) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Left = mapChild(n.Left, fn, "Left", &changed)
	c.Comparisons = mapSlice(n.Comparisons, fn, "Comparisons", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Comparison) validate() error {
	if n.Left == nil || len(n.Comparisons) == 0 {
		return invalidf(KindComparison, "Left and at least one comparison are required")
	}
	return nil
}

// ComparisonTarget is one link of a comparison chain. Two-token operators
// (`is not`, `not in`) store the second token in Operator2.
type ComparisonTarget struct {
	Operator   Terminal
	Operator2  Terminal
	Comparator Expr
}

func (n *ComparisonTarget) Kind() Kind { return KindComparisonTarget }

func (n *ComparisonTarget) Children() []Node {
	out := make([]Node, 0, 3)
	out = append(out, n.Operator)
	if n.Operator2 != nil {
		out = append(out, n.Operator2)
	}
	return append(out, n.Comparator)
}

func (n *ComparisonTarget) clone() Node { c := *n; return &c }

func (n *ComparisonTarget) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	if n.Operator2 != nil {
		c.Operator2 = mapChild(n.Operator2, fn, "Operator2", &changed)
	}
	c.Comparator = mapChild(n.Comparator, fn, "Comparator", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *ComparisonTarget) validate() error {
	if n.Operator == nil || n.Comparator == nil {
		return invalidf(KindComparisonTarget, "Operator and Comparator are required")
	}
	return nil
}

// NamedExpr is an assignment expression, `target := value`.
type NamedExpr struct {
	Target   *Name
	Operator *Op
	Value    Expr
}

func (n *NamedExpr) Kind() Kind { return KindNamedExpr }
func (n *NamedExpr) exprNode()  {}

func (n *NamedExpr) Children() []Node {
	return []Node{n.Target, n.Operator, n.Value}
}

func (n *NamedExpr) clone() Node { c := *n; return &c }

func (n *NamedExpr) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *NamedExpr) validate() error {
	if n.Target == nil || n.Operator == nil || n.Value == nil {
		return invalidf(KindNamedExpr, "Target, Operator and Value are required")
	}
	return nil
}

// IfExp is a conditional expression, `body if test else orelse`.
type IfExp struct {
	Body   Expr
	If     *Keyword
	Test   Expr
	Else   *Keyword
	Orelse Expr
}

func (n *IfExp) Kind() Kind { return KindIfExp }
func (n *IfExp) exprNode()  {}

func (n *IfExp) Children() []Node {
	return []Node{n.Body, n.If, n.Test, n.Else, n.Orelse}
}

func (n *IfExp) clone() Node { c := *n; return &c }

func (n *IfExp) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	c.If = mapChild(n.If, fn, "If", &changed)
	c.Test = mapChild(n.Test, fn, "Test", &changed)
	c.Else = mapChild(n.Else, fn, "Else", &changed)
	c.Orelse = mapChild(n.Orelse, fn, "Orelse", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *IfExp) validate() error {
	if n.Body == nil || n.If == nil || n.Test == nil || n.Else == nil || n.Orelse == nil {
		return invalidf(KindIfExp, "all five fields are required")
	}
	return nil
}

// Call is a function call, `func(args)`.
type Call struct {
	Func   Expr
	LParen *Op
	Args   []*Arg
	RParen *Op
}

func (n *Call) Kind() Kind { return KindCall }
func (n *Call) exprNode()  {}

func (n *Call) Children() []Node {
	out := make([]Node, 0, 3+len(n.Args))
	out = append(out, n.Func, n.LParen)
	for _, a := range n.Args {
		out = append(out, a)
	}
	return append(out, n.RParen)
}

func (n *Call) clone() Node { c := *n; return &c }

func (n *Call) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Func = mapChild(n.Func, fn, "Func", &changed)
	c.LParen = mapChild(n.LParen, fn, "LParen", &changed)
	c.Args = mapSlice(n.Args, fn, "Args", &changed)
	c.RParen = mapChild(n.RParen, fn, "RParen", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Call) validate() error {
	if n.Func == nil || n.LParen == nil || n.RParen == nil {
		return invalidf(KindCall, "Func, LParen and RParen are required")
	}
	return nil
}

// Arg is a single call argument: positional, keyword (`name=value`), or
// starred (`*args`, `**kwargs`).
type Arg struct {
	Star    *Op   // "*" or "**", or nil
	Keyword *Name // keyword argument name, or nil
	Equal   *Op   // "=" after Keyword, or nil
	Value   Expr
	Comma   *Op // trailing comma, or nil
}

func (n *Arg) Kind() Kind { return KindArg }

func (n *Arg) Children() []Node {
	out := make([]Node, 0, 5)
	if n.Star != nil {
		out = append(out, n.Star)
	}
	if n.Keyword != nil {
		out = append(out, n.Keyword)
	}
	if n.Equal != nil {
		out = append(out, n.Equal)
	}
	out = append(out, n.Value)
	if n.Comma != nil {
		out = append(out, n.Comma)
	}
	return out
}

func (n *Arg) clone() Node { c := *n; return &c }

func (n *Arg) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	if n.Star != nil {
		c.Star = mapChild(n.Star, fn, "Star", &changed)
	}
	if n.Keyword != nil {
		c.Keyword = mapChild(n.Keyword, fn, "Keyword", &changed)
	}
	if n.Equal != nil {
		c.Equal = mapChild(n.Equal, fn, "Equal", &changed)
	}
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Arg) validate() error {
	if n.Value == nil {
		return invalidf(KindArg, "Value is required")
	}
	if n.Keyword != nil && n.Equal == nil {
		return invalidf(KindArg, "keyword argument requires Equal")
	}
	if n.Keyword != nil && n.Star != nil {
		return invalidf(KindArg, "argument cannot be both starred and keyword")
	}
	return nil
}

// Attribute is `value.attr`.
type Attribute struct {
	Value Expr
	Dot   *Op
	Attr  *Name
}

func (n *Attribute) Kind() Kind { return KindAttribute }
func (n *Attribute) exprNode()  {}

func (n *Attribute) Children() []Node {
	return []Node{n.Value, n.Dot, n.Attr}
}

func (n *Attribute) clone() Node { c := *n; return &c }

func (n *Attribute) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	c.Dot = mapChild(n.Dot, fn, "Dot", &changed)
	c.Attr = mapChild(n.Attr, fn, "Attr", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Attribute) validate() error {
	if n.Value == nil || n.Dot == nil || n.Attr == nil {
		return invalidf(KindAttribute, "Value, Dot and Attr are required")
	}
	return nil
}

// Subscript is `value[index]`. Index may be a Slice, a Tuple of
// slices/expressions, or any expression.
type Subscript struct {
	Value    Expr
	LBracket *Op
	Index    Expr
	RBracket *Op
}

func (n *Subscript) Kind() Kind { return KindSubscript }
func (n *Subscript) exprNode()  {}

func (n *Subscript) Children() []Node {
	return []Node{n.Value, n.LBracket, n.Index, n.RBracket}
}

func (n *Subscript) clone() Node { c := *n; return &c }

func (n *Subscript) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	c.LBracket = mapChild(n.LBracket, fn, "LBracket", &changed)
	c.Index = mapChild(n.Index, fn, "Index", &changed)
	c.RBracket = mapChild(n.RBracket, fn, "RBracket", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Subscript) validate() error {
	if n.Value == nil || n.LBracket == nil || n.Index == nil || n.RBracket == nil {
		return invalidf(KindSubscript, "Value, LBracket, Index and RBracket are required")
	}
	return nil
}

// Slice is `lower:upper` or `lower:upper:step` inside a subscript. Any of
// the three operands may be absent.
type Slice struct {
	Lower  Expr // or nil
	Colon  *Op
	Upper  Expr // or nil
	Colon2 *Op  // second colon, or nil
	Step   Expr // or nil
}

func (n *Slice) Kind() Kind { return KindSlice }
func (n *Slice) exprNode()  {}

func (n *Slice) Children() []Node {
	out := make([]Node, 0, 5)
	if n.Lower != nil {
		out = append(out, n.Lower)
	}
	out = append(out, n.Colon)
	if n.Upper != nil {
		out = append(out, n.Upper)
	}
	if n.Colon2 != nil {
		out = append(out, n.Colon2)
	}
	if n.Step != nil {
		out = append(out, n.Step)
	}
	return out
}

func (n *Slice) clone() Node { c := *n; return &c }

func (n *Slice) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	if n.Lower != nil {
		c.Lower = mapChild(n.Lower, fn, "Lower", &changed)
	}
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	if n.Upper != nil {
		c.Upper = mapChild(n.Upper, fn, "Upper", &changed)
	}
	if n.Colon2 != nil {
		c.Colon2 = mapChild(n.Colon2, fn, "Colon2", &changed)
	}
	if n.Step != nil {
		c.Step = mapChild(n.Step, fn, "Step", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Slice) validate() error {
	if n.Colon == nil {
		return invalidf(KindSlice, "Colon is required")
	}
	if n.Step != nil && n.Colon2 == nil {
		return invalidf(KindSlice, "Step requires Colon2")
	}
	return nil
}

// Element is one item of a tuple, list or set display, with its trailing
// comma when present.
type Element struct {
	Value Expr
	Comma *Op // or nil
}

func (n *Element) Kind() Kind { return KindElement }

func (n *Element) Children() []Node {
	if n.Comma == nil {
		return []Node{n.Value}
	}
	return []Node{n.Value, n.Comma}
}

func (n *Element) clone() Node { c := *n; return &c }

func (n *Element) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Element) validate() error {
	if n.Value == nil {
		return invalidf(KindElement, "Value is required")
	}
	return nil
}

// DictElement is one `key: value` pair of a dict display.
type DictElement struct {
	Key   Expr
	Colon *Op
	Value Expr
	Comma *Op // or nil
}

func (n *DictElement) Kind() Kind { return KindDictElement }

func (n *DictElement) Children() []Node {
	out := []Node{n.Key, n.Colon, n.Value}
	if n.Comma != nil {
		out = append(out, n.Comma)
	}
	return out
}

func (n *DictElement) clone() Node { c := *n; return &c }

func (n *DictElement) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Key = mapChild(n.Key, fn, "Key", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *DictElement) validate() error {
	if n.Key == nil || n.Colon == nil || n.Value == nil {
		return invalidf(KindDictElement, "Key, Colon and Value are required")
	}
	return nil
}

// Tuple is a bare (unparenthesized) tuple: `a, b`. A parenthesized tuple
// is a Parenthesized wrapping a Tuple; the empty tuple only occurs in that
// wrapped form.
type Tuple struct {
	Elements []*Element
}

func (n *Tuple) Kind() Kind { return KindTuple }
func (n *Tuple) exprNode()  {}

func (n *Tuple) Children() []Node {
	out := make([]Node, len(n.Elements))
	for i, e := range n.Elements {
		out[i] = e
	}
	return out
}

func (n *Tuple) clone() Node { c := *n; return &c }

func (n *Tuple) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Elements = mapSlice(n.Elements, fn, "Elements", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Tuple) validate() error { return nil }

// List is `[a, b, c]`.
type List struct {
	LBracket *Op
	Elements []*Element
	RBracket *Op
}

func (n *List) Kind() Kind { return KindList }
func (n *List) exprNode()  {}

func (n *List) Children() []Node {
	out := make([]Node, 0, 2+len(n.Elements))
	out = append(out, n.LBracket)
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return append(out, n.RBracket)
}

func (n *List) clone() Node { c := *n; return &c }

func (n *List) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.LBracket = mapChild(n.LBracket, fn, "LBracket", &changed)
	c.Elements = mapSlice(n.Elements, fn, "Elements", &changed)
	c.RBracket = mapChild(n.RBracket, fn, "RBracket", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *List) validate() error {
	if n.LBracket == nil || n.RBracket == nil {
		return invalidf(KindList, "LBracket and RBracket are required")
	}
	return nil
}

// Set is `{a, b, c}`. It always has at least one element; `{}` is a Dict.
type Set struct {
	LBrace   *Op
	Elements []*Element
	RBrace   *Op
}

func (n *Set) Kind() Kind { return KindSet }
func (n *Set) exprNode()  {}

func (n *Set) Children() []Node {
	out := make([]Node, 0, 2+len(n.Elements))
	out = append(out, n.LBrace)
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return append(out, n.RBrace)
}

func (n *Set) clone() Node { c := *n; return &c }

func (n *Set) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.LBrace = mapChild(n.LBrace, fn, "LBrace", &changed)
	c.Elements = mapSlice(n.Elements, fn, "Elements", &changed)
	c.RBrace = mapChild(n.RBrace, fn, "RBrace", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Set) validate() error {
	if n.LBrace == nil || n.RBrace == nil {
		return invalidf(KindSet, "LBrace and RBrace are required")
	}
	if len(n.Elements) == 0 {
		return invalidf(KindSet, "a set display needs at least one element")
	}
	return nil
}

// Dict is `{k: v, ...}`, including the empty `{}`.
type Dict struct {
	LBrace   *Op
	Elements []*DictElement
	RBrace   *Op
}

func (n *Dict) Kind() Kind { return KindDict }
func (n *Dict) exprNode()  {}

func (n *Dict) Children() []Node {
	out := make([]Node, 0, 2+len(n.Elements))
	out = append(out, n.LBrace)
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return append(out, n.RBrace)
}

func (n *Dict) clone() Node { c := *n; return &c }

func (n *Dict) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.LBrace = mapChild(n.LBrace, fn, "LBrace", &changed)
	c.Elements = mapSlice(n.Elements, fn, "Elements", &changed)
	c.RBrace = mapChild(n.RBrace, fn, "RBrace", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Dict) validate() error {
	if n.LBrace == nil || n.RBrace == nil {
		return invalidf(KindDict, "LBrace and RBrace are required")
	}
	return nil
}

// ConcatenatedString is two or more adjacent string literals that the
// language joins implicitly: `"a" "b"`. Right is either another
// ConcatenatedString or the final String.
type ConcatenatedString struct {
	Left  *String
	Right Expr
}

func (n *ConcatenatedString) Kind() Kind { return KindConcatenatedString }
func (n *ConcatenatedString) exprNode()  {}

func (n *ConcatenatedString) Children() []Node {
	return []Node{n.Left, n.Right}
}

func (n *ConcatenatedString) clone() Node { c := *n; return &c }

func (n *ConcatenatedString) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Left = mapChild(n.Left, fn, "Left", &changed)
	c.Right = mapChild(n.Right, fn, "Right", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *ConcatenatedString) validate() error {
	if n.Left == nil || n.Right == nil {
		return invalidf(KindConcatenatedString, "Left and Right are required")
	}
	switch n.Right.(type) {
	case *String, *ConcatenatedString:
	default:
		return invalidf(KindConcatenatedString, "Right must be a String or ConcatenatedString, not %v", n.Right.Kind())
	}
	return nil
}
