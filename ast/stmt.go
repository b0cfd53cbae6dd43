package ast

// SimpleStatementLine is one logical line of small statements, semicolons
// included, terminated by its newline.
type SimpleStatementLine struct {
	Body    []SmallStatement
	Newline *Newline
}

func (n *SimpleStatementLine) Kind() Kind { return KindSimpleStatementLine }
func (n *SimpleStatementLine) stmtNode()  {}

func (n *SimpleStatementLine) Children() []Node {
	out := make([]Node, 0, 1+len(n.Body))
	for _, s := range n.Body {
		out = append(out, s)
	}
	return append(out, n.Newline)
}

func (n *SimpleStatementLine) clone() Node { c := *n; return &c }

func (n *SimpleStatementLine) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Body = mapSlice(n.Body, fn, "Body", &changed)
	c.Newline = mapChild(n.Newline, fn, "Newline", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *SimpleStatementLine) validate() error {
	if len(n.Body) == 0 {
		return invalidf(KindSimpleStatementLine, "at least one statement is required")
	}
	if n.Newline == nil {
		return invalidf(KindSimpleStatementLine, "Newline is required")
	}
	return nil
}

// ExprStatement is an expression evaluated for effect, such as a call or a
// docstring.
type ExprStatement struct {
	Value     Expr
	Semicolon *Op // or nil
}

func (n *ExprStatement) Kind() Kind          { return KindExprStatement }
func (n *ExprStatement) smallNode()          {}
func (n *ExprStatement) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *ExprStatement) Children() []Node {
	if n.Semicolon == nil {
		return []Node{n.Value}
	}
	return []Node{n.Value, n.Semicolon}
}

func (n *ExprStatement) clone() Node { c := *n; return &c }

func (n *ExprStatement) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *ExprStatement) validate() error {
	if n.Value == nil {
		return invalidf(KindExprStatement, "Value is required")
	}
	return nil
}

// AssignTarget is one `target =` of an assignment; a chained assignment
// `a = b = c` has two targets.
type AssignTarget struct {
	Target Expr
	Equal  *Op
}

func (n *AssignTarget) Kind() Kind { return KindAssignTarget }

func (n *AssignTarget) Children() []Node {
	return []Node{n.Target, n.Equal}
}

func (n *AssignTarget) clone() Node { c := *n; return &c }

func (n *AssignTarget) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	c.Equal = mapChild(n.Equal, fn, "Equal", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *AssignTarget) validate() error {
	if n.Target == nil || n.Equal == nil {
		return invalidf(KindAssignTarget, "Target and Equal are required")
	}
	return nil
}

// Assign is `targets... = value`.
type Assign struct {
	Targets   []*AssignTarget
	Value     Expr
	Semicolon *Op // or nil
}

func (n *Assign) Kind() Kind          { return KindAssign }
func (n *Assign) smallNode()          {}
func (n *Assign) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Assign) Children() []Node {
	out := make([]Node, 0, 2+len(n.Targets))
	for _, t := range n.Targets {
		out = append(out, t)
	}
	out = append(out, n.Value)
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Assign) clone() Node { c := *n; return &c }

func (n *Assign) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Targets = mapSlice(n.Targets, fn, "Targets", &changed)
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Assign) validate() error {
	if len(n.Targets) == 0 || n.Value == nil {
		return invalidf(KindAssign, "at least one target and a Value are required")
	}
	return nil
}

// AnnAssign is an annotated assignment, `target: annotation` with an
// optional `= value`.
type AnnAssign struct {
	Target     Expr
	Colon      *Op
	Annotation Expr
	Equal      *Op  // or nil
	Value      Expr // or nil
	Semicolon  *Op  // or nil
}

func (n *AnnAssign) Kind() Kind          { return KindAnnAssign }
func (n *AnnAssign) smallNode()          {}
func (n *AnnAssign) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *AnnAssign) Children() []Node {
	out := []Node{n.Target, n.Colon, n.Annotation}
	if n.Equal != nil {
		out = append(out, n.Equal, n.Value)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *AnnAssign) clone() Node { c := *n; return &c }

func (n *AnnAssign) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Annotation = mapChild(n.Annotation, fn, "Annotation", &changed)
	if n.Equal != nil {
		c.Equal = mapChild(n.Equal, fn, "Equal", &changed)
	}
	if n.Value != nil {
		c.Value = mapChild(n.Value, fn, "Value", &changed)
	}
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *AnnAssign) validate() error {
	if n.Target == nil || n.Colon == nil || n.Annotation == nil {
		return invalidf(KindAnnAssign, "Target, Colon and Annotation are required")
	}
	if (n.Equal == nil) != (n.Value == nil) {
		return invalidf(KindAnnAssign, "Equal and Value must both be present or both absent")
	}
	return nil
}

// AugAssign is an augmented assignment, `target op= value`.
type AugAssign struct {
	Target    Expr
	Operator  *Op
	Value     Expr
	Semicolon *Op // or nil
}

func (n *AugAssign) Kind() Kind          { return KindAugAssign }
func (n *AugAssign) smallNode()          {}
func (n *AugAssign) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *AugAssign) Children() []Node {
	out := []Node{n.Target, n.Operator, n.Value}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *AugAssign) clone() Node { c := *n; return &c }

func (n *AugAssign) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	c.Operator = mapChild(n.Operator, fn, "Operator", &changed)
	c.Value = mapChild(n.Value, fn, "Value", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *AugAssign) validate() error {
	if n.Target == nil || n.Operator == nil || n.Value == nil {
		return invalidf(KindAugAssign, "Target, Operator and Value are required")
	}
	return nil
}

// Return is `return` with an optional value.
type Return struct {
	Return    *Keyword
	Value     Expr // or nil
	Semicolon *Op  // or nil
}

func (n *Return) Kind() Kind          { return KindReturn }
func (n *Return) smallNode()          {}
func (n *Return) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Return) Children() []Node {
	out := []Node{n.Return}
	if n.Value != nil {
		out = append(out, n.Value)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Return) clone() Node { c := *n; return &c }

func (n *Return) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Return = mapChild(n.Return, fn, "Return", &changed)
	if n.Value != nil {
		c.Value = mapChild(n.Value, fn, "Value", &changed)
	}
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Return) validate() error {
	if n.Return == nil {
		return invalidf(KindReturn, "Return keyword is required")
	}
	return nil
}

// Pass is the `pass` statement.
type Pass struct {
	Pass      *Keyword
	Semicolon *Op // or nil
}

func (n *Pass) Kind() Kind          { return KindPass }
func (n *Pass) smallNode()          {}
func (n *Pass) SetSemicolon(op *Op) { n.Semicolon = op }
func (n *Pass) clone() Node         { c := *n; return &c }

func (n *Pass) Children() []Node {
	if n.Semicolon == nil {
		return []Node{n.Pass}
	}
	return []Node{n.Pass, n.Semicolon}
}

func (n *Pass) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Pass = mapChild(n.Pass, fn, "Pass", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Pass) validate() error {
	if n.Pass == nil {
		return invalidf(KindPass, "Pass keyword is required")
	}
	return nil
}

// Break is the `break` statement.
type Break struct {
	Break     *Keyword
	Semicolon *Op // or nil
}

func (n *Break) Kind() Kind          { return KindBreak }
func (n *Break) smallNode()          {}
func (n *Break) SetSemicolon(op *Op) { n.Semicolon = op }
func (n *Break) clone() Node         { c := *n; return &c }

func (n *Break) Children() []Node {
	if n.Semicolon == nil {
		return []Node{n.Break}
	}
	return []Node{n.Break, n.Semicolon}
}

func (n *Break) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Break = mapChild(n.Break, fn, "Break", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Break) validate() error {
	if n.Break == nil {
		return invalidf(KindBreak, "Break keyword is required")
	}
	return nil
}

// Continue is the `continue` statement.
type Continue struct {
	Continue  *Keyword
	Semicolon *Op // or nil
}

func (n *Continue) Kind() Kind          { return KindContinue }
func (n *Continue) smallNode()          {}
func (n *Continue) SetSemicolon(op *Op) { n.Semicolon = op }
func (n *Continue) clone() Node         { c := *n; return &c }

func (n *Continue) Children() []Node {
	if n.Semicolon == nil {
		return []Node{n.Continue}
	}
	return []Node{n.Continue, n.Semicolon}
}

func (n *Continue) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Continue = mapChild(n.Continue, fn, "Continue", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Continue) validate() error {
	if n.Continue == nil {
		return invalidf(KindContinue, "Continue keyword is required")
	}
	return nil
}

// Raise is `raise` with an optional exception expression.
type Raise struct {
	Raise     *Keyword
	Exc       Expr // or nil
	Semicolon *Op  // or nil
}

func (n *Raise) Kind() Kind          { return KindRaise }
func (n *Raise) smallNode()          {}
func (n *Raise) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Raise) Children() []Node {
	out := []Node{n.Raise}
	if n.Exc != nil {
		out = append(out, n.Exc)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Raise) clone() Node { c := *n; return &c }

func (n *Raise) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Raise = mapChild(n.Raise, fn, "Raise", &changed)
	if n.Exc != nil {
		c.Exc = mapChild(n.Exc, fn, "Exc", &changed)
	}
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Raise) validate() error {
	if n.Raise == nil {
		return invalidf(KindRaise, "Raise keyword is required")
	}
	return nil
}

// Del is `del target`.
type Del struct {
	Del       *Keyword
	Target    Expr
	Semicolon *Op // or nil
}

func (n *Del) Kind() Kind          { return KindDel }
func (n *Del) smallNode()          {}
func (n *Del) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Del) Children() []Node {
	out := []Node{n.Del, n.Target}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Del) clone() Node { c := *n; return &c }

func (n *Del) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Del = mapChild(n.Del, fn, "Del", &changed)
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Del) validate() error {
	if n.Del == nil || n.Target == nil {
		return invalidf(KindDel, "Del and Target are required")
	}
	return nil
}

func checkNameList(k Kind, kw *Keyword, names []*Element) error {
	if kw == nil || len(names) == 0 {
		return invalidf(k, "Keyword and at least one name are required")
	}
	for _, e := range names {
		if _, ok := e.Value.(*Name); !ok {
			return invalidf(k, "entries must be plain names")
		}
	}
	return nil
}

// Global is `global name, ...`. Names are Elements whose values are plain
// Names, commas attached.
type Global struct {
	Global    *Keyword
	Names     []*Element
	Semicolon *Op // or nil
}

func (n *Global) Kind() Kind          { return KindGlobal }
func (n *Global) smallNode()          {}
func (n *Global) SetSemicolon(op *Op) { n.Semicolon = op }
func (n *Global) clone() Node         { c := *n; return &c }
func (n *Global) validate() error     { return checkNameList(KindGlobal, n.Global, n.Names) }

func (n *Global) Children() []Node {
	out := make([]Node, 0, 2+len(n.Names))
	out = append(out, n.Global)
	for _, e := range n.Names {
		out = append(out, e)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Global) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Global = mapChild(n.Global, fn, "Global", &changed)
	c.Names = mapSlice(n.Names, fn, "Names", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

// Nonlocal is `nonlocal name, ...`.
type Nonlocal struct {
	Nonlocal  *Keyword
	Names     []*Element
	Semicolon *Op // or nil
}

func (n *Nonlocal) Kind() Kind          { return KindNonlocal }
func (n *Nonlocal) smallNode()          {}
func (n *Nonlocal) SetSemicolon(op *Op) { n.Semicolon = op }
func (n *Nonlocal) clone() Node         { c := *n; return &c }
func (n *Nonlocal) validate() error     { return checkNameList(KindNonlocal, n.Nonlocal, n.Names) }

func (n *Nonlocal) Children() []Node {
	out := make([]Node, 0, 2+len(n.Names))
	out = append(out, n.Nonlocal)
	for _, e := range n.Names {
		out = append(out, e)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Nonlocal) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Nonlocal = mapChild(n.Nonlocal, fn, "Nonlocal", &changed)
	c.Names = mapSlice(n.Names, fn, "Names", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

// Assert is `assert test` with an optional `, message`.
type Assert struct {
	Assert    *Keyword
	Test      Expr
	Comma     *Op  // or nil
	Msg       Expr // or nil
	Semicolon *Op  // or nil
}

func (n *Assert) Kind() Kind          { return KindAssert }
func (n *Assert) smallNode()          {}
func (n *Assert) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Assert) Children() []Node {
	out := []Node{n.Assert, n.Test}
	if n.Comma != nil {
		out = append(out, n.Comma, n.Msg)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Assert) clone() Node { c := *n; return &c }

func (n *Assert) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Assert = mapChild(n.Assert, fn, "Assert", &changed)
	c.Test = mapChild(n.Test, fn, "Test", &changed)
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if n.Msg != nil {
		c.Msg = mapChild(n.Msg, fn, "Msg", &changed)
	}
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Assert) validate() error {
	if n.Assert == nil || n.Test == nil {
		return invalidf(KindAssert, "Assert and Test are required")
	}
	if (n.Comma == nil) != (n.Msg == nil) {
		return invalidf(KindAssert, "Comma and Msg must both be present or both absent")
	}
	return nil
}

// ImportAlias is one imported name: `module`, `module as alias`, with its
// trailing comma when part of a list. Name is a Name or a dotted
// Attribute chain.
type ImportAlias struct {
	Name   Expr
	As     *Keyword // or nil
	AsName *Name    // or nil
	Comma  *Op      // or nil
}

func (n *ImportAlias) Kind() Kind { return KindImportAlias }

func (n *ImportAlias) Children() []Node {
	out := []Node{n.Name}
	if n.As != nil {
		out = append(out, n.As, n.AsName)
	}
	if n.Comma != nil {
		out = append(out, n.Comma)
	}
	return out
}

func (n *ImportAlias) clone() Node { c := *n; return &c }

func (n *ImportAlias) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Name = mapChild(n.Name, fn, "Name", &changed)
	if n.As != nil {
		c.As = mapChild(n.As, fn, "As", &changed)
	}
	if n.AsName != nil {
		c.AsName = mapChild(n.AsName, fn, "AsName", &changed)
	}
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *ImportAlias) validate() error {
	if n.Name == nil {
		return invalidf(KindImportAlias, "Name is required")
	}
	switch n.Name.(type) {
	case *Name, *Attribute:
	default:
		return invalidf(KindImportAlias, "Name must be a name or dotted name, not %v", n.Name.Kind())
	}
	if (n.As == nil) != (n.AsName == nil) {
		return invalidf(KindImportAlias, "As and AsName must both be present or both absent")
	}
	return nil
}

// Import is `import a, b.c as d`.
type Import struct {
	Import    *Keyword
	Names     []*ImportAlias
	Semicolon *Op // or nil
}

func (n *Import) Kind() Kind          { return KindImport }
func (n *Import) smallNode()          {}
func (n *Import) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *Import) Children() []Node {
	out := make([]Node, 0, 2+len(n.Names))
	out = append(out, n.Import)
	for _, a := range n.Names {
		out = append(out, a)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *Import) clone() Node { c := *n; return &c }

func (n *Import) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Import = mapChild(n.Import, fn, "Import", &changed)
	c.Names = mapSlice(n.Names, fn, "Names", &changed)
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Import) validate() error {
	if n.Import == nil || len(n.Names) == 0 {
		return invalidf(KindImport, "Import and at least one alias are required")
	}
	return nil
}

// ImportFrom is `from .module import names`. Dots are the relative-import
// dots (`.` or `...` tokens). Exactly one of Star or Names is set; a
// parenthesized name list keeps its parentheses.
type ImportFrom struct {
	From      *Keyword
	Dots      []*Op // or empty
	Module    Expr  // Name or dotted Attribute, or nil for pure-relative
	Import    *Keyword
	Star      *Op // `*`, or nil
	LParen    *Op // or nil
	Names     []*ImportAlias
	RParen    *Op // or nil
	Semicolon *Op // or nil
}

func (n *ImportFrom) Kind() Kind          { return KindImportFrom }
func (n *ImportFrom) smallNode()          {}
func (n *ImportFrom) SetSemicolon(op *Op) { n.Semicolon = op }

func (n *ImportFrom) Children() []Node {
	out := make([]Node, 0, 6+len(n.Dots)+len(n.Names))
	out = append(out, n.From)
	for _, d := range n.Dots {
		out = append(out, d)
	}
	if n.Module != nil {
		out = append(out, n.Module)
	}
	out = append(out, n.Import)
	if n.Star != nil {
		out = append(out, n.Star)
	}
	if n.LParen != nil {
		out = append(out, n.LParen)
	}
	for _, a := range n.Names {
		out = append(out, a)
	}
	if n.RParen != nil {
		out = append(out, n.RParen)
	}
	if n.Semicolon != nil {
		out = append(out, n.Semicolon)
	}
	return out
}

func (n *ImportFrom) clone() Node { c := *n; return &c }

func (n *ImportFrom) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.From = mapChild(n.From, fn, "From", &changed)
	c.Dots = mapSlice(n.Dots, fn, "Dots", &changed)
	if n.Module != nil {
		c.Module = mapChild(n.Module, fn, "Module", &changed)
	}
	c.Import = mapChild(n.Import, fn, "Import", &changed)
	if n.Star != nil {
		c.Star = mapChild(n.Star, fn, "Star", &changed)
	}
	if n.LParen != nil {
		c.LParen = mapChild(n.LParen, fn, "LParen", &changed)
	}
	c.Names = mapSlice(n.Names, fn, "Names", &changed)
	if n.RParen != nil {
		c.RParen = mapChild(n.RParen, fn, "RParen", &changed)
	}
	if n.Semicolon != nil {
		c.Semicolon = mapChild(n.Semicolon, fn, "Semicolon", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *ImportFrom) validate() error {
	if n.From == nil || n.Import == nil {
		return invalidf(KindImportFrom, "From and Import are required")
	}
	if n.Module == nil && len(n.Dots) == 0 {
		return invalidf(KindImportFrom, "a module or relative dots are required")
	}
	if (n.Star != nil) == (len(n.Names) > 0) {
		return invalidf(KindImportFrom, "exactly one of Star or Names must be set")
	}
	if (n.LParen == nil) != (n.RParen == nil) {
		return invalidf(KindImportFrom, "LParen and RParen must both be present or both absent")
	}
	return nil
}

// Decorator is `@expr` on its own line.
type Decorator struct {
	At      *Op
	Expr    Expr
	Newline *Newline
}

func (n *Decorator) Kind() Kind { return KindDecorator }

func (n *Decorator) Children() []Node {
	return []Node{n.At, n.Expr, n.Newline}
}

func (n *Decorator) clone() Node { c := *n; return &c }

func (n *Decorator) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.At = mapChild(n.At, fn, "At", &changed)
	c.Expr = mapChild(n.Expr, fn, "Expr", &changed)
	c.Newline = mapChild(n.Newline, fn, "Newline", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Decorator) validate() error {
	if n.At == nil || n.Expr == nil || n.Newline == nil {
		return invalidf(KindDecorator, "At, Expr and Newline are required")
	}
	return nil
}

// Param is one formal parameter. The marker-only forms `*` and `/` have
// Star set and no Name; `*args` and `**kwargs` have both.
type Param struct {
	Star       *Op   // "*", "**" or "/", or nil
	Name       *Name // or nil for bare markers
	Colon      *Op   // or nil
	Annotation Expr  // or nil
	Equal      *Op   // or nil
	Default    Expr  // or nil
	Comma      *Op   // or nil
}

func (n *Param) Kind() Kind { return KindParam }

func (n *Param) Children() []Node {
	out := make([]Node, 0, 7)
	if n.Star != nil {
		out = append(out, n.Star)
	}
	if n.Name != nil {
		out = append(out, n.Name)
	}
	if n.Colon != nil {
		out = append(out, n.Colon, n.Annotation)
	}
	if n.Equal != nil {
		out = append(out, n.Equal, n.Default)
	}
	if n.Comma != nil {
		out = append(out, n.Comma)
	}
	return out
}

func (n *Param) clone() Node { c := *n; return &c }

func (n *Param) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	if n.Star != nil {
		c.Star = mapChild(n.Star, fn, "Star", &changed)
	}
	if n.Name != nil {
		c.Name = mapChild(n.Name, fn, "Name", &changed)
	}
	if n.Colon != nil {
		c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	}
	if n.Annotation != nil {
		c.Annotation = mapChild(n.Annotation, fn, "Annotation", &changed)
	}
	if n.Equal != nil {
		c.Equal = mapChild(n.Equal, fn, "Equal", &changed)
	}
	if n.Default != nil {
		c.Default = mapChild(n.Default, fn, "Default", &changed)
	}
	if n.Comma != nil {
		c.Comma = mapChild(n.Comma, fn, "Comma", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *Param) validate() error {
	if n.Name == nil && n.Star == nil {
		return invalidf(KindParam, "a parameter needs a Name or a Star marker")
	}
	if n.Name == nil && (n.Colon != nil || n.Equal != nil) {
		return invalidf(KindParam, "bare markers take no annotation or default")
	}
	if (n.Colon == nil) != (n.Annotation == nil) {
		return invalidf(KindParam, "Colon and Annotation must both be present or both absent")
	}
	if (n.Equal == nil) != (n.Default == nil) {
		return invalidf(KindParam, "Equal and Default must both be present or both absent")
	}
	return nil
}

// Parameters is the formal parameter list of a function definition, commas
// attached to their parameters.
type Parameters struct {
	Params []*Param
}

func (n *Parameters) Kind() Kind { return KindParameters }

func (n *Parameters) Children() []Node {
	out := make([]Node, len(n.Params))
	for i, p := range n.Params {
		out[i] = p
	}
	return out
}

func (n *Parameters) clone() Node { c := *n; return &c }

func (n *Parameters) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Params = mapSlice(n.Params, fn, "Params", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Parameters) validate() error { return nil }

// FunctionDef is a function definition, decorators included.
type FunctionDef struct {
	Decorators []*Decorator
	Def        *Keyword
	Name       *Name
	LParen     *Op
	Params     *Parameters
	RParen     *Op
	Arrow      *Op  // or nil
	Returns    Expr // or nil
	Colon      *Op
	Body       Suite
}

func (n *FunctionDef) Kind() Kind { return KindFunctionDef }
func (n *FunctionDef) stmtNode()  {}

func (n *FunctionDef) Children() []Node {
	out := make([]Node, 0, 9+len(n.Decorators))
	for _, d := range n.Decorators {
		out = append(out, d)
	}
	out = append(out, n.Def, n.Name, n.LParen, n.Params, n.RParen)
	if n.Arrow != nil {
		out = append(out, n.Arrow, n.Returns)
	}
	return append(out, n.Colon, n.Body)
}

func (n *FunctionDef) clone() Node { c := *n; return &c }

func (n *FunctionDef) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Decorators = mapSlice(n.Decorators, fn, "Decorators", &changed)
	c.Def = mapChild(n.Def, fn, "Def", &changed)
	c.Name = mapChild(n.Name, fn, "Name", &changed)
	c.LParen = mapChild(n.LParen, fn, "LParen", &changed)
	c.Params = mapChild(n.Params, fn, "Params", &changed)
	c.RParen = mapChild(n.RParen, fn, "RParen", &changed)
	if n.Arrow != nil {
		c.Arrow = mapChild(n.Arrow, fn, "Arrow", &changed)
	}
	if n.Returns != nil {
		c.Returns = mapChild(n.Returns, fn, "Returns", &changed)
	}
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *FunctionDef) validate() error {
	if n.Def == nil || n.Name == nil || n.LParen == nil || n.Params == nil ||
		n.RParen == nil || n.Colon == nil || n.Body == nil {
		return invalidf(KindFunctionDef, "Def, Name, LParen, Params, RParen, Colon and Body are required")
	}
	if (n.Arrow == nil) != (n.Returns == nil) {
		return invalidf(KindFunctionDef, "Arrow and Returns must both be present or both absent")
	}
	return nil
}

// ClassDef is a class definition. The argument list is optional; when
// parentheses are present they are kept even if empty.
type ClassDef struct {
	Decorators []*Decorator
	Class      *Keyword
	Name       *Name
	LParen     *Op // or nil
	Args       []*Arg
	RParen     *Op // or nil
	Colon      *Op
	Body       Suite
}

func (n *ClassDef) Kind() Kind { return KindClassDef }
func (n *ClassDef) stmtNode()  {}

func (n *ClassDef) Children() []Node {
	out := make([]Node, 0, 6+len(n.Decorators)+len(n.Args))
	for _, d := range n.Decorators {
		out = append(out, d)
	}
	out = append(out, n.Class, n.Name)
	if n.LParen != nil {
		out = append(out, n.LParen)
	}
	for _, a := range n.Args {
		out = append(out, a)
	}
	if n.RParen != nil {
		out = append(out, n.RParen)
	}
	return append(out, n.Colon, n.Body)
}

func (n *ClassDef) clone() Node { c := *n; return &c }

func (n *ClassDef) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Decorators = mapSlice(n.Decorators, fn, "Decorators", &changed)
	c.Class = mapChild(n.Class, fn, "Class", &changed)
	c.Name = mapChild(n.Name, fn, "Name", &changed)
	if n.LParen != nil {
		c.LParen = mapChild(n.LParen, fn, "LParen", &changed)
	}
	c.Args = mapSlice(n.Args, fn, "Args", &changed)
	if n.RParen != nil {
		c.RParen = mapChild(n.RParen, fn, "RParen", &changed)
	}
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *ClassDef) validate() error {
	if n.Class == nil || n.Name == nil || n.Colon == nil || n.Body == nil {
		return invalidf(KindClassDef, "Class, Name, Colon and Body are required")
	}
	if (n.LParen == nil) != (n.RParen == nil) {
		return invalidf(KindClassDef, "LParen and RParen must both be present or both absent")
	}
	if n.LParen == nil && len(n.Args) > 0 {
		return invalidf(KindClassDef, "arguments require parentheses")
	}
	return nil
}

// If is an `if` or `elif` clause. Orelse, when present, is the next *If
// (an elif) or the final *Else.
type If struct {
	Keyword *Keyword // "if" or "elif"
	Test    Expr
	Colon   *Op
	Body    Suite
	Orelse  Statement // *If, *Else or nil
}

func (n *If) Kind() Kind { return KindIf }
func (n *If) stmtNode()  {}

func (n *If) Children() []Node {
	out := []Node{n.Keyword, n.Test, n.Colon, n.Body}
	if n.Orelse != nil {
		out = append(out, n.Orelse)
	}
	return out
}

func (n *If) clone() Node { c := *n; return &c }

func (n *If) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Keyword = mapChild(n.Keyword, fn, "Keyword", &changed)
	c.Test = mapChild(n.Test, fn, "Test", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if n.Orelse != nil {
		c.Orelse = mapChild(n.Orelse, fn, "Orelse", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *If) validate() error {
	if n.Keyword == nil || n.Test == nil || n.Colon == nil || n.Body == nil {
		return invalidf(KindIf, "Keyword, Test, Colon and Body are required")
	}
	switch n.Orelse.(type) {
	case nil, *If, *Else:
	default:
		return invalidf(KindIf, "Orelse must be an If or Else, not %v", n.Orelse.Kind())
	}
	return nil
}

// Else is the `else:` clause of an if, while or for statement. It is only
// valid hanging off one of those nodes.
type Else struct {
	Else  *Keyword
	Colon *Op
	Body  Suite
}

func (n *Else) Kind() Kind { return KindElse }
func (n *Else) stmtNode()  {}

func (n *Else) Children() []Node {
	return []Node{n.Else, n.Colon, n.Body}
}

func (n *Else) clone() Node { c := *n; return &c }

func (n *Else) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Else = mapChild(n.Else, fn, "Else", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *Else) validate() error {
	if n.Else == nil || n.Colon == nil || n.Body == nil {
		return invalidf(KindElse, "Else, Colon and Body are required")
	}
	return nil
}

// While is a `while` loop with an optional `else` clause.
type While struct {
	While  *Keyword
	Test   Expr
	Colon  *Op
	Body   Suite
	Orelse *Else // or nil
}

func (n *While) Kind() Kind { return KindWhile }
func (n *While) stmtNode()  {}

func (n *While) Children() []Node {
	out := []Node{n.While, n.Test, n.Colon, n.Body}
	if n.Orelse != nil {
		out = append(out, n.Orelse)
	}
	return out
}

func (n *While) clone() Node { c := *n; return &c }

func (n *While) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.While = mapChild(n.While, fn, "While", &changed)
	c.Test = mapChild(n.Test, fn, "Test", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if n.Orelse != nil {
		c.Orelse = mapChild(n.Orelse, fn, "Orelse", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *While) validate() error {
	if n.While == nil || n.Test == nil || n.Colon == nil || n.Body == nil {
		return invalidf(KindWhile, "While, Test, Colon and Body are required")
	}
	return nil
}

// For is a `for target in iter` loop with an optional `else` clause.
type For struct {
	For    *Keyword
	Target Expr
	In     *Keyword
	Iter   Expr
	Colon  *Op
	Body   Suite
	Orelse *Else // or nil
}

func (n *For) Kind() Kind { return KindFor }
func (n *For) stmtNode()  {}

func (n *For) Children() []Node {
	out := []Node{n.For, n.Target, n.In, n.Iter, n.Colon, n.Body}
	if n.Orelse != nil {
		out = append(out, n.Orelse)
	}
	return out
}

func (n *For) clone() Node { c := *n; return &c }

func (n *For) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.For = mapChild(n.For, fn, "For", &changed)
	c.Target = mapChild(n.Target, fn, "Target", &changed)
	c.In = mapChild(n.In, fn, "In", &changed)
	c.Iter = mapChild(n.Iter, fn, "Iter", &changed)
	c.Colon = mapChild(n.Colon, fn, "Colon", &changed)
	c.Body = mapChild(n.Body, fn, "Body", &changed)
	if n.Orelse != nil {
		c.Orelse = mapChild(n.Orelse, fn, "Orelse", &changed)
	}
	if !changed {
		return n
	}
	return &c
}

func (n *For) validate() error {
	if n.For == nil || n.Target == nil || n.In == nil || n.Iter == nil ||
		n.Colon == nil || n.Body == nil {
		return invalidf(KindFor, "For, Target, In, Iter, Colon and Body are required")
	}
	return nil
}

// IndentedBlock is the usual suite form: a newline after the colon, then
// one or more statements at a deeper indentation level. The indentation
// itself lives in each statement's leading trivia, so the block carries no
// explicit indent tokens.
type IndentedBlock struct {
	Newline *Newline
	Body    []Statement
}

func (n *IndentedBlock) Kind() Kind { return KindIndentedBlock }
func (n *IndentedBlock) suiteNode() {}

func (n *IndentedBlock) Children() []Node {
	out := make([]Node, 0, 1+len(n.Body))
	out = append(out, n.Newline)
	for _, s := range n.Body {
		out = append(out, s)
	}
	return out
}

func (n *IndentedBlock) clone() Node { c := *n; return &c }

func (n *IndentedBlock) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Newline = mapChild(n.Newline, fn, "Newline", &changed)
	c.Body = mapSlice(n.Body, fn, "Body", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *IndentedBlock) validate() error {
	if n.Newline == nil || len(n.Body) == 0 {
		return invalidf(KindIndentedBlock, "Newline and at least one statement are required")
	}
	return nil
}

// SimpleStatementSuite is the inline suite form: small statements on the
// same line as the colon, as in `def f(): return 1`.
type SimpleStatementSuite struct {
	Body    []SmallStatement
	Newline *Newline
}

func (n *SimpleStatementSuite) Kind() Kind { return KindSimpleStatementSuite }
func (n *SimpleStatementSuite) suiteNode() {}

func (n *SimpleStatementSuite) Children() []Node {
	out := make([]Node, 0, 1+len(n.Body))
	for _, s := range n.Body {
		out = append(out, s)
	}
	return append(out, n.Newline)
}

func (n *SimpleStatementSuite) clone() Node { c := *n; return &c }

func (n *SimpleStatementSuite) mapChildren(fn func(Node) Node) Node {
	c := *n
	var changed bool
	c.Body = mapSlice(n.Body, fn, "Body", &changed)
	c.Newline = mapChild(n.Newline, fn, "Newline", &changed)
	if !changed {
		return n
	}
	return &c
}

func (n *SimpleStatementSuite) validate() error {
	if len(n.Body) == 0 || n.Newline == nil {
		return invalidf(KindSimpleStatementSuite, "at least one statement and a Newline are required")
	}
	return nil
}
