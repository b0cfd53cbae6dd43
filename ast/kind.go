package ast

import "fmt"

// Kind identifies the grammatical variant of a [Node]. The set of kinds is
// closed: every node in a tree has exactly one of the values below.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Terminals.
	KindName
	KindKeyword
	KindOp
	KindNewline
	KindInteger
	KindFloat
	KindString
	KindEllipsis

	// Expressions.
	KindParenthesized
	KindBinaryOperation
	KindBooleanOperation
	KindUnaryOperation
	KindComparison
	KindComparisonTarget
	KindNamedExpr
	KindIfExp
	KindCall
	KindArg
	KindAttribute
	KindSubscript
	KindSlice
	KindElement
	KindDictElement
	KindTuple
	KindList
	KindSet
	KindDict
	KindConcatenatedString

	// Statements.
	KindSimpleStatementLine
	KindExprStatement
	KindAssign
	KindAssignTarget
	KindAnnAssign
	KindAugAssign
	KindReturn
	KindPass
	KindBreak
	KindContinue
	KindRaise
	KindDel
	KindGlobal
	KindNonlocal
	KindAssert
	KindImport
	KindImportAlias
	KindImportFrom
	KindFunctionDef
	KindParameters
	KindParam
	KindDecorator
	KindClassDef
	KindIf
	KindElse
	KindWhile
	KindFor

	// Suites.
	KindIndentedBlock
	KindSimpleStatementSuite

	KindModule
)

var kindNames = map[Kind]string{
	KindName:                 "Name",
	KindKeyword:              "Keyword",
	KindOp:                   "Op",
	KindNewline:              "Newline",
	KindInteger:              "Integer",
	KindFloat:                "Float",
	KindString:               "String",
	KindEllipsis:             "Ellipsis",
	KindParenthesized:        "Parenthesized",
	KindBinaryOperation:      "BinaryOperation",
	KindBooleanOperation:     "BooleanOperation",
	KindUnaryOperation:       "UnaryOperation",
	KindComparison:           "Comparison",
	KindComparisonTarget:     "ComparisonTarget",
	KindNamedExpr:            "NamedExpr",
	KindIfExp:                "IfExp",
	KindCall:                 "Call",
	KindArg:                  "Arg",
	KindAttribute:            "Attribute",
	KindSubscript:            "Subscript",
	KindSlice:                "Slice",
	KindElement:              "Element",
	KindDictElement:          "DictElement",
	KindTuple:                "Tuple",
	KindList:                 "List",
	KindSet:                  "Set",
	KindDict:                 "Dict",
	KindConcatenatedString:   "ConcatenatedString",
	KindSimpleStatementLine:  "SimpleStatementLine",
	KindExprStatement:        "ExprStatement",
	KindAssign:               "Assign",
	KindAssignTarget:         "AssignTarget",
	KindAnnAssign:            "AnnAssign",
	KindAugAssign:            "AugAssign",
	KindReturn:               "Return",
	KindPass:                 "Pass",
	KindBreak:                "Break",
	KindContinue:             "Continue",
	KindRaise:                "Raise",
	KindDel:                  "Del",
	KindGlobal:               "Global",
	KindNonlocal:             "Nonlocal",
	KindAssert:               "Assert",
	KindImport:               "Import",
	KindImportAlias:          "ImportAlias",
	KindImportFrom:           "ImportFrom",
	KindFunctionDef:          "FunctionDef",
	KindParameters:           "Parameters",
	KindParam:                "Param",
	KindDecorator:            "Decorator",
	KindClassDef:             "ClassDef",
	KindIf:                   "If",
	KindElse:                 "Else",
	KindWhile:                "While",
	KindFor:                  "For",
	KindIndentedBlock:        "IndentedBlock",
	KindSimpleStatementSuite: "SimpleStatementSuite",
	KindModule:               "Module",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ast.Kind(%d)", uint8(k))
}
