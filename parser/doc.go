// Package parser turns Python source text into the lossless syntax trees
// of the ast package.
//
// [Parse] consumes a whole file and returns an [*ast.Module]. Every byte
// of the input ends up in the tree, attached as token text or leading
// trivia, so printing the module reproduces the input exactly.
// [ParseStatement] and [ParseExpression] parse free-standing fragments for
// splicing into existing trees.
//
// Parsing stops at the first error. Errors carry positions and implement
// [PositionedError].
package parser
