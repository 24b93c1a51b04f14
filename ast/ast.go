package ast

import "ternc/report"

// The abstract interface for all AST nodes.  AST nodes are produced by the
// parser and are immutable: lowering never writes back into them.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// TypeName represents an unresolved type annotation.  Resolution against the
// type registry happens during lowering.
type TypeName struct {
	ASTBase

	// The name of the type.
	Name string
}

// Pattern is the interface for binding patterns on the left of declarations.
// Only identifier patterns exist today; richer patterns slot in here.
type Pattern interface {
	ASTNode
	patternNode()
}

// IdentPattern binds a single name.
type IdentPattern struct {
	ASTBase

	// The name being bound.
	Name string
}

func (*IdentPattern) patternNode() {}
