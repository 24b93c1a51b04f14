package ast

import "ternc/common"

// ASTExpr is the interface for all AST expression nodes.
type ASTExpr interface {
	ASTNode
	exprNode()
}

// ExprBase is embedded by all expression nodes.
type ExprBase struct {
	ASTBase
}

// NewExprBase creates an expression base with the given span base.
func NewExprBase(ab ASTBase) ExprBase {
	return ExprBase{ASTBase: ab}
}

func (ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// Identifier represents a reference to a named binding.
type Identifier struct {
	ExprBase

	// The name being referenced.
	Name string
}

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase

	Value int64
}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	ExprBase

	Value float64
}

// StringLit represents a string literal.
type StringLit struct {
	ExprBase

	Value string
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	ExprBase

	Value bool
}

// Call represents the application of a callee to an ordered argument list.
// Operator applications are calls whose callee is an OperatorExpr.
type Call struct {
	ExprBase

	// The callee expression.
	Func ASTExpr

	// The arguments, in the order written.
	Args []ASTExpr
}

// OperatorExpr represents a syntactic operator used in callee position.  It
// has no type of its own: it resolves against the operator table once the
// argument types are known.
type OperatorExpr struct {
	ExprBase

	// The operator kind.
	Op common.Operator
}
