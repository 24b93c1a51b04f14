package ast

// ASTStmt is the interface for all AST statement nodes.
type ASTStmt interface {
	ASTNode
	stmtNode()
}

// StmtBase is embedded by all statement nodes.
type StmtBase struct {
	ASTBase
}

// NewStmtBase creates a statement base with the given span base.
func NewStmtBase(ab ASTBase) StmtBase {
	return StmtBase{ASTBase: ab}
}

func (StmtBase) stmtNode() {}

// -----------------------------------------------------------------------------

// ExprStmt represents an expression used as a statement.  The expression may
// be absent, in which case the statement is a no-op.
type ExprStmt struct {
	StmtBase

	Expr ASTExpr // nil => empty statement
}

// Block represents a braced sequence of statements with its own scope.
type Block struct {
	StmtBase

	Stmts []ASTStmt
}

// If represents a conditional statement with an optional else branch.
type If struct {
	StmtBase

	Cond ASTExpr
	Then ASTStmt
	Else ASTStmt // nil => no else branch
}

// While represents a condition-tested loop.
type While struct {
	StmtBase

	Cond ASTExpr
	Body ASTStmt
}

// Break represents a `break` statement.
type Break struct {
	StmtBase
}

// Continue represents a `continue` statement.
type Continue struct {
	StmtBase
}

// Return represents a `return` statement with an optional value.
type Return struct {
	StmtBase

	Expr ASTExpr // nil => return unit
}

// VarDecl represents a variable declaration.  At least one of Type and Init
// is present; the parser enforces this and lowering re-validates it.
type VarDecl struct {
	StmtBase

	// The pattern being bound.
	Pattern Pattern

	// The optional type annotation.
	Type *TypeName

	// The optional initializer.
	Init ASTExpr
}

// -----------------------------------------------------------------------------

// FuncDef represents a top-level function definition.
type FuncDef struct {
	StmtBase

	// The name of the function.
	Name string

	// The parameters, in order.
	Params []FuncParam

	// The optional return type annotation.  Absent means unit.
	ReturnType *TypeName

	// The body block.
	Body *Block
}

// FuncParam is a single named, typed parameter of a function definition.
type FuncParam struct {
	Name string
	Type *TypeName
}
