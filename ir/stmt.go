package ir

// Stmt is a node in the control-flow graph of a lowered function.  After
// performing its own effect a node transfers control to a continuation, which
// is another node or nil, the implicit unit-return terminal.
//
// Unlike expression trees, statement nodes are shared: a loop's exit node is
// the continuation of both the condition's false edge and every `break`
// inside the body, and loops form genuine cycles through their back-edges.
// Graphs are built once during lowering and never mutated afterward, so the
// cycles are safe to share and to invoke concurrently with fresh frames.
type Stmt interface {
	irStmt()
}

// -----------------------------------------------------------------------------

// ExprStmt evaluates its expression for effect, discards the value, and
// continues.  A nil expression makes it a pure no-op node: executing it is
// indistinguishable from executing its continuation directly.
type ExprStmt struct {
	Expr Expr // nil => no-op
	Next Stmt
}

func (*ExprStmt) irStmt() {}

// Branch evaluates its condition and transfers to one of its two successor
// nodes.  It has no effect of its own.
type Branch struct {
	Cond Expr

	// The successors.  These are filled in after allocation when the branch
	// is a loop head, since a loop body's continuation is the head itself.
	IfTrue, IfFalse Stmt
}

func (*Branch) irStmt() {}

// Store evaluates its expression and writes the result into a frame slot,
// then continues.  Declarations and assignments both lower to this node.
type Store struct {
	Slot  int
	Value Expr
	Next  Stmt
}

func (*Store) irStmt() {}

// Return ends the invocation, yielding its expression's value, or unit if it
// has none.  It is a terminal: it has no continuation.
type Return struct {
	Value Expr // nil => return unit
}

func (*Return) irStmt() {}
