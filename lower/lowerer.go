package lower

import (
	"ternc/ast"
	"ternc/common"
	"ternc/ir"
	"ternc/report"
	"ternc/types"
)

// Lowerer converts the AST of one function body (or one ad hoc top-level
// statement) into an executable IR graph, resolving types and overloads as it
// descends.
type Lowerer struct {
	// The compilation context the lowerer resolves against.
	ctx *Context

	// The stack of local scopes used to look up symbols.
	localScopes []map[string]*common.Symbol

	// The number of frame slots allocated so far, including parameters.
	numLocals int

	// The declared return type of the enclosing function.  If this is nil,
	// return statements are unchecked (the ad hoc top-level function).
	enclosingReturnType types.Type

	// The stack of enclosing loop targets, innermost last.  Empty when not
	// inside a loop.
	loops []loopTargets
}

// loopTargets holds the continuation nodes `break` and `continue` transfer to
// within one loop.  Either may be nil: nil is the terminal continuation.
type loopTargets struct {
	exit ir.Stmt // where `break` and normal loop exit go
	cont ir.Stmt // the condition re-check `continue` goes to
}

func newLowerer(ctx *Context) *Lowerer {
	return &Lowerer{ctx: ctx}
}

// -----------------------------------------------------------------------------

// lookup looks up a symbol by name in all visible scopes, innermost first.
// It returns nil if no scope binds the name.
func (l *Lowerer) lookup(name string) *common.Symbol {
	// Traverse local scopes in reverse order to implement shadowing.
	for i := len(l.localScopes) - 1; i > -1; i-- {
		if sym, ok := l.localScopes[i][name]; ok {
			return sym
		}
	}

	return nil
}

// defineLocal defines a local symbol in the current local scope.  Re-binding
// a name already bound in the same scope shadows the earlier binding.
func (l *Lowerer) defineLocal(sym *common.Symbol) {
	l.localScopes[len(l.localScopes)-1][sym.Name] = sym
}

// allocSlot allocates a fresh frame slot.
func (l *Lowerer) allocSlot() int {
	slot := l.numLocals
	l.numLocals++
	return slot
}

// pushScope pushes a new local scope onto the scope stack.
func (l *Lowerer) pushScope() {
	l.localScopes = append(l.localScopes, make(map[string]*common.Symbol))
}

// popScope removes the top local scope from the scope stack.
func (l *Lowerer) popScope() {
	l.localScopes = l.localScopes[:len(l.localScopes)-1]
}

// -----------------------------------------------------------------------------

// resolveTypeName resolves a type annotation against the type registry.
func (l *Lowerer) resolveTypeName(tn *ast.TypeName) types.Type {
	switch tn.Name {
	case "int":
		return l.ctx.Types.GetInt()
	case "bool":
		return l.ctx.Types.GetBool()
	case "float":
		return l.ctx.Types.GetFloat()
	case "string":
		return l.ctx.Types.GetString()
	case "unit":
		return l.ctx.Types.GetUnit()
	}

	l.error(report.ErrUnknownTypeName, tn.Span(), "unknown type name: `%s`", tn.Name)
	return nil
}

// error reports an error on the given span that aborts lowering of the
// current top-level unit.
func (l *Lowerer) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}
