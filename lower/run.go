package lower

import (
	"ternc/ast"
	"ternc/common"
	"ternc/ir"
	"ternc/report"
	"ternc/types"
)

// RunStmt lowers a single top-level statement as the body of an ad hoc
// zero-argument function, invokes it against a fresh frame, and returns the
// resulting value (unit if no return statement was taken).  Lowering is
// fail-fast: the first error aborts this statement and is returned; the
// caller is free to keep running subsequent independent statements against
// the same context.
func RunStmt(ctx *Context, stmt ast.ASTStmt) (result ir.Value, err error) {
	defer report.CatchErrors(&err)

	def := LowerStmt(ctx, stmt)
	result = def.Invoke(nil)
	return
}

// LowerStmt lowers a single top-level statement into an ad hoc zero-argument
// function without invoking it.  Errors propagate by panic; use RunStmt for
// the recovering entry point.
func LowerStmt(ctx *Context, stmt ast.ASTStmt) *ir.FuncDef {
	l := newLowerer(ctx)
	l.pushScope()

	def := &ir.FuncDef{}

	// A bare expression statement at the top level returns its value instead
	// of discarding it, so the driver has something to present.
	if es, ok := stmt.(*ast.ExprStmt); ok && es.Expr != nil && !isAssignCall(es.Expr) {
		_, expr := l.lowerExpr(es.Expr)
		def.Entry = &ir.Return{Value: expr}
	} else {
		def.Entry = l.lowerStmt(stmt, nil)
	}

	def.NumLocals = l.numLocals
	return def
}

// LowerFuncDef lowers a top-level function definition and records it in the
// context's global function items.  The definition is registered before its
// body is lowered so the body can call the function recursively; the shared
// ir.FuncDef has its entry filled in afterward.  If the body fails to lower,
// the registration is withdrawn: a broken definition must not stay callable.
func LowerFuncDef(ctx *Context, fn *ast.FuncDef) (err error) {
	defer report.CatchErrors(&err)

	l := newLowerer(ctx)

	paramTypes := make([]types.Type, len(fn.Params))
	for i, param := range fn.Params {
		paramTypes[i] = l.resolveTypeName(param.Type)
	}

	returnType := ctx.Types.GetUnit()
	if fn.ReturnType != nil {
		returnType = l.resolveTypeName(fn.ReturnType)
	}

	funcType := ctx.Types.GetFunc(paramTypes, returnType)
	def := &ir.FuncDef{NumParams: len(fn.Params)}
	ctx.DefineGlobal(fn.Name, funcType, ir.FuncRef{Def: def})

	lowered := false
	defer func() {
		if !lowered {
			ctx.dropLastGlobal(fn.Name)
		}
	}()

	l.enclosingReturnType = returnType
	l.pushScope()
	for i, param := range fn.Params {
		l.defineLocal(&common.Symbol{
			Name:    param.Name,
			Slot:    l.allocSlot(),
			Type:    paramTypes[i],
			DefSpan: param.Type.Span(),
		})
	}

	def.Entry = l.lowerStmt(fn.Body, nil)
	def.NumLocals = l.numLocals
	lowered = true
	return
}
