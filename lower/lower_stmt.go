package lower

import (
	"ternc/ast"
	"ternc/common"
	"ternc/ir"
	"ternc/report"
	"ternc/types"
)

// lowerStmt lowers an AST statement into a control-flow graph node whose
// continuation is `k`.  A nil continuation is the terminal: falling past it
// ends the invocation with a unit result.  Break, continue, and return ignore
// `k` and transfer to their own targets.
func (l *Lowerer) lowerStmt(stmt ast.ASTStmt, k ir.Stmt) ir.Stmt {
	switch v := stmt.(type) {
	case *ast.ExprStmt:
		return l.lowerExprStmt(v, k)
	case *ast.Block:
		return l.lowerBlock(v, k)
	case *ast.If:
		return l.lowerIf(v, k)
	case *ast.While:
		return l.lowerWhile(v, k)
	case *ast.Break:
		if len(l.loops) == 0 {
			l.error(report.ErrBreakOutsideLoop, v.Span(), "cannot use break outside a loop")
		}

		// Break continues to the same node normal loop exit does.
		return l.loops[len(l.loops)-1].exit
	case *ast.Continue:
		if len(l.loops) == 0 {
			l.error(report.ErrContinueOutsideLoop, v.Span(), "cannot use continue outside a loop")
		}

		// Continue re-evaluates the loop condition, not the body start.
		return l.loops[len(l.loops)-1].cont
	case *ast.Return:
		return l.lowerReturn(v)
	case *ast.VarDecl:
		return l.lowerVarDecl(v, k)
	}

	// unreachable
	return nil
}

// lowerExprStmt lowers an expression statement.  An absent expression yields
// a no-op node which just passes through to the continuation.  Assignment
// operator applications lower to store nodes here: IR expressions are pure,
// so the store effect lives on a statement node.
func (l *Lowerer) lowerExprStmt(es *ast.ExprStmt, k ir.Stmt) ir.Stmt {
	if es.Expr == nil {
		return &ir.ExprStmt{Next: k}
	}

	if isAssignCall(es.Expr) {
		return l.lowerAssign(es.Expr.(*ast.Call), k)
	}

	_, expr := l.lowerExpr(es.Expr)
	return &ir.ExprStmt{Expr: expr, Next: k}
}

// isAssignCall reports whether an expression is an assignment operator
// application.
func isAssignCall(expr ast.ASTExpr) bool {
	call, ok := expr.(*ast.Call)
	if !ok {
		return false
	}

	oper, ok := call.Func.(*ast.OperatorExpr)
	return ok && oper.Op == common.OpAssign && len(call.Args) == 2
}

// lowerAssign lowers an assignment to a store node.  The target must be an
// identifier bound in a visible scope and the value's type must be identical
// to the target slot's static type.
func (l *Lowerer) lowerAssign(call *ast.Call, k ir.Stmt) ir.Stmt {
	target, ok := call.Args[0].(*ast.Identifier)
	if !ok {
		l.error(report.ErrAssignTypeMismatch, call.Args[0].Span(), "cannot assign to this expression")
	}

	sym := l.lookup(target.Name)
	if sym == nil {
		l.error(report.ErrUnresolvedIdentifier, target.Span(), "undefined symbol: `%s`", target.Name)
	}

	valueType, valueExpr := l.lowerExpr(call.Args[1])
	if valueType != sym.Type {
		l.error(report.ErrAssignTypeMismatch, call.Args[1].Span(),
			"cannot assign value of type `%s` to `%s` of type `%s`", valueType.Repr(), sym.Name, sym.Type.Repr())
	}

	return &ir.Store{Slot: sym.Slot, Value: valueExpr, Next: k}
}

// lowerBlock lowers a block by folding its statements right to left: the last
// statement continues to the block's continuation and each earlier statement
// continues to the already-lowered next one.  An empty block lowers to the
// continuation itself.  The block gets its own scope frame.
func (l *Lowerer) lowerBlock(block *ast.Block, k ir.Stmt) ir.Stmt {
	l.pushScope()
	defer l.popScope()

	node := k
	for i := len(block.Stmts) - 1; i > -1; i-- {
		node = l.lowerStmt(block.Stmts[i], node)
	}

	return node
}

// lowerIf lowers a conditional.  Both branches continue to the statement's
// own continuation; an absent else branch is the continuation itself.
func (l *Lowerer) lowerIf(ifStmt *ast.If, k ir.Stmt) ir.Stmt {
	condExpr := l.lowerCond(ifStmt.Cond)

	thenNode := l.lowerStmt(ifStmt.Then, k)

	elseNode := k
	if ifStmt.Else != nil {
		elseNode = l.lowerStmt(ifStmt.Else, k)
	}

	return &ir.Branch{Cond: condExpr, IfTrue: thenNode, IfFalse: elseNode}
}

// lowerWhile lowers a loop.  The loop head must be allocated before the body
// is lowered since the body's continuation is the head itself (the
// back-edge); its edges are filled in afterward.  The loop's continuation
// doubles as the break target, so breaking and falling out of the loop reach
// the identical node.
func (l *Lowerer) lowerWhile(while *ast.While, k ir.Stmt) ir.Stmt {
	head := &ir.Branch{}
	head.Cond = l.lowerCond(while.Cond)

	l.loops = append(l.loops, loopTargets{exit: k, cont: head})
	bodyNode := l.lowerStmt(while.Body, head)
	l.loops = l.loops[:len(l.loops)-1]

	head.IfTrue = bodyNode
	head.IfFalse = k
	return head
}

// lowerCond lowers a condition expression and requires it to be boolean.
func (l *Lowerer) lowerCond(cond ast.ASTExpr) ir.Expr {
	condType, condExpr := l.lowerExpr(cond)
	if condType != l.ctx.Types.GetBool() {
		l.error(report.ErrCondTypeMismatch, cond.Span(),
			"condition must be of type `bool`, not `%s`", condType.Repr())
	}

	return condExpr
}

// lowerReturn lowers a return statement into a terminal node.  The returned
// type is checked against the enclosing function's declared return type; the
// ad hoc top-level function has none, so any return is allowed there.
func (l *Lowerer) lowerReturn(ret *ast.Return) ir.Stmt {
	if ret.Expr == nil {
		if l.enclosingReturnType != nil && l.enclosingReturnType != l.ctx.Types.GetUnit() {
			l.error(report.ErrReturnTypeMismatch, ret.Span(),
				"must return a value of type `%s`", l.enclosingReturnType.Repr())
		}

		return &ir.Return{}
	}

	exprType, expr := l.lowerExpr(ret.Expr)
	if l.enclosingReturnType != nil && exprType != l.enclosingReturnType {
		l.error(report.ErrReturnTypeMismatch, ret.Expr.Span(),
			"cannot return value of type `%s` from function returning `%s`", exprType.Repr(), l.enclosingReturnType.Repr())
	}

	return &ir.Return{Value: expr}
}

// lowerVarDecl lowers a declaration: it allocates a fresh frame slot, binds
// the pattern's name to it in the current scope frame, and emits the
// initializing store.  The initializer is lowered before the name is bound,
// so `let x = x + 1` refers to any outer `x`.
func (l *Lowerer) lowerVarDecl(decl *ast.VarDecl, k ir.Stmt) ir.Stmt {
	if decl.Type == nil && decl.Init == nil {
		l.error(report.ErrDeclTypeMismatch, decl.Span(),
			"declaration requires a type annotation or an initializer")
	}

	pat, ok := decl.Pattern.(*ast.IdentPattern)
	if !ok {
		l.error(report.ErrDeclTypeMismatch, decl.Pattern.Span(), "unsupported pattern")
	}

	var declType types.Type
	var initExpr ir.Expr

	switch {
	case decl.Type != nil && decl.Init != nil:
		declType = l.resolveTypeName(decl.Type)

		var initType types.Type
		initType, initExpr = l.lowerExpr(decl.Init)
		if initType != declType {
			l.error(report.ErrDeclTypeMismatch, decl.Init.Span(),
				"cannot initialize `%s` of type `%s` with value of type `%s`", pat.Name, declType.Repr(), initType.Repr())
		}
	case decl.Init != nil:
		declType, initExpr = l.lowerExpr(decl.Init)
	default:
		declType = l.resolveTypeName(decl.Type)
		initExpr = &ir.Imm{Value: l.zeroValue(declType, decl.Type)}
	}

	slot := l.allocSlot()
	l.defineLocal(&common.Symbol{
		Name:    pat.Name,
		Slot:    slot,
		Type:    declType,
		DefSpan: pat.Span(),
	})

	return &ir.Store{Slot: slot, Value: initExpr, Next: k}
}

// zeroValue returns the default value a slot of the given type is initialized
// to when its declaration has no initializer.
func (l *Lowerer) zeroValue(ty types.Type, tn *ast.TypeName) ir.Value {
	switch ty {
	case l.ctx.Types.GetInt():
		return ir.IntValue(0)
	case l.ctx.Types.GetBool():
		return ir.BoolValue(false)
	case l.ctx.Types.GetFloat():
		return ir.FloatValue(0)
	case l.ctx.Types.GetString():
		return ir.StringValue("")
	case l.ctx.Types.GetUnit():
		return ir.UnitValue{}
	}

	l.error(report.ErrDeclTypeMismatch, tn.Span(), "type `%s` cannot be default initialized", ty.Repr())
	return nil
}
