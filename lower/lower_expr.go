package lower

import (
	"strings"

	"ternc/ast"
	"ternc/common"
	"ternc/ir"
	"ternc/report"
	"ternc/types"
)

// lowerExpr lowers an AST expression to its resolved type and IR form.  It
// never mutates the AST; the only side effect is interning new types.
func (l *Lowerer) lowerExpr(expr ast.ASTExpr) (types.Type, ir.Expr) {
	switch v := expr.(type) {
	case *ast.IntLit:
		return l.ctx.Types.GetInt(), &ir.Imm{Value: ir.IntValue(v.Value)}
	case *ast.FloatLit:
		return l.ctx.Types.GetFloat(), &ir.Imm{Value: ir.FloatValue(v.Value)}
	case *ast.StringLit:
		return l.ctx.Types.GetString(), &ir.Imm{Value: ir.StringValue(v.Value)}
	case *ast.BoolLit:
		return l.ctx.Types.GetBool(), &ir.Imm{Value: ir.BoolValue(v.Value)}
	case *ast.Identifier:
		if sym := l.lookup(v.Name); sym != nil {
			return sym.Type, &ir.LocalRef{Slot: sym.Slot}
		}

		l.error(report.ErrUnresolvedIdentifier, v.Span(), "undefined symbol: `%s`", v.Name)
	case *ast.Call:
		return l.lowerCall(v)
	case *ast.OperatorExpr:
		// Operators only occur in callee position today; first-class operator
		// values would resolve here.
		l.error(report.ErrNoMatchingOverload, v.Span(), "operator `%s` cannot be used as a value", v.Op.Repr())
	}

	// unreachable
	return nil, nil
}

// lowerCall lowers a call expression using the two-phase protocol: every
// argument is lowered first, left to right in the order written, and only
// then is the callee resolved against the collected argument types.  Argument
// evaluation order is therefore fixed no matter which overload is chosen.
func (l *Lowerer) lowerCall(call *ast.Call) (types.Type, ir.Expr) {
	argTypes := make([]types.Type, len(call.Args))
	argExprs := make([]ir.Expr, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i], argExprs[i] = l.lowerExpr(arg)
	}

	funcType, funcExpr := l.resolveCallable(call.Func, argTypes)
	return funcType.ReturnType, &ir.Call{Func: funcExpr, Args: argExprs}
}

// resolveCallable resolves a callee expression given the types of the
// already-lowered arguments.  Overload resolution is exact: the first
// overload whose parameter types are identical (same interned instances) to
// the argument types wins, with no coercion and no closest-match fallback.
func (l *Lowerer) resolveCallable(callee ast.ASTExpr, argTypes []types.Type) (*types.FuncType, ir.Expr) {
	switch v := callee.(type) {
	case *ast.OperatorExpr:
		if overload := matchOverload(l.ctx.Opers[v.Op], argTypes); overload != nil {
			return overload.Signature, &ir.Imm{Value: overload.Impl}
		}

		l.error(report.ErrNoMatchingOverload, v.Span(),
			"no matching overload of the `%s` operator for (%s)", v.Op.Repr(), reprTypes(argTypes))
	case *ast.Identifier:
		// A local binding of matching function type takes priority over
		// global function items, like any other shadowing.
		if sym := l.lookup(v.Name); sym != nil {
			if ft, ok := sym.Type.(*types.FuncType); ok && paramsMatch(ft, argTypes) {
				return ft, &ir.LocalRef{Slot: sym.Slot}
			}

			l.error(report.ErrNoMatchingOverload, v.Span(),
				"`%s` cannot be called with (%s)", v.Name, reprTypes(argTypes))
		}

		if overloads, ok := l.ctx.Globals[v.Name]; ok {
			if overload := matchOverload(overloads, argTypes); overload != nil {
				return overload.Signature, &ir.Imm{Value: overload.Impl}
			}

			l.error(report.ErrNoMatchingOverload, v.Span(),
				"no matching overload of `%s` for (%s)", v.Name, reprTypes(argTypes))
		}

		l.error(report.ErrUnresolvedIdentifier, v.Span(), "undefined symbol: `%s`", v.Name)
	default:
		// A first-class callee: lower it as an ordinary expression and
		// require its type to match the argument types exactly.
		calleeType, calleeExpr := l.lowerExpr(callee)
		if ft, ok := calleeType.(*types.FuncType); ok && paramsMatch(ft, argTypes) {
			return ft, calleeExpr
		}

		l.error(report.ErrNoMatchingOverload, callee.Span(),
			"expression of type `%s` cannot be called with (%s)", calleeType.Repr(), reprTypes(argTypes))
	}

	// unreachable
	return nil, nil
}

// matchOverload scans an overload list in registration order and returns the
// first entry whose parameter types are identical to the argument types, or
// nil if none matches.
func matchOverload(overloads []*common.Overload, argTypes []types.Type) *common.Overload {
	for _, overload := range overloads {
		if paramsMatch(overload.Signature, argTypes) {
			return overload
		}
	}

	return nil
}

// paramsMatch reports whether a function type's parameters are identical, by
// interned-type identity, to the given argument types.
func paramsMatch(ft *types.FuncType, argTypes []types.Type) bool {
	if len(ft.ParamTypes) != len(argTypes) {
		return false
	}

	for i, param := range ft.ParamTypes {
		if param != argTypes[i] {
			return false
		}
	}

	return true
}

// reprTypes renders a comma-separated list of type representations for error
// messages.
func reprTypes(typeList []types.Type) string {
	reprs := make([]string, len(typeList))
	for i, ty := range typeList {
		reprs[i] = ty.Repr()
	}

	return strings.Join(reprs, ", ")
}
