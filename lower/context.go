package lower

import (
	"ternc/common"
	"ternc/ir"
	"ternc/types"
)

// Context bundles the state shared by every lowering call within one
// compilation unit: the type registry, the operator table, and the global
// function items.  A context is created once per unit and passed explicitly;
// it is never global, so independent compilations cannot interfere.  Contexts
// must not be shared: interned types only compare by identity within the
// context that interned them.
type Context struct {
	// Types is the context's interning type registry.
	Types *types.Registry

	// Opers maps each operator to its ordered overload list.  Registration
	// order is resolution order: the first exact match wins.
	Opers map[common.Operator][]*common.Overload

	// Globals maps function names to their overload sets.
	Globals map[string][]*common.Overload
}

// NewContext creates a compilation context seeded with the built-in operator
// overloads.
func NewContext() *Context {
	ctx := &Context{
		Types:   types.NewRegistry(),
		Opers:   make(map[common.Operator][]*common.Overload),
		Globals: make(map[string][]*common.Overload),
	}

	intTy := ctx.Types.GetInt()
	boolTy := ctx.Types.GetBool()
	floatTy := ctx.Types.GetFloat()
	stringTy := ctx.Types.GetString()

	binary := func(op common.Operator, operand, ret types.Type, native ir.NativeOp) {
		ctx.AddOperOverload(op, ctx.Types.GetFunc([]types.Type{operand, operand}, ret), ir.NativeFunc{Op: native})
	}
	unary := func(op common.Operator, operand, ret types.Type, native ir.NativeOp) {
		ctx.AddOperOverload(op, ctx.Types.GetFunc([]types.Type{operand}, ret), ir.NativeFunc{Op: native})
	}

	// Integer arithmetic.
	binary(common.OpAdd, intTy, intTy, ir.OpIAdd)
	binary(common.OpSub, intTy, intTy, ir.OpISub)
	binary(common.OpMul, intTy, intTy, ir.OpIMul)
	binary(common.OpDiv, intTy, intTy, ir.OpIDiv)
	binary(common.OpRem, intTy, intTy, ir.OpIRem)
	unary(common.OpMinus, intTy, intTy, ir.OpINeg)

	// Float arithmetic.
	binary(common.OpAdd, floatTy, floatTy, ir.OpFAdd)
	binary(common.OpSub, floatTy, floatTy, ir.OpFSub)
	binary(common.OpMul, floatTy, floatTy, ir.OpFMul)
	binary(common.OpDiv, floatTy, floatTy, ir.OpFDiv)
	unary(common.OpMinus, floatTy, floatTy, ir.OpFNeg)

	// Integer comparisons.
	binary(common.OpEqual, intTy, boolTy, ir.OpIEq)
	binary(common.OpNotEqual, intTy, boolTy, ir.OpINeq)
	binary(common.OpLess, intTy, boolTy, ir.OpILt)
	binary(common.OpLessEqual, intTy, boolTy, ir.OpILtEq)
	binary(common.OpGreater, intTy, boolTy, ir.OpIGt)
	binary(common.OpGreaterEqual, intTy, boolTy, ir.OpIGtEq)

	// Float comparisons.
	binary(common.OpEqual, floatTy, boolTy, ir.OpFEq)
	binary(common.OpLess, floatTy, boolTy, ir.OpFLt)
	binary(common.OpLessEqual, floatTy, boolTy, ir.OpFLtEq)
	binary(common.OpGreater, floatTy, boolTy, ir.OpFGt)
	binary(common.OpGreaterEqual, floatTy, boolTy, ir.OpFGtEq)

	// Boolean operators.
	binary(common.OpEqual, boolTy, boolTy, ir.OpBEq)
	binary(common.OpLogicalAnd, boolTy, boolTy, ir.OpLAnd)
	binary(common.OpLogicalOr, boolTy, boolTy, ir.OpLOr)
	unary(common.OpLogicalNot, boolTy, boolTy, ir.OpLNot)

	// String concatenation.
	binary(common.OpAdd, stringTy, stringTy, ir.OpSConcat)

	return ctx
}

// AddOperOverload appends an overload to an operator's overload list.  This
// is also the extension point for user operator-overload declarations.
func (ctx *Context) AddOperOverload(op common.Operator, signature *types.FuncType, impl ir.Value) {
	ctx.Opers[op] = append(ctx.Opers[op], &common.Overload{Signature: signature, Impl: impl})
}

// DefineGlobal appends an overload to a global function's overload set.
func (ctx *Context) DefineGlobal(name string, signature *types.FuncType, impl ir.Value) {
	ctx.Globals[name] = append(ctx.Globals[name], &common.Overload{Signature: signature, Impl: impl})
}

// dropLastGlobal removes the most recently registered overload of a global
// function, deleting the name entirely when no overloads remain so that
// lookups of it fail as unresolved again.
func (ctx *Context) dropLastGlobal(name string) {
	overloads := ctx.Globals[name]
	if len(overloads) < 2 {
		delete(ctx.Globals, name)
		return
	}

	ctx.Globals[name] = overloads[:len(overloads)-1]
}
