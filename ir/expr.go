package ir

// Expr represents an IR expression.  Expression trees are exclusively owned
// by their parent node and evaluation is pure: given a frame, an expression
// yields a value and transfers no control.
type Expr interface {
	// Eval evaluates the expression against the given call frame.
	Eval(frame []Value) Value
}

// -----------------------------------------------------------------------------

// Imm is an immediate: it yields its embedded constant or function reference.
type Imm struct {
	Value Value
}

func (im *Imm) Eval(frame []Value) Value {
	return im.Value
}

// LocalRef loads the value of a frame slot.
type LocalRef struct {
	Slot int
}

func (lr *LocalRef) Eval(frame []Value) Value {
	return frame[lr.Slot]
}

// Call evaluates its callee, then its arguments left to right in the order
// written, then invokes the callee with the argument values.
type Call struct {
	Func Expr
	Args []Expr
}

func (c *Call) Eval(frame []Value) Value {
	fn := c.Func.Eval(frame)

	args := make([]Value, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.Eval(frame)
	}

	switch v := fn.(type) {
	case NativeFunc:
		return applyNative(v.Op, args)
	case FuncRef:
		return v.Def.Invoke(args)
	default:
		panic("ir: call of non-function value")
	}
}
