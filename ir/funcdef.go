package ir

// FuncDef is a lowered function: an entry node into an immutable control-flow
// graph plus the frame geometry needed to invoke it.  A FuncDef may be
// invoked repeatedly and recursively; each invocation gets its own frame and
// frames never outlive their invocation.
type FuncDef struct {
	// The entry node of the function's control-flow graph.  A nil entry is an
	// empty function which immediately returns unit.
	Entry Stmt

	// The number of local slots a frame for this function needs, including
	// parameter slots.
	NumLocals int

	// The number of parameters.  Arguments are bound to the first NumParams
	// frame slots on invocation.
	NumParams int
}

// Invoke runs the function against the given arguments and returns its
// result.  The result is unit if the walk falls off the end of the graph
// without taking a Return node.
func (fd *FuncDef) Invoke(args []Value) Value {
	frame := make([]Value, fd.NumLocals)
	for i := range frame {
		frame[i] = UnitValue{}
	}
	copy(frame, args)

	node := fd.Entry
	for node != nil {
		switch v := node.(type) {
		case *ExprStmt:
			if v.Expr != nil {
				v.Expr.Eval(frame)
			}

			node = v.Next
		case *Branch:
			if v.Cond.Eval(frame).(BoolValue) {
				node = v.IfTrue
			} else {
				node = v.IfFalse
			}
		case *Store:
			frame[v.Slot] = v.Value.Eval(frame)
			node = v.Next
		case *Return:
			if v.Value != nil {
				return v.Value.Eval(frame)
			}

			return UnitValue{}
		default:
			panic("ir: unknown statement node")
		}
	}

	return UnitValue{}
}
