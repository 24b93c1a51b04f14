package ir

import "ternc/report"

// NativeOp enumerates the host operations backing built-in overloads.
type NativeOp int

const (
	OpIAdd NativeOp = iota // Integer add
	OpISub                 // Integer subtract
	OpIMul                 // Integer multiply
	OpIDiv                 // Integer divide
	OpIRem                 // Integer remainder
	OpINeg                 // Integer negate

	OpFAdd // Float add
	OpFSub // Float subtract
	OpFMul // Float multiply
	OpFDiv // Float divide
	OpFNeg // Float negate

	OpIEq   // Integer equal to
	OpINeq  // Integer not equal to
	OpILt   // Integer less than
	OpILtEq // Integer less than or equal to
	OpIGt   // Integer greater than
	OpIGtEq // Integer greater than or equal to

	OpFEq   // Float equal to
	OpFLt   // Float less than
	OpFLtEq // Float less than or equal to
	OpFGt   // Float greater than
	OpFGtEq // Float greater than or equal to

	OpBEq  // Boolean equal to
	OpLAnd // Logical AND
	OpLOr  // Logical OR
	OpLNot // Logical NOT

	OpSConcat // String concatenation
)

// applyNative applies a native operation to already-evaluated argument
// values.  Arity and types are guaranteed by overload resolution, so the
// assertions here only guard against lowering bugs.  Integer arithmetic wraps
// with two's-complement semantics.
func applyNative(op NativeOp, args []Value) Value {
	switch op {
	case OpIAdd:
		return args[0].(IntValue) + args[1].(IntValue)
	case OpISub:
		return args[0].(IntValue) - args[1].(IntValue)
	case OpIMul:
		return args[0].(IntValue) * args[1].(IntValue)
	case OpIDiv:
		return args[0].(IntValue) / nonZero(args[1].(IntValue))
	case OpIRem:
		return args[0].(IntValue) % nonZero(args[1].(IntValue))
	case OpINeg:
		return -args[0].(IntValue)
	case OpFAdd:
		return args[0].(FloatValue) + args[1].(FloatValue)
	case OpFSub:
		return args[0].(FloatValue) - args[1].(FloatValue)
	case OpFMul:
		return args[0].(FloatValue) * args[1].(FloatValue)
	case OpFDiv:
		return args[0].(FloatValue) / args[1].(FloatValue)
	case OpFNeg:
		return -args[0].(FloatValue)
	case OpIEq:
		return BoolValue(args[0].(IntValue) == args[1].(IntValue))
	case OpINeq:
		return BoolValue(args[0].(IntValue) != args[1].(IntValue))
	case OpILt:
		return BoolValue(args[0].(IntValue) < args[1].(IntValue))
	case OpILtEq:
		return BoolValue(args[0].(IntValue) <= args[1].(IntValue))
	case OpIGt:
		return BoolValue(args[0].(IntValue) > args[1].(IntValue))
	case OpIGtEq:
		return BoolValue(args[0].(IntValue) >= args[1].(IntValue))
	case OpFEq:
		return BoolValue(args[0].(FloatValue) == args[1].(FloatValue))
	case OpFLt:
		return BoolValue(args[0].(FloatValue) < args[1].(FloatValue))
	case OpFLtEq:
		return BoolValue(args[0].(FloatValue) <= args[1].(FloatValue))
	case OpFGt:
		return BoolValue(args[0].(FloatValue) > args[1].(FloatValue))
	case OpFGtEq:
		return BoolValue(args[0].(FloatValue) >= args[1].(FloatValue))
	case OpBEq:
		return BoolValue(args[0].(BoolValue) == args[1].(BoolValue))
	case OpLAnd:
		return args[0].(BoolValue) && args[1].(BoolValue)
	case OpLOr:
		return args[0].(BoolValue) || args[1].(BoolValue)
	case OpLNot:
		return !args[0].(BoolValue)
	case OpSConcat:
		return args[0].(StringValue) + args[1].(StringValue)
	default:
		panic("ir: unknown native operation")
	}
}

// nonZero guards an integer divisor.  A zero divisor raises a runtime error
// through the same panic protocol compile errors use, so the unit boundary
// recovers it and the driver keeps running.  Float division is not guarded: it
// follows IEEE semantics and yields an infinity.
func nonZero(divisor IntValue) IntValue {
	if divisor == 0 {
		panic(report.Raise(report.ErrDivideByZero, nil, "integer division by zero"))
	}

	return divisor
}
