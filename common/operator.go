package common

import (
	"ternc/ir"
	"ternc/types"
)

// Operator enumerates the syntactic operators of Tern.  An operator is not a
// value: it indexes into the compilation context's operator table, which maps
// it to an ordered list of overloads.
type Operator int

const (
	// Unary operators.
	OpPlus Operator = iota
	OpMinus
	OpRecip
	OpLogicalNot
	OpBitNot
	OpPreInc
	OpPreDec
	OpPostInc
	OpPostDec

	// Binary arithmetic operators.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem

	// Shift operators.
	OpLeftShift
	OpRightShift
	OpForwardShift
	OpBackwardShift

	// Comparison operators.
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	// Logical operators.
	OpLogicalAnd
	OpLogicalOr

	// Bitwise operators.
	OpBitAnd
	OpBitOr
	OpBitXor

	// Assignment operators.
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign
	OpLeftShiftAssign
	OpRightShiftAssign
	OpForwardShiftAssign
	OpBackwardShiftAssign

	NumOperators // Total number of operators; not itself an operator.
)

// opNames maps operators to their fixed display names.  These names are part
// of the stable debug dump surface and must not change.
var opNames = map[Operator]string{
	OpPlus:                "plus",
	OpMinus:               "minus",
	OpRecip:               "reciprocal",
	OpLogicalNot:          "logical not",
	OpBitNot:              "bitwise not",
	OpPreInc:              "prefix increment",
	OpPreDec:              "prefix decrement",
	OpPostInc:             "postfix increment",
	OpPostDec:             "postfix decrement",
	OpAdd:                 "add",
	OpSub:                 "sub",
	OpMul:                 "mul",
	OpDiv:                 "div",
	OpRem:                 "rem",
	OpLeftShift:           "left shift",
	OpRightShift:          "right shift",
	OpForwardShift:        "forward shift",
	OpBackwardShift:       "backward shift",
	OpEqual:               "equal to",
	OpNotEqual:            "not equal to",
	OpLess:                "less than",
	OpLessEqual:           "less than or equal to",
	OpGreater:             "greater than",
	OpGreaterEqual:        "greater than or equal to",
	OpLogicalAnd:          "logical and",
	OpLogicalOr:           "logical or",
	OpBitAnd:              "bitwise and",
	OpBitOr:               "bitwise or",
	OpBitXor:              "bitwise xor",
	OpAssign:              "assign",
	OpAddAssign:           "add assign",
	OpSubAssign:           "sub assign",
	OpMulAssign:           "mul assign",
	OpDivAssign:           "div assign",
	OpRemAssign:           "rem assign",
	OpBitAndAssign:        "bitwise and assign",
	OpBitOrAssign:         "bitwise or assign",
	OpBitXorAssign:        "bitwise xor assign",
	OpLeftShiftAssign:     "left shift assign",
	OpRightShiftAssign:    "right shift assign",
	OpForwardShiftAssign:  "forward shift assign",
	OpBackwardShiftAssign: "backward shift assign",
}

// Repr returns the fixed display name of the operator.
func (op Operator) Repr() string {
	return opNames[op]
}

// -----------------------------------------------------------------------------

// Overload is a single entry in an overload list: a function type paired
// with its implementation.  Operator table entries and global function
// overload sets are both built from these.  The order of overload entries is
// significant: overload resolution selects the first entry whose parameter
// types are identical to the argument types.
type Overload struct {
	// The signature of the overload.  Its parameter types are compared by
	// identity against argument types during resolution.
	Signature *types.FuncType

	// The implementation of the overload: a native function value or a
	// reference to a user function definition.
	Impl ir.Value
}
