package ir

import (
	"fmt"
	"strconv"
)

// Value is the runtime representation of a Tern value.  Values are produced
// by evaluating IR expressions against a call frame.
type Value interface {
	// Repr returns the display form of the value, used by the driver and REPL
	// to present results.
	Repr() string
}

// IntValue is a 64-bit signed integer value.  Arithmetic on it wraps with
// two's-complement semantics.
type IntValue int64

func (iv IntValue) Repr() string {
	return strconv.FormatInt(int64(iv), 10)
}

// FloatValue is a 64-bit floating-point value.
type FloatValue float64

func (fv FloatValue) Repr() string {
	return strconv.FormatFloat(float64(fv), 'g', -1, 64)
}

// BoolValue is a boolean value.
type BoolValue bool

func (bv BoolValue) Repr() string {
	return strconv.FormatBool(bool(bv))
}

// StringValue is a string value.
type StringValue string

func (sv StringValue) Repr() string {
	return string(sv)
}

// UnitValue is the value of statements and of functions which return nothing.
// It is also the initial content of every frame slot.
type UnitValue struct{}

func (UnitValue) Repr() string {
	return "unit"
}

// -----------------------------------------------------------------------------

// NativeFunc is a function value backed by a fixed host operation.  Built-in
// operator overloads are implemented as these.
type NativeFunc struct {
	Op NativeOp
}

func (nf NativeFunc) Repr() string {
	return fmt.Sprintf("<native %d>", nf.Op)
}

// FuncRef is a function value referring to a lowered user function.  The
// referenced graph is immutable and shared: every call gets a fresh frame.
type FuncRef struct {
	Def *FuncDef
}

func (fr FuncRef) Repr() string {
	return "<func>"
}
