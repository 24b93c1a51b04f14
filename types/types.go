package types

import "strings"

// Type is the parent interface for all Tern data types.  Type instances are
// interned by a Registry: within one compilation context, two types are equal
// if and only if they are the same instance, so type comparison everywhere in
// the compiler is pointer identity.  Never construct types directly; always
// go through a Registry.
type Type interface {
	// Repr returns a representative string of the type for purposes of error
	// reporting.
	Repr() string
}

// -----------------------------------------------------------------------------

// PrimKind enumerates the primitive types.
type PrimKind int

const (
	PrimInt PrimKind = iota
	PrimBool
	PrimFloat
	PrimString
	PrimUnit
)

// PrimType represents a primitive type.  Each Registry owns exactly one
// instance per primitive kind.
type PrimType struct {
	Kind PrimKind
}

func (pt *PrimType) Repr() string {
	switch pt.Kind {
	case PrimInt:
		return "int"
	case PrimBool:
		return "bool"
	case PrimFloat:
		return "float"
	case PrimString:
		return "string"
	default:
		// PrimUnit
		return "unit"
	}
}

// -----------------------------------------------------------------------------

// FuncType represents a function type.  Function types are interned
// structurally by the Registry: two requests with identical parameter
// sequences and return types yield the same instance.
type FuncType struct {
	ParamTypes []Type
	ReturnType Type
}

func (ft *FuncType) Repr() string {
	sb := strings.Builder{}

	sb.WriteRune('(')

	for i, param := range ft.ParamTypes {
		sb.WriteString(param.Repr())

		if i < len(ft.ParamTypes)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.ReturnType.Repr())

	return sb.String()
}
