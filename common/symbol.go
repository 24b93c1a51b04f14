package common

import (
	"ternc/report"
	"ternc/types"
)

// Symbol represents a named local binding produced by a declaration or a
// function parameter.  It ties the name to a frame slot and the slot's static
// type for the rest of lowering.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The frame slot the symbol is stored in.
	Slot int

	// The static type of the symbol.
	Type types.Type

	// The span of the symbol's declaration.
	DefSpan *report.TextSpan
}
