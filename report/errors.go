package report

import "fmt"

// ErrorKind enumerates the kinds of compilation errors ternc can produce.
// Every error is one of these kinds so that drivers and tests can dispatch on
// the cause rather than on message text.
type ErrorKind int

const (
	ErrParse                ErrorKind = iota // Malformed source text.
	ErrUnresolvedIdentifier                  // Name lookup failed in all visible scopes.
	ErrUnknownTypeName                       // A type annotation named no known type.
	ErrNoMatchingOverload                    // No overload matched the argument types exactly.
	ErrDeclTypeMismatch                      // Declared type and initializer type disagree.
	ErrAssignTypeMismatch                    // Assignment target and value types disagree.
	ErrCondTypeMismatch                      // A condition expression is not boolean.
	ErrReturnTypeMismatch                    // Returned type disagrees with the enclosing return type.
	ErrBreakOutsideLoop                      // `break` with no enclosing loop.
	ErrContinueOutsideLoop                   // `continue` with no enclosing loop.
	ErrDivideByZero                          // Integer division or remainder by zero at run time.
)

// Label returns the short display label for an error kind.
func (ek ErrorKind) Label() string {
	switch ek {
	case ErrParse:
		return "syntax"
	case ErrUnresolvedIdentifier, ErrUnknownTypeName:
		return "name"
	case ErrNoMatchingOverload:
		return "operator"
	case ErrDivideByZero:
		return "runtime"
	default:
		return "type"
	}
}

// CompileError is a compilation error tied to a span of source text.  During
// lowering these are thrown with `panic` via Raise and caught at the unit
// boundary; exported entry points hand them back as ordinary `error` values.
type CompileError struct {
	// The kind of the error.
	Kind ErrorKind

	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise creates a new compile error of the given kind.
func Raise(kind ErrorKind, span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// CatchErrors converts a compile error thrown by `panic` during lowering of a
// single top-level unit into an ordinary error return.  Lowering within one
// unit is fail-fast; the caller decides whether to keep going with the next
// unit.  Unknown panics are re-thrown.
// NB: This function must ALWAYS be deferred.
func CatchErrors(err *error) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*CompileError); ok {
			*err = cerr
		} else {
			panic(x)
		}
	}
}
