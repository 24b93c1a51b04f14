package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to mark
// the source text a diagnostic or debug dump refers to.  Spans are inclusive
// on both sides and the line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// String returns the span in `line:col-line:col` form with one-indexed
// positions.  This form is stable: the AST debug dump depends on it.
func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", ts.StartLine+1, ts.StartCol+1, ts.EndLine+1, ts.EndCol+1)
}
