package syntax

import "ternc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.  The value of a string token
	// has the leading quotes trimmed off for convenience.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_LET = iota
	TOK_FUNC

	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_BREAK
	TOK_CONTINUE
	TOK_RETURN

	TOK_TRUE
	TOK_FALSE

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_STRINGLIT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_AND
	TOK_OR
	TOK_NOT

	TOK_BWAND
	TOK_BWOR
	TOK_BWXOR
	TOK_BWNOT

	TOK_LSHIFT
	TOK_RSHIFT

	TOK_ASSIGN
	TOK_PLUSASSIGN
	TOK_MINUSASSIGN
	TOK_STARASSIGN
	TOK_DIVASSIGN
	TOK_MODASSIGN
	TOK_BWANDASSIGN
	TOK_BWORASSIGN
	TOK_BWXORASSIGN
	TOK_LSHIFTASSIGN
	TOK_RSHIFTASSIGN

	TOK_INC
	TOK_DEC

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COMMA
	TOK_SEMICOLON
	TOK_COLON
	TOK_ARROW

	TOK_EOF
)

// keywords maps keyword strings to their token kinds.
var keywords = map[string]int{
	"let":      TOK_LET,
	"func":     TOK_FUNC,
	"if":       TOK_IF,
	"else":     TOK_ELSE,
	"while":    TOK_WHILE,
	"break":    TOK_BREAK,
	"continue": TOK_CONTINUE,
	"return":   TOK_RETURN,
	"true":     TOK_TRUE,
	"false":    TOK_FALSE,
}
