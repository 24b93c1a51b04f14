package syntax

import (
	"strings"
	"unicode"

	"ternc/report"
)

// Lexer is responsible for tokenizing one unit of source text.
type Lexer struct {
	src []rune
	pos int

	line, col           int
	startLine, startCol int

	tokBuff strings.Builder
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this is an EOF token.  Malformed input panics with a parse error;
// the parser's exported entry points recover it.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '#':
			l.skipLineComment()
		case '"':
			return l.lexStringLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			}

			return l.lexPunctOrOper()
		}
	}

	return l.makeToken(TOK_EOF, "")
}

// -----------------------------------------------------------------------------

// peek returns the rune at the current position, or -1 at the end of input.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	return l.src[l.pos]
}

// skip advances past the current rune without recording it.
func (l *Lexer) skip() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	l.pos++
}

// eat advances past the current rune, recording it into the token buffer.
func (l *Lexer) eat() {
	l.tokBuff.WriteRune(l.src[l.pos])
	l.skip()
}

// mark records the current position as the start of a token.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
	l.tokBuff.Reset()
}

// makeToken builds a token of the given kind spanning from the last mark to
// the current position.
func (l *Lexer) makeToken(kind int, value string) *Token {
	return &Token{
		Kind:  kind,
		Value: value,
		Span: &report.TextSpan{
			StartLine: l.startLine,
			StartCol:  l.startCol,
			EndLine:   l.line,
			EndCol:    l.col,
		},
	}
}

// fail aborts lexing with a parse error at the current position.
func (l *Lexer) fail(msg string, args ...interface{}) {
	span := &report.TextSpan{StartLine: l.line, StartCol: l.col, EndLine: l.line, EndCol: l.col + 1}
	panic(report.Raise(report.ErrParse, span, msg, args...))
}

// -----------------------------------------------------------------------------

func (l *Lexer) skipLineComment() {
	for c := l.peek(); c != -1 && c != '\n'; c = l.peek() {
		l.skip()
	}
}

func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()

	for c := l.peek(); isFirstIdentChar(c) || isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	value := l.tokBuff.String()
	if kind, ok := keywords[value]; ok {
		return l.makeToken(kind, value)
	}

	return l.makeToken(TOK_IDENT, value)
}

func (l *Lexer) lexNumericLit() *Token {
	l.mark()

	for isDecimalDigit(l.peek()) {
		l.eat()
	}

	// A dot followed by a digit makes this a float literal.
	if l.peek() == '.' && l.pos+1 < len(l.src) && isDecimalDigit(l.src[l.pos+1]) {
		l.eat()

		for isDecimalDigit(l.peek()) {
			l.eat()
		}

		return l.makeToken(TOK_FLOATLIT, l.tokBuff.String())
	}

	return l.makeToken(TOK_INTLIT, l.tokBuff.String())
}

func (l *Lexer) lexStringLit() *Token {
	l.mark()
	l.skip() // opening quote

	for {
		c := l.peek()
		switch c {
		case -1, '\n':
			l.fail("unterminated string literal")
		case '"':
			l.skip()
			return l.makeToken(TOK_STRINGLIT, l.tokBuff.String())
		case '\\':
			l.skip()
			switch l.peek() {
			case 'n':
				l.tokBuff.WriteRune('\n')
			case 't':
				l.tokBuff.WriteRune('\t')
			case '\\':
				l.tokBuff.WriteRune('\\')
			case '"':
				l.tokBuff.WriteRune('"')
			default:
				l.fail("unknown escape sequence")
			}
			l.skip()
		default:
			l.eat()
		}
	}
}

// punctKinds maps single- and multi-rune punctuation and operator strings to
// token kinds.  Lexing is greedy: the longest match wins.
var punctKinds = map[string]int{
	"+":   TOK_PLUS,
	"-":   TOK_MINUS,
	"*":   TOK_STAR,
	"/":   TOK_DIV,
	"%":   TOK_MOD,
	"==":  TOK_EQ,
	"!=":  TOK_NEQ,
	"<":   TOK_LT,
	">":   TOK_GT,
	"<=":  TOK_LTEQ,
	">=":  TOK_GTEQ,
	"&&":  TOK_AND,
	"||":  TOK_OR,
	"!":   TOK_NOT,
	"&":   TOK_BWAND,
	"|":   TOK_BWOR,
	"^":   TOK_BWXOR,
	"~":   TOK_BWNOT,
	"<<":  TOK_LSHIFT,
	">>":  TOK_RSHIFT,
	"=":   TOK_ASSIGN,
	"+=":  TOK_PLUSASSIGN,
	"-=":  TOK_MINUSASSIGN,
	"*=":  TOK_STARASSIGN,
	"/=":  TOK_DIVASSIGN,
	"%=":  TOK_MODASSIGN,
	"&=":  TOK_BWANDASSIGN,
	"|=":  TOK_BWORASSIGN,
	"^=":  TOK_BWXORASSIGN,
	"<<=": TOK_LSHIFTASSIGN,
	">>=": TOK_RSHIFTASSIGN,
	"++":  TOK_INC,
	"--":  TOK_DEC,
	"(":   TOK_LPAREN,
	")":   TOK_RPAREN,
	"{":   TOK_LBRACE,
	"}":   TOK_RBRACE,
	",":   TOK_COMMA,
	";":   TOK_SEMICOLON,
	":":   TOK_COLON,
	"->":  TOK_ARROW,
}

func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()

	l.eat()
	kind, ok := punctKinds[l.tokBuff.String()]
	if !ok {
		l.fail("unexpected character: `%s`", l.tokBuff.String())
	}

	// Greedily extend the token while a longer operator still matches.
	for l.peek() != -1 {
		longer, ok := punctKinds[l.tokBuff.String()+string(l.peek())]
		if !ok {
			break
		}

		kind = longer
		l.eat()
	}

	return l.makeToken(kind, l.tokBuff.String())
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}
