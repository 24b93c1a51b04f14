package syntax

import (
	"strconv"

	"ternc/ast"
	"ternc/common"
	"ternc/report"
)

// binaryPrecedence lists the binary operator levels from loosest to tightest
// binding.  All binary operators are left-associative.
var binaryPrecedence = []map[int]common.Operator{
	{TOK_OR: common.OpLogicalOr},
	{TOK_AND: common.OpLogicalAnd},
	{
		TOK_EQ:   common.OpEqual,
		TOK_NEQ:  common.OpNotEqual,
		TOK_LT:   common.OpLess,
		TOK_LTEQ: common.OpLessEqual,
		TOK_GT:   common.OpGreater,
		TOK_GTEQ: common.OpGreaterEqual,
	},
	{TOK_BWOR: common.OpBitOr},
	{TOK_BWXOR: common.OpBitXor},
	{TOK_BWAND: common.OpBitAnd},
	{TOK_LSHIFT: common.OpLeftShift, TOK_RSHIFT: common.OpRightShift},
	{TOK_PLUS: common.OpAdd, TOK_MINUS: common.OpSub},
	{TOK_STAR: common.OpMul, TOK_DIV: common.OpDiv, TOK_MOD: common.OpRem},
}

// prefixOps maps prefix operator token kinds to their operators.
var prefixOps = map[int]common.Operator{
	TOK_PLUS:  common.OpPlus,
	TOK_MINUS: common.OpMinus,
	TOK_NOT:   common.OpLogicalNot,
	TOK_BWNOT: common.OpBitNot,
	TOK_INC:   common.OpPreInc,
	TOK_DEC:   common.OpPreDec,
}

// parseExpr parses an expression.
func (p *Parser) parseExpr() ast.ASTExpr {
	return p.parseBinary(0)
}

// parseBinary parses the binary operator level at the given precedence
// index, descending into tighter levels for its operands.
func (p *Parser) parseBinary(level int) ast.ASTExpr {
	if level == len(binaryPrecedence) {
		return p.parseUnary()
	}

	lhs := p.parseBinary(level + 1)

	for {
		op, ok := binaryPrecedence[level][p.tok.Kind]
		if !ok {
			return lhs
		}

		opTok := p.tok
		p.next()

		rhs := p.parseBinary(level + 1)
		lhs = p.operApp(opTok, op, lhs, rhs)
	}
}

// parseUnary parses prefix operator applications.
func (p *Parser) parseUnary() ast.ASTExpr {
	if op, ok := prefixOps[p.tok.Kind]; ok {
		opTok := p.tok
		p.next()

		operand := p.parseUnary()
		return p.operApp(opTok, op, operand)
	}

	return p.parsePostfix()
}

// parsePostfix parses call applications and postfix increment/decrement.
func (p *Parser) parsePostfix() ast.ASTExpr {
	expr := p.parseAtom()

	for {
		switch p.tok.Kind {
		case TOK_LPAREN:
			p.next()

			var args []ast.ASTExpr
			for p.tok.Kind != TOK_RPAREN {
				if len(args) > 0 {
					p.expect(TOK_COMMA)
				}

				args = append(args, p.parseExpr())
			}

			closeTok := p.expect(TOK_RPAREN)
			expr = &ast.Call{
				ExprBase: ast.NewExprBase(ast.NewASTBaseOver(expr.Span(), closeTok.Span)),
				Func:     expr,
				Args:     args,
			}
		case TOK_INC:
			expr = p.operApp(p.tok, common.OpPostInc, expr)
			p.next()
		case TOK_DEC:
			expr = p.operApp(p.tok, common.OpPostDec, expr)
			p.next()
		default:
			return expr
		}
	}
}

// parseAtom parses literals, identifiers, and parenthesized expressions.
func (p *Parser) parseAtom() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_INTLIT:
		tok := p.tok
		p.next()

		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			panic(report.Raise(report.ErrParse, tok.Span, "integer literal out of range: `%s`", tok.Value))
		}

		return &ast.IntLit{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)), Value: value}
	case TOK_FLOATLIT:
		tok := p.tok
		p.next()

		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			panic(report.Raise(report.ErrParse, tok.Span, "float literal out of range: `%s`", tok.Value))
		}

		return &ast.FloatLit{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)), Value: value}
	case TOK_STRINGLIT:
		tok := p.tok
		p.next()
		return &ast.StringLit{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)), Value: tok.Value}
	case TOK_TRUE, TOK_FALSE:
		tok := p.tok
		p.next()
		return &ast.BoolLit{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)), Value: tok.Kind == TOK_TRUE}
	case TOK_IDENT:
		tok := p.tok
		p.next()
		return &ast.Identifier{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(tok.Span)), Name: tok.Value}
	case TOK_LPAREN:
		p.next()
		expr := p.parseExpr()
		p.expect(TOK_RPAREN)
		return expr
	default:
		p.reject()
	}

	// unreachable
	return nil
}

// operApp builds the call node for an operator application.
func (p *Parser) operApp(opTok *Token, op common.Operator, operands ...ast.ASTExpr) *ast.Call {
	span := report.NewSpanOver(operands[0].Span(), operands[len(operands)-1].Span())
	if opTok.Span.StartLine < span.StartLine ||
		(opTok.Span.StartLine == span.StartLine && opTok.Span.StartCol < span.StartCol) {
		span = report.NewSpanOver(opTok.Span, span)
	}

	return &ast.Call{
		ExprBase: ast.NewExprBase(ast.NewASTBaseOn(span)),
		Func:     &ast.OperatorExpr{ExprBase: ast.NewExprBase(ast.NewASTBaseOn(opTok.Span)), Op: op},
		Args:     operands,
	}
}
