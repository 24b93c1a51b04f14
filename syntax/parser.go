package syntax

import (
	"ternc/ast"
	"ternc/common"
	"ternc/report"
)

// Parser parses one unit of Tern source text into AST nodes.  Operator
// applications parse into calls whose callee is an operator expression, so
// the lowering phase sees one uniform call shape.
type Parser struct {
	lexer *Lexer

	// The token currently being examined.
	tok *Token
}

// NewParser creates a parser over the given source text, primed on its first
// token.
func NewParser(src string) *Parser {
	p := &Parser{lexer: NewLexer(src)}
	p.next()
	return p
}

// ParseFile parses a whole unit of source text: a sequence of top-level
// function definitions and statements, in order.
func ParseFile(src string) (stmts []ast.ASTStmt, err error) {
	defer report.CatchErrors(&err)

	p := NewParser(src)
	for p.tok.Kind != TOK_EOF {
		stmts = append(stmts, p.parseTopLevel())
	}

	return
}

// ParseStmt parses a single top-level statement or function definition, as
// entered at the REPL.
func ParseStmt(src string) (stmt ast.ASTStmt, err error) {
	defer report.CatchErrors(&err)

	p := NewParser(src)
	stmt = p.parseTopLevel()
	p.expect(TOK_EOF)
	return
}

// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// expect consumes and returns a token of the given kind, rejecting any other.
func (p *Parser) expect(kind int) *Token {
	if p.tok.Kind != kind {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// accept consumes the current token if it is of the given kind.
func (p *Parser) accept(kind int) *Token {
	if p.tok.Kind != kind {
		return nil
	}

	tok := p.tok
	p.next()
	return tok
}

// reject aborts parsing at the current token.
func (p *Parser) reject() {
	if p.tok.Kind == TOK_EOF {
		panic(report.Raise(report.ErrParse, p.tok.Span, "unexpected end of input"))
	}

	panic(report.Raise(report.ErrParse, p.tok.Span, "unexpected token: `%s`", p.tok.Value))
}

// -----------------------------------------------------------------------------

func (p *Parser) parseTopLevel() ast.ASTStmt {
	if p.tok.Kind == TOK_FUNC {
		return p.parseFuncDef()
	}

	return p.parseStmt()
}

// parseFuncDef parses `func name(param: type, ...) [-> type] { ... }`.
func (p *Parser) parseFuncDef() *ast.FuncDef {
	funcTok := p.expect(TOK_FUNC)
	nameTok := p.expect(TOK_IDENT)

	p.expect(TOK_LPAREN)
	var params []ast.FuncParam
	for p.tok.Kind != TOK_RPAREN {
		if len(params) > 0 {
			p.expect(TOK_COMMA)
		}

		paramName := p.expect(TOK_IDENT)
		p.expect(TOK_COLON)
		params = append(params, ast.FuncParam{Name: paramName.Value, Type: p.parseTypeName()})
	}
	p.expect(TOK_RPAREN)

	var returnType *ast.TypeName
	if p.accept(TOK_ARROW) != nil {
		returnType = p.parseTypeName()
	}

	body := p.parseBlock()

	return &ast.FuncDef{
		StmtBase:   ast.NewStmtBase(ast.NewASTBaseOver(funcTok.Span, body.Span())),
		Name:       nameTok.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

func (p *Parser) parseTypeName() *ast.TypeName {
	tok := p.expect(TOK_IDENT)
	return &ast.TypeName{ASTBase: ast.NewASTBaseOn(tok.Span), Name: tok.Value}
}

// -----------------------------------------------------------------------------

func (p *Parser) parseStmt() ast.ASTStmt {
	switch p.tok.Kind {
	case TOK_LET:
		return p.parseVarDecl()
	case TOK_LBRACE:
		return p.parseBlock()
	case TOK_IF:
		return p.parseIf()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_BREAK:
		tok := p.expect(TOK_BREAK)
		p.expect(TOK_SEMICOLON)
		return &ast.Break{StmtBase: ast.NewStmtBase(ast.NewASTBaseOn(tok.Span))}
	case TOK_CONTINUE:
		tok := p.expect(TOK_CONTINUE)
		p.expect(TOK_SEMICOLON)
		return &ast.Continue{StmtBase: ast.NewStmtBase(ast.NewASTBaseOn(tok.Span))}
	case TOK_RETURN:
		tok := p.expect(TOK_RETURN)

		var expr ast.ASTExpr
		if p.tok.Kind != TOK_SEMICOLON {
			expr = p.parseExpr()
		}

		p.expect(TOK_SEMICOLON)
		return &ast.Return{StmtBase: ast.NewStmtBase(ast.NewASTBaseOn(tok.Span)), Expr: expr}
	case TOK_SEMICOLON:
		tok := p.expect(TOK_SEMICOLON)
		return &ast.ExprStmt{StmtBase: ast.NewStmtBase(ast.NewASTBaseOn(tok.Span))}
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses `let pattern [: type] [= initializer];`.  At least one
// of the type annotation and the initializer must be present.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	letTok := p.expect(TOK_LET)
	nameTok := p.expect(TOK_IDENT)
	pattern := &ast.IdentPattern{ASTBase: ast.NewASTBaseOn(nameTok.Span), Name: nameTok.Value}

	var typeName *ast.TypeName
	if p.accept(TOK_COLON) != nil {
		typeName = p.parseTypeName()
	}

	var init ast.ASTExpr
	if p.accept(TOK_ASSIGN) != nil {
		init = p.parseExpr()
	}

	if typeName == nil && init == nil {
		panic(report.Raise(report.ErrParse, nameTok.Span,
			"declaration of `%s` requires a type annotation or an initializer", nameTok.Value))
	}

	endTok := p.expect(TOK_SEMICOLON)
	return &ast.VarDecl{
		StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(letTok.Span, endTok.Span)),
		Pattern:  pattern,
		Type:     typeName,
		Init:     init,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	openTok := p.expect(TOK_LBRACE)

	var stmts []ast.ASTStmt
	for p.tok.Kind != TOK_RBRACE {
		stmts = append(stmts, p.parseStmt())
	}

	closeTok := p.expect(TOK_RBRACE)
	return &ast.Block{StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(openTok.Span, closeTok.Span)), Stmts: stmts}
}

func (p *Parser) parseIf() *ast.If {
	ifTok := p.expect(TOK_IF)
	p.expect(TOK_LPAREN)
	cond := p.parseExpr()
	p.expect(TOK_RPAREN)

	thenStmt := p.parseStmt()

	var elseStmt ast.ASTStmt
	endSpan := thenStmt.Span()
	if p.accept(TOK_ELSE) != nil {
		elseStmt = p.parseStmt()
		endSpan = elseStmt.Span()
	}

	return &ast.If{
		StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(ifTok.Span, endSpan)),
		Cond:     cond,
		Then:     thenStmt,
		Else:     elseStmt,
	}
}

func (p *Parser) parseWhile() *ast.While {
	whileTok := p.expect(TOK_WHILE)
	p.expect(TOK_LPAREN)
	cond := p.parseExpr()
	p.expect(TOK_RPAREN)

	body := p.parseStmt()
	return &ast.While{
		StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(whileTok.Span, body.Span())),
		Cond:     cond,
		Body:     body,
	}
}

// assignOps maps assignment token kinds to their operators.
var assignOps = map[int]common.Operator{
	TOK_ASSIGN:       common.OpAssign,
	TOK_PLUSASSIGN:   common.OpAddAssign,
	TOK_MINUSASSIGN:  common.OpSubAssign,
	TOK_STARASSIGN:   common.OpMulAssign,
	TOK_DIVASSIGN:    common.OpDivAssign,
	TOK_MODASSIGN:    common.OpRemAssign,
	TOK_BWANDASSIGN:  common.OpBitAndAssign,
	TOK_BWORASSIGN:   common.OpBitOrAssign,
	TOK_BWXORASSIGN:  common.OpBitXorAssign,
	TOK_LSHIFTASSIGN: common.OpLeftShiftAssign,
	TOK_RSHIFTASSIGN: common.OpRightShiftAssign,
}

// parseExprStmt parses an expression statement, including the optional
// trailing assignment which binds loosest of all operators.
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()

	if op, ok := assignOps[p.tok.Kind]; ok {
		opTok := p.tok
		p.next()

		rhs := p.parseExpr()
		expr = p.operApp(opTok, op, expr, rhs)
	}

	endTok := p.expect(TOK_SEMICOLON)
	return &ast.ExprStmt{
		StmtBase: ast.NewStmtBase(ast.NewASTBaseOver(expr.Span(), endTok.Span)),
		Expr:     expr,
	}
}
