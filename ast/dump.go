package ast

import (
	"fmt"
	"strconv"
	"strings"

	"ternc/report"
)

// Dump renders the textual debug form of an AST.  Every node variant has a
// fixed label and indentation is two spaces per depth level; this output is
// stable and serves as a golden test surface.
func Dump(node ASTNode) string {
	d := dumper{}
	d.dumpNode(node, 0)
	return d.sb.String()
}

type dumper struct {
	sb strings.Builder
}

// line writes one dump line carrying a node's span and label.
func (d *dumper) line(depth int, span *report.TextSpan, label string) {
	d.sb.WriteString(strings.Repeat("  ", depth))
	d.sb.WriteString(span.String())
	d.sb.WriteRune(' ')
	d.sb.WriteString(label)
	d.sb.WriteRune('\n')
}

// bare writes one dump line with no span: a structural marker like `do` or
// `end while`.
func (d *dumper) bare(depth int, label string) {
	d.sb.WriteString(strings.Repeat("  ", depth))
	d.sb.WriteString(label)
	d.sb.WriteRune('\n')
}

func (d *dumper) dumpNode(node ASTNode, depth int) {
	switch v := node.(type) {
	case *Identifier:
		d.line(depth, v.Span(), fmt.Sprintf("identifier(%s)", v.Name))
	case *IntLit:
		d.line(depth, v.Span(), fmt.Sprintf("integer(%d)", v.Value))
	case *FloatLit:
		d.line(depth, v.Span(), fmt.Sprintf("float(%s)", strconv.FormatFloat(v.Value, 'g', -1, 64)))
	case *StringLit:
		d.line(depth, v.Span(), fmt.Sprintf("string(%s)", v.Value))
	case *BoolLit:
		d.line(depth, v.Span(), fmt.Sprintf("boolean(%t)", v.Value))
	case *Call:
		d.line(depth, v.Span(), "call")
		d.dumpNode(v.Func, depth+1)
		d.bare(depth, fmt.Sprintf("args(%d):", len(v.Args)))
		for _, arg := range v.Args {
			d.dumpNode(arg, depth+1)
		}
	case *OperatorExpr:
		d.line(depth, v.Span(), fmt.Sprintf("operator(%s)", v.Op.Repr()))
	case *TypeName:
		d.line(depth, v.Span(), fmt.Sprintf("type name(%s)", v.Name))
	case *IdentPattern:
		d.line(depth, v.Span(), fmt.Sprintf("identifier pattern(%s)", v.Name))
	case *ExprStmt:
		if v.Expr != nil {
			d.line(depth, v.Span(), "expression statement")
			d.dumpNode(v.Expr, depth+1)
		} else {
			d.line(depth, v.Span(), "expression statement (empty)")
		}
	case *Block:
		d.line(depth, v.Span(), "block")
		for _, stmt := range v.Stmts {
			d.dumpNode(stmt, depth+1)
		}
		d.bare(depth, "end block")
	case *If:
		d.line(depth, v.Span(), "if")
		d.dumpNode(v.Cond, depth+1)
		d.bare(depth, "then")
		d.dumpNode(v.Then, depth+1)
		if v.Else != nil {
			d.bare(depth, "else")
			d.dumpNode(v.Else, depth+1)
		}
		d.bare(depth, "end if")
	case *While:
		d.line(depth, v.Span(), "while")
		d.dumpNode(v.Cond, depth+1)
		d.bare(depth, "do")
		d.dumpNode(v.Body, depth+1)
		d.bare(depth, "end while")
	case *Break:
		d.line(depth, v.Span(), "break")
	case *Continue:
		d.line(depth, v.Span(), "continue")
	case *Return:
		d.line(depth, v.Span(), "return")
		if v.Expr != nil {
			d.dumpNode(v.Expr, depth+1)
		}
	case *VarDecl:
		d.line(depth, v.Span(), "decl")
		d.dumpNode(v.Pattern, depth+1)
		if v.Type != nil {
			d.dumpNode(v.Type, depth+1)
		}
		if v.Init != nil {
			d.dumpNode(v.Init, depth+1)
		}
	case *FuncDef:
		d.line(depth, v.Span(), fmt.Sprintf("function(%s)", v.Name))
		for _, param := range v.Params {
			d.bare(depth+1, fmt.Sprintf("param(%s)", param.Name))
			d.dumpNode(param.Type, depth+2)
		}
		if v.ReturnType != nil {
			d.bare(depth, "returns")
			d.dumpNode(v.ReturnType, depth+1)
		}
		d.bare(depth, "do")
		d.dumpNode(v.Body, depth+1)
		d.bare(depth, "end function")
	}
}
