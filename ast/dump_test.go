package ast

import (
	"testing"

	"ternc/common"
	"ternc/report"
)

// sp builds a text span from one-indexed positions, matching how spans print.
func sp(startLine, startCol, endLine, endCol int) *report.TextSpan {
	return &report.TextSpan{
		StartLine: startLine - 1,
		StartCol:  startCol - 1,
		EndLine:   endLine - 1,
		EndCol:    endCol - 1,
	}
}

func TestDumpIfStatement(t *testing.T) {
	// if (true) 1 + 2;
	cond := &BoolLit{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 5, 1, 9))), Value: true}
	sum := &Call{
		ExprBase: NewExprBase(NewASTBaseOn(sp(1, 11, 1, 16))),
		Func:     &OperatorExpr{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 13, 1, 14))), Op: common.OpAdd},
		Args: []ASTExpr{
			&IntLit{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 11, 1, 12))), Value: 1},
			&IntLit{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 15, 1, 16))), Value: 2},
		},
	}
	node := &If{
		StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 1, 1, 17))),
		Cond:     cond,
		Then:     &ExprStmt{StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 11, 1, 17))), Expr: sum},
	}

	want := `1:1-1:17 if
  1:5-1:9 boolean(true)
then
  1:11-1:17 expression statement
    1:11-1:16 call
      1:13-1:14 operator(add)
    args(2):
      1:11-1:12 integer(1)
      1:15-1:16 integer(2)
end if
`

	if got := Dump(node); got != want {
		t.Errorf("dump mismatch:\n--- want ---\n%s--- got ---\n%s", want, got)
	}
}

func TestDumpVarDecl(t *testing.T) {
	// let x: int = 3;
	node := &VarDecl{
		StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 1, 1, 16))),
		Pattern:  &IdentPattern{ASTBase: NewASTBaseOn(sp(1, 5, 1, 6)), Name: "x"},
		Type:     &TypeName{ASTBase: NewASTBaseOn(sp(1, 8, 1, 11)), Name: "int"},
		Init:     &IntLit{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 14, 1, 15))), Value: 3},
	}

	want := `1:1-1:16 decl
  1:5-1:6 identifier pattern(x)
  1:8-1:11 type name(int)
  1:14-1:15 integer(3)
`

	if got := Dump(node); got != want {
		t.Errorf("dump mismatch:\n--- want ---\n%s--- got ---\n%s", want, got)
	}
}

func TestDumpWhileWithBreakAndContinue(t *testing.T) {
	node := &While{
		StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 1, 3, 2))),
		Cond:     &BoolLit{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 8, 1, 12))), Value: true},
		Body: &Block{
			StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 14, 3, 2))),
			Stmts: []ASTStmt{
				&Break{StmtBase: NewStmtBase(NewASTBaseOn(sp(2, 3, 2, 8)))},
				&Continue{StmtBase: NewStmtBase(NewASTBaseOn(sp(2, 10, 2, 18)))},
				&ExprStmt{StmtBase: NewStmtBase(NewASTBaseOn(sp(2, 20, 2, 21)))},
			},
		},
	}

	want := `1:1-3:2 while
  1:8-1:12 boolean(true)
do
  1:14-3:2 block
    2:3-2:8 break
    2:10-2:18 continue
    2:20-2:21 expression statement (empty)
  end block
end while
`

	if got := Dump(node); got != want {
		t.Errorf("dump mismatch:\n--- want ---\n%s--- got ---\n%s", want, got)
	}
}

func TestDumpFuncDef(t *testing.T) {
	node := &FuncDef{
		StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 1, 1, 30))),
		Name:     "ident",
		Params: []FuncParam{
			{Name: "x", Type: &TypeName{ASTBase: NewASTBaseOn(sp(1, 12, 1, 15)), Name: "int"}},
		},
		ReturnType: &TypeName{ASTBase: NewASTBaseOn(sp(1, 20, 1, 23)), Name: "int"},
		Body: &Block{
			StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 24, 1, 30))),
			Stmts: []ASTStmt{
				&Return{
					StmtBase: NewStmtBase(NewASTBaseOn(sp(1, 26, 1, 32))),
					Expr:     &Identifier{ExprBase: NewExprBase(NewASTBaseOn(sp(1, 33, 1, 34))), Name: "x"},
				},
			},
		},
	}

	want := `1:1-1:30 function(ident)
  param(x)
    1:12-1:15 type name(int)
returns
  1:20-1:23 type name(int)
do
  1:24-1:30 block
    1:26-1:32 return
      1:33-1:34 identifier(x)
  end block
end function
`

	if got := Dump(node); got != want {
		t.Errorf("dump mismatch:\n--- want ---\n%s--- got ---\n%s", want, got)
	}
}
