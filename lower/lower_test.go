package lower

import (
	"math"
	"testing"

	"ternc/ast"
	"ternc/common"
	"ternc/ir"
	"ternc/report"
	"ternc/syntax"
	"ternc/types"
)

// runProgram lowers and runs a whole source unit against a fresh context and
// returns the value of the last statement.
func runProgram(t *testing.T, src string) ir.Value {
	t.Helper()

	ctx := NewContext()
	stmts, err := syntax.ParseFile(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	var result ir.Value = ir.UnitValue{}
	for _, stmt := range stmts {
		if fn, ok := stmt.(*ast.FuncDef); ok {
			if err := LowerFuncDef(ctx, fn); err != nil {
				t.Fatalf("lowering `%s` failed: %s", fn.Name, err)
			}

			continue
		}

		if result, err = RunStmt(ctx, stmt); err != nil {
			t.Fatalf("running failed: %s", err)
		}
	}

	return result
}

// expectErrorKind asserts that lowering a source unit fails with the given
// error kind.
func expectErrorKind(t *testing.T, src string, kind report.ErrorKind) {
	t.Helper()

	ctx := NewContext()
	stmts, err := syntax.ParseFile(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	for _, stmt := range stmts {
		if fn, ok := stmt.(*ast.FuncDef); ok {
			err = LowerFuncDef(ctx, fn)
		} else {
			_, err = RunStmt(ctx, stmt)
		}

		if err != nil {
			break
		}
	}

	if err == nil {
		t.Fatalf("expected an error for `%s`", src)
	}

	cerr, ok := err.(*report.CompileError)
	if !ok {
		t.Fatalf("expected a compile error, got %T", err)
	}

	if cerr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d: %s", kind, cerr.Kind, cerr.Message)
	}
}

// lowerOne parses one statement and lowers it without invoking it, so tests
// can inspect the resulting graph.
func lowerOne(t *testing.T, src string) *ir.FuncDef {
	t.Helper()

	stmt, err := syntax.ParseStmt(src)
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	return LowerStmt(NewContext(), stmt)
}

// -----------------------------------------------------------------------------

func TestIntArithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"1 + 2;", 3},
		{"10 - 3 - 2;", 5},
		{"2 + 3 * 4;", 14},
		{"(2 + 3) * 4;", 20},
		{"7 / 2;", 3},
		{"7 % 3;", 1},
		{"-5;", -5},
		{"-(2 * 3) + 1;", -5},
	}

	for _, c := range cases {
		if result := runProgram(t, c.src); result != ir.IntValue(c.want) {
			t.Errorf("`%s`: expected %d, got %s", c.src, c.want, result.Repr())
		}
	}
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"1 == 1;", true},
		{"1 == 2;", false},
		{"1 != 2;", true},
		{"2 < 3;", true},
		{"3 <= 3;", true},
		{"2 > 3;", false},
		{"1.5 < 2.5;", true},
		{"true == false;", false},
	}

	for _, c := range cases {
		if result := runProgram(t, c.src); result != ir.BoolValue(c.want) {
			t.Errorf("`%s`: expected %t, got %s", c.src, c.want, result.Repr())
		}
	}
}

func TestFloatArithmetic(t *testing.T) {
	if result := runProgram(t, "1.5 + 2.25;"); result != ir.FloatValue(3.75) {
		t.Errorf("expected 3.75, got %s", result.Repr())
	}

	if result := runProgram(t, "-2.5 * 2.0;"); result != ir.FloatValue(-5) {
		t.Errorf("expected -5, got %s", result.Repr())
	}
}

func TestLogicalOperators(t *testing.T) {
	if result := runProgram(t, "true && false;"); result != ir.BoolValue(false) {
		t.Error("expected `true && false` to be false")
	}

	if result := runProgram(t, "true || false;"); result != ir.BoolValue(true) {
		t.Error("expected `true || false` to be true")
	}

	if result := runProgram(t, "!true;"); result != ir.BoolValue(false) {
		t.Error("expected `!true` to be false")
	}
}

func TestStringConcat(t *testing.T) {
	if result := runProgram(t, `"foo" + "bar";`); result != ir.StringValue("foobar") {
		t.Errorf("expected `foobar`, got %s", result.Repr())
	}
}

func TestMixedOperandsHaveNoOverload(t *testing.T) {
	expectErrorKind(t, "1 + 2.0;", report.ErrNoMatchingOverload)
	expectErrorKind(t, `1 + "x";`, report.ErrNoMatchingOverload)
	expectErrorKind(t, "true < false;", report.ErrNoMatchingOverload)
}

func TestOverloadResolutionPicksFirstExactMatch(t *testing.T) {
	ctx := NewContext()
	intTy := ctx.Types.GetInt()

	// A duplicate signature registered after the builtin must never win.
	ctx.AddOperOverload(common.OpAdd,
		ctx.Types.GetFunc([]types.Type{intTy, intTy}, intTy),
		ir.NativeFunc{Op: ir.OpISub})

	stmt, err := syntax.ParseStmt("1 + 2;")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	result, err := RunStmt(ctx, stmt)
	if err != nil {
		t.Fatalf("running failed: %s", err)
	}

	if result != ir.IntValue(3) {
		t.Errorf("expected the earlier overload to win, got %s", result.Repr())
	}
}

// -----------------------------------------------------------------------------

func TestDeclAssignAndReturn(t *testing.T) {
	result := runProgram(t, `{
		let x = 1;
		x = x + 2;
		return x;
	}`)

	if result != ir.IntValue(3) {
		t.Errorf("expected 3, got %s", result.Repr())
	}
}

func TestDeclWithoutInitializerGetsDefault(t *testing.T) {
	cases := []struct {
		src  string
		want ir.Value
	}{
		{"{ let x: int; return x; }", ir.IntValue(0)},
		{"{ let x: bool; return x; }", ir.BoolValue(false)},
		{"{ let x: float; return x; }", ir.FloatValue(0)},
		{`{ let x: string; return x; }`, ir.StringValue("")},
	}

	for _, c := range cases {
		if result := runProgram(t, c.src); result != c.want {
			t.Errorf("`%s`: expected %s, got %s", c.src, c.want.Repr(), result.Repr())
		}
	}
}

func TestInnerScopeShadowing(t *testing.T) {
	result := runProgram(t, `{
		let x = 1;
		{
			let x = true;
		}
		return x;
	}`)

	if result != ir.IntValue(1) {
		t.Errorf("expected the outer binding to survive, got %s", result.Repr())
	}
}

func TestInitializerSeesOuterBinding(t *testing.T) {
	result := runProgram(t, `{
		let x = 1;
		{
			let x = x + 1;
			return x;
		}
	}`)

	if result != ir.IntValue(2) {
		t.Errorf("expected 2, got %s", result.Repr())
	}
}

func TestAssignmentToUndefinedSymbol(t *testing.T) {
	expectErrorKind(t, "y = 1;", report.ErrUnresolvedIdentifier)
}

func TestUnresolvedIdentifier(t *testing.T) {
	expectErrorKind(t, "y;", report.ErrUnresolvedIdentifier)
}

func TestUnknownTypeName(t *testing.T) {
	expectErrorKind(t, "let x: banana;", report.ErrUnknownTypeName)
}

func TestDeclTypeMismatch(t *testing.T) {
	expectErrorKind(t, "let x: int = 1.5;", report.ErrDeclTypeMismatch)
}

func TestAssignTypeMismatch(t *testing.T) {
	expectErrorKind(t, "{ let x = 1; x = true; }", report.ErrAssignTypeMismatch)
}

func TestCondTypeMismatch(t *testing.T) {
	expectErrorKind(t, "if (1) {}", report.ErrCondTypeMismatch)
	expectErrorKind(t, "while (0) {}", report.ErrCondTypeMismatch)
}

// -----------------------------------------------------------------------------

func TestWhileLoopAccumulates(t *testing.T) {
	result := runProgram(t, `{
		let i = 0;
		let sum = 0;
		while (i < 5) {
			sum = sum + i;
			i = i + 1;
		}
		return sum;
	}`)

	if result != ir.IntValue(10) {
		t.Errorf("expected 10, got %s", result.Repr())
	}
}

func TestBreakLeavesTheLoop(t *testing.T) {
	result := runProgram(t, `{
		let i = 0;
		while (true) {
			if (i == 3) break;
			i = i + 1;
		}
		return i;
	}`)

	if result != ir.IntValue(3) {
		t.Errorf("expected 3, got %s", result.Repr())
	}
}

func TestContinueSkipsToTheCondition(t *testing.T) {
	result := runProgram(t, `{
		let i = 0;
		let sum = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 3) continue;
			sum = sum + i;
		}
		return sum;
	}`)

	if result != ir.IntValue(12) {
		t.Errorf("expected 12, got %s", result.Repr())
	}
}

func TestNestedLoopsBindBreakToInnermost(t *testing.T) {
	result := runProgram(t, `{
		let outer = 0;
		let count = 0;
		while (outer < 3) {
			outer = outer + 1;
			while (true) {
				count = count + 1;
				break;
			}
		}
		return count;
	}`)

	if result != ir.IntValue(3) {
		t.Errorf("expected 3, got %s", result.Repr())
	}
}

func TestBreakOutsideLoop(t *testing.T) {
	expectErrorKind(t, "break;", report.ErrBreakOutsideLoop)
	expectErrorKind(t, "{ break; }", report.ErrBreakOutsideLoop)
}

func TestContinueOutsideLoop(t *testing.T) {
	expectErrorKind(t, "continue;", report.ErrContinueOutsideLoop)
}

// -----------------------------------------------------------------------------
// Graph shape tests.  Lowering is defined in terms of node identity: break
// shares the loop's exit node, continue shares the loop head, and an empty
// statement is a pass-through node.

func TestBreakSharesTheLoopExitNode(t *testing.T) {
	def := lowerOne(t, "{ while (true) break; return 7; }")

	head, ok := def.Entry.(*ir.Branch)
	if !ok {
		t.Fatalf("expected the entry to be the loop head, got %T", def.Entry)
	}

	if head.IfTrue != head.IfFalse {
		t.Error("expected break to reach the identical node falling out of the loop does")
	}

	if _, ok := head.IfTrue.(*ir.Return); !ok {
		t.Errorf("expected the shared exit to be the return node, got %T", head.IfTrue)
	}
}

func TestContinueSharesTheLoopHead(t *testing.T) {
	def := lowerOne(t, "while (true) continue;")

	head, ok := def.Entry.(*ir.Branch)
	if !ok {
		t.Fatalf("expected the entry to be the loop head, got %T", def.Entry)
	}

	if head.IfTrue != ir.Stmt(head) {
		t.Error("expected continue to loop straight back to the head")
	}
}

func TestLoopBodyFallsThroughToTheHead(t *testing.T) {
	def := lowerOne(t, "{ let i = 0; while (i < 2) i = i + 1; }")

	store, ok := def.Entry.(*ir.Store)
	if !ok {
		t.Fatalf("expected the entry to be the declaring store, got %T", def.Entry)
	}

	head, ok := store.Next.(*ir.Branch)
	if !ok {
		t.Fatalf("expected the loop head after the declaration, got %T", store.Next)
	}

	body, ok := head.IfTrue.(*ir.Store)
	if !ok {
		t.Fatalf("expected the body store, got %T", head.IfTrue)
	}

	if body.Next != ir.Stmt(head) {
		t.Error("expected the body's continuation to be the loop head")
	}
}

func TestEmptyStatementIsAPassThroughNode(t *testing.T) {
	def := lowerOne(t, ";")

	node, ok := def.Entry.(*ir.ExprStmt)
	if !ok {
		t.Fatalf("expected a pass-through node, got %T", def.Entry)
	}

	if node.Expr != nil || node.Next != nil {
		t.Error("expected an empty node continuing to the terminal")
	}
}

func TestBothIfBranchesShareTheContinuation(t *testing.T) {
	def := lowerOne(t, "{ let x = 0; if (true) x = 1; else x = 2; return x; }")

	decl, ok := def.Entry.(*ir.Store)
	if !ok {
		t.Fatalf("expected the declaring store first, got %T", def.Entry)
	}

	branch, ok := decl.Next.(*ir.Branch)
	if !ok {
		t.Fatalf("expected the branch after the declaration, got %T", decl.Next)
	}

	thenStore, thenOk := branch.IfTrue.(*ir.Store)
	elseStore, elseOk := branch.IfFalse.(*ir.Store)
	if !thenOk || !elseOk {
		t.Fatalf("expected both branch targets to be stores, got %T and %T", branch.IfTrue, branch.IfFalse)
	}

	if thenStore.Next != elseStore.Next {
		t.Error("expected both branches to continue to the same node")
	}
}

// -----------------------------------------------------------------------------

func TestFunctionDefinitionAndCall(t *testing.T) {
	result := runProgram(t, `
		func add3(x: int) -> int {
			return x + 3;
		}
		add3(4);
	`)

	if result != ir.IntValue(7) {
		t.Errorf("expected 7, got %s", result.Repr())
	}
}

func TestRecursion(t *testing.T) {
	result := runProgram(t, `
		func fact(n: int) -> int {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
		fact(5);
	`)

	if result != ir.IntValue(120) {
		t.Errorf("expected 120, got %s", result.Repr())
	}
}

func TestFunctionOverloadsResolveByArgumentTypes(t *testing.T) {
	result := runProgram(t, `
		func pick(x: int) -> int { return 1; }
		func pick(x: float) -> int { return 2; }
		pick(2.5);
	`)

	if result != ir.IntValue(2) {
		t.Errorf("expected the float overload, got %s", result.Repr())
	}
}

func TestFunctionWithoutReturnTypeYieldsUnit(t *testing.T) {
	result := runProgram(t, `
		func noop() {}
		noop();
	`)

	if _, ok := result.(ir.UnitValue); !ok {
		t.Errorf("expected unit, got %s", result.Repr())
	}
}

func TestCallWithWrongArgumentTypes(t *testing.T) {
	expectErrorKind(t, `
		func g(x: int) {}
		g(true);
	`, report.ErrNoMatchingOverload)
}

func TestReturnTypeMismatch(t *testing.T) {
	expectErrorKind(t, `
		func f() -> int {
			return true;
		}
	`, report.ErrReturnTypeMismatch)
}

func TestValueReturnFromUnitFunction(t *testing.T) {
	expectErrorKind(t, `
		func f() {
			return 1;
		}
	`, report.ErrReturnTypeMismatch)
}

func TestFailedFunctionDefinitionIsNotCallable(t *testing.T) {
	ctx := NewContext()

	stmt, err := syntax.ParseStmt("func f() -> int { return true; }")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := LowerFuncDef(ctx, stmt.(*ast.FuncDef)); err == nil {
		t.Fatal("expected the definition to fail")
	}

	// The failed definition must leave no registration behind.
	call, err := syntax.ParseStmt("f();")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	_, err = RunStmt(ctx, call)
	cerr, ok := err.(*report.CompileError)
	if !ok || cerr.Kind != report.ErrUnresolvedIdentifier {
		t.Fatalf("expected `f` to be unresolved after the failed definition, got %v", err)
	}
}

func TestFailedRedefinitionKeepsEarlierOverloads(t *testing.T) {
	ctx := NewContext()

	good, err := syntax.ParseStmt("func f() -> int { return 1; }")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := LowerFuncDef(ctx, good.(*ast.FuncDef)); err != nil {
		t.Fatalf("lowering failed: %s", err)
	}

	bad, err := syntax.ParseStmt("func f(x: int) -> int { return true; }")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	if err := LowerFuncDef(ctx, bad.(*ast.FuncDef)); err == nil {
		t.Fatal("expected the redefinition to fail")
	}

	call, err := syntax.ParseStmt("f();")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	result, err := RunStmt(ctx, call)
	if err != nil {
		t.Fatalf("expected the earlier overload to survive, got %s", err)
	}

	if result != ir.IntValue(1) {
		t.Errorf("expected 1, got %s", result.Repr())
	}

	badCall, err := syntax.ParseStmt("f(1);")
	if err != nil {
		t.Fatalf("parse failed: %s", err)
	}

	_, err = RunStmt(ctx, badCall)
	cerr, ok := err.(*report.CompileError)
	if !ok || cerr.Kind != report.ErrNoMatchingOverload {
		t.Fatalf("expected the failed overload to be gone, got %v", err)
	}
}

func TestIntegerDivisionByZero(t *testing.T) {
	expectErrorKind(t, "1 / 0;", report.ErrDivideByZero)
	expectErrorKind(t, "7 % 0;", report.ErrDivideByZero)

	// The divisor need not be a constant: the error surfaces at run time
	// through the same recoverable path.
	expectErrorKind(t, "{ let x = 0; return 1 / x; }", report.ErrDivideByZero)
}

func TestFloatDivisionByZeroYieldsInfinity(t *testing.T) {
	result := runProgram(t, "1.0 / 0.0;")
	if result != ir.FloatValue(math.Inf(1)) {
		t.Errorf("expected +Inf, got %s", result.Repr())
	}
}

func TestArgumentsLowerBeforeCalleeResolution(t *testing.T) {
	// The argument's overload failure must report before the missing callee
	// would, since all arguments lower before the callee resolves.
	expectErrorKind(t, "missing(1 + 2.0);", report.ErrNoMatchingOverload)
}
