package cmd

import (
	"fmt"
	"io/ioutil"

	"ternc/ast"
	"ternc/ir"
	"ternc/lower"
	"ternc/report"
	"ternc/syntax"
)

// Driver runs top-level units against one shared compilation context, so
// functions and types declared by earlier units stay visible to later ones.
// Each unit is fail-fast on its own, but a failed unit does not stop the
// driver: subsequent independent units still run.
type Driver struct {
	// The shared compilation context.
	ctx *lower.Context

	// The representative path of the input, used to tag reported errors.
	reprPath string
}

// NewDriver creates a driver with a freshly seeded compilation context.
func NewDriver(reprPath string) *Driver {
	return &Driver{ctx: lower.NewContext(), reprPath: reprPath}
}

// RunFile parses and runs a whole script file.
func (d *Driver) RunFile(path string) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	stmts, perr := syntax.ParseFile(string(buff))
	if perr != nil {
		report.ReportCompileError(d.reprPath, perr.(*report.CompileError))
		return
	}

	for _, stmt := range stmts {
		d.RunUnit(stmt)
	}
}

// RunUnit lowers and runs one top-level unit: a function definition is
// recorded in the context, any other statement is lowered as an ad hoc
// function body and invoked.  The result value of a statement is displayed
// unless it is unit.
func (d *Driver) RunUnit(stmt ast.ASTStmt) {
	if fn, ok := stmt.(*ast.FuncDef); ok {
		if err := lower.LowerFuncDef(d.ctx, fn); err != nil {
			report.ReportCompileError(d.reprPath, err.(*report.CompileError))
		}

		return
	}

	result, err := lower.RunStmt(d.ctx, stmt)
	if err != nil {
		report.ReportCompileError(d.reprPath, err.(*report.CompileError))
		return
	}

	if displayableResult(result) {
		report.DisplayResultValue(result.Repr())
	}
}

// displayableResult reports whether a statement's result value is presented.
// Unit results are never shown; every other result always is, independent of
// the log level, which gates banners and diagnostics only.
func displayableResult(result ir.Value) bool {
	_, isUnit := result.(ir.UnitValue)
	return !isUnit
}

// DumpFile parses a script file and prints its AST debug dump.
func (d *Driver) DumpFile(path string) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	stmts, perr := syntax.ParseFile(string(buff))
	if perr != nil {
		report.ReportCompileError(d.reprPath, perr.(*report.CompileError))
		return
	}

	for _, stmt := range stmts {
		fmt.Print(ast.Dump(stmt))
	}
}
