package cmd

import (
	"bufio"
	"os"
	"strings"

	"ternc/report"
	"ternc/syntax"

	"github.com/pterm/pterm"
)

// RunRepl reads top-level statements from standard input line by line and
// runs each one against a single shared context, so declared functions
// persist between lines.  Each line gets a fresh frame.
func RunRepl() {
	if report.Verbose() {
		report.DisplayInfoMessage("tern", "interactive session (:quit to exit)")
	}

	driver := NewDriver("<repl>")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		pterm.FgLightCyan.Print(">>> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit":
			return
		}

		stmt, err := syntax.ParseStmt(line)
		if err != nil {
			report.ReportCompileError("<repl>", err.(*report.CompileError))
			continue
		}

		driver.RunUnit(stmt)
	}
}
