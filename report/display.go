package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// displayCompileError displays a compilation error with its kind label, the
// input it came from, and the span if one is attached.
func displayCompileError(reprPath string, cerr *CompileError) {
	ErrorStyleBG.Print(cerr.Kind.Label() + " error")

	if cerr.Span == nil {
		fmt.Printf(" %s: ", reprPath)
	} else {
		fmt.Printf(" %s:%s: ", reprPath, cerr.Span)
	}

	ErrorColorFG.Println(cerr.Message)
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	ErrorStyleBG.Print("error")
	fmt.Printf(" %s: ", reprPath)
	ErrorColorFG.Println(err.Error())
}

// DisplayInfoMessage prints a tagged informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// DisplayResultValue prints the textual form of a value produced by running a
// top-level statement.
func DisplayResultValue(repr string) {
	SuccessColorFG.Println(repr)
}
