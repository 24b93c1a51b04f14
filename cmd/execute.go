package cmd

import (
	"os"

	"ternc/common"
	"ternc/report"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `ternc` CLI utility.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("ternc", "ternc is the compiler and runner for Tern scripts", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	runCmd := cli.AddSubcommand("run", "run a script", true)
	runCmd.AddPrimaryArg("script-path", "the path to the script to run", true)

	dumpCmd := cli.AddSubcommand("dump", "print the AST of a script", true)
	dumpCmd.AddPrimaryArg("script-path", "the path to the script to dump", true)

	cli.AddSubcommand("repl", "start an interactive session", false)
	cli.AddSubcommand("version", "print the Tern version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelVerbose)
		report.ReportStdError("ternc", err)
		os.Exit(1)
	}

	logLevel := logLevelFromName(result.Arguments["loglevel"].(string))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "run":
		scriptPath, _ := subResult.PrimaryArg()
		execRunCommand(scriptPath, logLevel)
	case "dump":
		scriptPath, _ := subResult.PrimaryArg()
		report.InitReporter(logLevel)
		NewDriver(scriptPath).DumpFile(scriptPath)
	case "repl":
		report.InitReporter(logLevel)
		RunRepl()
	case "version":
		report.InitReporter(logLevel)
		report.DisplayInfoMessage("Tern Version", common.TernVersion)
	}

	if !report.ShouldProceed() {
		os.Exit(1)
	}
}

// execRunCommand executes the run subcommand: it applies the project
// manifest beside the script, if any, then runs the script.
func execRunCommand(scriptPath string, logLevel int) {
	report.InitReporter(logLevel)

	proj := loadProject(scriptPath)
	if proj.LogLevel != "" {
		report.InitReporter(logLevelFromName(proj.LogLevel))
	}

	NewDriver(proj.Name).RunFile(scriptPath)
}
