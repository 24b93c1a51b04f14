package report

// Reporter keeps track of the errors reported over the life of a driver run.
// It respects the configured log level.  ternc is single-threaded so no
// synchronization is needed.
type Reporter struct {
	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// rep is the global reporter instance.
var rep = &Reporter{logLevel: LogLevelVerbose}

// InitReporter initializes the global error reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &Reporter{logLevel: logLevel}
}

// ReportCompileError reports a compilation error produced while lowering or
// parsing a top-level unit.  The reprPath identifies the erroneous input: a
// file path or a REPL tag.
func ReportCompileError(reprPath string, cerr *CompileError) {
	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayCompileError(reprPath, cerr)
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}

// ShouldProceed indicates whether any errors have been reported that should
// cause the driver to exit with a failing status.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// Verbose returns whether the reporter is at the verbose log level.
func Verbose() bool {
	return rep.logLevel == LogLevelVerbose
}
