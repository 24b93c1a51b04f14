package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"ternc/common"
	"ternc/report"

	"github.com/pelletier/go-toml"
)

// tomlProject represents a Tern project manifest as it is encoded in TOML.
type tomlProject struct {
	Name        string `toml:"name"`
	TernVersion string `toml:"tern-version"`
	LogLevel    string `toml:"log-level"`
}

// Project holds the settings a script runs under.
type Project struct {
	// The project name, used to tag driver output.
	Name string

	// The log level name from the manifest, empty if unset.
	LogLevel string
}

// loadProject loads the `tern.toml` manifest from the directory containing
// the given script, if there is one.  A missing manifest is not an error:
// scripts run fine with defaults.
func loadProject(scriptPath string) *Project {
	proj := &Project{Name: filepath.Base(scriptPath)}

	manifestPath := filepath.Join(filepath.Dir(scriptPath), common.TernProjectFileName)
	buff, err := ioutil.ReadFile(manifestPath)
	if err != nil {
		if !os.IsNotExist(err) {
			report.ReportStdError(manifestPath, err)
		}

		return proj
	}

	tomlProj := &tomlProject{}
	if err := toml.Unmarshal(buff, tomlProj); err != nil {
		report.ReportStdError(manifestPath, err)
		return proj
	}

	if tomlProj.Name != "" {
		proj.Name = tomlProj.Name
	}

	if tomlProj.TernVersion != "" && tomlProj.TernVersion != common.TernVersion {
		report.DisplayInfoMessage("Note", "project manifest targets tern v"+tomlProj.TernVersion+
			", running v"+common.TernVersion)
	}

	proj.LogLevel = tomlProj.LogLevel
	return proj
}

// logLevelFromName converts a log level name to its enumerated value,
// defaulting to verbose.
func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}
