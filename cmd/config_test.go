package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"ternc/report"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()

	if err := ioutil.WriteFile(filepath.Join(dir, "tern.toml"), []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write manifest: %s", err)
	}

	return filepath.Join(dir, "main.tn")
}

func TestLoadProjectReadsManifest(t *testing.T) {
	scriptPath := writeManifest(t, t.TempDir(), `
name = "demo"
tern-version = "0.1.0"
log-level = "warn"
`)

	proj := loadProject(scriptPath)
	if proj.Name != "demo" {
		t.Errorf("expected project name `demo`, got `%s`", proj.Name)
	}

	if proj.LogLevel != "warn" {
		t.Errorf("expected log level `warn`, got `%s`", proj.LogLevel)
	}
}

func TestLoadProjectWithoutManifest(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "main.tn")

	proj := loadProject(scriptPath)
	if proj.Name != "main.tn" {
		t.Errorf("expected the script name as a fallback, got `%s`", proj.Name)
	}

	if proj.LogLevel != "" {
		t.Errorf("expected no log level, got `%s`", proj.LogLevel)
	}
}

func TestLoadProjectDefaultsMissingName(t *testing.T) {
	scriptPath := writeManifest(t, t.TempDir(), `log-level = "silent"`)

	proj := loadProject(scriptPath)
	if proj.Name != "main.tn" {
		t.Errorf("expected the script name as a fallback, got `%s`", proj.Name)
	}
}

func TestLogLevelFromName(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"silent", report.LogLevelSilent},
		{"error", report.LogLevelError},
		{"warn", report.LogLevelWarn},
		{"verbose", report.LogLevelVerbose},
		{"", report.LogLevelVerbose},
		{"bogus", report.LogLevelVerbose},
	}

	for _, c := range cases {
		if got := logLevelFromName(c.name); got != c.want {
			t.Errorf("`%s`: expected level %d, got %d", c.name, c.want, got)
		}
	}
}
