package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// captureOutput redirects command output for the duration of a test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

// useWorkspace points the global flags at a temp workspace with the given
// settings.json content and no user settings.
func useWorkspace(t *testing.T, settings string) string {
	t.Helper()
	root := t.TempDir()
	if settings != "" {
		dir := filepath.Join(root, ".vscode")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(settings), 0644); err != nil {
			t.Fatal(err)
		}
	}

	oldRoot, oldPaths, oldInherit := workspaceRoot, settingsPaths, noInherit
	workspaceRoot, settingsPaths, noInherit = root, nil, true
	t.Cleanup(func() {
		workspaceRoot, settingsPaths, noInherit = oldRoot, oldPaths, oldInherit
	})
	return root
}

func TestInfoRespectsQuiet(t *testing.T) {
	buf := captureOutput(t)

	quiet = true
	defer func() { quiet = false }()
	info("hidden")
	output("shown")

	if got := buf.String(); got != "shown\n" {
		t.Errorf("output = %q, want %q", got, "shown\n")
	}
}

func TestDetailOnlyVerbose(t *testing.T) {
	buf := captureOutput(t)

	detail("hidden")
	verbose = true
	defer func() { verbose = false }()
	detail("value %d", 3)

	if got := buf.String(); got != "  value 3\n" {
		t.Errorf("output = %q, want %q", got, "  value 3\n")
	}
}

func TestNewClientExplicitSettings(t *testing.T) {
	old := settingsPaths
	settingsPaths = []string{"a.json"}
	defer func() { settingsPaths = old }()

	if _, err := newClient(); err != nil {
		t.Fatalf("newClient: %v", err)
	}
}
