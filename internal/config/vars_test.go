package config

import (
	"errors"
	"strings"
	"testing"
)

func testVars() Vars {
	return Vars{
		WorkspaceFolder: "/work/project",
		UserHome:        "/home/dev",
		Env: func(name string) (string, bool) {
			if name == "ESBMC_INCLUDE" {
				return "/opt/include", true
			}
			return "", false
		},
	}
}

func TestExpandVars(t *testing.T) {
	s := Settings{
		"frontEnd": {
			"includePath":  "${workspaceFolder}/include",
			"architecture": "i386-linux",
		},
		"solver": {"customSmtSolverPath": "${userHome}/bin/solver"},
		"bmc":    {"unwind": 3, "nested": map[string]any{"path": "${env:ESBMC_INCLUDE}:${env:MISSING}"}},
	}

	out, err := ExpandVars(s, testVars())
	if err != nil {
		t.Fatalf("ExpandVars: %v", err)
	}

	tests := []struct {
		got, want any
	}{
		{out["frontEnd"]["includePath"], "/work/project/include"},
		{out["frontEnd"]["architecture"], "i386-linux"},
		{out["solver"]["customSmtSolverPath"], "/home/dev/bin/solver"},
		{out["bmc"]["unwind"], 3},
		{out["bmc"]["nested"].(map[string]any)["path"], "/opt/include:"},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %v, want %v", i, tt.got, tt.want)
		}
	}

	if s["frontEnd"]["includePath"] != "${workspaceFolder}/include" {
		t.Error("input modified by ExpandVars")
	}
}

func TestExpandVarsErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		vars  Vars
		want  string
	}{
		{"unknown", "${cwd}/x", testVars(), "unknown variable ${cwd}"},
		{"no workspace", "${workspaceFolder}", Vars{}, "without a workspace"},
		{"no home", "${userHome}", Vars{WorkspaceFolder: "/w"}, "${userHome} is not known"},
		{"empty env", "${env:}", testVars(), "needs a variable name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandVars(Settings{"bmc": {"mainFunction": tt.value}}, tt.vars)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), "bmc.mainFunction") {
				t.Errorf("error %q does not name the leaf", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestExpandVarsWithoutReferences(t *testing.T) {
	s := Settings{"bmc": {"mainFunction": "main"}}
	out, err := ExpandVars(s, Vars{})
	if err != nil {
		t.Fatalf("ExpandVars: %v", err)
	}
	if out["bmc"]["mainFunction"] != "main" {
		t.Errorf("mainFunction = %v", out["bmc"]["mainFunction"])
	}
}

func TestDefaultVars(t *testing.T) {
	v := DefaultVars(".")
	if v.WorkspaceFolder == "." || v.WorkspaceFolder == "" {
		t.Errorf("WorkspaceFolder = %q, want absolute path", v.WorkspaceFolder)
	}
	if v.Env != nil {
		t.Error("DefaultVars should use the process environment")
	}
}
