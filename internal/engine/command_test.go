package engine

import (
	"errors"
	"testing"
)

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name   string
		binary string
		file   string
		flags  string
		want   string
	}{
		{"c file", "", "main.c", "--unwind 10", "esbmc main.c --unwind 10"},
		{"cpp file", "esbmc", "/src/a.cpp", "", "esbmc /src/a.cpp"},
		{"solidity", "/opt/esbmc/bin/esbmc", "token.sol", "--k-induction", "/opt/esbmc/bin/esbmc token.sol --k-induction"},
		{"jimple", "", "Main.jimple", "  ", "esbmc Main.jimple"},
		{"spaces in path", "", "my dir/main.c", "--quiet", "esbmc 'my dir/main.c' --quiet"},
		{"quote in path", "", "it's.c", "", `esbmc 'it'\''s.c'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CommandLine(tt.binary, tt.file, tt.flags)
			if err != nil {
				t.Fatalf("CommandLine: %v", err)
			}
			if got != tt.want {
				t.Errorf("CommandLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandLineRejects(t *testing.T) {
	for _, file := range []string{"", "Makefile", "main.py", "main.C.bak"} {
		t.Run(file, func(t *testing.T) {
			_, err := CommandLine("", file, "")
			if !errors.Is(err, ErrUnsupportedFile) {
				t.Errorf("CommandLine(%q) error = %v, want ErrUnsupportedFile", file, err)
			}
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	if len(exts) != 4 {
		t.Fatalf("got %d extensions, want 4", len(exts))
	}
	exts[0] = "mutated"
	if SupportedExtensions()[0] == "mutated" {
		t.Error("SupportedExtensions exposes internal slice")
	}
}
