package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/esbmc/vscode-esbmc/internal/catalog"
	"github.com/esbmc/vscode-esbmc/internal/config"
	"github.com/esbmc/vscode-esbmc/internal/option"
)

func TestCompileEmpty(t *testing.T) {
	c := NewCompiler()
	for _, cfg := range []config.Settings{nil, {}, {"bmc": {}}} {
		got, err := c.Compile(cfg)
		if err != nil {
			t.Fatalf("Compile(%v): %v", cfg, err)
		}
		if got != "" {
			t.Errorf("Compile(%v) = %q, want empty", cfg, got)
		}
	}
}

func TestCompileKInductionScenario(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
		want string
	}{
		{"prove", map[string]any{"prove": true}, "--k-induction"},
		{"parallel", map[string]any{"prove": true, "parallelise": true}, "--k-induction-parallel"},
		{"unlimited", map[string]any{"iterationMax": -1}, "--unlimited-k-steps"},
		{"bounded", map[string]any{"iterationMax": 5}, "--max-k-step 5"},
		{"default", map[string]any{"iterationMax": 50}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCompiler().Compile(config.Settings{"kinduction": tt.cfg})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compile = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileSectionOrder(t *testing.T) {
	cfg := config.Settings{
		"trace":      {"options": map[string]any{"ssa": true}},
		"solver":     {"smtSolver": "z3"},
		"bmc":        {"unwind": 10, "mainFunction": "entry"},
		"kinduction": {"prove": true},
		"frontEnd":   {"wordLength": 32},
	}

	got, err := NewCompiler().Compile(cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := "--function entry --unwind 10 --32 --k-induction --z3 --ssa-trace"
	if got != want {
		t.Errorf("Compile =\n  %q\nwant\n  %q", got, want)
	}
}

func TestCompileValidationError(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Settings
		wantMsg string
	}{
		{"negative bound", config.Settings{"bmc": {"unwind": -5}}, "bmc.unwind: must be a positive integer, got -5"},
		{"zero bound", config.Settings{"bmc": {"unwind": 0}}, "bmc.unwind"},
		{"fractional bound", config.Settings{"bmc": {"unwind": 1.5}}, "bmc.unwind"},
		{"iteration max", config.Settings{"kinduction": {"iterationMax": -99}}, "kinduction.iterationMax"},
		{"mutex", config.Settings{"bmc": {"incrementalBmc": true, "termination": true}}, "bmc.incrementalBmc, bmc.termination"},
		{"composite leaf", config.Settings{"bmc": {"unwind": []any{1, 2}}}, "bmc.unwind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().Compile(tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *catalog.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *catalog.ValidationError", err)
			}
			if !errors.Is(err, catalog.ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

// countingEncoders wraps the catalog encoders and counts invocations.
func countingEncoders(calls *int) []catalog.Named {
	var out []catalog.Named
	for _, n := range catalog.Encoders() {
		enc := n.Encode
		out = append(out, catalog.Named{
			Name: n.Name,
			Encode: func(set option.Set) ([]string, error) {
				*calls++
				return enc(set)
			},
		})
	}
	return out
}

func TestCompileCacheHit(t *testing.T) {
	calls := 0
	c := NewCompiler(WithEncoders(countingEncoders(&calls)))

	cfg := config.Settings{"bmc": {"unwind": 10}, "solver": {"smtSolver": "z3"}}
	first, err := c.Compile(cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if calls != 2 {
		t.Fatalf("encoder calls = %d, want 2", calls)
	}

	// Same content, different map instance and number representation.
	again := config.Settings{"solver": {"smtSolver": "z3"}, "bmc": {"unwind": json.Number("10")}}
	second, err := c.Compile(again)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if second != first {
		t.Errorf("cached result = %q, want %q", second, first)
	}
	if calls != 2 {
		t.Errorf("encoder calls after cache hit = %d, want 2", calls)
	}
}

func TestCompileCacheMissOnChange(t *testing.T) {
	calls := 0
	c := NewCompiler(WithEncoders(countingEncoders(&calls)))

	if _, err := c.Compile(config.Settings{"bmc": {"unwind": 10}}); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := c.Compile(config.Settings{"bmc": {"unwind": 11}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got != "--unwind 11" {
		t.Errorf("Compile = %q, want %q", got, "--unwind 11")
	}
	if calls != 2 {
		t.Errorf("encoder calls = %d, want 2", calls)
	}
}

func TestCompileFailureKeepsCache(t *testing.T) {
	calls := 0
	c := NewCompiler(WithEncoders(countingEncoders(&calls)))

	good := config.Settings{"bmc": {"unwind": 10}}
	if _, err := c.Compile(good); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := c.Compile(config.Settings{"bmc": {"unwind": -5}}); err == nil {
		t.Fatal("expected error")
	}

	before := calls
	got, err := c.Compile(good)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got != "--unwind 10" {
		t.Errorf("Compile = %q, want %q", got, "--unwind 10")
	}
	if calls != before {
		t.Errorf("cache entry lost after failed compile: %d encoder calls", calls-before)
	}
}

func TestCompileReset(t *testing.T) {
	calls := 0
	c := NewCompiler(WithEncoders(countingEncoders(&calls)))
	cfg := config.Settings{"bmc": {"unwind": 10}}

	if _, err := c.Compile(cfg); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	c.Reset()
	if _, err := c.Compile(cfg); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if calls != 2 {
		t.Errorf("encoder calls = %d, want 2 after Reset", calls)
	}
}

func TestCompileIgnoresUnknownSections(t *testing.T) {
	got, err := NewCompiler().Compile(config.Settings{
		"editor": {"tabSize": []any{"not", "a", "scalar"}},
		"bmc":    {"unwind": 2},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got != "--unwind 2" {
		t.Errorf("Compile = %q, want %q", got, "--unwind 2")
	}
}

func TestCompileIndependentInstances(t *testing.T) {
	a := NewCompiler()
	b := NewCompiler()
	if _, err := a.Compile(config.Settings{"bmc": {"unwind": 1}}); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := b.Compile(config.Settings{"bmc": {"unwind": 2}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got != "--unwind 2" {
		t.Errorf("Compile = %q, want %q", got, "--unwind 2")
	}
}

func TestCompileConcurrent(t *testing.T) {
	c := NewCompiler()
	cfgs := []config.Settings{
		{"bmc": {"unwind": 1}},
		{"bmc": {"unwind": 2}},
		{"trace": {"options": map[string]any{"quiet": true}}},
	}
	want := []string{"--unwind 1", "--unwind 2", "--quiet"}

	var wg sync.WaitGroup
	errs := make(chan string, 300)
	for i := 0; i < 100; i++ {
		for j := range cfgs {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				got, err := c.Compile(cfgs[j])
				if err != nil {
					errs <- err.Error()
					return
				}
				if got != want[j] {
					errs <- got + " != " + want[j]
				}
			}(j)
		}
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestCompileLogsCacheHit(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := NewCompiler(WithLogger(logger))

	cfg := config.Settings{"bmc": {"unwind": 3}}
	for i := 0; i < 2; i++ {
		if _, err := c.Compile(cfg); err != nil {
			t.Fatalf("Compile: %v", err)
		}
	}
	if !strings.Contains(buf.String(), "reusing flags") {
		t.Errorf("log output = %q, want cache hit message", buf.String())
	}
}

func TestFingerprintIgnoresUnknownSections(t *testing.T) {
	a, err := Fingerprint(config.Settings{"bmc": {"unwind": 3}})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	b, err := Fingerprint(config.Settings{"bmc": {"unwind": int64(3)}, "editor": {"x": 1}})
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if a != b {
		t.Errorf("fingerprints differ: %s vs %s", a.Short(), b.Short())
	}
}
