// Package esbmcflags provides the public Go library API for esbmc-flags.
//
// esbmc-flags compiles the ESBMC settings of a VS Code user and workspace
// into the command-line flags of the esbmc verifier. This package exposes
// a Client for embedding the compiler in other Go programs.
//
// # Basic Usage
//
//	client, err := esbmcflags.New(esbmcflags.Options{
//	    WorkspaceRoot: "/path/to/project",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Flags for the resolved settings chain
//	flags, err := client.Compile(ctx)
//
//	// Full command line for a source file
//	cmd, err := client.CommandLine(ctx, "main.c")
//
//	// Unknown keys and invalid values
//	result, err := client.Check(ctx)
package esbmcflags

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/esbmc/vscode-esbmc/internal/config"
	"github.com/esbmc/vscode-esbmc/internal/engine"
)

// Compiler produces the esbmc flag string for the resolved settings.
type Compiler interface {
	Compile(ctx context.Context) (string, error)
}

// Checker lints the resolved settings against the option catalog.
type Checker interface {
	Check(ctx context.Context) (*CheckResult, error)
}

// Options configures an esbmc-flags client.
type Options struct {
	// WorkspaceRoot is the folder whose .vscode/settings.json is read.
	// If empty and SettingsPaths is empty, defaults to the current directory.
	WorkspaceRoot string

	// SettingsPaths replaces discovery with explicit settings files,
	// merged in order.
	SettingsPaths []string

	// UserSettingsPath overrides the default VS Code user settings path.
	UserSettingsPath string

	// NoInherit skips the user settings layer.
	NoInherit bool

	// Binary is the esbmc executable used by CommandLine. Default: "esbmc".
	Binary string

	// Logger receives compiler diagnostics. Nil discards them.
	Logger *log.Logger
}

// Client is the main entry point for the esbmc-flags library.
// It implements Compiler and Checker. A Client remembers the last
// compiled flags, so repeated calls with unchanged settings are cheap.
type Client struct {
	compiler         *engine.Compiler
	workspaceRoot    string
	settingsPaths    []string
	userSettingsPath string
	binary           string
	noInherit        bool
}

// New creates a new esbmc-flags Client.
func New(opts Options) (*Client, error) {
	root := opts.WorkspaceRoot
	if root == "" && len(opts.SettingsPaths) == 0 {
		root = "."
	}
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving workspace root: %w", err)
		}
		root = abs
	}

	binary := opts.Binary
	if binary == "" {
		binary = engine.DefaultBinary
	}

	return &Client{
		compiler:         engine.NewCompiler(engine.WithLogger(opts.Logger)),
		workspaceRoot:    root,
		settingsPaths:    opts.SettingsPaths,
		userSettingsPath: opts.UserSettingsPath,
		binary:           binary,
		noInherit:        opts.NoInherit || config.EnvNoInherit(),
	}, nil
}

// Settings loads, merges and expands the settings chain. The returned
// layers describe every file that was considered.
func (c *Client) Settings(ctx context.Context) (Settings, []LayerInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		result *config.HierarchicalResult
		err    error
	)
	if len(c.settingsPaths) > 0 {
		result, err = config.LoadFiles(c.settingsPaths)
	} else {
		result, err = config.LoadHierarchical(config.DiscoverOptions{
			WorkspaceRoot:    c.workspaceRoot,
			UserSettingsPath: c.userSettingsPath,
			NoInherit:        c.noInherit,
		})
	}
	if err != nil {
		var layers []LayerInfo
		if result != nil {
			layers = result.Layers
		}
		return nil, layers, err
	}

	expanded, err := config.ExpandVars(result.Settings, config.DefaultVars(c.workspaceRoot))
	if err != nil {
		return nil, result.Layers, fmt.Errorf("expanding settings variables: %w", err)
	}
	return expanded, result.Layers, nil
}

// Compile returns the esbmc flags for the resolved settings.
func (c *Client) Compile(ctx context.Context) (string, error) {
	s, _, err := c.Settings(ctx)
	if err != nil {
		return "", err
	}
	return c.compiler.Compile(s)
}

// CommandLine returns the esbmc invocation for a source file.
func (c *Client) CommandLine(ctx context.Context, file string) (string, error) {
	flags, err := c.Compile(ctx)
	if err != nil {
		return "", err
	}
	return engine.CommandLine(c.binary, file, flags)
}

// Check lints the resolved settings.
func (c *Client) Check(ctx context.Context) (*CheckResult, error) {
	s, _, err := c.Settings(ctx)
	if err != nil {
		return nil, err
	}
	eng := &engine.CheckEngine{}
	return eng.Check(s), nil
}

// Info reports the settings chain and the fingerprint of the merged snapshot.
func (c *Client) Info(ctx context.Context, version string) (*InfoResult, error) {
	s, layers, err := c.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Info(version, layers, s)
}
