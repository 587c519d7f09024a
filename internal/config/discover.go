package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const settingsFileName = "settings.json"
const workspaceDirName = ".vscode"

// Scope is the precedence level of a settings file.
type Scope string

const (
	ScopeUser      Scope = "user"
	ScopeWorkspace Scope = "workspace"
	ScopeExplicit  Scope = "explicit"
)

// LayerInfo describes a discovered settings file and its load status.
type LayerInfo struct {
	Err    error // non-nil if the file exists but failed to load
	Path   string
	Scope  Scope
	Loaded bool
}

// DiscoverOptions controls how settings paths are discovered.
type DiscoverOptions struct {
	// WorkspaceRoot is the folder whose .vscode/settings.json is the
	// highest precedence layer. Empty skips the workspace layer.
	WorkspaceRoot string

	// UserSettingsPath overrides the default VS Code user settings path.
	// Empty means use the OS default. Set to a nonexistent path to skip.
	UserSettingsPath string

	// NoInherit skips the user layer.
	NoInherit bool
}

// WorkspaceSettingsPath returns the settings.json path of a workspace root.
func WorkspaceSettingsPath(root string) string {
	return filepath.Join(root, workspaceDirName, settingsFileName)
}

// DiscoverPaths returns the ordered list of settings files to check,
// from lowest precedence (user) to highest (workspace).
// Paths are deduplicated by resolved absolute path.
func DiscoverPaths(opts DiscoverOptions) []LayerInfo {
	var layers []LayerInfo
	seen := make(map[string]bool)

	addLayer := func(scope Scope, path string) {
		if path == "" {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		layers = append(layers, LayerInfo{Path: path, Scope: scope})
	}

	if !opts.NoInherit {
		userPath := opts.UserSettingsPath
		if userPath == "" {
			userPath = defaultUserSettingsPath()
		}
		addLayer(ScopeUser, userPath)
	}

	if opts.WorkspaceRoot != "" {
		addLayer(ScopeWorkspace, WorkspaceSettingsPath(opts.WorkspaceRoot))
	}

	return layers
}

// defaultUserSettingsPath returns the VS Code user settings.json for this OS:
// ~/.config/Code/User on Linux, ~/Library/Application Support/Code/User on
// macOS and %APPDATA%\Code\User on Windows.
func defaultUserSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "Code", "User", settingsFileName)
}

// HierarchicalResult is the merged snapshot plus per-layer status.
type HierarchicalResult struct {
	Settings Settings
	Layers   []LayerInfo
}

// LoadHierarchical loads every discovered layer that exists and merges them
// in precedence order. Missing files are skipped; a file that exists but
// fails to load aborts with its error, which is also recorded on the layer.
func LoadHierarchical(opts DiscoverOptions) (*HierarchicalResult, error) {
	return loadLayers(DiscoverPaths(opts))
}

// LoadFiles loads explicit settings files and merges them in order. Unlike
// discovered layers, every file must exist.
func LoadFiles(paths []string) (*HierarchicalResult, error) {
	layers := make([]LayerInfo, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("reading settings %s: %w", p, err)
		}
		layers = append(layers, LayerInfo{Path: p, Scope: ScopeExplicit})
	}
	return loadLayers(layers)
}

func loadLayers(layers []LayerInfo) (*HierarchicalResult, error) {
	result := &HierarchicalResult{Settings: Settings{}, Layers: layers}

	for i := range result.Layers {
		layer := &result.Layers[i]
		s, err := Load(layer.Path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			layer.Err = err
			return result, fmt.Errorf("loading %s settings: %w", layer.Scope, err)
		}
		layer.Loaded = true
		result.Settings = Merge(result.Settings, s)
	}
	return result, nil
}

// EnvNoInherit returns true if ESBMC_FLAGS_NO_INHERIT is set to "1" or "true".
func EnvNoInherit() bool {
	return envBoolTrue("ESBMC_FLAGS_NO_INHERIT")
}

// envBoolTrue returns true if the env var is set to "1" or "true" (case-insensitive).
func envBoolTrue(key string) bool {
	v := os.Getenv(key)
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true"
}
