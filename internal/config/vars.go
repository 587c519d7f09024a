package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var varPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// Vars holds the values substituted into string settings.
type Vars struct {
	WorkspaceFolder string
	UserHome        string
	// Env resolves ${env:NAME}. Nil means os.LookupEnv.
	Env func(name string) (string, bool)
}

// DefaultVars returns the variables for a workspace root, with the user
// home taken from the OS and environment lookups from the process.
func DefaultVars(workspaceRoot string) Vars {
	home, _ := os.UserHomeDir()
	if workspaceRoot != "" {
		if abs, err := filepath.Abs(workspaceRoot); err == nil {
			workspaceRoot = abs
		}
	}
	return Vars{WorkspaceFolder: workspaceRoot, UserHome: home}
}

// ExpandVars returns a copy of s with ${workspaceFolder}, ${userHome} and
// ${env:NAME} replaced in every string leaf. An unknown variable, or
// ${workspaceFolder} without a workspace, is an error naming the leaf.
// A ${env:NAME} whose variable is unset expands to the empty string.
func ExpandVars(s Settings, vars Vars) (Settings, error) {
	out := s.Clone()
	var errs []string

	for section, tree := range out {
		expandTree(section, tree, vars, &errs)
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, &ValidationError{Errors: errs}
	}
	return out, nil
}

func expandTree(prefix string, tree map[string]any, vars Vars, errs *[]string) {
	for k, v := range tree {
		path := prefix + "." + k
		switch t := v.(type) {
		case map[string]any:
			expandTree(path, t, vars, errs)
		case string:
			expanded, err := vars.expand(t)
			if err != nil {
				*errs = append(*errs, fmt.Sprintf("%s: %v", path, err))
				continue
			}
			tree[k] = expanded
		}
	}
}

func (v Vars) expand(s string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var firstErr error
	out := varPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		value, err := v.lookup(name)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func (v Vars) lookup(name string) (string, error) {
	switch {
	case name == "workspaceFolder":
		if v.WorkspaceFolder == "" {
			return "", fmt.Errorf("${workspaceFolder} used without a workspace")
		}
		return v.WorkspaceFolder, nil
	case name == "userHome":
		if v.UserHome == "" {
			return "", fmt.Errorf("${userHome} is not known")
		}
		return v.UserHome, nil
	case strings.HasPrefix(name, "env:"):
		key := strings.TrimPrefix(name, "env:")
		if key == "" {
			return "", fmt.Errorf("${env:} needs a variable name")
		}
		lookup := v.Env
		if lookup == nil {
			lookup = os.LookupEnv
		}
		value, _ := lookup(key)
		return value, nil
	default:
		return "", fmt.Errorf("unknown variable ${%s}", name)
	}
}
