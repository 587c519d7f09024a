package config

// Root is the settings namespace of the ESBMC extension. Keys outside it
// are ignored.
const Root = "esbmc"

// Settings is a snapshot of the ESBMC options a user overrode, keyed by
// section name ("bmc", "solver", ...). A section value is the decoded tree
// for that section and may contain nested objects, for example
// {"properties": {"pointer": false}}. Absent sections and keys mean
// "use the documented default".
type Settings map[string]map[string]any

// Section returns the overridden tree of a section, or nil.
func (s Settings) Section(name string) map[string]any {
	return s[name]
}

// IsEmpty reports whether no section carries an override.
func (s Settings) IsEmpty() bool {
	for _, tree := range s {
		if len(tree) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, so callers can hand a materialized snapshot
// to the compiler and keep editing their own.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	out := make(Settings, len(s))
	for name, tree := range s {
		out[name] = cloneTree(tree)
	}
	return out
}

func cloneTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		if child, ok := v.(map[string]any); ok {
			out[k] = cloneTree(child)
			continue
		}
		out[k] = v
	}
	return out
}

// Format identifies a settings file encoding.
type Format string

const (
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)
