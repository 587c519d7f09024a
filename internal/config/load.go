package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/esbmc/vscode-esbmc/internal/option"
)

// Load reads a settings file and returns the ESBMC sections it overrides.
// The format follows the file extension; anything other than .yaml, .yml
// and .toml is read as JSONC, the VS Code settings.json dialect.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	s, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// FormatFor picks the settings format from a file name.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSONC
	}
}

// Parse decodes a settings document. Both the VS Code flat form
// ("esbmc.bmc.unwind": 3) and the nested form ({"esbmc": {"bmc": ...}})
// are accepted and may be mixed.
func Parse(data []byte, format Format) (Settings, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	var errs []string

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := doc[key]
		switch {
		case key == Root:
			tree, ok := asTree(value)
			if !ok {
				errs = append(errs, fmt.Sprintf("'%s' must be an object", Root))
				continue
			}
			for section, sub := range tree {
				flat[section] = sub
			}
		case strings.HasPrefix(key, Root+"."):
			flat[strings.TrimPrefix(key, Root+".")] = value
		}
	}

	s := make(Settings)
	for section, value := range option.Expand(normalize(flat)) {
		tree, ok := asTree(value)
		if !ok {
			errs = append(errs, fmt.Sprintf("section '%s' must be an object, got %T", section, value))
			continue
		}
		if len(tree) > 0 {
			s[section] = tree
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, &ValidationError{Errors: errs}
	}
	return s, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		stripped := jsonc.ToJSON(data)
		if len(bytes.TrimSpace(stripped)) == 0 {
			return map[string]any{}, nil
		}
		dec := json.NewDecoder(bytes.NewReader(stripped))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// normalize converts decoder specific map types into map[string]any.
func normalize(v any) map[string]any {
	tree, _ := asTree(v)
	return tree
}

func asTree(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			if sub, ok := asTree(child); ok {
				out[k] = sub
				continue
			}
			out[k] = child
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			if sub, ok := asTree(child); ok {
				out[fmt.Sprint(k)] = sub
				continue
			}
			out[fmt.Sprint(k)] = child
		}
		return out, true
	default:
		return nil, false
	}
}

// ValidationError holds every structural problem found in a settings document.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("settings validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}
