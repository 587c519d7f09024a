package option

import (
	"fmt"
	"sort"
	"strings"
)

// Set holds one section's overridden options keyed by dot-path
// (for example "properties.pointer").
type Set map[string]Value

// Has reports whether key was overridden.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get returns the value for key and whether it was overridden.
func (s Set) Get(key string) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Keys returns the overridden keys in lexical order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LeafError reports a settings leaf that could not be converted to a Value.
type LeafError struct {
	Path string
	Err  error
}

func (e *LeafError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LeafError) Unwrap() error {
	return e.Err
}

// Flatten walks a decoded section tree and returns its leaves keyed by
// their joined dot-path. Nil leaves are treated as absent.
func Flatten(tree map[string]any) (Set, error) {
	out := make(Set)
	if err := flattenInto(out, "", tree); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out Set, prefix string, tree map[string]any) error {
	for key, raw := range tree {
		path := joinPath(prefix, key)
		switch child := raw.(type) {
		case nil:
			continue
		case map[string]any:
			if err := flattenInto(out, path, child); err != nil {
				return err
			}
		case map[any]any:
			converted := make(map[string]any, len(child))
			for k, v := range child {
				converted[fmt.Sprint(k)] = v
			}
			if err := flattenInto(out, path, converted); err != nil {
				return err
			}
		default:
			v, err := FromAny(raw)
			if err != nil {
				return &LeafError{Path: path, Err: err}
			}
			out[path] = v
		}
	}
	return nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Expand is the inverse of Flatten: it rebuilds a nested tree from dotted
// keys. Values already nested are merged. A key that is both a leaf and a
// prefix of another key keeps the nested form.
func Expand(flat map[string]any) map[string]any {
	out := make(map[string]any)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		insert(out, strings.Split(k, "."), flat[k])
	}
	return out
}

func insert(tree map[string]any, parts []string, value any) {
	head := parts[0]
	if len(parts) == 1 {
		if nested, ok := value.(map[string]any); ok {
			if existing, ok := tree[head].(map[string]any); ok {
				for k, v := range nested {
					insert(existing, strings.Split(k, "."), v)
				}
				return
			}
			fresh := make(map[string]any, len(nested))
			for k, v := range nested {
				insert(fresh, strings.Split(k, "."), v)
			}
			tree[head] = fresh
			return
		}
		if _, isMap := tree[head].(map[string]any); isMap {
			return
		}
		tree[head] = value
		return
	}
	child, ok := tree[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		tree[head] = child
	}
	insert(child, parts[1:], value)
}
