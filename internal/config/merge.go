package config

import "fmt"

// Merge combines two settings snapshots where overlay takes precedence.
// Merging happens per section and per leaf: nested objects are merged
// recursively, and a leaf set in overlay replaces the same leaf in base.
// Neither input is modified.
func Merge(base, overlay Settings) Settings {
	if base == nil {
		return overlay.Clone()
	}
	if overlay == nil {
		return base.Clone()
	}

	result := base.Clone()
	for section, tree := range overlay {
		if len(tree) == 0 {
			continue
		}
		if result[section] == nil {
			result[section] = make(map[string]any, len(tree))
		}
		mergeTree(result[section], tree)
	}
	return result
}

// MergeAll merges snapshots in order, lowest precedence first.
func MergeAll(layers []Settings) (Settings, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no settings to merge")
	}

	result := layers[0].Clone()
	for i := 1; i < len(layers); i++ {
		result = Merge(result, layers[i])
	}
	if result == nil {
		result = Settings{}
	}
	return result, nil
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcChild, srcIsTree := v.(map[string]any)
		dstChild, dstIsTree := dst[k].(map[string]any)
		switch {
		case srcIsTree && dstIsTree:
			mergeTree(dstChild, srcChild)
		case srcIsTree:
			dst[k] = cloneTree(srcChild)
		default:
			dst[k] = v
		}
	}
}
