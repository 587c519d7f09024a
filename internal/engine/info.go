package engine

import (
	"github.com/esbmc/vscode-esbmc/internal/catalog"
	"github.com/esbmc/vscode-esbmc/internal/config"
	"github.com/esbmc/vscode-esbmc/internal/option"
)

// Info gathers tool information: the settings chain, the fingerprint of the
// merged snapshot and how many options each section overrides.
func Info(version string, layers []config.LayerInfo, cfg config.Settings) (*InfoResult, error) {
	r := &InfoResult{Version: version}

	for _, l := range layers {
		r.Chain = append(r.Chain, LayerStatus{
			Scope:  string(l.Scope),
			Path:   l.Path,
			Loaded: l.Loaded,
		})
	}

	sum, err := Fingerprint(cfg)
	if err != nil {
		return nil, err
	}
	r.Fingerprint = sum.String()

	for _, s := range catalog.Sections() {
		si := SectionInfo{Name: s.Name, Options: len(s.Options())}
		if tree := cfg.Section(s.Name); len(tree) > 0 {
			set, err := option.Flatten(tree)
			if err == nil {
				for _, o := range s.Options() {
					if set.Has(o.Key) {
						si.Overridden++
					}
				}
			}
		}
		r.Sections = append(r.Sections, si)
	}

	return r, nil
}
