package engine

import (
	"errors"
	"sort"
	"strings"

	"github.com/esbmc/vscode-esbmc/internal/catalog"
	"github.com/esbmc/vscode-esbmc/internal/config"
)

// CheckEngine lints a settings snapshot against the option catalog.
type CheckEngine struct {
	// Sections is the catalog to check against. Nil means catalog.Sections().
	Sections []*catalog.Section
}

// Check reports unknown sections and keys, and the first invalid value or
// combination in each known section. Returns Clean=true if nothing was found.
func (e *CheckEngine) Check(cfg config.Settings) *CheckResult {
	result := &CheckResult{Clean: true}

	known := make(map[string]*catalog.Section)
	for _, s := range e.sections() {
		known[s.Name] = s
	}

	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		tree := cfg[name]
		if len(tree) == 0 {
			continue
		}

		section, ok := known[name]
		if !ok {
			result.Unknown = append(result.Unknown, Finding{
				Section: name,
				Message: "unknown section",
			})
			continue
		}

		set, err := flattenSection(name, tree)
		if err != nil {
			result.Invalid = append(result.Invalid, invalidFinding(name, err))
			continue
		}

		for _, key := range set.Keys() {
			if _, ok := section.Lookup(key); !ok {
				result.Unknown = append(result.Unknown, Finding{
					Section: name,
					Key:     key,
					Message: "unknown option",
				})
			}
		}

		if _, err := section.Encode(set); err != nil {
			result.Invalid = append(result.Invalid, invalidFinding(name, err))
		}
	}

	result.Clean = len(result.Unknown) == 0 && len(result.Invalid) == 0
	return result
}

func (e *CheckEngine) sections() []*catalog.Section {
	if e.Sections != nil {
		return e.Sections
	}
	return catalog.Sections()
}

func invalidFinding(section string, err error) Finding {
	var ve *catalog.ValidationError
	if errors.As(err, &ve) {
		return Finding{
			Section: section,
			Key:     strings.Join(ve.Keys, ", "),
			Message: ve.Message,
		}
	}
	return Finding{Section: section, Message: err.Error()}
}
