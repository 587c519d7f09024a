package engine

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/esbmc/vscode-esbmc/internal/catalog"
	"github.com/esbmc/vscode-esbmc/internal/config"
	"github.com/esbmc/vscode-esbmc/internal/fingerprint"
	"github.com/esbmc/vscode-esbmc/internal/option"
)

// Compiler turns a settings snapshot into the esbmc flag string and
// remembers the last successful result. While the snapshot's fingerprint
// is unchanged, Compile returns the remembered flags without running any
// encoder. A failed compilation leaves the remembered result untouched.
type Compiler struct {
	mu       sync.Mutex
	encoders []catalog.Named
	logger   *log.Logger
	cached   *cacheEntry
}

type cacheEntry struct {
	sum   fingerprint.Sum
	flags string
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithLogger sets the logger used for cache and compile diagnostics.
func WithLogger(l *log.Logger) CompilerOption {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEncoders replaces the section encoder table. The order of the table
// is the order in which section flags are emitted.
func WithEncoders(encoders []catalog.Named) CompilerOption {
	return func(c *Compiler) {
		c.encoders = encoders
	}
}

// NewCompiler returns a Compiler with an empty cache.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		encoders: catalog.Encoders(),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns the space-joined flags for cfg. Sections are visited in
// encoder table order and only sections with overrides run their encoder.
// The first *catalog.ValidationError aborts compilation.
func (c *Compiler) Compile(cfg config.Settings) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sets, err := flattenSections(cfg, c.names())
	if err != nil {
		return "", err
	}

	sum, err := fingerprint.Of(canonical(sets))
	if err != nil {
		return "", err
	}

	if c.cached != nil && c.cached.sum == sum {
		c.logger.Debug("settings unchanged, reusing flags", "fingerprint", sum.Short())
		return c.cached.flags, nil
	}

	var flags []string
	for _, enc := range c.encoders {
		set := sets[enc.Name]
		if len(set) == 0 {
			continue
		}
		out, err := enc.Encode(set)
		if err != nil {
			c.logger.Debug("compile failed", "section", enc.Name, "err", err)
			return "", err
		}
		flags = append(flags, out...)
	}

	joined := strings.Join(flags, " ")
	c.cached = &cacheEntry{sum: sum, flags: joined}
	c.logger.Debug("compiled settings", "fingerprint", sum.Short(), "flags", len(flags))
	return joined, nil
}

// Reset drops the remembered result.
func (c *Compiler) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func (c *Compiler) names() []string {
	names := make([]string, len(c.encoders))
	for i, enc := range c.encoders {
		names[i] = enc.Name
	}
	return names
}

// Fingerprint returns the digest the compiler keys its cache on: the
// flattened overrides of the catalog sections in cfg.
func Fingerprint(cfg config.Settings) (fingerprint.Sum, error) {
	sets, err := flattenSections(cfg, catalog.Names())
	if err != nil {
		return fingerprint.Sum{}, err
	}
	return fingerprint.Of(canonical(sets))
}

// flattenSections flattens the named sections of cfg. Other sections do
// not contribute flags and are left out.
func flattenSections(cfg config.Settings, names []string) (map[string]option.Set, error) {
	sets := make(map[string]option.Set, len(names))
	for _, name := range names {
		tree := cfg.Section(name)
		if len(tree) == 0 {
			continue
		}
		set, err := flattenSection(name, tree)
		if err != nil {
			return nil, err
		}
		if len(set) > 0 {
			sets[name] = set
		}
	}
	return sets, nil
}

func flattenSection(name string, tree map[string]any) (option.Set, error) {
	set, err := option.Flatten(tree)
	if err != nil {
		var leaf *option.LeafError
		if errors.As(err, &leaf) {
			return nil, &catalog.ValidationError{
				Section: name,
				Keys:    []string{leaf.Path},
				Message: leaf.Err.Error(),
			}
		}
		return nil, err
	}
	return set, nil
}

// canonical maps every value to its plain scalar so that equal settings
// decoded from different formats share a fingerprint.
func canonical(sets map[string]option.Set) map[string]map[string]any {
	out := make(map[string]map[string]any, len(sets))
	for name, set := range sets {
		leaves := make(map[string]any, len(set))
		for k, v := range set {
			leaves[k] = v.Interface()
		}
		out[name] = leaves
	}
	return out
}
