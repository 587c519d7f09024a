// Package catalog declares the ESBMC options of each settings section and
// encodes a section's overridden options into command-line flags.
//
// Every section is a pure encoder: it sees only the keys the user set,
// compares each one with its documented default, validates it and returns
// the flags in declaration order. Dependent pairs and mutex groups are
// declared next to the plain options they involve.
package catalog

import (
	"github.com/esbmc/vscode-esbmc/internal/option"
)

// Encoder translates one section's overridden options into flags.
type Encoder func(set option.Set) ([]string, error)

type entry interface {
	options() []Option
	encode(e *emitter)
}

// Section is one named group of ESBMC options.
type Section struct {
	Name    string
	entries []entry
}

func newSection(name string, entries ...entry) *Section {
	return &Section{Name: name, entries: entries}
}

// Encode returns the flags for the section's overridden options, or the
// first ValidationError found.
func (s *Section) Encode(set option.Set) ([]string, error) {
	e := &emitter{section: s.Name, set: set}
	for _, ent := range s.entries {
		ent.encode(e)
		if e.err != nil {
			return nil, e.err
		}
	}
	return e.flags, nil
}

// Options lists every option of the section in declaration order.
func (s *Section) Options() []Option {
	var out []Option
	for _, ent := range s.entries {
		out = append(out, ent.options()...)
	}
	return out
}

// Lookup finds an option by its dot-path key.
func (s *Section) Lookup(key string) (Option, bool) {
	for _, o := range s.Options() {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Named pairs a section name with its encoder, in canonical order.
type Named struct {
	Name   string
	Encode Encoder
}

// Sections returns the seven sections in canonical order.
func Sections() []*Section {
	return []*Section{
		BMC,
		ConcurrencyChecking,
		FrontEnd,
		KInduction,
		PropertyChecking,
		Solver,
		Trace,
	}
}

// Names returns the canonical section order.
func Names() []string {
	sections := Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

// Encoders returns the encoder table the compiler runs.
func Encoders() []Named {
	sections := Sections()
	out := make([]Named, len(sections))
	for i, s := range sections {
		out[i] = Named{Name: s.Name, Encode: s.Encode}
	}
	return out
}

// Lookup finds a section by name.
func Lookup(name string) (*Section, bool) {
	for _, s := range Sections() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
