package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/esbmc/vscode-esbmc/internal/option"
)

// Rule selects how an option's value turns into a flag.
type Rule int

const (
	// RuleToggle emits Flag when the boolean differs from its default.
	RuleToggle Rule = iota + 1
	// RuleBound emits "Flag <n>" when the value differs from its default.
	// The value must be a positive integer.
	RuleBound
	// RuleText emits "Flag <value>" for a non-empty value that differs
	// from its default.
	RuleText
	// RuleChoice formats Flag with the value when it differs from its
	// default. The value must be one of Choices.
	RuleChoice
	// RuleRaw formats Flag with the value whenever the key is present,
	// even when it equals the default. The value must be one of Choices.
	RuleRaw
	// RuleLinked options only contribute through a Pair or Group.
	RuleLinked
)

// Option describes one settings key of a section.
type Option struct {
	Key     string
	Kind    option.Kind
	Default option.Value
	Rule    Rule
	Flag    string
	Choices []string
}

// Usage renders the flag an option produces, for listings.
func (o Option) Usage() string {
	switch o.Rule {
	case RuleBound:
		return o.Flag + " <n>"
	case RuleText:
		return o.Flag + " <value>"
	case RuleChoice, RuleRaw:
		return fmt.Sprintf(o.Flag, "<"+strings.Join(o.Choices, "|")+">")
	default:
		return o.Flag
	}
}

func (o Option) options() []Option { return []Option{o} }

func (o Option) encode(e *emitter) {
	v, ok := e.set.Get(o.Key)
	if !ok {
		return
	}
	o.encodeValue(e, v)
}

// checkKind reports a kind mismatch. Integers are accepted for text
// options and rendered in decimal.
func (o Option) checkKind(e *emitter, v option.Value) bool {
	if v.Kind() == o.Kind {
		return true
	}
	if o.Kind == option.KindString && v.Kind() == option.KindInt {
		return true
	}
	e.fail(fmt.Sprintf("must be %s, got %s", article(o.Kind), v), o.Key)
	return false
}

func (o Option) encodeValue(e *emitter, v option.Value) {
	if e.err != nil || !o.checkKind(e, v) {
		return
	}

	switch o.Rule {
	case RuleToggle:
		if !v.Equal(o.Default) {
			e.emit(o.Flag)
		}
	case RuleBound:
		if v.Equal(o.Default) {
			return
		}
		if n, _ := v.AsInt(); n <= 0 {
			e.fail(fmt.Sprintf("must be a positive integer, got %s", v), o.Key)
			return
		}
		e.emit(o.Flag + " " + v.Text())
	case RuleText:
		if v.Text() == "" || v.Equal(o.Default) {
			return
		}
		e.emit(o.Flag + " " + v.Text())
	case RuleChoice:
		if !o.checkChoice(e, v) || v.Equal(o.Default) {
			return
		}
		e.emit(fmt.Sprintf(o.Flag, v.Text()))
	case RuleRaw:
		if !o.checkChoice(e, v) {
			return
		}
		e.emit(fmt.Sprintf(o.Flag, v.Text()))
	case RuleLinked:
	}
}

func (o Option) checkChoice(e *emitter, v option.Value) bool {
	if slices.Contains(o.Choices, v.Text()) {
		return true
	}
	e.fail(fmt.Sprintf("must be one of %s, got %s", strings.Join(o.Choices, ", "), v), o.Key)
	return false
}

// Pair links a primary option to a dependent one. When both are set, the
// dependent differs from its default and Guard accepts the primary value,
// Render replaces the primary's own flag. Otherwise the primary encodes
// alone, unless Guard holds and Missing is set, which is an error.
type Pair struct {
	Primary   Option
	Dependent Option
	// Guard defaults to "primary differs from its default".
	Guard   func(primary option.Value) bool
	Render  func(primary, dependent option.Value) string
	Missing string
}

func (p Pair) options() []Option { return []Option{p.Primary, p.Dependent} }

func (p Pair) encode(e *emitter) {
	dv, hasDependent := e.set.Get(p.Dependent.Key)
	if hasDependent && !p.Dependent.checkKind(e, dv) {
		return
	}
	pv, hasPrimary := e.set.Get(p.Primary.Key)
	if !hasPrimary || !p.Primary.checkKind(e, pv) {
		return
	}

	guard := p.Guard
	if guard == nil {
		guard = func(v option.Value) bool { return !v.Equal(p.Primary.Default) }
	}
	if !guard(pv) {
		p.Primary.encodeValue(e, pv)
		return
	}

	if hasDependent && !dv.Equal(p.Dependent.Default) && dv.Text() != "" {
		e.emit(p.Render(pv, dv))
		return
	}
	if p.Missing != "" {
		e.fail(p.Missing, p.Primary.Key, p.Dependent.Key)
		return
	}
	p.Primary.encodeValue(e, pv)
}

// Member is one arm of a mutex Group.
type Member struct {
	Key    string
	When   func(v option.Value) bool
	Render func(v option.Value) string
}

// Group is a set of conditions of which at most one may hold. Options set
// to their default never trigger. When Exhaustive is non-empty, a
// non-default value that triggers no member is an error with that message.
type Group struct {
	Name       string
	Options    []Option
	Members    []Member
	Exhaustive string
}

func (g Group) options() []Option { return g.Options }

func (g Group) encode(e *emitter) {
	var fired []Member
	var firedValues []option.Value

	for _, o := range g.Options {
		v, ok := e.set.Get(o.Key)
		if !ok {
			continue
		}
		if !o.checkKind(e, v) {
			return
		}
		if v.Equal(o.Default) {
			continue
		}
		matched := false
		for _, m := range g.Members {
			if m.Key == o.Key && m.When(v) {
				fired = append(fired, m)
				firedValues = append(firedValues, v)
				matched = true
			}
		}
		if !matched && g.Exhaustive != "" {
			e.fail(fmt.Sprintf("%s, got %s", g.Exhaustive, v), o.Key)
			return
		}
	}

	switch len(fired) {
	case 0:
	case 1:
		e.emit(fired[0].Render(firedValues[0]))
	default:
		keys := make([]string, len(fired))
		for i, m := range fired {
			keys[i] = m.Key
		}
		e.fail(fmt.Sprintf("at most one %s may be selected", g.Name), keys...)
	}
}

// emitter accumulates one section's flags and its first error.
type emitter struct {
	section string
	set     option.Set
	flags   []string
	err     error
}

func (e *emitter) emit(flag string) {
	if e.err == nil {
		e.flags = append(e.flags, flag)
	}
}

func (e *emitter) fail(msg string, keys ...string) {
	if e.err == nil {
		e.err = &ValidationError{Section: e.section, Keys: keys, Message: msg}
	}
}

func article(k option.Kind) string {
	if k == option.KindInt {
		return "an integer"
	}
	return "a " + k.String()
}
