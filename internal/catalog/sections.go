package catalog

import (
	"github.com/esbmc/vscode-esbmc/internal/option"
)

const unbounded = -1

// BMC holds the bounded model checking options.
var BMC = newSection("bmc",
	text("mainFunction", "main", "--function"),
	bound("claim", unbounded, "--claim"),
	bound("instruction", unbounded, "--instruction"),
	bound("unwind", unbounded, "--unwind"),
	bound("unwindSet", unbounded, "--unwindset"),
	toggle("unwindingAssertions", true, "--no-unwinding-assertions"),
	toggle("partialUnwinding", false, "--partial-loops"),
	toggle("sliceEquations", true, "--no-slice"),
	toggle("initializeNondetVariables", false, "--initialize-nondet-variables"),
	toggle("gotoUnwinding", false, "--goto-unwind"),
	toggle("sliceAssumes", false, "--slice-assumes"),
	Group{
		Name: "verification strategy",
		Options: []Option{
			linked("incrementalBmc", option.Bool(false), "--incremental-bmc"),
			linked("falsification", option.Bool(false), "--falsification"),
			linked("termination", option.Bool(false), "--termination"),
		},
		Members: []Member{
			{Key: "incrementalBmc", When: isTrue, Render: fixed("--incremental-bmc")},
			{Key: "falsification", When: isTrue, Render: fixed("--falsification")},
			{Key: "termination", When: isTrue, Render: fixed("--termination")},
		},
	},
)

// ConcurrencyChecking holds the multi-threaded program options.
var ConcurrencyChecking = newSection("concurrencyChecking",
	toggle("checkAllInterleavings", false, "--all-runs"),
	toggle("gotoMerging", true, "--no-goto-merge"),
	toggle("partialOrderReduction", true, "--no-por"),
	toggle("stateHashing", false, "--state-hashing"),
	bound("contextBound", unbounded, "--context-bound"),
)

// FrontEnd holds the parsing and printing options.
var FrontEnd = newSection("frontEnd",
	Pair{
		Primary:   text("includePath", "", "--include"),
		Dependent: linked("includeAfter", option.Bool(false), "--idirafter <includePath>"),
		Render: func(path, _ option.Value) string {
			return "--idirafter " + path.Text()
		},
	},
	text("defineMacros", "", "--define"),
	choice("programLoopClaimVcs", "none", "--%s",
		"none", "preprocess", "no-inlining", "full-inlining", "show-loops",
		"show-claims", "show-vcc", "document-subgoals"),
	toggle("claimRemoval", false, "--all-claims"),
	Option{
		Key:     "wordLength",
		Kind:    option.KindInt,
		Default: option.Int(64),
		Rule:    RuleRaw,
		Flag:    "--%s",
		Choices: []string{"16", "32", "64"},
	},
	Option{
		Key:     "architecture",
		Kind:    option.KindString,
		Default: option.String("i386-linux"),
		Rule:    RuleRaw,
		Flag:    "--%s",
		Choices: []string{"i386-linux", "i386-macos", "ppc-macos", "i386-win32"},
	},
	choice("endianness", "none", "--%s", "none", "little-endian", "big-endian"),
	choice("printingOptions", "none", "--%s",
		"none",
		"symbol-table-only", "symbol-table-too",
		"parse-tree-only", "parse-tree-too",
		"goto-functions-only", "goto-functions-too",
		"program-only", "program-too",
		"ssa-symbol-table", "ssa-guards", "ssa-sliced", "ssa-no-location",
		"smt-formula-only", "smt-formula-too", "smt-model"),
	toggle("resultOnly", false, "--result-only"),
)

// KInduction holds the k-induction proof options.
var KInduction = newSection("kinduction",
	toggle("checkBaseCase", false, "--base-case"),
	toggle("checkForwardCondition", false, "--forward-condition"),
	toggle("checkInductiveStep", false, "--inductive-step"),
	Pair{
		Primary:   toggle("prove", false, "--k-induction"),
		Dependent: linked("parallelise", option.Bool(false), "--k-induction-parallel"),
		Guard:     isTrue,
		Render: func(_, _ option.Value) string {
			return "--k-induction-parallel"
		},
	},
	bound("kIncrement", 1, "--k-step"),
	Group{
		Name: "k-step limit",
		Options: []Option{
			linked("iterationMax", option.Int(50), "--max-k-step <n> | --unlimited-k-steps"),
		},
		Members: []Member{
			{
				Key:    "iterationMax",
				When:   func(v option.Value) bool { n, _ := v.AsInt(); return n > 0 },
				Render: func(v option.Value) string { return "--max-k-step " + v.Text() },
			},
			{
				Key:    "iterationMax",
				When:   func(v option.Value) bool { n, _ := v.AsInt(); return n == unbounded },
				Render: fixed("--unlimited-k-steps"),
			},
		},
		Exhaustive: "must be a positive integer, or -1 for unlimited k steps",
	},
	toggle("bidirectional", false, "--show-symex-value-set"),
)

// PropertyChecking holds the safety property options.
var PropertyChecking = newSection("propertyChecking",
	toggle("properties.arrayBounds", true, "--no-bounds-check"),
	toggle("properties.pointer", true, "--no-pointer-check"),
	toggle("properties.pointerAlignment", true, "--no-align-check"),
	toggle("properties.pointerRelations", true, "--no-pointer-relation-check"),
	toggle("properties.nan", false, "--nan-check"),
	toggle("properties.memoryLeak", false, "--memory-leak-check"),
	toggle("properties.divisionByZero", true, "--no-div-by-zero-check"),
	toggle("properties.overflowAndUnderflow", false, "--overflow-check"),
	toggle("properties.assertions", true, "--no-assertions"),
	toggle("properties.structFields", false, "--struct-fields-check"),
	toggle("properties.deadlock", false, "--deadlock-check"),
	toggle("properties.dataRace", false, "--data-races-check"),
	toggle("properties.lockOrder", false, "--lock-order-check"),
	toggle("properties.atomicity", false, "--atomicity-check"),
	toggle("properties.forceMallocSuccess", true, "--force-malloc-success"),
	bound("checkStackLimit", unbounded, "--stack-limit"),
	text("checkErrorLabel", "", "--error-label"),
)

// Solver holds the SMT solver options.
var Solver = newSection("solver",
	Pair{
		Primary: choice("smtSolver", "boolector", "--%s",
			"boolector", "z3", "mathsat", "cvc", "yices", "bitwuzla", "custom"),
		Dependent: linked("customSmtSolverPath", option.String(""), "--smtlib-solver-prog <path>"),
		Guard: func(v option.Value) bool {
			return v.Text() == "custom"
		},
		Render: func(_, path option.Value) string {
			return "--smtlib-solver-prog " + path.Text()
		},
		Missing: `a "custom" solver requires customSmtSolverPath`,
	},
	toggle("smtLibFormat", false, "--smtlib"),
	text("vccOutput", "", "--output"),
	choice("arithmetic", "none", "--%s", "none", "bv", "ir"),
	choice("floatingPointEncoding", "none", "--%s", "none", "floatbv", "fixedbv", "fp2bv"),
	choice("tupleEncoding", "none", "--tuple-%s", "none", "node-flattener", "sym-flattener"),
	choice("arrayEncoding", "none", "--array-%s", "none", "flattener"),
	toggle("returnValueOptimisation", true, "--no-return-value-opt"),
	toggle("incrementalSmt", false, "--smt-during-symex"),
	toggle("checkThreadGuard", false, "--smt-thread-guard"),
	toggle("checkSymexGuard", false, "--smt-symex-guard"),
	toggle("checkSymexAsserts", false, "--smt-symex-assert"),
)

// Trace holds the counterexample trace options, nested under "options".
var Trace = newSection("trace",
	toggle("options.quiet", false, "--quiet"),
	toggle("options.compact", false, "--compact-trace"),
	toggle("options.ssa", false, "--ssa-trace"),
	toggle("options.symex", false, "--symex-trace"),
	toggle("options.symex-ssa", false, "--symex-ssa-trace"),
	toggle("options.goto-value-set", false, "--show-goto-value-sets"),
	toggle("options.symex-value-set", false, "--show-symex-value-set"),
)

func toggle(key string, def bool, flag string) Option {
	return Option{Key: key, Kind: option.KindBool, Default: option.Bool(def), Rule: RuleToggle, Flag: flag}
}

func bound(key string, def int64, flag string) Option {
	return Option{Key: key, Kind: option.KindInt, Default: option.Int(def), Rule: RuleBound, Flag: flag}
}

func text(key, def, flag string) Option {
	return Option{Key: key, Kind: option.KindString, Default: option.String(def), Rule: RuleText, Flag: flag}
}

func choice(key, def, flag string, choices ...string) Option {
	return Option{Key: key, Kind: option.KindString, Default: option.String(def), Rule: RuleChoice, Flag: flag, Choices: choices}
}

func linked(key string, def option.Value, usage string) Option {
	return Option{Key: key, Kind: def.Kind(), Default: def, Rule: RuleLinked, Flag: usage}
}

func isTrue(v option.Value) bool {
	b, ok := v.AsBool()
	return ok && b
}

func fixed(flag string) func(option.Value) string {
	return func(option.Value) string { return flag }
}
