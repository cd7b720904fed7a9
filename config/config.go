// Package config loads the rewrite pipeline definition from a YAML file and
// turns it into executable passes. The engine itself assumes a validated
// configuration; every host-side check lives here.
package config

// Config is the root of a pipeline file.
type Config struct {
	// Passes run in declaration order; each entry selects one pass by name
	// and carries its settings.
	Passes []PassConfig `yaml:"passes"`
}

// PassConfig configures a single pass. Which fields apply depends on Name.
type PassConfig struct {
	// Name selects the pass: "call-migration", "guard-injection" or
	// "loop-unroll".
	Name string `yaml:"name"`

	// call-migration: rewrite calls of Old into calls of New. A keyword
	// argument named Keyword is preserved inside a dict under Wrapper.
	Old     string `yaml:"old"`
	New     string `yaml:"new"`
	Keyword string `yaml:"keyword"`
	Wrapper string `yaml:"wrapper"`

	// guard-injection: map of dotted callee path to guard settings.
	Guards map[string]GuardConfig `yaml:"guards"`

	// loop-unroll: body copies per driving-loop step (default 4) and the
	// name of the counting primitive (default "range").
	Factor    int    `yaml:"factor"`
	RangeFunc string `yaml:"range_func"`
}

// GuardConfig configures the protection of one risky callee.
type GuardConfig struct {
	// Exception is the dotted path of the exception to catch.
	Exception string `yaml:"exception"`

	// Fallback is the scalar the assignment target is reset to when the
	// guard fires: a string, int, float, bool, or null.
	Fallback any `yaml:"fallback"`
}

// Pass names accepted in pipeline files.
const (
	PassCallMigration  = "call-migration"
	PassGuardInjection = "guard-injection"
	PassLoopUnroll     = "loop-unroll"
)
