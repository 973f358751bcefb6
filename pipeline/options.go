package pipeline

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/layoutsynth/instantiate"
	"github.com/katalvlaran/layoutsynth/learn"
	"github.com/katalvlaran/layoutsynth/smt"
)

// PruningMethod selects between a single direct Max-SMT pass over the
// whole tree ("baseline") and the worklist-driven subtree-by-subtree
// decomposition ("hierarchical"), matching the learning_method/
// pruning_method option table.
type PruningMethod int

const (
	PruningBaseline PruningMethod = iota
	PruningHierarchical
)

// ParsePruningMethod parses the option string "baseline" | "hierarchical".
func ParsePruningMethod(s string) (PruningMethod, error) {
	switch s {
	case "baseline", "":
		return PruningBaseline, nil
	case "hierarchical":
		return PruningHierarchical, nil
	default:
		return 0, ErrUnknownPruningMethod
	}
}

// Option customizes a Synthesize call. As a rule, option constructors
// never panic and ignore nil/zero-value inputs that would otherwise leave
// the config in an inconsistent state.
type Option func(cfg *config)

// config holds every tunable a Synthesize call recognizes. InputFormat
// and NumericType are carried here only for round-tripping into metadata
// an upstream caller (cmd/synthesize, output) may want to echo back —
// Synthesize itself receives already-parsed, already-validated examples
// and never re-derives parsing behavior from them.
type config struct {
	InputFormat string
	NumericType string

	InstantiationMethod instantiate.Method
	LearningMethod      learn.Method
	LearnConfig         learn.Config

	PruningMethod   PruningMethod
	SMTConfig       smt.Config
	IntegrationPass bool

	BoundsCombineTolerance *big.Rat

	DebugNoiseMagnitude *big.Rat
	DebugNoiseRand      *rand.Rand
}

// defaultConfig returns the configuration used when the caller supplies
// none of the option constructors below.
func defaultConfig() config {
	return config{
		InputFormat:            "default",
		NumericType:            "Q",
		InstantiationMethod:    instantiate.MethodNumpy,
		LearningMethod:         learn.MethodNoiseTolerant,
		LearnConfig:            learn.DefaultConfig(),
		PruningMethod:          PruningBaseline,
		SMTConfig:              smt.DefaultConfig(),
		IntegrationPass:        true,
		BoundsCombineTolerance: smt.DefaultBoundsCombineTolerance(),
	}
}

// WithInputFormat records which input format ("default" | "bench") the
// examples were parsed from, for metadata purposes only.
func WithInputFormat(format string) Option {
	return func(cfg *config) {
		if format != "" {
			cfg.InputFormat = format
		}
	}
}

// WithNumericType records the canonical coordinate number type ("N" |
// "R" | "Q" | "Z") the caller parsed with, for metadata purposes only.
func WithNumericType(t string) Option {
	return func(cfg *config) {
		if t != "" {
			cfg.NumericType = t
		}
	}
}

// WithInstantiationMethod selects the template enumerator flavor.
func WithInstantiationMethod(m instantiate.Method) Option {
	return func(cfg *config) { cfg.InstantiationMethod = m }
}

// WithLearningMethod selects the parameter-learning strategy.
func WithLearningMethod(m learn.Method) Option {
	return func(cfg *config) { cfg.LearningMethod = m }
}

// WithLearnConfig overrides the learner's tunable parameters (tolerance,
// max denominator, minimum sample count, max offset).
func WithLearnConfig(lc learn.Config) Option {
	return func(cfg *config) { cfg.LearnConfig = lc }
}

// WithPruningMethod selects between a direct whole-tree Max-SMT pass and
// worklist-driven hierarchical decomposition.
func WithPruningMethod(m PruningMethod) Option {
	return func(cfg *config) { cfg.PruningMethod = m }
}

// WithUnambig toggles the CEGIS unambiguity refinement loop and its
// accompanying determinism clauses.
func WithUnambig(enabled bool) Option {
	return func(cfg *config) { cfg.SMTConfig.Unambig = enabled }
}

// WithSMTConfig overrides the pruner's full tunable set (unambiguity,
// refinement limit, score epsilon, parent-relative bias).
func WithSMTConfig(sc smt.Config) Option {
	return func(cfg *config) { cfg.SMTConfig = sc }
}

// WithIntegrationPass toggles the optional root-level re-admission pass
// that follows hierarchical decomposition (ignored under baseline
// pruning, which never decomposes in the first place).
func WithIntegrationPass(enabled bool) Option {
	return func(cfg *config) { cfg.IntegrationPass = enabled }
}

// WithBoundsCombineTolerance overrides the tolerance the post-solve
// bounds-combine pass uses to collapse a Le/Ge pair into a single Eq. A
// nil tolerance disables the pass entirely.
func WithBoundsCombineTolerance(tol *big.Rat) Option {
	return func(cfg *config) { cfg.BoundsCombineTolerance = tol }
}

// WithDebugNoise perturbs every input rect by up to magnitude (uniformly,
// independently per coordinate) before synthesis runs, for robustness
// testing. A nil or non-positive magnitude is a no-op. A nil rng falls
// back to a fixed seed, so repeated calls without an explicit source stay
// reproducible — the same default builder.WithSeed establishes elsewhere
// in the pack for deterministic randomness.
func WithDebugNoise(magnitude *big.Rat, rng *rand.Rand) Option {
	return func(cfg *config) {
		if magnitude == nil || magnitude.Sign() <= 0 {
			return
		}
		cfg.DebugNoiseMagnitude = magnitude
		cfg.DebugNoiseRand = rng
	}
}
