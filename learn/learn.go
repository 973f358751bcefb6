package learn

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// Method selects the parameter-learning strategy, matching the
// "learning_method" option.
type Method int

const (
	MethodSimple Method = iota
	MethodHeuristic
	MethodNoiseTolerant
)

// ParseMethod parses the option string "simple" | "heuristic" |
// "noisetolerant".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "simple":
		return MethodSimple, nil
	case "heuristic":
		return MethodHeuristic, nil
	case "noisetolerant", "":
		return MethodNoiseTolerant, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// Config bundles the learner's tunable parameters: tolerance, max
// denominator, minimum sample count, and max offset.
type Config struct {
	// Tolerance bounds the banded-equality and Stern–Brocot-neighbourhood
	// search used by the noise-tolerant strategy. Ignored by simple and
	// heuristic, which always demand exact agreement.
	Tolerance *big.Rat

	// MaxDenominator bounds the denominator of a clamped slope in the
	// heuristic strategy. Non-positive means "no bound."
	MaxDenominator int64

	// MinSampleCount is the fewest observations a template must have
	// before it is even attempted; templates with fewer are skipped with
	// an empty candidate slice rather than an error.
	MinSampleCount int

	// MaxOffset rejects any fitted candidate whose |b| exceeds it — a
	// guard against a degenerate offset candidate dominating the SMT
	// search with an implausibly large constant.
	MaxOffset *big.Rat
}

// DefaultConfig returns the configuration used when the caller supplies
// none of the learner-tuning flags.
func DefaultConfig() Config {
	return Config{
		Tolerance:      big.NewRat(1, 1000),
		MaxDenominator: 64,
		MinSampleCount: 1,
		MaxOffset:      big.NewRat(100000, 1),
	}
}

type strategyFunc func(tmpl constraint.Constraint, samples []pairSample, cfg Config) (constraint.Candidate, bool, error)

func pickStrategy(method Method) strategyFunc {
	switch method {
	case MethodSimple:
		return fitSimple
	case MethodHeuristic:
		return fitHeuristic
	default:
		return fitNoiseTolerant
	}
}

// Learn fits concrete (a,b) candidates for every template against every
// example. The returned outer slice is parallel to templates; each inner
// slice holds zero or more candidates surviving the fit: a template
// with no consistent fit yields an empty, not missing, inner
// slice; internal consistency failures such as a division-by-zero ratio
// are likewise absorbed into an empty slice rather than propagated).
func Learn(templates []constraint.Constraint, examples []*view.Example, method Method, cfg Config) ([][]constraint.Candidate, error) {
	strategy := pickStrategy(method)
	out := make([][]constraint.Candidate, len(templates))

	for i, tmpl := range templates {
		samples, err := observe(tmpl, examples)
		if err != nil {
			return nil, err
		}
		if len(samples) < cfg.MinSampleCount {
			continue
		}

		cand, ok, fitErr := strategy(tmpl, samples, cfg)
		if fitErr != nil || !ok {
			continue
		}
		if cfg.MaxOffset != nil && cand.Constraint.B != nil {
			abs := new(big.Rat).Abs(cand.Constraint.B)
			if abs.Cmp(cfg.MaxOffset) > 0 {
				continue
			}
		}
		out[i] = []constraint.Candidate{cand}
	}
	return out, nil
}

// observe collects the (x,y) sample for tmpl from every example, in
// example order.
func observe(tmpl constraint.Constraint, examples []*view.Example) ([]pairSample, error) {
	samples := make([]pairSample, 0, len(examples))
	for _, ex := range examples {
		yAnchor, err := ex.Anchor(tmpl.Y)
		if err != nil {
			return nil, err
		}
		s := pairSample{Y: yAnchor.Value()}
		if tmpl.Kind.HasX() {
			xAnchor, err := ex.Anchor(*tmpl.X)
			if err != nil {
				return nil, err
			}
			s.X = xAnchor.Value()
		}
		samples = append(samples, s)
	}
	return samples, nil
}
