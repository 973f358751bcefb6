package pipeline

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/layoutsynth/view"
)

// applyDebugNoise rebuilds every example with each view's rect perturbed
// independently: left/top shift by a uniform random delta in
// [-magnitude, magnitude], width/height shift the same way then clamp to
// zero rather than go negative. The result is a fresh, independently
// validated example set — the input is never mutated in place.
func applyDebugNoise(examples []*view.Example, magnitude *big.Rat, rng *rand.Rand) ([]*view.Example, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	out := make([]*view.Example, len(examples))
	for i, ex := range examples {
		spec, err := perturbSpec(ex.Root, magnitude, rng)
		if err != nil {
			return nil, err
		}
		root, err := view.Build(spec)
		if err != nil {
			return nil, err
		}
		out[i] = view.NewExample(root)
	}
	return out, nil
}

func perturbSpec(v *view.View, magnitude *big.Rat, rng *rand.Rand) (view.Spec, error) {
	rect, err := perturbRect(v.Rect, magnitude, rng)
	if err != nil {
		return view.Spec{}, err
	}
	spec := view.Spec{Name: v.Name, Rect: rect}
	if len(v.Children) > 0 {
		spec.Children = make([]view.Spec, len(v.Children))
		for i, child := range v.Children {
			childSpec, err := perturbSpec(child, magnitude, rng)
			if err != nil {
				return view.Spec{}, err
			}
			spec.Children[i] = childSpec
		}
	}
	return spec, nil
}

func perturbRect(r view.Rect, magnitude *big.Rat, rng *rand.Rand) (view.Rect, error) {
	left := jitter(r.Left, magnitude, rng)
	top := jitter(r.Top, magnitude, rng)
	width := jitterNonNegative(r.Width(), magnitude, rng)
	height := jitterNonNegative(r.Height(), magnitude, rng)
	right := new(big.Rat).Add(left, width)
	bottom := new(big.Rat).Add(top, height)
	return view.NewRect(left, top, right, bottom)
}

func jitter(v, magnitude *big.Rat, rng *rand.Rand) *big.Rat {
	frac := new(big.Rat).SetFloat64(rng.Float64()*2 - 1)
	delta := new(big.Rat).Mul(magnitude, frac)
	return new(big.Rat).Add(v, delta)
}

func jitterNonNegative(v, magnitude *big.Rat, rng *rand.Rand) *big.Rat {
	out := jitter(v, magnitude, rng)
	if out.Sign() < 0 {
		return big.NewRat(0, 1)
	}
	return out
}
