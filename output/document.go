package output

import (
	"encoding/json"
	"math/big"
	"sort"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// axioms is the fixed, human-readable list of layout axioms every
// solved instance enforces, regardless of which constraints were
// selected — the hard equalities and inequalities the SMT pruner treats
// as non-negotiable background facts rather than scored candidates.
var axioms = []string{
	"width = right - left",
	"height = bottom - top",
	"center_x = (left + right) / 2",
	"center_y = (top + bottom) / 2",
	"0 <= child.left, child.right <= parent.right",
	"0 <= child.top, child.bottom <= parent.bottom",
}

// Document is the top-level JSON shape written to an output file.
type Document struct {
	Constraints   []constraint.Dict `json:"constraints"`
	Axioms        []string          `json:"axioms"`
	ValuationsMin map[string]string `json:"valuations_min,omitempty"`
	ValuationsMax map[string]string `json:"valuations_max,omitempty"`
}

// Build assembles a Document from a pruned constraint set and the
// min/max anchor valuations the pruner observed for it. It returns
// ErrUnboundTemplate if any constraint in selected is still a template.
func Build(selected []constraint.Constraint, minVals, maxVals map[view.AnchorID]*big.Rat) (Document, error) {
	dicts := make([]constraint.Dict, len(selected))
	for i, c := range selected {
		d, err := c.ToDict()
		if err != nil {
			return Document{}, err
		}
		dicts[i] = d
	}
	return Document{
		Constraints:   dicts,
		Axioms:        axioms,
		ValuationsMin: valuationDict(minVals),
		ValuationsMax: valuationDict(maxVals),
	}, nil
}

func valuationDict(vals map[view.AnchorID]*big.Rat) map[string]string {
	if len(vals) == 0 {
		return nil
	}
	out := make(map[string]string, len(vals))
	for id, v := range vals {
		out[id.String()] = ratString(v)
	}
	return out
}

func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// Marshal renders d as indented JSON, with constraints sorted for
// deterministic output: the synthesizer's output does not depend on map
// iteration order.
func (d Document) Marshal() ([]byte, error) {
	sort.Slice(d.Constraints, func(i, j int) bool {
		a, b := d.Constraints[i], d.Constraints[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Kind < b.Kind
	})
	return json.MarshalIndent(d, "", "  ")
}
