package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// ruleConstant emits `size = b` (KindSizeConstant, a=0, b free) for any
// single size attribute, with no X anchor ("y = b", constant size).
// Predicate mask: y.is_size.
func ruleConstant(y view.AnchorID) (constraint.Constraint, bool) {
	if !y.Attr.IsSize() {
		return constraint.Constraint{}, false
	}
	tmpl, err := constraint.NewTemplate(constraint.KindSizeConstant, y, nil, constraint.OpEq)
	if err != nil {
		return constraint.Constraint{}, false
	}
	return tmpl, true
}
