package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// ruleAlignment emits `y = x + b` (KindPosAlignment, a=1, b free) for a
// sibling pair sharing the same position attribute, where the opposite
// axis's view-level visibility confirms the alignment is geometrically
// meaningful ("y = x" or "y = x + b", alignment): b is
// left free rather than fixed to 0 to tolerate small measurement noise.
//
// Predicate mask: sibling ∧ both_position ∧ same_attr ∧
// ((both_h ∧ view_visible_v) ∨ (both_v ∧ view_visible_h)).
func ruleAlignment(ctx *Context, i, j view.AnchorID) (constraint.Constraint, bool) {
	if !ctx.sibling(i, j) || !bothPosition(i, j) || !ctx.sameAttribute(i, j) {
		return constraint.Constraint{}, false
	}
	horizontalCase := bothHorizontal(i, j) && ctx.viewVisibleV(i, j)
	verticalCase := bothVertical(i, j) && ctx.viewVisibleH(i, j)
	if !horizontalCase && !verticalCase {
		return constraint.Constraint{}, false
	}
	tmpl, err := constraint.NewTemplate(constraint.KindPosAlignment, j, &i, constraint.OpEq)
	if err != nil {
		return constraint.Constraint{}, false
	}
	return tmpl, true
}
