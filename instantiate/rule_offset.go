package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// ruleOffset emits `y = x + b` (KindPosOffset, a=1, b free) for either:
//   - a parent/child pair sharing the same position attribute and
//     visible to one another (e.g. child.left = root.left + 10), or
//   - a sibling pair on dual attributes (left/right or top/bottom) that
//     are visible to one another (e.g. left.right + gap = right.left).
//
// Predicate mask: (parent_of ∧ both_position ∧ same_attr ∧ visible) ∨
// (sibling ∧ both_position ∧ dual_type ∧ visible). i is X, j is Y.
func ruleOffset(ctx *Context, i, j view.AnchorID) (constraint.Constraint, bool) {
	if !bothPosition(i, j) || !ctx.visible(i, j) {
		return constraint.Constraint{}, false
	}
	parentCase := ctx.parentOf(i, j) && ctx.sameAttribute(i, j)
	siblingCase := ctx.sibling(i, j) && dualType(i, j)
	if !parentCase && !siblingCase {
		return constraint.Constraint{}, false
	}
	tmpl, err := constraint.NewTemplate(constraint.KindPosOffset, j, &i, constraint.OpEq)
	if err != nil {
		return constraint.Constraint{}, false
	}
	return tmpl, true
}
