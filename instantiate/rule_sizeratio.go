package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// ruleSizeRatio emits `child.size = a*parent.size` (KindSizeRatio, a
// free, b=0) for a parent/child pair of size attributes on the same axis
// (`child.size = a * parent.size`).
//
// Predicate mask: parent_of ∧ both_size ∧ (both_h ∨ both_v). i is the
// parent (X), j is the child (Y), per the parent_of(i,j) convention.
func ruleSizeRatio(ctx *Context, i, j view.AnchorID) (constraint.Constraint, bool) {
	if !ctx.parentOf(i, j) || !bothSize(i, j) {
		return constraint.Constraint{}, false
	}
	if !bothHorizontal(i, j) && !bothVertical(i, j) {
		return constraint.Constraint{}, false
	}
	tmpl, err := constraint.NewTemplate(constraint.KindSizeRatio, j, &i, constraint.OpEq)
	if err != nil {
		return constraint.Constraint{}, false
	}
	return tmpl, true
}
