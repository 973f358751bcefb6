package smt

import "github.com/katalvlaran/layoutsynth/constraint"

// Partition splits candidates into the horizontal and vertical Max-SMT
// instances. Every non-aspect-ratio kind
// must already have matching X/Y axes (constraint.NewTemplate enforces
// this at construction); Partition returns ErrAxisAmbiguous if one
// somehow doesn't, since that would be an instantiator bug rather than a
// normal input condition.
//
// KindSizeAspectRatio candidates are the one kind allowed to cross axes
// (relating a view's width to its height). The instantiator emits both
// orderings of every aspect-ratio pair (width-as-Y and height-as-Y); only
// the height-as-Y / width-as-X ordering is usable under this driver's
// horizontal-first solve order, since it treats the already-resolved
// horizontal width as a pinned constant when the vertical instance runs
// (see constraint.NewTemplate's doc comment). The symmetric width-as-Y
// ordering is dropped here — it carries the same information but would
// need the vertical axis solved first, which this driver never does.
func Partition(candidates []constraint.Constraint) (horizontal, vertical []constraint.Constraint, err error) {
	for _, c := range candidates {
		if c.Kind == constraint.KindSizeAspectRatio {
			if c.X == nil {
				continue
			}
			if !c.X.Attr.IsHorizontal() {
				continue
			}
			vertical = append(vertical, c)
			continue
		}
		if c.Y.Attr.IsHorizontal() {
			if c.X != nil && !c.X.Attr.IsHorizontal() {
				return nil, nil, ErrAxisAmbiguous
			}
			horizontal = append(horizontal, c)
		} else {
			if c.X != nil && c.X.Attr.IsHorizontal() {
				return nil, nil, ErrAxisAmbiguous
			}
			vertical = append(vertical, c)
		}
	}
	return horizontal, vertical, nil
}
