package visibility

import "github.com/katalvlaran/layoutsynth/view"

// Relation is the boolean symmetric visibility relation over the anchor
// index set of a reference example, plus the view-level
// alignment-visibility promotion.
type Relation struct {
	anchorPairs map[view.AnchorID]map[view.AnchorID]struct{}
	viewPairsH  map[string]map[string]struct{} // view_visible_h
	viewPairsV  map[string]map[string]struct{} // view_visible_v
}

func newRelationState() *Relation {
	return &Relation{
		anchorPairs: make(map[view.AnchorID]map[view.AnchorID]struct{}),
		viewPairsH:  make(map[string]map[string]struct{}),
		viewPairsV:  make(map[string]map[string]struct{}),
	}
}

func (r *Relation) addAnchorPair(a, b view.AnchorID) {
	if a == b {
		return
	}
	addSym(r.anchorPairs, a, b)
}

func addSym(m map[view.AnchorID]map[view.AnchorID]struct{}, a, b view.AnchorID) {
	if m[a] == nil {
		m[a] = make(map[view.AnchorID]struct{})
	}
	if m[b] == nil {
		m[b] = make(map[view.AnchorID]struct{})
	}
	m[a][b] = struct{}{}
	m[b][a] = struct{}{}
}

func addViewSym(m map[string]map[string]struct{}, a, b string) {
	if a == b {
		return
	}
	if m[a] == nil {
		m[a] = make(map[string]struct{})
	}
	if m[b] == nil {
		m[b] = make(map[string]struct{})
	}
	m[a][b] = struct{}{}
	m[b][a] = struct{}{}
}

// AnchorsVisible reports whether a and b were found visible to one
// another over the union of all examples processed by Compute.
func (r *Relation) AnchorsVisible(a, b view.AnchorID) bool {
	if r == nil {
		return false
	}
	nbrs, ok := r.anchorPairs[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]
	return ok
}

// ViewsVisibleHorizontal reports whether any anchor pair between views a
// and b was deemed visible on a horizontal sweep (the promotion used by
// the alignment rule's "view_visible_h" predicate).
func (r *Relation) ViewsVisibleHorizontal(a, b string) bool {
	return viewVisible(r.viewPairsH, a, b)
}

// ViewsVisibleVertical is the vertical-sweep counterpart of
// ViewsVisibleHorizontal ("view_visible_v").
func (r *Relation) ViewsVisibleVertical(a, b string) bool {
	return viewVisible(r.viewPairsV, a, b)
}

func viewVisible(m map[string]map[string]struct{}, a, b string) bool {
	if m == nil {
		return false
	}
	nbrs, ok := m[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]
	return ok
}

// promoteViewPair lifts one visible anchor pair to the view level (the OR
// over every anchor pair of the two views): a pair found on a horizontal
// sweep line (y = c, horizontalSweep true) marks viewPairsH
// (view_visible_h); a pair found on a vertical sweep line (x = c) marks
// viewPairsV (view_visible_v). The alignment rule pairs view_visible_v
// with horizontal attributes and view_visible_h with vertical ones.
func (r *Relation) promoteViewPair(viewA, viewB string, horizontalSweep bool) {
	if horizontalSweep {
		addViewSym(r.viewPairsH, viewA, viewB)
	} else {
		addViewSym(r.viewPairsV, viewA, viewB)
	}
}
