package smt

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/view"
)

// term is one coefficient*anchor summand of an affine equation.
type term struct {
	Coef *big.Rat
	ID   view.AnchorID
}

// equation represents `Y = sum(Terms) + Const`, the shape every layout
// axiom and every concrete candidate reduces to once on one axis.
type equation struct {
	Y     view.AnchorID
	Terms []term
	Const *big.Rat
}

// axiomsFor returns the layout axioms for the
// given axis and view set: width/height derived from the LTRB pair,
// center derived as the midpoint. Containment and non-negativity are
// checked separately (checkBounds), since they're inequalities rather
// than equations a propagation fixed point can solve for.
func axiomsFor(axis Axis, views []string) []equation {
	eqs := make([]equation, 0, len(views)*2)
	one := big.NewRat(1, 1)
	half := big.NewRat(1, 2)
	zero := big.NewRat(0, 1)
	for _, v := range views {
		var lo, hi, size, center view.Attribute
		if axis == AxisHorizontal {
			lo, hi, size, center = view.AttrLeft, view.AttrRight, view.AttrWidth, view.AttrCenterX
		} else {
			lo, hi, size, center = view.AttrTop, view.AttrBottom, view.AttrHeight, view.AttrCenterY
		}
		loID := view.AnchorID{View: v, Attr: lo}
		hiID := view.AnchorID{View: v, Attr: hi}
		eqs = append(eqs, equation{
			Y:     view.AnchorID{View: v, Attr: size},
			Terms: []term{{Coef: one, ID: hiID}, {Coef: new(big.Rat).Neg(one), ID: loID}},
			Const: zero,
		})
		eqs = append(eqs, equation{
			Y:     view.AnchorID{View: v, Attr: center},
			Terms: []term{{Coef: half, ID: loID}, {Coef: half, ID: hiID}},
			Const: zero,
		})
	}
	return eqs
}

// pinFocus returns the equations that pin the focus view's four anchors
// to a sampled conformance's values: left/top to
// the conformance's position, width/height to its size. Right/bottom and
// center follow from axiomsFor's equations once left/top and
// width/height are known.
func pinFocus(axis Axis, focus string, w, pos *big.Rat) []equation {
	var posAttr, sizeAttr view.Attribute
	if axis == AxisHorizontal {
		posAttr, sizeAttr = view.AttrLeft, view.AttrWidth
	} else {
		posAttr, sizeAttr = view.AttrTop, view.AttrHeight
	}
	return []equation{
		{Y: view.AnchorID{View: focus, Attr: posAttr}, Const: new(big.Rat).Set(pos)},
		{Y: view.AnchorID{View: focus, Attr: sizeAttr}, Const: new(big.Rat).Set(w)},
	}
}

// propagate repeatedly solves any equation with exactly one unknown
// slot, updating known in place, until no equation can make further
// progress. It returns false the instant an equation is fully known but
// inconsistent — the iterative-substitution analogue of detecting an
// infeasible linear system — a rational constraint propagation check in
// place of a general Gaussian/interval solve, without
// needing a general matrix solve (no candidate shape the instantiator
// emits ever produces more than two free variables in one equation).
func propagate(eqs []equation, known map[view.AnchorID]*big.Rat) bool {
	for {
		progressed := false
		for _, eq := range eqs {
			slots := make([]term, 0, len(eq.Terms)+1)
			slots = append(slots, term{Coef: big.NewRat(1, 1), ID: eq.Y})
			for _, t := range eq.Terms {
				slots = append(slots, term{Coef: new(big.Rat).Neg(t.Coef), ID: t.ID})
			}

			knownSum := big.NewRat(0, 1)
			unknownIdx := -1
			unknownCount := 0
			for i, s := range slots {
				if v, ok := known[s.ID]; ok {
					knownSum.Add(knownSum, new(big.Rat).Mul(s.Coef, v))
				} else {
					unknownCount++
					unknownIdx = i
				}
			}

			if unknownCount == 0 {
				if knownSum.Cmp(eq.Const) != 0 {
					return false
				}
				continue
			}
			if unknownCount == 1 {
				s := slots[unknownIdx]
				if s.Coef.Sign() == 0 {
					continue
				}
				rhs := new(big.Rat).Sub(eq.Const, knownSum)
				known[s.ID] = new(big.Rat).Quo(rhs, s.Coef)
				progressed = true
			}
		}
		if !progressed {
			return true
		}
	}
}

// checkBounds verifies every anchor value propagate resolved is
// non-negative, and that every resolved child lies within the resolved
// focus bounds on this axis (the non-negativity and containment
// axioms). Anchors that never resolved are silently skipped
// — this driver only rejects configurations it can prove violate an
// axiom, never ones it simply couldn't fully evaluate.
func checkBounds(known map[view.AnchorID]*big.Rat, axis Axis, target Target) bool {
	for _, v := range known {
		if v.Sign() < 0 {
			return false
		}
	}

	var loAttr, hiAttr view.Attribute
	if axis == AxisHorizontal {
		loAttr, hiAttr = view.AttrLeft, view.AttrRight
	} else {
		loAttr, hiAttr = view.AttrTop, view.AttrBottom
	}
	focusLo, hasFocusLo := known[view.AnchorID{View: target.Focus, Attr: loAttr}]
	focusHi, hasFocusHi := known[view.AnchorID{View: target.Focus, Attr: hiAttr}]

	for _, child := range target.Children {
		if hasFocusLo {
			if cLo, ok := known[view.AnchorID{View: child, Attr: loAttr}]; ok {
				if cLo.Cmp(focusLo) < 0 {
					return false
				}
			}
		}
		if hasFocusHi {
			if cHi, ok := known[view.AnchorID{View: child, Attr: hiAttr}]; ok {
				if cHi.Cmp(focusHi) > 0 {
					return false
				}
			}
		}
	}
	return true
}

// fullyDetermined reports whether every view in target has all four of
// this axis's attributes resolved in known — the uniqueness criterion
// the CEGIS loop uses: if propagation alone pins every anchor, the
// selected subset admits exactly one placement.
func fullyDetermined(known map[view.AnchorID]*big.Rat, axis Axis, target Target) bool {
	var attrs [4]view.Attribute
	if axis == AxisHorizontal {
		attrs = [4]view.Attribute{view.AttrLeft, view.AttrRight, view.AttrCenterX, view.AttrWidth}
	} else {
		attrs = [4]view.Attribute{view.AttrTop, view.AttrBottom, view.AttrCenterY, view.AttrHeight}
	}
	for _, v := range target.Views() {
		for _, a := range attrs {
			if _, ok := known[view.AnchorID{View: v, Attr: a}]; !ok {
				return false
			}
		}
	}
	return true
}
