// Package evaluate holds out examples from synthesis, re-solves the
// selected constraints against each one's root rect, and scores how
// closely the re-solved layout matches the original by the RMSD and
// within-threshold accuracy metrics.
package evaluate

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// term and equation mirror the affine-equation shape smt/propagate.go
// solves for; this package re-solves over the whole view tree at once
// (every descendant, both axes together) rather than one Target
// subtree's single axis, so it keeps its own small copy of the
// propagation loop instead of importing smt's unexported internals.
type term struct {
	Coef *big.Rat
	ID   view.AnchorID
}

type equation struct {
	Y     view.AnchorID
	Terms []term
	Const *big.Rat
}

// LTWH is a view's resolved (left, top, width, height), the quadruple
// the RMSD/accuracy metrics compare (the left/top/width/height
// convention for view geometry).
type LTWH struct {
	Left, Top, Width, Height float64
}

// Resolve re-derives every view's geometry from root's observed rect and
// the selected constraints, by iterative rational propagation to a fixed
// point. Views whose four LTWH components never all resolve are omitted
// from the result rather than erroring: calculate_rmsd/calculate_accuracy
// only ever compare anchors common to both sides anyway.
func Resolve(root *view.View, selected []constraint.Constraint) map[string]LTWH {
	known := map[view.AnchorID]*big.Rat{
		{View: root.Name, Attr: view.AttrLeft}:  new(big.Rat).Set(root.Rect.Left),
		{View: root.Name, Attr: view.AttrTop}:    new(big.Rat).Set(root.Rect.Top),
		{View: root.Name, Attr: view.AttrRight}:  new(big.Rat).Set(root.Rect.Right),
		{View: root.Name, Attr: view.AttrBottom}: new(big.Rat).Set(root.Rect.Bottom),
	}

	views := view.Preorder(root, nil)
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}

	eqs := axiomsForAll(names)
	for _, c := range selected {
		eqs = append(eqs, candidateEquation(c))
	}
	propagate(eqs, known)

	out := make(map[string]LTWH, len(views))
	for _, v := range views {
		left, okL := known[view.AnchorID{View: v.Name, Attr: view.AttrLeft}]
		top, okT := known[view.AnchorID{View: v.Name, Attr: view.AttrTop}]
		width, okW := known[view.AnchorID{View: v.Name, Attr: view.AttrWidth}]
		height, okH := known[view.AnchorID{View: v.Name, Attr: view.AttrHeight}]
		if !okL || !okT || !okW || !okH {
			continue
		}
		lf, _ := left.Float64()
		tf, _ := top.Float64()
		wf, _ := width.Float64()
		hf, _ := height.Float64()
		out[v.Name] = LTWH{Left: lf, Top: tf, Width: wf, Height: hf}
	}
	return out
}

func axiomsForAll(views []string) []equation {
	eqs := make([]equation, 0, len(views)*4)
	one := big.NewRat(1, 1)
	half := big.NewRat(1, 2)
	zero := big.NewRat(0, 1)
	for _, v := range views {
		left := view.AnchorID{View: v, Attr: view.AttrLeft}
		top := view.AnchorID{View: v, Attr: view.AttrTop}
		right := view.AnchorID{View: v, Attr: view.AttrRight}
		bottom := view.AnchorID{View: v, Attr: view.AttrBottom}
		eqs = append(eqs,
			equation{Y: view.AnchorID{View: v, Attr: view.AttrWidth}, Terms: []term{{Coef: one, ID: right}, {Coef: new(big.Rat).Neg(one), ID: left}}, Const: zero},
			equation{Y: view.AnchorID{View: v, Attr: view.AttrHeight}, Terms: []term{{Coef: one, ID: bottom}, {Coef: new(big.Rat).Neg(one), ID: top}}, Const: zero},
			equation{Y: view.AnchorID{View: v, Attr: view.AttrCenterX}, Terms: []term{{Coef: half, ID: left}, {Coef: half, ID: right}}, Const: zero},
			equation{Y: view.AnchorID{View: v, Attr: view.AttrCenterY}, Terms: []term{{Coef: half, ID: top}, {Coef: half, ID: bottom}}, Const: zero},
		)
	}
	return eqs
}

func candidateEquation(c constraint.Constraint) equation {
	if c.X == nil {
		return equation{Y: c.Y, Const: new(big.Rat).Set(c.B)}
	}
	return equation{Y: c.Y, Terms: []term{{Coef: new(big.Rat).Set(c.A), ID: *c.X}}, Const: new(big.Rat).Set(c.B)}
}

// propagate is smt/propagate.go's single-unknown substitution loop,
// generalized to run until nothing more resolves rather than reporting
// feasibility: Resolve only ever reads back what did converge.
func propagate(eqs []equation, known map[view.AnchorID]*big.Rat) {
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
			if unknownCount != 1 {
				continue
			}
			s := slots[unknownIdx]
			if s.Coef.Sign() == 0 {
				continue
			}
			rhs := new(big.Rat).Sub(eq.Const, knownSum)
			known[s.ID] = new(big.Rat).Quo(rhs, s.Coef)
			progressed = true
		}
		if !progressed {
			return
		}
	}
}
