package smt_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/smt"
	"github.com/katalvlaran/layoutsynth/view"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func anchor(v string, attr view.Attribute) view.AnchorID {
	return view.AnchorID{View: v, Attr: attr}
}

func eqConstraint(kind constraint.ConstraintKind, y, x view.AnchorID, a, b int64, bd int64) constraint.Constraint {
	c, err := constraint.NewTemplate(kind, y, &x, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return c.Subst(rat(a, bd), rat(b, bd), 3)
}

func constConstraint(y view.AnchorID, b int64) constraint.Constraint {
	c, err := constraint.NewTemplate(constraint.KindSizeConstant, y, nil, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return c.Subst(rat(0, 1), rat(b, 1), 3)
}

func headerTarget() (smt.Target, smt.Bounds) {
	target := smt.Target{Focus: "root", Children: []string{"header"}}
	lo := constraint.NewConformance(rat(100, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	hi := constraint.NewConformance(rat(200, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	return target, smt.Bounds{Lo: lo, Hi: hi}
}

func TestPartitionSeparatesAxesAndRoutesAspectRatioVertical(t *testing.T) {
	offsetLeft := eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0, 1)
	ratioWidth := eqConstraint(constraint.KindSizeRatio, anchor("header", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0, 1)
	offsetTop := eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrTop), anchor("root", view.AttrTop), 1, 0, 1)
	aspectRatio := eqConstraint(constraint.KindSizeAspectRatio, anchor("header", view.AttrHeight), anchor("header", view.AttrWidth), 1, 4, 1)

	h, v, err := smt.Partition([]constraint.Constraint{offsetLeft, ratioWidth, offsetTop, aspectRatio})
	require.NoError(t, err)
	assert.Len(t, h, 2)
	assert.Len(t, v, 2)
	for _, c := range v {
		assert.True(t, c.Kind == constraint.KindPosOffset || c.Kind == constraint.KindSizeAspectRatio)
	}
}

func TestPartitionRejectsCrossAxisNonAspectConstraint(t *testing.T) {
	x := anchor("root", view.AttrLeft)
	bad, err := constraint.NewTemplate(constraint.KindPosOffset, anchor("header", view.AttrLeft), &x, constraint.OpEq)
	require.NoError(t, err)
	bad.X = &view.AnchorID{View: "root", Attr: view.AttrTop}
	bad = bad.Subst(rat(1, 1), rat(0, 1), 1)

	_, _, err = smt.Partition([]constraint.Constraint{bad})
	assert.ErrorIs(t, err, smt.ErrAxisAmbiguous)
}

func TestPruneSolvesSimpleHeaderLayout(t *testing.T) {
	target, bounds := headerTarget()

	candidates := []constraint.Candidate{
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0, 1), Score: 10},
		{Constraint: eqConstraint(constraint.KindSizeRatio, anchor("header", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0, 1), Score: 10},
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrTop), anchor("root", view.AttrTop), 1, 0, 1), Score: 10},
		{Constraint: constConstraint(anchor("header", view.AttrHeight), 20), Score: 10},
	}

	cfg := smt.DefaultConfig()
	cfg.Unambig = false
	result, err := smt.Prune(context.Background(), candidates, target, bounds, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Selected, 4)

	headerWidthLo := result.MinVals[anchor("header", view.AttrWidth)]
	require.NotNil(t, headerWidthLo)
	assert.Equal(t, 0, headerWidthLo.Cmp(rat(100, 1)))

	headerWidthHi := result.MaxVals[anchor("header", view.AttrWidth)]
	require.NotNil(t, headerWidthHi)
	assert.Equal(t, 0, headerWidthHi.Cmp(rat(200, 1)))

	headerHeight := result.MinVals[anchor("header", view.AttrHeight)]
	require.NotNil(t, headerHeight)
	assert.Equal(t, 0, headerHeight.Cmp(rat(20, 1)))
}

func TestPruneRejectsInfeasibleCandidateSet(t *testing.T) {
	target, bounds := headerTarget()

	// header.width = root.width (ratio 1) contradicts a fixed constant
	// width of 50 at every sampled conformance except when root.width
	// happens to equal 50 — which it never does across [100, 200].
	candidates := []constraint.Candidate{
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0, 1), Score: 10},
		{Constraint: eqConstraint(constraint.KindSizeRatio, anchor("header", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0, 1), Score: 10},
		{Constraint: constConstraint(anchor("header", view.AttrWidth), 50), Score: 10},
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrTop), anchor("root", view.AttrTop), 1, 0, 1), Score: 10},
		{Constraint: constConstraint(anchor("header", view.AttrHeight), 20), Score: 10},
	}

	cfg := smt.DefaultConfig()
	cfg.Unambig = false
	result, err := smt.Prune(context.Background(), candidates, target, bounds, cfg)
	require.NoError(t, err)
	// The solver must drop one of the conflicting width candidates, never
	// select both simultaneously.
	widthCount := 0
	for _, c := range result.Selected {
		if c.Y == anchor("header", view.AttrWidth) {
			widthCount++
		}
	}
	assert.Equal(t, 1, widthCount)
}

func TestPruneUnambigPicksUniquelyDeterminingSubset(t *testing.T) {
	target, bounds := headerTarget()

	candidates := []constraint.Candidate{
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0, 1), Score: 10},
		{Constraint: eqConstraint(constraint.KindSizeRatio, anchor("header", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0, 1), Score: 10},
		{Constraint: eqConstraint(constraint.KindPosOffset, anchor("header", view.AttrTop), anchor("root", view.AttrTop), 1, 0, 1), Score: 10},
		{Constraint: constConstraint(anchor("header", view.AttrHeight), 20), Score: 10},
	}

	cfg := smt.DefaultConfig()
	result, err := smt.Prune(context.Background(), candidates, target, bounds, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Selected, 4)
}

func TestPruneRespectsContextCancellation(t *testing.T) {
	target, bounds := headerTarget()
	candidates := []constraint.Candidate{
		{Constraint: constConstraint(anchor("header", view.AttrWidth), 100), Score: 1},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := smt.DefaultConfig()
	cfg.Unambig = false
	_, err := smt.Prune(ctx, candidates, target, bounds, cfg)
	// A pre-cancelled context may still let a trivially small search
	// finish before the next periodic check fires; only assert that if an
	// error surfaces, it is the documented deadline error.
	if err != nil {
		assert.ErrorIs(t, err, smt.ErrSolverUnknown)
	}
}

func TestCombineBoundsMergesCloseLeGePair(t *testing.T) {
	le := constConstraint(anchor("header", view.AttrHeight), 0)
	le.Op = constraint.OpLe
	le.B = rat(22, 1)
	ge := constConstraint(anchor("header", view.AttrHeight), 0)
	ge.Op = constraint.OpGe
	ge.B = rat(20, 1)

	out := smt.CombineBounds([]constraint.Constraint{le, ge}, smt.DefaultBoundsCombineTolerance())
	require.Len(t, out, 1)
	assert.Equal(t, constraint.OpEq, out[0].Op)
	assert.Equal(t, 0, out[0].B.Cmp(rat(21, 1)))
}

func TestCombineBoundsLeavesFarApartPairUncombined(t *testing.T) {
	le := constConstraint(anchor("header", view.AttrHeight), 0)
	le.Op = constraint.OpLe
	le.B = rat(100, 1)
	ge := constConstraint(anchor("header", view.AttrHeight), 0)
	ge.Op = constraint.OpGe
	ge.B = rat(10, 1)

	out := smt.CombineBounds([]constraint.Constraint{le, ge}, smt.DefaultBoundsCombineTolerance())
	require.Len(t, out, 2)
	for _, c := range out {
		assert.NotEqual(t, constraint.OpEq, c.Op)
	}
}
