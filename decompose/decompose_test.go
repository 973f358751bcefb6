package decompose_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/decompose"
	"github.com/katalvlaran/layoutsynth/smt"
	"github.com/katalvlaran/layoutsynth/view"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func anchor(v string, attr view.Attribute) view.AnchorID {
	return view.AnchorID{View: v, Attr: attr}
}

func rect(l, t, r, b int64) view.Rect {
	rc, err := view.NewRect(rat(l, 1), rat(t, 1), rat(r, 1), rat(b, 1))
	if err != nil {
		panic(err)
	}
	return rc
}

func stackedTree(t *testing.T) *view.View {
	t.Helper()
	root, err := view.Build(view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "header", Rect: rect(0, 0, 100, 20)},
			{Name: "body", Rect: rect(0, 20, 100, 100)},
		},
	})
	require.NoError(t, err)
	return root
}

func eqCandidate(kind constraint.ConstraintKind, y, x view.AnchorID, a, b int64) constraint.Candidate {
	c, err := constraint.NewTemplate(kind, y, &x, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return constraint.Candidate{Constraint: c.Subst(rat(a, 1), rat(b, 1), 3), Score: 10}
}

func constCandidate(y view.AnchorID, b int64) constraint.Candidate {
	c, err := constraint.NewTemplate(constraint.KindSizeConstant, y, nil, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return constraint.Candidate{Constraint: c.Subst(rat(0, 1), rat(b, 1), 3), Score: 10}
}

func stackedCandidates() []constraint.Candidate {
	return []constraint.Candidate{
		eqCandidate(constraint.KindPosOffset, anchor("header", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0),
		eqCandidate(constraint.KindSizeRatio, anchor("header", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0),
		eqCandidate(constraint.KindPosOffset, anchor("header", view.AttrTop), anchor("root", view.AttrTop), 1, 0),
		constCandidate(anchor("header", view.AttrHeight), 20),
		eqCandidate(constraint.KindPosOffset, anchor("body", view.AttrLeft), anchor("root", view.AttrLeft), 1, 0),
		eqCandidate(constraint.KindSizeRatio, anchor("body", view.AttrWidth), anchor("root", view.AttrWidth), 1, 0),
		eqCandidate(constraint.KindPosOffset, anchor("body", view.AttrTop), anchor("header", view.AttrBottom), 1, 0),
		constCandidate(anchor("body", view.AttrHeight), 80),
	}
}

func TestDecomposeSolvesRootSubtreeAndStopsAtLeaves(t *testing.T) {
	root := stackedTree(t)
	candidates := stackedCandidates()

	lo := constraint.NewConformance(rat(100, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	hi := constraint.NewConformance(rat(200, 1), rat(100, 1), rat(0, 1), rat(0, 1))

	cfg := smt.DefaultConfig()
	cfg.Unambig = false

	result, err := decompose.Decompose(context.Background(), root, candidates, lo, hi, cfg)
	require.NoError(t, err)
	assert.Len(t, result.Selected, 8)

	bodyTop := result.MinVals[anchor("body", view.AttrTop)]
	require.NotNil(t, bodyTop)
	assert.Equal(t, 0, bodyTop.Cmp(rat(20, 1)))

	bodyHeight := result.MinVals[anchor("body", view.AttrHeight)]
	require.NotNil(t, bodyHeight)
	assert.Equal(t, 0, bodyHeight.Cmp(rat(80, 1)))

	headerWidthHi := result.MaxVals[anchor("header", view.AttrWidth)]
	require.NotNil(t, headerWidthHi)
	assert.Equal(t, 0, headerWidthHi.Cmp(rat(200, 1)))
}

func TestDecomposeFiltersCandidatesPerSubtree(t *testing.T) {
	root := stackedTree(t)
	candidates := stackedCandidates()
	// An unrelated constraint mentioning a view absent from the tree must
	// never reach any subtree's pruner call.
	bogus := constCandidate(anchor("ghost", view.AttrWidth), 42)
	candidates = append(candidates, bogus)

	lo := constraint.NewConformance(rat(100, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	hi := constraint.NewConformance(rat(200, 1), rat(100, 1), rat(0, 1), rat(0, 1))

	cfg := smt.DefaultConfig()
	cfg.Unambig = false

	result, err := decompose.Decompose(context.Background(), root, candidates, lo, hi, cfg)
	require.NoError(t, err)
	for _, c := range result.Selected {
		assert.NotEqual(t, "ghost", c.Y.View)
	}
}

func TestIntegrateReadmitsUnselectedDecomposedConstraints(t *testing.T) {
	root := stackedTree(t)
	candidates := stackedCandidates()

	lo := constraint.NewConformance(rat(100, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	hi := constraint.NewConformance(rat(200, 1), rat(100, 1), rat(0, 1), rat(0, 1))
	cfg := smt.DefaultConfig()
	cfg.Unambig = false

	decomposed, err := decompose.Decompose(context.Background(), root, candidates, lo, hi, cfg)
	require.NoError(t, err)

	extra := constCandidate(anchor("header", view.AttrWidth), 999).Constraint
	decomposed.Selected = append(decomposed.Selected, extra)

	merged, err := decompose.Integrate(context.Background(), root, decomposed, candidates, lo, hi, cfg)
	require.NoError(t, err)

	var found *constraint.Constraint
	for i, c := range merged.Selected {
		if c.Y == anchor("header", view.AttrWidth) && c.B.Cmp(rat(999, 1)) == 0 {
			found = &merged.Selected[i]
		}
	}
	require.NotNil(t, found, "unmatched decomposed constraint must be re-admitted")
	assert.Equal(t, constraint.PriorityStrong, found.Priority)
}
