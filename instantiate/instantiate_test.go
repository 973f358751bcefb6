package instantiate_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/instantiate"
	"github.com/katalvlaran/layoutsynth/view"
	"github.com/katalvlaran/layoutsynth/visibility"
)

func rat(n int64) *big.Rat { return big.NewRat(n, 1) }

func rect(l, t, r, b int64) view.Rect {
	rc, err := view.NewRect(rat(l), rat(t), rat(r), rat(b))
	if err != nil {
		panic(err)
	}
	return rc
}

func buildExample(t *testing.T, spec view.Spec) *view.Example {
	t.Helper()
	root, err := view.Build(spec)
	require.NoError(t, err)
	return view.NewExample(root)
}

// stackedSiblingsExample builds a "two vertically-stacked siblings"
// scenario: a root containing "top" above "bottom" with a gap.
func stackedSiblingsExample(t *testing.T) (*view.Example, *visibility.Relation) {
	t.Helper()
	spec := view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "top", Rect: rect(0, 0, 100, 40)},
			{Name: "bottom", Rect: rect(0, 50, 100, 100)},
		},
	}
	ex := buildExample(t, spec)
	rel, err := visibility.Compute([]*view.Example{ex})
	require.NoError(t, err)
	return ex, rel
}

func containsKind(cs []constraint.Constraint, kind constraint.ConstraintKind) bool {
	for _, c := range cs {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

func TestInstantiateDeterministicForFixedInput(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)

	first := instantiate.Instantiate(ctx, instantiate.MethodNumpy)
	second := instantiate.Instantiate(ctx, instantiate.MethodNumpy)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Y, second[i].Y)
		assert.Equal(t, first[i].X, second[i].X)
	}
}

func TestInstantiateNumpyAndPrologAgree(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)

	numpy := instantiate.Instantiate(ctx, instantiate.MethodNumpy)
	prolog := instantiate.Instantiate(ctx, instantiate.MethodProlog)

	require.Equal(t, len(numpy), len(prolog), "both instantiation methods must agree on the final template set")
	for i := range numpy {
		assert.Equal(t, numpy[i].Kind, prolog[i].Kind)
		assert.Equal(t, numpy[i].Y, prolog[i].Y)
		assert.Equal(t, numpy[i].X, prolog[i].X)
		assert.Equal(t, numpy[i].Op, prolog[i].Op)
	}
}

func TestInstantiateEmitsConstantSizeForEveryView(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)
	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)
	assert.True(t, containsKind(cs, constraint.KindSizeConstant))
}

func TestInstantiateEmitsAspectRatioSameView(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)
	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)

	found := false
	for _, c := range cs {
		if c.Kind == constraint.KindSizeAspectRatio && c.X != nil && c.X.View == c.Y.View {
			found = true
		}
	}
	assert.True(t, found, "expected an aspect ratio template relating width and height of the same view")
}

func TestInstantiateEmitsSizeRatioForParentChild(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)
	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)

	found := false
	for _, c := range cs {
		if c.Kind == constraint.KindSizeRatio && c.X != nil && c.X.View == "root" && c.Y.View == "top" {
			found = true
		}
	}
	assert.True(t, found, "expected a parent-relative size ratio template from root to top")
}

func TestInstantiateEmitsOffsetAcrossVisibleGap(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)
	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)

	found := false
	for _, c := range cs {
		if c.Kind == constraint.KindPosOffset &&
			((c.Y.View == "bottom" && c.Y.Attr == view.AttrTop && c.X.View == "top" && c.X.Attr == view.AttrBottom) ||
				(c.Y.View == "top" && c.Y.Attr == view.AttrBottom && c.X.View == "bottom" && c.X.Attr == view.AttrTop)) {
			found = true
		}
	}
	assert.True(t, found, "expected an offset template across the visible gap between top and bottom")
}

func TestInstantiateEmitsAlignmentForRowSiblings(t *testing.T) {
	spec := view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "left", Rect: rect(0, 0, 50, 100)},
			{Name: "right", Rect: rect(50, 0, 100, 100)},
		},
	}
	ex := buildExample(t, spec)
	rel, err := visibility.Compute([]*view.Example{ex})
	require.NoError(t, err)
	ctx := instantiate.NewContext(ex, rel)

	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)
	found := false
	for _, c := range cs {
		if c.Kind == constraint.KindPosAlignment && c.Y.Attr == view.AttrTop && c.X.Attr == view.AttrTop {
			found = true
		}
	}
	assert.True(t, found, "expected a top-alignment template between the two row siblings")
}

func TestInstantiateNoDuplicateKeys(t *testing.T) {
	ex, rel := stackedSiblingsExample(t)
	ctx := instantiate.NewContext(ex, rel)
	cs := instantiate.Instantiate(ctx, instantiate.MethodNumpy)

	seen := make(map[constraint.Key]bool)
	for _, c := range cs {
		key := constraint.KeyOf(c)
		require.False(t, seen[key], "duplicate template key %+v", key)
		seen[key] = true
	}
}

func TestParseMethod(t *testing.T) {
	m, err := instantiate.ParseMethod("numpy")
	require.NoError(t, err)
	assert.Equal(t, instantiate.MethodNumpy, m)

	m, err = instantiate.ParseMethod("prolog")
	require.NoError(t, err)
	assert.Equal(t, instantiate.MethodProlog, m)

	_, err = instantiate.ParseMethod("bogus")
	assert.ErrorIs(t, err, instantiate.ErrUnknownMethod)
}
