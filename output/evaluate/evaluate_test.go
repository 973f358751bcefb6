package evaluate_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/output/evaluate"
	"github.com/katalvlaran/layoutsynth/view"
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

func offsetConstraint(y, x view.AnchorID, b int64) constraint.Constraint {
	tmpl, err := constraint.NewTemplate(constraint.KindPosOffset, y, &x, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return tmpl.Subst(big.NewRat(1, 1), rat(b), 1)
}

func constConstraint(y view.AnchorID, b int64) constraint.Constraint {
	tmpl, err := constraint.NewTemplate(constraint.KindSizeConstant, y, nil, constraint.OpEq)
	if err != nil {
		panic(err)
	}
	return tmpl.Subst(big.NewRat(0, 1), rat(b), 1)
}

func TestResolveReconstructsFixedChildExactly(t *testing.T) {
	example := buildExample(t, view.Spec{
		Name: "root", Rect: rect(0, 0, 150, 100),
		Children: []view.Spec{
			{Name: "child", Rect: rect(10, 10, 60, 60)},
		},
	})

	selected := []constraint.Constraint{
		constConstraint(view.AnchorID{View: "child", Attr: view.AttrWidth}, 50),
		constConstraint(view.AnchorID{View: "child", Attr: view.AttrHeight}, 50),
		offsetConstraint(view.AnchorID{View: "child", Attr: view.AttrLeft}, view.AnchorID{View: "root", Attr: view.AttrLeft}, 10),
		offsetConstraint(view.AnchorID{View: "child", Attr: view.AttrTop}, view.AnchorID{View: "root", Attr: view.AttrTop}, 10),
	}

	resolved := evaluate.Resolve(example.Root, selected)
	child, ok := resolved["child"]
	require.True(t, ok)
	assert.InDelta(t, 10.0, child.Left, 1e-9)
	assert.InDelta(t, 10.0, child.Top, 1e-9)
	assert.InDelta(t, 50.0, child.Width, 1e-9)
	assert.InDelta(t, 50.0, child.Height, 1e-9)
}

func TestEvaluatePerfectReconstructionScoresZeroRMSDAndFullAccuracy(t *testing.T) {
	examples := []*view.Example{
		buildExample(t, view.Spec{
			Name: "root", Rect: rect(0, 0, 100, 100),
			Children: []view.Spec{{Name: "child", Rect: rect(10, 10, 60, 60)}},
		}),
		buildExample(t, view.Spec{
			Name: "root", Rect: rect(0, 0, 200, 100),
			Children: []view.Spec{{Name: "child", Rect: rect(10, 10, 60, 60)}},
		}),
	}

	selected := []constraint.Constraint{
		constConstraint(view.AnchorID{View: "child", Attr: view.AttrWidth}, 50),
		constConstraint(view.AnchorID{View: "child", Attr: view.AttrHeight}, 50),
		offsetConstraint(view.AnchorID{View: "child", Attr: view.AttrLeft}, view.AnchorID{View: "root", Attr: view.AttrLeft}, 10),
		offsetConstraint(view.AnchorID{View: "child", Attr: view.AttrTop}, view.AnchorID{View: "root", Attr: view.AttrTop}, 10),
	}

	summary := evaluate.Evaluate(examples, selected, 1.0)
	assert.InDelta(t, 0.0, summary.RMSD, 1e-9)
	assert.InDelta(t, 100.0, summary.Accuracy, 1e-9)
	assert.Equal(t, 2, summary.NumExamples)
}

func TestRMSDIsInfWithNoCommonViews(t *testing.T) {
	assert.True(t, evaluate.RMSD(map[string]evaluate.LTWH{"a": {}}, map[string]evaluate.LTWH{"b": {}}) > 1e300)
}
