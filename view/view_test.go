package view_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestRectDerivedFields(t *testing.T) {
	r := rect(10, 20, 60, 70)
	assert.Equal(t, rat(50), r.Width())
	assert.Equal(t, rat(50), r.Height())
	assert.Equal(t, big.NewRat(35, 1), r.CenterX())
	assert.Equal(t, big.NewRat(45, 1), r.CenterY())
}

func TestNewRectInverted(t *testing.T) {
	_, err := view.NewRect(rat(10), rat(0), rat(0), rat(10))
	assert.ErrorIs(t, err, view.ErrInvertedRect)
}

func TestBuildWiresParentsAndRejectsDuplicateNames(t *testing.T) {
	spec := view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "child", Rect: rect(10, 10, 60, 60)},
		},
	}
	root, err := view.Build(spec)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Same(t, root, root.Children[0].Parent)

	dup := view.Spec{
		Name: "root", Rect: rect(0, 0, 1, 1),
		Children: []view.Spec{
			{Name: "x", Rect: rect(0, 0, 1, 1)},
			{Name: "x", Rect: rect(0, 0, 1, 1)},
		},
	}
	_, err = view.Build(dup)
	assert.ErrorIs(t, err, view.ErrDuplicateName)
}

func TestPreorderAndDescendants(t *testing.T) {
	spec := view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "a", Rect: rect(0, 0, 50, 100)},
			{Name: "b", Rect: rect(50, 0, 100, 100)},
		},
	}
	root, err := view.Build(spec)
	require.NoError(t, err)

	order := view.Preorder(root, nil)
	require.Len(t, order, 3)
	assert.Equal(t, []string{"root", "a", "b"}, names(order))

	desc := view.Descendants(root)
	assert.Equal(t, []string{"a", "b"}, names(desc))
}

func names(views []*view.View) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func TestExampleAnchorIndexOrder(t *testing.T) {
	spec := view.Spec{
		Name: "root", Rect: rect(0, 0, 100, 100),
		Children: []view.Spec{
			{Name: "child", Rect: rect(10, 10, 60, 60)},
		},
	}
	root, err := view.Build(spec)
	require.NoError(t, err)
	ex := view.NewExample(root)

	require.Len(t, ex.Anchors, 16) // 2 views * 8 attributes
	assert.Equal(t, view.AnchorID{View: "root", Attr: view.AttrLeft}, ex.Anchors[0])
	assert.Equal(t, view.AnchorID{View: "root", Attr: view.AttrHeight}, ex.Anchors[7])
	assert.Equal(t, view.AnchorID{View: "child", Attr: view.AttrLeft}, ex.Anchors[8])

	anchor, err := ex.Anchor(view.AnchorID{View: "child", Attr: view.AttrWidth})
	require.NoError(t, err)
	assert.Equal(t, rat(50), anchor.Value())

	_, err = ex.Anchor(view.AnchorID{View: "missing", Attr: view.AttrLeft})
	assert.ErrorIs(t, err, view.ErrUnknownAnchor)
}

func TestValidateIsomorphism(t *testing.T) {
	mk := func(rootRect, childRect view.Rect) *view.Example {
		root, err := view.Build(view.Spec{
			Name: "root", Rect: rootRect,
			Children: []view.Spec{{Name: "child", Rect: childRect}},
		})
		require.NoError(t, err)
		return view.NewExample(root)
	}

	e1 := mk(rect(0, 0, 100, 100), rect(10, 10, 60, 60))
	e2 := mk(rect(0, 0, 200, 100), rect(10, 10, 60, 60))
	assert.NoError(t, view.Validate([]*view.Example{e1, e2}))

	badRoot, err := view.Build(view.Spec{
		Name: "root", Rect: rect(0, 0, 1, 1),
		Children: []view.Spec{{Name: "other", Rect: rect(0, 0, 1, 1)}},
	})
	require.NoError(t, err)
	e3 := view.NewExample(badRoot)
	assert.ErrorIs(t, view.Validate([]*view.Example{e1, e3}), view.ErrNonIsomorphic)

	assert.ErrorIs(t, view.Validate(nil), view.ErrNoExamples)
}
