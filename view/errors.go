package view

import "errors"

// Sentinel errors for the view package. Callers should branch with
// errors.Is, never by comparing strings.
var (
	// ErrEmptyName indicates a view was constructed with an empty Name.
	ErrEmptyName = errors.New("view: name is empty")

	// ErrDuplicateName indicates two views in the same example tree share a Name.
	ErrDuplicateName = errors.New("view: duplicate name within example")

	// ErrInvertedRect indicates Rect.Left > Rect.Right or Rect.Top > Rect.Bottom.
	ErrInvertedRect = errors.New("view: inverted rectangle")

	// ErrNoExamples indicates Validate was called with zero examples.
	ErrNoExamples = errors.New("view: no examples provided")

	// ErrNonIsomorphic indicates two examples do not share the same tree
	// shape and names at every position.
	ErrNonIsomorphic = errors.New("view: examples are not structurally isomorphic")

	// ErrUnknownAnchor indicates an AnchorID does not resolve within an Example.
	ErrUnknownAnchor = errors.New("view: unknown anchor")
)
