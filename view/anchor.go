package view

import (
	"fmt"
	"math/big"
)

// AnchorID names a single scalar coordinate: a (view name, attribute)
// pair. It is a plain value type — comparable, hashable as a map key,
// orderable via String() — and is globally unique within one hierarchy.
type AnchorID struct {
	View string
	Attr Attribute
}

// String renders the AnchorID in "view.attr" wire form, e.g. "header.left".
func (id AnchorID) String() string {
	return fmt.Sprintf("%s.%s", id.View, id.Attr)
}

// Anchor pairs an AnchorID with the View it resolves against. Value is a
// convenience accessor; the canonical value always comes from the owning
// View's Rect.
type Anchor struct {
	ID   AnchorID
	View *View
}

// Value returns the rational value of the anchor's attribute on its view.
func (a Anchor) Value() *big.Rat {
	return a.View.Rect.Field(a.ID.Attr)
}
