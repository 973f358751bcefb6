// Package input decodes JSON layout examples into view.Example trees.
//
// Two wire formats are accepted, selected by the caller: "default", where
// each view carries an explicit [left, top, right, bottom] rect, and
// "bench", where each view instead carries left/top/width/height and the
// rect is derived by addition. Both converge on the same view.Spec shape
// before view.Build runs, so every later stage is format-agnostic.
//
// Numbers decode to exact *big.Rat rather than float64: a JSON literal
// like 33.33 round-trips through json.Number and big.Rat.SetString,
// preserving whatever precision the literal itself carried instead of
// inheriting float64's binary rounding.
package input
