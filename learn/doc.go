// Package learn fits concrete rational parameters onto the templates
// instantiate produces. For each template it forms the sequence of
// observed (x, y) pairs across every example and, depending on the
// selected strategy, either demands bit-for-bit agreement (simple),
// clamps the fitted ratio to a bounded denominator (heuristic), or
// searches a Stern–Brocot neighbourhood for the simplest rational
// consistent with all observations within a noise tolerance
// (noisetolerant, the canonical strategy).
//
// Each strategy lives in its own file (simple.go, heuristic.go,
// noisetolerant.go), following a one-file-per-variant convention; the
// shared exact-arithmetic primitives (solving a
// constraint's form for a given sample, checking a fit holds within a
// tolerance) live in form.go, and the rational-approximation machinery
// (continued fractions, Stern–Brocot descent, denominator clamping)
// lives in score.go and sternbrocot.go.
package learn
