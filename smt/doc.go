// Package smt prunes a set of concrete candidate constraints down to the
// subset that is jointly satisfiable with the layout axioms over a range
// of conformances, while maximizing total candidate score — the
// "Max-SMT" stage of the pipeline.
//
// No SAT/SMT solver or binding is used or vendored: this stage is the
// one the pipeline must own itself (re-solving a completed constraint
// set against an external solver is a separate, later concern — see
// output/evaluate). Instead,
// smt implements a small weighted branch-and-bound search over boolean
// candidate selectors (solve.go), feasibility-checked at each node by
// iterative rational constraint propagation (propagate.go) rather than a
// general linear-algebra solve — an incumbent-tracking, pruning,
// periodic-deadline-check search style.
//
// Every constraint touches only horizontal or only vertical attributes,
// with one deliberate exception (KindSizeAspectRatio, see
// constraint.NewTemplate's doc comment); partition.go splits candidates
// into the two independent axis instances and arranges for the
// horizontal solve to run first so aspect-ratio candidates can treat
// their already-resolved horizontal value as a pinned constant when the
// vertical instance runs.
package smt
