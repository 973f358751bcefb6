// Package constraint defines the constraint value type and its taxonomy:
// the symbolic shape `y op b` or `y op (a*x + b)` that the synthesizer
// infers over view anchors, plus the scored, numerically-bound Candidate
// produced by the learner and consumed by the SMT pruner.
//
// A Constraint is a tagged variant over two forms (Constant and Linear)
// sharing one struct, matched on Kind rather than expressed as separate
// types with an interface — the small, fixed set of shapes here does not
// warrant open polymorphism.
//
// Concretization ("subst") is a pure function: Constraint.Subst returns a
// new value, never mutating the receiver, so templates can be shared
// freely across the many candidates fit against them.
package constraint
