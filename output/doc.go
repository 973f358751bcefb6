// Package output encodes a synthesis result into the JSON document shape
// written by cmd/synthesize and read by anything downstream that consumes
// layoutsynth's output: the selected constraints (via constraint.Dict),
// the fixed list of layout axioms the solver always enforces, and the
// min/max anchor valuations observed during pruning.
package output
