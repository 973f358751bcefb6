// Package pipeline is the thin, deterministic public facade wiring
// instantiation, learning, pruning, and (optionally) hierarchical
// decomposition into one call: Synthesize(ctx, examples, opts...). No
// algorithmic logic lives here, only stage composition and option
// resolution, following a "public facade: constructors and read-only
// getters, no hidden state" convention.
package pipeline
