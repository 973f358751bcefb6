package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// Method selects the instantiation flavor, matching the
// "instantiation_method" option.
type Method int

const (
	MethodNumpy Method = iota
	MethodProlog
)

// ParseMethod parses the option string "numpy" | "prolog".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "numpy", "":
		return MethodNumpy, nil
	case "prolog":
		return MethodProlog, nil
	default:
		return 0, ErrUnknownMethod
	}
}

// pairRule is the shared shape of every pair-based template rule.
type pairRule func(ctx *Context, i, j view.AnchorID) (constraint.Constraint, bool)

var pairRules = []pairRule{ruleAspectRatio, ruleSizeRatio, ruleOffset, ruleAlignment}

// Instantiate emits the deduplicated set of template constraints
// justified by ctx's topology, using the requested Method. The result
// is deterministic for fixed input: the final sequence is always sorted
// by the (i,j) lexicographic anchor order, regardless of which method
// produced it, so MethodNumpy and MethodProlog agree on output.
func Instantiate(ctx *Context, method Method) []constraint.Constraint {
	var emitted []constraint.Constraint
	switch method {
	case MethodProlog:
		emitted = instantiateProlog(ctx)
	default:
		emitted = instantiateNumpy(ctx)
	}
	return dedupeAndSort(ctx, emitted)
}

// instantiateNumpy is the "matrix algorithm" flavor: a flat double loop
// over the anchor×anchor cross product, applying every pair rule to
// every ordered pair, plus a single loop over anchors for the constant
// rule — mirroring a dense matrix sweep.
func instantiateNumpy(ctx *Context) []constraint.Constraint {
	anchors := ctx.Example.Anchors
	var out []constraint.Constraint
	for _, y := range anchors {
		if c, ok := ruleConstant(y); ok {
			out = append(out, c)
		}
	}
	for _, i := range anchors {
		for _, j := range anchors {
			if i == j {
				continue
			}
			for _, rule := range pairRules {
				if c, ok := rule(ctx, i, j); ok {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// instantiateProlog is the declarative flavor: it walks the view tree
// once, visiting same-view, parent-child, and sibling relationships as
// the tree structure reveals them, rather than re-deriving them from a
// full anchor cross product — closer to a logic-programming style of
// "match the structural facts that hold, then fire the applicable rule."
func instantiateProlog(ctx *Context) []constraint.Constraint {
	var out []constraint.Constraint
	views := ctx.Example.Views()

	for _, v := range views {
		for _, attr := range view.Attributes {
			y := view.AnchorID{View: v.Name, Attr: attr}
			if c, ok := ruleConstant(y); ok {
				out = append(out, c)
			}
		}
		// Same-view pairs: aspect ratio.
		for _, ai := range view.Attributes {
			for _, aj := range view.Attributes {
				if ai == aj {
					continue
				}
				i := view.AnchorID{View: v.Name, Attr: ai}
				j := view.AnchorID{View: v.Name, Attr: aj}
				if c, ok := ruleAspectRatio(ctx, i, j); ok {
					out = append(out, c)
				}
			}
		}
		// Parent-child pairs: size ratio, offset.
		for _, child := range v.Children {
			for _, ai := range view.Attributes {
				for _, aj := range view.Attributes {
					i := view.AnchorID{View: v.Name, Attr: ai}
					j := view.AnchorID{View: child.Name, Attr: aj}
					if c, ok := ruleSizeRatio(ctx, i, j); ok {
						out = append(out, c)
					}
					if c, ok := ruleOffset(ctx, i, j); ok {
						out = append(out, c)
					}
				}
			}
		}
		// Sibling pairs: offset (dual), alignment (same attr).
		for a := 0; a < len(v.Children); a++ {
			for b := 0; b < len(v.Children); b++ {
				if a == b {
					continue
				}
				for _, ai := range view.Attributes {
					for _, aj := range view.Attributes {
						i := view.AnchorID{View: v.Children[a].Name, Attr: ai}
						j := view.AnchorID{View: v.Children[b].Name, Attr: aj}
						if c, ok := ruleOffset(ctx, i, j); ok {
							out = append(out, c)
						}
						if c, ok := ruleAlignment(ctx, i, j); ok {
							out = append(out, c)
						}
					}
				}
			}
		}
	}
	return out
}

// dedupeAndSort deduplicates templates by constraint.Key and sorts the
// result by the (Y, X) lexicographic position within ctx.Example.Anchors,
// then by Kind, for a fixed, deterministic order.
func dedupeAndSort(ctx *Context, cs []constraint.Constraint) []constraint.Constraint {
	index := make(map[view.AnchorID]int, len(ctx.Example.Anchors))
	for i, a := range ctx.Example.Anchors {
		index[a] = i
	}

	seen := make(map[constraint.Key]struct{}, len(cs))
	deduped := make([]constraint.Constraint, 0, len(cs))
	for _, c := range cs {
		key := constraint.KeyOf(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, c)
	}

	rank := func(c constraint.Constraint) (int, int, int) {
		yRank := index[c.Y]
		xRank := -1
		if c.X != nil {
			xRank = index[*c.X]
		}
		return yRank, xRank, int(c.Kind)
	}
	for i := 1; i < len(deduped); i++ {
		j := i
		for j > 0 {
			yi, xi, ki := rank(deduped[j])
			yj, xj, kj := rank(deduped[j-1])
			if yi < yj || (yi == yj && xi < xj) || (yi == yj && xi == xj && ki < kj) {
				deduped[j], deduped[j-1] = deduped[j-1], deduped[j]
				j--
				continue
			}
			break
		}
	}
	return deduped
}
