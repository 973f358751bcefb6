package constraint

// Candidate pairs a concretized Constraint with its learner-assigned
// score. Scores are non-negative; ties are broken lexicographically by
// the candidate's constraint Key.
type Candidate struct {
	Constraint Constraint
	Score      float64
}

// SortCandidates orders candidates by descending score, then by
// ascending (Kind, Y, X, Op) for a fully deterministic tie-break.
func SortCandidates(cands []Candidate) {
	sortCandidatesStable(cands)
}

func sortCandidatesStable(cands []Candidate) {
	// Insertion sort: candidate slices are small (per-template), and a
	// stable, allocation-free sort keeps scoring order reproducible
	// without pulling in sort.Slice's reflection-based comparator path.
	for i := 1; i < len(cands); i++ {
		j := i
		for j > 0 && less(cands[j], cands[j-1]) {
			cands[j], cands[j-1] = cands[j-1], cands[j]
			j--
		}
	}
}

func less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	ka, kb := KeyOf(a.Constraint), KeyOf(b.Constraint)
	if ka.Kind != kb.Kind {
		return ka.Kind < kb.Kind
	}
	if ka.Y.View != kb.Y.View {
		return ka.Y.View < kb.Y.View
	}
	if ka.Y.Attr != kb.Y.Attr {
		return ka.Y.Attr < kb.Y.Attr
	}
	if ka.X.View != kb.X.View {
		return ka.X.View < kb.X.View
	}
	if ka.X.Attr != kb.X.Attr {
		return ka.X.Attr < kb.X.Attr
	}
	return ka.Op < kb.Op
}
