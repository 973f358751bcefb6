package evaluate

import (
	"math"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// DefaultAccuracyThreshold is the pixel tolerance calculate_accuracy uses
// when the caller doesn't override it.
const DefaultAccuracyThreshold = 1.0

func originalLTWH(root *view.View) map[string]LTWH {
	views := view.Preorder(root, nil)
	out := make(map[string]LTWH, len(views))
	for _, v := range views {
		lf, _ := v.Rect.Left.Float64()
		tf, _ := v.Rect.Top.Float64()
		wf, _ := v.Rect.Width().Float64()
		hf, _ := v.Rect.Height().Float64()
		out[v.Name] = LTWH{Left: lf, Top: tf, Width: wf, Height: hf}
	}
	return out
}

// RMSD computes the root-mean-square deviation between two LTWH maps
// over the views common to both, comparing all four components per
// view. Returns +Inf if the two maps share no view.
func RMSD(original, synthesized map[string]LTWH) float64 {
	var squaredErr float64
	var count int
	for name, orig := range original {
		synth, ok := synthesized[name]
		if !ok {
			continue
		}
		for _, d := range []float64{
			orig.Left - synth.Left,
			orig.Top - synth.Top,
			orig.Width - synth.Width,
			orig.Height - synth.Height,
		} {
			squaredErr += d * d
			count++
		}
	}
	if count == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(squaredErr / float64(count))
}

// Accuracy computes the percentage of views common to both maps whose
// four LTWH components all fall within threshold of the original.
func Accuracy(original, synthesized map[string]LTWH, threshold float64) float64 {
	var common, accurate int
	for name, orig := range original {
		synth, ok := synthesized[name]
		if !ok {
			continue
		}
		common++
		within := math.Abs(orig.Left-synth.Left) <= threshold &&
			math.Abs(orig.Top-synth.Top) <= threshold &&
			math.Abs(orig.Width-synth.Width) <= threshold &&
			math.Abs(orig.Height-synth.Height) <= threshold
		if within {
			accurate++
		}
	}
	if common == 0 {
		return 0
	}
	return float64(accurate) / float64(common) * 100.0
}

// Summary is the per-example-averaged score a held-out evaluation run
// produces.
type Summary struct {
	RMSD               float64
	Accuracy           float64
	NumExamples        int
	PerExampleRMSD     []float64
	PerExampleAccuracy []float64
}

// Evaluate re-solves selected against every example's own root rect and
// averages RMSD/accuracy across them (mirrors evaluate_single_structure:
// independent per-example scoring, then a plain mean).
func Evaluate(examples []*view.Example, selected []constraint.Constraint, threshold float64) Summary {
	if threshold <= 0 {
		threshold = DefaultAccuracyThreshold
	}
	rmsds := make([]float64, 0, len(examples))
	accs := make([]float64, 0, len(examples))
	for _, ex := range examples {
		orig := originalLTWH(ex.Root)
		synth := Resolve(ex.Root, selected)
		rmsds = append(rmsds, RMSD(orig, synth))
		accs = append(accs, Accuracy(orig, synth, threshold))
	}

	summary := Summary{NumExamples: len(examples), PerExampleRMSD: rmsds, PerExampleAccuracy: accs}
	if len(rmsds) == 0 {
		summary.RMSD = math.Inf(1)
		return summary
	}
	var rmsdSum, accSum float64
	for i := range rmsds {
		rmsdSum += rmsds[i]
		accSum += accs[i]
	}
	summary.RMSD = rmsdSum / float64(len(rmsds))
	summary.Accuracy = accSum / float64(len(accs))
	return summary
}
