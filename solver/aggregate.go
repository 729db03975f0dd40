package solver

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint"
	"github.com/sketchforge/geoconstraint/geom"
)

// weighted pairs a constraint's kind (needed for its aggregation priority)
// with the violation the evaluator produced for it.
type weighted struct {
	kind geom.Kind
	v    constraint.Violation
}

// aggregate combines the gradients of a set of violations into one
// per-point gradient: when two or fewer violations carry a gradient, sum
// directly. Otherwise, if the spread
// between the largest and smallest per-violation gradient magnitude is
// within a factor of 50, still sum directly. Beyond that spread, each
// violation's gradient is scaled by normalization · error_weight ·
// priority_weight before summing, so that a handful of very steep
// constraints cannot drown out the rest of the system.
func aggregate(ws []weighted) map[string]constraint.Grad {
	graded := make([]weighted, 0, len(ws))
	for _, w := range ws {
		if len(w.v.Gradient) > 0 {
			graded = append(graded, w)
		}
	}

	out := make(map[string]constraint.Grad)
	if len(graded) == 0 {
		return out
	}
	if len(graded) <= 2 {
		sumInto(out, graded, nil)
		return out
	}

	gMax := make([]float64, len(graded))
	sqrtErr := make([]float64, len(graded))
	maxSqrtErr := 0.0
	for i, w := range graded {
		m := 0.0
		for _, g := range w.v.Gradient {
			if mag := math.Hypot(g.X, g.Y); mag > m {
				m = mag
			}
		}
		gMax[i] = m
		sqrtErr[i] = math.Sqrt(w.v.Error)
		if sqrtErr[i] > maxSqrtErr {
			maxSqrtErr = sqrtErr[i]
		}
	}

	minG, maxG := gMax[0], gMax[0]
	for _, m := range gMax[1:] {
		if m < minG {
			minG = m
		}
		if m > maxG {
			maxG = m
		}
	}

	if minG == 0 || maxG/minG <= 50 {
		sumInto(out, graded, nil)
		return out
	}

	scales := make([]float64, len(graded))
	for i, w := range graded {
		normalization := 1.0
		if gMax[i] > 100 {
			normalization = math.Min(1, 50/gMax[i])
		}
		errorWeight := 1.0
		if maxSqrtErr > 0 {
			errorWeight = math.Min(1, sqrtErr[i]/maxSqrtErr)
		}
		scales[i] = normalization * errorWeight * constraint.Priority(w.kind)
	}
	sumInto(out, graded, scales)
	return out
}

// sumInto adds each graded violation's gradient into out, scaling it by
// scales[i] when scales is non-nil, or adding it unscaled otherwise.
func sumInto(out map[string]constraint.Grad, graded []weighted, scales []float64) {
	for i, w := range graded {
		for pointID, g := range w.v.Gradient {
			if scales != nil {
				g = g.Scale(scales[i])
			}
			out[pointID] = out[pointID].Add(g)
		}
	}
}
