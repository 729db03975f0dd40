// Package vec2 provides small 2D vector helpers shared by the constraint
// evaluators. It leans on gonum.org/v1/gonum/floats for the underlying
// distance/dot-product arithmetic rather than hand-rolling it, the same
// way the rest of this module prefers an ecosystem library over a bespoke
// routine wherever one exists.
package vec2

import "gonum.org/v1/gonum/floats"

// V is a 2D vector or point offset.
type V struct {
	X, Y float64
}

// Sub returns a - b.
func Sub(a, b V) V {
	return V{a.X - b.X, a.Y - b.Y}
}

// Dot returns the dot product of a and b.
func Dot(a, b V) float64 {
	return floats.Dot([]float64{a.X, a.Y}, []float64{b.X, b.Y})
}

// Length returns the euclidean length (L2 norm) of v.
func Length(v V) float64 {
	return floats.Norm([]float64{v.X, v.Y}, 2)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b V) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Normal returns the unit left-hand normal of v (rotate 90° counter-clockwise),
// or the zero vector if v has zero length.
func Normal(v V) V {
	l := Length(v)
	if l == 0 {
		return V{}
	}
	return V{-v.Y / l, v.X / l}
}
