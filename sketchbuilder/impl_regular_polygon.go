package sketchbuilder

import (
	"fmt"
	"math"

	"github.com/sketchforge/geoconstraint/geom"
)

const (
	methodRegularPolygon = "RegularPolygon"
	minPolygonVertices   = 3
)

// RegularPolygon returns a Constructor that builds a regular n-gon of
// circumradius radius, centered at cfg's origin.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices); radius > 0 (else ErrNonPositiveDimension).
//   - Adds a center point and a circle of the given radius around it, then n
//     vertices placed at initial positions evenly spaced around that circle.
//   - Constrains every vertex onto the circle with point-on-circle, and each
//     consecutive pair of vertices (wrapping around) to the regular
//     polygon's exact side length with distance — the combination is what
//     makes the shape regular rather than merely cyclic; point-on-circle
//     alone permits an arbitrarily uneven vertex spacing.
//   - If cfg.anchor, pins the center at (originX, originY).
func RegularPolygon(n int, radius float64) Constructor {
	return func(g geom.Geometry, cfg *builderConfig) (geom.Geometry, error) {
		if n < minPolygonVertices {
			return g, fmt.Errorf("%s: n=%d < min=%d: %w", methodRegularPolygon, n, minPolygonVertices, ErrTooFewVertices)
		}
		if radius <= 0 {
			return g, fmt.Errorf("%s: radius=%g: %w", methodRegularPolygon, radius, ErrNonPositiveDimension)
		}

		var center, circleID string
		var err error
		if g, center, err = g.AddPoint(cfg.originX, cfg.originY); err != nil {
			return g, fmt.Errorf("%s: AddPoint(center): %w", methodRegularPolygon, err)
		}
		if g, circleID, _, err = g.AddCircle(center, radius); err != nil {
			return g, fmt.Errorf("%s: AddCircle: %w", methodRegularPolygon, err)
		}

		vertices := make([]string, n)
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			x := cfg.originX + radius*math.Cos(theta)
			y := cfg.originY + radius*math.Sin(theta)
			var id string
			if g, id, err = g.AddPoint(x, y); err != nil {
				return g, fmt.Errorf("%s: AddPoint(vertex %d): %w", methodRegularPolygon, i, err)
			}
			vertices[i] = id

			if g, _, err = g.AddConstraint(geom.KindPointOnCircle, []string{id, circleID}, nil); err != nil {
				return g, fmt.Errorf("%s: AddConstraint(point-on-circle %d): %w", methodRegularPolygon, i, err)
			}
		}

		side := 2 * radius * math.Sin(math.Pi/float64(n))
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			s := side
			if g, _, err = g.AddConstraint(geom.KindDistance, []string{vertices[i], vertices[next]}, &s); err != nil {
				return g, fmt.Errorf("%s: AddConstraint(side %d-%d): %w", methodRegularPolygon, i, next, err)
			}
		}

		if cfg.anchor {
			ox, oy := cfg.originX, cfg.originY
			if g, _, err = g.AddConstraint(geom.KindX, []string{center}, &ox); err != nil {
				return g, fmt.Errorf("%s: anchor x: %w", methodRegularPolygon, err)
			}
			if g, _, err = g.AddConstraint(geom.KindY, []string{center}, &oy); err != nil {
				return g, fmt.Errorf("%s: anchor y: %w", methodRegularPolygon, err)
			}
		}

		return g, nil
	}
}
