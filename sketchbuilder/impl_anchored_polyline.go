package sketchbuilder

import (
	"fmt"
	"math"

	"github.com/sketchforge/geoconstraint/geom"
)

const methodAnchoredPolyline = "AnchoredPolyline"

// AnchoredPolyline returns a Constructor that lays out a connected sequence
// of points at the literal (x, y) coordinates in points, offset by cfg's
// origin, joined by lines in order, with a distance constraint holding each
// segment at its literal length. The angles between consecutive segments
// are not constrained.
//
// Contract:
//   - points must be non-empty (else ErrEmptyPointList).
//   - If cfg.anchor, the first point is pinned at (originX+points[0].x,
//     originY+points[0].y) with x/y constraints; otherwise the whole
//     polyline is also free to translate and rotate, since distance alone
//     does not fix position or orientation.
func AnchoredPolyline(points [][2]float64) Constructor {
	return func(g geom.Geometry, cfg *builderConfig) (geom.Geometry, error) {
		if len(points) == 0 {
			return g, fmt.Errorf("%s: %w", methodAnchoredPolyline, ErrEmptyPointList)
		}

		ids := make([]string, len(points))
		var err error
		for i, xy := range points {
			if ids[i], err = addOffsetPoint(&g, cfg, xy[0], xy[1]); err != nil {
				return g, fmt.Errorf("%s: AddPoint(%d): %w", methodAnchoredPolyline, i, err)
			}
		}

		for i := 0; i+1 < len(ids); i++ {
			if g, _, err = g.AddLine(ids[i], ids[i+1]); err != nil {
				return g, fmt.Errorf("%s: AddLine(%d,%d): %w", methodAnchoredPolyline, i, i+1, err)
			}

			dx := points[i+1][0] - points[i][0]
			dy := points[i+1][1] - points[i][1]
			segLen := math.Hypot(dx, dy)
			if g, _, err = g.AddConstraint(geom.KindDistance, []string{ids[i], ids[i+1]}, &segLen); err != nil {
				return g, fmt.Errorf("%s: AddConstraint(distance %d-%d): %w", methodAnchoredPolyline, i, i+1, err)
			}
		}

		if cfg.anchor {
			ax := cfg.originX + points[0][0]
			ay := cfg.originY + points[0][1]
			if g, _, err = g.AddConstraint(geom.KindX, []string{ids[0]}, &ax); err != nil {
				return g, fmt.Errorf("%s: anchor x: %w", methodAnchoredPolyline, err)
			}
			if g, _, err = g.AddConstraint(geom.KindY, []string{ids[0]}, &ay); err != nil {
				return g, fmt.Errorf("%s: anchor y: %w", methodAnchoredPolyline, err)
			}
		}

		return g, nil
	}
}

// addOffsetPoint inserts a point at (cfg.originX+x, cfg.originY+y) into g,
// reassigning g to the returned Geometry, and returns the new point's id.
func addOffsetPoint(g *geom.Geometry, cfg *builderConfig, x, y float64) (string, error) {
	next, id, err := g.AddPoint(cfg.originX+x, cfg.originY+y)
	if err != nil {
		return "", err
	}
	*g = next
	return id, nil
}
