package sketchbuilder

import (
	"fmt"

	"github.com/sketchforge/geoconstraint/geom"
)

const methodRectangle = "Rectangle"

// Rectangle returns a Constructor that builds an axis-aligned rectangle of
// the given width and height, anchored at cfg's origin.
//
// Contract:
//   - width, height > 0 (else ErrNonPositiveDimension).
//   - Adds four corner points in order bottom-left, bottom-right,
//     top-right, top-left, and the four connecting lines between them.
//   - Constrains the bottom and top edges horizontal, the left and right
//     edges vertical, and the width/height via x-distance/y-distance
//     between the bottom-left corner and its horizontal/vertical neighbor —
//     so the rectangle holds its shape under a Solver regardless of how far
//     its initial placement is perturbed.
//   - If cfg.anchor, pins the bottom-left corner at (originX, originY) with
//     x/y constraints so the whole rectangle does not drift.
func Rectangle(width, height float64) Constructor {
	return func(g geom.Geometry, cfg *builderConfig) (geom.Geometry, error) {
		if width <= 0 || height <= 0 {
			return g, fmt.Errorf("%s: width=%g height=%g: %w", methodRectangle, width, height, ErrNonPositiveDimension)
		}

		var bl, br, tr, tl string
		var err error
		if g, bl, err = g.AddPoint(cfg.originX, cfg.originY); err != nil {
			return g, fmt.Errorf("%s: AddPoint(bottom-left): %w", methodRectangle, err)
		}
		if g, br, err = g.AddPoint(cfg.originX+width, cfg.originY); err != nil {
			return g, fmt.Errorf("%s: AddPoint(bottom-right): %w", methodRectangle, err)
		}
		if g, tr, err = g.AddPoint(cfg.originX+width, cfg.originY+height); err != nil {
			return g, fmt.Errorf("%s: AddPoint(top-right): %w", methodRectangle, err)
		}
		if g, tl, err = g.AddPoint(cfg.originX, cfg.originY+height); err != nil {
			return g, fmt.Errorf("%s: AddPoint(top-left): %w", methodRectangle, err)
		}

		var bottom, right, top, left string
		if g, bottom, err = g.AddLine(bl, br); err != nil {
			return g, fmt.Errorf("%s: AddLine(bottom): %w", methodRectangle, err)
		}
		if g, right, err = g.AddLine(br, tr); err != nil {
			return g, fmt.Errorf("%s: AddLine(right): %w", methodRectangle, err)
		}
		if g, top, err = g.AddLine(tr, tl); err != nil {
			return g, fmt.Errorf("%s: AddLine(top): %w", methodRectangle, err)
		}
		if g, left, err = g.AddLine(tl, bl); err != nil {
			return g, fmt.Errorf("%s: AddLine(left): %w", methodRectangle, err)
		}

		w, h := width, height
		for _, spec := range []struct {
			kind      geom.Kind
			entityIDs []string
			value     *float64
		}{
			{geom.KindHorizontal, []string{bottom}, nil},
			{geom.KindHorizontal, []string{top}, nil},
			{geom.KindVertical, []string{left}, nil},
			{geom.KindVertical, []string{right}, nil},
			{geom.KindXDistance, []string{bl, br}, &w},
			{geom.KindYDistance, []string{bl, tl}, &h},
		} {
			if g, _, err = g.AddConstraint(spec.kind, spec.entityIDs, spec.value); err != nil {
				return g, fmt.Errorf("%s: AddConstraint(%s): %w", methodRectangle, spec.kind, err)
			}
		}

		if cfg.anchor {
			ox, oy := cfg.originX, cfg.originY
			if g, _, err = g.AddConstraint(geom.KindX, []string{bl}, &ox); err != nil {
				return g, fmt.Errorf("%s: anchor x: %w", methodRectangle, err)
			}
			if g, _, err = g.AddConstraint(geom.KindY, []string{bl}, &oy); err != nil {
				return g, fmt.Errorf("%s: anchor y: %w", methodRectangle, err)
			}
		}

		return g, nil
	}
}
