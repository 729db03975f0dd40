package sketchbuilder

import (
	"fmt"

	"github.com/sketchforge/geoconstraint/geom"
)

// Constructor applies one deterministic shape to a Geometry using the
// resolved builderConfig, returning the updated Geometry. Constructors MUST
// validate their parameters early and return sentinel errors; they never
// panic at runtime.
type Constructor func(g geom.Geometry, cfg *builderConfig) (geom.Geometry, error)

// BuildSketch starts from an empty Geometry, resolves a builderConfig from
// opts, and applies each Constructor in cons in order. The first Constructor
// error is wrapped with "sketchbuilder: BuildSketch: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildSketch(opts []Option, cons ...Constructor) (geom.Geometry, error) {
	cfg := newBuilderConfig(opts...)
	g := geom.NewGeometry()
	for _, con := range cons {
		var err error
		g, err = con(g, cfg)
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("sketchbuilder: BuildSketch: %w", err)
		}
	}
	return g, nil
}
