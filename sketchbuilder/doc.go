// Package sketchbuilder assembles common parametric shapes — rectangles,
// regular polygons, anchored polylines — into a geom.Geometry using a small
// set of Constructor functions: a Constructor returns an updated Geometry
// deterministically given a resolved config, and BuildSketch applies any
// number of them in order.
//
// Shapes built here are starting points for a Solver, not finished designs:
// Rectangle and RegularPolygon both add the distance/alignment constraints
// needed to hold their shape under perturbation, but initial point placement
// is only a first guess — callers still run the points through a Solver to
// reach an exact configuration.
package sketchbuilder
