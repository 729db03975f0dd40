package constraint

import "github.com/sketchforge/geoconstraint/geom"

// resolvePoints looks up every id in ids as a Point in g, in order. It
// returns ok=false the moment any id fails to resolve: a constraint
// referencing even one missing entity evaluates as a whole no-op, not a
// partial one.
func resolvePoints(g geom.Geometry, ids []string) ([]geom.Point, bool) {
	out := make([]geom.Point, 0, len(ids))
	for _, id := range ids {
		p, ok := g.Point(id)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// lineEndpoints resolves a Line's two endpoint Points.
func lineEndpoints(g geom.Geometry, lineID string) (p1, p2 geom.Point, ok bool) {
	l, ok := g.Line(lineID)
	if !ok {
		return geom.Point{}, geom.Point{}, false
	}
	p1, ok1 := g.Point(l.Point1)
	p2, ok2 := g.Point(l.Point2)
	if !ok1 || !ok2 {
		return geom.Point{}, geom.Point{}, false
	}
	return p1, p2, true
}

// circleGeometry resolves a Circle's center and radius points, plus its
// live radius.
func circleGeometry(g geom.Geometry, circleID string) (center, radiusPt geom.Point, radius float64, ok bool) {
	c, ok := g.Circle(circleID)
	if !ok {
		return geom.Point{}, geom.Point{}, 0, false
	}
	center, ok1 := g.Point(c.Center)
	radiusPt, ok2 := g.Point(c.RadiusPoint)
	if !ok1 || !ok2 {
		return geom.Point{}, geom.Point{}, 0, false
	}
	return center, radiusPt, g.Radius(circleID), true
}

// pointSequence resolves the geometry a horizontal/vertical/same-x/same-y
// constraint applies to: either the two endpoints of a single referenced
// Line, or N>=2 directly-referenced Points. It returns the resolved points
// together with their IDs (ID order matches point order) or ok=false if
// anything is missing.
func pointSequence(g geom.Geometry, c geom.Constraint) (ids []string, pts []geom.Point, ok bool) {
	if len(c.EntityIDs) == 1 {
		p1, p2, ok := lineEndpoints(g, c.EntityIDs[0])
		if !ok {
			return nil, nil, false
		}
		l, _ := g.Line(c.EntityIDs[0])
		return []string{l.Point1, l.Point2}, []geom.Point{p1, p2}, true
	}
	pts, ok = resolvePoints(g, c.EntityIDs)
	if !ok {
		return nil, nil, false
	}
	return c.EntityIDs, pts, true
}
