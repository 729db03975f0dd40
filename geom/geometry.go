package geom

import (
	"math"
	"sort"

	"github.com/sketchforge/geoconstraint/ident"
)

// Geometry is the sketch aggregate: mappings of id to Point, Line, Circle,
// and Constraint. Membership is what matters, not map order; every
// accessor below returns entries sorted by ID for deterministic,
// reproducible iteration.
//
// Geometry is treated as a value: Add/Replace/Remove return a new,
// independent Geometry. The zero value is not ready to use; call
// NewGeometry.
type Geometry struct {
	points      map[string]Point
	lines       map[string]Line
	circles     map[string]Circle
	constraints map[string]Constraint
	ids         *ident.Source
}

// NewGeometry returns an empty Geometry with a fresh identifier source.
//
// Complexity: O(1).
func NewGeometry() Geometry {
	return Geometry{
		points:      make(map[string]Point),
		lines:       make(map[string]Line),
		circles:     make(map[string]Circle),
		constraints: make(map[string]Constraint),
		ids:         ident.NewSource(),
	}
}

// clone returns a deep copy of g: every map is reallocated and every slice
// field (Constraint.EntityIDs) is copied, so mutating the clone's entries
// can never be observed through g. This mirrors core.Graph.Clone carrying
// its ID counter forward rather than resetting it.
func (g Geometry) clone() Geometry {
	out := Geometry{
		points:      make(map[string]Point, len(g.points)),
		lines:       make(map[string]Line, len(g.lines)),
		circles:     make(map[string]Circle, len(g.circles)),
		constraints: make(map[string]Constraint, len(g.constraints)),
		ids:         g.idSource().Clone(),
	}
	for id, p := range g.points {
		out.points[id] = p
	}
	for id, l := range g.lines {
		out.lines[id] = l
	}
	for id, c := range g.circles {
		out.circles[id] = c
	}
	for id, c := range g.constraints {
		ids := make([]string, len(c.EntityIDs))
		copy(ids, c.EntityIDs)
		c.EntityIDs = ids
		out.constraints[id] = c
	}
	return out
}

// idSource returns a usable identifier source even for a Geometry that was
// built as a struct literal rather than via NewGeometry.
func (g Geometry) idSource() *ident.Source {
	if g.ids == nil {
		return ident.NewSource()
	}
	return g.ids
}

// Point returns the point with the given ID and whether it exists.
func (g Geometry) Point(id string) (Point, bool) {
	p, ok := g.points[id]
	return p, ok
}

// Line returns the line with the given ID and whether it exists.
func (g Geometry) Line(id string) (Line, bool) {
	l, ok := g.lines[id]
	return l, ok
}

// Circle returns the circle with the given ID and whether it exists.
func (g Geometry) Circle(id string) (Circle, bool) {
	c, ok := g.circles[id]
	return c, ok
}

// Constraint returns the constraint with the given ID and whether it exists.
func (g Geometry) Constraint(id string) (Constraint, bool) {
	c, ok := g.constraints[id]
	return c, ok
}

// Points returns all points sorted by ID.
//
// Complexity: O(n log n).
func (g Geometry) Points() []Point {
	out := make([]Point, 0, len(g.points))
	for _, p := range g.points {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lines returns all lines sorted by ID.
func (g Geometry) Lines() []Line {
	out := make([]Line, 0, len(g.lines))
	for _, l := range g.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Circles returns all circles sorted by ID.
func (g Geometry) Circles() []Circle {
	out := make([]Circle, 0, len(g.circles))
	for _, c := range g.circles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Constraints returns all constraints sorted by ID.
func (g Geometry) Constraints() []Constraint {
	out := make([]Constraint, 0, len(g.constraints))
	for _, c := range g.constraints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddPoint inserts a new point at (x, y) and returns the updated Geometry
// together with the newly minted point ID.
//
// Complexity: O(V) to clone the geometry, O(1) to insert.
func (g Geometry) AddPoint(x, y float64) (Geometry, string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return g, "", ErrNonFiniteCoordinate
	}
	out := g.clone()
	id := out.ids.Next(ident.KindPoint)
	out.points[id] = Point{ID: id, X: x, Y: y}
	return out, id, nil
}

// ReplacePoint returns a Geometry with point id moved to (x, y). This is the
// only way a Point's coordinates change; lines and circles referencing this
// point automatically see the new position on their next lookup, since they
// hold only the point's ID.
func (g Geometry) ReplacePoint(id string, x, y float64) (Geometry, error) {
	if _, ok := g.points[id]; !ok {
		return g, ErrPointNotFound
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return g, ErrNonFiniteCoordinate
	}
	out := g.clone()
	out.points[id] = Point{ID: id, X: x, Y: y}
	return out, nil
}

// RemovePoint removes a point. Lines/circles/constraints that referenced it
// are left in place and become dangling; the evaluator treats dangling
// references as no-ops rather than errors.
func (g Geometry) RemovePoint(id string) (Geometry, error) {
	if _, ok := g.points[id]; !ok {
		return g, ErrPointNotFound
	}
	out := g.clone()
	delete(out.points, id)
	return out, nil
}

// AddLine inserts a new line between point1 and point2, which may be equal
// only transiently during construction; the line's own validity against a
// specific Geometry is only checked at evaluation time.
func (g Geometry) AddLine(point1, point2 string) (Geometry, string, error) {
	if point1 == "" || point2 == "" {
		return g, "", ErrEmptyID
	}
	out := g.clone()
	id := out.ids.Next(ident.KindLine)
	out.lines[id] = Line{ID: id, Point1: point1, Point2: point2}
	return out, id, nil
}

// RemoveLine removes a line by ID.
func (g Geometry) RemoveLine(id string) (Geometry, error) {
	if _, ok := g.lines[id]; !ok {
		return g, ErrLineNotFound
	}
	out := g.clone()
	delete(out.lines, id)
	return out, nil
}

// AddCircle inserts a new circle centered at the given point, creating and
// inserting a fresh radius point at (center.X + initialRadius, center.Y).
// It returns the updated Geometry, the new circle ID, and the new
// radius-point ID.
func (g Geometry) AddCircle(center string, initialRadius float64) (Geometry, string, string, error) {
	cp, ok := g.points[center]
	if !ok {
		return g, "", "", ErrPointNotFound
	}
	if math.IsNaN(initialRadius) || math.IsInf(initialRadius, 0) {
		return g, "", "", ErrNonFiniteCoordinate
	}

	out := g.clone()
	radiusPointID := out.ids.Next(ident.KindPoint)
	out.points[radiusPointID] = Point{ID: radiusPointID, X: cp.X + initialRadius, Y: cp.Y}

	circleID := out.ids.Next(ident.KindCircle)
	out.circles[circleID] = Circle{ID: circleID, Center: center, RadiusPoint: radiusPointID}

	return out, circleID, radiusPointID, nil
}

// RemoveCircle removes a circle by ID. Its center/radius points are left in
// place (they are ordinary points and may be shared or reused elsewhere).
func (g Geometry) RemoveCircle(id string) (Geometry, error) {
	if _, ok := g.circles[id]; !ok {
		return g, ErrCircleNotFound
	}
	out := g.clone()
	delete(out.circles, id)
	return out, nil
}

// AddConstraint validates kind/entityIDs/value via NewConstraint and, on
// success, inserts the new Constraint into the returned Geometry.
func (g Geometry) AddConstraint(kind Kind, entityIDs []string, value *float64) (Geometry, string, error) {
	out := g.clone()
	id := out.ids.Next(ident.KindConstraint)
	c, err := NewConstraint(id, kind, entityIDs, value)
	if err != nil {
		return g, "", err
	}
	out.constraints[id] = c
	return out, id, nil
}

// RemoveConstraint removes a constraint by ID.
func (g Geometry) RemoveConstraint(id string) (Geometry, error) {
	if _, ok := g.constraints[id]; !ok {
		return g, ErrConstraintNotFound
	}
	out := g.clone()
	delete(out.constraints, id)
	return out, nil
}

// Radius returns the live radius of circle id: the current euclidean
// distance between its center and radius point. It yields zero if either
// referenced point is missing rather than erroring — radius is a derived
// quantity, never cached, and a dangling circle is a degenerate-but-tolerated
// configuration like any other.
//
// Complexity: O(1).
func (g Geometry) Radius(circleID string) float64 {
	c, ok := g.circles[circleID]
	if !ok {
		return 0
	}
	center, ok := g.points[c.Center]
	if !ok {
		return 0
	}
	radiusPt, ok := g.points[c.RadiusPoint]
	if !ok {
		return 0
	}
	dx := radiusPt.X - center.X
	dy := radiusPt.Y - center.Y
	return math.Hypot(dx, dy)
}
