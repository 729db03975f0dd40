package geom

import "errors"

// Sentinel errors for geometry-model operations.
var (
	// ErrEmptyID indicates an empty entity or constraint ID was supplied.
	ErrEmptyID = errors.New("geom: entity ID is empty")

	// ErrPointNotFound indicates an operation referenced a non-existent point.
	ErrPointNotFound = errors.New("geom: point not found")

	// ErrLineNotFound indicates an operation referenced a non-existent line.
	ErrLineNotFound = errors.New("geom: line not found")

	// ErrCircleNotFound indicates an operation referenced a non-existent circle.
	ErrCircleNotFound = errors.New("geom: circle not found")

	// ErrConstraintNotFound indicates an operation referenced a non-existent constraint.
	ErrConstraintNotFound = errors.New("geom: constraint not found")

	// ErrNonFiniteCoordinate indicates a point coordinate was NaN or +/-Inf.
	ErrNonFiniteCoordinate = errors.New("geom: coordinate is not finite")

	// ErrBadArity indicates a constraint was built with the wrong number of entity IDs for its Kind.
	ErrBadArity = errors.New("geom: wrong number of entity IDs for constraint kind")

	// ErrMissingValue indicates a constraint Kind that requires a numeric value was built without one.
	ErrMissingValue = errors.New("geom: constraint kind requires a value")

	// ErrUnexpectedValue indicates a constraint Kind that takes no value was built with one.
	ErrUnexpectedValue = errors.New("geom: constraint kind does not take a value")

	// ErrNegativeValue indicates a constraint value that must be non-negative was negative.
	ErrNegativeValue = errors.New("geom: value must be non-negative")

	// ErrUnknownKind indicates a Kind outside the closed set recognized by this package.
	ErrUnknownKind = errors.New("geom: unknown constraint kind")
)

// Point is a 2D point entity, identified by an opaque ID unique within its
// owning Geometry. Coordinates must always be finite.
type Point struct {
	ID   string
	X, Y float64
}

// Line is a directed-in-name-only segment between two owned points,
// referenced by ID. Lines are immutable after creation except via removal;
// moving a line means moving its endpoint Points.
type Line struct {
	ID             string
	Point1, Point2 string // point IDs
}

// Circle is defined by a center point and a radius point; its radius is
// never stored — it is always the live euclidean distance between the two.
// Circles are immutable after creation except via removal; resizing a
// circle means moving its RadiusPoint.
type Circle struct {
	ID          string
	Center      string // point ID
	RadiusPoint string // point ID
}

// Kind enumerates the closed set of constraint kinds this engine understands.
type Kind string

// Constraint kinds recognized by this engine.
const (
	KindDistance            Kind = "distance"
	KindXDistance           Kind = "x-distance"
	KindYDistance           Kind = "y-distance"
	KindHorizontal          Kind = "horizontal"
	KindVertical            Kind = "vertical"
	KindSameX               Kind = "same-x"
	KindSameY               Kind = "same-y"
	KindParallel            Kind = "parallel"
	KindPerpendicular       Kind = "perpendicular"
	KindAngle               Kind = "angle"
	KindX                   Kind = "x"
	KindY                   Kind = "y"
	KindRadius              Kind = "radius"
	KindPointOnCircle       Kind = "point-on-circle"
	KindLineTangentToCircle Kind = "line-tangent-to-circle"
)

// Constraint is a single declarative geometric constraint: a Kind, an
// ordered list of entity IDs it applies to, and an optional numeric value.
// Values are fixed at construction; nothing in this module — including the
// solver — ever rewrites a constraint's Value after NewConstraint.
type Constraint struct {
	ID        string
	Kind      Kind
	EntityIDs []string
	Value     *float64 // nil when the kind takes no value
}

// arityRule describes, for one Kind, how many entity IDs a constraint needs
// and whether it carries a value. minArity == maxArity for fixed-arity
// kinds; maxArity == -1 marks variadic kinds (horizontal/vertical accept one
// line ID or two-or-more point IDs; same-x/same-y accept two-or-more point
// IDs). NewConstraint checks only the count; whether a single ID names a
// line is resolved at evaluation time.
type arityRule struct {
	minArity  int
	maxArity  int // -1 means unbounded
	wantValue bool
	nonNeg    bool // value, if present, must be >= 0
}

var rules = map[Kind]arityRule{
	KindDistance:            {2, 2, true, true},
	KindXDistance:           {2, 2, true, false},
	KindYDistance:           {2, 2, true, false},
	KindHorizontal:          {1, -1, false, false},
	KindVertical:            {1, -1, false, false},
	KindSameX:               {2, -1, false, false},
	KindSameY:               {2, -1, false, false},
	KindParallel:            {2, 2, false, false},
	KindPerpendicular:       {2, 2, false, false},
	KindAngle:               {3, 3, true, false},
	KindX:                   {1, 1, true, false},
	KindY:                   {1, 1, true, false},
	KindRadius:              {1, 1, true, true},
	KindPointOnCircle:       {2, 2, false, false},
	KindLineTangentToCircle: {2, 2, false, false},
}

// NewConstraint validates arity and value presence for kind against the
// fixed contract table above, and returns a ready Constraint. It does NOT
// validate that entityIDs resolve inside any particular Geometry — dangling
// references are a deliberate no-op at evaluation time, not a
// construction-time error; a Geometry owns its entities, but a Line/Circle/
// Constraint only holds non-owning references to them by id.
//
// Complexity: O(1).
func NewConstraint(id string, kind Kind, entityIDs []string, value *float64) (Constraint, error) {
	rule, ok := rules[kind]
	if !ok {
		return Constraint{}, ErrUnknownKind
	}
	n := len(entityIDs)
	if n < rule.minArity || (rule.maxArity != -1 && n > rule.maxArity) {
		return Constraint{}, ErrBadArity
	}
	if rule.wantValue && value == nil {
		return Constraint{}, ErrMissingValue
	}
	if !rule.wantValue && value != nil {
		return Constraint{}, ErrUnexpectedValue
	}
	if rule.wantValue && rule.nonNeg && *value < 0 {
		return Constraint{}, ErrNegativeValue
	}

	ids := make([]string, n)
	copy(ids, entityIDs)

	var v *float64
	if value != nil {
		cp := *value
		v = &cp
	}

	return Constraint{ID: id, Kind: kind, EntityIDs: ids, Value: v}, nil
}
