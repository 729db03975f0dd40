package sketchbuilder

import "errors"

// Sentinel errors for sketch constructors. Callers should branch with
// errors.Is against these, never against error message text.
var (
	// ErrTooFewVertices indicates a shape was asked for fewer vertices than
	// its topology requires (e.g., a polygon with n < 3).
	ErrTooFewVertices = errors.New("sketchbuilder: too few vertices for shape")

	// ErrNonPositiveDimension indicates a width/height/radius parameter was
	// zero or negative.
	ErrNonPositiveDimension = errors.New("sketchbuilder: dimension must be positive")

	// ErrEmptyPointList indicates AnchoredPolyline was called with no points.
	ErrEmptyPointList = errors.New("sketchbuilder: point list is empty")
)
