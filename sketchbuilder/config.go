package sketchbuilder

// Option customizes the builderConfig resolved before a BuildSketch call.
// As a rule, option constructors never panic; invalid configuration is
// caught by the Constructors themselves, which return sentinel errors.
type Option func(cfg *builderConfig)

// builderConfig holds the configurable parameters shared by every shape
// Constructor: where a shape is anchored in the plane, and whether that
// anchor point should be pinned in place with x/y constraints so the shape
// does not drift when a Solver later resolves the rest of its geometry.
type builderConfig struct {
	originX, originY float64
	anchor           bool
}

// newBuilderConfig returns a builderConfig initialized with defaults —
// origin (0, 0), anchored — then applies each Option in order. Later
// options override earlier ones.
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{originX: 0, originY: 0, anchor: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOrigin sets the reference point a shape is built around or from.
func WithOrigin(x, y float64) Option {
	return func(cfg *builderConfig) {
		cfg.originX = x
		cfg.originY = y
	}
}

// WithoutAnchor disables the default x/y pin on a shape's anchor point,
// leaving every point free for the solver to move.
func WithoutAnchor() Option {
	return func(cfg *builderConfig) {
		cfg.anchor = false
	}
}
