package solver

import (
	"errors"

	"github.com/sketchforge/geoconstraint/geom"
)

// Sentinel errors whose messages the option constructors below panic with
// when given an invalid value. Solve itself returns no error.
var (
	// ErrBadLearningRate indicates a non-positive learning rate was configured.
	ErrBadLearningRate = errors.New("solver: learning rate must be positive")

	// ErrBadMomentum indicates a momentum coefficient outside [0, 1) was configured.
	ErrBadMomentum = errors.New("solver: momentum must be in [0, 1)")

	// ErrBadMaxIterations indicates a non-positive iteration cap was configured.
	ErrBadMaxIterations = errors.New("solver: max iterations must be positive")

	// ErrBadMovementTolerance indicates a negative movement tolerance was configured.
	ErrBadMovementTolerance = errors.New("solver: movement tolerance must be non-negative")
)

// Options configures a Solver's fixed hyperparameters.
//
// LearningRate (α) and Momentum (β) control the per-step velocity update
// v ← β·v − α·g. MaxIterations (M) bounds the loop; MovementTolerance (ε) is
// the per-coordinate step size below which a point is considered not to have
// moved, used by the stagnation test.
type Options struct {
	LearningRate      float64
	Momentum          float64
	MaxIterations     int
	MovementTolerance float64
}

// Option is a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the hyperparameters named in spec: α = 0.01,
// β = 0.95, M = 1000, ε = 1e-7.
func DefaultOptions() Options {
	return Options{
		LearningRate:      0.01,
		Momentum:          0.95,
		MaxIterations:     1000,
		MovementTolerance: 1e-7,
	}
}

// WithLearningRate overrides the default learning rate α. Must be positive.
func WithLearningRate(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 {
			panic(ErrBadLearningRate.Error())
		}
		o.LearningRate = alpha
	}
}

// WithMomentum overrides the default momentum coefficient β. Must be in [0, 1).
func WithMomentum(beta float64) Option {
	return func(o *Options) {
		if beta < 0 || beta >= 1 {
			panic(ErrBadMomentum.Error())
		}
		o.Momentum = beta
	}
}

// WithMaxIterations overrides the default iteration cap M. Must be positive.
func WithMaxIterations(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = m
	}
}

// WithMovementTolerance overrides the default per-coordinate movement
// tolerance ε used by the stagnation test. Must be non-negative.
func WithMovementTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadMovementTolerance.Error())
		}
		o.MovementTolerance = eps
	}
}

// Result is the outcome of one Solve call.
//
// Geometry always holds the final point coordinates reached, even when
// Success is false — a caller may inspect the best-effort solution the
// descent found before stagnating or exhausting its iteration budget.
type Result struct {
	Success    bool
	Iterations int
	FinalError float64
	Geometry   geom.Geometry
}

// runState is the Solver's internal state machine:
// idle -> running -> (converged|stagnated|exhausted) -> idle.
// It exists for introspection in tests; it is not part of the public API.
type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateConverged
	stateStagnated
	stateExhausted
)

func (s runState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateConverged:
		return "converged"
	case stateStagnated:
		return "stagnated"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
