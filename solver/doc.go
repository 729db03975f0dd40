// Package solver implements the momentum gradient-descent loop that drives a
// Geometry toward a configuration satisfying all of its constraints.
//
// Solve repeatedly asks a constraint.Evaluator for every constraint's
// residual and gradient, aggregates the gradients by point id, and takes a
// momentum step on each point's coordinates. It terminates when every
// constraint is satisfied within constraint.SatisfactionThreshold, when an
// iteration produces no movement (stagnation), or after Options.MaxIterations
// iterations (exhaustion) — whichever comes first.
//
// A Solver is single-threaded and holds per-point velocities that persist
// through a Solve call and carry over into the next one until Reset clears
// them; call Reset between unrelated problems, or construct a fresh Solver. Two Solvers
// operating on disjoint Geometry values share no state and may run on
// separate goroutines without coordination.
package solver
