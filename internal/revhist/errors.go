package revhist

import "errors"

// ErrUnknownSolver reports a Solver value outside {SolverExact,
// SolverHeuristic}.
var ErrUnknownSolver = errors.New("revhist: unknown solver")

// ErrUnknownStrategy reports a Strategy value outside the documented set.
var ErrUnknownStrategy = errors.New("revhist: unknown strategy")
