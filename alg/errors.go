package alg

import "errors"

var (
	ErrInvalidServerCount    = errors.New("edge server count out of range")
	ErrInsufficientDiversity = errors.New("not enough distinct station positions to cluster")
	ErrEmptyPlacement        = errors.New("placement has no assigned stations")
	ErrPrematureEvaluation   = errors.New("placement has not been computed yet")
	ErrSolverTimeout         = errors.New("solver exceeded its time bound")
	ErrSolverInfeasible      = errors.New("solver found no feasible placement")
)
