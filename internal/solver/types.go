package solver

// SolverResults is the response body of the MILP service. The status names
// follow the solver's own vocabulary.
type SolverResults struct {
	SolverStatusName string      `json:"solver_status_name"`
	SolverWalltime   float64     `json:"solver_walltime"`
	ObjectiveValue   float64     `json:"objective_value"`
	OpenSites        []int       `json:"open_sites"`
	Assignment       map[int]int `json:"assignment"`
}
