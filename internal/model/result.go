package model

// FacilityModel is the facility location program handed to the external
// solver. Sites are station ids, and assignment arcs only exist inside each
// station's preprocessed neighborhood.
type FacilityModel struct {
	OpenCount int           `json:"open_count"`
	Sites     []int         `json:"sites"`
	Arcs      []FacilityArc `json:"arcs"`
}

type FacilityArc struct {
	Station  int     `json:"station"`
	Site     int     `json:"site"`
	Distance float64 `json:"distance"`
}

// FacilitySolution is the solver's answer: the opened sites and, for every
// station, the opened site that serves it.
type FacilitySolution struct {
	OpenSites  []int       `json:"open_sites"`
	Assignment map[int]int `json:"assignment"`
	Objective  float64     `json:"objective_value"`
	Walltime   float64     `json:"solver_walltime"`
}
