package model

// BaseStation is a demand point loaded from the dataset. Coordinates are in
// degrees, workload is a non-negative request volume. Stations are never
// mutated after loading.
type BaseStation struct {
	Id        int
	Addr      string
	Latitude  float64
	Longitude float64
	Workload  float64
}

// EdgeServer is a candidate service point produced by a placement strategy.
// CoLocated points to the station the server sits on, nil when the server
// was sited at a free coordinate such as a cluster centroid.
type EdgeServer struct {
	Id        int
	Latitude  float64
	Longitude float64
	CoLocated *BaseStation

	Assigned []*BaseStation
	Workload float64
}
