package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/statistics"
)

// SyntheticSource scatters stations uniformly inside a bounding box, for
// demos and runs that do not ship a dataset. The default box roughly covers
// urban Shanghai, matching the trace the planner was written around.
type SyntheticSource struct {
	Count   int
	Seed    int64
	Workers int

	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

func NewSyntheticSource(count int, seed int64, workers int) *SyntheticSource {
	return &SyntheticSource{
		Count:   count,
		Seed:    seed,
		Workers: workers,

		MinLatitude:  30.9,
		MaxLatitude:  31.4,
		MinLongitude: 121.2,
		MaxLongitude: 121.8,
	}
}

func (s *SyntheticSource) Stations() ([]*model.BaseStation, error) {
	if s.Count < 1 {
		return nil, fmt.Errorf("synthetic source needs at least one station, got %d", s.Count)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stations := make([]*model.BaseStation, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		stations = append(stations, &model.BaseStation{
			Id:        i,
			Addr:      fmt.Sprintf("synthetic-%d", i),
			Latitude:  s.MinLatitude + rng.Float64()*(s.MaxLatitude-s.MinLatitude),
			Longitude: s.MinLongitude + rng.Float64()*(s.MaxLongitude-s.MinLongitude),
			Workload:  rng.Float64() * 100,
		})
	}

	statistics.Change("loaded base stations", len(stations))
	log.Info().Msgf("generated %d synthetic base stations with seed %d", len(stations), seed)

	return stations, nil
}

func (s *SyntheticSource) Distances(stations []*model.BaseStation) (*model.DistanceTable, error) {
	return BuildDistanceTable(stations, s.Workers)
}
