package alg

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/logging"
)

var log = logging.Get()

// Hooks receive placement lifecycle events. Both callbacks are optional and
// must not mutate the placement they are handed.
type Hooks struct {
	OnPlaceStart func(name string, serverCount int)
	OnPlaceEnd   func(name string, placement *model.Placement, err error)
}

// Strategy computes edge server placements over one topology. Place stores
// its result and can be re-run, overwriting the prior placement. The
// evaluation methods refuse to run before the first successful Place.
type Strategy interface {
	Name() string
	Place(serverCount int) (*model.Placement, error)
	MeanAccessDistance() (float64, error)
	WorkloadDispersion() (float64, error)
	SetHooks(hooks Hooks)
}

type strategyState struct {
	topology  *model.Topology
	dist      DistanceProvider
	placement *model.Placement
	hooks     Hooks
}

func newStrategyState(topology *model.Topology) strategyState {
	return strategyState{
		topology: topology,
		dist:     DistanceProvider{Table: topology.Distances},
	}
}

func (s *strategyState) SetHooks(hooks Hooks) {
	s.hooks = hooks
}

func (s *strategyState) begin(name string, serverCount int) {
	if s.hooks.OnPlaceStart != nil {
		s.hooks.OnPlaceStart(name, serverCount)
	}
}

// finish keeps the previously stored placement when the run failed.
func (s *strategyState) finish(name string, placement *model.Placement, err error) {
	if err == nil {
		s.placement = placement
	}

	if s.hooks.OnPlaceEnd != nil {
		s.hooks.OnPlaceEnd(name, placement, err)
	}
}

func (s *strategyState) MeanAccessDistance() (float64, error) {
	if s.placement == nil {
		return 0, ErrPrematureEvaluation
	}

	return MeanAccessDistance(s.placement, s.dist)
}

func (s *strategyState) WorkloadDispersion() (float64, error) {
	if s.placement == nil {
		return 0, ErrPrematureEvaluation
	}

	return WorkloadDispersion(s.placement)
}

func checkServerCount(serverCount, stationCount int) error {
	if serverCount < 1 || serverCount > stationCount {
		return fmt.Errorf(
			"%w: requested %d edge servers for %d stations",
			ErrInvalidServerCount, serverCount, stationCount,
		)
	}

	return nil
}

// seedServers builds one co-located server per seed station, ids following
// the seed order.
func seedServers(seeds []*model.BaseStation) []*model.EdgeServer {
	servers := make([]*model.EdgeServer, len(seeds))
	for i, station := range seeds {
		servers[i] = &model.EdgeServer{
			Id:        i,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
			CoLocated: station,
		}
	}

	return servers
}

// newRand treats seed zero as "no seed given" and falls back to wall clock.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
