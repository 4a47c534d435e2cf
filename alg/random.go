package alg

import (
	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/model"
)

// RandomPlacement seeds servers on stations sampled uniformly without
// replacement. A non-zero seed makes runs reproducible; the source is
// rebuilt on every Place so re-running under the same seed yields the same
// placement.
type RandomPlacement struct {
	strategyState

	Seed int64
}

func NewRandomPlacement(topology *model.Topology) *RandomPlacement {
	return &RandomPlacement{
		strategyState: newStrategyState(topology),
		Seed:          config.PlannerGeneralConfig.RandomSeed,
	}
}

func (p *RandomPlacement) Name() string { return "random" }

func (p *RandomPlacement) Place(serverCount int) (*model.Placement, error) {
	p.begin(p.Name(), serverCount)
	placement, err := p.place(serverCount)
	p.finish(p.Name(), placement, err)

	return placement, err
}

func (p *RandomPlacement) place(serverCount int) (*model.Placement, error) {
	stations := p.topology.Stations
	if err := checkServerCount(serverCount, len(stations)); err != nil {
		return nil, err
	}

	rng := newRand(p.Seed)
	seeds := make([]*model.BaseStation, 0, serverCount)
	for _, idx := range rng.Perm(len(stations))[:serverCount] {
		seeds = append(seeds, stations[idx])
	}

	servers := seedServers(seeds)
	AssignNearest(stations, servers, p.dist)

	return model.NewPlacement(servers), nil
}
