package alg

import (
	"sort"

	"github.com/espsim/edgeplan/internal/model"
)

// TopKPlacement seeds servers on the stations carrying the heaviest
// workload. The sort is stable, so stations with equal workload keep their
// input order and the whole run is deterministic.
type TopKPlacement struct {
	strategyState
}

func NewTopKPlacement(topology *model.Topology) *TopKPlacement {
	return &TopKPlacement{strategyState: newStrategyState(topology)}
}

func (p *TopKPlacement) Name() string { return "topk" }

func (p *TopKPlacement) Place(serverCount int) (*model.Placement, error) {
	p.begin(p.Name(), serverCount)
	placement, err := p.place(serverCount)
	p.finish(p.Name(), placement, err)

	return placement, err
}

func (p *TopKPlacement) place(serverCount int) (*model.Placement, error) {
	stations := p.topology.Stations
	if err := checkServerCount(serverCount, len(stations)); err != nil {
		return nil, err
	}

	ranked := make([]*model.BaseStation, len(stations))
	copy(ranked, stations)
	sort.Stable(&ReverseSorter[model.BaseStation]{
		objects: ranked,
		by:      func(station *model.BaseStation) float64 { return station.Workload },
	})

	servers := seedServers(ranked[:serverCount])
	AssignNearest(stations, servers, p.dist)

	return model.NewPlacement(servers), nil
}
