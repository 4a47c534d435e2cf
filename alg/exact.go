package alg

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
)

// SolverFn hands a facility model to an external MILP capability and blocks
// until it answers or ctx expires. Implementations map an infeasible model
// to ErrSolverInfeasible.
type SolverFn func(ctx context.Context, fm *model.FacilityModel) (*model.FacilitySolution, error)

// ExactPlacement formulates server placement as a facility location program:
// exactly k sites open among the stations and every station assigned to one
// opened site inside its preprocessed neighborhood, minimizing the total
// assigned distance. Solving happens behind SolverFn; this side builds the
// model, bounds the call and turns the solution back into a placement.
// Restricting arcs to neighborhoods can make the model infeasible, which is
// surfaced, never silently relaxed.
type ExactPlacement struct {
	strategyState

	Timeout time.Duration
	Solve   SolverFn
}

func NewExactPlacement(topology *model.Topology, solve SolverFn) *ExactPlacement {
	return &ExactPlacement{
		strategyState: newStrategyState(topology),
		Timeout:       time.Duration(config.PlannerGeneralConfig.SolverTimeout) * time.Second,
		Solve:         solve,
	}
}

func (p *ExactPlacement) Name() string { return "exact" }

func (p *ExactPlacement) Place(serverCount int) (*model.Placement, error) {
	p.begin(p.Name(), serverCount)
	placement, err := p.place(serverCount)
	p.finish(p.Name(), placement, err)

	return placement, err
}

func (p *ExactPlacement) place(serverCount int) (*model.Placement, error) {
	stations := p.topology.Stations
	if err := checkServerCount(serverCount, len(stations)); err != nil {
		return nil, err
	}
	if p.topology.Distances == nil {
		return nil, fmt.Errorf("exact placement needs a distance table")
	}
	if p.Solve == nil {
		return nil, fmt.Errorf("exact placement needs a solver")
	}

	neighborhoods := NearestNeighborhoods(p.topology.Distances, serverCount)
	fm := p.buildModel(serverCount, neighborhoods)
	log.Debug().Msgf("facility model: %d sites, %d arcs", len(fm.Sites), len(fm.Arcs))

	ctx := context.Background()
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	solution, err := p.Solve(ctx, fm)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: gave up after %s", ErrSolverTimeout, p.Timeout)
		}

		return nil, err
	}

	return p.buildPlacement(serverCount, neighborhoods, solution)
}

func (p *ExactPlacement) buildModel(serverCount int, neighborhoods [][]int) *model.FacilityModel {
	stations := p.topology.Stations
	table := p.topology.Distances

	fm := &model.FacilityModel{
		OpenCount: serverCount,
		Sites:     make([]int, len(stations)),
	}
	for i, station := range stations {
		fm.Sites[i] = station.Id
	}

	for _, station := range stations {
		for _, site := range neighborhoods[station.Id] {
			fm.Arcs = append(fm.Arcs, model.FacilityArc{
				Station:  station.Id,
				Site:     site,
				Distance: table.At(station.Id, site),
			})
		}
	}

	return fm
}

// buildPlacement checks the solution against the model before trusting it:
// exactly k known sites open and every station assigned to an opened site
// from its own neighborhood.
func (p *ExactPlacement) buildPlacement(serverCount int, neighborhoods [][]int, solution *model.FacilitySolution) (*model.Placement, error) {
	if solution == nil {
		return nil, fmt.Errorf("solver returned no solution")
	}

	topo := p.topology
	open := utils.SliceToMap(solution.OpenSites, func(site int) int { return site })
	if len(open) != serverCount {
		return nil, fmt.Errorf("solver opened %d sites, wanted %d", len(open), serverCount)
	}

	openStations := make([]*model.BaseStation, 0, serverCount)
	for site := range open {
		station, ok := topo.StationIdToStation[site]
		if !ok {
			return nil, fmt.Errorf("solver opened unknown site %d", site)
		}
		openStations = append(openStations, station)
	}
	sort.Sort(&Sorter[model.BaseStation]{
		objects: openStations,
		by:      func(station *model.BaseStation) float64 { return float64(station.Id) },
	})

	servers := seedServers(openStations)
	serverOfSite := make(map[int]*model.EdgeServer, len(servers))
	for _, server := range servers {
		serverOfSite[server.CoLocated.Id] = server
	}

	for _, station := range topo.Stations {
		site, ok := solution.Assignment[station.Id]
		if !ok {
			return nil, fmt.Errorf("solver left station %d unassigned", station.Id)
		}
		if !open[site] {
			return nil, fmt.Errorf("solver assigned station %d to closed site %d", station.Id, site)
		}

		inNeighborhood := false
		for _, candidate := range neighborhoods[station.Id] {
			if candidate == site {
				inNeighborhood = true
				break
			}
		}
		if !inNeighborhood {
			return nil, fmt.Errorf("solver assigned station %d outside its neighborhood to site %d", station.Id, site)
		}

		server := serverOfSite[site]
		server.Assigned = append(server.Assigned, station)
		server.Workload += station.Workload
	}

	return model.NewPlacement(servers), nil
}
