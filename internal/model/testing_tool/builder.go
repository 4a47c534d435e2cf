// Because it is a testing package, no errors are returned,
// all problems cause a panic.

package testing_tool

import (
	"fmt"
	"math"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
)

type StationDesc struct {
	Addr     string
	Lat      float64
	Lng      float64
	Workload float64
}

// ServerDesc describes one expected edge server. Site is the co-located
// station id, -1 for servers sited at free coordinates. Stations lists the
// expected assigned station ids, order does not matter.
type ServerDesc struct {
	Site     int
	Stations []int
	Workload float64
}

type Builder struct{}

func New() *Builder {
	return &Builder{}
}

// GetTopology builds stations with dense ids following the descriptor order
// and a full great-circle distance table over them.
func (builder *Builder) GetTopology(stationsDesc []*StationDesc) *model.Topology {
	topology := model.NewTopology()

	for ind, stationDesc := range stationsDesc {
		station := &model.BaseStation{
			Id:        ind,
			Addr:      stationDesc.Addr,
			Latitude:  stationDesc.Lat,
			Longitude: stationDesc.Lng,
			Workload:  stationDesc.Workload,
		}
		if !topology.AddStation(station) {
			panic(fmt.Sprintf("station %d was added twice", station.Id))
		}
	}

	table := model.NewDistanceTable(len(topology.Stations))
	for _, a := range topology.Stations {
		for _, b := range topology.Stations {
			if a.Id > b.Id {
				continue
			}
			table.SetSym(a.Id, b.Id, utils.GreatCircleKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude))
		}
	}
	topology.Distances = table

	return topology
}

// Expect compares a placement against the wanted servers position by
// position.
func (builder *Builder) Expect(got *model.Placement, want []*ServerDesc) {
	if len(got.EdgeServers) != len(want) {
		panic(fmt.Errorf("got %d edge servers, wanted %d", len(got.EdgeServers), len(want)))
	}

	for i, server := range got.EdgeServers {
		serverDesc := want[i]

		if serverDesc.Site >= 0 {
			if server.CoLocated == nil {
				panic(fmt.Errorf("server %d is free-sited, wanted station %d", server.Id, serverDesc.Site))
			}
			if server.CoLocated.Id != serverDesc.Site {
				panic(fmt.Errorf("server %d sits on station %d, wanted %d", server.Id, server.CoLocated.Id, serverDesc.Site))
			}
		} else if server.CoLocated != nil {
			panic(fmt.Errorf("server %d sits on station %d, wanted a free site", server.Id, server.CoLocated.Id))
		}

		if !sameStations(server.Assigned, serverDesc.Stations) {
			panic(fmt.Errorf("server %d serves %v, wanted stations %v", server.Id, assignedIds(server.Assigned), serverDesc.Stations))
		}

		if math.Abs(server.Workload-serverDesc.Workload) > 1e-9 {
			panic(fmt.Errorf("server %d carries workload %f, wanted %f", server.Id, server.Workload, serverDesc.Workload))
		}
	}
}
