package model

import (
	"fmt"
	"math"

	"github.com/espsim/edgeplan/internal/utils"
	"github.com/espsim/edgeplan/logging"
)

var log = logging.Get()

// Topology is the loaded problem instance: the base stations and their
// pairwise distance table.
type Topology struct {
	Stations           []*BaseStation
	StationIdToStation map[int]*BaseStation

	Distances *DistanceTable
}

func NewTopology() *Topology {
	return &Topology{
		StationIdToStation: make(map[int]*BaseStation),
	}
}

func (t *Topology) AddStation(station *BaseStation) bool {
	if _, ok := t.StationIdToStation[station.Id]; ok {
		return false
	}

	t.StationIdToStation[station.Id] = station
	t.Stations = append(t.Stations, station)

	return true
}

func (t *Topology) TotalWorkload() float64 {
	var total float64
	for _, station := range t.Stations {
		total += station.Workload
	}

	return total
}

// Placement is a strategy's answer: the surviving edge servers together with
// the station assignment hanging off each of them.
type Placement struct {
	EdgeServers []*EdgeServer
}

// NewPlacement drops servers that attracted no stations, so a placement can
// end up with fewer servers than were requested.
func NewPlacement(servers []*EdgeServer) *Placement {
	kept := make([]*EdgeServer, 0, len(servers))
	for _, server := range servers {
		if len(server.Assigned) == 0 {
			continue
		}
		kept = append(kept, server)
	}

	if dropped := len(servers) - len(kept); dropped > 0 {
		log.Debug().Msgf("dropped %d edge servers with no assigned stations", dropped)
	}

	return &Placement{EdgeServers: kept}
}

func (p *Placement) TotalWorkload() float64 {
	var total float64
	for _, server := range p.EdgeServers {
		total += server.Workload
	}

	return total
}

func (p *Placement) AssignedStations() int {
	count := 0
	for _, server := range p.EdgeServers {
		count += len(server.Assigned)
	}

	return count
}

// Validate checks that every given station is served by exactly one server
// and that each server's workload matches the sum over its stations.
func (p *Placement) Validate(stations []*BaseStation) error {
	known := utils.SliceToMap(stations, func(s *BaseStation) int { return s.Id })

	counts := make(map[int]int)
	for _, server := range p.EdgeServers {
		var workload float64
		for _, station := range server.Assigned {
			if !known[station.Id] {
				return fmt.Errorf("server %d serves unknown station %d", server.Id, station.Id)
			}
			counts[station.Id]++
			workload += station.Workload
		}

		if math.Abs(workload-server.Workload) > 1e-9 {
			return fmt.Errorf(
				"server %d carries workload %f but its stations sum to %f",
				server.Id, server.Workload, workload,
			)
		}
	}

	for _, station := range stations {
		switch counts[station.Id] {
		case 0:
			return fmt.Errorf("station %d is not served by any server", station.Id)
		case 1:
		default:
			return fmt.Errorf("station %d is served %d times", station.Id, counts[station.Id])
		}
	}

	return nil
}

func (p *Placement) Display() string {
	repr := ""

	repr += "EDGE SERVERS:\n"
	for _, server := range p.EdgeServers {
		serverDesc := fmt.Sprintf(
			"{server %d (%f, %f)} workload %f: ",
			server.Id,
			server.Latitude,
			server.Longitude,
			server.Workload,
		)
		for _, station := range server.Assigned {
			serverDesc += fmt.Sprintf("{station %d (%f)} || ", station.Id, station.Workload)
		}

		repr += serverDesc
		repr += "\n"
	}

	return repr
}
