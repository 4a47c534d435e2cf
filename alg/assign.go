package alg

import (
	"math"

	"github.com/espsim/edgeplan/internal/model"
)

// AssignNearest maps every station to the closest of the given servers and
// accumulates workload on it. The comparison is strict, so equidistant
// servers lose to the earliest one in candidate order, which keeps the
// result deterministic for a fixed input.
func AssignNearest(stations []*model.BaseStation, servers []*model.EdgeServer, dist DistanceProvider) {
	for _, station := range stations {
		var closest *model.EdgeServer
		closestDist := math.Inf(1)

		for _, server := range servers {
			if d := dist.Distance(server, station); d < closestDist {
				closest = server
				closestDist = d
			}
		}

		if closest == nil {
			continue
		}

		closest.Assigned = append(closest.Assigned, station)
		closest.Workload += station.Workload
	}
}
