package alg

import (
	"github.com/espsim/edgeplan/internal/model"
	"gonum.org/v1/gonum/stat"
)

// MeanAccessDistance averages the server-to-station distance over every
// assigned pair of the placement.
func MeanAccessDistance(placement *model.Placement, dist DistanceProvider) (float64, error) {
	if placement == nil {
		return 0, ErrPrematureEvaluation
	}

	var total float64
	count := 0
	for _, server := range placement.EdgeServers {
		for _, station := range server.Assigned {
			total += dist.Distance(server, station)
			count++
		}
	}

	if count == 0 {
		return 0, ErrEmptyPlacement
	}

	return total / float64(count), nil
}

// WorkloadDispersion is the population standard deviation of the per-server
// accumulated workloads. Zero means a perfectly balanced placement.
func WorkloadDispersion(placement *model.Placement) (float64, error) {
	if placement == nil {
		return 0, ErrPrematureEvaluation
	}
	if placement.AssignedStations() == 0 {
		return 0, ErrEmptyPlacement
	}

	workloads := make([]float64, 0, len(placement.EdgeServers))
	for _, server := range placement.EdgeServers {
		workloads = append(workloads, server.Workload)
	}

	return stat.PopStdDev(workloads, nil), nil
}
