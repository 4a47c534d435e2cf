package alg

import (
	"errors"
	"testing"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/model/testing_tool"
)

func TestAssignNearest(t *testing.T) {
	builder := testing_tool.New()

	t.Run("NearestWins", func(t *testing.T) {
		topology := builder.GetTopology([]*testing_tool.StationDesc{
			{Lat: 0, Lng: 0, Workload: 2},
			{Lat: 0, Lng: 4, Workload: 1},
			{Lat: 0, Lng: 5, Workload: 3},
		})
		servers := []*model.EdgeServer{
			{Id: 0, Latitude: 0, Longitude: 1},
			{Id: 1, Latitude: 0, Longitude: 5},
		}

		AssignNearest(topology.Stations, servers, DistanceProvider{})

		builder.Expect(model.NewPlacement(servers), []*testing_tool.ServerDesc{
			{Site: -1, Stations: []int{0}, Workload: 2},
			{Site: -1, Stations: []int{1, 2}, Workload: 4},
		})
	})

	t.Run("TieKeepsFirstCandidate", func(t *testing.T) {
		station := &model.BaseStation{Id: 0, Workload: 1}
		servers := []*model.EdgeServer{
			{Id: 0, Latitude: 0, Longitude: 1},
			{Id: 1, Latitude: 0, Longitude: 1},
		}

		AssignNearest([]*model.BaseStation{station}, servers, DistanceProvider{})

		if len(servers[0].Assigned) != 1 || len(servers[1].Assigned) != 0 {
			t.Fatalf(
				"tie split %d/%d, wanted the first candidate to keep the station",
				len(servers[0].Assigned), len(servers[1].Assigned),
			)
		}
	})
}

func TestObjectives(t *testing.T) {
	setUp()
	builder := testing_tool.New()

	t.Run("CoLocatedMeansZeroDistance", func(t *testing.T) {
		topology := builder.GetTopology([]*testing_tool.StationDesc{
			{Lat: 0, Lng: 0, Workload: 1},
			{Lat: 0, Lng: 1, Workload: 2},
		})
		strategy := NewTopKPlacement(topology)

		placement := testing_tool.MustPlace(topology, strategy.Place, 2)

		meanDist, err := MeanAccessDistance(placement, DistanceProvider{Table: topology.Distances})
		if err != nil {
			t.Fatalf("mean distance failed: %v", err)
		}
		if meanDist != 0 {
			t.Fatalf("every station sits on its own server, mean distance %f, wanted 0", meanDist)
		}
	})

	t.Run("DispersionMeasuresImbalance", func(t *testing.T) {
		topology := builder.GetTopology([]*testing_tool.StationDesc{
			{Lat: 0, Lng: 0, Workload: 1},
			{Lat: 0, Lng: 1, Workload: 2},
		})
		strategy := NewTopKPlacement(topology)

		placement := testing_tool.MustPlace(topology, strategy.Place, 2)

		dispersion, err := WorkloadDispersion(placement)
		if err != nil {
			t.Fatalf("dispersion failed: %v", err)
		}
		if dispersion != 0.5 {
			t.Fatalf("workloads {1, 2} give dispersion %f, wanted 0.5", dispersion)
		}
	})

	t.Run("EmptyPlacement", func(t *testing.T) {
		empty := model.NewPlacement(nil)

		if _, err := MeanAccessDistance(empty, DistanceProvider{}); !errors.Is(err, ErrEmptyPlacement) {
			t.Fatalf("mean distance over no servers returned %v, wanted ErrEmptyPlacement", err)
		}
		if _, err := WorkloadDispersion(empty); !errors.Is(err, ErrEmptyPlacement) {
			t.Fatalf("dispersion over no servers returned %v, wanted ErrEmptyPlacement", err)
		}
	})
}
