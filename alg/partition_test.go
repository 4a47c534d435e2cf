package alg

import (
	"sort"
	"testing"

	"github.com/espsim/edgeplan/internal/model/testing_tool"
)

// Four stations on the equator at longitudes 0, 1, 3 and 6.
func lineTopology() []*testing_tool.StationDesc {
	return []*testing_tool.StationDesc{
		{Lat: 0, Lng: 0, Workload: 1},
		{Lat: 0, Lng: 1, Workload: 1},
		{Lat: 0, Lng: 3, Workload: 1},
		{Lat: 0, Lng: 6, Workload: 1},
	}
}

func TestNearestNeighborhoods(t *testing.T) {
	builder := testing_tool.New()

	t.Run("QuotaPerStation", func(t *testing.T) {
		topology := builder.GetTopology(lineTopology())

		neighborhoods := NearestNeighborhoods(topology.Distances, 2)

		want := [][]int{
			{0, 1},
			{0, 1},
			{1, 2},
			{2, 3},
		}
		for i, neighborhood := range neighborhoods {
			got := make([]int, len(neighborhood))
			copy(got, neighborhood)
			sort.Ints(got)

			if len(got) != len(want[i]) {
				t.Fatalf("station %d has %d candidates, wanted %d", i, len(got), len(want[i]))
			}
			for j := range got {
				if got[j] != want[i][j] {
					t.Fatalf("station %d candidates %v, wanted %v", i, got, want[i])
				}
			}
		}
	})

	t.Run("SingleServerKeepsFullRow", func(t *testing.T) {
		topology := builder.GetTopology(lineTopology())

		neighborhoods := NearestNeighborhoods(topology.Distances, 1)
		for i, neighborhood := range neighborhoods {
			if len(neighborhood) != len(topology.Stations) {
				t.Fatalf("station %d has %d candidates, wanted the full row", i, len(neighborhood))
			}
		}
	})
}

func TestSelectSmallest(t *testing.T) {
	t.Run("PicksBottomK", func(t *testing.T) {
		dists := []float64{9, 4, 7, 1, 8, 2, 5}
		indices := []int{0, 1, 2, 3, 4, 5, 6}

		selectSmallest(dists, indices, 3)

		got := make([]float64, 3)
		copy(got, dists[:3])
		sort.Float64s(got)
		for i, want := range []float64{1, 2, 4} {
			if got[i] != want {
				t.Fatalf("smallest three distances are %v", got)
			}
		}

		gotIdx := make([]int, 3)
		copy(gotIdx, indices[:3])
		sort.Ints(gotIdx)
		for i, want := range []int{1, 3, 5} {
			if gotIdx[i] != want {
				t.Fatalf("smallest three indices are %v", gotIdx)
			}
		}
	})

	t.Run("AllEqual", func(t *testing.T) {
		dists := []float64{3, 3, 3, 3, 3}
		indices := []int{0, 1, 2, 3, 4}

		selectSmallest(dists, indices, 2)

		for _, d := range dists[:2] {
			if d != 3 {
				t.Fatalf("distances were corrupted: %v", dists)
			}
		}
	})
}
