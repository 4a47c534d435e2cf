package testing_tool

import (
	"sort"

	"github.com/espsim/edgeplan/internal/model"
)

func assignedIds(stations []*model.BaseStation) []int {
	ids := make([]int, 0, len(stations))
	for _, station := range stations {
		ids = append(ids, station.Id)
	}
	sort.Ints(ids)

	return ids
}

// sameStations reports whether the assigned stations carry exactly the
// wanted ids, ignoring order.
func sameStations(got []*model.BaseStation, want []int) bool {
	gotIds := assignedIds(got)

	wantIds := make([]int, len(want))
	copy(wantIds, want)
	sort.Ints(wantIds)

	if len(gotIds) != len(wantIds) {
		return false
	}
	for i := range gotIds {
		if gotIds[i] != wantIds[i] {
			return false
		}
	}

	return true
}
