package dataset

import (
	"sync"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
	"github.com/espsim/edgeplan/statistics"
	"github.com/panjf2000/ants/v2"
)

// BuildDistanceTable computes the full great-circle matrix, one row per task
// on a shared goroutine pool. Row i only fills columns j >= i, the table
// mirrors the rest, so no two tasks touch the same cell.
func BuildDistanceTable(stations []*model.BaseStation, workers int) (*model.DistanceTable, error) {
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	table := model.NewDistanceTable(len(stations))

	var wg sync.WaitGroup
	for i := range stations {
		wg.Add(1)
		row := i

		err := pool.Submit(func() {
			defer wg.Done()

			a := stations[row]
			for j := row; j < len(stations); j++ {
				b := stations[j]
				table.SetSym(a.Id, b.Id, utils.GreatCircleKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude))
			}

			statistics.Change("computed distance table rows", 1)
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	return table, nil
}
