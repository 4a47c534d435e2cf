package alg

import (
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
)

// DistanceProvider resolves server-to-station distances in kilometers. When
// the server is co-located with a station and a table is present the
// precomputed entry is used, otherwise the great-circle distance between the
// two coordinates is computed. Pure over its inputs.
type DistanceProvider struct {
	Table *model.DistanceTable
}

func (p DistanceProvider) Distance(server *model.EdgeServer, station *model.BaseStation) float64 {
	if p.Table != nil && server.CoLocated != nil {
		return p.Table.At(server.CoLocated.Id, station.Id)
	}

	return utils.GreatCircleKm(server.Latitude, server.Longitude, station.Latitude, station.Longitude)
}
