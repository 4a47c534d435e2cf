package dataset

import (
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/logging"
	"gopkg.in/yaml.v3"
)

// Source yields the base stations of a planning scenario together with the
// pairwise distance table between them.
type Source interface {
	Stations() ([]*model.BaseStation, error)
	Distances(stations []*model.BaseStation) (*model.DistanceTable, error)
}

// Summary describes a loaded scenario, mostly for logging.
type Summary struct {
	Stations      int     `yaml:"stations"`
	TotalWorkload float64 `yaml:"total_workload"`
	MinLatitude   float64 `yaml:"min_latitude"`
	MaxLatitude   float64 `yaml:"max_latitude"`
	MinLongitude  float64 `yaml:"min_longitude"`
	MaxLongitude  float64 `yaml:"max_longitude"`
}

func Summarize(stations []*model.BaseStation) *Summary {
	summary := &Summary{Stations: len(stations)}
	for i, station := range stations {
		if i == 0 || station.Latitude < summary.MinLatitude {
			summary.MinLatitude = station.Latitude
		}
		if i == 0 || station.Latitude > summary.MaxLatitude {
			summary.MaxLatitude = station.Latitude
		}
		if i == 0 || station.Longitude < summary.MinLongitude {
			summary.MinLongitude = station.Longitude
		}
		if i == 0 || station.Longitude > summary.MaxLongitude {
			summary.MaxLongitude = station.Longitude
		}
		summary.TotalWorkload += station.Workload
	}

	return summary
}

func (summary *Summary) String() string {
	bytes, _ := yaml.Marshal(summary)
	return string(bytes[:])
}

var log = logging.Get()
