package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/utils"
	"github.com/espsim/edgeplan/statistics"
)

// CSVSource loads base stations from an addr,latitude,longitude,workload
// file. The distance table is cached as CSV next to the dataset, keyed by
// a hash of the dataset path, so repeated runs skip the O(N^2) build.
type CSVSource struct {
	Path     string
	CacheDir string
	Workers  int
}

func NewCSVSource(path, cacheDir string, workers int) *CSVSource {
	return &CSVSource{
		Path:     path,
		CacheDir: cacheDir,
		Workers:  workers,
	}
}

func (s *CSVSource) Stations() ([]*model.BaseStation, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	stations := make([]*model.BaseStation, 0)
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read dataset: %w", err)
		}
		line++

		if len(record) != 4 {
			return nil, fmt.Errorf("dataset row %d has %d fields, wanted addr,latitude,longitude,workload", line, len(record))
		}
		if line == 1 && record[1] == "latitude" {
			continue
		}

		station, err := parseStation(record, len(stations))
		if err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", line, err)
		}
		stations = append(stations, station)
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("dataset %s holds no stations", s.Path)
	}

	statistics.Change("loaded base stations", len(stations))
	log.Info().Msgf("loaded %d base stations from %s", len(stations), s.Path)

	return stations, nil
}

func parseStation(record []string, id int) (*model.BaseStation, error) {
	latitude, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q: %w", record[1], err)
	}
	longitude, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q: %w", record[2], err)
	}
	workload, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return nil, fmt.Errorf("bad workload %q: %w", record[3], err)
	}

	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("latitude %f out of range", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("longitude %f out of range", longitude)
	}
	if workload < 0 {
		return nil, fmt.Errorf("workload %f is negative", workload)
	}

	return &model.BaseStation{
		Id:        id,
		Addr:      record[0],
		Latitude:  latitude,
		Longitude: longitude,
		Workload:  workload,
	}, nil
}

func (s *CSVSource) Distances(stations []*model.BaseStation) (*model.DistanceTable, error) {
	cachePath := s.cachePath(len(stations))
	if table, err := readTableCache(cachePath, len(stations)); err == nil {
		log.Info().Msgf("loaded distance table from %s", cachePath)
		return table, nil
	}

	table, err := BuildDistanceTable(stations, s.Workers)
	if err != nil {
		return nil, err
	}

	if err := writeTableCache(cachePath, table); err != nil {
		log.Err(err).Msgf("could not cache the distance table, going on without")
	}

	return table, nil
}

func (s *CSVSource) cachePath(stationCount int) string {
	key := utils.Hash(fmt.Sprintf("%s:%d", s.Path, stationCount))
	return filepath.Join(s.CacheDir, fmt.Sprintf("distances_%d.csv", key))
}

func readTableCache(path string, stationCount int) (*model.DistanceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) != stationCount {
		return nil, fmt.Errorf("cache %s holds %d rows, wanted %d", path, len(rows), stationCount)
	}

	table := model.NewDistanceTable(stationCount)
	for i, row := range rows {
		if len(row) != stationCount {
			return nil, fmt.Errorf("cache %s row %d holds %d cells, wanted %d", path, i, len(row), stationCount)
		}
		for j := i; j < stationCount; j++ {
			distance, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("cache %s cell (%d, %d): %w", path, i, j, err)
			}
			table.SetSym(i, j, distance)
		}
	}

	return table, nil
}

func writeTableCache(path string, table *model.DistanceTable) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	record := make([]string, table.Len())
	for i := 0; i < table.Len(); i++ {
		for j := 0; j < table.Len(); j++ {
			record[j] = strconv.FormatFloat(table.At(i, j), 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
