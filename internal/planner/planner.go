package planner

import (
	"context"
	"fmt"

	"github.com/espsim/edgeplan/alg"
	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/dataset"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/solver"
	"github.com/espsim/edgeplan/logging"
	"github.com/espsim/edgeplan/sim"
)

var log = logging.Get()

// Planner drives one planning run: load the scenario, compare the
// configured strategies, persist the report, answer gui requests.
type Planner struct {
	Topology *model.Topology
	Source   dataset.Source

	report *sim.Report
}

// PlannerBridge is the gui's window into the planner. The gui pushes an
// empty struct into ReportRequestStream and reads the current report back
// from ReportStream.
type PlannerBridge struct {
	ReportRequestStream chan<- struct{}
	ReportStream        <-chan *sim.Report
}

func New(source dataset.Source) *Planner {
	return &Planner{Source: source}
}

// Start loads the base stations and builds the distance table.
func (planner *Planner) Start() error {
	stations, err := planner.Source.Stations()
	if err != nil {
		log.Err(err).Send()

		return fmt.Errorf("source could not load base stations")
	}

	log.Info().Msgf("scenario:\n%s", dataset.Summarize(stations))

	topology := model.NewTopology()
	for _, station := range stations {
		if !topology.AddStation(station) {
			return fmt.Errorf("station id %d appears twice in the source", station.Id)
		}
	}

	distances, err := planner.Source.Distances(topology.Stations)
	if err != nil {
		log.Err(err).Send()

		return fmt.Errorf("source could not build the distance table")
	}
	topology.Distances = distances

	planner.Topology = topology

	return nil
}

// Run compares the configured strategies over the loaded topology and
// persists the report when a path is configured.
func (planner *Planner) Run() error {
	if planner.Topology == nil {
		return fmt.Errorf("planner has not been started")
	}

	cfg := &config.PlannerGeneralConfig

	var solve alg.SolverFn
	if cfg.SolverAddress != "" {
		solve = solver.NewClient(cfg.SolverAddress).Solve
	}

	report, err := sim.Compare(planner.Topology, solve, cfg)
	if err != nil {
		log.Err(err).Send()

		return fmt.Errorf("strategy comparison did not finish")
	}
	planner.report = report

	log.Info().Msgf("strategy %s wins with the lowest mean access distance", report.Winner)

	if cfg.ReportPath != "" {
		if err := report.WriteFile(cfg.ReportPath); err != nil {
			log.Err(err).Send()

			return fmt.Errorf("could not persist the report to %s", cfg.ReportPath)
		}

		log.Info().Msgf("report written to %s", cfg.ReportPath)
	}

	return nil
}

// Serve answers report requests until ctx is done.
func (planner *Planner) Serve(ctx context.Context) PlannerBridge {
	reportRequestStream := make(chan struct{})
	reportStream := make(chan *sim.Report)

	go func() {
		for {
			select {
			case <-reportRequestStream:
				reportStream <- planner.report
			case <-ctx.Done():
				return
			}
		}
	}()

	return PlannerBridge{
		ReportRequestStream: reportRequestStream,
		ReportStream:        reportStream,
	}
}
