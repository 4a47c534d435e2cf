package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/dataset"
	"github.com/espsim/edgeplan/internal/gui"
	"github.com/espsim/edgeplan/internal/planner"
	"github.com/espsim/edgeplan/logging"
	"github.com/espsim/edgeplan/statistics"
	"gopkg.in/yaml.v2"
)

var log = logging.Get()

func main() {
	config_file_path := flag.String("config_file", "", "Path to config file")
	flag.Parse()

	fmt.Println(*config_file_path)
	yamlFile, err := os.ReadFile(*config_file_path)
	if err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}

	if err := yaml.UnmarshalStrict(yamlFile, &config.PlannerGeneralConfig); err != nil {
		log.Err(err).Msgf("could not load config")
		os.Exit(1)
	}

	statistics.Init()

	var source dataset.Source

	switch config.PlannerGeneralConfig.SourceKind {
	case "synthetic":
		source = dataset.NewSyntheticSource(
			config.PlannerGeneralConfig.SyntheticCount,
			config.PlannerGeneralConfig.SyntheticSeed,
			config.PlannerGeneralConfig.Workers,
		)
	case "csv":
		source = dataset.NewCSVSource(
			config.PlannerGeneralConfig.DatasetPath,
			config.PlannerGeneralConfig.DistanceCacheDir,
			config.PlannerGeneralConfig.Workers,
		)
	default:
		log.Error().Msg("source kind is not recognized")
		os.Exit(1)
	}

	plan := planner.New(source)

	if err := plan.Start(); err != nil {
		log.Err(err).Msg("could not start planner")
		os.Exit(1)
	}

	if err := plan.Run(); err != nil {
		log.Err(err).Msg("could not run planner")
		os.Exit(1)
	}

	log.Info().Msg(statistics.Display())

	if config.PlannerGeneralConfig.Gui {
		plannerContext := context.Background()

		gui.SetUp(plan.Serve(plannerContext))
		gui.Run(config.PlannerGeneralConfig.GuiAddress)
	}
}
