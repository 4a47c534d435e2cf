package sim

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/espsim/edgeplan/alg"
	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/internal/model/testing_tool"
)

func gridConfig() *config.GeneralConfig {
	config.PlannerGeneralConfig = config.GeneralConfig{
		Name:             "sim-test",
		EdgeServerCount:  2,
		Strategies:       []string{"topk", "random"},
		KMeansIterations: 50,
		KMeansSeed:       5,
		RandomSeed:       7,
	}

	return &config.PlannerGeneralConfig
}

func gridTopology() *model.Topology {
	builder := testing_tool.New()
	return builder.GetTopology([]*testing_tool.StationDesc{
		{Lat: 0, Lng: 0, Workload: 1},
		{Lat: 0, Lng: 1, Workload: 1},
		{Lat: 1, Lng: 0, Workload: 1},
		{Lat: 1, Lng: 1, Workload: 1},
	})
}

func TestCompare(t *testing.T) {
	cfg := gridConfig()
	topology := gridTopology()

	report, err := Compare(topology, nil, cfg)
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}

	if len(report.Outcomes) != 2 {
		t.Fatalf("got %d outcomes, wanted 2", len(report.Outcomes))
	}
	if report.Winner != report.Outcomes[0].Strategy {
		t.Fatalf("winner %s is not the first ranked outcome %s", report.Winner, report.Outcomes[0].Strategy)
	}
	for i := 1; i < len(report.Outcomes); i++ {
		if report.Outcomes[i-1].MeanAccessDistance > report.Outcomes[i].MeanAccessDistance {
			t.Fatalf(
				"outcomes are not ranked: %f before %f",
				report.Outcomes[i-1].MeanAccessDistance, report.Outcomes[i].MeanAccessDistance,
			)
		}
	}
	for _, outcome := range report.Outcomes {
		if outcome.EdgeServers < 1 || outcome.EdgeServers > 2 {
			t.Fatalf("outcome %s kept %d servers", outcome.Strategy, outcome.EdgeServers)
		}
	}
	if report.Stations != 4 || report.EdgeServers != 2 || report.GeneratedAt == "" {
		t.Fatalf("report header came out as %+v", report)
	}
}

func TestCompareAbortsOnFailure(t *testing.T) {
	cfg := gridConfig()
	cfg.Strategies = []string{"kmeans"}
	cfg.EdgeServerCount = 3

	// Two distinct positions cannot host three cluster centers.
	builder := testing_tool.New()
	topology := builder.GetTopology([]*testing_tool.StationDesc{
		{Lat: 0, Lng: 0, Workload: 1},
		{Lat: 0, Lng: 0, Workload: 2},
		{Lat: 10, Lng: 10, Workload: 3},
	})

	_, err := Compare(topology, nil, cfg)
	if !errors.Is(err, alg.ErrInsufficientDiversity) {
		t.Fatalf("got %v, wanted ErrInsufficientDiversity", err)
	}
}

func TestBuildStrategy(t *testing.T) {
	gridConfig()
	topology := gridTopology()

	for _, name := range []string{"kmeans", "topk", "random"} {
		strategy, err := BuildStrategy(name, topology, nil)
		if err != nil {
			t.Fatalf("building %s failed: %v", name, err)
		}
		if strategy.Name() != name {
			t.Fatalf("built %s when asked for %s", strategy.Name(), name)
		}
	}

	fakeSolve := func(ctx context.Context, fm *model.FacilityModel) (*model.FacilitySolution, error) {
		return nil, nil
	}
	strategy, err := BuildStrategy("exact", topology, fakeSolve)
	if err != nil || strategy.Name() != "exact" {
		t.Fatalf("building exact failed: %v", err)
	}

	if _, err := BuildStrategy("exact", topology, nil); err == nil {
		t.Fatal("built the exact strategy without a solver, wanted an error")
	}
	if _, err := BuildStrategy("simulated-annealing", topology, nil); err == nil {
		t.Fatal("built an unknown strategy, wanted an error")
	}
}

func TestRankBreaksTiesByDispersion(t *testing.T) {
	ranked := rank([]*Outcome{
		{Strategy: "a", MeanAccessDistance: 10, WorkloadDispersion: 5},
		{Strategy: "b", MeanAccessDistance: 10, WorkloadDispersion: 1},
		{Strategy: "c", MeanAccessDistance: 2, WorkloadDispersion: 9},
	})

	got := make([]string, 0, len(ranked))
	for _, outcome := range ranked {
		got = append(got, outcome.Strategy)
	}

	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranked as %v, wanted %v", got, want)
		}
	}
}

func TestReportWriteFile(t *testing.T) {
	report := &Report{
		Name:     "demo",
		Stations: 4,
		Winner:   "topk",
		Outcomes: []*Outcome{{Strategy: "topk", MeanAccessDistance: 55.5}},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := report.WriteFile(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}

	var loaded Report
	if err := json.Unmarshal(content, &loaded); err != nil {
		t.Fatalf("report is not json: %v", err)
	}
	if loaded.Winner != "topk" || len(loaded.Outcomes) != 1 {
		t.Fatalf("report round-tripped as %+v", loaded)
	}
}

func TestOutcomeString(t *testing.T) {
	outcome := &Outcome{Strategy: "topk", EdgeServers: 2}
	if !strings.Contains(outcome.String(), "strategy: topk") {
		t.Fatalf("yaml repr came out as %q", outcome.String())
	}
}
