package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/espsim/edgeplan/alg"
	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/model"
	"github.com/espsim/edgeplan/logging"
	"github.com/espsim/edgeplan/statistics"
	"gopkg.in/yaml.v3"
)

var log = logging.Get()

// Outcome is one strategy's run inside a comparison.
type Outcome struct {
	Strategy           string  `json:"strategy" yaml:"strategy"`
	EdgeServers        int     `json:"edge_servers" yaml:"edge_servers"`
	MeanAccessDistance float64 `json:"mean_access_distance" yaml:"mean_access_distance"`
	WorkloadDispersion float64 `json:"workload_dispersion" yaml:"workload_dispersion"`
	WallMillis         int64   `json:"wall_millis" yaml:"wall_millis"`
}

func (outcome *Outcome) String() string {
	bytes, _ := yaml.Marshal(outcome)
	return string(bytes[:])
}

// Report holds every outcome of a comparison, ranked by mean access
// distance, best first.
type Report struct {
	Name        string     `json:"name"`
	Stations    int        `json:"stations"`
	EdgeServers int        `json:"edge_servers"`
	Winner      string     `json:"winner"`
	Outcomes    []*Outcome `json:"outcomes"`
	GeneratedAt string     `json:"generated_at"`
}

func (report *Report) WriteFile(path string) error {
	content, err := json.MarshalIndent(report, "", " ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, content, 0644)
}

// BuildStrategy turns a configured strategy name into a ready strategy.
// solve is only consulted by the exact strategy and may be nil otherwise.
func BuildStrategy(name string, topology *model.Topology, solve alg.SolverFn) (alg.Strategy, error) {
	switch name {
	case "kmeans":
		return alg.NewKMeansPlacement(topology), nil
	case "topk":
		return alg.NewTopKPlacement(topology), nil
	case "random":
		return alg.NewRandomPlacement(topology), nil
	case "exact":
		if solve == nil {
			return nil, fmt.Errorf("strategy exact needs a solver address")
		}
		return alg.NewExactPlacement(topology, solve), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Compare runs every configured strategy over the topology, evaluates both
// objectives and ranks the outcomes. Any failing strategy aborts the whole
// comparison.
func Compare(topology *model.Topology, solve alg.SolverFn, cfg *config.GeneralConfig) (*Report, error) {
	outcomes := make([]*Outcome, 0, len(cfg.Strategies))

	for _, name := range cfg.Strategies {
		strategy, err := BuildStrategy(name, topology, solve)
		if err != nil {
			return nil, err
		}

		outcome, err := run(strategy, cfg.EdgeServerCount)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", name, err)
		}

		log.Debug().Msgf("strategy outcome:\n%s", outcome)
		outcomes = append(outcomes, outcome)
	}

	ranked := rank(outcomes)

	report := &Report{
		Name:        cfg.Name,
		Stations:    len(topology.Stations),
		EdgeServers: cfg.EdgeServerCount,
		Outcomes:    ranked,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	if len(ranked) > 0 {
		report.Winner = ranked[0].Strategy
	}

	return report, nil
}

func run(strategy alg.Strategy, serverCount int) (*Outcome, error) {
	var startedAt time.Time
	outcome := &Outcome{Strategy: strategy.Name()}

	strategy.SetHooks(alg.Hooks{
		OnPlaceStart: func(name string, serverCount int) {
			startedAt = time.Now()
			log.Info().Msgf("placing %d edge servers with %s", serverCount, name)
		},
		OnPlaceEnd: func(name string, placement *model.Placement, err error) {
			outcome.WallMillis = time.Since(startedAt).Milliseconds()
			if err != nil {
				log.Err(err).Msgf("strategy %s failed", name)
				return
			}

			statistics.Change("computed placements", 1)
			log.Info().Msgf("strategy %s placed %d edge servers in %d ms", name, len(placement.EdgeServers), outcome.WallMillis)
		},
	})

	placement, err := strategy.Place(serverCount)
	if err != nil {
		return nil, err
	}
	outcome.EdgeServers = len(placement.EdgeServers)

	if outcome.MeanAccessDistance, err = strategy.MeanAccessDistance(); err != nil {
		return nil, err
	}
	if outcome.WorkloadDispersion, err = strategy.WorkloadDispersion(); err != nil {
		return nil, err
	}

	return outcome, nil
}

// rank orders outcomes by mean access distance through a heap, dispersion
// breaking ties.
func rank(outcomes []*Outcome) []*Outcome {
	outcomeComparator := func(a, b interface{}) int {
		outcomeA := a.(*Outcome)
		outcomeB := b.(*Outcome)

		if outcomeA.MeanAccessDistance < outcomeB.MeanAccessDistance {
			return -1
		}
		if outcomeA.MeanAccessDistance > outcomeB.MeanAccessDistance {
			return 1
		}

		if outcomeA.WorkloadDispersion < outcomeB.WorkloadDispersion {
			return -1
		}
		if outcomeA.WorkloadDispersion > outcomeB.WorkloadDispersion {
			return 1
		}
		return 0
	}

	ordererOutcomes := binaryheap.NewWith(outcomeComparator)
	for _, outcome := range outcomes {
		ordererOutcomes.Push(outcome)
	}

	ranked := make([]*Outcome, 0, len(outcomes))
	for !ordererOutcomes.Empty() {
		first, _ := ordererOutcomes.Pop()
		ranked = append(ranked, first.(*Outcome))
	}

	return ranked
}
