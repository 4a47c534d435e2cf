package config

type GeneralConfig struct {
	Name             string   `yaml:"name"`
	SourceKind       string   `yaml:"source"`
	DatasetPath      string   `yaml:"dataset_path"`
	DistanceCacheDir string   `yaml:"distance_cache_dir"`
	Workers          int      `yaml:"workers"`
	SyntheticCount   int      `yaml:"synthetic_stations"`
	SyntheticSeed    int64    `yaml:"synthetic_seed"`
	EdgeServerCount  int      `yaml:"edge_server_num"`
	Strategies       []string `yaml:"strategies"`
	KMeansIterations int      `yaml:"kmeans_iterations"`
	KMeansSeed       int64    `yaml:"kmeans_seed"`
	RandomSeed       int64    `yaml:"random_seed"`
	SolverAddress    string   `yaml:"solver_address"`
	SolverTimeout    int      `yaml:"solver_timeout"` // seconds
	ReportPath       string   `yaml:"report_path"`
	Gui              bool     `yaml:"gui"`
	GuiAddress       string   `yaml:"gui_address"`
}

var PlannerGeneralConfig GeneralConfig

// General constants:
const DefaultKMeansIterations = 100
