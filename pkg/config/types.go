package config

// Config represents the benchmark harness configuration
type Config struct {
	LogLevel  string       `yaml:"log_level"`
	OutputCSV string       `yaml:"output_csv"`
	Solver    SolverConfig `yaml:"solver"`
	Repeat    RepeatConfig `yaml:"repeat"`
}

// SolverConfig holds the optimizer stopping criteria. The defaults match
// the NLopt reference harness this suite is compared against.
type SolverConfig struct {
	// FTolRel is the relative function-value tolerance
	FTolRel float64 `yaml:"ftol_rel"`
	// XTolRel is the relative parameter tolerance
	XTolRel float64 `yaml:"xtol_rel"`
	// MaxEvaluations is the objective evaluation budget per run
	MaxEvaluations int `yaml:"max_evaluations"`
}

// RepeatConfig holds settings for the repeat-and-average timing mode
type RepeatConfig struct {
	// Count is the number of times the selected case is re-run
	Count int `yaml:"count"`
}

// DefaultOutputCSV is the result file overwritten on each invocation
const DefaultOutputCSV = "nlopt_benchmark_results.csv"

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		OutputCSV: DefaultOutputCSV,
		Solver: SolverConfig{
			FTolRel:        1e-8,
			XTolRel:        1e-8,
			MaxEvaluations: 10000,
		},
		Repeat: RepeatConfig{
			Count: 10,
		},
	}
}
