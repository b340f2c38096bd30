package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads and parses a configuration file. Fields omitted from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseYAML parses a Config from YAML bytes, applying it on top of the
// defaults, and validates the result.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// validate performs validation on the configuration
func validate(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.OutputCSV == "" {
		return fmt.Errorf("output_csv cannot be empty")
	}

	if cfg.Solver.FTolRel <= 0 {
		return fmt.Errorf("solver ftol_rel must be positive, got %g", cfg.Solver.FTolRel)
	}
	if cfg.Solver.XTolRel <= 0 {
		return fmt.Errorf("solver xtol_rel must be positive, got %g", cfg.Solver.XTolRel)
	}
	if cfg.Solver.MaxEvaluations <= 0 {
		return fmt.Errorf("solver max_evaluations must be positive, got %d", cfg.Solver.MaxEvaluations)
	}

	if cfg.Repeat.Count <= 0 {
		return fmt.Errorf("repeat count must be positive, got %d", cfg.Repeat.Count)
	}

	return nil
}
