package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/claimsim/risk"
)

// ErrInvalidConfig is wrapped by every validation failure so callers can
// match the whole class with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// LineConfig describes one policy line: Poisson claim frequency, lognormal
// claim severity (mu/sigma of the underlying normal), and per-claim policy
// terms. A nil Limit means no per-claim limit.
type LineConfig struct {
	Name            string   `json:"name" yaml:"name"`
	Frequency       float64  `json:"frequency" yaml:"frequency"`
	SeverityLogMean float64  `json:"severity_log_mean" yaml:"severity_log_mean"`
	SeverityLogStd  float64  `json:"severity_log_std" yaml:"severity_log_std"`
	Deductible      float64  `json:"deductible" yaml:"deductible"`
	Limit           *float64 `json:"limit,omitempty" yaml:"limit,omitempty"`
}

// Config is the complete, immutable input of a simulation run.
type Config struct {
	NumYears         int          `json:"num_years" yaml:"num_years"`
	Seed             uint64       `json:"seed" yaml:"seed"`
	Lines            []LineConfig `json:"lines" yaml:"lines"`
	ConfidenceLevels []float64    `json:"confidence_levels" yaml:"confidence_levels"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. All failures wrap
// ErrInvalidConfig (or ErrInvalidConfidence for bad confidence levels) and
// are reported before any simulation work starts.
func (c *Config) Validate() error {
	if c.NumYears <= 0 {
		return fmt.Errorf("%w: num_years must be positive (got %d)", ErrInvalidConfig, c.NumYears)
	}
	if len(c.Lines) == 0 {
		return fmt.Errorf("%w: at least one line is required", ErrInvalidConfig)
	}
	for i, line := range c.Lines {
		if line.Name == "" {
			return fmt.Errorf("%w: lines[%d].name is required", ErrInvalidConfig, i)
		}
		if line.Frequency <= 0 {
			return fmt.Errorf("%w: lines[%d].frequency must be positive (got %v)", ErrInvalidConfig, i, line.Frequency)
		}
		if line.SeverityLogStd <= 0 {
			return fmt.Errorf("%w: lines[%d].severity_log_std must be positive (got %v)", ErrInvalidConfig, i, line.SeverityLogStd)
		}
		if line.Deductible < 0 {
			return fmt.Errorf("%w: lines[%d].deductible must not be negative (got %v)", ErrInvalidConfig, i, line.Deductible)
		}
		if line.Limit != nil && *line.Limit <= 0 {
			return fmt.Errorf("%w: lines[%d].limit must be positive when set (got %v)", ErrInvalidConfig, i, *line.Limit)
		}
	}
	for i, cl := range c.ConfidenceLevels {
		if cl <= 0 || cl >= 1 {
			return fmt.Errorf("%w: confidence_levels[%d] = %v", risk.ErrInvalidConfidence, i, cl)
		}
	}
	return nil
}

// Default returns the reference portfolio: three casualty/property lines,
// 10000 simulated years, a 1000 deductible and 500000 limit on every line.
func Default() *Config {
	limit := 500000.0
	return &Config{
		NumYears: 10000,
		Seed:     42,
		Lines: []LineConfig{
			{
				Name:            "Commercial Auto",
				Frequency:       2.5,
				SeverityLogMean: 9.0,
				SeverityLogStd:  1.2,
				Deductible:      1000,
				Limit:           &limit,
			},
			{
				Name:            "General Liability",
				Frequency:       1.0,
				SeverityLogMean: 10.5,
				SeverityLogStd:  1.8,
				Deductible:      1000,
				Limit:           &limit,
			},
			{
				Name:            "Property",
				Frequency:       0.8,
				SeverityLogMean: 12.0,
				SeverityLogStd:  2.0,
				Deductible:      1000,
				Limit:           &limit,
			},
		},
		ConfidenceLevels: []float64{0.95, 0.99},
	}
}
