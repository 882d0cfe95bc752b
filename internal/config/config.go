package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mc-option-pricer/internal/logging"
	"mc-option-pricer/internal/model"
	"mc-option-pricer/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load simulation parameters from a separate YAML (e.g. examples/params/*.yaml).
	// Keys set inline under params override the file.
	ParamsFile string           `yaml:"params_file"`
	Params     ParamsConfig     `yaml:"params"`
	Seed       int64            `yaml:"seed"`
	Strategies []StrategyConfig `yaml:"strategies"`
	Logging    logging.Config   `yaml:"logging"`
}

type ParamsConfig struct {
	InitialPrice float64 `yaml:"initial_price"`
	Strike       float64 `yaml:"strike"`
	Maturity     float64 `yaml:"maturity"`
	Rate         float64 `yaml:"rate"`
	Volatility   float64 `yaml:"volatility"`
	Steps        int     `yaml:"steps"`
	Paths        int     `yaml:"paths"`
	OptionType   string  `yaml:"option_type"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// Default is the classroom example: S0=100, K=105, T=1, r=5%, σ=20%,
// 50 steps, 100k paths, seed 42, scalar vs vectorized.
func Default() *Config {
	return &Config{
		Params: ParamsConfig{
			InitialPrice: 100,
			Strike:       105,
			Maturity:     1,
			Rate:         0.05,
			Volatility:   0.2,
			Steps:        50,
			Paths:        100_000,
			OptionType:   string(model.OptionCall),
		},
		Seed: 42,
		Strategies: []StrategyConfig{
			{Name: "scalar"},
			{Name: "vectorized"},
		},
		Logging: logging.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked layers Default(), then params_file, then the config file
// itself, without validating the result. Keys absent from a layer keep the
// value from the layer below, so explicit zeros (e.g. volatility: 0) are kept.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		ParamsFile string `yaml:"params_file"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c := Default()
	if probe.ParamsFile != "" {
		paramsPath := probe.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		if err := loadParamsFile(paramsPath, &c.Params); err != nil {
			return nil, err
		}
	}

	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Params.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	if len(c.Strategies) == 0 {
		return errors.New("at least one strategy is required")
	}
	for i, s := range c.Strategies {
		if s.Name == "" {
			return fmt.Errorf("strategies[%d].name is required", i)
		}
		if _, err := strategy.New(s.Name, s.Params); err != nil {
			return fmt.Errorf("strategies[%d]: %w", i, err)
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func (p ParamsConfig) ToModelParams() model.SimulationParams {
	return model.SimulationParams{
		InitialPrice: p.InitialPrice,
		Strike:       p.Strike,
		Maturity:     p.Maturity,
		Rate:         p.Rate,
		Volatility:   p.Volatility,
		Steps:        p.Steps,
		Paths:        p.Paths,
		Type:         model.OptionType(strings.ToUpper(strings.TrimSpace(p.OptionType))),
	}
}

func (c *Config) Inputs() model.Inputs {
	return model.Inputs{Params: c.Params.ToModelParams(), Seed: c.Seed}
}

// BuildStrategies instantiates the configured strategies in order.
func (c *Config) BuildStrategies() ([]strategy.Strategy, error) {
	out := make([]strategy.Strategy, 0, len(c.Strategies))
	for _, sc := range c.Strategies {
		s, err := strategy.New(sc.Name, sc.Params)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// StrategyParams returns the configured params for name, or nil.
func (c *Config) StrategyParams(name string) map[string]any {
	for _, sc := range c.Strategies {
		if sc.Name == name {
			return sc.Params
		}
	}
	return nil
}

type paramsFileWrapper struct {
	Params *ParamsConfig `yaml:"params"`
}

func loadParamsFile(path string, dst *ParamsConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("params_file: %w", err)
	}
	w := paramsFileWrapper{Params: dst}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return fmt.Errorf("params_file %s: %w", path, err)
	}
	return nil
}
