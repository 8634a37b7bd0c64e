package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/dynsets/internal/catalog"
	"github.com/san-kum/dynsets/internal/uncertainty"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem  = string(catalog.ChainOfIntegrators)
	DefaultMode    = string(uncertainty.Standard)
	DefaultHorizon = 10
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config selects one catalog fixture and the horizon its noise set is
// lifted over.
type Config struct {
	System  string    `yaml:"system"`
	Mode    string    `yaml:"mode"`
	Seed    int64     `yaml:"seed"`
	Horizon int       `yaml:"horizon"`
	Params  []float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		System:  DefaultSystem,
		Mode:    DefaultMode,
		Horizon: DefaultHorizon,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration against the default catalog.
func (c *Config) Validate() error {
	if !catalog.Default().Has(catalog.ID(c.System)) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, catalog.ErrUnknownSystem, c.System)
	}
	if _, err := uncertainty.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("%w: horizon %d is negative", ErrInvalidConfig, c.Horizon)
	}
	return nil
}

// LoadOptions translates the configuration into catalog load options.
func (c *Config) LoadOptions() []catalog.Option {
	opts := []catalog.Option{
		catalog.WithMode(uncertainty.Mode(c.Mode)),
		catalog.WithSeed(c.Seed),
	}
	if c.Params != nil {
		opts = append(opts, catalog.WithParams(c.Params))
	}
	return opts
}
