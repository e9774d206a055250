// Package config loads the settings of the decimal calculator.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/decimalnumbers/decimal"
)

// Config holds the calculator settings.
type Config struct {
	// MaxPrec bounds the number of coefficient digits of every result.
	// Zero means no limit.
	MaxPrec   int                  `yaml:"max_prec"`
	Scale     int                  `yaml:"scale"`
	Rounding  decimal.RoundingMode `yaml:"rounding"`
	TrimSpace bool                 `yaml:"trim_space"`
	Log       LogConfig            `yaml:"log"`
}

// LogConfig holds the logging settings of the calculator.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Scale:     18,
		Rounding:  decimal.HalfEven,
		TrimSpace: true,
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file.
// Keys missing from the file keep their [Default] values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %v: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are in range.
func (c *Config) Validate() error {
	if c.MaxPrec < 0 {
		return fmt.Errorf("max_prec %v is negative", c.MaxPrec)
	}
	if c.Scale < 0 || c.Scale > decimal.MaxExponent {
		return fmt.Errorf("scale %v is out of range [0, %v]", c.Scale, decimal.MaxExponent)
	}
	if _, err := c.Rounding.MarshalText(); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Context returns the decimal context described by the settings.
func (c *Config) Context() decimal.Context {
	return decimal.Context{
		MaxPrec:   c.MaxPrec,
		TrimSpace: c.TrimSpace,
	}
}
