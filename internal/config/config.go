// Package config loads the runtime configuration: server settings plus the
// accounting policy knobs whose values are regulatory judgment rather than
// physics (residual-mix discount, DQI weights and rating bands). Values come
// from an optional YAML file with CARBONSCOPE_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/carbonscope/carbonscope/internal/dqi"
	"github.com/carbonscope/carbonscope/internal/engine"
)

// Environment variable names recognized as overrides.
const (
	EnvLogLevel         = "CARBONSCOPE_LOG_LEVEL"
	EnvListen           = "CARBONSCOPE_LISTEN"
	EnvResidualDiscount = "CARBONSCOPE_RESIDUAL_MIX_DISCOUNT"
)

// Config is the full runtime configuration.
type Config struct {
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Listen is the HTTP listen address of the serve command.
	Listen string `yaml:"listen"`

	Policy PolicyConfig `yaml:"policy"`
}

// PolicyConfig overrides the engine's accounting policy. Nil fields keep
// the built-in defaults.
type PolicyConfig struct {
	ResidualMixDiscount *float64        `yaml:"residual_mix_discount"`
	DQIWeights          *dqi.Weights    `yaml:"dqi_weights"`
	DQIThresholds       *dqi.Thresholds `yaml:"dqi_thresholds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Listen:   ":8080",
	}
}

// Load reads the configuration file at path (empty means defaults only) and
// applies environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(EnvResidualDiscount); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvResidualDiscount, v, err)
		}
		c.Policy.ResidualMixDiscount = &parsed
	}
	return nil
}

func (c *Config) validate() error {
	if d := c.Policy.ResidualMixDiscount; d != nil && (*d <= 0 || *d > 1) {
		return fmt.Errorf("residual_mix_discount must be in (0,1], got %v", *d)
	}
	if t := c.Policy.DQIThresholds; t != nil && !t.Valid() {
		return fmt.Errorf("dqi_thresholds must be strictly increasing inside (1,5)")
	}
	return nil
}

// EnginePolicy materializes the engine policy, filling unset fields with
// the engine defaults.
func (c Config) EnginePolicy() engine.Policy {
	policy := engine.DefaultPolicy()
	if c.Policy.ResidualMixDiscount != nil {
		policy.ResidualMixDiscount = *c.Policy.ResidualMixDiscount
	}
	if c.Policy.DQIWeights != nil {
		policy.DQIWeights = *c.Policy.DQIWeights
	}
	if c.Policy.DQIThresholds != nil {
		policy.DQIThresholds = *c.Policy.DQIThresholds
	}
	return policy
}
