package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sumcalc/internal/calc"
	"github.com/san-kum/sumcalc/internal/input"
)

const (
	DefaultLang     = "ru"
	DefaultLogLevel = "warn"
	DefaultFloatMin = input.DefaultFloatMin
	DefaultFloatMax = input.DefaultFloatMax
)

// Environment variables read by ApplyEnv.
const (
	EnvLang     = "SUMCALC_LANG"
	EnvPlain    = "SUMCALC_PLAIN"
	EnvLogLevel = "SUMCALC_LOG_LEVEL"
)

// Config holds the session settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Lang     string  `yaml:"lang"`
	Plain    bool    `yaml:"plain"`
	LogLevel string  `yaml:"log_level"`
	FloatMin float64 `yaml:"float_min"`
	FloatMax float64 `yaml:"float_max"`
}

// DefaultConfig reproduces the original program: Russian text, colours on,
// float bounds of ±2147483647.
func DefaultConfig() *Config {
	return &Config{
		Lang:     DefaultLang,
		LogLevel: DefaultLogLevel,
		FloatMin: DefaultFloatMin,
		FloatMax: DefaultFloatMax,
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLang); ok && v != "" {
		c.Lang = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPlain); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPlain, err)
		}
		c.Plain = b
	}
	return nil
}

// Validate checks that the float bounds are finite, ordered and small
// enough for the sum of three values to round into an integer.
func (c *Config) Validate() error {
	for _, b := range []struct {
		name string
		v    float64
	}{{"float_min", c.FloatMin}, {"float_max", c.FloatMax}} {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return fmt.Errorf("%s must be finite, got %g", b.name, b.v)
		}
		if math.Abs(b.v) > calc.MaxMagnitude {
			return fmt.Errorf("%s (%g) exceeds ±%g", b.name, b.v, float64(calc.MaxMagnitude))
		}
	}
	if c.FloatMin >= c.FloatMax {
		return fmt.Errorf("float_min (%g) must be less than float_max (%g)", c.FloatMin, c.FloatMax)
	}
	return nil
}
