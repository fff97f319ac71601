// Package config loads and validates the co2calc configuration file and
// owns the global logger it configures.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
)

// DefaultConfigVersion is the config schema version written by Default.
const DefaultConfigVersion = "1.0.0"

// SupportedConfigMajor is the config schema major version this build reads.
const SupportedConfigMajor = 1

// Config is the root configuration structure.
type Config struct {
	// Version is the config schema version, semver.
	Version string `yaml:"version"`

	// Factors overrides emission factors by mode name, kg CO2 per km.
	// Modes not listed keep their defaults.
	Factors map[string]float64 `yaml:"factors,omitempty"`

	Credits CreditsConfig `yaml:"credits"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CreditsConfig sets the carbon-credit conversion and price band.
type CreditsConfig struct {
	KgPerCredit float64 `yaml:"kg_per_credit"`
	PriceMinUSD float64 `yaml:"price_min_usd"`
	PriceMaxUSD float64 `yaml:"price_max_usd"`
}

// OutputConfig sets rendering defaults for the CLI.
type OutputConfig struct {
	// DefaultFormat is used when --output is not given: table, json or
	// ndjson.
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig sets the global logger's behavior.
type LoggingConfig struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`

	// File, when set, duplicates log output to this path.
	File string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: DefaultConfigVersion,
		Credits: CreditsConfig{
			KgPerCredit: emissions.KgPerCredit,
			PriceMinUSD: emissions.DefaultCreditPriceMinUSD,
			PriceMaxUSD: emissions.DefaultCreditPriceMaxUSD,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the default config file location,
// $HOME/.co2calc/config.yaml. It returns "" when the home directory
// cannot be determined, which Load treats as "no config file".
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".co2calc", "config.yaml")
}

// Load reads the config file at path, merges it over the defaults,
// applies environment overrides and validates the result. A missing file
// is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file, defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies CO2CALC_* environment variables on top of the
// file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CO2CALC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CO2CALC_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("CO2CALC_OUTPUT_FORMAT"); v != "" {
		cfg.Output.DefaultFormat = v
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	ver, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("version %q is not valid semver: %w", c.Version, err)
	}
	if ver.Major() != SupportedConfigMajor {
		return fmt.Errorf("config version %s is not supported (want major %d)", c.Version, SupportedConfigMajor)
	}

	for name, factor := range c.Factors {
		if _, err := emissions.ParseMode(name); err != nil {
			return fmt.Errorf("factors: %w", err)
		}
		if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
			return fmt.Errorf("factors: %s must be a non-negative number, got %v", name, factor)
		}
	}

	if c.Credits.KgPerCredit <= 0 {
		return fmt.Errorf("credits: kg_per_credit must be positive, got %v", c.Credits.KgPerCredit)
	}
	if c.Credits.PriceMinUSD < 0 || c.Credits.PriceMaxUSD < c.Credits.PriceMinUSD {
		return fmt.Errorf("credits: price band [%v, %v] is not a valid range",
			c.Credits.PriceMinUSD, c.Credits.PriceMaxUSD)
	}

	switch c.Output.DefaultFormat {
	case "table", "json", "ndjson":
	default:
		return fmt.Errorf("output: unknown default_format %q", c.Output.DefaultFormat)
	}

	return nil
}

// FactorTable builds the emission factor table: the defaults overlaid
// with this config's overrides. Mode names are case-insensitive.
func (c Config) FactorTable() emissions.FactorTable {
	factors := emissions.DefaultFactors()
	for name, factor := range c.Factors {
		mode, err := emissions.ParseMode(name)
		if err != nil {
			// Validate rejects unknown modes before this point.
			continue
		}
		factors[mode] = factor
	}
	return factors
}

// CreditPricing builds the engine pricing from this config.
func (c Config) CreditPricing() emissions.CreditPricing {
	return emissions.CreditPricing{
		KgPerCredit: c.Credits.KgPerCredit,
		MinUSD:      c.Credits.PriceMinUSD,
		MaxUSD:      c.Credits.PriceMaxUSD,
	}
}

// Global configuration, set once by the CLI during startup.
//
//nolint:gochecknoglobals // Process-wide effective configuration
var (
	globalMu  sync.RWMutex
	globalCfg Config
	globalSet bool
)

// Global returns the process-wide configuration, falling back to the
// defaults when SetGlobal has not been called.
func Global() Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if !globalSet {
		return Default()
	}
	return globalCfg
}

// SetGlobal installs the process-wide configuration.
func SetGlobal(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
	globalSet = true
}
