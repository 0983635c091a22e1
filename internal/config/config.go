// Package config resolves runtime settings from an optional .env file,
// KEYSTONE_* environment variables and an optional YAML limits file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"Keystone/internal/tables"
)

const (
	EnvLogLevel          = "KEYSTONE_LOG_LEVEL"
	EnvStandard          = "KEYSTONE_STANDARD"
	EnvDeflectionDivisor = "KEYSTONE_DEFLECTION_DIVISOR"
	EnvLimitsFile        = "KEYSTONE_LIMITS_FILE"
)

type Config struct {
	LogLevel   string
	LimitsFile string
	Limits     tables.Limits
}

// Load reads envFile (skipped when empty or missing) into the process
// environment without overriding variables already set, then resolves the
// limit set: the standard preset, overlaid by the limits file, overlaid by an
// explicit deflection divisor.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Config{
		LogLevel:   os.Getenv(EnvLogLevel),
		LimitsFile: os.Getenv(EnvLimitsFile),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	std := os.Getenv(EnvStandard)
	limits, ok := tables.ForStandard(std)
	if !ok {
		return Config{}, fmt.Errorf("%s: unknown standard %q", EnvStandard, std)
	}

	if cfg.LimitsFile != "" {
		fromFile, err := LoadLimits(cfg.LimitsFile)
		if err != nil {
			return Config{}, err
		}
		limits = limits.Merge(fromFile)
	}

	if v := os.Getenv(EnvDeflectionDivisor); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%s: %q is not a positive number", EnvDeflectionDivisor, v)
		}
		limits.DeflectionDivisor = d
	}

	cfg.Limits = limits
	return cfg, nil
}

// LoadLimits reads a YAML limits file. Fields left out stay zero so the
// result can be merged over a preset. A missing file yields empty limits.
func LoadLimits(path string) (tables.Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tables.Limits{}, nil
		}
		return tables.Limits{}, err
	}

	var l tables.Limits
	if err := yaml.Unmarshal(data, &l); err != nil {
		return tables.Limits{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if l.Standard != "" {
		if _, ok := tables.ForStandard(l.Standard); !ok {
			return tables.Limits{}, fmt.Errorf("invalid %s: unknown standard %q", path, l.Standard)
		}
	}
	return l, nil
}
