// Package config loads flightseed settings from a YAML file, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tordrt/flightseed/internal/registry"
)

// Environment variables read by Load
const (
	EnvDatabaseURL = "FLIGHTSEED_DATABASE_URL"
	EnvSeed        = "FLIGHTSEED_SEED"
	EnvSampleSize  = "FLIGHTSEED_SAMPLE_SIZE"
)

// DefaultSampleSize is how many flights verification lists
const DefaultSampleSize = 5

// Route is an origin and destination pair reported after seeding
type Route struct {
	Source      string `yaml:"source" validate:"required"`
	Destination string `yaml:"destination" validate:"required,nefield=Source"`
}

// Config holds all settings for a run
type Config struct {
	DatabaseURL string  `yaml:"database_url"`
	Seed        *uint64 `yaml:"seed"`
	SampleSize  int     `yaml:"sample_size" validate:"gte=0,lte=1000"`
	Routes      []Route `yaml:"routes" validate:"dive"`
	Format      string  `yaml:"format" validate:"omitempty,oneof=text markdown"`
	// Network replaces the built-in airport and airline tables
	Network *registry.Tables `yaml:"network"`
}

// DefaultRoutes are the routes the original dataset was checked against
func DefaultRoutes() []Route {
	return []Route{
		{Source: "AMD", Destination: "BLR"},
		{Source: "AMD", Destination: "BOM"},
		{Source: "BOM", Destination: "BLR"},
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SampleSize: DefaultSampleSize,
		Routes:     DefaultRoutes(),
		Format:     "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty) and then the environment. A .env file in the working directory is
// loaded first if present; it never overrides variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv(EnvSampleSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSampleSize, err)
		}
		c.SampleSize = n
	}
	return nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Registry returns the configured reference tables, or the built-in ones
func (c *Config) Registry() (*registry.Registry, error) {
	if c.Network == nil {
		return registry.Default(), nil
	}
	return registry.New(*c.Network)
}

// ParseRoutes parses a comma-separated list like "AMD-BLR,BOM-BLR"
func ParseRoutes(s string) ([]Route, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var routes []Route
	for _, part := range strings.Split(s, ",") {
		src, dst, ok := strings.Cut(strings.TrimSpace(part), "-")
		src, dst = strings.ToUpper(strings.TrimSpace(src)), strings.ToUpper(strings.TrimSpace(dst))
		if !ok || src == "" || dst == "" || src == dst {
			return nil, fmt.Errorf("invalid route %q (want SRC-DST)", part)
		}
		routes = append(routes, Route{Source: src, Destination: dst})
	}
	return routes, nil
}
