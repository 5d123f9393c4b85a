// internal/config/config.go
//
// Runtime configuration for the solver.
//
// Sources, later ones winning:
//  1. Built-in defaults (classic 4 pegs x 8 colors).
//  2. A YAML file named by MASTERMIND_CONFIG, if set.
//  3. Variables from a .env file (missing file is fine).
//  4. Process environment.
//
// Environment variables:
//
//	PEGS, COLORS        game dimensions
//	WORKERS             goroutines for guess search (0 = one per CPU)
//	MAX_TURNS           turns before a game counts as lost
//	SEED                random secret seed (0 = time based)
//	SECRET              fixed secret, hex digits, e.g. 1234
//	DAILY_SALT          enables the daily secret
//	MEMO_LIMIT          max memoized boards (0 = unbounded)
//	LOG_LEVEL           zerolog level name
//	LOG_FORMAT          json | console
//	COLOR               colored pegs in output (true/false)
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/mastermind/internal/peg"
)

// MaxUniverse bounds Colors^Pegs; the greedy search is quadratic in it.
const MaxUniverse = 1 << 16

var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the CLI.
type Config struct {
	Pegs      int    `yaml:"pegs"`
	Colors    int    `yaml:"colors"`
	Workers   int    `yaml:"workers"`
	MaxTurns  int    `yaml:"max_turns"`
	Seed      int64  `yaml:"seed"`
	Secret    string `yaml:"secret"`
	DailySalt string `yaml:"daily_salt"`
	MemoLimit int    `yaml:"memo_limit"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Color     bool   `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pegs:      peg.Classic.Pegs,
		Colors:    peg.Classic.Colors,
		Workers:   runtime.NumCPU(),
		MaxTurns:  10,
		LogLevel:  "info",
		LogFormat: "json",
		Color:     true,
	}
}

// Load builds a Config from defaults, the optional YAML file, .env files and
// the environment. With no envFiles, ./.env is used if present.
func Load(envFiles ...string) (Config, error) {
	dotenv, err := godotenv.Read(envFiles...)
	if err != nil {
		if len(envFiles) > 0 {
			return Config{}, fmt.Errorf("read env files: %w", err)
		}
		dotenv = map[string]string{}
	}
	lookup := func(k string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return dotenv[k]
	}

	cfg := Default()
	if path := lookup("MASTERMIND_CONFIG"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"PEGS", &c.Pegs},
		{"COLORS", &c.Colors},
		{"WORKERS", &c.Workers},
		{"MAX_TURNS", &c.MaxTurns},
		{"MEMO_LIMIT", &c.MemoLimit},
	}
	for _, f := range ints {
		if v := lookup(f.key); v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, f.key, v)
			}
			*f.dst = n
		}
	}
	if v := lookup("SEED"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SEED=%q is not a number", ErrInvalidConfig, v)
		}
		c.Seed = n
	}
	if v := lookup("COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: COLOR=%q is not a bool", ErrInvalidConfig, v)
		}
		c.Color = b
	}
	if v := lookup("SECRET"); v != "" {
		c.Secret = v
	}
	if v := lookup("DAILY_SALT"); v != "" {
		c.DailySalt = v
	}
	if v := lookup("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := lookup("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Dims returns the configured game dimensions.
func (c Config) Dims() peg.Dims { return peg.Dims{Pegs: c.Pegs, Colors: c.Colors} }

// Validate checks ranges and parses the fields that have a syntax.
func (c Config) Validate() error {
	d := c.Dims()
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if d.Size() > MaxUniverse {
		return fmt.Errorf("%w: %s has %d codes, limit is %d", ErrInvalidConfig, d, d.Size(), MaxUniverse)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.MemoLimit < 0 {
		return fmt.Errorf("%w: memo limit must not be negative", ErrInvalidConfig)
	}
	if c.Secret != "" {
		if _, err := peg.Parse(d, c.Secret); err != nil {
			return fmt.Errorf("%w: secret: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format must be json or console, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
