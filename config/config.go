// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

// Package config loads solver and storage settings from an
// optional YAML file, with environment variables taking
// precedence for the connection URLs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stepdoku/stepdoku/puzzle"
)

// Defaults for a config with no file and no environment.  The
// connection defaults match a stock local Redis and Postgres.
const (
	DefaultRedisURL    = "redis://localhost:6379/0"
	DefaultDatabaseURL = "postgres://postgres@localhost/stepdoku?sslmode=disable"
)

// A Duration reads YAML strings like "250ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// A Config carries everything outside the puzzle itself that a
// run needs: which strategies to allow, how hard to speculate,
// pacing, and where to checkpoint and archive.
type Config struct {
	// Strategies lists enabled strategy names; empty means all.
	Strategies []string `yaml:"strategies"`
	// TrialCap bounds the moves of one speculative trial; zero
	// means the built-in default.
	TrialCap int `yaml:"trialCap"`
	// MoveDelay paces the solve loop for watchability.
	MoveDelay Duration `yaml:"moveDelay"`

	RedisURL    string `yaml:"redisURL"`
	DatabaseURL string `yaml:"databaseURL"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TrialCap:    puzzle.DefaultTrialCap,
		RedisURL:    DefaultRedisURL,
		DatabaseURL: DefaultDatabaseURL,
	}
}

// Load reads a YAML config file over the defaults and then
// applies the environment.  An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.applyEnvironment()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironment lets the deployment override the connection
// URLs, the way the hosting platforms inject them.
func (c *Config) applyEnvironment() {
	if url := os.Getenv("REDIS_URL"); url != "" {
		c.RedisURL = url
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
}

func (c *Config) validate() error {
	if c.TrialCap < 0 {
		return fmt.Errorf("trialCap %d is negative", c.TrialCap)
	}
	if c.MoveDelay < 0 {
		return fmt.Errorf("moveDelay %s is negative", c.MoveDelay)
	}
	for _, name := range c.Strategies {
		if _, ok := puzzle.ParseStrategy(name); !ok {
			return fmt.Errorf("unknown strategy %q", name)
		}
	}
	return nil
}

// StrategySet resolves the configured strategy names.  An empty
// list enables everything.
func (c *Config) StrategySet() puzzle.StrategySet {
	if len(c.Strategies) == 0 {
		return puzzle.AllStrategies
	}
	var ss puzzle.StrategySet
	for _, name := range c.Strategies {
		if s, ok := puzzle.ParseStrategy(name); ok {
			ss = ss.Add(s)
		}
	}
	return ss
}

// SolverOptions translates the config into solver construction
// options.
func (c *Config) SolverOptions() []puzzle.Option {
	opts := []puzzle.Option{puzzle.WithStrategies(c.StrategySet())}
	if c.TrialCap > 0 {
		opts = append(opts, puzzle.WithTrialCap(c.TrialCap))
	}
	return opts
}
