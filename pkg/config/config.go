// Package config loads dalmcut's TOML configuration, modeled on the
// teacher's pkg/deps/python/poetry.go use of BurntSushi/toml's
// Unmarshal-from-bytes pattern.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
)

// Config is dalmcut's top-level configuration, matching SPEC_FULL.md §6.4's
// schema.
type Config struct {
	Patterns  PatternsConfig  `toml:"patterns"`
	Landmarks LandmarksConfig `toml:"landmarks"`
	Cache     CacheConfig     `toml:"cache"`
	Store     StoreConfig     `toml:"store"`
}

// PatternsConfig configures pattern.Systematic.
type PatternsConfig struct {
	MaxSize int `toml:"max_size"`
}

// LandmarksConfig toggles which cut-driver directions and justification
// graph behavior factory.AbstractionCutFactory applies.
type LandmarksConfig struct {
	BackwardLMs              bool `toml:"backward_lms"`
	ForwardLMs               bool `toml:"forward_lms"`
	JustificationGraph       bool `toml:"justification_graph"`
	SingleJustificationGraph bool `toml:"single_justification_graph"`
}

// CacheConfig configures pkg/cache's backend selection.
type CacheConfig struct {
	RedisAddr string `toml:"redis_addr"` // empty disables Redis, falls back to in-memory
}

// StoreConfig configures pkg/store's backend selection.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"` // empty disables history persistence
}

// Default returns the configuration the original's plugin defaults imply:
// systematic(2), backward landmarks and justification graphs on, forward
// landmarks and the single-justification-graph toggle off, caching and
// persistence disabled.
func Default() Config {
	return Config{
		Patterns:  PatternsConfig{MaxSize: 2},
		Landmarks: LandmarksConfig{BackwardLMs: true, JustificationGraph: true},
	}
}

// Load reads and parses a TOML configuration file, starting from Default()
// so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "config: reading file %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, dalmerrors.Wrap(dalmerrors.ErrCodeInvariantViolation, err, "config: parsing TOML from %s", path)
	}
	return cfg, nil
}
