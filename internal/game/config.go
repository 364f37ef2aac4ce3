package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `toml:"seed"`

	// MaxDepth is the deepest layer of regular rooms.
	MaxDepth int `toml:"max_depth"`

	// OddsPower shapes how quickly branching dies out with depth.
	// Values below 1 give bushier dungeons, values above 1 sparser ones.
	OddsPower float64 `toml:"odds_power"`

	// StartStage is the first stage generated.
	StartStage int `toml:"start_stage"`

	// DataDir optionally replaces the embedded catalog with entities.json
	// and stages.json from a directory.
	DataDir string `toml:"data_dir"`
}

// Environment variables that override file settings.
const (
	EnvSeed       = "ROOMCRAWL_SEED"
	EnvMaxDepth   = "ROOMCRAWL_MAX_DEPTH"
	EnvOddsPower  = "ROOMCRAWL_ODDS_POWER"
	EnvStartStage = "ROOMCRAWL_START_STAGE"
	EnvDataDir    = "ROOMCRAWL_DATA_DIR"
)

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  world.DefaultMaxDepth,
		OddsPower: world.DefaultOddsPower,
	}
}

// LoadConfig reads settings from a TOML file (skipped when path is empty),
// then applies ROOMCRAWL_* environment overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvMaxDepth); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDepth, err)
		}
		c.MaxDepth = depth
	}
	if v := os.Getenv(EnvOddsPower); v != "" {
		power, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOddsPower, err)
		}
		c.OddsPower = power
	}
	if v := os.Getenv(EnvStartStage); v != "" {
		stage, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStartStage, err)
		}
		c.StartStage = stage
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	return nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.StartStage < 0 {
		return fmt.Errorf("start stage %d: %w", c.StartStage, world.ErrInvalidConfig)
	}
	return c.GenConfig(world.DefaultFixtures()).Validate()
}

// GenConfig returns the generation settings using fixtures for doors and keys.
func (c Config) GenConfig(fixtures world.Fixtures) world.GenConfig {
	return world.GenConfig{
		MaxDepth:  c.MaxDepth,
		OddsPower: c.OddsPower,
		Fixtures:  fixtures,
	}
}

// NewRand returns a random source for the configured seed.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
