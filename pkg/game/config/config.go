// Package config loads run settings from the environment and command line.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"manor/pkg/game/inventory"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls a single run.
type Config struct {
	Seed      int64  `env:"MANOR_SEED"`
	Rows      int    `env:"MANOR_ROWS"       envDefault:"5"`
	Cols      int    `env:"MANOR_COLS"       envDefault:"9"`
	DraftSize int    `env:"MANOR_DRAFT_SIZE" envDefault:"3"`
	Catalog   string `env:"MANOR_CATALOG"`
	LogLevel  string `env:"MANOR_LOG_LEVEL"  envDefault:"warning"`

	StartingSteps int `env:"MANOR_STARTING_STEPS" envDefault:"70"`
	StartingCoins int `env:"MANOR_STARTING_COINS" envDefault:"0"`
	StartingGems  int `env:"MANOR_STARTING_GEMS"  envDefault:"2"`
	StartingKeys  int `env:"MANOR_STARTING_KEYS"  envDefault:"0"`
	StartingDice  int `env:"MANOR_STARTING_DICE"  envDefault:"0"`
}

// Load reads the configuration from MANOR_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers command-line flags that override the loaded values.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "estate rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "estate columns")
	fs.IntVar(&c.DraftSize, "draft", c.DraftSize, "rooms offered per door")
	fs.StringVar(&c.Catalog, "catalog", c.Catalog, "room catalog YAML (default: built-in)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warning, error)")
	fs.IntVar(&c.StartingSteps, "steps", c.StartingSteps, "starting steps")
	fs.IntVar(&c.StartingGems, "gems", c.StartingGems, "starting gems")
	fs.IntVar(&c.StartingCoins, "coins", c.StartingCoins, "starting coins")
	fs.IntVar(&c.StartingKeys, "keys", c.StartingKeys, "starting keys")
	fs.IntVar(&c.StartingDice, "dice", c.StartingDice, "starting dice")
}

// Validate checks the values are usable for a run.
func (c Config) Validate() error {
	if c.Rows < 2 || c.Cols < 1 {
		return fmt.Errorf("%w: estate %dx%d needs at least 2 rows", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.DraftSize < 1 {
		return fmt.Errorf("%w: draft size %d", ErrInvalidConfig, c.DraftSize)
	}
	if c.StartingSteps < 1 {
		return fmt.Errorf("%w: starting steps %d", ErrInvalidConfig, c.StartingSteps)
	}
	for name, n := range map[string]int{
		"coins": c.StartingCoins,
		"gems":  c.StartingGems,
		"keys":  c.StartingKeys,
		"dice":  c.StartingDice,
	} {
		if n < 0 {
			return fmt.Errorf("%w: starting %s %d", ErrInvalidConfig, name, n)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Starting returns the ledger's opening quantities
func (c Config) Starting() inventory.Starting {
	return inventory.Starting{
		Steps: c.StartingSteps,
		Coins: c.StartingCoins,
		Gems:  c.StartingGems,
		Keys:  c.StartingKeys,
		Dice:  c.StartingDice,
	}
}

// Level returns the parsed log level, falling back to warning.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}
