package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"manor/pkg/game/catalog"
	"manor/pkg/game/config"
	"manor/pkg/game/inventory"
	"manor/pkg/game/messages"
	"manor/pkg/game/state"
	gameworld "manor/pkg/game/world"
)

// LoadCatalog returns the configured room catalog, or the built-in one.
func LoadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default()
	}
	return catalog.Load(cfg.Catalog)
}

// BuildGame creates a fresh run: a ledger with the starting quantities and
// an estate holding only the entrance room.
func BuildGame(cfg config.Config, cat *catalog.Catalog) (*state.Game, error) {
	ledger, err := inventory.NewLedger(cfg.Starting())
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}
	estate, err := gameworld.NewEstate(cfg.Rows, cfg.Cols, cat.Entrance())
	if err != nil {
		return nil, fmt.Errorf("estate: %w", err)
	}
	return state.NewGame(ledger, estate), nil
}

// NewRun wires a controller for a new run from cfg. A zero seed is
// replaced by one taken from the clock.
func NewRun(cfg config.Config, log logrus.FieldLogger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	g, err := BuildGame(cfg, cat)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"seed":  seed,
		"rooms": cat.Len(),
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
	}).Info("run started")

	c := NewController(g, cat, rand.New(rand.NewSource(seed)),
		WithLogger(log),
		WithDraftSize(cfg.DraftSize),
	)
	c.say(messages.Welcome)
	return c, nil
}
