// Package gameplay runs the exploration rules: moving, opening doors,
// drafting rooms and deciding when a run ends.
package gameplay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"manor/pkg/engine/world"
	"manor/pkg/game/catalog"
	"manor/pkg/game/inventory"
	"manor/pkg/game/lock"
	"manor/pkg/game/messages"
	"manor/pkg/game/shop"
	"manor/pkg/game/state"
)

// Controller applies player intents to a run. It is not safe for
// concurrent use; intents are processed one at a time.
type Controller struct {
	game      *state.Game
	catalog   *catalog.Catalog
	src       catalog.Source
	draftSize int
	shop      []shop.Entry
	log       logrus.FieldLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for state transitions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// WithDraftSize sets how many rooms each door offers.
func WithDraftSize(k int) Option {
	return func(c *Controller) {
		if k > 0 {
			c.draftSize = k
		}
	}
}

// WithShopCatalog replaces the shop's price list.
func WithShopCatalog(entries []shop.Entry) Option {
	return func(c *Controller) { c.shop = entries }
}

// NewController creates a controller for g drafting from cat.
func NewController(g *state.Game, cat *catalog.Catalog, src catalog.Source, opts ...Option) *Controller {
	c := &Controller{
		game:      g,
		catalog:   cat,
		src:       src,
		draftSize: catalog.DefaultDraftSize,
		shop:      shop.DefaultCatalog,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Game returns the run being controlled
func (c *Controller) Game() *state.Game {
	return c.game
}

// ShopEntries returns the shop's price list
func (c *Controller) ShopEntries() []shop.Entry {
	return c.shop
}

func (c *Controller) say(key messages.Key, vars ...interface{}) {
	c.game.AddMessage(messages.Get(key, vars...))
}

func (c *Controller) requireStatus(want state.Status) error {
	g := c.game
	if g.Status.Ended() {
		return ErrRunEnded
	}
	if g.Status != want {
		return fmt.Errorf("%w: run is %s", ErrIllegalMove, g.Status)
	}
	return nil
}

// Move walks the player one cell in dir, opening and drafting when the
// target is undiscovered.
func (c *Controller) Move(dir world.Direction) error {
	if err := c.requireStatus(state.StatusIdle); err != nil {
		return err
	}
	if !dir.IsValid() {
		return fmt.Errorf("%w: direction %v", ErrIllegalMove, dir)
	}
	return c.moveInto(dir, dir.Step(c.game.Player))
}

// MoveTo walks the player to pos, which must be orthogonally adjacent.
func (c *Controller) MoveTo(pos world.Position) error {
	if err := c.requireStatus(state.StatusIdle); err != nil {
		return err
	}
	if !c.game.Player.IsAdjacent(pos) {
		return fmt.Errorf("%w: %s is not adjacent to %s", ErrIllegalMove, pos, c.game.Player)
	}
	dir, _ := world.DirectionBetween(c.game.Player, pos)
	return c.moveInto(dir, pos)
}

func (c *Controller) moveInto(dir world.Direction, target world.Position) error {
	g := c.game
	if !g.Estate.InBounds(target) {
		return fmt.Errorf("%w: %w", ErrIllegalMove, world.ErrOutOfBounds)
	}
	if room, ok := g.Estate.RoomAt(target); ok {
		if err := g.Ledger.Spend(inventory.Steps, 1); err != nil {
			return fmt.Errorf("move %s: %w", dir, err)
		}
		g.Player = target
		c.say(messages.MovedTo, room.Name, g.Ledger.Count(inventory.Steps))
		c.enter(room)
		c.evaluateEnd()
		return nil
	}
	return c.openDoor(dir, target)
}

func (c *Controller) openDoor(dir world.Direction, target world.Position) error {
	g := c.game
	current, _ := g.CurrentRoom()
	door := current.Door(dir)
	if door == nil {
		return fmt.Errorf("%w: %s", ErrNoDoor, dir)
	}

	outcome := lock.ResolveDoor(door, g.Ledger)
	if !outcome.Openable {
		return &LockedError{Direction: dir, Outcome: outcome}
	}

	options, err := c.catalog.Draft(c.draftSize, c.src)
	if err != nil {
		return err
	}
	if err := lock.Apply(outcome, door, g.Ledger); err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	c.say(outcome.Reason)
	c.log.WithFields(logrus.Fields{
		"direction": dir.String(),
		"target":    target.String(),
		"method":    outcome.Method.String(),
		"keys":      outcome.KeyCost,
	}).Info("door opened")

	c.offer(&state.Draft{Target: target, Direction: dir, Options: options})
	return nil
}

func (c *Controller) offer(d *state.Draft) {
	g := c.game
	for _, room := range d.Options {
		c.applyEffects(room.OnDraw)
	}
	g.Pending = d
	g.Status = state.StatusAwaitingDraft

	names := make([]string, len(d.Options))
	for i, r := range d.Options {
		names[i] = r.Name
	}
	c.log.WithFields(logrus.Fields{
		"target":  d.Target.String(),
		"options": names,
	}).Info("draft offered")
	c.say(messages.ChooseRoom, len(d.Options))
}

// Choose places the pending draft's option at index (zero-based).
func (c *Controller) Choose(index int) error {
	if err := c.requireStatus(state.StatusAwaitingDraft); err != nil {
		return err
	}
	g := c.game
	d := g.Pending
	if index < 0 || index >= len(d.Options) {
		return fmt.Errorf("%w: option %d of %d", ErrIllegalMove, index+1, len(d.Options))
	}
	room := d.Options[index]

	if !g.Ledger.Has(inventory.Steps, 1) {
		return fmt.Errorf("choose %s: steps: %w", room.Name, inventory.ErrInsufficientResource)
	}
	if err := g.Ledger.Spend(inventory.Gems, room.GemCost); err != nil {
		return fmt.Errorf("choose %s: gems: %w", room.Name, err)
	}
	if err := g.Estate.Place(d.Target, room); err != nil {
		if rbErr := g.Ledger.Add(inventory.Gems, room.GemCost); rbErr != nil {
			return fmt.Errorf("choose %s: gem refund failed: %w", room.Name, errors.Join(err, rbErr))
		}
		return fmt.Errorf("choose %s: %w", room.Name, err)
	}
	room.EnsureDoor(d.Direction.Opposite()).Open()
	g.Ledger.Consume(inventory.Steps, 1)

	g.Player = d.Target
	g.Pending = nil
	g.Status = state.StatusIdle
	c.say(messages.RoomPlaced, room.Name, d.Target)
	c.log.WithFields(logrus.Fields{
		"room":     room.Name,
		"position": d.Target.String(),
		"gems":     room.GemCost,
	}).Info("room placed")

	c.enter(room)
	c.evaluateEnd()
	return nil
}

// Cancel drops the pending draft. Nothing is refunded and the opened door
// stays open.
func (c *Controller) Cancel() error {
	if err := c.requireStatus(state.StatusAwaitingDraft); err != nil {
		return err
	}
	c.game.Pending = nil
	c.game.Status = state.StatusIdle
	c.say(messages.DraftCancelled)
	c.log.Debug("draft cancelled")
	return nil
}

// Reroll spends one die to replace the pending options with a new draft.
func (c *Controller) Reroll() error {
	if err := c.requireStatus(state.StatusAwaitingDraft); err != nil {
		return err
	}
	g := c.game
	if !g.Ledger.Has(inventory.Dice, 1) {
		return fmt.Errorf("reroll: dice: %w", inventory.ErrInsufficientResource)
	}
	options, err := c.catalog.Draft(c.draftSize, c.src)
	if err != nil {
		return err
	}
	g.Ledger.Consume(inventory.Dice, 1)
	c.say(messages.DraftRerolled)
	c.offer(&state.Draft{Target: g.Pending.Target, Direction: g.Pending.Direction, Options: options})
	return nil
}

// Buy purchases a named shop entry while standing in a shop room.
func (c *Controller) Buy(name string) error {
	if err := c.requireStatus(state.StatusIdle); err != nil {
		return err
	}
	g := c.game
	room, ok := g.CurrentRoom()
	if !ok || !room.Shop {
		return ErrNotInShop
	}
	entry, err := shop.Lookup(c.shop, name)
	if err != nil {
		return err
	}
	if err := shop.Purchase(g.Ledger, entry); err != nil {
		return err
	}
	c.say(messages.Purchased, entry.Name, entry.Price)
	c.log.WithFields(logrus.Fields{"item": entry.Name, "price": entry.Price}).Info("purchase")
	return nil
}

// evaluateEnd checks the win condition before the loss condition.
func (c *Controller) evaluateEnd() {
	g := c.game
	switch {
	case g.Player == g.Estate.Exit():
		g.Status = state.StatusWon
		c.say(messages.RunWon)
	case g.Ledger.IsExhausted():
		g.Status = state.StatusLost
		c.say(messages.RunLost)
	default:
		return
	}
	c.log.WithFields(logrus.Fields{
		"status":   g.Status.String(),
		"position": g.Player.String(),
		"rooms":    g.Estate.Discovered(),
	}).Info("run ended")
}
