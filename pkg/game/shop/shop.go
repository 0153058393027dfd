// Package shop sells resources for coins.
package shop

import (
	"errors"
	"fmt"
	"strings"

	"manor/pkg/game/inventory"
)

// ErrUnknownItem is returned when an item is not on sale.
var ErrUnknownItem = errors.New("unknown shop item")

// Entry is one line of the shop's price list.
type Entry struct {
	Name     string
	Price    int
	Resource inventory.Resource
	Quantity int
}

// DefaultCatalog is the standard price list.
var DefaultCatalog = []Entry{
	{Name: "key", Price: 10, Resource: inventory.Keys, Quantity: 1},
	{Name: "gem", Price: 25, Resource: inventory.Gems, Quantity: 1},
	{Name: "dice", Price: 15, Resource: inventory.Dice, Quantity: 1},
	{Name: "steps_pack", Price: 5, Resource: inventory.Steps, Quantity: 10},
	{Name: "food_pack", Price: 8, Resource: inventory.Steps, Quantity: 6},
}

// Lookup finds an entry by name, ignoring case.
func Lookup(entries []Entry, name string) (Entry, error) {
	for _, e := range entries {
		if strings.EqualFold(e.Name, strings.TrimSpace(name)) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// Purse is the part of the ledger a purchase touches.
type Purse interface {
	Spend(r inventory.Resource, n int) error
	Add(r inventory.Resource, n int) error
}

// Purchase takes the price in coins and credits the entry's resource.
// When the credit fails the coins are given back.
func Purchase(p Purse, e Entry) error {
	if err := p.Spend(inventory.Coins, e.Price); err != nil {
		return fmt.Errorf("buy %s: %w", e.Name, err)
	}
	if err := p.Add(e.Resource, e.Quantity); err != nil {
		if rbErr := p.Add(inventory.Coins, e.Price); rbErr != nil {
			return fmt.Errorf("buy %s: refund failed: %w", e.Name, errors.Join(err, rbErr))
		}
		return fmt.Errorf("buy %s: %w", e.Name, err)
	}
	return nil
}

// AttemptPurchase is Purchase reporting only success.
func AttemptPurchase(p Purse, e Entry) bool {
	return Purchase(p, e) == nil
}
