package entities

import (
	"fmt"
	"strings"

	"manor/pkg/game/inventory"
)

// GrantKind tags what a room item gives the player on first entry.
type GrantKind int

const (
	GrantResourceItem GrantKind = iota // a consumable, added directly
	GrantFoodItem                      // food, converted to steps
	GrantPermanentItem                 // a permanent capability
	GrantChestItem                     // a random reward rolled on entry
)

// Grant is one entry of a room's item list.
type Grant struct {
	Kind      GrantKind
	Resource  inventory.Resource
	Amount    int
	Permanent inventory.Permanent
	Food      string
}

// FoodSteps is how many steps each food restores.
var FoodSteps = map[string]int{
	"apple":    2,
	"banana":   3,
	"orange":   4,
	"cake":     10,
	"sandwich": 15,
	"meal":     25,
}

const (
	foodPrefix      = "food_"
	permanentPrefix = "permanent_"
	chestItem       = "chest"
)

// ParseGrant reads an item name as written in the room catalog:
// "coins", "food_apple", "permanent_hammer" or "chest".
func ParseGrant(s string) (Grant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == chestItem:
		return Grant{Kind: GrantChestItem}, nil
	case strings.HasPrefix(name, foodPrefix):
		food := strings.TrimPrefix(name, foodPrefix)
		steps, ok := FoodSteps[food]
		if !ok {
			return Grant{}, fmt.Errorf("unknown food %q", food)
		}
		return Grant{Kind: GrantFoodItem, Resource: inventory.Steps, Amount: steps, Food: food}, nil
	case strings.HasPrefix(name, permanentPrefix):
		p, err := inventory.ParsePermanent(strings.TrimPrefix(name, permanentPrefix))
		if err != nil {
			return Grant{}, err
		}
		return Grant{Kind: GrantPermanentItem, Permanent: p}, nil
	}
	r, err := inventory.ParseResource(name)
	if err != nil {
		return Grant{}, err
	}
	return Grant{Kind: GrantResourceItem, Resource: r, Amount: 1}, nil
}

func (g Grant) String() string {
	switch g.Kind {
	case GrantFoodItem:
		return foodPrefix + g.Food
	case GrantPermanentItem:
		return permanentPrefix + g.Permanent.String()
	case GrantChestItem:
		return chestItem
	default:
		return g.Resource.String()
	}
}
