// Package inventory implements the resource ledger: every countable quantity
// the player carries plus the set of permanent items.
package inventory

import (
	"fmt"
	"strings"
)

// Resource is a countable, consumable quantity.
type Resource int

const (
	Steps Resource = iota
	Coins
	Gems
	Keys
	Dice
)

// resourceCount is the number of Resource kinds (for array sizing).
const resourceCount = 5

// AllResources returns every resource kind in display order.
func AllResources() []Resource {
	return []Resource{Steps, Coins, Gems, Keys, Dice}
}

func (r Resource) String() string {
	switch r {
	case Steps:
		return "steps"
	case Coins:
		return "coins"
	case Gems:
		return "gems"
	case Keys:
		return "keys"
	case Dice:
		return "dice"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// IsValid reports whether r is one of the defined resource kinds.
func (r Resource) IsValid() bool {
	return r >= Steps && r <= Dice
}

// ParseResource maps a lowercase resource name to its Resource.
func ParseResource(s string) (Resource, error) {
	for _, r := range AllResources() {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Permanent is a boolean capability that never expires once granted.
type Permanent int

const (
	Shovel Permanent = iota
	Hammer
	LockpickKit
	MetalDetector
	RabbitFoot
)

// AllPermanents returns every permanent item kind.
func AllPermanents() []Permanent {
	return []Permanent{Shovel, Hammer, LockpickKit, MetalDetector, RabbitFoot}
}

func (p Permanent) String() string {
	switch p {
	case Shovel:
		return "shovel"
	case Hammer:
		return "hammer"
	case LockpickKit:
		return "lockpick_kit"
	case MetalDetector:
		return "metal_detector"
	case RabbitFoot:
		return "rabbit_foot"
	default:
		return fmt.Sprintf("permanent(%d)", int(p))
	}
}

// IsValid reports whether p is one of the defined permanent items.
func (p Permanent) IsValid() bool {
	return p >= Shovel && p <= RabbitFoot
}

// ParsePermanent maps a permanent item name ("lockpick_kit") to its Permanent.
func ParsePermanent(s string) (Permanent, error) {
	for _, p := range AllPermanents() {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPermanent, s)
}
