package entities

import (
	"fmt"

	"manor/pkg/game/inventory"
)

// EffectKind tags the variant held by an Effect.
type EffectKind int

const (
	EffectGrantResource EffectKind = iota
	EffectGrantPermanent
	EffectRandomChest
)

// Effect is a room's on-enter or on-draw behaviour, kept as plain data.
// The gameplay package interprets it against the ledger.
type Effect struct {
	Kind      EffectKind
	Resource  inventory.Resource
	Amount    int
	Permanent inventory.Permanent
}

// GrantResource adds n units of r.
func GrantResource(r inventory.Resource, n int) Effect {
	return Effect{Kind: EffectGrantResource, Resource: r, Amount: n}
}

// GrantPermanent grants the permanent item p.
func GrantPermanent(p inventory.Permanent) Effect {
	return Effect{Kind: EffectGrantPermanent, Permanent: p}
}

// RandomChestReward rolls one chest reward when applied.
func RandomChestReward() Effect {
	return Effect{Kind: EffectRandomChest}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectGrantResource:
		return fmt.Sprintf("+%d %s", e.Amount, e.Resource)
	case EffectGrantPermanent:
		return "+" + e.Permanent.String()
	case EffectRandomChest:
		return "chest"
	default:
		return fmt.Sprintf("effect(%d)", int(e.Kind))
	}
}
