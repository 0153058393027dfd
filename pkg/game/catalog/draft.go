package catalog

import (
	"errors"
	"fmt"
	"math"

	"manor/pkg/game/entities"
)

var (
	// ErrInvalidDraftSize is returned for a negative draft size.
	ErrInvalidDraftSize = errors.New("invalid draft size")
	// ErrEmptyCatalog is returned when rooms are drafted from a catalog
	// without templates.
	ErrEmptyCatalog = errors.New("catalog has no rooms to draft")
)

// DefaultDraftSize is how many rooms a door offers.
const DefaultDraftSize = 3

// Source is the randomness the drafter and chest rolls draw from.
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Weight returns the relative draft weight of a rarity tier, 1/3^rarity.
func Weight(rarity int) float64 {
	return math.Pow(3, -float64(rarity))
}

// Draft draws k distinct templates, each pick weighted by rarity among the
// templates still left. k larger than the catalog is clamped. At least one
// drafted room costs zero gems: when none does, the cheapest one (first on
// ties) is made free. Every returned room is a fresh copy.
func (c *Catalog) Draft(k int, src Source) ([]*entities.Room, error) {
	if k < 0 {
		return nil, fmt.Errorf("draft %d rooms: %w", k, ErrInvalidDraftSize)
	}
	if k > 0 && len(c.templates) == 0 {
		return nil, fmt.Errorf("draft %d rooms: %w", k, ErrEmptyCatalog)
	}
	pool := make([]*entities.Room, len(c.templates))
	copy(pool, c.templates)
	if k > len(pool) {
		k = len(pool)
	}

	drafted := make([]*entities.Room, 0, k)
	for len(drafted) < k {
		i := pick(pool, src)
		drafted = append(drafted, pool[i].Clone())
		pool = append(pool[:i], pool[i+1:]...)
	}
	ensureFreeRoom(drafted)
	return drafted, nil
}

func pick(pool []*entities.Room, src Source) int {
	total := 0.0
	for _, r := range pool {
		total += Weight(r.Rarity)
	}
	target := src.Float64() * total
	for i, r := range pool {
		target -= Weight(r.Rarity)
		if target < 0 {
			return i
		}
	}
	return len(pool) - 1
}

func ensureFreeRoom(rooms []*entities.Room) {
	if len(rooms) == 0 {
		return
	}
	cheapest := 0
	for i, r := range rooms {
		if r.GemCost == 0 {
			return
		}
		if r.GemCost < rooms[cheapest].GemCost {
			cheapest = i
		}
	}
	rooms[cheapest].GemCost = 0
}
