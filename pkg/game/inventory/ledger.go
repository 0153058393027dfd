package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrInvalidAmount is returned for negative add or spend requests.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientResource is returned when a spend exceeds the balance.
	ErrInsufficientResource = errors.New("insufficient resource")
	// ErrUnknownResource is returned for resource kinds outside the enumeration.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrUnknownPermanent is returned for permanent items outside the enumeration.
	ErrUnknownPermanent = errors.New("unknown permanent item")
)

// Starting holds the quantities a new ledger is created with.
type Starting struct {
	Steps int
	Coins int
	Gems  int
	Keys  int
	Dice  int
}

// DefaultStarting is the opening position of a standard run.
var DefaultStarting = Starting{Steps: 70, Gems: 2}

// Ledger owns all countable resources and permanent items of one run.
// Counts are never negative: every mutation is checked before it is applied.
type Ledger struct {
	counts     [resourceCount]int
	permanents mapset.Set[Permanent]
}

// NewLedger creates a ledger holding the given starting quantities.
func NewLedger(start Starting) (*Ledger, error) {
	l := &Ledger{permanents: mapset.New[Permanent]()}
	initial := map[Resource]int{
		Steps: start.Steps,
		Coins: start.Coins,
		Gems:  start.Gems,
		Keys:  start.Keys,
		Dice:  start.Dice,
	}
	for r, n := range initial {
		if err := l.Add(r, n); err != nil {
			return nil, fmt.Errorf("starting %s: %w", r, err)
		}
	}
	return l, nil
}

// Count returns the current balance of r (0 for unknown kinds).
func (l *Ledger) Count(r Resource) int {
	if !r.IsValid() {
		return 0
	}
	return l.counts[r]
}

// Add credits n units of r.
func (l *Ledger) Add(r Resource, n int) error {
	if !r.IsValid() {
		return fmt.Errorf("add: %w: %v", ErrUnknownResource, r)
	}
	if n < 0 {
		return fmt.Errorf("add %d %s: %w", n, r, ErrInvalidAmount)
	}
	l.counts[r] += n
	return nil
}

// Spend debits n units of r, or nothing at all. The balance check and the
// decrement happen together so callers never split them.
func (l *Ledger) Spend(r Resource, n int) error {
	if !r.IsValid() {
		return fmt.Errorf("spend: %w: %v", ErrUnknownResource, r)
	}
	if n < 0 {
		return fmt.Errorf("spend %d %s: %w", n, r, ErrInvalidAmount)
	}
	if l.counts[r] < n {
		return fmt.Errorf("spend %d %s (have %d): %w", n, r, l.counts[r], ErrInsufficientResource)
	}
	l.counts[r] -= n
	return nil
}

// Consume is the boolean form of Spend: true and decremented, or false and
// untouched.
func (l *Ledger) Consume(r Resource, n int) bool {
	return l.Spend(r, n) == nil
}

// Has reports whether at least n units of r are available.
func (l *Ledger) Has(r Resource, n int) bool {
	return l.Count(r) >= n
}

// GrantPermanent records a permanent item. Granting twice is a no-op.
func (l *Ledger) GrantPermanent(p Permanent) error {
	if !p.IsValid() {
		return fmt.Errorf("grant: %w: %v", ErrUnknownPermanent, p)
	}
	l.permanents.Put(p)
	return nil
}

// HasPermanent reports whether p has been granted.
func (l *Ledger) HasPermanent(p Permanent) bool {
	return l.permanents.Has(p)
}

// Permanents returns the granted permanent items in enumeration order.
func (l *Ledger) Permanents() []Permanent {
	out := make([]Permanent, 0, l.permanents.Size())
	l.permanents.Each(func(p Permanent) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsExhausted reports whether the step budget is spent.
func (l *Ledger) IsExhausted() bool {
	return l.counts[Steps] == 0
}

// Snapshot is a read-only copy of a ledger for renderers and tests.
type Snapshot struct {
	Counts     map[Resource]int
	Permanents []Permanent
}

// Snapshot copies the current state.
func (l *Ledger) Snapshot() Snapshot {
	s := Snapshot{
		Counts:     make(map[Resource]int, resourceCount),
		Permanents: l.Permanents(),
	}
	for _, r := range AllResources() {
		s.Counts[r] = l.counts[r]
	}
	return s
}
