// Package lock decides whether a door can be opened with what the player
// carries, and what opening it costs.
package lock

import (
	"errors"
	"fmt"

	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/messages"
)

// ErrNotOpenable is returned by Apply for an outcome that does not open the door.
var ErrNotOpenable = errors.New("door cannot be opened")

// Method is how a door gets opened.
type Method int

const (
	MethodNone     Method = iota // no way to open it
	MethodFree                   // unlocked, or already open
	MethodLockpick               // lockpick kit, no key spent
	MethodKey                    // one key spent
)

func (m Method) String() string {
	switch m {
	case MethodFree:
		return "free"
	case MethodLockpick:
		return "lockpick"
	case MethodKey:
		return "key"
	default:
		return "none"
	}
}

// Holdings is the read side of the ledger the resolver looks at.
type Holdings interface {
	Count(r inventory.Resource) int
	HasPermanent(p inventory.Permanent) bool
}

// Spender is the write side Apply needs.
type Spender interface {
	Spend(r inventory.Resource, n int) error
}

// Outcome is the resolver's verdict for one door.
type Outcome struct {
	Openable bool
	KeyCost  int
	Method   Method
	Reason   messages.Key
}

// Message returns the player-facing text for the outcome
func (o Outcome) Message() string {
	return messages.Get(o.Reason)
}

// Resolve decides whether a door of the given lock level can be opened.
// It never changes the holdings.
func Resolve(level entities.LockLevel, h Holdings) Outcome {
	switch level {
	case entities.Unlocked:
		return Outcome{Openable: true, Method: MethodFree, Reason: messages.DoorUnlocked}
	case entities.Locked:
		if h.HasPermanent(inventory.LockpickKit) {
			return Outcome{Openable: true, Method: MethodLockpick, Reason: messages.OpenWithLockpick}
		}
		if h.Count(inventory.Keys) >= 1 {
			return Outcome{Openable: true, KeyCost: 1, Method: MethodKey, Reason: messages.OpenWithKey}
		}
		return Outcome{Reason: messages.NeedKeyOrLockpick}
	case entities.DoubleLocked:
		if h.Count(inventory.Keys) >= 1 {
			return Outcome{Openable: true, KeyCost: 1, Method: MethodKey, Reason: messages.OpenDoubleWithKey}
		}
		return Outcome{Reason: messages.NeedKeyDoubleLocked}
	}
	return Outcome{Reason: messages.CannotOpen}
}

// ResolveDoor is Resolve for a concrete door. An open door is always passable.
func ResolveDoor(d *entities.Door, h Holdings) Outcome {
	if d.IsOpen() {
		return Outcome{Openable: true, Method: MethodFree, Reason: messages.DoorAlreadyOpen}
	}
	return Resolve(d.LockLevel(), h)
}

// Apply commits an outcome: it spends the key cost and opens the door.
// Nothing changes when it fails.
func Apply(o Outcome, d *entities.Door, s Spender) error {
	if !o.Openable {
		return fmt.Errorf("%s: %w", o.Reason, ErrNotOpenable)
	}
	if o.KeyCost > 0 {
		if err := s.Spend(inventory.Keys, o.KeyCost); err != nil {
			return fmt.Errorf("open %s door: %w", d.LockLevel(), err)
		}
	}
	d.Open()
	return nil
}
