package gameplay

import (
	"errors"
	"fmt"

	"manor/pkg/engine/world"
	"manor/pkg/game/lock"
)

var (
	// ErrIllegalMove covers non-adjacent destinations and intents sent in the
	// wrong state, such as choosing while no draft is pending.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoDoor is returned when the current room has no door towards an
	// undiscovered cell.
	ErrNoDoor = errors.New("no door in that direction")
	// ErrDoorLocked is returned when the player cannot open a door.
	ErrDoorLocked = errors.New("door is locked")
	// ErrRunEnded is returned for any intent after the run has been won or lost.
	ErrRunEnded = errors.New("run has ended")
	// ErrNotInShop is returned when buying outside a shop room.
	ErrNotInShop = errors.New("not in a shop")
)

// LockedError carries the resolver's verdict for a door that stayed shut.
type LockedError struct {
	Direction world.Direction
	Outcome   lock.Outcome
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("door to the %s: %s", e.Direction, e.Outcome.Message())
}

func (e *LockedError) Unwrap() error {
	return ErrDoorLocked
}
