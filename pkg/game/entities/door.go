// Package entities contains the game-specific entity types of the manor:
// rooms, their doors, the items they hold and the effects they trigger.
package entities

import (
	"fmt"
	"strings"
)

// LockLevel is how firmly a door is locked. It is fixed when the room is
// authored.
type LockLevel int

const (
	Unlocked LockLevel = iota
	Locked
	DoubleLocked
)

func (l LockLevel) String() string {
	switch l {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	case DoubleLocked:
		return "double_locked"
	default:
		return fmt.Sprintf("lock(%d)", int(l))
	}
}

// IsValid reports whether l is a defined lock level.
func (l LockLevel) IsValid() bool {
	return l >= Unlocked && l <= DoubleLocked
}

// ParseLockLevel maps "unlocked", "locked" or "double_locked" to a LockLevel.
func ParseLockLevel(s string) (LockLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unlocked":
		return Unlocked, nil
	case "locked":
		return Locked, nil
	case "double_locked", "double-locked":
		return DoubleLocked, nil
	}
	return 0, fmt.Errorf("unknown lock level %q", s)
}

// Door is one side of a connection out of a room.
// Once opened it stays open.
type Door struct {
	lock LockLevel
	open bool
}

// NewDoor creates a closed door with the given lock level
func NewDoor(lock LockLevel) *Door {
	return &Door{lock: lock}
}

// NewOpenDoor creates an unlocked door that is already open
func NewOpenDoor() *Door {
	return &Door{lock: Unlocked, open: true}
}

// LockLevel returns the door's lock level
func (d *Door) LockLevel() LockLevel {
	return d.lock
}

// IsOpen reports whether the door has been opened
func (d *Door) IsOpen() bool {
	return d.open
}

// Open marks the door as open
func (d *Door) Open() {
	d.open = true
}

// Clone returns a closed door with the same lock level
func (d *Door) Clone() *Door {
	return NewDoor(d.lock)
}

func (d *Door) String() string {
	state := "closed"
	if d.open {
		state = "open"
	}
	return fmt.Sprintf("%s (%s)", state, d.lock)
}
