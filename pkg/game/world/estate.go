package world

import (
	"errors"
	"fmt"

	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
)

// Default manor dimensions.
const (
	DefaultRows = 5
	DefaultCols = 9
)

// ErrNoRoom is returned when placing a nil room.
var ErrNoRoom = errors.New("no room to place")

// Estate is the manor floor plan: a grid of cells, each empty or holding
// exactly one placed room. Placed rooms are never removed.
type Estate struct {
	grid     *world.Grid
	entrance world.Position
	exit     world.Position
}

// NewEstate creates a rows x cols estate with the entrance room placed at
// the bottom centre and the exit at the top centre.
func NewEstate(rows, cols int, entrance *entities.Room) (*Estate, error) {
	grid, err := world.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	e := &Estate{
		grid:     grid,
		entrance: world.Pos(rows-1, cols/2),
		exit:     world.Pos(0, cols/2),
	}
	if entrance != nil {
		if err := e.Place(e.entrance, entrance); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Estate) Rows() int { return e.grid.Rows() }
func (e *Estate) Cols() int { return e.grid.Cols() }

// Entrance returns the starting position
func (e *Estate) Entrance() world.Position { return e.entrance }

// Exit returns the winning position
func (e *Estate) Exit() world.Position { return e.exit }

// InBounds reports whether p lies on the estate
func (e *Estate) InBounds(p world.Position) bool {
	return e.grid.IsValidPosition(p)
}

// RoomAt returns the room placed at p, if any
func (e *Estate) RoomAt(p world.Position) (*entities.Room, bool) {
	cell := e.grid.GetCell(p)
	if !HasRoom(cell) {
		return nil, false
	}
	return GetGameData(cell).Room, true
}

// IsDiscovered reports whether a room has been placed at p
func (e *Estate) IsDiscovered(p world.Position) bool {
	_, ok := e.RoomAt(p)
	return ok
}

// Place puts room at p, replacing any room already there, and marks the
// cell discovered.
func (e *Estate) Place(p world.Position, room *entities.Room) error {
	if room == nil {
		return fmt.Errorf("place at %s: %w", p, ErrNoRoom)
	}
	cell, err := e.grid.MustCell(p)
	if err != nil {
		return fmt.Errorf("place %s: %w", room.Name, err)
	}
	GetGameData(cell).Room = room
	cell.Name = room.Name
	cell.Discovered = true
	return nil
}

// AdjacentPositions returns the in-bounds orthogonal neighbours of p.
func (e *Estate) AdjacentPositions(p world.Position) map[world.Direction]world.Position {
	return e.grid.Neighbors(p)
}

// ForEachRoom calls fn for every placed room in row-major order
func (e *Estate) ForEachRoom(fn func(p world.Position, room *entities.Room)) {
	e.grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		if HasRoom(cell) {
			fn(cell.Position(), GetGameData(cell).Room)
		}
	})
}

// Discovered returns the number of placed rooms
func (e *Estate) Discovered() int {
	return e.grid.CountDiscovered()
}
