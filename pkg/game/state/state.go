// Package state holds the mutable state of one manor run.
package state

import (
	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	gameworld "manor/pkg/game/world"
)

// Status is where the run is in its lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusAwaitingDraft
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAwaitingDraft:
		return "awaiting_draft"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the run is over
func (s Status) Ended() bool {
	return s == StatusWon || s == StatusLost
}

// Draft is the set of rooms offered for an undiscovered cell.
type Draft struct {
	Target    world.Position
	Direction world.Direction
	Options   []*entities.Room
}

// Game represents the state of one run through the manor
type Game struct {
	Ledger *inventory.Ledger

	Estate *gameworld.Estate

	Player world.Position

	Status Status

	Pending *Draft

	Messages []string
}

// NewGame creates a run with the player standing at the estate's entrance
func NewGame(ledger *inventory.Ledger, estate *gameworld.Estate) *Game {
	g := &Game{
		Ledger:   ledger,
		Estate:   estate,
		Player:   estate.Entrance(),
		Status:   StatusIdle,
		Messages: make([]string, 0),
	}
	if room, ok := g.CurrentRoom(); ok {
		room.Visited = true
	}
	return g
}

// CurrentRoom returns the room the player stands in
func (g *Game) CurrentRoom() (*entities.Room, bool) {
	return g.Estate.RoomAt(g.Player)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// CellView is one estate cell as the front-end sees it.
type CellView struct {
	Position   world.Position
	Discovered bool
	Room       string
	Color      entities.Color
	Doors      []world.Direction
	Visited    bool
	Shop       bool
}

// OptionView is one drafted room as the front-end sees it.
type OptionView struct {
	Name    string
	Color   entities.Color
	Rarity  int
	GemCost int
	Doors   []world.Direction
}

// Snapshot is a read-only copy of everything a front-end needs to draw.
type Snapshot struct {
	Rows, Cols int
	Cells      [][]CellView
	Player     world.Position
	Entrance   world.Position
	Exit       world.Position
	Status     Status
	Draft      []OptionView
	Ledger     inventory.Snapshot
	InShop     bool
	Messages   []string
}

// Snapshot copies the run into a Snapshot
func (g *Game) Snapshot() Snapshot {
	est := g.Estate
	s := Snapshot{
		Rows:     est.Rows(),
		Cols:     est.Cols(),
		Player:   g.Player,
		Entrance: est.Entrance(),
		Exit:     est.Exit(),
		Status:   g.Status,
		Ledger:   g.Ledger.Snapshot(),
		Messages: append([]string(nil), g.Messages...),
	}
	s.Cells = make([][]CellView, s.Rows)
	for row := range s.Cells {
		s.Cells[row] = make([]CellView, s.Cols)
		for col := range s.Cells[row] {
			p := world.Pos(row, col)
			view := CellView{Position: p}
			if room, ok := est.RoomAt(p); ok {
				view.Discovered = true
				view.Room = room.Name
				view.Color = room.Color
				view.Doors = room.DoorDirections()
				view.Visited = room.Visited
				view.Shop = room.Shop
			}
			s.Cells[row][col] = view
		}
	}
	if room, ok := g.CurrentRoom(); ok {
		s.InShop = room.Shop
	}
	if g.Pending != nil {
		for _, r := range g.Pending.Options {
			s.Draft = append(s.Draft, OptionView{
				Name:    r.Name,
				Color:   r.Color,
				Rarity:  r.Rarity,
				GemCost: r.GemCost,
				Doors:   r.DoorDirections(),
			})
		}
	}
	return s
}
