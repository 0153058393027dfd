// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
// This is a generic engine primitive that can be extended by games.
type Cell struct {
	Name string

	// Grid position
	Row int
	Col int

	// Discovered is set once the cell holds game content.
	Discovered bool

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type (e.g., *GameCellData).
	GameData interface{}
}

// NewCell creates a new, undiscovered cell at the given position
func NewCell(row, col int, name string) *Cell {
	return &Cell{
		Name: name,
		Row:  row,
		Col:  col,
	}
}

// Position returns the cell's grid coordinates
func (c *Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}
