package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a position lies outside the grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid represents the game map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	g := &Grid{}
	g.build(rows, cols)
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(p Position) *Cell {
	if !g.IsValidPosition(p) {
		return nil
	}
	return g.cells[p.Row][p.Col]
}

// MustCell returns the cell at p or an ErrOutOfBounds error
func (g *Grid) MustCell(p Position) (*Cell, error) {
	c := g.GetCell(p)
	if c == nil {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return c, nil
}

// Neighbors returns the in-bounds orthogonal neighbours of p keyed by direction
func (g *Grid) Neighbors(p Position) map[Direction]Position {
	out := make(map[Direction]Position, 4)
	for _, dir := range AllDirections() {
		n := dir.Step(p)
		if g.IsValidPosition(n) {
			out[dir] = n
		}
	}
	return out
}

// build initializes the grid with the given dimensions
func (g *Grid) build(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = NewCell(row, col, fmt.Sprintf("%v:%v", row, col))
		}
	}
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CountDiscovered returns the number of discovered cells
func (g *Grid) CountDiscovered() int {
	n := 0
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.Discovered {
			n++
		}
	})
	return n
}
