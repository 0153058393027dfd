package world

import "fmt"

// Position addresses a cell by row and column. Row 0 is the top of the map.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the four-directional distance between p and o.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// IsAdjacent reports whether o is exactly one orthogonal step away from p.
func (p Position) IsAdjacent(o Position) bool {
	return p.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
