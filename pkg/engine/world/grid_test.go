package world

import (
	"errors"
	"testing"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		if g, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Errorf("NewGrid(%d, %d) = %v, want error", dims[0], dims[1], g)
		}
	}
}

func TestGrid_GetCellBounds(t *testing.T) {
	g, err := NewGrid(5, 9)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if c := g.GetCell(Pos(4, 8)); c == nil || c.Row != 4 || c.Col != 8 {
		t.Errorf("GetCell(4,8) = %+v, want cell at (4,8)", c)
	}
	for _, p := range []Position{Pos(-1, 0), Pos(5, 0), Pos(0, 9), Pos(0, -1)} {
		if c := g.GetCell(p); c != nil {
			t.Errorf("GetCell(%v) = %+v, want nil", p, c)
		}
		if _, err := g.MustCell(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MustCell(%v) err = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestGrid_NeighborsCorner(t *testing.T) {
	g, _ := NewGrid(5, 9)
	n := g.Neighbors(Pos(0, 0))
	if len(n) != 2 {
		t.Fatalf("Neighbors(0,0) has %d entries, want 2", len(n))
	}
	if n[East] != Pos(0, 1) || n[South] != Pos(1, 0) {
		t.Errorf("Neighbors(0,0) = %v", n)
	}
	if _, ok := n[North]; ok {
		t.Error("Neighbors(0,0) contains North, want out-of-bounds neighbour dropped")
	}
}

func TestGrid_NeighborsCentre(t *testing.T) {
	g, _ := NewGrid(3, 3)
	n := g.Neighbors(Pos(1, 1))
	want := map[Direction]Position{North: Pos(0, 1), South: Pos(2, 1), East: Pos(1, 2), West: Pos(1, 0)}
	for dir, p := range want {
		if n[dir] != p {
			t.Errorf("Neighbors(1,1)[%v] = %v, want %v", dir, n[dir], p)
		}
	}
}

func TestGrid_CountDiscovered(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.GetCell(Pos(1, 1)).Discovered = true
	if got := g.CountDiscovered(); got != 1 {
		t.Errorf("CountDiscovered() = %d, want 1", got)
	}
}

func TestDirection_OppositeAndStep(t *testing.T) {
	origin := Pos(2, 2)
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() != %v", dir, dir)
		}
		back := dir.Opposite().Step(dir.Step(origin))
		if back != origin {
			t.Errorf("stepping %v then back = %v, want %v", dir, back, origin)
		}
		if !origin.IsAdjacent(dir.Step(origin)) {
			t.Errorf("%v step is not adjacent", dir)
		}
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"north": North, "E": East, " south ": South, "w": West}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(\"up\") = nil error, want error")
	}
}

func TestDirectionBetween(t *testing.T) {
	if d, ok := DirectionBetween(Pos(3, 3), Pos(2, 3)); !ok || d != North {
		t.Errorf("DirectionBetween north = %v, %v", d, ok)
	}
	if _, ok := DirectionBetween(Pos(3, 3), Pos(2, 2)); ok {
		t.Error("DirectionBetween diagonal reported ok")
	}
}

func TestPosition_Manhattan(t *testing.T) {
	if d := Pos(4, 4).Manhattan(Pos(0, 4)); d != 4 {
		t.Errorf("Manhattan = %d, want 4", d)
	}
	if Pos(1, 1).IsAdjacent(Pos(2, 2)) {
		t.Error("diagonal reported adjacent")
	}
	if Pos(1, 1).IsAdjacent(Pos(1, 1)) {
		t.Error("same cell reported adjacent")
	}
}
