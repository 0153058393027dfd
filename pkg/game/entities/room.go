package entities

import (
	"fmt"
	"sort"
	"strings"

	"manor/pkg/engine/world"
)

// Color is the thematic category of a room.
type Color int

const (
	Blue Color = iota
	Yellow
	Green
	Purple
	Orange
	Red
)

var colorNames = map[Color]string{
	Blue:   "blue",
	Yellow: "yellow",
	Green:  "green",
	Purple: "purple",
	Orange: "orange",
	Red:    "red",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// ParseColor maps a lowercase color name to a Color.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown room color %q", s)
}

// MaxRarity is the rarest tier a room can have.
const MaxRarity = 3

// Room is both a catalog template and, after Clone, a room placed on the
// estate. Templates are never mutated; placed rooms own their doors and
// visited flag.
type Room struct {
	Name    string
	Color   Color
	Rarity  int
	GemCost int
	Doors   map[world.Direction]*Door
	Items   []Grant
	OnEnter []Effect
	OnDraw  []Effect
	Shop    bool
	Visited bool
}

// Clone returns an independent copy with closed doors and Visited cleared.
func (r *Room) Clone() *Room {
	c := *r
	c.Visited = false
	c.Doors = make(map[world.Direction]*Door, len(r.Doors))
	for dir, d := range r.Doors {
		c.Doors[dir] = d.Clone()
	}
	c.Items = append([]Grant(nil), r.Items...)
	c.OnEnter = append([]Effect(nil), r.OnEnter...)
	c.OnDraw = append([]Effect(nil), r.OnDraw...)
	return &c
}

// Door returns the door in the given direction, or nil
func (r *Room) Door(dir world.Direction) *Door {
	if r == nil || r.Doors == nil {
		return nil
	}
	return r.Doors[dir]
}

// HasDoor reports whether the room has a door in the given direction
func (r *Room) HasDoor(dir world.Direction) bool {
	return r.Door(dir) != nil
}

// EnsureDoor adds an open, unlocked door in dir when the room has none there.
// Used to keep the way back to the room the player came from.
func (r *Room) EnsureDoor(dir world.Direction) *Door {
	if d := r.Door(dir); d != nil {
		return d
	}
	if r.Doors == nil {
		r.Doors = make(map[world.Direction]*Door)
	}
	d := NewOpenDoor()
	r.Doors[dir] = d
	return d
}

// DoorDirections returns the directions with doors in N/E/S/W order
func (r *Room) DoorDirections() []world.Direction {
	dirs := make([]world.Direction, 0, len(r.Doors))
	for dir := range r.Doors {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })
	return dirs
}

// MarkVisited sets Visited and reports whether this was the first entry.
func (r *Room) MarkVisited() bool {
	if r.Visited {
		return false
	}
	r.Visited = true
	return true
}

func (r *Room) String() string {
	return fmt.Sprintf("%s (%s, rarity %d, cost %d gems)", r.Name, r.Color, r.Rarity, r.GemCost)
}
