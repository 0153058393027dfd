// Package catalog holds the static set of room templates and draws
// rarity-weighted drafts from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
)

// ErrInvalidTemplate is returned when a room template fails validation.
var ErrInvalidTemplate = errors.New("invalid room template")

//go:embed rooms.yaml
var defaultRooms []byte

// Catalog is an immutable collection of room templates plus the entrance
// room. Callers only ever receive clones.
type Catalog struct {
	entrance  *entities.Room
	templates []*entities.Room
}

// New builds a catalog from an entrance room and the draftable templates.
func New(entrance *entities.Room, templates ...*entities.Room) (*Catalog, error) {
	if err := validateEntrance(entrance); err != nil {
		return nil, err
	}
	seen := map[string]bool{entrance.Name: true}
	c := &Catalog{entrance: entrance.Clone()}
	for i, t := range templates {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate room %q: %w", t.Name, ErrInvalidTemplate)
		}
		seen[t.Name] = true
		c.templates = append(c.templates, t.Clone())
	}
	if len(c.templates) == 0 {
		return nil, fmt.Errorf("no draftable rooms: %w", ErrInvalidTemplate)
	}
	return c, nil
}

// Default returns the embedded standard catalog.
func Default() (*Catalog, error) {
	return Parse(defaultRooms)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Len returns the number of draftable templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Entrance returns a fresh copy of the entrance room
func (c *Catalog) Entrance() *entities.Room {
	return c.entrance.Clone()
}

// Templates returns copies of every draftable template
func (c *Catalog) Templates() []*entities.Room {
	out := make([]*entities.Room, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Clone()
	}
	return out
}

// Lookup returns a copy of the named template
func (c *Catalog) Lookup(name string) (*entities.Room, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return t.Clone(), true
		}
	}
	return nil, false
}

func validate(r *entities.Room) error {
	if r == nil {
		return fmt.Errorf("nil room: %w", ErrInvalidTemplate)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidTemplate)
	}
	if r.Rarity < 0 || r.Rarity > entities.MaxRarity {
		return fmt.Errorf("%s: rarity %d: %w", r.Name, r.Rarity, ErrInvalidTemplate)
	}
	if r.GemCost < 0 {
		return fmt.Errorf("%s: gem cost %d: %w", r.Name, r.GemCost, ErrInvalidTemplate)
	}
	for dir, d := range r.Doors {
		if !dir.IsValid() || d == nil || !d.LockLevel().IsValid() {
			return fmt.Errorf("%s: door %v: %w", r.Name, dir, ErrInvalidTemplate)
		}
	}
	for _, e := range append(append([]entities.Effect(nil), r.OnEnter...), r.OnDraw...) {
		if e.Kind == entities.EffectGrantResource && e.Amount < 0 {
			return fmt.Errorf("%s: effect %s: %w", r.Name, e, ErrInvalidTemplate)
		}
	}
	return nil
}

func validateEntrance(r *entities.Room) error {
	if err := validate(r); err != nil {
		return fmt.Errorf("entrance: %w", err)
	}
	if r.GemCost != 0 || len(r.Doors) == 0 {
		return fmt.Errorf("entrance %s needs zero cost and a door: %w", r.Name, ErrInvalidTemplate)
	}
	return nil
}

type catalogFile struct {
	Entrance roomDTO   `yaml:"entrance"`
	Rooms    []roomDTO `yaml:"rooms"`
}

type roomDTO struct {
	Name    string            `yaml:"name"`
	Color   string            `yaml:"color"`
	Rarity  int               `yaml:"rarity"`
	GemCost int               `yaml:"gem_cost"`
	Shop    bool              `yaml:"shop"`
	Doors   map[string]string `yaml:"doors"`
	Items   []string          `yaml:"items"`
	OnEnter []effectDTO       `yaml:"on_enter"`
	OnDraw  []effectDTO       `yaml:"on_draw"`
}

type effectDTO struct {
	Resource  string `yaml:"resource,omitempty"`
	Amount    int    `yaml:"amount,omitempty"`
	Permanent string `yaml:"permanent,omitempty"`
	Chest     bool   `yaml:"chest,omitempty"`
}

// Parse builds a catalog from its YAML form.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	entrance, err := f.Entrance.toRoom()
	if err != nil {
		return nil, fmt.Errorf("entrance: %w", err)
	}
	rooms := make([]*entities.Room, 0, len(f.Rooms))
	for _, dto := range f.Rooms {
		r, err := dto.toRoom()
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return New(entrance, rooms...)
}

func (dto roomDTO) toRoom() (*entities.Room, error) {
	color, err := entities.ParseColor(dto.Color)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", dto.Name, err, ErrInvalidTemplate)
	}
	r := &entities.Room{
		Name:    dto.Name,
		Color:   color,
		Rarity:  dto.Rarity,
		GemCost: dto.GemCost,
		Shop:    dto.Shop,
		Doors:   make(map[world.Direction]*entities.Door, len(dto.Doors)),
	}
	for dirName, lockName := range dto.Doors {
		dir, err := world.ParseDirection(dirName)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", dto.Name, err, ErrInvalidTemplate)
		}
		level, err := entities.ParseLockLevel(lockName)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", dto.Name, err, ErrInvalidTemplate)
		}
		r.Doors[dir] = entities.NewDoor(level)
	}
	for _, item := range dto.Items {
		g, err := entities.ParseGrant(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", dto.Name, err, ErrInvalidTemplate)
		}
		r.Items = append(r.Items, g)
	}
	if r.OnEnter, err = parseEffects(dto.Name, dto.OnEnter); err != nil {
		return nil, err
	}
	if r.OnDraw, err = parseEffects(dto.Name, dto.OnDraw); err != nil {
		return nil, err
	}
	return r, nil
}

func parseEffects(room string, dtos []effectDTO) ([]entities.Effect, error) {
	var out []entities.Effect
	for _, dto := range dtos {
		switch {
		case dto.Chest:
			out = append(out, entities.RandomChestReward())
		case dto.Permanent != "":
			p, err := inventory.ParsePermanent(dto.Permanent)
			if err != nil {
				return nil, fmt.Errorf("%s: %v: %w", room, err, ErrInvalidTemplate)
			}
			out = append(out, entities.GrantPermanent(p))
		case dto.Resource != "":
			res, err := inventory.ParseResource(dto.Resource)
			if err != nil {
				return nil, fmt.Errorf("%s: %v: %w", room, err, ErrInvalidTemplate)
			}
			out = append(out, entities.GrantResource(res, dto.Amount))
		default:
			return nil, fmt.Errorf("%s: empty effect: %w", room, ErrInvalidTemplate)
		}
	}
	return out, nil
}
