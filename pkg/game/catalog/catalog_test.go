package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
)

func room(name string, rarity, cost int) *entities.Room {
	return &entities.Room{
		Name:    name,
		Rarity:  rarity,
		GemCost: cost,
		Doors:   map[world.Direction]*entities.Door{world.South: entities.NewDoor(entities.Unlocked)},
	}
}

func entrance() *entities.Room {
	return room("Entrance Hall", 0, 0)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 16, c.Len())

	e := c.Entrance()
	assert.Equal(t, "Entrance Hall", e.Name)
	assert.True(t, e.HasDoor(world.North))

	lib, ok := c.Lookup("Library")
	require.True(t, ok)
	assert.Equal(t, entities.Blue, lib.Color)
	assert.Len(t, lib.Items, 3)
	assert.Equal(t, []entities.Effect{entities.GrantResource(inventory.Coins, 15)}, lib.OnEnter)

	shop, ok := c.Lookup("Shop")
	require.True(t, ok)
	assert.True(t, shop.Shop)

	mb, ok := c.Lookup("Master Bedroom")
	require.True(t, ok)
	assert.Contains(t, mb.Items, entities.Grant{Kind: entities.GrantPermanentItem, Permanent: inventory.LockpickKit})

	hoard, ok := c.Lookup("Dragon's Hoard")
	require.True(t, ok)
	assert.Equal(t, 3, hoard.Rarity)
	assert.Len(t, hoard.OnEnter, 3)

	_, ok = c.Lookup("Ballroom")
	assert.False(t, ok)
}

func TestDefault_RarityMatchesCost(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	for _, r := range c.Templates() {
		assert.Equal(t, r.Rarity, r.GemCost, r.Name)
		assert.True(t, r.HasDoor(world.South), r.Name)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "rooms: [",
		"no entrance":   "rooms: []",
		"bad color":     "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: teal}]",
		"bad rarity":    "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, rarity: 4}]",
		"negative cost": "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, gem_cost: -1}]",
		"bad door":      "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, doors: {up: locked}}]",
		"bad lock":      "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, doors: {north: bolted}}]",
		"bad item":      "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, items: [gold]}]",
		"empty effect":  "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, on_enter: [{}]}]",
		"duplicate":     "entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red}, {name: A, color: red}]",
		"doorless":      "entrance: {name: E, color: blue}\nrooms: []",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_Invalid_WrapsSentinel(t *testing.T) {
	_, err := Parse([]byte("entrance: {name: E, color: blue, doors: {north: unlocked}}\nrooms: [{name: A, color: red, rarity: 9}]"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestParse_RequiresDraftableRooms(t *testing.T) {
	_, err := Parse([]byte("entrance: {name: E, color: blue, doors: {north: locked}}\nrooms: []"))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = New(entrance())
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	doc := "entrance: {name: E, color: blue, doors: {north: unlocked}}\n" +
		"rooms:\n  - {name: Cellar, color: red, rarity: 1, gem_cost: 1, on_draw: [{resource: gems, amount: 1}, {chest: true}]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	cellar, ok := c.Lookup("Cellar")
	require.True(t, ok)
	assert.Equal(t, []entities.Effect{entities.GrantResource(inventory.Gems, 1), entities.RandomChestReward()}, cellar.OnDraw)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNew_TemplatesAreCopied(t *testing.T) {
	lib := room("Library", 0, 0)
	c, err := New(entrance(), lib)
	require.NoError(t, err)

	lib.Name = "Renamed"
	_, ok := c.Lookup("Library")
	assert.True(t, ok)

	got, _ := c.Lookup("Library")
	got.GemCost = 5
	again, _ := c.Lookup("Library")
	assert.Zero(t, again.GemCost)
}
