package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manor/pkg/engine/terminal"
	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/shop"
	"manor/pkg/game/state"
	gameworld "manor/pkg/game/world"
)

func snapshot(t *testing.T) *state.Game {
	t.Helper()
	ledger, err := inventory.NewLedger(inventory.DefaultStarting)
	require.NoError(t, err)
	hall := &entities.Room{
		Name:  "Entrance Hall",
		Color: entities.Blue,
		Doors: map[world.Direction]*entities.Door{world.North: entities.NewDoor(entities.Unlocked)},
	}
	estate, err := gameworld.NewEstate(gameworld.DefaultRows, gameworld.DefaultCols, hall)
	require.NoError(t, err)
	return state.NewGame(ledger, estate)
}

func render(t *testing.T, g *state.Game) string {
	t.Helper()
	color.Enable = false
	var buf bytes.Buffer
	r := New(&buf, shop.DefaultCatalog)
	r.Init()
	r.RenderFrame(g.Snapshot())
	return buf.String()
}

func TestRenderFrame_Idle(t *testing.T) {
	g := snapshot(t)
	g.AddMessage("Welcome")
	out := render(t, g)

	assert.Contains(t, out, "[@]")
	assert.Contains(t, out, " ▲ ")
	assert.Contains(t, out, "Entrance Hall (north)")
	assert.Contains(t, out, "steps: 70")
	assert.Contains(t, out, "gems: 2")
	assert.Contains(t, out, "Permanent items: none")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "> ")
	assert.NotContains(t, out, "Draft")
}

func TestRenderFrame_Draft(t *testing.T) {
	g := snapshot(t)
	g.Status = state.StatusAwaitingDraft
	g.Pending = &state.Draft{
		Target: world.Pos(3, 4),
		Options: []*entities.Room{
			{Name: "Library", Color: entities.Blue},
			{Name: "Vault", Color: entities.Blue, Rarity: 2, GemCost: 2},
		},
	}
	out := render(t, g)

	assert.Contains(t, out, "Draft")
	assert.Contains(t, out, "1) Library  0 gems")
	assert.Contains(t, out, "2) Vault  2 gems")
}

func TestRenderFrame_ShopAndEnd(t *testing.T) {
	g := snapshot(t)
	store := &entities.Room{Name: "Shop", Color: entities.Yellow, Shop: true}
	require.NoError(t, g.Estate.Place(world.Pos(3, 4), store))
	g.Player = world.Pos(3, 4)

	out := render(t, g)
	assert.Contains(t, out, "key: 10 coins")
	assert.Contains(t, out, " ▼ ")

	g.Status = state.StatusWon
	out = render(t, g)
	assert.NotContains(t, out, "> ")
	assert.NotContains(t, out, "key: 10 coins")
}

func TestWrap(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "Welcome to the manor", 80, []string{"Welcome to the manor"}},
		{"breaks on spaces", "one two three four", 9, []string{"one two", "three", "four"}},
		{"long word alone", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrap(tc.text, tc.width))
		})
	}
}

func TestRenderFrame_WrapsLongMessages(t *testing.T) {
	g := snapshot(t)
	g.AddMessage(strings.Repeat("word ", 30))
	out := render(t, g)

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "word") {
			assert.LessOrEqual(t, len(line), terminal.DefaultWidth)
		}
	}
	assert.Equal(t, 30, strings.Count(out, "word"))
}
