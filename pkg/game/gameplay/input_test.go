package gameplay

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "manor/pkg/engine/input"
	"manor/pkg/engine/world"
	"manor/pkg/game/config"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/state"
)

func typed(code string) engineinput.Intent {
	return engineinput.Translate(engineinput.RawInput{Device: engineinput.DeviceTerminal, Code: code})
}

func lastMessage(g *state.Game) string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}

func TestProcessIntent_LockedDoorReason(t *testing.T) {
	c, _ := fixture{
		start:    inventory.DefaultStarting,
		entrance: map[world.Direction]entities.LockLevel{world.North: entities.Locked},
	}.build(t)

	err := ProcessIntent(c, typed("n"))
	assert.ErrorIs(t, err, ErrDoorLocked)
	assert.Equal(t, "Need a key or lockpick kit", lastMessage(c.Game()))
}

func TestProcessIntent_Feedback(t *testing.T) {
	c, _ := fixture{start: inventory.DefaultStarting}.build(t)
	g := c.Game()

	require.Error(t, ProcessIntent(c, typed("e")))
	assert.Equal(t, "There is no door to the east.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("s")))
	assert.Equal(t, "The estate wall blocks the way south.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("1")))
	assert.Equal(t, "There is no draft to choose from.", lastMessage(g))

	require.NoError(t, ProcessIntent(c, typed("dance")))
	assert.Equal(t, "Unknown command.", lastMessage(g))

	require.NoError(t, ProcessIntent(c, typed("n")))
	assert.Equal(t, "Choose a room to draft (1-3), r to reroll, c to cancel.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("9")))
	assert.Equal(t, "There is no option 9.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("r")))
	assert.Equal(t, "You have no dice to reroll with.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("w")))
	assert.Equal(t, "Choose a room or cancel the draft first.", lastMessage(g))

	require.NoError(t, ProcessIntent(c, typed("c")))
	assert.Equal(t, "Draft cancelled.", lastMessage(g))
	assert.Equal(t, state.StatusIdle, g.Status)

	require.Error(t, ProcessIntent(c, typed("buy key")))
	assert.Equal(t, "There is no shop here.", lastMessage(g))
}

func TestProcessIntent_NotEnoughGems(t *testing.T) {
	c, _ := fixture{start: inventory.Starting{Steps: 5}}.build(t)
	g := c.Game()
	require.NoError(t, ProcessIntent(c, typed("n")))

	err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionChoose, Index: optionIndex(t, g, "Vault")})
	assert.ErrorIs(t, err, inventory.ErrInsufficientResource)
	assert.Equal(t, "Not enough gems for Vault (cost 2).", lastMessage(g))
}

func TestProcessIntent_Shop(t *testing.T) {
	store := tmpl("Shop", 0)
	store.Shop = true
	c, _ := fixture{
		start:     inventory.Starting{Steps: 5, Coins: 12},
		templates: []*entities.Room{store},
	}.build(t)
	g := c.Game()
	require.NoError(t, ProcessIntent(c, typed("n")))
	require.NoError(t, ProcessIntent(c, typed("1")))

	require.NoError(t, ProcessIntent(c, typed("buy key")))
	assert.Equal(t, "Bought key for 10 coins.", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("buy key")))
	assert.Equal(t, "Not enough coins for key (price 10).", lastMessage(g))

	require.Error(t, ProcessIntent(c, typed("buy sword")))
	assert.Equal(t, `The shop does not sell "sword".`, lastMessage(g))
}

func TestProcessIntent_AfterEnd(t *testing.T) {
	c, _ := fixture{start: inventory.Starting{Steps: 1}}.build(t)
	g := c.Game()
	require.NoError(t, g.Estate.Place(world.Pos(3, 4), tmpl("Hallway", 0)))
	require.NoError(t, ProcessIntent(c, typed("n")))
	assert.Equal(t, "You have run out of steps. The day is over.", lastMessage(g))

	assert.ErrorIs(t, ProcessIntent(c, typed("s")), ErrRunEnded)
	assert.Equal(t, "The run is over.", lastMessage(g))
}

func TestProcessIntent_HelpListsBindings(t *testing.T) {
	c, _ := fixture{start: inventory.DefaultStarting}.build(t)

	require.NoError(t, ProcessIntent(c, typed("?")))
	help := lastMessage(c.Game())
	assert.Contains(t, help, "Move North [arrow_up k n north]")
	assert.Contains(t, help, "Reroll Draft [r reroll]")
	assert.Contains(t, help, "Dump Map [dump]")
	assert.NotContains(t, help, "Choose Room")
	assert.Contains(t, help, "Type a number to choose a room")
}

func TestProcessIntent_MapDump(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	c, _ := fixture{start: inventory.DefaultStarting}.build(t)

	require.NoError(t, ProcessIntent(c, typed("dump")))
	assert.Equal(t, "Map dumped to map.txt", lastMessage(c.Game()))
	data, err := os.ReadFile("map.txt")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Entrance Hall")
}

func TestNewRun(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Seed = 11

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c, err := NewRun(cfg, logger)
	require.NoError(t, err)

	g := c.Game()
	assert.Equal(t, world.Pos(4, 4), g.Player)
	assert.Equal(t, 70, g.Ledger.Count(inventory.Steps))
	assert.Equal(t, 2, g.Ledger.Count(inventory.Gems))
	hall, ok := g.CurrentRoom()
	require.True(t, ok)
	assert.Equal(t, "Entrance Hall", hall.Name)
	assert.True(t, hall.Visited)
	assert.NotEmpty(t, g.Messages)

	require.NoError(t, c.Move(world.North))
	assert.Len(t, g.Pending.Options, 3)
}

func TestNewRun_InvalidConfig(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.DraftSize = 0
	_, err = NewRun(cfg, logrus.New())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg.DraftSize = 3
	cfg.Catalog = "/nonexistent/rooms.yaml"
	_, err = NewRun(cfg, logrus.New())
	assert.Error(t, err)
}
