package gameplay

import (
	"errors"
	"strings"

	engineinput "manor/pkg/engine/input"
	"manor/pkg/engine/world"
	"manor/pkg/game/devtools"
	"manor/pkg/game/inventory"
	"manor/pkg/game/messages"
	"manor/pkg/game/shop"
	"manor/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. Rejections are written to the message log and returned.
// Quitting is left to the caller.
func ProcessIntent(c *Controller, intent engineinput.Intent) error {
	var err error
	switch intent.Action {
	case engineinput.ActionNone:
		c.say(messages.UnknownCommand)
		return nil
	case engineinput.ActionHelp:
		c.game.AddMessage(helpText())
		return nil
	case engineinput.ActionDebugMapDump:
		path, err := devtools.DumpEstateToFile(c.game, ".")
		if err != nil {
			c.say(messages.MapDumpFailed, err)
			return err
		}
		c.say(messages.MapDumped, path)
		return nil
	case engineinput.ActionShop:
		for _, e := range c.shop {
			c.say(messages.LabelShopEntry, e.Name, e.Price)
		}
		return nil
	case engineinput.ActionMoveNorth:
		err = c.Move(world.North)
	case engineinput.ActionMoveSouth:
		err = c.Move(world.South)
	case engineinput.ActionMoveEast:
		err = c.Move(world.East)
	case engineinput.ActionMoveWest:
		err = c.Move(world.West)
	case engineinput.ActionChoose:
		err = c.Choose(intent.Index)
		if errors.Is(err, ErrIllegalMove) && c.game.Status == state.StatusAwaitingDraft {
			c.say(messages.InvalidChoice, intent.Index+1)
			return err
		}
	case engineinput.ActionCancel:
		err = c.Cancel()
	case engineinput.ActionReroll:
		err = c.Reroll()
	case engineinput.ActionBuy:
		err = c.Buy(intent.Arg)
		if errors.Is(err, inventory.ErrInsufficientResource) {
			if e, lookupErr := shop.Lookup(c.shop, intent.Arg); lookupErr == nil {
				c.say(messages.NotEnoughCoins, e.Name, e.Price)
				return err
			}
		}
		if errors.Is(err, shop.ErrUnknownItem) {
			c.say(messages.UnknownShopItem, intent.Arg)
			return err
		}
	default:
		c.say(messages.UnknownCommand)
		return nil
	}
	if err != nil {
		c.game.AddMessage(Describe(c.game, intent, err))
	}
	return err
}

// Describe turns a controller error into player-facing text.
func Describe(g *state.Game, intent engineinput.Intent, err error) string {
	var locked *LockedError
	switch {
	case errors.As(err, &locked):
		return locked.Outcome.Message()
	case errors.Is(err, ErrRunEnded):
		return messages.Get(messages.RunOver)
	case errors.Is(err, ErrNoDoor):
		return messages.Get(messages.NoDoor, directionOf(intent))
	case errors.Is(err, world.ErrOutOfBounds):
		return messages.Get(messages.OutOfBounds, directionOf(intent))
	case errors.Is(err, ErrNotInShop):
		return messages.Get(messages.NotInShop)
	case errors.Is(err, ErrIllegalMove):
		if g.Status == state.StatusAwaitingDraft {
			return messages.Get(messages.DraftPending)
		}
		if intent.Action == engineinput.ActionChoose || intent.Action == engineinput.ActionCancel || intent.Action == engineinput.ActionReroll {
			return messages.Get(messages.NoDraftPending)
		}
		return messages.Get(messages.NotAdjacent)
	case errors.Is(err, inventory.ErrInsufficientResource):
		switch intent.Action {
		case engineinput.ActionReroll:
			return messages.Get(messages.NoDice)
		case engineinput.ActionChoose:
			if g.Pending != nil && intent.Index >= 0 && intent.Index < len(g.Pending.Options) {
				room := g.Pending.Options[intent.Index]
				return messages.Get(messages.NotEnoughGems, room.Name, room.GemCost)
			}
		}
	}
	return err.Error()
}

// helpText lists every bound action with its keys.
func helpText() string {
	byAction := engineinput.GetBindingsByAction()
	parts := make([]string, 0, len(byAction))
	for a := engineinput.ActionMoveNorth; a <= engineinput.ActionDebugMapDump; a++ {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, engineinput.ActionName(a)+" ["+strings.Join(codes, " ")+"]")
	}
	return messages.Get(messages.LabelHelp, strings.Join(parts, ", "))
}

func directionOf(intent engineinput.Intent) world.Direction {
	switch intent.Action {
	case engineinput.ActionMoveSouth:
		return world.South
	case engineinput.ActionMoveEast:
		return world.East
	case engineinput.ActionMoveWest:
		return world.West
	default:
		return world.North
	}
}
