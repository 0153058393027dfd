package gameplay

import (
	"github.com/sirupsen/logrus"

	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/messages"
)

// chestReward is one category a chest can hold, with its amount range.
type chestReward struct {
	resource inventory.Resource
	min, max int
}

var chestTable = []chestReward{
	{inventory.Coins, 10, 30},
	{inventory.Keys, 1, 3},
	{inventory.Gems, 1, 2},
	{inventory.Dice, 1, 1},
}

// enter runs a room's entry effect the first time the player walks in.
// Later entries change nothing.
func (c *Controller) enter(room *entities.Room) {
	if !room.MarkVisited() {
		return
	}
	c.say(messages.EnteredRoom, room.Name)
	c.applyEffects(room.OnEnter)
	for _, item := range room.Items {
		c.grant(item)
	}
}

func (c *Controller) applyEffects(effects []entities.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case entities.EffectGrantResource:
			c.addResource(e.Resource, e.Amount, messages.FoundItem)
		case entities.EffectGrantPermanent:
			c.grantPermanent(e.Permanent)
		case entities.EffectRandomChest:
			c.openChest()
		}
	}
}

func (c *Controller) grant(item entities.Grant) {
	switch item.Kind {
	case entities.GrantResourceItem, entities.GrantFoodItem:
		c.addResource(item.Resource, item.Amount, messages.FoundItem)
	case entities.GrantPermanentItem:
		c.grantPermanent(item.Permanent)
	case entities.GrantChestItem:
		c.openChest()
	}
}

func (c *Controller) addResource(r inventory.Resource, n int, key messages.Key) {
	if err := c.game.Ledger.Add(r, n); err != nil {
		c.log.WithError(err).WithField("resource", r.String()).Warn("grant skipped")
		return
	}
	c.say(key, n, r)
}

func (c *Controller) grantPermanent(p inventory.Permanent) {
	if c.game.Ledger.HasPermanent(p) {
		return
	}
	if err := c.game.Ledger.GrantPermanent(p); err != nil {
		c.log.WithError(err).Warn("permanent grant skipped")
		return
	}
	c.say(messages.FoundPermanent, p)
	c.log.WithField("item", p.String()).Info("permanent item acquired")
}

// openChest rolls one reward category and an amount within its range.
func (c *Controller) openChest() {
	reward := chestTable[c.src.Intn(len(chestTable))]
	n := reward.min + c.src.Intn(reward.max-reward.min+1)
	c.log.WithFields(logrus.Fields{"resource": reward.resource.String(), "amount": n}).Debug("chest opened")
	c.addResource(reward.resource, n, messages.ChestOpened)
}
