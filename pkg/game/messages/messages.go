// Package messages holds the player-facing text of the game. Code refers to
// message keys; the embedded English catalogue turns them into sentences.
package messages

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

// Key identifies a message in the catalogue.
type Key string

// Message keys. Keep in sync with en.po.
const (
	DoorUnlocked         Key = "DOOR_UNLOCKED"
	DoorAlreadyOpen      Key = "DOOR_ALREADY_OPEN"
	OpenWithLockpick     Key = "OPEN_WITH_LOCKPICK"
	OpenWithKey          Key = "OPEN_WITH_KEY"
	OpenDoubleWithKey    Key = "OPEN_DOUBLE_WITH_KEY"
	NeedKeyOrLockpick    Key = "NEED_KEY_OR_LOCKPICK"
	NeedKeyDoubleLocked  Key = "NEED_KEY_DOUBLE_LOCKED"
	CannotOpen           Key = "CANNOT_OPEN"
	NoDoor               Key = "NO_DOOR"
	NotAdjacent          Key = "NOT_ADJACENT"
	OutOfBounds          Key = "OUT_OF_BOUNDS"
	ChooseRoom           Key = "CHOOSE_ROOM"
	NotEnoughGems        Key = "NOT_ENOUGH_GEMS"
	RoomPlaced           Key = "ROOM_PLACED"
	DraftCancelled       Key = "DRAFT_CANCELLED"
	DraftRerolled        Key = "DRAFT_REROLLED"
	NoDice               Key = "NO_DICE"
	NoDraftPending       Key = "NO_DRAFT_PENDING"
	DraftPending         Key = "DRAFT_PENDING"
	InvalidChoice        Key = "INVALID_CHOICE"
	MovedTo              Key = "MOVED_TO"
	EnteredRoom          Key = "ENTERED_ROOM"
	FoundItem            Key = "FOUND_ITEM"
	FoundPermanent       Key = "FOUND_PERMANENT"
	ChestOpened          Key = "CHEST_OPENED"
	Purchased            Key = "PURCHASED"
	NotEnoughCoins       Key = "NOT_ENOUGH_COINS"
	NotInShop            Key = "NOT_IN_SHOP"
	UnknownShopItem      Key = "UNKNOWN_SHOP_ITEM"
	RunWon               Key = "RUN_WON"
	RunLost              Key = "RUN_LOST"
	RunOver              Key = "RUN_OVER"
	Welcome              Key = "WELCOME"
	UnknownCommand       Key = "UNKNOWN_COMMAND"
	Goodbye              Key = "GOODBYE"
	MapDumped            Key = "MAP_DUMPED"
	MapDumpFailed        Key = "MAP_DUMP_FAILED"
	LabelInventory       Key = "LABEL_INVENTORY"
	LabelPermanents      Key = "LABEL_PERMANENTS"
	LabelDraft           Key = "LABEL_DRAFT"
	LabelHelp            Key = "LABEL_HELP"
	LabelGemCost         Key = "LABEL_GEM_COST"
	LabelShop            Key = "LABEL_SHOP"
	LabelShopEntry       Key = "LABEL_SHOP_ENTRY"
	LabelPrompt          Key = "LABEL_PROMPT"
	LabelNone            Key = "LABEL_NONE"
	LabelResourceBalance Key = "LABEL_RESOURCE_BALANCE"
)

//go:embed en.po
var englishPo []byte

var catalogue = func() *gotext.Po {
	po := gotext.NewPo()
	po.Parse(englishPo)
	return po
}()

// Get returns the translated text for key, formatted with vars when given.
// Unknown keys come back unchanged.
func Get(key Key, vars ...interface{}) string {
	return catalogue.Get(string(key), vars...)
}
