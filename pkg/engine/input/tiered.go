package input

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Drafting
	ActionChoose // Index carries the zero-based option
	ActionCancel
	ActionReroll

	// Shop
	ActionBuy // Arg carries the item name
	ActionShop

	// Meta / UI
	ActionHelp
	ActionQuit
	ActionDebugMapDump // Write the estate to map.txt
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Index  int
	Arg    string
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "n", "buy key").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Terminal input is line based, so this only normalises the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Drafting
	"c":      ActionCancel,
	"cancel": ActionCancel,
	"r":      ActionReroll,
	"reroll": ActionReroll,

	// Shop
	"shop": ActionShop,

	// Help
	"?":    ActionHelp,
	"help": ActionHelp,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Developer
	"dump": ActionDebugMapDump,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Numbers choose a draft
// option (1-based on input, 0-based in the intent) and "buy <item>"
// carries its argument.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if n, err := strconv.Atoi(ev.Code); err == nil {
		return Intent{Action: ActionChoose, Index: n - 1}
	}
	if verb, arg, ok := strings.Cut(ev.Code, " "); ok && verb == "buy" {
		return Intent{Action: ActionBuy, Arg: strings.TrimSpace(arg)}
	}
	return Intent{Action: ActionNone}
}

// Translate runs a raw event through the remaining layers.
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionChoose:
		return "Choose Room"
	case ActionCancel:
		return "Cancel Draft"
	case ActionReroll:
		return "Reroll Draft"
	case ActionBuy:
		return "Buy"
	case ActionShop:
		return "Shop"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionDebugMapDump:
		return "Dump Map"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
