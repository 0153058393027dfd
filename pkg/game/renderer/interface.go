package renderer

import (
	"manor/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleUndiscovered
	StylePlayer
	StyleExit
	StyleItem
	StyleAction
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends.
// A renderer only ever sees snapshots; it never touches the run itself.
type Renderer interface {
	// Init initializes the renderer (colors, output, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: map, resources, draft,
	// messages and the input prompt
	RenderFrame(s state.Snapshot)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}
