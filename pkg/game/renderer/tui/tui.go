// Package tui draws the manor as text on a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"manor/pkg/engine/terminal"
	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/messages"
	"manor/pkg/game/renderer"
	"manor/pkg/game/shop"
	"manor/pkg/game/state"
)

// Map icons
const (
	PlayerIcon       = "@"
	IconUndiscovered = "·"
	IconExit         = "▲"
	IconEntrance     = "▼"
	IconShop         = "$"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	shop []shop.Entry

	colorTitle        color.Style
	colorUndiscovered color.Style
	colorPlayer       color.Style
	colorExit         color.Style
	colorItem         color.Style
	colorAction       color.Style
	colorDenied       color.Style
	colorSubtle       color.Style

	roomColors map[entities.Color]color.Style
}

// New creates a TUI renderer writing to out. The shop list is shown while
// the player stands in a shop room.
func New(out io.Writer, entries []shop.Entry) *TUIRenderer {
	return &TUIRenderer{out: out, shop: entries}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgWhite, color.OpBold}
	t.colorUndiscovered = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.roomColors = map[entities.Color]color.Style{
		entities.Blue:   {color.FgBlue},
		entities.Yellow: {color.FgYellow},
		entities.Green:  {color.FgGreen},
		entities.Purple: {color.FgMagenta},
		entities.Orange: {color.FgLightRed},
		entities.Red:    {color.FgRed},
	}
}

// Clear clears the terminal screen when writing to one
func (t *TUIRenderer) Clear() {
	if f, ok := t.out.(*os.File); ok && terminal.IsTerminal(f) {
		terminal.Clear(f)
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleUndiscovered:
		return t.colorUndiscovered.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s state.Snapshot) {
	var b strings.Builder

	t.renderMap(&b, s)
	b.WriteString("\n")
	t.renderStatus(&b, s)
	if len(s.Draft) > 0 {
		b.WriteString("\n")
		t.renderDraft(&b, s)
	}
	if s.InShop && s.Status == state.StatusIdle {
		b.WriteString("\n")
		t.renderShop(&b)
	}
	b.WriteString("\n")
	t.renderMessages(&b, s)
	if !s.Status.Ended() {
		b.WriteString(t.StyleText(messages.Get(messages.LabelPrompt), renderer.StyleAction))
	}

	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) renderMap(b *strings.Builder, s state.Snapshot) {
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			b.WriteString(t.cellText(s, s.Cells[row][col]))
		}
		b.WriteString("\n")
	}
	if room := s.Cells[s.Player.Row][s.Player.Col]; room.Discovered {
		b.WriteString(t.StyleText(room.Room, renderer.StyleTitle))
		b.WriteString(" ")
		b.WriteString(t.StyleText(doorList(room.Doors), renderer.StyleSubtle))
		b.WriteString("\n")
	}
}

func (t *TUIRenderer) cellText(s state.Snapshot, c state.CellView) string {
	switch {
	case c.Position == s.Player:
		return t.StyleText("["+PlayerIcon+"]", renderer.StylePlayer)
	case !c.Discovered && c.Position == s.Exit:
		return t.StyleText(" "+IconExit+" ", renderer.StyleExit)
	case !c.Discovered:
		return t.StyleText(" "+IconUndiscovered+" ", renderer.StyleUndiscovered)
	}

	icon := "?"
	if r := []rune(c.Room); len(r) > 0 {
		icon = string(r[:1])
	}
	switch {
	case c.Shop:
		icon = IconShop
	case c.Position == s.Entrance:
		icon = IconEntrance
	}
	style, ok := t.roomColors[c.Color]
	if !ok {
		return " " + icon + " "
	}
	return style.Sprint(" " + icon + " ")
}

func doorList(dirs []world.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return "(" + strings.Join(names, " ") + ")"
}

func (t *TUIRenderer) renderStatus(b *strings.Builder, s state.Snapshot) {
	parts := make([]string, 0, len(s.Ledger.Counts))
	for _, r := range inventory.AllResources() {
		parts = append(parts, messages.Get(messages.LabelResourceBalance, r, s.Ledger.Counts[r]))
	}
	fmt.Fprintf(b, "%s: %s\n", t.StyleText(messages.Get(messages.LabelInventory), renderer.StyleTitle), strings.Join(parts, "  "))

	perms := messages.Get(messages.LabelNone)
	if len(s.Ledger.Permanents) > 0 {
		names := make([]string, len(s.Ledger.Permanents))
		for i, p := range s.Ledger.Permanents {
			names[i] = t.StyleText(p.String(), renderer.StyleItem)
		}
		perms = strings.Join(names, ", ")
	}
	fmt.Fprintf(b, "%s: %s\n", t.StyleText(messages.Get(messages.LabelPermanents), renderer.StyleTitle), perms)
}

func (t *TUIRenderer) renderDraft(b *strings.Builder, s state.Snapshot) {
	fmt.Fprintf(b, "%s\n", t.StyleText(messages.Get(messages.LabelDraft), renderer.StyleTitle))
	for i, o := range s.Draft {
		name := o.Name
		if style, ok := t.roomColors[o.Color]; ok {
			name = style.Sprint(name)
		}
		cost := messages.Get(messages.LabelGemCost, o.GemCost)
		if o.GemCost > s.Ledger.Counts[inventory.Gems] {
			cost = t.StyleText(cost, renderer.StyleDenied)
		}
		fmt.Fprintf(b, "  %s %s  %s  %s\n",
			t.StyleText(fmt.Sprintf("%d)", i+1), renderer.StyleAction),
			name, cost, t.StyleText(doorList(o.Doors), renderer.StyleSubtle))
	}
}

func (t *TUIRenderer) renderShop(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n", t.StyleText(messages.Get(messages.LabelShop), renderer.StyleTitle))
	for _, e := range t.shop {
		fmt.Fprintf(b, "  %s\n", messages.Get(messages.LabelShopEntry, e.Name, e.Price))
	}
}

func (t *TUIRenderer) renderMessages(b *strings.Builder, s state.Snapshot) {
	width := t.width()
	for _, msg := range s.Messages {
		for _, line := range wrap(msg, width) {
			fmt.Fprintf(b, "%s\n", line)
		}
	}
}

// width is the terminal width, or the default when not writing to one
func (t *TUIRenderer) width() int {
	if f, ok := t.out.(*os.File); ok {
		return terminal.GetWidth(f)
	}
	return terminal.DefaultWidth
}

// wrap breaks text on spaces into lines of at most width runes. Words
// longer than width get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return []string{text}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len([]rune(line))+1+len([]rune(w)) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
