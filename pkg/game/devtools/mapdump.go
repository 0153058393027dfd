// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
	"manor/pkg/game/inventory"
	"manor/pkg/game/state"
)

// MapDumpFilename is where DumpEstateToFile writes by default.
const MapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no player/exit overlay).
func cellSymbol(room *entities.Room, ok bool) rune {
	switch {
	case !ok:
		return '#'
	case room.Shop:
		return '$'
	case !room.Visited:
		return 'o'
	default:
		return '.'
	}
}

// writeMapGrid writes the estate with the player and exit overlaid.
func writeMapGrid(w io.Writer, g *state.Game) {
	est := g.Estate
	for row := 0; row < est.Rows(); row++ {
		for col := 0; col < est.Cols(); col++ {
			p := world.Pos(row, col)
			switch {
			case p == g.Player:
				fmt.Fprint(w, "@")
			case p == est.Exit():
				fmt.Fprint(w, "E")
			default:
				room, ok := est.RoomAt(p)
				fmt.Fprintf(w, "%c", cellSymbol(room, ok))
			}
		}
		fmt.Fprintln(w)
	}
}

func doorSummary(room *entities.Room) string {
	var parts []string
	for _, dir := range room.DoorDirections() {
		d := room.Door(dir)
		status := "closed"
		if d.IsOpen() {
			status = "open"
		}
		parts = append(parts, fmt.Sprintf("%s=%s/%s", dir, d.LockLevel(), status))
	}
	return strings.Join(parts, " ")
}

// DumpEstate writes a plain-text debug dump of the run: metadata, legend,
// the map, the ledger and every placed room with its doors. It returns the
// first write error.
func DumpEstate(out io.Writer, g *state.Game) error {
	w := bufio.NewWriter(out)
	est := g.Estate
	fmt.Fprintln(w, "# Estate")
	fmt.Fprintf(w, "size: %dx%d\n", est.Rows(), est.Cols())
	fmt.Fprintf(w, "status: %s\n", g.Status)
	fmt.Fprintf(w, "player: %s\n", g.Player)
	fmt.Fprintf(w, "entrance: %s\n", est.Entrance())
	fmt.Fprintf(w, "exit: %s\n", est.Exit())
	fmt.Fprintf(w, "rooms: %d\n", est.Discovered())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Legend")
	fmt.Fprintln(w, "@ player, E exit, # undiscovered, . visited, o unvisited, $ shop")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Map")
	writeMapGrid(w, g)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Ledger")
	snap := g.Ledger.Snapshot()
	for _, r := range inventory.AllResources() {
		fmt.Fprintf(w, "%s: %d\n", r, snap.Counts[r])
	}
	for _, p := range snap.Permanents {
		fmt.Fprintf(w, "permanent: %s\n", p)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "# Rooms")
	est.ForEachRoom(func(p world.Position, room *entities.Room) {
		fmt.Fprintf(w, "%s %s [%s] visited=%t doors: %s\n", p, room.Name, room.Color, room.Visited, doorSummary(room))
	})

	if g.Pending != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "# Draft for %s (%s)\n", g.Pending.Target, g.Pending.Direction)
		for i, r := range g.Pending.Options {
			fmt.Fprintf(w, "%d: %s\n", i+1, r)
		}
	}
	return w.Flush()
}

// DumpEstateToFile writes DumpEstate output to MapDumpFilename in dir and
// returns the path written.
func DumpEstateToFile(g *state.Game, dir string) (string, error) {
	path := filepath.Join(dir, MapDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}

	if err := DumpEstate(f, g); err != nil {
		f.Close()
		return "", fmt.Errorf("write map dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close map dump: %w", err)
	}
	return path, nil
}
