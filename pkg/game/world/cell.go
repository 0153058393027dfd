// Package world extends the generic engine/world grid with the manor's rooms.
package world

import (
	"manor/pkg/engine/world"
	"manor/pkg/game/entities"
)

// GameCellData holds game-specific entity references for a cell.
// This is stored in the engine Cell's GameData field.
type GameCellData struct {
	Room *entities.Room // Placed room (nil while undiscovered)
}

// InitGameData initializes game data for a cell if not already set
func InitGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{}
	}
	return cell.GameData.(*GameCellData)
}

// GetGameData retrieves game data from a cell, initializing if needed
func GetGameData(cell *world.Cell) *GameCellData {
	return InitGameData(cell)
}

// HasRoom returns true if a room has been placed in this cell
func HasRoom(cell *world.Cell) bool {
	return cell != nil && GetGameData(cell).Room != nil
}
