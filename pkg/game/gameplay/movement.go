package gameplay

import (
	"diadia/pkg/game/state"
)

// Move takes the player through the exit in the given direction.
// Each move costs one CFU. It returns false if the player did not move.
func Move(g *state.Game, direction string) bool {
	if direction == "" {
		logMessage(g, "DIRECTION_REQUIRED")
		return false
	}

	next := g.CurrentRoom.AdjacentRoom(direction)
	if next == nil {
		logMessage(g, "NO_EXIT", direction)
		return false
	}

	g.CurrentRoom = next
	g.CFU--
	logMessage(g, "ENTERED_ROOM", next.Name())

	checkEndOfGame(g)
	return true
}

// checkEndOfGame finishes the game if the player has won or run out of CFU.
// Reaching the winning room on the last CFU counts as a win.
func checkEndOfGame(g *state.Game) {
	switch {
	case g.Won():
		g.Finished = true
		logMessage(g, "YOU_WON")
	case g.Lost():
		g.Finished = true
		logMessage(g, "OUT_OF_CFU")
	}
}
