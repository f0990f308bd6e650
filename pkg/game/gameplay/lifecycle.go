package gameplay

import (
	"fmt"

	"diadia/pkg/game/labyrinth"
	"diadia/pkg/game/state"
)

// BuildGame creates a new game on a labyrinth made by gen
func BuildGame(gen labyrinth.Generator, cfu, bagMaxWeight int) (*state.Game, error) {
	lab, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate %s labyrinth: %w", gen.Name(), err)
	}

	g := state.NewGame(lab, cfu, bagMaxWeight)
	logMessage(g, "WELCOME")
	return g, nil
}
