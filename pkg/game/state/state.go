package state

import (
	"diadia/pkg/engine/world"
	"diadia/pkg/game/labyrinth"
)

// DefaultCFU is the energy the player starts with. Every move costs one.
const DefaultCFU = 20

// Game represents the game state
type Game struct {
	Labyrinth *labyrinth.Labyrinth

	CurrentRoom *world.Room

	Bag *Bag

	CFU int

	Messages []string

	Finished bool
}

// NewGame creates a new game on the given labyrinth, starting in its start room
func NewGame(lab *labyrinth.Labyrinth, cfu, bagMaxWeight int) *Game {
	return &Game{
		Labyrinth:   lab,
		CurrentRoom: lab.Start(),
		Bag:         NewBag(bagMaxWeight),
		CFU:         cfu,
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// Won returns true if the player is in the winning room
func (g *Game) Won() bool {
	winning := g.Labyrinth.Winning()
	return winning != nil && g.CurrentRoom != nil && g.CurrentRoom.Equal(winning)
}

// Lost returns true if the player has run out of CFU
func (g *Game) Lost() bool {
	return g.CFU <= 0
}
