package labyrinth

import "diadia/pkg/engine/world"

// Generator is an interface for labyrinth layouts
type Generator interface {
	Generate() (*Labyrinth, error)
	Name() string
}

// Available generators
var (
	Classic = &ClassicGenerator{}
)

// DefaultGenerator is the default labyrinth generator
var DefaultGenerator Generator = Classic

// ClassicGenerator builds the standard university map
type ClassicGenerator struct{}

// Name returns the generator name
func (c *ClassicGenerator) Name() string {
	return "Classic"
}

// Generate builds the map. Exits are one-way and do not always lead back
// the way they came.
func (c *ClassicGenerator) Generate() (*Labyrinth, error) {
	return NewBuilder().
		AddStartRoom("Atrio").
		AddTool("osso", 1).
		AddRoom("Aula N11").
		AddRoom("Aula N10").
		AddTool("lanterna", 3).
		AddRoom("Laboratorio Campus").
		AddWinningRoom("Biblioteca").
		AddExit("Atrio", world.North, "Biblioteca").
		AddExit("Atrio", world.East, "Aula N11").
		AddExit("Atrio", world.South, "Aula N10").
		AddExit("Atrio", world.West, "Laboratorio Campus").
		AddExit("Aula N11", world.East, "Laboratorio Campus").
		AddExit("Aula N11", world.West, "Atrio").
		AddExit("Aula N10", world.North, "Atrio").
		AddExit("Aula N10", world.East, "Aula N11").
		AddExit("Aula N10", world.West, "Laboratorio Campus").
		AddExit("Laboratorio Campus", world.East, "Atrio").
		AddExit("Laboratorio Campus", world.West, "Aula N11").
		AddExit("Biblioteca", world.South, "Atrio").
		Build()
}
