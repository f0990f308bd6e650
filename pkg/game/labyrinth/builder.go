package labyrinth

import (
	"fmt"

	"diadia/pkg/engine/world"
)

// Builder assembles a labyrinth step by step. Methods can be chained; the
// first error encountered is kept and returned by Build.
type Builder struct {
	lab  *Labyrinth
	last *world.Room
	err  error
}

// NewBuilder creates a builder for an empty labyrinth
func NewBuilder() *Builder {
	return &Builder{lab: New()}
}

// AddRoom adds a room. Later calls to AddTool put tools in this room.
func (b *Builder) AddRoom(name string) *Builder {
	b.last = b.lab.Add(world.NewRoom(name))
	return b
}

// AddStartRoom adds a room and marks it as the start room
func (b *Builder) AddStartRoom(name string) *Builder {
	b.AddRoom(name)
	b.lab.SetStart(b.last)
	return b
}

// AddWinningRoom adds a room and marks it as the winning room
func (b *Builder) AddWinningRoom(name string) *Builder {
	b.AddRoom(name)
	b.lab.SetWinning(b.last)
	return b
}

// AddTool puts a tool in the most recently added room.
// Tools that do not fit are dropped.
func (b *Builder) AddTool(name string, weight int) *Builder {
	if b.last == nil {
		b.fail(fmt.Errorf("add tool %q: %w", name, ErrUnknownRoom))
		return b
	}
	b.last.AddItem(world.NewTool(name, weight))
	return b
}

// AddExit links from to to in the given direction. Both rooms must
// already have been added. The reverse exit is not created.
func (b *Builder) AddExit(from, direction, to string) *Builder {
	src, ok := b.lab.Room(from)
	if !ok {
		b.fail(fmt.Errorf("add exit %s -> %s: %q: %w", from, to, from, ErrUnknownRoom))
		return b
	}
	dst, ok := b.lab.Room(to)
	if !ok {
		b.fail(fmt.Errorf("add exit %s -> %s: %q: %w", from, to, to, ErrUnknownRoom))
		return b
	}
	src.SetAdjacentRoom(direction, dst)
	return b
}

// AddPassage links two rooms both ways: to lies in direction from from,
// and from lies in the opposite direction from to.
func (b *Builder) AddPassage(from, direction, to string) *Builder {
	return b.AddExit(from, direction, to).AddExit(to, world.Opposite(direction), from)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build returns the labyrinth, or the first error met while building it
func (b *Builder) Build() (*Labyrinth, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.lab.Start() == nil {
		return nil, ErrNoStartRoom
	}
	return b.lab, nil
}
