// Package labyrinth holds the set of rooms that make up a game map.
package labyrinth

import (
	"errors"
	"slices"
	"strings"

	"github.com/zyedidia/generic/hashmap"

	"diadia/pkg/engine/world"
)

var (
	// ErrUnknownRoom is returned when an exit names a room that was never added.
	ErrUnknownRoom = errors.New("unknown room")
	// ErrNoStartRoom is returned when a labyrinth is built without a start room.
	ErrNoStartRoom = errors.New("no start room")
)

// Labyrinth is a set of linked rooms with a start and a winning room.
// Rooms are keyed by name: adding a second room with an existing name
// returns the room already registered.
type Labyrinth struct {
	rooms   *hashmap.Map[*world.Room, *world.Room]
	start   *world.Room
	winning *world.Room
}

func roomEquals(a, b *world.Room) bool {
	return a.Equal(b)
}

func roomHash(r *world.Room) uint64 {
	return r.Hash()
}

// New creates an empty labyrinth
func New() *Labyrinth {
	return &Labyrinth{
		rooms: hashmap.New[*world.Room, *world.Room](8, roomEquals, roomHash),
	}
}

// Add registers a room and returns the registered room with that name,
// which is room itself unless one was already there.
func (l *Labyrinth) Add(room *world.Room) *world.Room {
	if existing, ok := l.rooms.Get(room); ok {
		return existing
	}
	l.rooms.Put(room, room)
	return room
}

// Room returns the room with the given name
func (l *Labyrinth) Room(name string) (*world.Room, bool) {
	return l.rooms.Get(world.NewRoom(name))
}

// Rooms returns all rooms sorted by name
func (l *Labyrinth) Rooms() []*world.Room {
	rooms := make([]*world.Room, 0, l.rooms.Size())
	l.rooms.Each(func(_ *world.Room, room *world.Room) {
		rooms = append(rooms, room)
	})
	slices.SortFunc(rooms, func(a, b *world.Room) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return rooms
}

// Size returns the number of rooms
func (l *Labyrinth) Size() int {
	return l.rooms.Size()
}

// Start returns the room the player starts in
func (l *Labyrinth) Start() *world.Room {
	return l.start
}

// Winning returns the room the player must reach
func (l *Labyrinth) Winning() *world.Room {
	return l.winning
}

// SetStart registers room and makes it the start room
func (l *Labyrinth) SetStart(room *world.Room) {
	l.start = l.Add(room)
}

// SetWinning registers room and makes it the winning room
func (l *Labyrinth) SetWinning(room *world.Room) {
	l.winning = l.Add(room)
}
