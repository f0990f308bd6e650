// Package world provides the room and item primitives of the game world.
package world

import (
	"iter"
	"maps"
	"slices"
	"strings"

	g "github.com/zyedidia/generic"
)

const (
	// MaxItems is the number of items a room can hold at once.
	MaxItems = 10
	// MaxDirections is the number of exits a room is expected to have.
	// It is not enforced.
	MaxDirections = 4
)

// Room is a named place in the world. It holds up to MaxItems items and
// links to adjacent rooms by direction label.
//
// Two rooms are the same room if they have the same name, regardless of
// their contents or exits.
//
// Items, AdjacencyMap and Directions return live views of the room's state,
// not copies: changes made through them change the room.
type Room struct {
	name     string
	items    ItemSet
	adjacent map[string]*Room
}

// NewRoom creates a room with no items and no exits
func NewRoom(name string) *Room {
	return &Room{
		name:     name,
		items:    NewItemSet(),
		adjacent: make(map[string]*Room),
	}
}

// SetAdjacentRoom links room in the given direction, replacing any room
// already linked there.
func (r *Room) SetAdjacentRoom(direction string, room *Room) {
	r.adjacent[direction] = room
}

// AdjacentRoom returns the room in the given direction, or nil if there is none
func (r *Room) AdjacentRoom(direction string) *Room {
	return r.adjacent[direction]
}

// Name returns the room's name
func (r *Room) Name() string {
	return r.name
}

// Description returns the room's description. It is the same text as String.
func (r *Room) Description() string {
	return r.String()
}

// AdjacencyMap returns the room's exits. The map is the room's own.
func (r *Room) AdjacencyMap() map[string]*Room {
	return r.adjacent
}

// Items returns the room's items. The set is the room's own.
func (r *Room) Items() ItemSet {
	return r.items
}

// AddItem puts an item in the room. It returns false, leaving the room
// untouched, if the room already holds MaxItems items. Adding an item that
// is already in the room changes nothing and reports true.
func (r *Room) AddItem(item Item) bool {
	if r.items.Size() >= MaxItems {
		return false
	}
	r.items.Put(item)
	return true
}

// RemoveItem takes the given item out of the room and reports whether it
// was there. The item is matched by identity, not by name.
func (r *Room) RemoveItem(item Item) bool {
	if !r.items.Has(item) {
		return false
	}
	r.items.Remove(item)
	return true
}

// HasItem returns true if the room holds an item with the given name
func (r *Room) HasItem(name string) bool {
	found := false
	r.items.Each(func(item Item) {
		if item != nil && item.Name() == name {
			found = true
		}
	})
	return found
}

// Item returns an item with the given name, or nil if there is none.
// If several items share the name, which one is returned is unspecified.
func (r *Room) Item(name string) Item {
	var match Item
	r.items.Each(func(item Item) {
		if item != nil && item.Name() == name {
			match = item
		}
	})
	return match
}

// Directions iterates over the labels of the room's exits. The sequence
// reads the exits when it is ranged over, so it reflects later changes.
func (r *Room) Directions() iter.Seq[string] {
	return maps.Keys(r.adjacent)
}

// String renders the room as shown to the player: its name, its exits and
// the items on the floor. Exits and items are listed in sorted order.
func (r *Room) String() string {
	var sb strings.Builder
	sb.WriteString(r.name)
	sb.WriteString("\nUscite: ")
	for _, direction := range slices.Sorted(r.Directions()) {
		sb.WriteString(" ")
		sb.WriteString(direction)
	}
	sb.WriteString("\nAttrezzi nella stanza: ")
	for _, text := range r.itemStrings() {
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	return sb.String()
}

// itemStrings returns the string form of every non-nil item, sorted.
func (r *Room) itemStrings() []string {
	texts := make([]string, 0, r.items.Size())
	r.items.Each(func(item Item) {
		if item != nil {
			texts = append(texts, item.String())
		}
	})
	slices.Sort(texts)
	return texts
}

// Equal reports whether other is a room with the same name.
// other must be a non-nil *Room; anything else panics.
func (r *Room) Equal(other any) bool {
	that := other.(*Room)
	return r.name == that.name
}

// Hash returns a hash of the room's name, consistent with Equal.
func (r *Room) Hash() uint64 {
	return g.HashString(r.name)
}
