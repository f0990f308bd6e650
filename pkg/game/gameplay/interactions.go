package gameplay

import (
	"diadia/pkg/game/state"
)

// Take moves the named item from the current room into the player's bag.
// It returns false if the item is not in the room or is too heavy to carry.
func Take(g *state.Game, name string) bool {
	if name == "" {
		logMessage(g, "ITEM_REQUIRED")
		return false
	}

	room := g.CurrentRoom
	item := room.Item(name)
	if item == nil {
		logMessage(g, "ITEM_NOT_HERE", name)
		return false
	}

	if !g.Bag.CanCarry(item) {
		logMessage(g, "BAG_TOO_HEAVY", name)
		return false
	}

	room.RemoveItem(item)
	g.Bag.Add(item)
	logMessage(g, "TOOK_ITEM", name)
	return true
}

// Drop moves the named item from the player's bag into the current room.
// If the room is full the item stays in the bag.
func Drop(g *state.Game, name string) bool {
	if name == "" {
		logMessage(g, "ITEM_REQUIRED")
		return false
	}

	item := g.Bag.Remove(name)
	if item == nil {
		logMessage(g, "ITEM_NOT_IN_BAG", name)
		return false
	}

	if !g.CurrentRoom.AddItem(item) {
		g.Bag.Add(item)
		logMessage(g, "ROOM_FULL", name)
		return false
	}

	logMessage(g, "DROPPED_ITEM", name)
	return true
}
