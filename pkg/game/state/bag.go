package state

import (
	"fmt"
	"slices"
	"strings"

	"diadia/pkg/engine/world"
)

// DefaultBagMaxWeight is the default weight limit of the player's bag in kg
const DefaultBagMaxWeight = 10

// Bag is what the player carries. It is limited by total weight, not count.
type Bag struct {
	items     world.ItemSet
	maxWeight int
}

// NewBag creates an empty bag that can carry up to maxWeight kg
func NewBag(maxWeight int) *Bag {
	return &Bag{
		items:     world.NewItemSet(),
		maxWeight: maxWeight,
	}
}

// MaxWeight returns the weight limit in kg
func (b *Bag) MaxWeight() int {
	return b.maxWeight
}

// Weight returns the total weight of the items in the bag
func (b *Bag) Weight() int {
	total := 0
	b.items.Each(func(item world.Item) {
		total += world.WeightOf(item)
	})
	return total
}

// CanCarry reports whether item fits in the bag without exceeding the limit
func (b *Bag) CanCarry(item world.Item) bool {
	return b.Weight()+world.WeightOf(item) <= b.maxWeight
}

// Add puts an item in the bag. It returns false if the item is too heavy.
func (b *Bag) Add(item world.Item) bool {
	if b.items.Has(item) {
		return true
	}
	if !b.CanCarry(item) {
		return false
	}
	b.items.Put(item)
	return true
}

// Item returns an item with the given name, or nil
func (b *Bag) Item(name string) world.Item {
	var match world.Item
	b.items.Each(func(item world.Item) {
		if item.Name() == name {
			match = item
		}
	})
	return match
}

// Has returns true if the bag holds an item with the given name
func (b *Bag) Has(name string) bool {
	return b.Item(name) != nil
}

// Remove takes the item with the given name out of the bag and returns it,
// or nil if there is no such item.
func (b *Bag) Remove(name string) world.Item {
	item := b.Item(name)
	if item != nil {
		b.items.Remove(item)
	}
	return item
}

// Size returns the number of items in the bag
func (b *Bag) Size() int {
	return b.items.Size()
}

func (b *Bag) String() string {
	if b.items.Size() == 0 {
		return fmt.Sprintf("(0/%dkg)", b.maxWeight)
	}
	var texts []string
	b.items.Each(func(item world.Item) {
		texts = append(texts, item.String())
	})
	slices.Sort(texts)
	return fmt.Sprintf("(%d/%dkg) %s", b.Weight(), b.maxWeight, strings.Join(texts, " "))
}
