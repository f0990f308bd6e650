package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Item is anything that can lie on the floor of a room.
// Rooms hold items by identity but look them up by name.
type Item interface {
	Name() string
	String() string
}

// Weighted is implemented by items that have a weight.
type Weighted interface {
	Weight() int
}

// ItemSet is a set of items
type ItemSet = mapset.Set[Item]

// NewItemSet creates an empty item set
func NewItemSet() ItemSet {
	return mapset.New[Item]()
}

// Tool is a collectible item with a name and a weight in kg
type Tool struct {
	name   string
	weight int
}

// NewTool creates a new tool with the given name and weight
func NewTool(name string, weight int) *Tool {
	return &Tool{name: name, weight: weight}
}

// Name returns the tool's name
func (t *Tool) Name() string {
	return t.name
}

// Weight returns the tool's weight in kg
func (t *Tool) Weight() int {
	return t.weight
}

func (t *Tool) String() string {
	return fmt.Sprintf("%s (%dkg)", t.name, t.weight)
}

// WeightOf returns the weight of an item, or 0 if it has none.
func WeightOf(item Item) int {
	if w, ok := item.(Weighted); ok {
		return w.Weight()
	}
	return 0
}
