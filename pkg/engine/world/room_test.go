package world

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func fillRoom(t *testing.T, r *Room) []Item {
	t.Helper()
	var added []Item
	for i := 0; i < MaxItems; i++ {
		item := NewTool(fmt.Sprintf("item%d", i), 1)
		if !r.AddItem(item) {
			t.Fatalf("AddItem(%v) = false on item %d, want true", item, i)
		}
		added = append(added, item)
	}
	return added
}

func TestNewRoom_Empty(t *testing.T) {
	r := NewRoom("Atrio")
	if r.Name() != "Atrio" {
		t.Errorf("Name() = %q, want %q", r.Name(), "Atrio")
	}
	if r.Items().Size() != 0 {
		t.Errorf("Items().Size() = %d, want 0", r.Items().Size())
	}
	if len(r.AdjacencyMap()) != 0 {
		t.Errorf("len(AdjacencyMap()) = %d, want 0", len(r.AdjacencyMap()))
	}
}

func TestAddItem_RejectsBeyondCapacity(t *testing.T) {
	r := NewRoom("Magazzino")
	fillRoom(t, r)

	extra := NewTool("extra", 1)
	if r.AddItem(extra) {
		t.Error("AddItem on full room = true, want false")
	}
	if r.Items().Size() != MaxItems {
		t.Errorf("Items().Size() = %d, want %d", r.Items().Size(), MaxItems)
	}
	if r.HasItem("extra") {
		t.Error("HasItem(\"extra\") = true after rejected add, want false")
	}
}

func TestAddItem_SameItemTwice(t *testing.T) {
	r := NewRoom("Atrio")
	osso := NewTool("osso", 1)
	r.AddItem(osso)
	if !r.AddItem(osso) {
		t.Error("AddItem(same item) = false, want true")
	}
	if r.Items().Size() != 1 {
		t.Errorf("Items().Size() = %d, want 1", r.Items().Size())
	}
}

func TestAddItem_SameItemOnFullRoom(t *testing.T) {
	r := NewRoom("Atrio")
	added := fillRoom(t, r)
	if r.AddItem(added[0]) {
		t.Error("AddItem(present item) on full room = true, want false")
	}
}

func TestRemoveItem_AfterAdd(t *testing.T) {
	r := NewRoom("Atrio")
	lampada := NewTool("lampada", 3)
	r.AddItem(lampada)

	if !r.RemoveItem(lampada) {
		t.Fatal("RemoveItem(lampada) = false, want true")
	}
	if r.Items().Has(lampada) {
		t.Error("Items() still contains lampada after RemoveItem")
	}
	if r.RemoveItem(lampada) {
		t.Error("second RemoveItem(lampada) = true, want false")
	}
}

func TestRemoveItem_MatchesByIdentityNotName(t *testing.T) {
	r := NewRoom("Atrio")
	r.AddItem(NewTool("lampada", 3))

	if r.RemoveItem(NewTool("lampada", 3)) {
		t.Error("RemoveItem(other lampada) = true, want false")
	}
	if !r.HasItem("lampada") {
		t.Error("HasItem(\"lampada\") = false, want true")
	}
}

func TestRemoveItem_FreesCapacity(t *testing.T) {
	r := NewRoom("Atrio")
	added := fillRoom(t, r)
	r.RemoveItem(added[3])
	if !r.AddItem(NewTool("new", 1)) {
		t.Error("AddItem after RemoveItem on full room = false, want true")
	}
}

func TestHasItem(t *testing.T) {
	r := NewRoom("Atrio")
	if r.HasItem("osso") {
		t.Error("HasItem on empty room = true, want false")
	}

	r.AddItem(NewTool("osso", 1))
	if !r.HasItem("osso") {
		t.Error("HasItem(\"osso\") = false, want true")
	}
	if r.HasItem("lanterna") {
		t.Error("HasItem(\"lanterna\") = true, want false")
	}
}

func TestHasItem_SkipsNilItems(t *testing.T) {
	r := NewRoom("Atrio")
	r.AddItem(nil)
	r.AddItem(NewTool("osso", 1))

	if !r.HasItem("osso") {
		t.Error("HasItem(\"osso\") = false, want true")
	}
	if r.Item("missing") != nil {
		t.Error("Item(\"missing\") != nil, want nil")
	}
}

func TestItem(t *testing.T) {
	r := NewRoom("Atrio")
	osso := NewTool("osso", 1)
	r.AddItem(osso)
	r.AddItem(NewTool("lanterna", 3))

	if got := r.Item("osso"); got != osso {
		t.Errorf("Item(\"osso\") = %v, want %v", got, osso)
	}
	if got := r.Item("chiave"); got != nil {
		t.Errorf("Item(\"chiave\") = %v, want nil", got)
	}
}

func TestItem_DuplicateNames(t *testing.T) {
	r := NewRoom("Atrio")
	a := NewTool("osso", 1)
	b := NewTool("osso", 2)
	r.AddItem(a)
	r.AddItem(b)

	// Either may win.
	got := r.Item("osso")
	if got != a && got != b {
		t.Errorf("Item(\"osso\") = %v, want one of %v, %v", got, a, b)
	}
}

func TestItems_IsLive(t *testing.T) {
	r := NewRoom("Atrio")
	osso := NewTool("osso", 1)
	r.Items().Put(osso)

	if !r.HasItem("osso") {
		t.Error("item put through Items() not visible in room")
	}
}

func TestSetAdjacentRoom_Overwrites(t *testing.T) {
	r := NewRoom("Atrio")
	a := NewRoom("Biblioteca")
	b := NewRoom("Aula N11")

	r.SetAdjacentRoom(North, a)
	if got := r.AdjacentRoom(North); got != a {
		t.Errorf("AdjacentRoom(North) = %v, want %v", got, a)
	}

	r.SetAdjacentRoom(North, b)
	if got := r.AdjacentRoom(North); got != b {
		t.Errorf("AdjacentRoom(North) = %v, want %v", got, b)
	}
	if len(r.AdjacencyMap()) != 1 {
		t.Errorf("len(AdjacencyMap()) = %d, want 1", len(r.AdjacencyMap()))
	}
}

func TestAdjacentRoom_Missing(t *testing.T) {
	r := NewRoom("Atrio")
	if got := r.AdjacentRoom(East); got != nil {
		t.Errorf("AdjacentRoom(East) = %v, want nil", got)
	}
}

func TestSetAdjacentRoom_DoesNotCapDirections(t *testing.T) {
	r := NewRoom("Crocevia")
	for _, dir := range []string{North, South, East, West, "su", "giu"} {
		r.SetAdjacentRoom(dir, NewRoom(dir))
	}
	if len(r.AdjacencyMap()) != 6 {
		t.Errorf("len(AdjacencyMap()) = %d, want 6", len(r.AdjacencyMap()))
	}
}

func TestAdjacencyMap_IsLive(t *testing.T) {
	r := NewRoom("Atrio")
	r.SetAdjacentRoom(North, NewRoom("Biblioteca"))

	delete(r.AdjacencyMap(), North)
	if r.AdjacentRoom(North) != nil {
		t.Error("exit deleted through AdjacencyMap() still present")
	}
}

func TestDirections_ReflectLaterChanges(t *testing.T) {
	r := NewRoom("Atrio")
	dirs := r.Directions()
	r.SetAdjacentRoom(South, NewRoom("Aula N10"))
	r.SetAdjacentRoom(North, NewRoom("Biblioteca"))

	got := slices.Sorted(dirs)
	want := []string{North, South}
	if !slices.Equal(got, want) {
		t.Errorf("Directions() = %v, want %v", got, want)
	}
}

func TestString_EmptyRoom(t *testing.T) {
	r := NewRoom("Biblioteca")
	want := "Biblioteca\nUscite: \nAttrezzi nella stanza: "
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestString_ExitsAndItems(t *testing.T) {
	r := NewRoom("Atrio")
	r.SetAdjacentRoom(South, NewRoom("Aula N10"))
	r.SetAdjacentRoom(North, NewRoom("Biblioteca"))
	r.AddItem(NewTool("lampada", 3))

	want := "Atrio\nUscite:  nord sud\nAttrezzi nella stanza: lampada (3kg) "
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDescription_MatchesString(t *testing.T) {
	r := NewRoom("Atrio")
	r.SetAdjacentRoom(North, NewRoom("B"))
	r.SetAdjacentRoom(South, NewRoom("C"))
	lampada := NewTool("lampada", 3)
	r.AddItem(lampada)

	desc := r.Description()
	if desc != r.String() {
		t.Errorf("Description() = %q, want String() = %q", desc, r.String())
	}
	for _, part := range []string{"Atrio", North, South} {
		if !strings.Contains(desc, part) {
			t.Errorf("Description() = %q, missing %q", desc, part)
		}
	}
	if n := strings.Count(desc, lampada.String()); n != 1 {
		t.Errorf("Description() contains %q %d times, want 1", lampada.String(), n)
	}
}

func TestString_IsStable(t *testing.T) {
	r := NewRoom("Atrio")
	for _, dir := range AllDirections() {
		r.SetAdjacentRoom(dir, NewRoom(dir))
	}
	for i := 0; i < 5; i++ {
		r.AddItem(NewTool(fmt.Sprintf("t%d", i), i))
	}
	first := r.String()
	for i := 0; i < 20; i++ {
		if got := r.String(); got != first {
			t.Fatalf("String() = %q, want %q", got, first)
		}
	}
}

func TestEqual_ByName(t *testing.T) {
	a := NewRoom("Atrio")
	b := NewRoom("Atrio")
	b.AddItem(NewTool("osso", 1))
	b.SetAdjacentRoom(North, NewRoom("Biblioteca"))

	if !a.Equal(b) {
		t.Error("Equal(room with same name) = false, want true")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash() = %d and %d, want equal", a.Hash(), b.Hash())
	}
	if a.Equal(NewRoom("Cucina")) {
		t.Error("Equal(Cucina) = true, want false")
	}
}

func TestEqual_PanicsOnNonRoom(t *testing.T) {
	tests := []struct {
		name  string
		other any
	}{
		{"string", "Atrio"},
		{"tool", NewTool("Atrio", 1)},
		{"nil", nil},
		{"nil room", (*Room)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Equal(%v) did not panic", tt.other)
				}
			}()
			NewRoom("Atrio").Equal(tt.other)
		})
	}
}
