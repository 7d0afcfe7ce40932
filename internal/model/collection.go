package model

import (
	"fmt"
	"time"
)

// Collection helpers never modify their input; each returns a fresh snapshot.

// NextID is one more than the largest id, or 1 for an empty collection.
func NextID(items []Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

func Find(items []Item, id int) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Toggle flips Done on the item with the given id.
func Toggle(items []Item, id int) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Done = !it.Done
		}
		out[i] = it
	}
	return out
}

// Delete drops the first item with the given id and keeps the rest in order.
func Delete(items []Item, id int) []Item {
	out := make([]Item, 0, len(items))
	removed := false
	for _, it := range items {
		if !removed && it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out
}

// Update replaces the item sharing patch's id with patch.
func Update(items []Item, patch Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID == patch.ID {
			it = patch.Clone()
		}
		out[i] = it
	}
	return out
}

// NewItem is the raw input for Create.
type NewItem struct {
	Name     string
	Category Category
	Priority Priority
	TagsText string
	Done     bool
}

// Create builds an item from n, prepends it and returns the new snapshot
// together with the created item. A blank name becomes "Untitled N" where
// N is the current collection size plus one.
func Create(items []Item, n NewItem, now time.Time) ([]Item, Item) {
	name := n.Name
	if name == "" {
		name = fmt.Sprintf("Untitled %d", len(items)+1)
	}
	it := Item{
		ID:        NextID(items),
		Name:      name,
		Category:  n.Category,
		Priority:  n.Priority,
		Tags:      CleanTags(SplitTags(n.TagsText)),
		Done:      n.Done,
		CreatedAt: now,
	}
	out := make([]Item, 0, len(items)+1)
	out = append(out, it)
	out = append(out, items...)
	return out, it
}
