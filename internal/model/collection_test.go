package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func itemGen() *rapid.Generator[Item] {
	return rapid.Custom(func(t *rapid.T) Item {
		return Item{
			ID:        rapid.IntRange(1, 1000).Draw(t, "id"),
			Name:      rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(t, "name"),
			Category:  rapid.SampledFrom(Categories()).Draw(t, "category"),
			Priority:  rapid.SampledFrom(Priorities()).Draw(t, "priority"),
			Tags:      rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,6}`), 0, 3).Draw(t, "tags"),
			Done:      rapid.Bool().Draw(t, "done"),
			CreatedAt: t0.Add(time.Duration(rapid.IntRange(0, 10000).Draw(t, "age")) * time.Minute),
		}
	})
}

// itemsGen draws a non-empty collection with unique ids.
func itemsGen() *rapid.Generator[[]Item] {
	return rapid.Custom(func(t *rapid.T) []Item {
		return rapid.SliceOfNDistinct(itemGen(), 1, 12, func(it Item) int { return it.ID }).Draw(t, "items")
	})
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID(nil))
	assert.Equal(t, 6, NextID(Seed(t0)))
	assert.Equal(t, 10, NextID([]Item{{ID: 9}, {ID: 2}}))
}

func TestToggle_TwiceRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := itemsGen().Draw(t, "items")
		target := rapid.SampledFrom(items).Draw(t, "target")

		once := Toggle(items, target.ID)
		got, ok := Find(once, target.ID)
		if !ok || got.Done == target.Done {
			t.Fatalf("toggle did not flip done for id %d", target.ID)
		}
		twice := Toggle(once, target.ID)
		if len(twice) != len(items) {
			t.Fatalf("length changed: %d != %d", len(twice), len(items))
		}
		for i := range items {
			if !twice[i].Equal(items[i]) {
				t.Fatalf("item %d differs after double toggle", i)
			}
		}
	})
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	items := Seed(t0)
	_ = Toggle(items, 1)
	assert.False(t, items[0].Done)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := itemsGen().Draw(t, "items")
		idx := rapid.IntRange(0, len(items)-1).Draw(t, "idx")
		id := items[idx].ID

		out := Delete(items, id)
		if len(out) != len(items)-1 {
			t.Fatalf("expected %d items, got %d", len(items)-1, len(out))
		}
		if _, ok := Find(out, id); ok {
			t.Fatalf("id %d still present", id)
		}
		rest := append(append([]Item{}, items[:idx]...), items[idx+1:]...)
		for i := range rest {
			if rest[i].ID != out[i].ID {
				t.Fatalf("order changed at %d", i)
			}
		}
	})
}

func TestDelete_UnknownID(t *testing.T) {
	items := Seed(t0)
	out := Delete(items, 42)
	assert.Len(t, out, len(items))
}

func TestUpdate_ReplacesByID(t *testing.T) {
	items := Seed(t0)
	patch := items[2]
	patch.Name = "Gamma prime"
	patch.Tags = []string{"x"}

	out := Update(items, patch)
	require.Len(t, out, 5)
	assert.Equal(t, "Gamma prime", out[2].Name)
	assert.Equal(t, []string{"x"}, out[2].Tags)
	assert.Equal(t, "Gamma", items[2].Name, "input must be untouched")
}

func TestCreate_BlankNameAfterMaxFive(t *testing.T) {
	items := Seed(t0)
	out, it := Create(items, NewItem{Category: CategoryBug, Priority: PriorityLow, TagsText: " a, ,b ,"}, t0)

	assert.Equal(t, 6, it.ID)
	assert.Equal(t, "Untitled 6", it.Name)
	assert.Equal(t, []string{"a", "b"}, it.Tags)
	assert.True(t, it.CreatedAt.Equal(t0))
	require.Len(t, out, 6)
	assert.Equal(t, 6, out[0].ID, "new item is prepended")
	assert.Equal(t, 1, out[1].ID)
}

func TestCreate_EmptyCollection(t *testing.T) {
	out, it := Create(nil, NewItem{Name: "first", Category: CategoryTodo, Priority: PriorityMedium}, t0)
	assert.Equal(t, 1, it.ID)
	assert.Equal(t, "first", it.Name)
	assert.Empty(t, it.Tags)
	assert.Len(t, out, 1)
}

func TestCreate_PlaceholderUsesLength(t *testing.T) {
	// ids need not be dense: the placeholder follows the size, the id follows the max.
	items := []Item{{ID: 7}, {ID: 3}}
	_, it := Create(items, NewItem{}, t0)
	assert.Equal(t, 8, it.ID)
	assert.Equal(t, "Untitled 3", it.Name)
}

func TestSplitAndCleanTags(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitTags("a, ,b"))
	assert.Equal(t, []string{""}, SplitTags(""))
	assert.Equal(t, []string{"a", "b"}, CleanTags([]string{"a", "", "b", ""}))
}

func TestPriorityRankAndCycle(t *testing.T) {
	assert.Equal(t, 0, PriorityLow.Rank())
	assert.Equal(t, 2, PriorityHigh.Rank())
	assert.Equal(t, -1, Priority("Urgent").Rank())
	assert.Equal(t, PriorityLow, PriorityHigh.Next())
	assert.Equal(t, PriorityHigh, PriorityLow.Prev())
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("feature")
	assert.True(t, ok)
	assert.Equal(t, CategoryFeature, c)

	_, ok = ParseCategory("chore")
	assert.False(t, ok)

	assert.Equal(t, CategoryTodo, CycleCategory(FilterCategories(), CategoryAll, 1))
	assert.Equal(t, CategoryAll, CycleCategory(FilterCategories(), CategoryFeature, 1))
	assert.Equal(t, CategoryFeature, CycleCategory(Categories(), CategoryTodo, -1))
}
