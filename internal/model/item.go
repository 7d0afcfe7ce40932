package model

import (
	"strings"
	"time"
)

// Item is the domain model for one entry on the deck.
// Field names match the stored JSON shape.
type Item struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Priority  Priority  `json:"priority"`
	Tags      []string  `json:"tags"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category groups items. All is a filter sentinel, never stored on an item.
type Category string

const (
	CategoryAll     Category = "All"
	CategoryTodo    Category = "Todo"
	CategoryBug     Category = "Bug"
	CategoryFeature Category = "Feature"
)

// Categories returns the assignable categories in display order.
func Categories() []Category {
	return []Category{CategoryTodo, CategoryBug, CategoryFeature}
}

// FilterCategories is Categories with the All sentinel in front.
func FilterCategories() []Category {
	return append([]Category{CategoryAll}, Categories()...)
}

// ParseCategory matches case-insensitively against FilterCategories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range FilterCategories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// Priority is ordered Low < Medium < High.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities returns the priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Rank is the index of p in Priorities, or -1 when p is unknown.
func (p Priority) Rank() int {
	for i, q := range Priorities() {
		if q == p {
			return i
		}
	}
	return -1
}

// Next and Prev cycle through Priorities, wrapping at the ends.
func (p Priority) Next() Priority {
	all := Priorities()
	return all[(p.Rank()+1+len(all))%len(all)]
}

func (p Priority) Prev() Priority {
	all := Priorities()
	i := p.Rank()
	if i < 0 {
		i = 0
	}
	return all[(i-1+len(all))%len(all)]
}

func ParsePriority(s string) (Priority, bool) {
	for _, p := range Priorities() {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// CycleCategory steps through list starting from c. Unknown values land on list[0].
func CycleCategory(list []Category, c Category, step int) Category {
	idx := -1
	for i, x := range list {
		if x == c {
			idx = i
			break
		}
	}
	if idx < 0 {
		return list[0]
	}
	n := len(list)
	return list[((idx+step)%n+n)%n]
}

// SplitTags splits raw on commas and trims each part. Empty parts are kept.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// CleanTags drops empty entries.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a copy that shares no backing array with it.
func (it Item) Clone() Item {
	if it.Tags != nil {
		it.Tags = append([]string(nil), it.Tags...)
	}
	return it
}

// Equal compares every field, including tag order.
func (it Item) Equal(o Item) bool {
	if it.ID != o.ID || it.Name != o.Name || it.Category != o.Category ||
		it.Priority != o.Priority || it.Done != o.Done || !it.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	if len(it.Tags) != len(o.Tags) {
		return false
	}
	for i := range it.Tags {
		if it.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return true
}
