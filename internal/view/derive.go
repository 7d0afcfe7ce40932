package view

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

// SortKey selects the comparator Derive applies last.
type SortKey string

const (
	SortRecent   SortKey = "recent"
	SortPriority SortKey = "priority"
	SortName     SortKey = "name"
)

func SortKeys() []SortKey {
	return []SortKey{SortRecent, SortPriority, SortName}
}

func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys() {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q (want recent, priority or name)", s)
}

// Next cycles recent -> priority -> name -> recent.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	for i, x := range keys {
		if x == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return SortRecent
}

func (k SortKey) Label() string {
	switch k {
	case SortPriority:
		return "Priority"
	case SortName:
		return "Name"
	default:
		return "Recent"
	}
}

// Query is everything the list view is derived from besides the items.
type Query struct {
	Text     string
	Category model.Category
	Sort     SortKey
	OnlyOpen bool
}

// SearchText is the lower-cased haystack a query is matched against.
func SearchText(it model.Item) string {
	parts := make([]string, 0, 3+len(it.Tags))
	parts = append(parts, it.Name, string(it.Category), string(it.Priority))
	parts = append(parts, it.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether it contains the trimmed, lower-cased text.
func Matches(it model.Item, text string) bool {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return true
	}
	return strings.Contains(SearchText(it), q)
}

// Derive filters by text, then category, then open-only, and sorts last.
// The result is a new slice; ties keep collection order.
func Derive(items []model.Item, q Query) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !Matches(it, q.Text) {
			continue
		}
		if q.Category != "" && q.Category != model.CategoryAll && it.Category != q.Category {
			continue
		}
		if q.OnlyOpen && it.Done {
			continue
		}
		out = append(out, it)
	}
	slices.SortStableFunc(out, comparator(q.Sort))
	return out
}

func comparator(k SortKey) func(a, b model.Item) int {
	switch k {
	case SortPriority:
		return func(a, b model.Item) int { return b.Priority.Rank() - a.Priority.Rank() }
	case SortName:
		col := collate.New(language.English)
		return func(a, b model.Item) int { return col.CompareString(a.Name, b.Name) }
	default:
		return func(a, b model.Item) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
}

// CompareNames orders names the way the name sort does.
func CompareNames(a, b string) int {
	return collate.New(language.English).CompareString(a, b)
}
