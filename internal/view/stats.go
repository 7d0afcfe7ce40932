package view

import "github.com/Makepad-fr/itemdeck/internal/model"

// Stats summarises the full, unfiltered collection.
type Stats struct {
	Total      int
	Open       int
	Done       int
	ByCategory map[model.Category]int
}

// Compute counts items by status and by category. Every real category has
// an entry, zero included; All never does.
func Compute(items []model.Item) Stats {
	s := Stats{ByCategory: make(map[model.Category]int, len(model.Categories()))}
	for _, c := range model.Categories() {
		s.ByCategory[c] = 0
	}
	for _, it := range items {
		s.Total++
		if !it.Done {
			s.Open++
		}
		if _, ok := s.ByCategory[it.Category]; ok {
			s.ByCategory[it.Category]++
		}
	}
	s.Done = s.Total - s.Open
	return s
}
