package model

import "time"

// Seed is the starter collection used when nothing has been stored yet.
func Seed(now time.Time) []Item {
	day := 24 * time.Hour
	return []Item{
		{ID: 1, Name: "Alpha", Category: CategoryTodo, Priority: PriorityHigh, Tags: []string{"core", "v1"}, CreatedAt: now.Add(-3 * day)},
		{ID: 2, Name: "Beta", Category: CategoryBug, Priority: PriorityMedium, Tags: []string{"ui"}, Done: true, CreatedAt: now.Add(-10 * day)},
		{ID: 3, Name: "Gamma", Category: CategoryFeature, Priority: PriorityLow, Tags: []string{"api", "v2"}, CreatedAt: now.Add(-6 * time.Hour)},
		{ID: 4, Name: "Delta", Category: CategoryFeature, Priority: PriorityHigh, Tags: []string{"perf"}, CreatedAt: now.Add(-1 * day)},
		{ID: 5, Name: "Epsilon", Category: CategoryBug, Priority: PriorityHigh, Tags: []string{"backend"}, Done: true, CreatedAt: now.Add(-48 * time.Hour)},
	}
}
