package view

import "github.com/Makepad-fr/itemdeck/internal/model"

// Memo caches the last Derive result keyed by collection revision and query.
type Memo struct {
	valid    bool
	revision uint64
	query    Query
	out      []model.Item
}

// Derive returns the cached view when revision and q are unchanged.
func (m *Memo) Derive(revision uint64, items []model.Item, q Query) []model.Item {
	if m.valid && m.revision == revision && m.query == q {
		return m.out
	}
	m.out = Derive(items, q)
	m.revision = revision
	m.query = q
	m.valid = true
	return m.out
}

// Reset forces the next Derive to recompute.
func (m *Memo) Reset() { m.valid = false }
