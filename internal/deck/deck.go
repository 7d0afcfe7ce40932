package deck

import (
	"fmt"
	"time"

	"github.com/Makepad-fr/itemdeck/internal/config"
	"github.com/Makepad-fr/itemdeck/internal/draft"
	"github.com/Makepad-fr/itemdeck/internal/logs"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/state"
	"github.com/Makepad-fr/itemdeck/internal/store"
	"github.com/Makepad-fr/itemdeck/internal/store/jsonstore"
	"github.com/Makepad-fr/itemdeck/internal/store/sqlitestore"
)

// Storage keys for the two persisted slices.
const (
	ItemsKey = "dynamic-items"
	DarkKey  = "dynamic-dark"
)

// Deck owns the item collection and the dark-mode preference. Every
// mutation goes through a model operation and lands in a state slice.
type Deck struct {
	Items *state.Slice[[]model.Item]
	Dark  *state.Slice[bool]

	st  store.Store
	now func() time.Time
}

// OpenStore builds the configured backend. A backend that cannot be opened
// is logged and replaced by an in-memory store for the session.
func OpenStore(cfg *config.Config) store.Store {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemory()
	case config.BackendSQLite:
		st, err = sqlitestore.Open(cfg.SQLitePath())
	default:
		st, err = jsonstore.New(cfg.Store.Path)
	}
	if err != nil {
		logs.Logger.Printf("storage unavailable (%s): %v; state is session-only", cfg.Store.Backend, err)
		return store.NewMemory()
	}
	return st
}

// New loads both slices from st.
func New(st store.Store, now func() time.Time) *Deck {
	if now == nil {
		now = time.Now
	}
	d := &Deck{
		Items: state.Open(st, ItemsKey, model.Seed(now())),
		Dark:  state.Open(st, DarkKey, false),
		st:    st,
		now:   now,
	}
	d.Items.Subscribe(func(items []model.Item) {
		logs.Logger.Printf("items changed (rev %d, %d items)", d.Items.Revision(), len(items))
	})
	d.Dark.Subscribe(func(on bool) {
		logs.Logger.Printf("dark mode: %v", on)
	})
	return d
}

// Open is OpenStore followed by New with the wall clock.
func Open(cfg *config.Config) *Deck {
	return New(OpenStore(cfg), time.Now)
}

func (d *Deck) Close() error {
	if d.st == nil {
		return nil
	}
	return d.st.Close()
}

func (d *Deck) Now() time.Time { return d.now() }

func (d *Deck) Toggle(id int) error {
	if _, ok := model.Find(d.Items.Get(), id); !ok {
		return fmt.Errorf("no item with id %d", id)
	}
	d.Items.Update(func(items []model.Item) []model.Item { return model.Toggle(items, id) })
	return nil
}

func (d *Deck) Delete(id int) error {
	if _, ok := model.Find(d.Items.Get(), id); !ok {
		return fmt.Errorf("no item with id %d", id)
	}
	d.Items.Update(func(items []model.Item) []model.Item { return model.Delete(items, id) })
	return nil
}

// Save applies a committed editor draft.
func (d *Deck) Save(e *draft.Editor) model.Item {
	patch := e.Commit()
	d.Items.Update(func(items []model.Item) []model.Item { return model.Update(items, patch) })
	return patch
}

// Submit creates an item from the form.
func (d *Deck) Submit(f *draft.Form) model.Item {
	var created model.Item
	d.Items.Update(func(items []model.Item) []model.Item {
		var out []model.Item
		out, created = f.Submit(items, d.now())
		return out
	})
	return created
}

func (d *Deck) ToggleDark() bool {
	d.Dark.Update(func(v bool) bool { return !v })
	return d.Dark.Get()
}
