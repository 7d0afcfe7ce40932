package draft

import (
	"strings"

	"github.com/Makepad-fr/itemdeck/internal/model"
)

// Editor holds the committed item next to an in-progress draft.
type Editor struct {
	committed model.Item
	draft     model.Item
	editing   bool
}

func NewEditor(it model.Item) *Editor {
	return &Editor{committed: it.Clone(), draft: it.Clone()}
}

func (e *Editor) Editing() bool         { return e.editing }
func (e *Editor) ID() int               { return e.committed.ID }
func (e *Editor) Committed() model.Item { return e.committed }
func (e *Editor) Draft() model.Item     { return e.draft }

// Begin seeds the draft from the committed item and enters edit mode.
func (e *Editor) Begin() {
	e.draft = e.committed.Clone()
	e.editing = true
}

// Sync reports an external change to the item. A different value replaces
// both slots and throws the draft away.
func (e *Editor) Sync(it model.Item) {
	if it.Equal(e.committed) {
		return
	}
	e.committed = it.Clone()
	e.draft = it.Clone()
}

func (e *Editor) SetName(name string)          { e.draft.Name = name }
func (e *Editor) SetCategory(c model.Category) { e.draft.Category = c }
func (e *Editor) SetPriority(p model.Priority) { e.draft.Priority = p }

// SetTagsText splits on commas and trims; empty entries stay until Commit.
func (e *Editor) SetTagsText(raw string) { e.draft.Tags = model.SplitTags(raw) }

func (e *Editor) TagsText() string { return strings.Join(e.draft.Tags, ",") }

// Commit leaves edit mode and returns the draft with empty tags removed.
// The caller applies it to the collection.
func (e *Editor) Commit() model.Item {
	out := e.draft.Clone()
	out.Tags = model.CleanTags(out.Tags)
	e.committed = out.Clone()
	e.draft = out.Clone()
	e.editing = false
	return out
}

// Discard leaves edit mode without touching the collection.
func (e *Editor) Discard() {
	e.draft = e.committed.Clone()
	e.editing = false
}
