package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdeck/internal/draft"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

// rowItem adapts model.Item to bubbles/list.Item
type rowItem struct {
	it model.Item
}

func (r rowItem) FilterValue() string { return view.SearchText(r.it) }

// rowDelegate renders one item per line, or the inline editor for the row
// being edited.
type rowDelegate struct {
	edit *rowEditor
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(rowItem)
	if !ok {
		return
	}
	t := ui.Current()

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	if d.edit != nil && d.edit.editor.Editing() && d.edit.editor.ID() == r.it.ID {
		fmt.Fprint(w, prefix+d.edit.View())
		return
	}
	fmt.Fprint(w, prefix+renderRow(r.it))
}

func renderRow(it model.Item) string {
	t := ui.Current()
	box := t.Muted.Render(t.BoxUnchecked)
	name := t.Text.Render(it.Name)
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
		name = t.Done.Render(it.Name)
	}
	parts := []string{box + " " + name, ui.Pill(string(it.Category)), ui.Pill(string(it.Priority))}
	for _, tag := range it.Tags {
		parts = append(parts, t.Accent.Render("#"+tag))
	}
	return strings.Join(parts, " ")
}

type editField int

const (
	editName editField = iota
	editCategory
	editPriority
	editTags
	editFieldCount
)

// rowEditor binds a draft.Editor to text inputs for the fields that are typed.
type rowEditor struct {
	editor *draft.Editor
	field  editField
	name   textinput.Model
	tags   textinput.Model
}

func newRowEditor(it model.Item) *rowEditor {
	r := &rowEditor{editor: draft.NewEditor(it)}
	r.name = textinput.New()
	r.name.Prompt = ""
	r.name.Placeholder = "Name"
	r.name.CharLimit = 200
	r.name.Width = 24
	r.tags = textinput.New()
	r.tags.Prompt = ""
	r.tags.Placeholder = "comma,separated,tags"
	r.tags.CharLimit = 200
	r.tags.Width = 24
	return r
}

func (r *rowEditor) begin() tea.Cmd {
	r.editor.Begin()
	r.field = editName
	r.load()
	return r.focus()
}

// load copies the draft into the inputs.
func (r *rowEditor) load() {
	d := r.editor.Draft()
	r.name.SetValue(d.Name)
	r.name.CursorEnd()
	r.tags.SetValue(r.editor.TagsText())
	r.tags.CursorEnd()
}

// sync forwards an external change of the item and reloads the inputs when
// the draft was reset.
func (r *rowEditor) sync(it model.Item) {
	before := r.editor.Committed()
	r.editor.Sync(it)
	if !before.Equal(r.editor.Committed()) {
		r.load()
	}
}

func (r *rowEditor) focus() tea.Cmd {
	r.name.Blur()
	r.tags.Blur()
	switch r.field {
	case editName:
		return r.name.Focus()
	case editTags:
		return r.tags.Focus()
	}
	return nil
}

func (r *rowEditor) move(step int) tea.Cmd {
	n := int(editFieldCount)
	r.field = editField((int(r.field) + step + n) % n)
	return r.focus()
}

func (r *rowEditor) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return r.move(1)
	case "shift+tab":
		return r.move(-1)
	}

	d := r.editor.Draft()
	switch r.field {
	case editCategory:
		switch msg.String() {
		case "left", "h":
			r.editor.SetCategory(model.CycleCategory(model.Categories(), d.Category, -1))
		case "right", "l", " ":
			r.editor.SetCategory(model.CycleCategory(model.Categories(), d.Category, 1))
		}
		return nil
	case editPriority:
		switch msg.String() {
		case "left", "h":
			r.editor.SetPriority(d.Priority.Prev())
		case "right", "l", " ":
			r.editor.SetPriority(d.Priority.Next())
		}
		return nil
	case editTags:
		var cmd tea.Cmd
		r.tags, cmd = r.tags.Update(msg)
		r.editor.SetTagsText(r.tags.Value())
		return cmd
	default:
		var cmd tea.Cmd
		r.name, cmd = r.name.Update(msg)
		r.editor.SetName(r.name.Value())
		return cmd
	}
}

func (r *rowEditor) View() string {
	t := ui.Current()
	d := r.editor.Draft()
	label := func(f editField, s string) string {
		if r.field == f {
			return t.Selected.Render(s)
		}
		return t.Muted.Render(s)
	}
	return strings.Join([]string{
		label(editName, "name:") + " " + r.name.View(),
		label(editCategory, "‹"+string(d.Category)+"›"),
		label(editPriority, "‹"+string(d.Priority)+"›"),
		label(editTags, "tags:") + " " + r.tags.View(),
	}, "  ")
}
