package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdeck/internal/draft"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
)

type createField int

const (
	createName createField = iota
	createCategory
	createPriority
	createTags
	createDone
	createFieldCount
)

// createDialog is the modal around a draft.Form.
type createDialog struct {
	form  *draft.Form
	field createField
	name  textinput.Model
	tags  textinput.Model
}

func newCreateDialog() *createDialog {
	c := &createDialog{form: draft.NewForm()}
	c.name = textinput.New()
	c.name.Prompt = "> "
	c.name.Placeholder = "Name"
	c.name.CharLimit = 200
	c.name.Width = 36
	c.tags = textinput.New()
	c.tags.Prompt = "> "
	c.tags.Placeholder = "Tags (comma separated)"
	c.tags.CharLimit = 200
	c.tags.Width = 36
	return c
}

func (c *createDialog) open() tea.Cmd {
	c.form.Open()
	c.field = createName
	c.name.SetValue(c.form.Name)
	c.tags.SetValue(c.form.TagsText)
	return c.focus()
}

func (c *createDialog) focus() tea.Cmd {
	c.name.Blur()
	c.tags.Blur()
	switch c.field {
	case createName:
		return c.name.Focus()
	case createTags:
		return c.tags.Focus()
	}
	return nil
}

func (c *createDialog) move(step int) tea.Cmd {
	n := int(createFieldCount)
	c.field = createField((int(c.field) + step + n) % n)
	return c.focus()
}

// update handles a key while the dialog is shown. It reports whether the
// user asked to submit.
func (c *createDialog) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return true, nil
	case "esc":
		c.form.Cancel()
		c.name.Blur()
		c.tags.Blur()
		return false, nil
	case "tab", "down":
		return false, c.move(1)
	case "shift+tab", "up":
		return false, c.move(-1)
	}

	f := c.form
	switch c.field {
	case createCategory:
		switch msg.String() {
		case "left", "h":
			f.Category = model.CycleCategory(model.Categories(), f.Category, -1)
		case "right", "l", " ":
			f.Category = model.CycleCategory(model.Categories(), f.Category, 1)
		}
	case createPriority:
		switch msg.String() {
		case "left", "h":
			f.Priority = f.Priority.Prev()
		case "right", "l", " ":
			f.Priority = f.Priority.Next()
		}
	case createDone:
		switch msg.String() {
		case " ", "x", "left", "right":
			f.Done = !f.Done
		}
	case createTags:
		var cmd tea.Cmd
		c.tags, cmd = c.tags.Update(msg)
		f.TagsText = c.tags.Value()
		return false, cmd
	default:
		var cmd tea.Cmd
		c.name, cmd = c.name.Update(msg)
		f.Name = c.name.Value()
		return false, cmd
	}
	return false, nil
}

// reset clears the inputs after a submit; the form resets itself.
func (c *createDialog) reset() {
	c.name.SetValue("")
	c.tags.SetValue("")
	c.name.Blur()
	c.tags.Blur()
}

func (c *createDialog) View(width int) string {
	t := ui.Current()
	f := c.form
	label := func(fl createField, s string) string {
		if c.field == fl {
			return t.Selected.Render(s)
		}
		return t.Muted.Render(s)
	}
	box := t.BoxUnchecked
	if f.Done {
		box = t.BoxChecked
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Create Item") + "\n\n")
	b.WriteString(label(createName, "Name") + "\n" + c.name.View() + "\n\n")
	b.WriteString(label(createCategory, "Category") + "  ‹" + string(f.Category) + "›   ")
	b.WriteString(label(createPriority, "Priority") + "  ‹" + string(f.Priority) + "›\n\n")
	b.WriteString(label(createTags, "Tags") + "\n" + c.tags.View() + "\n\n")
	b.WriteString(label(createDone, box+" Mark as done") + "\n")

	w := width
	if w > 56 {
		w = 56
	}
	if w < 30 {
		w = 30
	}
	return ui.Box().Padding(1, 2).Width(w).Render(b.String())
}
