package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/itemdeck/internal/deck"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/store"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

var now = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *deck.Deck) {
	t.Helper()
	d := deck.New(store.NewMemory(), func() time.Time { return now })
	return New(d), d
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// typeText sends each rune as its own key press.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, string(r))
	}
	return m
}

func visibleIDs(m Model) []int {
	var ids []int
	for _, it := range m.Visible() {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestControls(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, visibleIDs(m))

	m = press(m, "c", "c") // All -> Todo -> Bug
	assert.Equal(t, model.CategoryBug, m.query.Category)
	assert.Equal(t, []int{5, 2}, visibleIDs(m))

	m = press(m, "c", "c") // Feature -> All
	m = press(m, "o")
	assert.Equal(t, []int{3, 4, 1}, visibleIDs(m))

	m = press(m, "s")
	assert.Equal(t, view.SortPriority, m.query.Sort)
	assert.Equal(t, []int{1, 4, 3}, visibleIDs(m))

	m = press(m, "c", "c", "c") // Feature
	m = press(m, "s")
	assert.Equal(t, view.SortName, m.query.Sort)
	assert.Equal(t, []int{4, 3}, visibleIDs(m))
}

func TestSearch(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "/")
	require.Equal(t, focusSearch, m.focus)

	m = typeText(m, "v")
	assert.Equal(t, []int{3, 1}, visibleIDs(m))

	// letters typed into the search box are not commands
	m = typeText(m, "2")
	assert.Equal(t, []int{3}, visibleIDs(m))
	assert.Equal(t, model.CategoryAll, m.query.Category)

	m = press(m, "esc")
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, "v2", m.query.Text)
}

func TestToggleAndDelete(t *testing.T) {
	m, d := newTestModel(t)
	m.list.Select(0) // Gamma, id 3

	m = press(m, " ")
	it, _ := model.Find(d.Items.Get(), 3)
	assert.True(t, it.Done)

	m = press(m, " ")
	it, _ = model.Find(d.Items.Get(), 3)
	assert.False(t, it.Done)

	m = press(m, "d")
	_, ok := model.Find(d.Items.Get(), 3)
	assert.False(t, ok)
	assert.Len(t, d.Items.Get(), 4)
	assert.Equal(t, []int{4, 5, 1, 2}, visibleIDs(m))
}

func TestInlineEdit_Save(t *testing.T) {
	m, d := newTestModel(t)
	m.list.Select(3) // Alpha, id 1

	m = press(m, "e")
	require.Equal(t, focusEdit, m.focus)
	require.NotNil(t, m.edit)

	m = typeText(m, "!")
	m = press(m, "tab", "right") // category Todo -> Bug
	m = press(m, "tab", "left")  // priority High -> Medium
	m = press(m, "tab")
	m = typeText(m, ", ,extra")
	assert.Equal(t, []string{"core", "v1", "", "extra"}, m.edit.editor.Draft().Tags)

	m = press(m, "enter")
	assert.Equal(t, focusList, m.focus)
	assert.Nil(t, m.edit)

	it, _ := model.Find(d.Items.Get(), 1)
	assert.Equal(t, "Alpha!", it.Name)
	assert.Equal(t, model.CategoryBug, it.Category)
	assert.Equal(t, model.PriorityMedium, it.Priority)
	assert.Equal(t, []string{"core", "v1", "extra"}, it.Tags)
}

func TestInlineEdit_Cancel(t *testing.T) {
	m, d := newTestModel(t)
	before := d.Items.Get()
	m.list.Select(0)

	m = press(m, "e")
	m = typeText(m, "zzz")
	m = press(m, "esc")

	assert.Equal(t, focusList, m.focus)
	after := d.Items.Get()
	for i := range before {
		assert.True(t, before[i].Equal(after[i]))
	}
	assert.Equal(t, uint64(0), d.Items.Revision())
}

func TestCreateDialog(t *testing.T) {
	m, d := newTestModel(t)

	m = press(m, "a")
	require.Equal(t, focusCreate, m.focus)
	assert.True(t, m.create.form.Visible)
	assert.Contains(t, m.View(), "Create Item")

	m = press(m, "tab", "right", "right") // Todo -> Bug -> Feature
	m = press(m, "tab", "right")          // Medium -> High
	m = press(m, "tab")
	m = typeText(m, "a, b,")
	m = press(m, "tab", " ")
	m = press(m, "enter")

	assert.Equal(t, focusList, m.focus)
	assert.False(t, m.create.form.Visible)

	items := d.Items.Get()
	require.Len(t, items, 6)
	created := items[0]
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Untitled 6", created.Name)
	assert.Equal(t, model.CategoryFeature, created.Category)
	assert.Equal(t, model.PriorityHigh, created.Priority)
	assert.Equal(t, []string{"a", "b"}, created.Tags)
	assert.True(t, created.Done)
	assert.True(t, created.CreatedAt.Equal(now))

	// the form is reset for the next open
	m = press(m, "a")
	assert.Equal(t, model.CategoryTodo, m.create.form.Category)
	assert.Empty(t, m.create.name.Value())
}

func TestCreateDialog_Cancel(t *testing.T) {
	m, d := newTestModel(t)
	m = press(m, "a")
	m = typeText(m, "Draft")
	m = press(m, "esc")

	assert.Equal(t, focusList, m.focus)
	assert.Len(t, d.Items.Get(), 5)
	assert.NotContains(t, m.View(), "Create Item")
}

func TestThemeToggle(t *testing.T) {
	m, d := newTestModel(t)
	assert.Contains(t, m.View(), "Dark")

	m = press(m, "t")
	assert.True(t, d.Dark.Get())
	assert.Contains(t, m.View(), "Light")
}

func TestEmptyView(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "/")
	m = typeText(m, "nothing-matches")
	m = press(m, "enter")
	assert.True(t, strings.Contains(m.View(), "No items match your filters."))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
