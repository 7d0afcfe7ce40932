package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/itemdeck/internal/deck"
	"github.com/Makepad-fr/itemdeck/internal/logs"
	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusEdit
	focusCreate
)

// Model is the whole page. Handlers mutate the deck; View re-derives the
// visible rows from the latest snapshot.
type Model struct {
	deck *deck.Deck
	keys keyMap
	help help.Model

	list   list.Model
	search textinput.Model
	query  view.Query
	memo   *view.Memo

	focus  focus
	edit   *rowEditor
	create *createDialog

	width, height int
}

// New builds the page over d. Nothing is drawn until a program runs it.
func New(d *deck.Deck) Model {
	ui.SetDark(d.Dark.Get())

	l := list.New(nil, rowDelegate{}, 76, 14)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	s := textinput.New()
	s.Prompt = "/ "
	s.Placeholder = "Search name, tag, priority..."
	s.CharLimit = 120
	s.Width = 30

	m := Model{
		deck:   d,
		keys:   newKeyMap(),
		help:   help.New(),
		list:   l,
		search: s,
		query:  view.Query{Category: model.CategoryAll, Sort: view.SortRecent},
		memo:   &view.Memo{},
		create: newCreateDialog(),
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

// Run starts the program in the alternate screen.
func Run(d *deck.Deck) error {
	logs.Logger.Println("Starting TUI")
	p := tea.NewProgram(New(d), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Visible returns the rows currently shown.
func (m Model) Visible() []model.Item {
	return m.memo.Derive(m.deck.Items.Revision(), m.deck.Items.Get(), m.query)
}

// refresh re-derives the rows and resynchronises an open row editor with
// its item.
func (m *Model) refresh() {
	rows := m.Visible()
	items := make([]list.Item, 0, len(rows))
	for _, it := range rows {
		items = append(items, rowItem{it: it})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	if m.edit != nil && m.edit.editor.Editing() {
		it, ok := model.Find(m.deck.Items.Get(), m.edit.editor.ID())
		if !ok {
			m.closeEditor()
			return
		}
		m.edit.sync(it)
	}
}

func (m *Model) selected() (model.Item, bool) {
	r, ok := m.list.SelectedItem().(rowItem)
	if !ok {
		return model.Item{}, false
	}
	return r.it, true
}

func (m *Model) closeEditor() {
	m.edit = nil
	m.list.SetDelegate(rowDelegate{})
	if m.focus == focusEdit {
		m.focus = focusList
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width-4, m.listHeight())
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusEdit:
			return m.updateEdit(msg)
		case focusCreate:
			return m.updateCreate(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Category):
		m.query.Category = model.CycleCategory(model.FilterCategories(), m.query.Category, 1)
	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = m.query.Sort.Next()
	case key.Matches(msg, m.keys.OnlyOpen):
		m.query.OnlyOpen = !m.query.OnlyOpen
	case key.Matches(msg, m.keys.Theme):
		ui.SetDark(m.deck.ToggleDark())
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.focus = focusCreate
		return m, m.create.open()
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			if err := m.deck.Toggle(it.ID); err != nil {
				logs.Logger.Printf("toggle: %v", err)
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			if err := m.deck.Delete(it.ID); err != nil {
				logs.Logger.Printf("delete: %v", err)
			}
		}
	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.edit = newRowEditor(it)
		m.list.SetDelegate(rowDelegate{edit: m.edit})
		m.focus = focusEdit
		return m, m.edit.begin()
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query.Text = m.search.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		saved := m.deck.Save(m.edit.editor)
		logs.Logger.Printf("saved item %d", saved.ID)
		m.closeEditor()
		m.refresh()
		return m, nil
	case "esc":
		m.edit.editor.Discard()
		m.closeEditor()
		return m, nil
	}
	return m, m.edit.update(msg)
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submit, cmd := m.create.update(msg)
	if submit {
		created := m.deck.Submit(m.create.form)
		logs.Logger.Printf("created item %d", created.ID)
		m.create.reset()
		m.refresh()
		m.list.Select(indexOf(m.Visible(), created.ID))
	}
	if !m.create.form.Visible {
		m.focus = focusList
	}
	return m, cmd
}

func indexOf(items []model.Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return 0
}
