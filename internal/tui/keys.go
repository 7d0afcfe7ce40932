package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Search         key.Binding
	Category, Sort key.Binding
	OnlyOpen       key.Binding
	Toggle         key.Binding
	Edit, Delete   key.Binding
	Add, Theme     key.Binding
	Quit           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		OnlyOpen: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "only open")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Category, k.Sort, k.OnlyOpen, k.Toggle, k.Edit, k.Delete, k.Add, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.Search, k.Category, k.Sort, k.OnlyOpen},
		{k.Add, k.Theme, k.Quit},
	}
}

// editKeys is the help shown while a row or the create dialog has focus.
type editKeys struct{ done string }

func (e editKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", e.done)),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (e editKeys) FullHelp() [][]key.Binding { return [][]key.Binding{e.ShortHelp()} }
