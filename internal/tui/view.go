package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

const chromeHeight = 13

func (m Model) listHeight() int {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	if m.focus == focusCreate && m.create.form.Visible {
		modal := m.create.View(m.width - 4)
		help := ui.Current().Help.Render(m.help.View(editKeys{done: "create"}))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Left, modal, help))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.controlsView(),
		m.statsView(),
		m.listView(),
		m.footerView(),
	)
	return ui.Box().Render(body)
}

func (m Model) headerView() string {
	t := ui.Current()
	mode := "☾ Dark"
	if m.deck.Dark.Get() {
		mode = "☀ Light"
	}
	return fmt.Sprintf("%s   %s  %s",
		t.Title.Render("Item Deck"),
		t.Muted.Render("[t] ")+t.Accent.Render(mode),
		t.Muted.Render("[a] ")+t.Accent.Render("+ Add Item"),
	)
}

func (m Model) controlsView() string {
	t := ui.Current()
	open := t.BoxUnchecked
	if m.query.OnlyOpen {
		open = t.BoxChecked
	}
	search := m.search.View()
	if m.focus != focusSearch && m.search.Value() == "" {
		search = t.Muted.Render("/ search")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		search, "   ",
		t.Muted.Render("Category: ")+t.Text.Render(string(m.query.Category)), "   ",
		t.Muted.Render("Sort: ")+t.Text.Render(m.query.Sort.Label()), "   ",
		t.Text.Render(open+" Only Open"),
	)
}

func (m Model) statsView() string {
	t := ui.Current()
	s := view.Compute(m.deck.Items.Get())
	card := func(label string, value int) string {
		return ui.Box().Width(12).Render(t.Muted.Render(label) + "\n" + t.Title.Render(fmt.Sprint(value)))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", s.Total),
		card("Open", s.Open),
		card("Done", s.Done),
		card("Features", s.ByCategory[model.CategoryFeature]),
	)
	return lipgloss.JoinVertical(lipgloss.Left, cards, t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)))
}

func (m Model) listView() string {
	if len(m.list.Items()) == 0 {
		return ui.Current().Muted.Render("\n  No items match your filters.\n")
	}
	return m.list.View()
}

func (m Model) footerView() string {
	t := ui.Current()
	var h string
	if m.focus == focusEdit {
		h = m.help.View(editKeys{done: "save"})
	} else {
		h = m.help.View(m.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		h,
		t.Help.Render("State persists to the configured store."),
	)
}
