package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/itemdeck/internal/model"
	"github.com/Makepad-fr/itemdeck/internal/ui"
	"github.com/Makepad-fr/itemdeck/internal/view"
)

func header(s view.Stats) string {
	t := ui.Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Items"),
		t.Success.Render(t.SymDone), s.Done,
		t.Pending.Render(t.SymOpen), s.Open,
		t.Accent.Render("Total"), s.Total,
	)
}

// listLines renders the derived rows under a header computed from all items.
func listLines(all, rows []model.Item) []string {
	t := ui.Current()
	s := view.Compute(all)

	lines := []string{
		header(s),
		t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)),
		"",
	}
	if len(rows) == 0 {
		lines = append(lines, t.Muted.Render("No items match your filters."))
	}
	for _, it := range rows {
		lines = append(lines, rowLine(it))
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `itemdeck add \"Buy milk\" -c Todo -p High`"))
	return lines
}

func rowLine(it model.Item) string {
	t := ui.Current()
	name := it.Name
	if len(name) > 60 {
		name = name[:57] + "..."
	}
	box := t.Muted.Render(t.BoxUnchecked)
	if it.Done {
		box, name = t.Success.Render(t.BoxChecked), t.Done.Render(name)
	}
	parts := []string{
		t.Muted.Render(fmt.Sprintf("%3d.", it.ID)),
		box, name,
		ui.Pill(string(it.Category)),
		ui.Pill(string(it.Priority)),
	}
	for _, tag := range it.Tags {
		parts = append(parts, t.Accent.Render("#"+tag))
	}
	return strings.Join(parts, " ")
}

func statsLines(s view.Stats) []string {
	t := ui.Current()
	lines := []string{
		header(s),
		t.Muted.Render(ui.ProgressBar(s.Done, s.Total, 28)),
		"",
	}
	for _, c := range model.Categories() {
		lines = append(lines, fmt.Sprintf("%-8s %d", string(c), s.ByCategory[c]))
	}
	return lines
}
