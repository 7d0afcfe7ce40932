package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string
	Dark bool

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Text, Done, Selected, Pill, Help              lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymOpen         string
}

type palette struct {
	text, muted, accent, success, errc, pending, title, border, pillBg string
}

var (
	darkPalettes = map[string]palette{
		"classic": {text: "252", muted: "245", accent: "12", success: "42", errc: "9", pending: "214", title: "255", border: "240", pillBg: "237"},
		"neon":    {text: "255", muted: "244", accent: "51", success: "46", errc: "197", pending: "226", title: "201", border: "93", pillBg: "54"},
	}
	lightPalettes = map[string]palette{
		"classic": {text: "235", muted: "243", accent: "25", success: "28", errc: "160", pending: "166", title: "232", border: "250", pillBg: "254"},
		"neon":    {text: "232", muted: "242", accent: "31", success: "34", errc: "161", pending: "136", title: "127", border: "135", pillBg: "225"},
	}
)

var (
	current   Theme
	themeName = "classic"
	dark      bool
)

func init() { SetTheme("classic") }

// SetTheme selects classic, neon or mono, keeping the dark/light choice.
func SetTheme(name string) {
	themeName = strings.ToLower(strings.TrimSpace(name))
	current = build(themeName, dark)
}

// SetDark switches between the dark and light variant of the current theme.
func SetDark(on bool) {
	dark = on
	current = build(themeName, dark)
}

// Expose what renderers need
func Current() Theme { return current }

func build(name string, dark bool) Theme {
	if name == "mono" {
		plain := lipgloss.NewStyle()
		return Theme{
			Name: "mono", Dark: dark,
			Title: plain.Bold(true), Muted: plain, Accent: plain, Success: plain,
			Error: plain.Bold(true), Pending: plain, Text: plain,
			Done: plain.Strikethrough(true), Selected: plain.Reverse(true),
			Pill: plain, Help: plain,
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymOpen: "-",
		}
	}

	pals := lightPalettes
	if dark {
		pals = darkPalettes
	}
	p, ok := pals[name]
	if !ok {
		name = "classic"
		p = pals[name]
	}
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	t := Theme{
		Name: name, Dark: dark,
		Title:    fg(p.title).Bold(true),
		Muted:    fg(p.muted),
		Accent:   fg(p.accent),
		Success:  fg(p.success),
		Error:    fg(p.errc).Bold(true),
		Pending:  fg(p.pending),
		Text:     fg(p.text),
		Done:     fg(p.muted).Strikethrough(true),
		Selected: fg(p.accent).Bold(true),
		Pill:     fg(p.text).Background(lipgloss.Color(p.pillBg)).Padding(0, 1),
		Help:     fg(p.muted).Faint(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color(p.border),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymOpen: "•",
	}
	if name == "neon" {
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	}
	return t
}
