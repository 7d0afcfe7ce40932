package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Panel and Fail output.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

func OK(msg string) {
	t := Current()
	fmt.Fprintln(stdout, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, Current().Error.Render("✖ "+msg))
}

// Pill renders a short label as a badge.
func Pill(s string) string {
	return Current().Pill.Render(s)
}

// Box frames content with the current theme's border.
func Box() lipgloss.Style {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// PanelString draws a framed box around lines.
func PanelString(lines []string) string {
	return Box().Render(strings.Join(lines, "\n"))
}

// Panel prints PanelString.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}

// ProgressBar renders a Unicode progress bar with counts.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
