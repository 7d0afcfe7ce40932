package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 4, "█████ 100%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")
	defer SetDark(false)

	SetTheme("mono")
	if Current().BoxChecked != "[x]" {
		t.Errorf("mono: expected [x], got %q", Current().BoxChecked)
	}

	SetTheme("does-not-exist")
	if Current().Name != "classic" {
		t.Errorf("unknown theme should fall back to classic, got %q", Current().Name)
	}

	SetDark(true)
	if !Current().Dark {
		t.Error("expected dark variant")
	}
	SetTheme("neon")
	if !Current().Dark || Current().BoxChecked != "◼" {
		t.Errorf("neon should keep dark mode, got %+v", Current())
	}
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(os.Stdout, os.Stderr)

	OK("saved")
	Fail("boom")
	if !strings.Contains(out.String(), "saved") {
		t.Errorf("expected OK on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Errorf("expected Fail on stderr, got %q", errOut.String())
	}
}

func TestPanelString(t *testing.T) {
	s := PanelString([]string{"one", "two"})
	if !strings.Contains(s, "one") || !strings.Contains(s, "two") {
		t.Errorf("panel lost content: %q", s)
	}
	if strings.Count(s, "\n") < 3 {
		t.Errorf("expected framed output, got %q", s)
	}
}
