package ui

import (
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	in := "\033[32m✔\033[0m done"
	if got := stripANSI(in); got != "✔ done" {
		t.Errorf("stripANSI = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		done, total, width int
		filled             int
		pct                string
	}{
		{0, 4, 8, 0, "  0%"},
		{2, 4, 8, 4, " 50%"},
		{4, 4, 8, 8, "100%"},
		{0, 0, 8, 0, "  0%"}, // empty collection must not divide by zero
	}
	for _, c := range cases {
		got := ProgressBar(c.done, c.total, c.width)
		if n := strings.Count(got, "█"); n != c.filled {
			t.Errorf("ProgressBar(%d,%d,%d): %d filled cells, want %d", c.done, c.total, c.width, n, c.filled)
		}
		if !strings.HasSuffix(got, c.pct) {
			t.Errorf("ProgressBar(%d,%d,%d) = %q, want suffix %q", c.done, c.total, c.width, got, c.pct)
		}
	}
}

func TestCDisabled(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	if got := C(fgGreen, "hi"); got != "hi" {
		t.Errorf("C with color disabled = %q", got)
	}
}

func TestSetThemeGlyphs(t *testing.T) {
	defer func() {
		SetTheme("classic")
		SetColorForcing(false, false) // mono switches color off globally
	}()
	SetTheme("mono")
	if Current().BoxChecked != "[x]" {
		t.Errorf("mono checked glyph = %q", Current().BoxChecked)
	}
	SetTheme("no-such-theme")
	if Current().BoxChecked != "☑" {
		t.Error("unknown theme should fall back to classic")
	}
}
