package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SNAKE", core.ColorBrightGreen)
	s.DrawText(6, 0, "ok")
	s.SetColored(0, 2, '█', core.ColorBrightRed)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, want 3", lines)
	}
	for _, want := range []string{"SNAKE", "ok", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen of empty screen = %q, want empty", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Out-of-range colors fall back to the default style
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(200).Render = %q, want plain text", got)
	}
}
