package tui

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

func TestRenderScreenMono(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "R", core.ColorBrightRed)
	s.DrawTextColor(1, 0, "GG", core.ColorBrightGreen)
	s.DrawText(0, 1, "score")

	got := RenderScreen(s, MonoTheme())
	if got != s.String() {
		t.Errorf("mono render = %q, want %q", got, s.String())
	}
}

func TestThemeStyleFallback(t *testing.T) {
	theme := MonoTheme()
	if got := theme.Style(core.ColorOrange).Render("x"); got != "x" {
		t.Errorf("unknown color should use the default style, got %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "neon", "mono"} {
		if got := ThemeByName(name).Name; got != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, got)
		}
	}
	if got := ThemeByName("sepia").Name; got != "default" {
		t.Errorf("unknown theme should fall back to default, got %q", got)
	}
}
