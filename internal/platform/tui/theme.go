package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Theme maps screen colors to lipgloss styles.
type Theme struct {
	Name   string
	Colors map[core.Color]lipgloss.Style
	Help   lipgloss.Style
}

// Style returns the style for c, falling back to the default color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return t.Colors[core.ColorDefault]
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultTheme uses the ANSI 256-color codes of the classic terminal palette.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9").Bold(true),
			core.ColorBrightGreen:   fg("10").Bold(true),
			core.ColorBrightYellow:  fg("11").Bold(true),
			core.ColorBrightBlue:    fg("12").Bold(true),
			core.ColorBrightMagenta: fg("13").Bold(true),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208").Bold(true),
			core.ColorGray:          fg("245"),
		},
		Help: fg("241"),
	}
}

// NeonTheme swaps the tile colors for saturated neon tones.
func NeonTheme() Theme {
	t := DefaultTheme()
	t.Name = "neon"
	t.Colors[core.ColorBrightRed] = fg("199").Bold(true)
	t.Colors[core.ColorBrightGreen] = fg("118").Bold(true)
	t.Colors[core.ColorBrightYellow] = fg("227").Bold(true)
	t.Colors[core.ColorBrightBlue] = fg("87").Bold(true)
	t.Colors[core.ColorBrightMagenta] = fg("171").Bold(true)
	return t
}

// MonoTheme renders without colors.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:   "mono",
		Colors: map[core.Color]lipgloss.Style{core.ColorDefault: plain},
		Help:   plain,
	}
}

// ThemeByName returns the named theme, or the default one.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
