// Package layouts loads fixed match-3 board layouts from YAML files.
package layouts

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

var ErrInvalidLayout = errors.New("layouts: invalid layout")

// yamlLayout is the on-disk form. Each row is a string of category glyphs.
type yamlLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Palette  []string          `yaml:"palette,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout is a parsed board layout.
type Layout struct {
	ID       string
	Name     string
	Cells    [][]board.Category
	Palette  []board.Category
	Metadata map[string]string
	FilePath string
}

// Rows returns the layout height.
func (l Layout) Rows() int { return len(l.Cells) }

// Columns returns the layout width.
func (l Layout) Columns() int {
	if len(l.Cells) == 0 {
		return 0
	}
	return len(l.Cells[0])
}

// Glyphs renders the layout back to glyph rows.
func (l Layout) Glyphs() []string {
	out := make([]string, len(l.Cells))
	for r, row := range l.Cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Glyph())
		}
		out[r] = sb.String()
	}
	return out
}

// ParseYAML parses and validates a layout document.
func ParseYAML(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Layout{}, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Cells:    make([][]board.Category, len(yl.Rows)),
		Metadata: yl.Metadata,
	}
	if l.Name == "" {
		l.Name = l.ID
	}

	width := -1
	for r, line := range yl.Rows {
		line = strings.TrimSpace(line)
		row := make([]board.Category, 0, len(line))
		for c, ch := range line {
			cat, ok := board.CategoryFromGlyph(ch)
			if !ok {
				return Layout{}, fmt.Errorf("%w: row %d col %d: unknown glyph %q", ErrInvalidLayout, r, c, ch)
			}
			row = append(row, cat)
		}
		if width < 0 {
			width = len(row)
		}
		if len(row) != width || width == 0 {
			return Layout{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, r, len(row), width)
		}
		l.Cells[r] = row
	}

	for _, name := range yl.Palette {
		cat, err := board.ParseCategory(name)
		if err != nil {
			return Layout{}, fmt.Errorf("%w: palette: %v", ErrInvalidLayout, err)
		}
		l.Palette = append(l.Palette, cat)
	}

	return l, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
