package board

import (
	"fmt"
	"strings"
)

// Category is the attribute tiles are matched by.
type Category uint8

const (
	// Any is the wildcard category. It satisfies Matches against every category
	// but run detection still compares categories for exact equality.
	Any Category = iota
	Red
	Orange
	Yellow
	Green
	Blue
	Purple

	categoryCount
)

// DefaultPalette is the set of categories spawned when no palette is configured.
var DefaultPalette = []Category{Red, Orange, Yellow, Green, Blue, Purple}

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case Any:
		return "any"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character code used by layouts and ASCII rendering.
func (c Category) Glyph() rune {
	switch c {
	case Any:
		return '*'
	case Red:
		return 'R'
	case Orange:
		return 'O'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Purple:
		return 'P'
	default:
		return '?'
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c < categoryCount
}

// Matches is the wildcard-aware equality predicate: Any on either side matches.
func (c Category) Matches(other Category) bool {
	if c == Any || other == Any {
		return true
	}
	return c == other
}

// ParseCategory parses a category from its name ("red") or glyph ("R").
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) == 1 {
		if c, ok := CategoryFromGlyph([]rune(s)[0]); ok {
			return c, nil
		}
	}
	for c := Any; c < categoryCount; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return Any, fmt.Errorf("board: unknown category %q", s)
}

// CategoryFromGlyph maps a layout glyph back to its category.
func CategoryFromGlyph(r rune) (Category, bool) {
	switch r {
	case '*':
		return Any, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	case 'Y', 'y':
		return Yellow, true
	case 'G', 'g':
		return Green, true
	case 'B', 'b':
		return Blue, true
	case 'P', 'p':
		return Purple, true
	default:
		return Any, false
	}
}
