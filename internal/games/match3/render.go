package match3

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth    = 3 // bracket, glyph, bracket
	hudHeight    = 3
	footerHeight = 2
)

// Mark decorates a cell in board renderings.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkHint
	MarkPartner
	MarkSelected
	MarkCursor
)

func (m Mark) brackets() (rune, rune) {
	switch m {
	case MarkCursor:
		return '[', ']'
	case MarkSelected:
		return '<', '>'
	case MarkPartner:
		return '(', ')'
	case MarkHint:
		return '{', '}'
	default:
		return ' ', ' '
	}
}

var categoryColors = map[board.Category]core.Color{
	board.Any:    core.ColorBrightWhite,
	board.Red:    core.ColorBrightRed,
	board.Orange: core.ColorOrange,
	board.Yellow: core.ColorBrightYellow,
	board.Green:  core.ColorBrightGreen,
	board.Blue:   core.ColorBrightBlue,
	board.Purple: core.ColorBrightMagenta,
}

var markColors = map[Mark]core.Color{
	MarkCursor:   core.ColorBrightWhite,
	MarkSelected: core.ColorBrightYellow,
	MarkPartner:  core.ColorYellow,
	MarkHint:     core.ColorCyan,
}

// BoardASCII renders the grid as glyph rows, one line per row. Empty cells
// are '.', marked cells are wrapped in brackets. Trailing spaces are trimmed.
func BoardASCII(g *board.Grid, marks map[board.Coord]Mark) string {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		var line strings.Builder
		for c := 0; c < g.Columns(); c++ {
			open, closing := marks[board.At(r, c)].brackets()
			line.WriteRune(open)
			line.WriteRune(tileGlyph(g.TileAt(r, c)))
			line.WriteRune(closing)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func tileGlyph(t *board.Tile) rune {
	if t == nil {
		return '.'
	}
	return t.Category().Glyph()
}

// marks collects cursor, selection and hint decorations. Stronger marks win.
func (g *Game) marks() map[board.Coord]Mark {
	out := make(map[board.Coord]Mark)
	set := func(c board.Coord, m Mark) {
		if m > out[c] {
			out[c] = m
		}
	}

	if g.hintLeft > 0 {
		set(g.hint.A, MarkHint)
		set(g.hint.B, MarkHint)
	}
	sel := g.orch.Selector()
	if t := sel.First(); t != nil && t.Cell() != nil {
		set(t.Cell().Coord(), MarkSelected)
	}
	if t := sel.Last(); t != nil && t.Cell() != nil {
		set(t.Cell().Coord(), MarkPartner)
	}
	if g.orch.InputEnabled() && !g.gameOver {
		set(g.cursor, MarkCursor)
	}
	return out
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	grid := g.orch.Grid()
	boardW := grid.Columns()*cellWidth + 2
	boardH := grid.Rows() + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)

	if g.paused {
		dst.DrawTextCentered(boardY+boardH/2, " PAUSED ", core.ColorBrightYellow)
	}
	if g.gameOver {
		dst.DrawTextCentered(boardY+boardH/2, " GAME OVER ", core.ColorBrightRed)
		dst.DrawTextCentered(boardY+boardH/2+1, fmt.Sprintf(" Score: %d ", g.orch.Stats().Score), core.ColorBrightWhite)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightCyan)

	stats := g.orch.Stats()
	dst.DrawTextColor(boardX, 1, fmt.Sprintf("Score: %d", stats.Score), core.ColorBrightWhite)

	moves := fmt.Sprintf("Moves: %d", stats.Moves)
	if g.mode == ModeMoves {
		moves = fmt.Sprintf("Moves left: %d", g.MovesLeft())
	}
	x := core.Max(boardX+boardW-len(moves), boardX)
	dst.DrawTextColor(x, 1, moves, core.ColorBrightWhite)
}

func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	grid := g.orch.Grid()
	dst.DrawBox(core.NewRect(x, y, grid.Columns()*cellWidth+2, grid.Rows()+2), core.ColorGray)

	marks := g.marks()
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Columns(); c++ {
			at := board.At(r, c)
			cx := x + 1 + c*cellWidth
			cy := y + 1 + r

			glyph, color := g.cellLook(grid.TileAt(r, c), at)
			open, closing := marks[at].brackets()
			mc := markColors[marks[at]]
			dst.SetColor(cx, cy, open, mc)
			dst.SetColor(cx+1, cy, glyph, color)
			dst.SetColor(cx+2, cy, closing, mc)
		}
	}
}

// cellLook picks the glyph and color for a cell, applying running effects.
func (g *Game) cellLook(t *board.Tile, at board.Coord) (rune, core.Color) {
	if e, ok := g.anim.At(at); ok {
		switch e.kind {
		case effectVanish:
			return '*', categoryColors[e.category]
		case effectPop:
			return unicode.ToLower(e.category.Glyph()), categoryColors[e.category]
		}
	}
	if t == nil {
		return '.', core.ColorGray
	}
	return t.Category().Glyph(), categoryColors[t.Category()]
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	status := g.message
	if status == "" {
		status = statusLine(g.orch.State())
	}
	dst.DrawTextCentered(y, status, core.ColorGray)
}

func statusLine(s engine.State) string {
	switch s {
	case engine.StateIdle:
		return "Your move"
	case engine.StateShuffling:
		return "Shuffling..."
	case engine.StateReplaying:
		return "New board"
	default:
		return "..."
	}
}
