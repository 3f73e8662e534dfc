package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// AutoplayMove plays the hinted move and runs every pending step to
// completion, skipping presentation delays. It returns false when the board
// offered no move or the move budget is spent.
func (g *Game) AutoplayMove() (engine.Move, bool) {
	if g.gameOver || g.moveBudgetSpent() {
		return engine.Move{}, false
	}
	g.orch.Settle()

	move, ok := g.orch.Hint()
	if !ok {
		return engine.Move{}, false
	}
	if err := g.orch.Select(move.A, move.B); err != nil {
		g.logger.Error("hinted move rejected", "move", move, "err", err)
		return engine.Move{}, false
	}
	g.orch.Settle()
	g.anim.Clear()

	if g.mode == ModeMoves && g.MovesLeft() == 0 {
		g.gameOver = true
	}
	return move, true
}

// Autoplay plays up to n hinted moves and returns how many were played.
func (g *Game) Autoplay(n int) int {
	played := 0
	for played < n {
		if _, ok := g.AutoplayMove(); !ok {
			break
		}
		played++
	}
	return played
}
