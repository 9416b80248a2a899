// Package engine picks tic-tac-toe moves by exhaustive minimax search.
//
// Scores are from the engine's point of view: a win scores 10 minus the ply
// depth at which it happens, a loss scores depth minus 10, and a draw 0, so
// faster wins and slower losses are preferred.
package engine

import (
	"errors"

	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
)

// WinScore is the score of an immediate engine win.
const WinScore = 10

// ErrTerminal is returned when asked to move on a finished board.
var ErrTerminal = errors.New("board is terminal")

// Score evaluates b assuming optimal play by both sides. maximizing is true
// when the engine is to move. The board is mutated during the search and
// restored before Score returns.
func Score(b *domain.Board, depth int, maximizing bool, engine, player domain.Cell) int {
	if domain.HasWin(b, engine) {
		return WinScore - depth
	}
	if domain.HasWin(b, player) {
		return depth - WinScore
	}
	if domain.IsDraw(b) {
		return 0
	}

	mover := player
	if maximizing {
		mover = engine
	}
	var best int
	for n, i := range domain.AvailableMoves(b) {
		b[i] = mover
		s := Score(b, depth+1, !maximizing, engine, player)
		b[i] = domain.Empty

		if n == 0 || (maximizing && s > best) || (!maximizing && s < best) {
			best = s
		}
	}
	return best
}

// BestMove returns the 1-based position the engine should play on b.
// Candidates are tried in ascending cell order and only a strictly better
// score replaces the current choice, so ties go to the lowest position.
func BestMove(b *domain.Board, engine, player domain.Cell) (int, error) {
	if domain.IsTerminal(b) {
		return 0, ErrTerminal
	}

	best, bestScore := -1, 0
	for _, i := range domain.AvailableMoves(b) {
		b[i] = engine
		s := Score(b, 0, false, engine, player)
		b[i] = domain.Empty

		if best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best + 1, nil
}
