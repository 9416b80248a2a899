package domain

import "errors"

// Game holds a board and the side to move. X always moves first.
type Game struct {
	Board Board
	Turn  Cell
	Moves int
}

// Errors returned by domain operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// New returns a new game with X to move.
func New() Game {
	return Game{Turn: X}
}

// Over reports whether the board is terminal.
func (g *Game) Over() bool {
	return IsTerminal(&g.Board)
}

// Winner returns the symbol holding a full line, or Empty.
func (g *Game) Winner() Cell {
	switch {
	case HasWin(&g.Board, X):
		return X
	case HasWin(&g.Board, O):
		return O
	}
	return Empty
}

// Play places the current turn's symbol at position (1..9) and flips the turn.
func (g *Game) Play(position int) error {
	if g.Over() {
		return ErrGameOver
	}
	if position < 1 || position > 9 {
		return ErrOutOfBounds
	}
	if !IsValidMove(&g.Board, position) {
		return ErrOccupied
	}

	Place(&g.Board, position, g.Turn)
	g.Moves++

	if !g.Over() {
		g.Turn = g.Turn.Opponent()
	}
	return nil
}
