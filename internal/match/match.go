// Package match runs a single game between a human and the engine.
package match

import (
	"errors"
	"fmt"

	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
	"github.com/jaminalder/xo-tic-tac-toe/internal/engine"
)

// Phase is the lifecycle state of a Match. Ended is absorbing.
type Phase uint8

const (
	NotStarted Phase = iota
	InProgress
	Ended
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in_progress"
	case Ended:
		return "ended"
	default:
		return "not_started"
	}
}

// Errors returned by Match.
var (
	ErrInvalidSymbol  = errors.New("symbol must be X or O")
	ErrNotStarted     = errors.New("match not started")
	ErrAlreadyStarted = errors.New("match already started")
	ErrEnded          = errors.New("match ended")
	ErrNotYourTurn    = errors.New("not your turn")
)

// Match pairs a human symbol with the engine's and alternates their moves.
type Match struct {
	Game   domain.Game
	Player domain.Cell
	Engine domain.Cell
	Phase  Phase
}

// New returns a match where the human plays player and the engine the other symbol.
func New(player domain.Cell) (Match, error) {
	if player != domain.X && player != domain.O {
		return Match{}, ErrInvalidSymbol
	}
	return Match{Game: domain.New(), Player: player, Engine: player.Opponent()}, nil
}

// Start begins play with X to move, whoever holds it.
func (m *Match) Start() error {
	if m.Phase != NotStarted {
		return ErrAlreadyStarted
	}
	m.Game = domain.New()
	m.Phase = InProgress
	return nil
}

// Board returns a copy of the current board.
func (m *Match) Board() domain.Board { return m.Game.Board }

// Result is recomputed from the board on every call.
func (m *Match) Result() domain.Result {
	return domain.ResultOf(&m.Game.Board, m.Player, m.Engine)
}

// EngineToMove reports whether the engine owns the next move.
func (m *Match) EngineToMove() bool {
	return m.Phase == InProgress && m.Game.Turn == m.Engine
}

// PlayHuman applies the human's move at position (1..9).
func (m *Match) PlayHuman(position int) (domain.Result, error) {
	if err := m.ready(m.Player); err != nil {
		return m.Result(), err
	}
	return m.apply(position)
}

// PlayEngine picks and applies the engine's move, returning its position.
func (m *Match) PlayEngine() (int, domain.Result, error) {
	if err := m.ready(m.Engine); err != nil {
		return 0, m.Result(), err
	}
	pos, err := engine.BestMove(&m.Game.Board, m.Engine, m.Player)
	if err != nil {
		return 0, m.Result(), fmt.Errorf("engine move: %w", err)
	}
	res, err := m.apply(pos)
	return pos, res, err
}

// Advance lets the engine move while it is the engine's turn. It returns the
// engine's position, or 0 when it was not the engine's turn.
func (m *Match) Advance() (int, domain.Result, error) {
	if !m.EngineToMove() {
		return 0, m.Result(), nil
	}
	return m.PlayEngine()
}

func (m *Match) ready(side domain.Cell) error {
	switch m.Phase {
	case NotStarted:
		return ErrNotStarted
	case Ended:
		return ErrEnded
	}
	if m.Game.Turn != side {
		return ErrNotYourTurn
	}
	return nil
}

func (m *Match) apply(position int) (domain.Result, error) {
	if err := m.Game.Play(position); err != nil {
		return m.Result(), err
	}
	res := m.Result()
	if res.Over() {
		m.Phase = Ended
	}
	return res, nil
}
