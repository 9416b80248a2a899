package engine

import (
	"errors"
	"testing"

	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
)

const (
	E = domain.Empty
	X = domain.X
	O = domain.O
)

func TestBestMoveScenarios(t *testing.T) {
	tests := []struct {
		name   string
		board  domain.Board
		engine domain.Cell
		want   int
	}{
		{
			name:   "opening on empty board",
			board:  domain.Board{},
			engine: X,
			want:   1,
		},
		{
			name: "forced block",
			board: domain.Board{
				X, X, E,
				O, E, E,
				E, E, E,
			},
			engine: O,
			want:   3,
		},
		{
			name: "take the win over a block",
			board: domain.Board{
				X, X, E,
				O, O, E,
				E, E, E,
			},
			engine: X,
			want:   3,
		},
		{
			name: "win on the diagonal",
			board: domain.Board{
				O, X, X,
				E, O, X,
				E, E, E,
			},
			engine: O,
			want:   9,
		},
		{
			name: "last empty cell",
			board: domain.Board{
				X, O, X,
				X, O, O,
				O, X, E,
			},
			engine: X,
			want:   9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board
			got, err := BestMove(&b, tt.engine, tt.engine.Opponent())
			if err != nil {
				t.Fatalf("BestMove error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("BestMove = %d, want %d", got, tt.want)
			}
			if b != tt.board {
				t.Fatalf("BestMove left residue: %v, want %v", b, tt.board)
			}
		})
	}
}

func TestBestMoveOnTerminalBoard(t *testing.T) {
	boards := []domain.Board{
		{X, X, X, O, O, E, E, E, E},
		{X, O, X, X, O, O, O, X, X},
	}
	for _, b := range boards {
		if _, err := BestMove(&b, O, X); !errors.Is(err, ErrTerminal) {
			t.Fatalf("expected ErrTerminal on %v, got %v", b, err)
		}
	}
}

func TestScoreBaseCases(t *testing.T) {
	won := domain.Board{X, X, X, O, O, E, E, E, E}
	if got := Score(&won, 3, true, X, O); got != WinScore-3 {
		t.Fatalf("engine win at depth 3 = %d, want %d", got, WinScore-3)
	}
	if got := Score(&won, 3, true, O, X); got != 3-WinScore {
		t.Fatalf("engine loss at depth 3 = %d, want %d", got, 3-WinScore)
	}
	drawn := domain.Board{X, O, X, X, O, O, O, X, X}
	if got := Score(&drawn, 5, false, X, O); got != 0 {
		t.Fatalf("draw = %d, want 0", got)
	}
}

func TestScoreEmptyBoardIsDraw(t *testing.T) {
	var b domain.Board
	if got := Score(&b, 0, true, X, O); got != 0 {
		t.Fatalf("empty board score = %d, want 0", got)
	}
}

func TestScoreRestoresBoardAndIsDeterministic(t *testing.T) {
	boards := []domain.Board{
		{},
		{X, E, E, E, O, E, E, E, E},
		{X, X, E, O, E, E, E, E, E},
		{X, O, X, E, O, E, E, E, E},
	}
	for _, start := range boards {
		b := start
		first := Score(&b, 0, false, O, X)
		if b != start {
			t.Fatalf("Score left residue: %v, want %v", b, start)
		}
		for i := 0; i < 3; i++ {
			if got := Score(&b, 0, false, O, X); got != first {
				t.Fatalf("Score not deterministic on %v: %d then %d", start, first, got)
			}
		}
		if !domain.IsTerminal(&b) {
			m1, _ := BestMove(&b, O, X)
			m2, _ := BestMove(&b, O, X)
			if m1 != m2 {
				t.Fatalf("BestMove not deterministic on %v: %d then %d", start, m1, m2)
			}
		}
	}
}

func TestSelfPlayIsDraw(t *testing.T) {
	var b domain.Board
	turn := X
	for !domain.IsTerminal(&b) {
		pos, err := BestMove(&b, turn, turn.Opponent())
		if err != nil {
			t.Fatalf("BestMove: %v", err)
		}
		if !domain.IsValidMove(&b, pos) {
			t.Fatalf("illegal move %d on %v", pos, b)
		}
		domain.Place(&b, pos, turn)
		turn = turn.Opponent()
	}
	if domain.HasWin(&b, X) || domain.HasWin(&b, O) {
		t.Fatalf("perfect play should draw, got %v", b)
	}
}

// neverLoses walks every human reply while the engine answers with BestMove.
func neverLoses(t *testing.T, b *domain.Board, turn, engine domain.Cell, memo map[domain.Board]int) {
	t.Helper()
	player := engine.Opponent()
	if domain.HasWin(b, player) {
		t.Fatalf("engine %v lost on %v", engine, *b)
	}
	if domain.IsTerminal(b) {
		return
	}
	if turn == engine {
		pos, ok := memo[*b]
		if !ok {
			var err error
			pos, err = BestMove(b, engine, player)
			if err != nil {
				t.Fatalf("BestMove: %v", err)
			}
			memo[*b] = pos
		}
		domain.Place(b, pos, engine)
		neverLoses(t, b, player, engine, memo)
		b[pos-1] = domain.Empty
		return
	}
	for _, i := range domain.AvailableMoves(b) {
		b[i] = player
		neverLoses(t, b, engine, engine, memo)
		b[i] = domain.Empty
	}
}

func TestEngineNeverLoses(t *testing.T) {
	for _, engine := range []domain.Cell{X, O} {
		var b domain.Board
		neverLoses(t, &b, X, engine, map[domain.Board]int{})
	}
}
