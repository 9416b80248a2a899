package cli

import (
	"fmt"

	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
	"github.com/jaminalder/xo-tic-tac-toe/internal/match"
)

func (s *session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *session) clearScreen() {
	if s.clear {
		s.printf("\033[H\033[2J")
	}
}

func (s *session) header() {
	s.printf("\n  +-------------------------------------------+\n")
	s.printf("  |              TIC  TAC  TOE                |\n")
	s.printf("  +-------------------------------------------+\n\n")
}

func (s *session) guide() {
	s.printf("        Position Numbers:\n\n")
	s.printf("            1 | 2 | 3\n")
	s.printf("           ---+---+---\n")
	s.printf("            4 | 5 | 6\n")
	s.printf("           ---+---+---\n")
	s.printf("            7 | 8 | 9\n\n")
}

// cell shows the position number for empty cells.
func cell(b *domain.Board, i int) string {
	if b[i] == domain.Empty {
		return fmt.Sprintf(" %d ", i+1)
	}
	return fmt.Sprintf(" %v ", b[i])
}

func (s *session) board(b *domain.Board) {
	s.printf("\n             +---+---+---+\n")
	for r := 0; r < 3; r++ {
		s.printf("             |%s|%s|%s|\n", cell(b, r*3), cell(b, r*3+1), cell(b, r*3+2))
		s.printf("             +---+---+---+\n")
	}
	s.printf("\n")
}

func (s *session) display(m *match.Match, message string) {
	s.clearScreen()
	s.header()
	s.printf("        You: %v  |  AI: %v\n", m.Player, m.Engine)
	b := m.Board()
	s.board(&b)
	if message != "" {
		s.printf("  %s\n\n", message)
	}
}

func (s *session) result(r domain.Result) {
	switch r {
	case domain.PlayerWins:
		s.printf("\n  *** CONGRATULATIONS! YOU WIN! ***\n\n")
	case domain.EngineWins:
		s.printf("\n  *** GAME OVER - AI WINS! Better luck next time! ***\n\n")
	case domain.Draw:
		s.printf("\n  *** IT'S A DRAW! Great game! Well played! ***\n\n")
	}
}
