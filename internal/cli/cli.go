// Package cli is the terminal front end: it prompts, validates input and
// renders the board around a match.Match.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jaminalder/xo-tic-tac-toe/internal/domain"
	"github.com/jaminalder/xo-tic-tac-toe/internal/match"
)

// errQuit is returned by prompts when input is exhausted.
var errQuit = errors.New("input closed")

// Options configure a terminal session.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Think is the total length of the "AI is thinking" animation.
	Think time.Duration
	// Clear enables ANSI screen clearing between frames.
	Clear bool
}

type session struct {
	in    *bufio.Scanner
	out   io.Writer
	think time.Duration
	clear bool
}

// Run plays games until the user declines another or input ends.
func Run(opts Options) error {
	s := &session{
		in:    bufio.NewScanner(opts.In),
		out:   opts.Out,
		think: opts.Think,
		clear: opts.Clear,
	}
	err := s.run()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (s *session) run() error {
	s.clearScreen()
	s.header()
	s.printf("  Hello! Welcome to XO Game!\n")
	s.printf("  Battle against an unbeatable AI powered by the Minimax algorithm!\n\n")
	for {
		s.guide()
		player, err := s.chooseSymbol()
		if err != nil {
			return err
		}
		if err := s.game(player); err != nil {
			return err
		}
		again, err := s.playAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
		s.clearScreen()
		s.header()
	}
	s.printf("\n  Thanks for playing XO Game! See you soon!\n\n")
	return nil
}

func (s *session) game(player domain.Cell) error {
	m, err := match.New(player)
	if err != nil {
		return err
	}
	if err := m.Start(); err != nil {
		return err
	}
	s.display(&m, "")

	for m.Phase == match.InProgress {
		if m.EngineToMove() {
			s.thinking()
			pos, _, err := m.PlayEngine()
			if err != nil {
				return err
			}
			s.display(&m, fmt.Sprintf("AI placed %v at position %d", m.Engine, pos))
			continue
		}
		pos, err := s.readMove(&m)
		if err != nil {
			return err
		}
		if _, err := m.PlayHuman(pos); err != nil {
			return err
		}
		s.display(&m, fmt.Sprintf("You placed %v at position %d", m.Player, pos))
	}
	s.result(m.Result())
	return nil
}

func (s *session) readLine(prompt string) (string, error) {
	s.printf("  >>> %s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) chooseSymbol() (domain.Cell, error) {
	s.printf("  Choose your symbol:\n    [1]  X\n    [2]  O\n\n")
	for {
		choice, err := s.readLine("Enter your choice (1 or 2): ")
		if err != nil {
			return domain.Empty, err
		}
		switch choice {
		case "1":
			s.printf("\n  [OK] You chose X! You will go first.\n\n")
			return domain.X, nil
		case "2":
			s.printf("\n  [OK] You chose O! AI (X) will go first.\n\n")
			return domain.O, nil
		}
		s.printf("  [!] Invalid choice! Please enter 1 or 2.\n\n")
	}
}

// readMove loops until the user names an empty position.
func (s *session) readMove(m *match.Match) (int, error) {
	b := m.Board()
	for {
		s.printf("        Your turn (%v)\n\n", m.Player)
		line, err := s.readLine("Enter position (1-9): ")
		if err != nil {
			return 0, err
		}
		if line == "" {
			s.printf("  [!] Please enter a number.\n\n")
			continue
		}
		pos, err := strconv.Atoi(line)
		if err != nil {
			s.printf("  [!] Invalid input! Please enter a number.\n\n")
			continue
		}
		if pos < 1 || pos > 9 {
			s.printf("  [!] Please enter a number between 1 and 9.\n\n")
			continue
		}
		if !domain.IsValidMove(&b, pos) {
			s.printf("  [!] That position is already taken! Choose another.\n\n")
			continue
		}
		return pos, nil
	}
}

func (s *session) playAgain() (bool, error) {
	s.printf("\n")
	for {
		choice, err := s.readLine("Play again? (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(choice) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.printf("  [!] Please enter 'y' or 'n'.\n\n")
	}
}

func (s *session) thinking() {
	s.printf("        AI is thinking")
	tick := s.think / 4
	for i := 0; i < 3; i++ {
		time.Sleep(tick)
		s.printf(".")
	}
	time.Sleep(tick)
	s.printf("\n")
}
