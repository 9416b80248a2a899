package domain

// Result is the outcome of a board from the human player's point of view.
// It is always derived from a Board, never stored.
type Result uint8

const (
	InProgress Result = iota
	PlayerWins
	EngineWins
	Draw
)

func (r Result) String() string {
	switch r {
	case PlayerWins:
		return "player_wins"
	case EngineWins:
		return "engine_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Over reports whether r ends the game.
func (r Result) Over() bool { return r != InProgress }

// ResultOf checks a player win, then an engine win, then a draw.
func ResultOf(b *Board, player, engine Cell) Result {
	switch {
	case HasWin(b, player):
		return PlayerWins
	case HasWin(b, engine):
		return EngineWins
	case IsDraw(b):
		return Draw
	}
	return InProgress
}
