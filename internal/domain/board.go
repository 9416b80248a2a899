package domain

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other symbol. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a fixed 3x3 board stored row-major, indexed 0..8.
type Board [9]Cell

// Lines are the 8 winning triples: rows, columns, diagonals.
var Lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// HasWin reports whether side fills any winning line.
func HasWin(b *Board, side Cell) bool {
	for _, ln := range Lines {
		if b[ln[0]] == side && b[ln[1]] == side && b[ln[2]] == side {
			return true
		}
	}
	return false
}

// IsDraw reports whether no Empty cell remains.
func IsDraw(b *Board) bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsTerminal reports a win for either symbol or a full board.
func IsTerminal(b *Board) bool {
	return HasWin(b, X) || HasWin(b, O) || IsDraw(b)
}

// AvailableMoves returns the empty cell indices in ascending order.
// Search order, and so the engine's tie-break, depends on this ordering.
func AvailableMoves(b *Board) []int {
	moves := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// IsValidMove reports whether position (1..9) is on the board and empty.
func IsValidMove(b *Board, position int) bool {
	if position < 1 || position > 9 {
		return false
	}
	return b[position-1] == Empty
}

// Place writes side at position (1..9). The caller is expected to have
// checked the move with IsValidMove.
func Place(b *Board, position int, side Cell) {
	b[position-1] = side
}
