package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runWith(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(Options{In: strings.NewReader(input), Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestInvalidInputIsRejected(t *testing.T) {
	out := runWith(t, "3\n2\n\nabc\n1\n0\n10\n")
	wants := []string{
		"Invalid choice! Please enter 1 or 2.",
		"AI (X) will go first",
		"AI placed X at position 1",
		"Please enter a number.",
		"Invalid input! Please enter a number.",
		"That position is already taken! Choose another.",
		"Please enter a number between 1 and 9.",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output:\n%s", w, out)
		}
	}
	if strings.Contains(out, "Thanks for playing") {
		t.Fatalf("closed input should end the session without the goodbye")
	}
}

func TestFullGameThenQuit(t *testing.T) {
	// X takes the lowest free position each turn; taken ones are re-prompted
	// and leftovers fall through to the play-again prompt.
	out := runWith(t, "1\n1\n2\n3\n4\n5\n6\n7\n8\n9\nn\n")
	if !strings.Contains(out, "You placed X at position 1") {
		t.Fatalf("expected human opening at 1:\n%s", out)
	}
	if !strings.Contains(out, "AI WINS") {
		t.Fatalf("expected engine win:\n%s", out)
	}
	if strings.Contains(out, "YOU WIN") {
		t.Fatalf("engine must not lose:\n%s", out)
	}
	if !strings.Contains(out, "Please enter 'y' or 'n'.") {
		t.Fatalf("leftover digits should be rejected by play-again prompt:\n%s", out)
	}
	if !strings.Contains(out, "Thanks for playing XO Game!") {
		t.Fatalf("expected goodbye:\n%s", out)
	}
}

func TestPlayAgainStartsNewGame(t *testing.T) {
	out := runWith(t, "1\n1\n2\n3\n4\nyes\n2\n")
	if n := strings.Count(out, "Choose your symbol"); n != 2 {
		t.Fatalf("expected two symbol prompts, got %d:\n%s", n, out)
	}
}

func TestBoardShowsPositionNumbers(t *testing.T) {
	out := runWith(t, "1\n5\n")
	if !strings.Contains(out, "| 1 | 2 | 3 |") {
		t.Fatalf("empty cells should show their positions:\n%s", out)
	}
	if !strings.Contains(out, "| 4 | X | 6 |") {
		t.Fatalf("expected X in the centre:\n%s", out)
	}
}

func TestClearScreen(t *testing.T) {
	var out bytes.Buffer
	if err := Run(Options{In: strings.NewReader(""), Out: &out, Clear: true}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\033[H\033[2J") {
		t.Fatalf("expected ANSI clear at start, got %q", out.String())
	}
}
