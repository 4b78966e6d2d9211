package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

func newGame(t *testing.T, secret string, guesses ...string) *domain.Game {
	t.Helper()
	answers, err := domain.ParseWords([]string{"CRANE", "TRACE", "SLATE", secret})
	require.NoError(t, err)
	s := domain.MustParseWord(secret)
	game := domain.NewGame("g", domain.ModePlay, answers, s)
	for _, g := range guesses {
		w := domain.MustParseWord(g)
		game.Record(domain.Guess{Word: w, Feedback: domain.Evaluate(w, s)})
	}
	return game
}

func TestRow(t *testing.T) {
	g := domain.Guess{Word: domain.MustParseWord("CRANE"), Feedback: domain.Solved}

	row := Row(New(nil).styles, g)

	for _, l := range "CRANE" {
		assert.Contains(t, row, string(l))
	}
}

func TestBoard_GridPadsToMaxTurns(t *testing.T) {
	b := New(nil)
	b.SetGame(newGame(t, "TRACE", "CRANE"))

	grid := b.Grid()

	lines := strings.Split(grid, "\n")
	assert.Len(t, lines, domain.MaxTurns)
	assert.Contains(t, lines[0], "C")
	assert.Contains(t, lines[1], "_")
}

func TestBoard_GridGrowsPastMaxTurns(t *testing.T) {
	guesses := []string{"SLATE", "CRANE", "SLATE", "CRANE", "SLATE", "CRANE", "SLATE"}
	b := New(nil)
	b.SetGame(newGame(t, "TRACE", guesses...))

	assert.Len(t, strings.Split(b.Grid(), "\n"), len(guesses))
	assert.Len(t, b.Guesses(), len(guesses))
}

func TestBoard_Keyboard(t *testing.T) {
	b := New(nil)

	kb := b.Keyboard()

	lines := strings.Split(kb, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Q")
	assert.Contains(t, lines[2], "M")
	assert.True(t, strings.HasPrefix(lines[2], "  "))
}

func TestBoard_SetGameNil(t *testing.T) {
	b := New(nil)
	b.SetGame(newGame(t, "TRACE", "CRANE"))

	b.SetGame(nil)

	assert.Empty(t, b.Guesses())
	assert.Contains(t, b.View(), "Q")
}

func TestBoard_KeyboardUsesLetterStatus(t *testing.T) {
	s := New(nil).styles
	var status [domain.AlphabetSize]domain.Color
	status['C'-'A'] = domain.ColorGreen

	green := Keyboard(s, status)
	plain := Keyboard(s, [domain.AlphabetSize]domain.Color{})

	// Without a colour profile both render the same letters.
	assert.Equal(t, strings.Count(plain, "C"), strings.Count(green, "C"))
}
