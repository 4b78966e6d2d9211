// Package board renders the guess grid and the on-screen keyboard.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// keyboardRows is the QWERTY layout.
var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// Board holds the guesses and letter statuses to draw.
type Board struct {
	styles  *styles.Styles
	guesses []domain.Guess
	status  [domain.AlphabetSize]domain.Color
}

// New creates an empty board.
func New(s *styles.Styles) *Board {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Board{styles: s}
}

// SetGame copies the history and keyboard status from a game.
func (b *Board) SetGame(game *domain.Game) {
	if game == nil {
		b.guesses = nil
		b.status = [domain.AlphabetSize]domain.Color{}
		return
	}
	b.guesses = game.Guesses
	b.status = game.Descriptor.View().LetterStatus
}

// Guesses returns the rows drawn.
func (b *Board) Guesses() []domain.Guess {
	return b.guesses
}

// View renders the grid above the keyboard.
func (b *Board) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, b.Grid(), "", b.Keyboard())
}

// Grid renders one row per guess, padded with empty rows up to MaxTurns.
func (b *Board) Grid() string {
	rows := make([]string, 0, max(len(b.guesses), domain.MaxTurns))
	for _, g := range b.guesses {
		rows = append(rows, Row(b.styles, g))
	}
	blank := b.styles.Muted.Render(strings.TrimSpace(strings.Repeat(" _ ", domain.WordLength)))
	for len(rows) < domain.MaxTurns {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

// Keyboard renders the alphabet coloured by the best status seen per letter.
func (b *Board) Keyboard() string {
	return Keyboard(b.styles, b.status)
}

// Row renders one guess as coloured tiles.
func Row(s *styles.Styles, g domain.Guess) string {
	text := g.Word.String()
	tiles := make([]string, domain.WordLength)
	for i := range domain.WordLength {
		tiles[i] = s.TileFor(g.Feedback[i]).Render(text[i : i+1])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Keyboard renders the QWERTY rows with each key coloured by status.
func Keyboard(s *styles.Styles, status [domain.AlphabetSize]domain.Color) string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, len(row))
		for j := range len(row) {
			keys[j] = s.TileFor(status[row[j]-'A']).Render(row[j : j+1])
		}
		lines[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return strings.Join(lines, "\n")
}
