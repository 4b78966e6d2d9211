// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
)

const (
	// guessLimit fits a five-letter word.
	guessLimit = 5
	// reportLimit fits a word, a space and five colour codes.
	reportLimit = 11
)

// GuessInput wraps a bubbles textinput for entering guesses. In report mode
// it takes a word followed by its colours, e.g. "CRANE GYBBY".
type GuessInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	report    bool
	width     int
}

// NewGuessInput creates a new guess input component.
func NewGuessInput(s *styles.Styles) *GuessInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Focus()
	ti.Width = 20

	g := &GuessInput{
		textinput: ti,
		styles:    s,
		width:     20,
	}
	g.SetReportMode(false)
	return g
}

// Init initialises the guess input.
func (g *GuessInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (g *GuessInput) Update(msg tea.Msg) (*GuessInput, tea.Cmd) {
	var cmd tea.Cmd
	g.textinput, cmd = g.textinput.Update(msg)
	return g, cmd
}

// View renders the guess input.
func (g *GuessInput) View() string {
	label := "Guess: "
	if g.report {
		label = "Guess + colours: "
	}
	input := g.styles.InputField.Render(g.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, g.styles.Title.Render(label), input)
}

// SetReportMode switches between plain guesses and guesses with colours.
func (g *GuessInput) SetReportMode(report bool) {
	g.report = report
	if report {
		g.textinput.Placeholder = "CRANE GYBBY"
		g.textinput.CharLimit = reportLimit
	} else {
		g.textinput.Placeholder = "CRANE"
		g.textinput.CharLimit = guessLimit
	}
}

// ReportMode reports whether colours are expected after the word.
func (g *GuessInput) ReportMode() bool {
	return g.report
}

// Value returns the current input value.
func (g *GuessInput) Value() string {
	return g.textinput.Value()
}

// SetValue sets the input value.
func (g *GuessInput) SetValue(value string) {
	g.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (g *GuessInput) Focus() tea.Cmd {
	return g.textinput.Focus()
}

// Blur removes focus from the input.
func (g *GuessInput) Blur() {
	g.textinput.Blur()
}

// Focused returns whether the input is focused.
func (g *GuessInput) Focused() bool {
	return g.textinput.Focused()
}

// SetWidth sets the width of the input.
func (g *GuessInput) SetWidth(width int) {
	g.width = width
	g.textinput.Width = max(width-20, reportLimit+1)
}

// Width returns the current width.
func (g *GuessInput) Width() int {
	return g.width
}

// Reset clears the input.
func (g *GuessInput) Reset() {
	g.textinput.Reset()
}
