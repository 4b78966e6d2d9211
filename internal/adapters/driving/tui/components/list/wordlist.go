// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
)

// columnWidth is a five-letter word plus spacing.
const columnWidth = 7

// WordList displays words in columns with a scrollable window of rows.
type WordList struct {
	title  string
	words  []string
	offset int
	styles *styles.Styles
	width  int
	height int
}

// NewWordList creates a new word list component.
func NewWordList(s *styles.Styles) *WordList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &WordList{
		styles: s,
		width:  80,
		height: 8,
	}
}

// Init initialises the word list.
func (l *WordList) Init() tea.Cmd {
	return nil
}

// Update handles scrolling.
func (l *WordList) Update(msg tea.Msg) (*WordList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "pgup":
			l.ScrollUp()
		case "down", "pgdown":
			l.ScrollDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *WordList) View() string {
	if l.title == "" && len(l.words) == 0 {
		return ""
	}

	lines := []string{l.styles.Subtitle.Render(l.title)}
	if len(l.words) == 0 {
		lines = append(lines, l.styles.Muted.Render("(none)"))
		return strings.Join(lines, "\n")
	}

	cols := l.columns()
	rows := l.rows()
	end := min(l.offset+l.visibleRows(), rows)
	for r := l.offset; r < end; r++ {
		from := r * cols
		to := min(from+cols, len(l.words))
		var b strings.Builder
		for _, w := range l.words[from:to] {
			fmt.Fprintf(&b, "%-*s", columnWidth, w)
		}
		lines = append(lines, l.styles.Normal.Render(strings.TrimRight(b.String(), " ")))
	}
	if end < rows {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("... %d more", len(l.words)-end*cols)))
	}

	return strings.Join(lines, "\n")
}

// SetWords replaces the list contents.
func (l *WordList) SetWords(title string, words []string) {
	l.title = title
	l.words = words
	l.offset = 0
}

// Clear empties the list.
func (l *WordList) Clear() {
	l.SetWords("", nil)
}

// Words returns the displayed words.
func (l *WordList) Words() []string {
	return l.words
}

// Title returns the list heading.
func (l *WordList) Title() string {
	return l.title
}

// ScrollUp moves the window up one row.
func (l *WordList) ScrollUp() {
	if l.offset > 0 {
		l.offset--
	}
}

// ScrollDown moves the window down one row.
func (l *WordList) ScrollDown() {
	if l.offset+l.visibleRows() < l.rows() {
		l.offset++
	}
}

// Offset returns the first visible row.
func (l *WordList) Offset() int {
	return l.offset
}

// SetDimensions sets the list area.
func (l *WordList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

func (l *WordList) columns() int {
	return max(l.width/columnWidth, 1)
}

func (l *WordList) rows() int {
	cols := l.columns()
	return (len(l.words) + cols - 1) / cols
}

// visibleRows leaves room for the title and the overflow line.
func (l *WordList) visibleRows() int {
	return max(l.height-2, 1)
}
