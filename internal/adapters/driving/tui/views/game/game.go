// Package game provides the board view where guesses are played and the
// solver is consulted.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/board"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

// ErrBusy is shown when a guess is submitted while the solver is running.
var ErrBusy = errors.New("still thinking, wait or press esc")

// View is the game screen: board, input, solver output and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.GuessInput
	board     *board.Board
	list      *list.WordList
	statusbar *status.Bar

	games driving.GameService
	ctx   context.Context

	game     *domain.Game
	mode     domain.Mode
	thinking bool
	cancel   context.CancelFunc
	finished bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new game view.
func NewView(s *styles.Styles, km *keymap.KeyMap, games driving.GameService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewGuessInput(s),
		board:     board.New(s),
		list:      list.NewWordList(s),
		statusbar: status.NewBar(s, km),
		games:     games,
		ctx:       context.Background(),
		mode:      domain.ModePlay,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Start returns a command that begins a new game in mode.
func (v *View) Start(mode domain.Mode) tea.Cmd {
	v.stopThinking()
	v.mode = mode
	v.game = nil
	v.finished = false
	v.err = nil
	v.board.SetGame(nil)
	v.list.Clear()
	v.input.Reset()
	v.input.SetReportMode(mode == domain.ModeAssist)
	v.statusbar.Clear()

	games, ctx := v.games, v.ctx
	return func() tea.Msg {
		game, err := games.Start(ctx, mode)
		return messages.GameStarted{Game: game, Err: err}
	}
}

// Update handles messages for the game view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.GameStarted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.game = msg.Game
		v.refresh()
		return v, v.input.Focus()

	case messages.RecommendationReady:
		v.handleRecommendation(msg)
		return v, nil

	case messages.GameFinished:
		if msg.Err != nil {
			v.setError(msg.Err)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		v.stopThinking()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.NewGame):
		return v, v.Start(v.mode)

	case keymap.Matches(msg.String(), v.keymap.Recommend):
		return v, v.recommend()

	case keymap.Matches(msg.String(), v.keymap.Candidates):
		v.showCandidates()
		return v, nil

	case msg.Type == tea.KeyEnter:
		if v.finished {
			return v, v.Start(v.mode)
		}
		return v, v.submit()

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown, msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		v.list, _ = v.list.Update(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit plays the typed guess. Assist games expect "WORD COLOURS".
func (v *View) submit() tea.Cmd {
	if v.game == nil {
		return nil
	}
	if v.thinking {
		v.setError(ErrBusy)
		return nil
	}
	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return nil
	}

	var err error
	if v.mode == domain.ModeAssist {
		fields := strings.Fields(text)
		if len(fields) != 2 {
			v.setError(fmt.Errorf("%w: type the word then its colours, e.g. CRANE GYBBY", domain.ErrMalformedFeedback))
			return nil
		}
		_, err = v.games.Report(v.ctx, v.game, fields[0], fields[1])
	} else {
		_, err = v.games.Guess(v.ctx, v.game, text)
	}
	if err != nil {
		v.setError(err)
		return nil
	}

	v.input.Reset()
	v.list.Clear()
	v.err = nil
	v.refresh()

	if v.game.Solved() {
		v.finished = true
		v.input.Blur()
		games, ctx, game := v.games, v.ctx, v.game
		return func() tea.Msg {
			result, err := games.Finish(ctx, game)
			return messages.GameFinished{Result: result, Err: err}
		}
	}
	return nil
}

// recommend starts the guess search in the background.
func (v *View) recommend() tea.Cmd {
	if v.game == nil || v.thinking || v.finished {
		return nil
	}
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel
	v.thinking = true
	v.statusbar.SetState(status.StateThinking)

	games, game := v.games, v.game
	return func() tea.Msg {
		rec, err := games.Recommend(ctx, game, domain.RecommendOptions{})
		return messages.RecommendationReady{GameID: game.ID, Recommendation: rec, Err: err}
	}
}

func (v *View) handleRecommendation(msg messages.RecommendationReady) {
	if v.game == nil || msg.GameID != v.game.ID {
		return
	}
	v.stopThinking()
	v.statusbar.SetState(status.StateReady)

	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			v.setError(msg.Err)
		}
		return
	}
	rec := msg.Recommendation
	if rec.IsEmpty() {
		v.list.SetWords("No recommendation: the feedback is contradictory", nil)
		return
	}

	kind := "not a possible answer"
	if rec.AnyCandidate {
		kind = "could be the answer"
	}
	title := fmt.Sprintf("Best guesses (worst case %d left, %s, %d tied)", rec.WorstCase, kind, rec.Ties)
	v.list.SetWords(title, domain.Strings(rec.Words))
}

func (v *View) showCandidates() {
	if v.game == nil {
		return
	}
	words := domain.Strings(v.games.Candidates(v.game))
	v.list.SetWords(fmt.Sprintf("Possible answers (%d)", len(words)), words)
}

func (v *View) stopThinking() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.thinking = false
}

func (v *View) refresh() {
	v.board.SetGame(v.game)
	v.statusbar.SetTurns(v.game.Turns())
	v.statusbar.SetRemaining(v.game.Descriptor.Len())
	v.statusbar.SetMessage("")
	switch {
	case v.game.Solved():
		v.statusbar.SetState(status.StateSolved)
	case v.game.Contradiction():
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("No word fits; check the colours")
	default:
		v.statusbar.SetState(status.StateReady)
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the game screen.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	title := v.styles.Title.Render("Wordle") + "  " + v.styles.Muted.Render(v.mode.Description())
	if v.game != nil && v.game.Turns() > domain.MaxTurns && !v.game.Solved() {
		title += "  " + v.styles.Warning.Render(fmt.Sprintf("past %d guesses", domain.MaxTurns))
	}

	var bottom string
	if v.finished {
		bottom = v.styles.Success.Render("Solved! [enter] play again  [esc] menu")
	} else {
		bottom = v.input.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		v.board.View(),
		"",
		bottom,
		"",
		v.list.View(),
	)

	contentHeight := lipgloss.Height(content)
	padding := max(v.height-contentHeight-1, 0)
	return content + strings.Repeat("\n", padding) + "\n" + v.statusbar.View()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	// Board, input and headings take about 20 rows.
	v.list.SetDimensions(width, max(height-20, 3))
}

// Game returns the current game, or nil before one starts.
func (v *View) Game() *domain.Game {
	return v.game
}

// Mode returns the mode of the current game.
func (v *View) Mode() domain.Mode {
	return v.mode
}

// Thinking reports whether a recommendation is in progress.
func (v *View) Thinking() bool {
	return v.thinking
}

// Finished reports whether the game was solved.
func (v *View) Finished() bool {
	return v.finished
}

// ListWords returns the words shown below the board.
func (v *View) ListWords() []string {
	return v.list.Words()
}

// Err returns the last error shown.
func (v *View) Err() error {
	return v.err
}
