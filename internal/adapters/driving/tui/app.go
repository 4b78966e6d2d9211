package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/views/game"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// gameView is the board and solver view.
	gameView *game.View

	// stats is the last loaded session summary.
	stats *domain.Stats

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		gameView:    game.NewView(s, nil, ports.Game),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.gameView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wordle - minimax solver"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewGame:
			a.gameView, cmd = a.gameView.Update(msg)
			return a, cmd

		case messages.ViewStats, messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, nil

	case messages.GameRequested:
		a.currentView = messages.ViewGame
		return a, tea.Batch(a.gameView.Init(), a.gameView.Start(msg.Mode))

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewStats {
			return a, a.loadStats()
		}
		return a, nil

	case messages.StatsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		stats := msg.Stats
		a.stats = &stats
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewGame {
			a.gameView, cmd = a.gameView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Game messages arrive from background commands.
	a.gameView, cmd = a.gameView.Update(msg)
	return a, cmd
}

func (a *App) loadStats() tea.Cmd {
	if a.ports.Stats == nil {
		return nil
	}
	svc, ctx := a.ports.Stats, a.ctx
	return func() tea.Msg {
		stats, err := svc.Summary(ctx)
		return messages.StatsLoaded{Stats: stats, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewGame:
		return a.gameView.View()
	case messages.ViewStats:
		return a.viewStats()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewStats renders the guess histogram for games finished this session.
func (a *App) viewStats() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Stats"))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	case a.stats == nil || a.stats.Games == 0:
		b.WriteString(a.styles.Muted.Render("No games solved yet."))
	default:
		fmt.Fprintf(&b, "Games: %d  Average: %.2f\n\n", a.stats.Games, a.stats.Average())
		for _, turns := range a.stats.Turns() {
			count := a.stats.Histogram[turns]
			fmt.Fprintf(&b, "%2d | %s %d\n", turns, strings.Repeat("#", count), count)
		}
		if len(a.stats.Failures) > 0 {
			b.WriteString("\n")
			b.WriteString(a.styles.Warning.Render("Over the limit: " + strings.Join(a.stats.Failures, " ")))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Play:
  (type)      Enter a five-letter guess
  enter       Submit guess
  ctrl+r      Recommend the guesses with the best worst case
  ctrl+p      List the possible answers
  ctrl+n      Start over
  ↑/↓         Scroll the word list

Assist:
  Type the word you played, a space, then its colours:
  G green, Y yellow, B black. Example: CRANE GYBBY

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// GameView returns the game view.
func (a *App) GameView() *game.View {
	return a.gameView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.gameView.SetDimensions(width, height)
}
