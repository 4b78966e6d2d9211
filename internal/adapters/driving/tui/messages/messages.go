// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewGame is the board, input and solver output.
	ViewGame
	// ViewStats shows the guess histogram for this session.
	ViewStats
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewGame:
		return "game"
	case ViewStats:
		return "stats"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// GameRequested asks for a new game in the given mode.
type GameRequested struct {
	Mode domain.Mode
}

// GameStarted carries a freshly started game.
type GameStarted struct {
	Game *domain.Game
	Err  error
}

// RecommendationReady carries the result of a background guess search.
// GameID ties the result to the game it was computed for.
type RecommendationReady struct {
	GameID         string
	Recommendation domain.Recommendation
	Err            error
}

// GameFinished signals a solved game was recorded.
type GameFinished struct {
	Result domain.GameResult
	Err    error
}

// StatsLoaded carries the session statistics.
type StatsLoaded struct {
	Stats domain.Stats
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
