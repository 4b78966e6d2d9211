// Package tui provides an interactive terminal user interface for the solver.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Game runs play and assist sessions.
	Game driving.GameService

	// Stats summarises finished games. Optional.
	Stats driving.StatsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(game driving.GameService, stats driving.StatsService) *Ports {
	return &Ports{
		Game:  game,
		Stats: stats,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Game == nil {
		return ErrMissingGameService
	}
	return nil
}
