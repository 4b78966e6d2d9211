package mcp

import (
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Game evaluates guesses and runs the solver.
	Game driving.GameService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Game == nil {
		return ErrMissingGameService
	}
	return nil
}
