package driving

import (
	"context"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// AutoPlayer lets the solver play itself.
type AutoPlayer interface {
	// Play solves one game against secret.
	Play(ctx context.Context, secret string) (domain.GameResult, error)

	// Run plays every answer in list order, or the first limit when limit > 0.
	Run(ctx context.Context, limit int) (*AutoReport, error)
}

// AutoReport is the outcome of an auto-play run.
type AutoReport struct {
	// Results holds one entry per game in the order played.
	Results []domain.GameResult

	// Stats aggregates Results.
	Stats domain.Stats
}
