package driving

import (
	"context"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// StatsService summarises finished games.
type StatsService interface {
	// Summary aggregates every recorded game.
	Summary(ctx context.Context) (domain.Stats, error)

	// Reset discards recorded games.
	Reset(ctx context.Context) error
}
