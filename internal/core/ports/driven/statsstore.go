package driven

import (
	"context"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// StatsStore keeps finished game results.
type StatsStore interface {
	// Record stores one result.
	Record(ctx context.Context, result domain.GameResult) error

	// List returns every stored result in the order recorded.
	List(ctx context.Context) ([]domain.GameResult, error)

	// Reset discards all results.
	Reset(ctx context.Context) error
}
