package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService summarises finished games.
type StatsService struct {
	store driven.StatsStore
}

// NewStatsService creates a new stats service.
func NewStatsService(store driven.StatsStore) *StatsService {
	return &StatsService{store: store}
}

// Summary aggregates every recorded game.
func (s *StatsService) Summary(ctx context.Context) (domain.Stats, error) {
	results, err := s.store.List(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("list results: %w", err)
	}

	stats := domain.NewStats()
	for _, r := range results {
		stats.Add(r)
	}
	return stats, nil
}

// Reset discards recorded games.
func (s *StatsService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}
