package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
)

// Ensure StatsStore implements the interface.
var _ driven.StatsStore = (*StatsStore)(nil)

// StatsStore keeps game results for the lifetime of the process.
type StatsStore struct {
	mu      sync.RWMutex
	results []domain.GameResult
}

// NewStatsStore creates a new in-memory stats store.
func NewStatsStore() *StatsStore {
	return &StatsStore{}
}

// Record stores one result.
func (s *StatsStore) Record(ctx context.Context, result domain.GameResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	result.Guesses = slices.Clone(result.Guesses)
	s.results = append(s.results, result)
	return nil
}

// List returns every stored result in the order recorded.
func (s *StatsStore) List(_ context.Context) ([]domain.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.results), nil
}

// Reset discards all results.
func (s *StatsStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
	return nil
}
