package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

func TestStatsService_Summary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStatsStore()
	svc := NewStatsService(store)

	empty, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Games)

	require.NoError(t, store.Record(ctx, domain.GameResult{Answer: "TRACE", Guesses: []string{"ARISE", "TRACE"}, Solved: true}))
	require.NoError(t, store.Record(ctx, domain.GameResult{Answer: "SKILL", Guesses: []string{"ARISE", "STILL", "SHALL", "SKILL"}, Solved: true}))

	stats, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Games)
	assert.Equal(t, map[int]int{2: 1, 4: 1}, stats.Histogram)
	assert.InDelta(t, 3.0, stats.Average(), 1e-9)
}

func TestStatsService_Reset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStatsStore()
	svc := NewStatsService(store)
	require.NoError(t, store.Record(ctx, domain.GameResult{Answer: "TRACE", Guesses: []string{"TRACE"}, Solved: true}))

	require.NoError(t, svc.Reset(ctx))

	stats, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Games)
}
