package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/services"
)

var testAnswers = []string{"CRANE", "TRACE", "GRACE", "BRACE", "SLATE"}

// fixedLoader implements driven.WordListLoader with a tiny corpus.
type fixedLoader struct{}

func (fixedLoader) LoadAnswers(context.Context) ([]domain.Word, error) {
	return domain.ParseWords(testAnswers)
}

func (fixedLoader) LoadGuesses(context.Context) ([]domain.Word, error) {
	return domain.ParseWords([]string{"ADIEU", "ROAST"})
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	games := services.NewGameService(
		fixedLoader{},
		services.NewSettingsService(memory.NewConfigStore()),
		memory.NewStatsStore(),
		nil,
	)
	server, err := NewServer(&Ports{Game: games})
	require.NoError(t, err)
	return server
}
