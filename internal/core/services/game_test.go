package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

func newTestGameService(t *testing.T) (*GameService, *memory.StatsStore, *mockWordListLoader) {
	t.Helper()
	loader := newMockLoader()
	stats := memory.NewStatsStore()
	settings := NewSettingsService(memory.NewConfigStore())
	return NewGameService(loader, settings, stats, nil), stats, loader
}

func TestGameService_Corpus(t *testing.T) {
	svc, _, loader := newTestGameService(t)

	info, err := svc.Corpus(context.Background())
	require.NoError(t, err)

	// CRANE is in both lists and counted once.
	assert.Equal(t, len(testAnswers), info.Answers)
	assert.Equal(t, len(testAnswers)+len(testGuesses)-1, info.Guesses)

	_, err = svc.Corpus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, loader.loads, "lists are loaded once")
}

func TestGameService_GuessListOrder(t *testing.T) {
	svc, _, _ := newTestGameService(t)

	_, guesses, err := svc.corpus(context.Background())
	require.NoError(t, err)

	got := domain.Strings(guesses)
	assert.Equal(t, testGuesses, got[:len(testGuesses)])
	assert.Equal(t, "TRACE", got[len(testGuesses)], "first answer not already a guess")
}

func TestGameService_CorpusErrors(t *testing.T) {
	boom := errors.New("disk on fire")

	tests := []struct {
		name   string
		loader *mockWordListLoader
		want   error
	}{
		{name: "answers fail", loader: &mockWordListLoader{answersErr: boom}, want: boom},
		{name: "guesses fail", loader: &mockWordListLoader{answers: testAnswers, guessesErr: boom}, want: boom},
		{name: "no answers", loader: &mockWordListLoader{}, want: domain.ErrEmptyCorpus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGameService(tt.loader, NewSettingsService(memory.NewConfigStore()), nil, nil)
			_, err := svc.Start(context.Background(), domain.ModePlay)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGameService_Start(t *testing.T) {
	svc, _, _ := newTestGameService(t)

	play, err := svc.Start(context.Background(), domain.ModePlay)
	require.NoError(t, err)
	secret, ok := play.Secret()
	require.True(t, ok)
	assert.Contains(t, testAnswers, secret.String())
	assert.Len(t, play.ID, 36)
	assert.Equal(t, len(testAnswers), play.Descriptor.Len())

	assist, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)
	_, ok = assist.Secret()
	assert.False(t, ok)
	assert.NotEqual(t, play.ID, assist.ID)

	_, err = svc.Start(context.Background(), domain.Mode("hard"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGameService_StartWithSecret(t *testing.T) {
	svc, _, _ := newTestGameService(t)

	game, err := svc.StartWithSecret(context.Background(), "trace")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAuto, game.Mode)

	_, err = svc.StartWithSecret(context.Background(), "ADIEU")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "guess-only words cannot be the answer")

	_, err = svc.StartWithSecret(context.Background(), "TRACES")
	assert.ErrorIs(t, err, domain.ErrMalformedGuess)
}

func TestGameService_Guess(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, err := svc.StartWithSecret(context.Background(), "TRACE")
	require.NoError(t, err)

	g, err := svc.Guess(context.Background(), game, "crane")
	require.NoError(t, err)
	assert.Equal(t, "CRANE YGGBG", g.String())
	assert.Equal(t, 1, game.Turns())
	assert.NotContains(t, domain.Strings(svc.Candidates(game)), "CRANE")
	assert.Contains(t, domain.Strings(svc.Candidates(game)), "TRACE")

	_, err = svc.Guess(context.Background(), game, "CR4NE")
	assert.ErrorIs(t, err, domain.ErrMalformedGuess)
	assert.Equal(t, 1, game.Turns(), "malformed guesses are not recorded")

	g, err = svc.Guess(context.Background(), game, "TRACE")
	require.NoError(t, err)
	assert.True(t, g.Feedback.IsSolved())
	assert.True(t, game.Solved())

	_, err = svc.Guess(context.Background(), game, "SLATE")
	assert.ErrorIs(t, err, domain.ErrGameOver)
}

func TestGameService_GuessWithoutSecret(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)

	_, err = svc.Guess(context.Background(), game, "CRANE")

	assert.ErrorIs(t, err, domain.ErrNoSecret)
}

func TestGameService_Report(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)

	_, err = svc.Report(context.Background(), game, "CRANE", "YGGBX")
	assert.ErrorIs(t, err, domain.ErrMalformedFeedback)

	_, err = svc.Report(context.Background(), game, "CRANE", "ygg bg")
	assert.ErrorIs(t, err, domain.ErrMalformedFeedback)

	g, err := svc.Report(context.Background(), game, "CRANE", "yggbg")
	require.NoError(t, err)
	assert.Equal(t, "YGGBG", g.Feedback.String())
	assert.Equal(t, []string{"TRACE", "GRACE", "BRACE"}, domain.Strings(svc.Candidates(game)))

	_, err = svc.Report(context.Background(), game, "TRACE", "GGGGG")
	require.NoError(t, err)
	_, err = svc.Report(context.Background(), game, "TRACE", "GGGGG")
	assert.ErrorIs(t, err, domain.ErrGameOver)
}

func TestGameService_ReportContradiction(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)

	_, err = svc.Report(context.Background(), game, "JAZZY", "GGBBB")
	require.NoError(t, err, "impossible feedback is not an error")

	assert.True(t, game.Contradiction())
	rec, err := svc.Recommend(context.Background(), game, domain.RecommendOptions{})
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())
}

func TestGameService_Recommend(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)
	_, err = svc.Report(context.Background(), game, "SLATE", "BBGYG")
	require.NoError(t, err)

	rec, err := svc.Recommend(context.Background(), game, domain.RecommendOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.WorstCase)
	assert.Equal(t, []string{"TRACE"}, domain.Strings(rec.Words))

	_, err = svc.Recommend(context.Background(), game, domain.RecommendOptions{Pool: "everything"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGameService_RecommendUsesSettings(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("solver.pool", "candidates"))
	require.NoError(t, store.Set("solver.max_results", 1))
	svc := NewGameService(newMockLoader(), NewSettingsService(store), nil, nil)

	game, err := svc.Start(context.Background(), domain.ModeAssist)
	require.NoError(t, err)

	rec, err := svc.Recommend(context.Background(), game, domain.RecommendOptions{})
	require.NoError(t, err)
	require.Len(t, rec.Words, 1)
	assert.Contains(t, testAnswers, rec.Words[0].String())
	assert.True(t, rec.AnyCandidate)
}

func TestGameService_Finish(t *testing.T) {
	svc, stats, _ := newTestGameService(t)
	ctx := context.Background()

	game, err := svc.StartWithSecret(ctx, "TRACE")
	require.NoError(t, err)
	_, _ = svc.Guess(ctx, game, "CRANE")
	_, _ = svc.Guess(ctx, game, "TRACE")

	result, err := svc.Finish(ctx, game)
	require.NoError(t, err)
	assert.Equal(t, game.ID, result.GameID)
	assert.Equal(t, "TRACE", result.Answer)
	assert.Equal(t, []string{"CRANE", "TRACE"}, result.Guesses)
	assert.True(t, result.Solved)

	stored, err := stats.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.GameResult{result}, stored)
}

func TestGameService_FinishAssist(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	ctx := context.Background()

	unsolved, err := svc.Start(ctx, domain.ModeAssist)
	require.NoError(t, err)
	result, err := svc.Finish(ctx, unsolved)
	require.NoError(t, err)
	assert.Empty(t, result.Answer)
	assert.False(t, result.Solved)

	solved, err := svc.Start(ctx, domain.ModeAssist)
	require.NoError(t, err)
	_, err = svc.Report(ctx, solved, "GRACE", "GGGGG")
	require.NoError(t, err)
	result, err = svc.Finish(ctx, solved)
	require.NoError(t, err)
	assert.Equal(t, "GRACE", result.Answer)
}

func TestGameService_Reload(t *testing.T) {
	svc, _, loader := newTestGameService(t)
	ctx := context.Background()

	before, err := svc.Start(ctx, domain.ModeAssist)
	require.NoError(t, err)

	loader.answers = []string{"CRANE", "TRACE"}
	svc.Reload()

	info, err := svc.Corpus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Answers)
	assert.Equal(t, 2, loader.loads)
	assert.Equal(t, len(testAnswers), before.Descriptor.Len(), "started games keep their candidates")
}

func TestGameService_TracesSolverSteps(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	svc, _, _ := newTestGameService(t)
	ctx := context.Background()
	game, err := svc.Start(ctx, domain.ModeAssist)
	require.NoError(t, err)
	_, err = svc.Report(ctx, game, "CRANE", "YGGBG")
	require.NoError(t, err)
	_, err = svc.Recommend(ctx, game, domain.RecommendOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[SOLVER] Turn 1: CRANE YGGBG, candidates 20 -> 3")
	assert.Contains(t, out, "[SOLVER] Worst case")
	assert.Contains(t, out, "[TIME] score guesses: ")
	assert.Contains(t, out, "(Recommend)")
}
