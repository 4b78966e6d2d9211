package driving

import (
	"context"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// GameService runs solving sessions. A *domain.Game is owned by the caller
// and must not be shared between goroutines.
type GameService interface {
	// Start begins a game. ModePlay and ModeAuto pick a random secret from the
	// answer list; ModeAssist has none.
	Start(ctx context.Context, mode domain.Mode) (*domain.Game, error)

	// StartWithSecret begins an auto game against the given answer.
	StartWithSecret(ctx context.Context, secret string) (*domain.Game, error)

	// Guess plays word against the game's secret and records the feedback.
	// Returns domain.ErrNoSecret for assist games.
	Guess(ctx context.Context, game *domain.Game, word string) (domain.Guess, error)

	// Report records feedback typed in from another board, e.g. "GYBBG".
	Report(ctx context.Context, game *domain.Game, word, colors string) (domain.Guess, error)

	// Candidates returns the words that could still be the answer.
	Candidates(game *domain.Game) []domain.Word

	// Recommend returns the guesses that minimise the worst-case number of
	// remaining candidates.
	Recommend(ctx context.Context, game *domain.Game, opts domain.RecommendOptions) (domain.Recommendation, error)

	// Finish records the game in the statistics and returns its result.
	Finish(ctx context.Context, game *domain.Game) (domain.GameResult, error)

	// Answers returns the possible secrets in list order.
	Answers(ctx context.Context) ([]domain.Word, error)

	// Corpus reports the sizes of the loaded word lists.
	Corpus(ctx context.Context) (CorpusInfo, error)

	// Reload drops the loaded word lists so the next game reads them again.
	// Games already started keep their candidates.
	Reload()
}

// CorpusInfo describes the loaded word lists.
type CorpusInfo struct {
	// Answers is the number of possible secrets.
	Answers int

	// Guesses is the number of accepted guesses, answers included.
	Guesses int
}
