package driven

import (
	"context"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// WordListLoader supplies the word corpora. Both lists are read once per
// session and treated as immutable afterwards.
type WordListLoader interface {
	// LoadAnswers returns the words that can be the secret, in list order.
	LoadAnswers(ctx context.Context) ([]domain.Word, error)

	// LoadGuesses returns the extra words accepted as guesses, in list order.
	// It may overlap the answers.
	LoadGuesses(ctx context.Context) ([]domain.Word, error)
}
