package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent caller-input and session failures.
// The constraint engine itself has no failure modes.
var (
	// ErrMalformedGuess indicates a guess is not exactly five letters A-Z.
	ErrMalformedGuess = errors.New("malformed guess")

	// ErrMalformedFeedback indicates a colour string is not exactly five of G, Y, B.
	ErrMalformedFeedback = errors.New("malformed feedback")

	// ErrInvalidInput indicates malformed or invalid settings input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyCorpus indicates a word list produced no words.
	ErrEmptyCorpus = errors.New("empty word list")

	// Session Errors.

	// ErrNoSecret indicates an oracle guess was made in a game without a known answer.
	// Assist games must report feedback instead.
	ErrNoSecret = errors.New("game has no known answer")

	// ErrGameOver indicates a guess was submitted after the puzzle was solved.
	ErrGameOver = errors.New("game is already solved")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
