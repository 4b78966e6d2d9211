package wordlist

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

//go:embed data/answers.txt
var builtinAnswers string

//go:embed data/guesses.txt
var builtinGuesses string

// Verify interface compliance.
var _ driven.WordListLoader = (*Loader)(nil)

// Loader reads word lists from files, falling back to the built-in lists for
// any path left empty.
type Loader struct {
	answersPath string
	guessesPath string
}

// New creates a loader for the configured word lists.
func New(settings domain.WordListSettings) *Loader {
	return &Loader{
		answersPath: settings.AnswersPath,
		guessesPath: settings.GuessesPath,
	}
}

// Builtin creates a loader that only uses the compiled-in lists.
func Builtin() *Loader {
	return &Loader{}
}

// LoadAnswers returns the answer list. An empty list is an error.
func (l *Loader) LoadAnswers(ctx context.Context) ([]domain.Word, error) {
	words, err := l.load(ctx, l.answersPath, builtinAnswers, "answers")
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("answers: %w", domain.ErrEmptyCorpus)
	}
	return words, nil
}

// LoadGuesses returns the extra guess list, which may be empty.
func (l *Loader) LoadGuesses(ctx context.Context) ([]domain.Word, error) {
	return l.load(ctx, l.guessesPath, builtinGuesses, "guesses")
}

func (l *Loader) load(ctx context.Context, path, builtin, name string) ([]domain.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == "" {
		words, err := Parse(strings.NewReader(builtin))
		if err != nil {
			return nil, fmt.Errorf("built-in %s: %w", name, err)
		}
		logger.Debug("loaded %d built-in %s", len(words), name)
		return words, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s list: %w", name, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded %d %s from %s", len(words), name, path)
	return words, nil
}

// Parse reads one word per line. Surrounding whitespace is trimmed, blank
// lines and lines starting with # are skipped, and case is normalised.
// Duplicates are kept; the game service de-duplicates the guess corpus.
func Parse(r io.Reader) ([]domain.Word, error) {
	var words []domain.Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		w, err := domain.ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
