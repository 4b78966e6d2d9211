package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

// testAnswers is a small answer list with overlapping letters and repeats.
var testAnswers = []string{
	"CRANE", "TRACE", "CRATE", "GRACE", "BRACE", "SLATE", "STALE", "STEAL",
	"LEAST", "SPEED", "ERASE", "THERE", "THREE", "EERIE", "ROBOT", "FLOOR",
	"SKILL", "STILL", "SHALL", "SMALL",
}

// testGuesses are extra legal guesses; CRANE repeats an answer.
var testGuesses = []string{"ADIEU", "ROAST", "LYMPH", "CRANE", "OUTDO", "SALET"}

// mockWordListLoader implements driven.WordListLoader for testing.
type mockWordListLoader struct {
	answers    []string
	guesses    []string
	answersErr error
	guessesErr error

	mu    sync.Mutex
	loads int
}

func newMockLoader() *mockWordListLoader {
	return &mockWordListLoader{answers: testAnswers, guesses: testGuesses}
}

func (m *mockWordListLoader) LoadAnswers(_ context.Context) ([]domain.Word, error) {
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
	if m.answersErr != nil {
		return nil, m.answersErr
	}
	return domain.ParseWords(m.answers)
}

func (m *mockWordListLoader) LoadGuesses(_ context.Context) ([]domain.Word, error) {
	if m.guessesErr != nil {
		return nil, m.guessesErr
	}
	return domain.ParseWords(m.guesses)
}

// mockProgress implements driven.ProgressReporter for testing.
type mockProgress struct {
	mu       sync.Mutex
	total    int
	done     int
	desc     string
	started  int
	finished int
}

func (m *mockProgress) Start(total int, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total, m.desc, m.done = total, description, 0
	m.started++
}

func (m *mockProgress) Add(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done += n
}

func (m *mockProgress) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished++
}

func words(t *testing.T, ss ...string) []domain.Word {
	t.Helper()
	ws, err := domain.ParseWords(ss)
	require.NoError(t, err)
	return ws
}
