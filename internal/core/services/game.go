package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// Ensure GameService implements the interface.
var _ driving.GameService = (*GameService)(nil)

// GameService runs solving sessions over the loaded word lists.
type GameService struct {
	loader      driven.WordListLoader
	settings    driving.SettingsService
	stats       driven.StatsStore
	recommender *Recommender

	mu      sync.Mutex
	answers []domain.Word
	guesses []domain.Word
}

// NewGameService creates a new game service.
// The stats parameter is optional (can be nil).
func NewGameService(
	loader driven.WordListLoader,
	settings driving.SettingsService,
	stats driven.StatsStore,
	recommender *Recommender,
) *GameService {
	if recommender == nil {
		recommender = NewRecommender(nil)
	}
	return &GameService{
		loader:      loader,
		settings:    settings,
		stats:       stats,
		recommender: recommender,
	}
}

// corpus loads both word lists on first use.
// The guess list is the guesses followed by any answers not already in it.
func (s *GameService) corpus(ctx context.Context) ([]domain.Word, []domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answers != nil {
		return s.answers, s.guesses, nil
	}

	answers, err := s.loader.LoadAnswers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, nil, fmt.Errorf("load answers: %w", domain.ErrEmptyCorpus)
	}
	extra, err := s.loader.LoadGuesses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load guesses: %w", err)
	}

	seen := make(map[string]struct{}, len(extra)+len(answers))
	guesses := make([]domain.Word, 0, len(extra)+len(answers))
	for _, list := range [][]domain.Word{extra, answers} {
		for _, w := range list {
			if _, dup := seen[w.String()]; dup {
				continue
			}
			seen[w.String()] = struct{}{}
			guesses = append(guesses, w)
		}
	}

	logger.Debug("Loaded %d answers and %d guesses", len(answers), len(guesses))
	s.answers, s.guesses = answers, guesses
	return s.answers, s.guesses, nil
}

// Start begins a game.
func (s *GameService) Start(ctx context.Context, mode domain.Mode) (*domain.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidInput, mode)
	}
	answers, _, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}

	var secret domain.Word
	if mode != domain.ModeAssist {
		secret = answers[rand.IntN(len(answers))]
	}

	game := domain.NewGame(uuid.NewString(), mode, answers, secret)
	logger.Debug("Started %s game %s over %d answers", mode, game.ID, len(answers))
	return game, nil
}

// StartWithSecret begins an auto game against the given answer.
// The secret must be in the answer list.
func (s *GameService) StartWithSecret(ctx context.Context, secret string) (*domain.Game, error) {
	w, err := domain.ParseWord(secret)
	if err != nil {
		return nil, err
	}
	answers, _, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(answers, w) {
		return nil, fmt.Errorf("%w: %s is not in the answer list", domain.ErrInvalidInput, w)
	}

	game := domain.NewGame(uuid.NewString(), domain.ModeAuto, answers, w)
	logger.Debug("Started auto game %s for %s", game.ID, w)
	return game, nil
}

// Guess plays word against the game's secret.
func (s *GameService) Guess(_ context.Context, game *domain.Game, word string) (domain.Guess, error) {
	if game.Solved() {
		return domain.Guess{}, domain.ErrGameOver
	}
	secret, ok := game.Secret()
	if !ok {
		return domain.Guess{}, domain.ErrNoSecret
	}
	w, err := domain.ParseWord(word)
	if err != nil {
		return domain.Guess{}, err
	}

	g := domain.Guess{Word: w, Feedback: domain.Evaluate(w, secret)}
	s.record(game, g)
	return g, nil
}

// Report records feedback typed in from another board.
func (s *GameService) Report(_ context.Context, game *domain.Game, word, colors string) (domain.Guess, error) {
	if game.Solved() {
		return domain.Guess{}, domain.ErrGameOver
	}
	w, err := domain.ParseWord(word)
	if err != nil {
		return domain.Guess{}, err
	}
	fb, err := domain.ParseFeedback(colors)
	if err != nil {
		return domain.Guess{}, err
	}

	g := domain.Guess{Word: w, Feedback: fb}
	s.record(game, g)
	return g, nil
}

func (s *GameService) record(game *domain.Game, g domain.Guess) {
	before := game.Descriptor.Len()
	game.Record(g)
	logger.Solver("Turn %d: %s, candidates %d -> %d", game.Turns(), g, before, game.Descriptor.Len())
	if game.Contradiction() {
		logger.Warn("No answer matches the feedback so far")
	}
}

// Candidates returns the words that could still be the answer.
func (s *GameService) Candidates(game *domain.Game) []domain.Word {
	return game.Descriptor.Remaining()
}

// Recommend returns the best guesses for the game's current state.
func (s *GameService) Recommend(
	ctx context.Context, game *domain.Game, opts domain.RecommendOptions,
) (domain.Recommendation, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("get settings: %w", err)
	}
	opts = opts.WithDefaults(settings.Solver)
	if !opts.Pool.IsValid() {
		return domain.Recommendation{}, fmt.Errorf("%w: unknown pool %q", domain.ErrInvalidInput, opts.Pool)
	}

	_, guesses, err := s.corpus(ctx)
	if err != nil {
		return domain.Recommendation{}, err
	}
	return s.recommender.Recommend(ctx, game.Descriptor, guesses, opts)
}

// Finish records the game in the statistics and returns its result.
// For assist games the answer is known only once solved.
func (s *GameService) Finish(ctx context.Context, game *domain.Game) (domain.GameResult, error) {
	result := domain.GameResult{
		GameID:   game.ID,
		Guesses:  make([]string, 0, game.Turns()),
		Solved:   game.Solved(),
		Duration: time.Since(game.StartedAt),
	}
	for _, g := range game.Guesses {
		result.Guesses = append(result.Guesses, g.Word.String())
	}
	if secret, ok := game.Secret(); ok {
		result.Answer = secret.String()
	} else if result.Solved {
		result.Answer = result.Guesses[len(result.Guesses)-1]
	}

	if s.stats != nil {
		if err := s.stats.Record(ctx, result); err != nil {
			return result, fmt.Errorf("record result: %w", err)
		}
	}
	return result, nil
}

// Answers returns the possible secrets in list order.
func (s *GameService) Answers(ctx context.Context) ([]domain.Word, error) {
	answers, _, err := s.corpus(ctx)
	return answers, err
}

// Reload drops the cached word lists.
func (s *GameService) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers, s.guesses = nil, nil
	logger.Debug("Word lists will be reloaded")
}

// Corpus reports the sizes of the loaded word lists.
func (s *GameService) Corpus(ctx context.Context) (driving.CorpusInfo, error) {
	answers, guesses, err := s.corpus(ctx)
	if err != nil {
		return driving.CorpusInfo{}, err
	}
	return driving.CorpusInfo{Answers: len(answers), Guesses: len(guesses)}, nil
}
