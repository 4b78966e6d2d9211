package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySolverPool        = "solver.pool"
	keySolverMaxResults  = "solver.max_results"
	keySolverWorkers     = "solver.workers"
	keySolverSeed        = "solver.seed"
	keySolverOpeningWord = "solver.opening_word"
	keyWordListAnswers   = "wordlist.answers"
	keyWordListGuesses   = "wordlist.guesses"
	keyUIProgress        = "ui.progress"
)

var settingKeys = []string{
	keySolverPool,
	keySolverMaxResults,
	keySolverWorkers,
	keySolverSeed,
	keySolverOpeningWord,
	keyWordListAnswers,
	keyWordListGuesses,
	keyUIProgress,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Solver: domain.SolverSettings{
			Pool:        s.getPool(defaults.Solver.Pool),
			MaxResults:  s.getInt(keySolverMaxResults, defaults.Solver.MaxResults),
			Workers:     max(s.configStore.GetInt(keySolverWorkers), 0),
			Seed:        uint64(max(s.configStore.GetInt(keySolverSeed), 0)),
			OpeningWord: strings.ToUpper(s.getString(keySolverOpeningWord, defaults.Solver.OpeningWord)),
		},
		WordList: domain.WordListSettings{
			AnswersPath: s.configStore.GetString(keyWordListAnswers), // empty means built-in
			GuessesPath: s.configStore.GetString(keyWordListGuesses),
		},
		UI: domain.UISettings{
			Progress: s.getBool(keyUIProgress, defaults.UI.Progress),
		},
	}
	if settings.Solver.MaxResults < 1 {
		settings.Solver.MaxResults = defaults.Solver.MaxResults
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keySolverPool, settings.Solver.Pool.String()},
		{keySolverMaxResults, settings.Solver.MaxResults},
		{keySolverWorkers, settings.Solver.Workers},
		{keySolverSeed, int(settings.Solver.Seed)}, //nolint:gosec // seeds fit in TOML's int64
		{keySolverOpeningWord, strings.ToUpper(settings.Solver.OpeningWord)},
		{keyWordListAnswers, settings.WordList.AnswersPath},
		{keyWordListGuesses, settings.WordList.GuessesPath},
		{keyUIProgress, settings.UI.Progress},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Set parses value for a single configuration key and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	value = strings.TrimSpace(value)

	switch key {
	case keySolverPool:
		settings.Solver.Pool = domain.GuessPool(strings.ToLower(value))
	case keySolverMaxResults:
		settings.Solver.MaxResults, err = parseInt(key, value)
	case keySolverWorkers:
		settings.Solver.Workers, err = parseInt(key, value)
	case keySolverSeed:
		settings.Solver.Seed, err = strconv.ParseUint(value, 10, 63)
		if err != nil {
			err = fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
	case keySolverOpeningWord:
		settings.Solver.OpeningWord = strings.ToUpper(value)
	case keyWordListAnswers:
		settings.WordList.AnswersPath = value
	case keyWordListGuesses:
		settings.WordList.GuessesPath = value
	case keyUIProgress:
		settings.UI.Progress, err = strconv.ParseBool(value)
		if err != nil {
			err = fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
	default:
		return fmt.Errorf("%w: unknown key %q (known: %s)", domain.ErrInvalidInput, key, strings.Join(settingKeys, ", "))
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Keys lists the configuration keys Set accepts, in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getPool(defaultVal domain.GuessPool) domain.GuessPool {
	val := s.configStore.GetString(keySolverPool)
	if val == "" {
		return defaultVal
	}
	pool := domain.GuessPool(strings.ToLower(val))
	if !pool.IsValid() {
		return defaultVal
	}
	return pool
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}
