package domain

import "strings"

const unknownDescription = "Unknown"

// SolverSettings holds recommendation behaviour configuration.
type SolverSettings struct {
	// Pool is which words are considered as guesses.
	Pool GuessPool

	// MaxResults is how many tied words a recommendation returns.
	MaxResults int

	// Workers bounds parallel guess evaluation. 0 means one per CPU.
	Workers int

	// Seed makes tie sampling reproducible. 0 means seeded from the clock.
	Seed uint64

	// OpeningWord is the first guess in auto-play.
	OpeningWord string
}

// WordListSettings holds the word list locations.
type WordListSettings struct {
	// AnswersPath is a newline-delimited answer list.
	// Empty uses the built-in list.
	AnswersPath string

	// GuessesPath is a newline-delimited list of extra legal guesses.
	// Empty uses the built-in list.
	GuessesPath string
}

// UsesBuiltin returns true if both lists come from the built-in corpus.
func (w WordListSettings) UsesBuiltin() bool {
	return w.AnswersPath == "" && w.GuessesPath == ""
}

// UISettings holds presentation configuration.
type UISettings struct {
	// Progress shows progress bars for long searches when writing to a terminal.
	Progress bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Solver holds recommendation settings.
	Solver SolverSettings

	// WordList holds word list settings.
	WordList WordListSettings

	// UI holds presentation settings.
	UI UISettings
}

// DefaultOpeningWord is the auto-play first guess.
const DefaultOpeningWord = "ARISE"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Solver: SolverSettings{
			Pool:        PoolFull,
			MaxResults:  5,
			Workers:     0, // one per CPU
			Seed:        0,
			OpeningWord: DefaultOpeningWord,
		},
		// Empty paths use the built-in word lists
		WordList: WordListSettings{},
		UI: UISettings{
			Progress: true,
		},
	}
}

// Validate checks the settings for values the solver cannot use.
// Returned errors wrap ErrInvalidInput.
func (s AppSettings) Validate() error {
	if !s.Solver.Pool.IsValid() {
		return invalidf("guess pool %q must be one of %s", s.Solver.Pool, poolNames())
	}
	if s.Solver.MaxResults < 1 {
		return invalidf("max results must be at least 1, got %d", s.Solver.MaxResults)
	}
	if s.Solver.Workers < 0 {
		return invalidf("workers must not be negative, got %d", s.Solver.Workers)
	}
	if _, err := ParseWord(s.Solver.OpeningWord); err != nil {
		return invalidf("opening word: %v", err)
	}
	return nil
}

func poolNames() string {
	names := make([]string, 0, len(AllGuessPools()))
	for _, p := range AllGuessPools() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
