package domain

// GuessPool selects which words the recommender considers as guesses.
type GuessPool string

// Available guess pools.
const (
	// PoolFull considers every legal guess.
	PoolFull GuessPool = "full"

	// PoolCandidates only considers words that could still be the answer.
	PoolCandidates GuessPool = "candidates"
)

// IsValid returns true if the pool is recognised.
func (p GuessPool) IsValid() bool {
	switch p {
	case PoolFull, PoolCandidates:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p GuessPool) String() string {
	return string(p)
}

// Description returns a human-readable description of the pool.
func (p GuessPool) Description() string {
	switch p {
	case PoolFull:
		return "Full (every legal guess)"
	case PoolCandidates:
		return "Candidates (only words that could be the answer)"
	default:
		return unknownDescription
	}
}

// AllGuessPools returns all available guess pools.
func AllGuessPools() []GuessPool {
	return []GuessPool{PoolFull, PoolCandidates}
}

// Recommendation is the result of a minimax guess search.
type Recommendation struct {
	// WorstCase is the most candidates any answer could leave after playing
	// one of the recommended words.
	WorstCase int

	// Words are the recommended guesses in pool order.
	Words []Word

	// AnyCandidate is true when the recommended words could themselves be
	// the answer.
	AnyCandidate bool

	// Ties is how many words were eligible before sampling down to Words.
	Ties int
}

// IsEmpty reports whether nothing was recommended.
func (r Recommendation) IsEmpty() bool {
	return len(r.Words) == 0
}

// RecommendOptions tunes a single recommendation. Zero fields fall back to
// the configured solver settings.
type RecommendOptions struct {
	Pool       GuessPool
	MaxResults int
	Workers    int
	Seed       uint64
}

// WithDefaults fills zero fields from s.
func (o RecommendOptions) WithDefaults(s SolverSettings) RecommendOptions {
	if o.Pool == "" {
		o.Pool = s.Pool
	}
	if o.MaxResults == 0 {
		o.MaxResults = s.MaxResults
	}
	if o.Workers == 0 {
		o.Workers = s.Workers
	}
	if o.Seed == 0 {
		o.Seed = s.Seed
	}
	return o
}
