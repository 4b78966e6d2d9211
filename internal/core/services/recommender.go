package services

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// abandoned marks a guess whose score was cut short because it could no
// longer beat the best guess.
const abandoned = math.MaxInt

// ctxCheckEvery is how many answers a worker scores between context checks.
const ctxCheckEvery = 64

// Recommender finds the guesses that minimise the worst-case number of
// candidates left after the answer's feedback.
type Recommender struct {
	progress driven.ProgressReporter
}

// NewRecommender creates a recommender.
// The progress parameter is optional (can be nil).
func NewRecommender(progress driven.ProgressReporter) *Recommender {
	return &Recommender{progress: progress}
}

// Recommend scores every pool word against every remaining answer.
//
// A word's score is the largest number of candidates any answer could leave
// after playing it. The lowest score wins; among the winners, words that could
// themselves be the answer are preferred. When more than opts.MaxResults words
// tie, a uniform sample is returned, in pool order.
//
// guesses is the full guess corpus, used when opts.Pool is domain.PoolFull.
// An empty candidate set gives an empty recommendation and no error.
func (r *Recommender) Recommend(
	ctx context.Context, d *domain.Descriptor, guesses []domain.Word, opts domain.RecommendOptions,
) (domain.Recommendation, error) {
	logger.Section("Recommend")
	remaining := d.Remaining()
	if len(remaining) == 0 {
		logger.Warn("No candidates remain, nothing to recommend")
		return domain.Recommendation{}, nil
	}

	pool := guesses
	if opts.Pool == domain.PoolCandidates || len(pool) == 0 {
		pool = remaining
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger.Solver("Pool %s: %d guesses x %d candidates, %d workers", opts.Pool, len(pool), len(remaining), workers)

	stop := logger.Timer("score guesses")
	scores, worst, err := r.score(ctx, d.Constraints(), pool, remaining, workers)
	if err != nil {
		return domain.Recommendation{}, err
	}
	stop()

	rec := pick(pool, scores, worst, remaining)
	rec.Words = sample(rec.Words, opts.MaxResults, opts.Seed)
	logger.Solver("Worst case %d with %d tied guesses (candidates: %t)", rec.WorstCase, rec.Ties, rec.AnyCandidate)
	return rec, nil
}

// score returns the score of every pool word and the lowest score.
// Abandoned words score above every completed one.
func (r *Recommender) score(
	ctx context.Context, base domain.Constraints, pool, remaining []domain.Word, workers int,
) ([]int, int, error) {
	if r.progress != nil {
		r.progress.Start(len(pool), "scoring guesses")
		defer r.progress.Finish()
	}

	// No guess can leave more candidates than there are now.
	var best atomic.Int64
	best.Store(int64(len(remaining)))

	scores := make([]int, len(pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pool {
		g.Go(func() error {
			s, err := worstCase(gctx, base, pool[i], remaining, &best)
			if err != nil {
				return err
			}
			scores[i] = s
			if r.progress != nil {
				r.progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return scores, int(best.Load()), nil
}

// worstCase scores one guess and lowers best when it wins.
// It returns abandoned as soon as the guess is known to be worse than best.
func worstCase(
	ctx context.Context, base domain.Constraints, guess domain.Word, remaining []domain.Word, best *atomic.Int64,
) (int, error) {
	// Counts per feedback pattern, stored +1 so zero means not computed.
	var memo [domain.FeedbackCodes]int
	worst := 0

	for i, answer := range remaining {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		fb := domain.Evaluate(guess, answer)
		code := fb.Code()
		n := memo[code] - 1
		if n < 0 {
			c := base
			c.Apply(guess, fb)
			// Count stops past the limit, which is enough to abandon.
			n = c.Count(remaining, int(best.Load()))
			memo[code] = n + 1
		}

		if n > worst {
			worst = n
			if int64(worst) > best.Load() {
				return abandoned, nil
			}
		}
	}

	for {
		cur := best.Load()
		if int64(worst) >= cur || best.CompareAndSwap(cur, int64(worst)) {
			return worst, nil
		}
	}
}

// pick collects the words achieving worst, preferring candidates.
func pick(pool []domain.Word, scores []int, worst int, remaining []domain.Word) domain.Recommendation {
	possible := make(map[string]struct{}, len(remaining))
	for _, w := range remaining {
		possible[w.String()] = struct{}{}
	}

	var tied, candidates []domain.Word
	for i, s := range scores {
		if s != worst {
			continue
		}
		tied = append(tied, pool[i])
		if _, ok := possible[pool[i].String()]; ok {
			candidates = append(candidates, pool[i])
		}
	}

	rec := domain.Recommendation{WorstCase: worst, Words: tied}
	if len(candidates) > 0 {
		rec.Words = candidates
		rec.AnyCandidate = true
	}
	rec.Ties = len(rec.Words)
	return rec
}

// sample draws n words uniformly without replacement, keeping their order.
// A zero seed draws from the clock.
func sample(words []domain.Word, n int, seed uint64) []domain.Word {
	if n <= 0 || len(words) <= n {
		return words
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	idx := rng.Perm(len(words))[:n]
	slices.Sort(idx)
	out := make([]domain.Word, n)
	for i, j := range idx {
		out[i] = words[j]
	}
	return out
}
