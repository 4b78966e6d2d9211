package domain

import (
	"fmt"
	"slices"
	"time"
)

// GameResult summarises one finished game.
type GameResult struct {
	// GameID is the ID of the game.
	GameID string

	// Answer is the secret word.
	Answer string

	// Guesses lists the words played in order.
	Guesses []string

	// Solved is false if the game ended without an all-green guess.
	Solved bool

	// Duration is how long the game took to play.
	Duration time.Duration
}

// Turns returns the number of guesses played.
func (r GameResult) Turns() int {
	return len(r.Guesses)
}

// Failed reports whether the game was lost by the real puzzle's rules.
func (r GameResult) Failed() bool {
	return !r.Solved || r.Turns() > MaxTurns
}

// Stats aggregates game results.
type Stats struct {
	// Games is the number of recorded games.
	Games int

	// Histogram maps guesses-to-solve to the number of games.
	Histogram map[int]int

	// Failures lists answers that were not solved within MaxTurns.
	Failures []string

	// TotalTurns is the sum of turns over all games.
	TotalTurns int
}

// NewStats returns empty stats.
func NewStats() Stats {
	return Stats{Histogram: make(map[int]int)}
}

// Add records one result.
func (s *Stats) Add(r GameResult) {
	if s.Histogram == nil {
		s.Histogram = make(map[int]int)
	}
	s.Games++
	s.TotalTurns += r.Turns()
	s.Histogram[r.Turns()]++
	if r.Failed() {
		s.Failures = append(s.Failures, r.Answer)
	}
}

// Average returns the mean number of guesses, or 0 with no games.
func (s Stats) Average() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// Turns returns the histogram keys in ascending order.
func (s Stats) Turns() []int {
	turns := make([]int, 0, len(s.Histogram))
	for t := range s.Histogram {
		turns = append(turns, t)
	}
	slices.Sort(turns)
	return turns
}

// String renders a one-line summary, e.g. "3:12 4:40 5:8 (avg 3.93)".
func (s Stats) String() string {
	out := ""
	for _, t := range s.Turns() {
		out += fmt.Sprintf("%d:%d ", t, s.Histogram[t])
	}
	return fmt.Sprintf("%s(avg %.2f)", out, s.Average())
}
