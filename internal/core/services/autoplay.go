package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// Ensure AutoPlayer implements the interface.
var _ driving.AutoPlayer = (*AutoPlayer)(nil)

// maxAutoTurns stops a self-played game that is not converging.
const maxAutoTurns = 12

// errNoProgress is returned when the solver has nothing left to play.
var errNoProgress = errors.New("solver has no guess to play")

// AutoPlayer lets the solver play itself: the opening word first, then the
// first recommended guess each turn.
type AutoPlayer struct {
	games    driving.GameService
	settings driving.SettingsService
	progress driven.ProgressReporter
}

// NewAutoPlayer creates an auto player.
// The progress parameter is optional (can be nil).
func NewAutoPlayer(
	games driving.GameService, settings driving.SettingsService, progress driven.ProgressReporter,
) *AutoPlayer {
	return &AutoPlayer{games: games, settings: settings, progress: progress}
}

// Play solves one game against secret and records its result.
func (a *AutoPlayer) Play(ctx context.Context, secret string) (domain.GameResult, error) {
	settings, err := a.settings.Get()
	if err != nil {
		return domain.GameResult{}, fmt.Errorf("get settings: %w", err)
	}

	game, err := a.games.StartWithSecret(ctx, secret)
	if err != nil {
		return domain.GameResult{}, err
	}

	word := settings.Solver.OpeningWord
	for !game.Solved() && game.Turns() < maxAutoTurns {
		if _, err := a.games.Guess(ctx, game, word); err != nil {
			return domain.GameResult{}, fmt.Errorf("turn %d: %w", game.Turns()+1, err)
		}
		if game.Solved() {
			break
		}

		rec, err := a.games.Recommend(ctx, game, domain.RecommendOptions{})
		if err != nil {
			return domain.GameResult{}, fmt.Errorf("turn %d: %w", game.Turns()+1, err)
		}
		if rec.IsEmpty() {
			return domain.GameResult{}, fmt.Errorf("turn %d: %w", game.Turns()+1, errNoProgress)
		}
		word = rec.Words[0].String()
	}

	return a.games.Finish(ctx, game)
}

// Run plays every answer in list order, or the first limit when limit > 0.
func (a *AutoPlayer) Run(ctx context.Context, limit int) (*driving.AutoReport, error) {
	logger.Section("Auto Play")
	defer logger.Timer("auto-play")()

	answers, err := a.games.Answers(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(answers) {
		answers = answers[:limit]
	}

	if a.progress != nil {
		a.progress.Start(len(answers), "auto-play")
		defer a.progress.Finish()
	}

	report := &driving.AutoReport{
		Results: make([]domain.GameResult, 0, len(answers)),
		Stats:   domain.NewStats(),
	}
	for _, answer := range answers {
		result, err := a.Play(ctx, answer.String())
		if err != nil {
			return report, fmt.Errorf("play %s: %w", answer, err)
		}
		report.Results = append(report.Results, result)
		report.Stats.Add(result)

		if result.Failed() {
			logger.Warn("%s took %d guesses: %v", result.Answer, result.Turns(), result.Guesses)
		} else {
			logger.Debug("%s in %d: %v", result.Answer, result.Turns(), result.Guesses)
		}
		if a.progress != nil {
			a.progress.Add(1)
		}
	}

	logger.Info("Played %d games: %s", report.Stats.Games, report.Stats)
	return report, nil
}
