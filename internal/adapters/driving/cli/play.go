package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/board"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

var playAssist bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play or solve a puzzle at the prompt",
	Long: `Starts an interactive game at the prompt.

By default a random answer is picked and you guess it. With --assist you
type the guesses and colours from another board and the solver narrows
down the answers.

Commands at the guess prompt:
  ?     help
  1     assist with a puzzle from another board
  2     new random word
  3     list the possible answers
  4     recommend a guess
  5     let the solver play every answer
  6, q  quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playAssist, "assist", false, "start in assist mode")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if err := requireGame(); err != nil {
		return err
	}

	session := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), gameService, autoPlayer)
	mode := domain.ModePlay
	if playAssist {
		mode = domain.ModeAssist
	}
	if err := session.Run(cmd.Context(), mode); err != nil {
		return err
	}

	if statsService != nil {
		if stats, err := statsService.Summary(cmd.Context()); err == nil && stats.Games > 0 {
			cmd.Printf("Session: %d games %s\n", stats.Games, stats)
		}
	}
	return nil
}

const playHelp = `Commands: ? help, 1 assist, 2 new word, 3 possibilities, 4 recommend, 5 auto, 6/q quit
Guesses are 5 letters A-Z. Colours are 5 of G (green), Y (yellow), B (black).`

// errQuit ends the session.
var errQuit = errors.New("quit")

// Session is the line-oriented game loop behind the play command.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	games  driving.GameService
	auto   driving.AutoPlayer
	styles *styles.Styles

	game *domain.Game
}

// NewSession creates a session reading commands from in.
// The auto player is optional.
func NewSession(in io.Reader, out io.Writer, games driving.GameService, auto driving.AutoPlayer) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		games:  games,
		auto:   auto,
		styles: styles.DefaultStyles(),
	}
}

// Game returns the game in progress.
func (s *Session) Game() *domain.Game {
	return s.game
}

// Run loops until the input ends or the user quits.
func (s *Session) Run(ctx context.Context, mode domain.Mode) error {
	if err := s.start(ctx, mode); err != nil {
		return err
	}
	s.println(playHelp)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.render()

		line, ok := s.prompt("Guess #%d: ", s.game.Turns()+1)
		if !ok {
			return nil
		}
		err := s.handle(ctx, line)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, context.Canceled):
			return err
		case err != nil:
			s.printf("Error: %v\n", err)
		}
	}
}

func (s *Session) start(ctx context.Context, mode domain.Mode) error {
	game, err := s.games.Start(ctx, mode)
	if err != nil {
		return err
	}
	s.game = game

	s.println(strings.Repeat("=", 20))
	if mode == domain.ModeAssist {
		s.println("Ready to help you solve a puzzle from another board.")
		return nil
	}
	info, err := s.games.Corpus(ctx)
	if err != nil {
		return err
	}
	s.printf("Picking a random word from %d possibilities.\n", info.Answers)
	return nil
}

func (s *Session) handle(ctx context.Context, line string) error {
	switch line {
	case "":
		return nil
	case "?":
		s.println(playHelp)
	case "1":
		return s.start(ctx, domain.ModeAssist)
	case "2":
		return s.start(ctx, domain.ModePlay)
	case "3":
		s.possibilities()
	case "4":
		return s.recommend(ctx)
	case "5":
		return s.autoPlay(ctx)
	case "6", "Q":
		return errQuit
	default:
		return s.guess(ctx, line)
	}
	return nil
}

func (s *Session) guess(ctx context.Context, line string) error {
	if _, err := domain.ParseWord(line); err != nil {
		s.println(playHelp)
		return nil
	}
	if s.game.Solved() {
		return domain.ErrGameOver
	}

	var err error
	if s.game.Mode == domain.ModeAssist {
		colors, ok := s.prompt("Colours #%d: ", s.game.Turns()+1)
		if !ok {
			return errQuit
		}
		_, err = s.games.Report(ctx, s.game, line, colors)
	} else {
		_, err = s.games.Guess(ctx, s.game, line)
	}
	if err != nil {
		return err
	}

	switch {
	case s.game.Solved():
		return s.finish(ctx)
	case s.game.Contradiction():
		s.println("No answer fits those colours. Press 1 to start over.")
	}
	return nil
}

func (s *Session) finish(ctx context.Context) error {
	s.render()
	result, err := s.games.Finish(ctx, s.game)
	if err != nil {
		return err
	}
	s.printf("Solved %s in %d guesses.\n", result.Answer, result.Turns())
	return s.start(ctx, s.game.Mode)
}

func (s *Session) possibilities() {
	words := domain.Strings(s.games.Candidates(s.game))
	s.printf("Remaining answers: %d", len(words))
	if len(words) <= 8 {
		s.printf("  %s", strings.Join(words, " "))
	}
	s.println()
}

func (s *Session) recommend(ctx context.Context) error {
	s.possibilities()
	rec, err := s.games.Recommend(ctx, s.game, domain.RecommendOptions{})
	if err != nil {
		return err
	}
	if rec.IsEmpty() {
		s.println("No recommendation: no answer fits those colours.")
		return nil
	}
	kind := ""
	if rec.AnyCandidate {
		kind = "possible "
	}
	s.printf("Try one of these %swords: %s\n", kind, strings.Join(domain.Strings(rec.Words), ", "))
	s.printf("This leaves at most %d answers.\n", rec.WorstCase)
	return nil
}

func (s *Session) autoPlay(ctx context.Context) error {
	if s.auto == nil {
		return fmt.Errorf("auto player: %w", errNotConfigured)
	}
	s.println("Stand back. Playing every answer.")
	report, err := s.auto.Run(ctx, 0)
	if err != nil {
		return err
	}
	s.printf("Played %d games: %s\n", report.Stats.Games, report.Stats)
	if len(report.Stats.Failures) > 0 {
		s.printf("Failed: %s\n", strings.Join(report.Stats.Failures, ", "))
	}
	return nil
}

func (s *Session) render() {
	if s.game.Turns() == 0 {
		return
	}
	s.println(strings.Repeat("-", 20))
	for i, g := range s.game.Guesses {
		s.printf("Guess #%d:  %s  %s\n", i+1, board.Row(s.styles, g), g)
	}
	s.println(board.Keyboard(s.styles, s.game.Descriptor.View().LetterStatus))
}

// prompt prints the prompt and reads one upper-cased line.
func (s *Session) prompt(format string, args ...any) (string, bool) {
	s.printf(format, args...)
	if !s.in.Scan() {
		s.println()
		return "", false
	}
	return strings.ToUpper(strings.TrimSpace(s.in.Text())), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}
