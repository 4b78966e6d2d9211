package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/components/board"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [guess] [answer]",
	Short: "Score a guess against an answer",
	Long: `Prints the colour pattern a guess earns against a known answer.

G marks a letter in the right place, Y a letter elsewhere in the word and
B a letter that is absent (or already accounted for).`,
	Example: "  wordle evaluate crane trace",
	Args:    cobra.ExactArgs(2),
	RunE:    runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	guess, err := domain.ParseWord(args[0])
	if err != nil {
		return fmt.Errorf("guess: %w", err)
	}
	answer, err := domain.ParseWord(args[1])
	if err != nil {
		return fmt.Errorf("answer: %w", err)
	}

	g := domain.Guess{Word: guess, Feedback: domain.Evaluate(guess, answer)}
	cmd.Printf("%s  %s\n", board.Row(styles.DefaultStyles(), g), g.Feedback)
	return nil
}
