package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordle-cli/internal/core/domain"
)

var (
	solveGuesses []string
	solveJSON    bool

	candidatesLimit int

	recommendPool    string
	recommendResults int
	recommendSeed    uint64
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List the answers that fit the guesses so far",
	Long: `Lists every answer consistent with the guesses already played.

Each --guess is a word and its colours as WORD=COLORS, using G for green,
Y for yellow and B for black.`,
	Example: "  wordle candidates -g CRANE=BYBBG -g TOILE=BBBYG",
	Args:    cobra.NoArgs,
	RunE:    runCandidates,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the next guess",
	Long: `Recommends the guesses that minimise the worst-case number of answers
left after the next turn.

Each --guess is a word and its colours as WORD=COLORS, using G for green,
Y for yellow and B for black. Without guesses the opening move is computed,
which searches every pair of guess and answer and can take a while.`,
	Example: "  wordle recommend -g SLATE=BBGYG --pool candidates",
	Args:    cobra.NoArgs,
	RunE:    runRecommend,
}

func init() {
	for _, c := range []*cobra.Command{candidatesCmd, recommendCmd} {
		c.Flags().StringArrayVarP(&solveGuesses, "guess", "g", nil, "a played guess as WORD=COLORS (repeatable)")
		c.Flags().BoolVar(&solveJSON, "json", false, "output as JSON")
	}
	candidatesCmd.Flags().IntVarP(&candidatesLimit, "limit", "n", 0, "maximum number of words to print (0 = all)")

	recommendCmd.Flags().StringVar(&recommendPool, "pool", "", "guess pool: full or candidates (default from settings)")
	recommendCmd.Flags().IntVarP(&recommendResults, "max-results", "n", 0, "number of words to return (default from settings)")
	recommendCmd.Flags().Uint64Var(&recommendSeed, "seed", 0, "seed for choosing among tied words (default from settings)")

	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(recommendCmd)
}

// replay starts an assist game and reports each WORD=COLORS entry to it.
func replay(ctx context.Context, history []string) (*domain.Game, error) {
	game, err := gameService.Start(ctx, domain.ModeAssist)
	if err != nil {
		return nil, err
	}
	for _, entry := range history {
		g, err := domain.ParseGuess(entry)
		if err != nil {
			return nil, fmt.Errorf("--guess %q: %w", entry, err)
		}
		if _, err := gameService.Report(ctx, game, g.Word.String(), g.Feedback.String()); err != nil {
			return nil, fmt.Errorf("--guess %q: %w", entry, err)
		}
	}
	return game, nil
}

type candidatesOutput struct {
	Count   int      `json:"count"`
	Pattern string   `json:"pattern"`
	Words   []string `json:"words"`
}

func runCandidates(cmd *cobra.Command, _ []string) error {
	if err := requireGame(); err != nil {
		return err
	}

	game, err := replay(cmd.Context(), solveGuesses)
	if err != nil {
		return err
	}

	out := candidatesOutput{
		Words:   domain.Strings(gameService.Candidates(game)),
		Pattern: game.Descriptor.View().Pattern,
	}
	out.Count = len(out.Words)
	if candidatesLimit > 0 && len(out.Words) > candidatesLimit {
		out.Words = out.Words[:candidatesLimit]
	}

	if solveJSON {
		return printJSON(cmd, out)
	}

	if game.Contradiction() {
		cmd.Println("No answer fits those colours.")
		return nil
	}
	cmd.Printf("%d possible answers\n", out.Count)
	cmd.Println(wrapWords(out.Words, 10))
	if len(out.Words) < out.Count {
		cmd.Printf("... %d more\n", out.Count-len(out.Words))
	}
	return nil
}

type recommendOutput struct {
	Remaining    int      `json:"remaining"`
	WorstCase    int      `json:"worst_case"`
	AnyCandidate bool     `json:"any_candidate"`
	Ties         int      `json:"ties"`
	Words        []string `json:"words"`
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if err := requireGame(); err != nil {
		return err
	}

	game, err := replay(cmd.Context(), solveGuesses)
	if err != nil {
		return err
	}

	rec, err := gameService.Recommend(cmd.Context(), game, domain.RecommendOptions{
		Pool:       domain.GuessPool(strings.ToLower(recommendPool)),
		MaxResults: recommendResults,
		Seed:       recommendSeed,
	})
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	out := recommendOutput{
		Remaining:    game.Descriptor.Len(),
		WorstCase:    rec.WorstCase,
		AnyCandidate: rec.AnyCandidate,
		Ties:         rec.Ties,
		Words:        domain.Strings(rec.Words),
	}
	if solveJSON {
		return printJSON(cmd, out)
	}

	if rec.IsEmpty() {
		cmd.Println("No recommendation: no answer fits those colours.")
		return nil
	}
	printRecommendation(cmd, out)
	return nil
}

func printRecommendation(cmd *cobra.Command, out recommendOutput) {
	kind := ""
	if out.AnyCandidate {
		kind = "possible "
	}
	cmd.Printf("Try one of these %swords: %s\n", kind, strings.Join(out.Words, ", "))
	cmd.Printf("At most %d of %d answers will remain (%d tied).\n", out.WorstCase, out.Remaining, out.Ties)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// wrapWords joins words perLine to a line.
func wrapWords(words []string, perLine int) string {
	var b strings.Builder
	for i, w := range words {
		switch {
		case i == 0:
		case i%perLine == 0:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
