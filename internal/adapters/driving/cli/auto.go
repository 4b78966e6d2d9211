package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
)

var (
	autoLimit int
	autoJSON  bool
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Let the solver play every answer",
	Long: `Plays every answer in the list, opening with the configured word and then
taking the first recommendation each turn, and prints how many guesses
each game needed.

Games that need more than six guesses are reported as failures.`,
	Args: cobra.NoArgs,
	RunE: runAuto,
}

func init() {
	autoCmd.Flags().IntVarP(&autoLimit, "limit", "n", 0, "play only the first N answers (0 = all)")
	autoCmd.Flags().BoolVar(&autoJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(autoCmd)
}

type autoGame struct {
	Answer  string   `json:"answer"`
	Guesses []string `json:"guesses"`
	Solved  bool     `json:"solved"`
}

type autoOutput struct {
	Games     int         `json:"games"`
	Average   float64     `json:"average"`
	Histogram map[int]int `json:"histogram"`
	Failures  []string    `json:"failures"`
	Results   []autoGame  `json:"results"`
}

func runAuto(cmd *cobra.Command, _ []string) error {
	if autoPlayer == nil {
		return fmt.Errorf("auto player: %w", errNotConfigured)
	}

	report, err := autoPlayer.Run(cmd.Context(), autoLimit)
	if err != nil {
		return fmt.Errorf("auto-play failed: %w", err)
	}

	if autoJSON {
		out := autoOutput{
			Games:     report.Stats.Games,
			Average:   report.Stats.Average(),
			Histogram: report.Stats.Histogram,
			Failures:  report.Stats.Failures,
			Results:   make([]autoGame, len(report.Results)),
		}
		for i, r := range report.Results {
			out.Results[i] = autoGame{Answer: r.Answer, Guesses: r.Guesses, Solved: r.Solved}
		}
		return printJSON(cmd, out)
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *driving.AutoReport) {
	stats := report.Stats
	cmd.Printf("Played %d games, average %.2f guesses\n", stats.Games, stats.Average())
	cmd.Println()
	for _, turns := range stats.Turns() {
		n := stats.Histogram[turns]
		cmd.Printf("  %2d | %s %d\n", turns, strings.Repeat("#", barLength(n, stats.Games)), n)
	}
	if len(stats.Failures) > 0 {
		cmd.Println()
		cmd.Printf("Failed (%d): %s\n", len(stats.Failures), strings.Join(stats.Failures, ", "))
	}
}

// barLength scales n of total to at most 40 characters, never hiding a
// non-zero count.
func barLength(n, total int) int {
	if total == 0 || n == 0 {
		return 0
	}
	return max(1, n*40/total)
}
