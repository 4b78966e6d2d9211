package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change solver, word list and display settings.

Settings are stored in config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Validates and saves a single setting.

Keys:
  solver.pool          full or candidates
  solver.max_results   number of recommended words shown
  solver.workers       parallel evaluations (0 = one per CPU)
  solver.seed          seed for picking among tied words (0 = random)
  solver.opening_word  first guess in auto-play
  wordlist.answers     answer list file (empty = built-in)
  wordlist.guesses     extra guess list file (empty = built-in)
  ui.progress          show progress bars (true or false)`,
	Example: "  wordle settings set solver.pool candidates",
	Args:    cobra.ExactArgs(2),
	RunE:    runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings service: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Solver]")
	cmd.Printf("  Pool: %s\n", settings.Solver.Pool.Description())
	cmd.Printf("  Max results: %d\n", settings.Solver.MaxResults)
	cmd.Printf("  Workers: %s\n", orDefault(settings.Solver.Workers, "one per CPU"))
	cmd.Printf("  Seed: %s\n", orDefault(int(settings.Solver.Seed), "random"))
	cmd.Printf("  Opening word: %s\n", settings.Solver.OpeningWord)
	cmd.Println()

	cmd.Println("[Word lists]")
	cmd.Printf("  Answers: %s\n", pathOrBuiltin(settings.WordList.AnswersPath))
	cmd.Printf("  Guesses: %s\n", pathOrBuiltin(settings.WordList.GuessesPath))
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Progress bars: %s\n", yesNo(settings.UI.Progress))

	if gameService != nil {
		if info, err := gameService.Corpus(cmd.Context()); err == nil {
			cmd.Println()
			cmd.Printf("Loaded %d answers and %d guesses.\n", info.Answers, info.Guesses)
		}
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings service: %w", errNotConfigured)
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func orDefault(n int, fallback string) string {
	if n == 0 {
		return fallback
	}
	return strconv.Itoa(n)
}

func pathOrBuiltin(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

