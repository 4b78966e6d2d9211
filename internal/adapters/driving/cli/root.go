// Package cli provides the cobra command tree for the wordle binary.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordle-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordle-cli/internal/logger"
)

// version is set at build time via -ldflags or by SetVersion.
var version = "dev"

// Services bundles the driving ports the commands call.
type Services struct {
	Game     driving.GameService
	Auto     driving.AutoPlayer
	Stats    driving.StatsService
	Settings driving.SettingsService

	// Lists is optional. Long-running commands reload the word lists when
	// it reports a change.
	Lists ListWatcher
}

// ListWatcher reports changes to the word list files.
type ListWatcher interface {
	Watch(ctx context.Context, onChange func(path string)) error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (Services, error)

var (
	gameService     driving.GameService
	autoPlayer      driving.AutoPlayer
	statsService    driving.StatsService
	settingsService driving.SettingsService
	listWatcher     ListWatcher

	bootstrap Bootstrap
)

var (
	verbose   bool
	configDir string
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Minimax Wordle solver",
	Long: `A Wordle solver that recommends the guesses which minimise the
worst-case number of remaining answers.

Play against a random word, get help with a puzzle from another board,
or let the solver play itself through the whole answer list.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver internals to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.wordle)")
}

// SetServices injects the driving ports used by every command.
func SetServices(s Services) {
	gameService = s.Game
	autoPlayer = s.Auto
	statsService = s.Stats
	settingsService = s.Settings
	listWatcher = s.Lists
}

// SetBootstrap registers the builder called before any command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}
	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

// watchLists reloads the word lists whenever their files change, until ctx
// is done.
func watchLists(ctx context.Context) {
	if listWatcher == nil || gameService == nil {
		return
	}
	go func() {
		err := listWatcher.Watch(ctx, func(path string) {
			logger.Info("Reloading word lists: %s changed", path)
			gameService.Reload()
		})
		if err != nil {
			logger.Warn("Not watching word lists: %v", err)
		}
	}()
}

func requireGame() error {
	if gameService == nil {
		return fmt.Errorf("game service: %w", errNotConfigured)
	}
	return nil
}
