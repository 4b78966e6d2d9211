// Command wordle is a minimax Wordle solver with a CLI, a terminal UI and an
// MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/progress"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driven/wordlist"
	"github.com/custodia-labs/wordle-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wordle-cli/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(configDir string) (cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return cli.Services{}, fmt.Errorf("config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, fmt.Errorf("settings: %w", err)
	}

	loader := wordlist.New(settings.WordList)
	statsStore := memory.NewStatsStore()
	recommender := services.NewRecommender(progress.NewLog(progress.DefaultLogInterval))
	gameService := services.NewGameService(
		loader,
		settingsService,
		statsStore,
		recommender,
	)
	autoPlayer := services.NewAutoPlayer(
		gameService,
		settingsService,
		progress.ForTerminal(os.Stderr, settings.UI.Progress),
	)

	return cli.Services{
		Game:     gameService,
		Auto:     autoPlayer,
		Stats:    services.NewStatsService(statsStore),
		Settings: settingsService,
		Lists:    loader,
	}, nil
}
