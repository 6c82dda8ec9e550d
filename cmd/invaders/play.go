package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
	"github.com/Eristhenis/arduinospaceinvaders/internal/games/invaders"
	"github.com/Eristhenis/arduinospaceinvaders/internal/platform/tui"
	"github.com/Eristhenis/arduinospaceinvaders/internal/registry"
	"github.com/Eristhenis/arduinospaceinvaders/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/W/Up - Fire
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

After a round ends, release everything and press any key to restart.

Examples:
  invaders play invaders
  invaders play invaders --seed 42
  invaders play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for games before creation
	if gameID == "invaders" {
		invaders.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		log.Error("cannot create game", "game", gameID, "err", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("round records disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		log.Error("game loop failed", "err", runErr)
		os.Exit(1)
	}
}
