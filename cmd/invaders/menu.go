package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
	"github.com/Eristhenis/arduinospaceinvaders/internal/games/invaders"
	"github.com/Eristhenis/arduinospaceinvaders/internal/platform/tui"
	"github.com/Eristhenis/arduinospaceinvaders/internal/registry"
	"github.com/Eristhenis/arduinospaceinvaders/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Round records
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("round records disabled", "err", err)
		store = nil
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			width, height := 80, 24
			if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
				width = w
				height = h
			}
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if gameID == "invaders" {
			invaders.SetConfigPath(flagConfig)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			log.Error("cannot create game", "game", gameID, "err", err)
			continue
		}

		// Each menu launch plays a fresh session.
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			log.Error("game loop failed", "err", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
