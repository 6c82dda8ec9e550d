// invaders is a terminal arcade cabinet around a fixed-tick Space
// Invaders simulation.
//
// Usage:
//
//	invaders list              - List available games
//	invaders play <game>       - Play a game
//	invaders menu              - Start menu to pick games interactively
//	invaders scores <game>     - Show round records for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 15)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/Eristhenis/arduinospaceinvaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders for your terminal",
	Long: `A terminal rendition of the classic cabinet: a 128x64 monochrome
panel, a two-row alien formation that speeds up with every bounce, and
three lives to clear it.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View round records

Examples:
  invaders list
  invaders play invaders
  invaders menu
  invaders play invaders --seed 42 --fps 30
  invaders scores invaders`,
}

func init() {
	// Global persistent flags. 15 ticks/s is the cadence the simulation
	// was tuned for.
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 15, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
