package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Eristhenis/arduinospaceinvaders/internal/registry"
	"github.com/Eristhenis/arduinospaceinvaders/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show round records for a game",
	Long: `Display the top 10 rounds for the specified game, plus aggregate
statistics.

Examples:
  invaders scores invaders`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		log.Error("cannot create game", "game", gameID, "err", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Error("cannot open records database", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.TopRounds(gameID, 10)
	if err != nil {
		log.Error("cannot read round records", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Round Records - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-7s  %s\n", "Rank", "Score", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-7s  %s\n", "----", "-----", "-------", "-----", "----")

	for i, entry := range rounds {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9s  %-7d  %s\n",
			i+1, entry.Score, entry.Outcome, entry.Ticks, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Cleared: %d   Avg: %.1f\n",
		stats.HighScore, stats.Rounds, stats.Cleared, stats.AvgScore)
}
