package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakobmina/quasar-pro/internal/registry"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode.

Examples:
  quasar scores story
  quasar scores openworld --limit 20
  quasar scores story --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	modeID := args[0]
	if err := checkMode(modeID); err != nil {
		return err
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'quasar play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-12s  %s\n", "Rank", "Score", "Distance", "Hull", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-12s  %s\n", "----", "-----", "--------", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-10.0f  %-12s  %s\n",
			i+1, e.Score, e.Distance, e.Hull, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
