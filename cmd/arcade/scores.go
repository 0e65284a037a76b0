package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game. With the SQLite
ledger, also shows play statistics; --clear removes the game's results.

Examples:
  arcade scores tetris
  arcade scores snake --limit 25
  arcade scores pong --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the game (SQLite only)")
}

func runScores(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	def, err := a.catalog.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	sqlite, isSQLite := a.store.(*storage.Store)

	if flagScoresClear {
		if !isSQLite {
			return fmt.Errorf("--clear needs the sqlite ledger, not %q", flagLedger)
		}
		if err := sqlite.ClearScores(ctx, def.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", def.Name)
		return nil
	}

	scores, err := a.store.TopScores(ctx, def.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", def.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", def.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, e.UserID, e.Score, e.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	if !isSQLite {
		return nil
	}
	stats, err := sqlite.GameStats(ctx, def.ID)
	if err != nil {
		a.logger.Warn("game stats", "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Games played: %d   Best: %d   Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
