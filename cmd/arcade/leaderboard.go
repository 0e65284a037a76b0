package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagBoardLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show trophy totals",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

var historyCmd = &cobra.Command{
	Use:   "history [user]",
	Short: "Show a user's finished sessions",
	Long: `Lists the most recent finished sessions, newest first.
Defaults to --user.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	leaderboardCmd.Flags().IntVar(&flagBoardLimit, "limit", 20, "Number of players to show")
	historyCmd.Flags().IntVar(&flagBoardLimit, "limit", 20, "Number of sessions to show")
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.store.Leaderboard(cmd.Context(), flagBoardLimit)
	if err != nil {
		return err
	}
	fmt.Println("Leaderboard")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No trophies awarded yet.")
		return nil
	}
	fmt.Printf("  %-4s  %-20s  %s\n", "Rank", "Player", "Trophies")
	fmt.Printf("  %-4s  %-20s  %s\n", "----", "------", "--------")
	for _, e := range entries {
		fmt.Printf("  %-4d  %-20s  %d\n", e.Rank, e.UserID, e.Trophies)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	user := flagUser
	if len(args) == 1 {
		user = args[0]
	}
	a, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	hist, err := a.store.History(cmd.Context(), user, flagBoardLimit)
	if err != nil {
		return err
	}
	fmt.Printf("History - %s\n", user)
	fmt.Println()
	if len(hist) == 0 {
		fmt.Println("No finished sessions.")
		return nil
	}
	fmt.Printf("  %-16s  %-12s  %-8s  %-8s  %s\n", "Ended", "Game", "Result", "Score", "Time")
	for _, h := range hist {
		fmt.Printf("  %-16s  %-12s  %-8s  %-8d  %s\n",
			h.EndedAt.Local().Format("2006-01-02 15:04"), h.GameID, h.Result, h.Score, h.Elapsed.Round(time.Second))
	}
	return nil
}
