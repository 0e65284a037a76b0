package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a game (one credit).
After a game ends, press R to play again or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start game
  Tab/T        - Leaderboard and high scores
  ?            - Help
  Q            - Quit

Examples:
  arcade menu
  arcade menu --user ana
  arcade menu --ledger memory`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := terminalSize()
	return tui.Run(tui.Deps{
		Context:  cmd.Context(),
		UserID:   flagUser,
		Catalog:  a.catalog,
		Store:    a.store,
		Settings: a.arcade.Session,
		Logger:   a.logger,
		Width:    width,
		Height:   height,
		Seed:     flagSeed,
	})
}
