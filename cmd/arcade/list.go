package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the catalog in menu order with difficulty, length and win reward.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		return err
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, d := range cat.All() {
		maxIDLen = max(maxIDLen, len(d.ID))
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-10s  %-10s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Difficulty", "Duration", "Reward")
	fmt.Printf("  %-*s  %-*s  %-10s  %-10s  %s\n", maxIDLen, "--", maxNameLen, "----", "----------", "--------", "------")
	for _, d := range cat.All() {
		mark := ""
		if !registry.Exists(d.ID) {
			mark = "  (not installed)"
		}
		fmt.Printf("  %-*s  %-*s  %-10s  %-10s  %d%s\n", maxIDLen, d.ID, maxNameLen, d.Name, d.Difficulty, d.Duration, d.Reward, mark)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
	return nil
}
