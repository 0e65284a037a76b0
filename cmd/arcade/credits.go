package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var creditsCmd = &cobra.Command{
	Use:   "credits [user]",
	Short: "Show a user's credits and trophies",
	Long: `Shows the credit balance and trophy total. Defaults to --user.
A user the ledger has never seen starts with the configured balance.

Examples:
  arcade credits
  arcade credits ana
  arcade credits grant ana 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCredits,
}

var grantCmd = &cobra.Command{
	Use:   "grant <user> <amount>",
	Short: "Add credits to a user's balance",
	Args:  cobra.ExactArgs(2),
	RunE:  runGrant,
}

func init() {
	creditsCmd.AddCommand(grantCmd)
}

func runCredits(cmd *cobra.Command, args []string) error {
	user := flagUser
	if len(args) == 1 {
		user = args[0]
	}
	a, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	credits, err := a.store.Credits(cmd.Context(), user)
	if err != nil {
		return err
	}
	trophies, err := a.store.Trophies(cmd.Context(), user)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d credits, %d trophies\n", user, credits, trophies)
	return nil
}

func runGrant(cmd *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[1])
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive integer, got %q", args[1])
	}
	a, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	balance, err := a.store.GrantCredits(cmd.Context(), args[0], amount)
	if err != nil {
		return err
	}
	a.logger.Info("credits granted", "user", args[0], "amount", amount)
	fmt.Printf("%s: %d credits\n", args[0], balance)
	return nil
}
