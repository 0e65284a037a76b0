package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/api"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP operator API",
	Long: `Serve balances, leaderboards and histories as JSON.

Routes:
  GET  /health
  GET  /games
  GET  /games/{id}/scores?limit=N
  GET  /leaderboard?limit=N
  GET  /users/{id}/history?limit=N
  GET  /users/{id}/credits
  POST /users/{id}/credits   {"amount": N}

Grants require "Authorization: Bearer $ARCADE_API_TOKEN" and are
disabled when the variable is empty.

Examples:
  arcade api --addr :8080
  ARCADE_API_TOKEN=s3cret arcade api --ledger redis`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := api.New(api.Options{
		Store:   a.store,
		Catalog: a.catalog,
		Logger:  a.logger,
		Token:   os.Getenv("ARCADE_API_TOKEN"),
	})
	return srv.ListenAndServe(cmd.Context(), flagAPIAddr)
}
