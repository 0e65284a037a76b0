// arcade is a coin-op style terminal arcade: eleven games, a credit ledger
// and trophies for time played.
//
// Usage:
//
//	arcade list                    - List the catalog
//	arcade play <game>             - Play one game (costs a credit)
//	arcade menu                    - Pick games interactively
//	arcade serve                   - Start SSH server for remote play
//	arcade api                     - Start the HTTP operator API
//	arcade scores <game>           - Show high scores and stats for a game
//	arcade leaderboard             - Show trophy totals
//	arcade history [user]          - Show a user's finished sessions
//	arcade credits [user]          - Show a balance
//	arcade credits grant <u> <n>   - Add credits
//
// Every persistent flag can also come from an ARCADE_* environment variable
// or a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-hub/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-hub/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-hub/internal/games/minesweeper"
	_ "github.com/vovakirdan/arcade-hub/internal/games/pacman"
	_ "github.com/vovakirdan/arcade-hub/internal/games/pinball"
	_ "github.com/vovakirdan/arcade-hub/internal/games/pong"
	_ "github.com/vovakirdan/arcade-hub/internal/games/racer"
	_ "github.com/vovakirdan/arcade-hub/internal/games/shooter"
	_ "github.com/vovakirdan/arcade-hub/internal/games/snake"
	_ "github.com/vovakirdan/arcade-hub/internal/games/t2048"
	_ "github.com/vovakirdan/arcade-hub/internal/games/tetris"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagLedger    string
	flagRedisURL  string
	flagUser      string
	flagConfig    string
	flagCatalog   string
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string
)

// envFlags maps persistent flags to their environment fallbacks.
var envFlags = map[string]string{
	"seed":       "ARCADE_SEED",
	"db":         "ARCADE_DB",
	"ledger":     "ARCADE_LEDGER",
	"redis":      "ARCADE_REDIS_URL",
	"user":       "ARCADE_USER",
	"config":     "ARCADE_CONFIG",
	"catalog":    "ARCADE_CATALOG",
	"log-level":  "ARCADE_LOG_LEVEL",
	"log-format": "ARCADE_LOG_FORMAT",
	"log-file":   "ARCADE_LOG_FILE",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - coin-op games in your terminal",
	Long: `Arcade is a terminal game hall. Each game costs one credit;
playing long enough earns trophies, and winning earns more.

Available commands:
  list         - Show the catalog
  play         - Play a specific game directly
  menu         - Interactive game picker
  serve        - SSH server for remote play
  api          - HTTP API for balances, leaderboards and grants
  scores       - High scores and stats for a game
  leaderboard  - Trophy totals
  history      - Finished sessions of a user
  credits      - Show or grant credits

Examples:
  arcade list
  arcade play tetris
  arcade menu --user ana
  arcade serve --ssh :2222 --ledger redis --redis redis://localhost:6379/0
  arcade credits grant ana 10`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/arcade.db", "Path to the SQLite ledger")
	pf.StringVar(&flagLedger, "ledger", "sqlite", "Ledger backend: sqlite, redis or memory")
	pf.StringVar(&flagRedisURL, "redis", "redis://localhost:6379/0", "Redis URL for --ledger redis")
	pf.StringVar(&flagUser, "user", defaultUser(), "Player name for local play")
	pf.StringVar(&flagConfig, "config", "", "Path to arcade.yaml (session and ledger rules)")
	pf.StringVar(&flagCatalog, "catalog", "", "Path to a catalog YAML (default: built-in)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "text", "Log format: text, json, logfmt")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (interactive commands default to ~/.arcade/arcade.log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(creditsCmd)
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
