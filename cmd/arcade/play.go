package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/games/flappy"
	"github.com/vovakirdan/arcade-hub/internal/games/pong"
	"github.com/vovakirdan/arcade-hub/internal/games/racer"
	"github.com/vovakirdan/arcade-hub/internal/games/shooter"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

var (
	flagGameConfig string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Starting costs one credit.

Controls depend on the game; press ? in game for the full list.
  P          - Pause
  Esc/B      - Leave (quits after a direct play)
  R/Enter    - Play again after the game ends (one more credit)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot to ~/.arcade/screenshots

Difficulty options (flappy, racer, pong, shooter):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play flappy --difficulty hard
  arcade play racer --game-config ./my-racer.yaml
  arcade play tetris --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGameConfig, "game-config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if err := applyGameOptions(gameID, flagGameConfig, preset); err != nil {
		return err
	}

	a, err := setup(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.catalog.Get(gameID); err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	ok, err := a.store.HasCredits(cmd.Context(), flagUser)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", flagUser, ledger.ErrInsufficientCredits)
	}

	width, height := terminalSize()
	return tui.Run(tui.Deps{
		Context:   cmd.Context(),
		UserID:    flagUser,
		Catalog:   a.catalog,
		Store:     a.store,
		Settings:  a.arcade.Session,
		Logger:    a.logger,
		Width:     width,
		Height:    height,
		Seed:      flagSeed,
		StartGame: gameID,
	})
}

// applyGameOptions passes --game-config and --difficulty to the games
// that take them.
func applyGameOptions(gameID, path string, preset config.DifficultyPreset) error {
	switch gameID {
	case "flappy":
		flappy.SetConfigPath(path)
		flappy.SetDifficultyPreset(preset)
	case "racer":
		racer.SetConfigPath(path)
		racer.SetDifficultyPreset(preset)
	case "pong":
		pong.SetConfigPath(path)
		pong.SetDifficultyPreset(preset)
	case "shooter":
		shooter.SetConfigPath(path)
		shooter.SetDifficultyPreset(preset)
	default:
		if path != "" || preset != "" {
			if !registry.Exists(gameID) {
				return fmt.Errorf("%w: %q", registry.ErrUnknownGame, gameID)
			}
			return errors.New("--game-config and --difficulty apply to flappy, racer, pong and shooter")
		}
	}
	return nil
}
