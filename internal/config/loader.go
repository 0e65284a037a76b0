package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves one configuration file by name.
// Search order: customPath -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default -> fallback.
// Files are decoded over the fallback so a partial file only overrides what it names.
func load[T any](name, customPath string, fallback T) (T, error) {
	cfg := fallback

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(name + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback
	}

	if data := GetDefaultYAML(name); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadArcade loads session and ledger settings.
func LoadArcade(customPath string) (ArcadeConfig, error) {
	return load("arcade", customPath, DefaultArcadeConfig())
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig())
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig())
}

// LoadPacMan loads Pac-Man configuration.
func LoadPacMan(customPath string) (PacManConfig, error) {
	return load("pacman", customPath, DefaultPacManConfig())
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig())
}

// LoadMinesweeper loads Minesweeper configuration.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	return load("minesweeper", customPath, DefaultMinesweeperConfig())
}

// LoadT2048 loads 2048 configuration.
func LoadT2048(customPath string) (T2048Config, error) {
	return load("2048", customPath, DefaultT2048Config())
}

// LoadPinball loads Pinball configuration.
func LoadPinball(customPath string) (PinballConfig, error) {
	return load("pinball", customPath, DefaultPinballConfig())
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig())
}

// LoadRacer loads racer configuration.
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer", customPath, DefaultRacerConfig())
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig())
}

// LoadShooter loads space shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("shooter", customPath, DefaultShooterConfig())
}
