package config

import (
	"embed"
	"time"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultArcadeConfig returns the built-in session and ledger settings.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		Session: SessionConfig{
			TrophyAfter:      300 * time.Second,
			TrophyAmount:     3,
			NoticeFor:        5 * time.Second,
			TimeCapped:       []string{"flappy", "racer"},
			MaxFaults:        3,
			WinTrophyDivisor: 5,
		},
		Ledger: LedgerConfig{
			StartingCredits: 5,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board:     GridSize{Width: 20, Height: 15},
		Start:     Cell{X: 10, Y: 10},
		FirstFood: Cell{X: 5, Y: 5},
		FoodScore: 10,
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board:     GridSize{Width: 10, Height: 20},
		Spawn:     Cell{X: 3, Y: 0},
		LineScore: 100,
	}
}

// DefaultPacManConfig returns the default Pac-Man configuration.
func DefaultPacManConfig() PacManConfig {
	return PacManConfig{
		Board:            GridSize{Width: 19, Height: 13},
		PelletScore:      10,
		WallDensity:      0.10,
		WallDensityStep:  0.03,
		MaxWallDensity:   0.28,
		ExploreChance:    0.2,
		MinGhostDistance: 6,
		Ghosts: PacManGhosts{
			Base: 2,
			Max:  6,
			Every: PacManTiming{
				Base:  400 * time.Millisecond,
				Floor: 150 * time.Millisecond,
				Step:  30 * time.Millisecond,
			},
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: GridSize{Width: 40, Height: 22},
		Paddle: BreakoutPaddle{
			Width: 8,
			Step:  2,
		},
		Physics: BreakoutPhysics{
			BallSpeed:    0.3,
			MaxBallSpeed: 0.8,
			SpeedUp:      1.01,
		},
		Bricks: BreakoutBricks{
			Rows:  5,
			Cols:  10,
			Top:   2,
			Width: 4,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
			WaveBonus:   50,
		},
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Board:      GridSize{Width: 16, Height: 10},
		Mines:      20,
		CellScore:  1,
		ClearBonus: 100,
	}
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Size:       4,
		FourChance: 0.1,
		Target:     2048,
	}
}

// DefaultPinballConfig returns the default Pinball configuration.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Field: GridSize{Width: 40, Height: 30},
		Physics: PinballPhysics{
			Gravity:     0.012,
			Restitution: 0.9,
			MaxSpeed:    1.2,
			LaunchSpeed: 0.9,
			BallRadius:  0.5,
		},
		Flippers: PinballFlippers{
			Length:  7,
			Impulse: 0.9,
			Hold:    12,
		},
		Bumpers: PinballBumpers{
			Score: 100,
			Kick:  0.5,
		},
		Balls: 3,
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.0625,
			JumpImpulse:  -0.9,
			MaxFallSpeed: 1.5,
			BaseSpeed:    0.4,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
			PassScore:    1,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultRacerConfig returns the default racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Road: RacerRoad{
			Lanes:     3,
			LaneWidth: 7,
			Height:    22,
			CarHeight: 3,
		},
		Traffic: RacerTraffic{
			Cars:      4,
			BaseSpeed: 0.25,
			Spacing:   7,
			PassScore: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 9000, // ~2.5 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: GridSize{Width: 60, Height: 22},
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  1.0,
			MaxBallSpeed: 1.5,
			SpinFactor:   0.3,
			SpeedUp:      1.02,
		},
		Paddles: PongPaddles{
			Height: 5,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   7,
			ServeDelay: 60,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultShooterConfig returns the default space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: GridSize{Width: 40, Height: 22},
		Ship: ShooterShip{
			Step:        1.5,
			Cooldown:    10,
			BulletSpeed: 0.8,
		},
		Enemies: ShooterEnemies{
			Count:     6,
			Speed:     0.06,
			Drift:     0.15,
			KillScore: 25,
			PassScore: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name
// ("arcade" or a game id), or nil if there is none.
func GetDefaultYAML(name string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
