// Package config provides YAML-based configuration for the arcade:
// session rules (trophies, time caps, fault tolerance), ledger seeding,
// per-game tuning and difficulty progression.
package config

import (
	"fmt"
	"time"
)

// ArcadeConfig holds the settings that are not specific to one game.
type ArcadeConfig struct {
	Session SessionConfig `yaml:"session"`
	Ledger  LedgerConfig  `yaml:"ledger"`
}

// SessionConfig controls the session lifecycle.
type SessionConfig struct {
	TrophyAfter      time.Duration `yaml:"trophy_after"`       // Play time that earns the time trophy
	TrophyAmount     int           `yaml:"trophy_amount"`      // Trophies reported at that threshold
	NoticeFor        time.Duration `yaml:"notice_for"`         // How long the trophy notice stays on screen
	TimeCapped       []string      `yaml:"time_capped"`        // Games forced to end at the threshold
	MaxFaults        int           `yaml:"max_faults"`         // Consecutive faulted ticks before Over
	WinTrophyDivisor int           `yaml:"win_trophy_divisor"` // Catalog reward / divisor = trophies for a win
}

// IsTimeCapped reports whether the game ends at the trophy threshold.
func (s SessionConfig) IsTimeCapped(gameID string) bool {
	for _, id := range s.TimeCapped {
		if id == gameID {
			return true
		}
	}
	return false
}

// LedgerConfig controls credit seeding for unseen users.
type LedgerConfig struct {
	StartingCredits int `yaml:"starting_credits"`
}

// GridSize is a board size in cells.
type GridSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Cell is a board coordinate in configuration files.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig contains configuration for Snake.
type SnakeConfig struct {
	Board     GridSize `yaml:"board"`
	Start     Cell     `yaml:"start"`
	FirstFood Cell     `yaml:"first_food"`
	FoodScore int      `yaml:"food_score"`
}

// TetrisConfig contains configuration for Tetris.
type TetrisConfig struct {
	Board     GridSize `yaml:"board"`
	Spawn     Cell     `yaml:"spawn"`
	LineScore int      `yaml:"line_score"`
}

// PacManConfig contains configuration for Pac-Man.
type PacManConfig struct {
	Board            GridSize     `yaml:"board"`
	PelletScore      int          `yaml:"pellet_score"`
	WallDensity      float64      `yaml:"wall_density"`      // Interior wall fraction at level 1
	WallDensityStep  float64      `yaml:"wall_density_step"` // Added per level
	MaxWallDensity   float64      `yaml:"max_wall_density"`
	ExploreChance    float64      `yaml:"explore_chance"` // Probability a ghost picks a random neighbor
	MinGhostDistance int          `yaml:"min_ghost_distance"`
	Ghosts           PacManGhosts `yaml:"ghosts"`
}

// PacManGhosts defines ghost count and step timing.
// Step interval is max(Floor, Base - level*Step).
type PacManGhosts struct {
	Base  int          `yaml:"base"`
	Max   int          `yaml:"max"`
	Every PacManTiming `yaml:"every"`
}

// PacManTiming is the ghost step interval formula.
type PacManTiming struct {
	Base  time.Duration `yaml:"base"`
	Floor time.Duration `yaml:"floor"`
	Step  time.Duration `yaml:"step"`
}

// BreakoutConfig contains configuration for Breakout.
type BreakoutConfig struct {
	Field    GridSize         `yaml:"field"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Physics  BreakoutPhysics  `yaml:"physics"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPaddle defines paddle size and keyboard step.
type BreakoutPaddle struct {
	Width int     `yaml:"width"`
	Step  float64 `yaml:"step"`
}

// BreakoutPhysics defines ball motion in cells per tick.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpeedUp      float64 `yaml:"speed_up"` // Multiplier per paddle hit
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Top   int `yaml:"top"`
	Width int `yaml:"width"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
	WaveBonus   int `yaml:"wave_bonus"`
}

// MinesweeperConfig contains configuration for Minesweeper.
type MinesweeperConfig struct {
	Board      GridSize `yaml:"board"`
	Mines      int      `yaml:"mines"`
	CellScore  int      `yaml:"cell_score"`
	ClearBonus int      `yaml:"clear_bonus"`
}

// T2048Config contains configuration for 2048.
type T2048Config struct {
	Size       int     `yaml:"size"`
	FourChance float64 `yaml:"four_chance"`
	Target     int     `yaml:"target"`
}

// PinballConfig contains configuration for Pinball.
type PinballConfig struct {
	Field    GridSize        `yaml:"field"`
	Physics  PinballPhysics  `yaml:"physics"`
	Flippers PinballFlippers `yaml:"flippers"`
	Bumpers  PinballBumpers  `yaml:"bumpers"`
	Balls    int             `yaml:"balls"`
}

// PinballPhysics defines ball motion in cells per tick.
type PinballPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
	MaxSpeed    float64 `yaml:"max_speed"`
	LaunchSpeed float64 `yaml:"launch_speed"`
	BallRadius  float64 `yaml:"ball_radius"`
}

// PinballFlippers defines flipper geometry and strength.
type PinballFlippers struct {
	Length  float64 `yaml:"length"`
	Impulse float64 `yaml:"impulse"`
	Hold    int     `yaml:"hold"` // Ticks a pressed flipper stays up without an explicit release
}

// PinballBumpers defines bumper scoring.
type PinballBumpers struct {
	Score int     `yaml:"score"`
	Kick  float64 `yaml:"kick"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
	PassScore    int `yaml:"pass_score"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RacerConfig contains configuration for the top-down racer.
type RacerConfig struct {
	Road       RacerRoad        `yaml:"road"`
	Traffic    RacerTraffic     `yaml:"traffic"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerRoad defines lane layout.
type RacerRoad struct {
	Lanes     int `yaml:"lanes"`
	LaneWidth int `yaml:"lane_width"`
	Height    int `yaml:"height"`
	CarHeight int `yaml:"car_height"`
}

// RacerTraffic defines the obstacle stream.
type RacerTraffic struct {
	Cars      int     `yaml:"cars"`
	BaseSpeed float64 `yaml:"base_speed"` // Rows per tick
	Spacing   int     `yaml:"spacing"`    // Minimum rows between spawned cars
	PassScore int     `yaml:"pass_score"`
}

// PongConfig contains configuration for Pong.
type PongConfig struct {
	Field      GridSize         `yaml:"field"`
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle speeds in cells per tick.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
	SpeedUp      float64 `yaml:"speed_up"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // Ticks before a served ball moves
}

// PongCPU defines the opponent's skill range.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// ShooterConfig contains configuration for the space shooter.
type ShooterConfig struct {
	Field      GridSize         `yaml:"field"`
	Ship       ShooterShip      `yaml:"ship"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterShip defines the player ship.
type ShooterShip struct {
	Step        float64 `yaml:"step"`     // Cells per movement command
	Cooldown    int     `yaml:"cooldown"` // Ticks between shots
	BulletSpeed float64 `yaml:"bullet_speed"`
}

// ShooterEnemies defines the enemy stream.
type ShooterEnemies struct {
	Count     int     `yaml:"count"`
	Speed     float64 `yaml:"speed"` // Rows per tick
	Drift     float64 `yaml:"drift"` // Max horizontal cells per tick
	KillScore int     `yaml:"kill_score"`
	PassScore int     `yaml:"pass_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// ApplyPreset adjusts progression for a named difficulty.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string keeps the
// configured progression.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
}
