package config

import (
	"math"
	"time"
)

// minGap is the smallest pipe or lane gap a player can still pass.
const minGap = 4

// DifficultyManager turns a DifficultyConfig into per-tick game parameters.
// The level runs from the configured initial level up to 1.0 as score or
// ticks approach Progression.MaxAt.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager; InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return start
	}

	var done float64
	switch d.cfg.Progression.Type {
	case "score":
		done = float64(score)
	case "time":
		done = float64(ticks)
	default:
		return start
	}
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	return start + clampF(done/maxAt, 0, 1)*(1-start)
}

// Speed scales baseSpeed up to baseSpeed*(1+SpeedMultiplier) at full difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks baseGap by up to GapReduction, never below minGap.
func (d *DifficultyManager) GapSize(baseGap int, score int, ticks int) int {
	return max(baseGap-d.reduce(d.cfg.Scaling.GapReduction, score, ticks), minGap)
}

// Spacing shrinks baseSpacing by up to SpacingReduction, never below minSpacing.
func (d *DifficultyManager) Spacing(baseSpacing, minSpacing int, score int, ticks int) int {
	return max(baseSpacing-d.reduce(d.cfg.Scaling.SpacingReduction, score, ticks), minSpacing)
}

func (d *DifficultyManager) reduce(full int, score, ticks int) int {
	return int(d.Level(score, ticks) * float64(full))
}

// LevelInterval returns max(floor, base - level*step) for integer levels,
// the step timing used by level-based games.
func LevelInterval(base, floor, step time.Duration, level int) time.Duration {
	return max(base-time.Duration(level)*step, floor)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
