package racer

import (
	"math/rand"

	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Car is an oncoming vehicle. Y is the top row; cars above the road have
// negative Y and are not drawn yet.
type Car struct {
	Lane int
	Y    float64
}

// TrafficManager owns a fixed pool of cars. A car that leaves the bottom of
// the road is recycled above the topmost car in a fresh random lane.
type TrafficManager struct {
	cars       []Car
	rng        *rand.Rand
	cfg        *config.RacerConfig
	difficulty *config.DifficultyManager
}

// NewTrafficManager creates the pool with cars queued above the road.
func NewTrafficManager(rng *rand.Rand, cfg *config.RacerConfig, diff *config.DifficultyManager) *TrafficManager {
	tm := &TrafficManager{
		cars:       make([]Car, 0, cfg.Traffic.Cars),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
	for i := 0; i < cfg.Traffic.Cars; i++ {
		tm.cars = append(tm.cars, Car{Lane: tm.rng.Intn(cfg.Road.Lanes), Y: tm.spawnY()})
	}
	return tm
}

// spawnY returns a row above both the road and the topmost car.
func (tm *TrafficManager) spawnY() float64 {
	top := 0.0
	for _, c := range tm.cars {
		if c.Y < top {
			top = c.Y
		}
	}
	gap := tm.cfg.Traffic.Spacing + tm.cfg.Road.CarHeight
	return top - float64(gap+tm.rng.Intn(tm.cfg.Traffic.Spacing+1))
}

// Speed returns rows per tick for the given progress.
func (tm *TrafficManager) Speed(score, ticks int) float64 {
	return tm.difficulty.Speed(tm.cfg.Traffic.BaseSpeed, score, ticks)
}

// Update moves traffic down and recycles cars that left the road.
// Returns the number of recycled cars.
func (tm *TrafficManager) Update(score, ticks int) int {
	speed := tm.Speed(score, ticks)
	recycled := 0
	for i := range tm.cars {
		tm.cars[i].Y += speed
		if tm.cars[i].Y >= float64(tm.cfg.Road.Height) {
			tm.cars[i].Y = tm.spawnY()
			tm.cars[i].Lane = tm.rng.Intn(tm.cfg.Road.Lanes)
			recycled++
		}
	}
	return recycled
}

// Cars returns the current pool.
func (tm *TrafficManager) Cars() []Car {
	return tm.cars
}

// Rect returns the collision box of a car in lane at row y.
func Rect(cfg config.RacerRoad, lane int, y float64) core.RectF {
	return core.RectF{
		X: float64(lane*cfg.LaneWidth + 1),
		Y: y,
		W: float64(cfg.LaneWidth - 2),
		H: float64(cfg.CarHeight),
	}
}

// CheckCollision tests the player box against every car.
func (tm *TrafficManager) CheckCollision(player core.RectF) bool {
	for _, c := range tm.cars {
		if player.Intersects(Rect(tm.cfg.Road, c.Lane, c.Y)) {
			return true
		}
	}
	return false
}
