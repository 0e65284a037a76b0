// Package breakout implements a brick breaker over a shared physics playfield.
package breakout

import "github.com/vovakirdan/arcade-hub/internal/config"

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickNormal BrickType = iota // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
)

// Brick represents a single brick in a wave.
type Brick struct {
	Type  BrickType
	HP    int  // Hits remaining
	Alive bool // Whether brick is still present
}

// Wave is one wall of bricks. Bricks are indexed row*Cols+col, which is
// also their box index in the playfield.
type Wave struct {
	Number int
	Rows   int
	Cols   int
	Top    int // Row of the first brick line
	Width  int // Brick width in cells
	Bricks []Brick
}

// newWave builds wave n (1-based). Each wave sits one row lower than the
// previous, down to maxTop. From the second wave on, the top line is hard.
func newWave(cfg config.BreakoutBricks, n, maxTop int) *Wave {
	top := cfg.Top + n - 1
	if top > maxTop {
		top = maxTop
	}
	w := &Wave{
		Number: n,
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Top:    top,
		Width:  cfg.Width,
		Bricks: make([]Brick, cfg.Rows*cfg.Cols),
	}
	for i := range w.Bricks {
		b := Brick{Type: BrickNormal, HP: 1, Alive: true}
		if n > 1 && i < cfg.Cols {
			b = Brick{Type: BrickHard, HP: 2, Alive: true}
		}
		w.Bricks[i] = b
	}
	return w
}

// Cell returns the top-left cell of brick i.
func (w *Wave) Cell(i int) (x, y int) {
	return (i % w.Cols) * w.Width, w.Top + i/w.Cols
}

// CountAlive returns the number of remaining bricks.
func (w *Wave) CountAlive() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// hit damages brick i and reports whether it was destroyed.
func (w *Wave) hit(i int) bool {
	b := &w.Bricks[i]
	if !b.Alive {
		return false
	}
	b.HP--
	if b.HP > 0 {
		return false
	}
	b.Alive = false
	return true
}
