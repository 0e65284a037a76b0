package pinball

import (
	"math"

	"github.com/vovakirdan/arcade-hub/internal/physics"
)

const (
	restAngle  = 0.5  // Radians below horizontal, toward the drain
	upAngle    = -0.5 // Radians above horizontal
	swingSpeed = 0.3  // Radians per tick
)

// Flipper is a segment rotating about a fixed pivot. Side is +1 for the
// left flipper (tip to the right of the pivot) and -1 for the right one.
type Flipper struct {
	Pivot  physics.Vec
	Length float64
	Side   float64
	Angle  float64
	Held   bool
	hold   int // Ticks left before an automatic release
}

func newFlipper(pivot physics.Vec, length, side float64) Flipper {
	return Flipper{Pivot: pivot, Length: length, Side: side, Angle: restAngle}
}

// Tip returns the free end of the flipper.
func (f *Flipper) Tip() physics.Vec {
	return f.Pivot.Add(physics.V(f.Side*math.Cos(f.Angle), math.Sin(f.Angle)).Scale(f.Length))
}

// Segment returns the collider for the current angle.
func (f *Flipper) Segment() physics.Segment {
	return physics.Segment{A: f.Pivot, B: f.Tip()}
}

// Up returns the unit normal on the playing face.
func (f *Flipper) Up() physics.Vec {
	return physics.V(f.Side*math.Sin(f.Angle), -math.Cos(f.Angle))
}

func (f *Flipper) press(hold int) {
	f.Held = true
	f.hold = hold
}

func (f *Flipper) release() {
	f.Held = false
	f.hold = 0
}

// swing moves the flipper one tick toward its target angle and returns the
// angle it started from. Held flippers count down to an automatic release.
func (f *Flipper) swing() float64 {
	from := f.Angle
	if f.Held {
		f.Angle = math.Max(upAngle, f.Angle-swingSpeed)
		f.hold--
		if f.hold <= 0 {
			f.Held = false
		}
	} else {
		f.Angle = math.Min(restAngle, f.Angle+swingSpeed)
	}
	return from
}

// Rising reports whether the flipper moved upward from angle from.
func (f *Flipper) Rising(from float64) bool {
	return f.Angle < from
}

// Swept reports whether a rising flipper passed through the ball this tick.
func (f *Flipper) Swept(from float64, b physics.Body) bool {
	if !f.Rising(from) {
		return false
	}
	rel := b.Pos.Sub(f.Pivot)
	dist := rel.Len()
	if dist == 0 || dist > f.Length+b.Radius {
		return false
	}
	angle := math.Atan2(rel.Y, rel.X*f.Side)
	margin := math.Asin(math.Min(1, b.Radius/dist))
	return angle > f.Angle-margin && angle < from+margin
}
