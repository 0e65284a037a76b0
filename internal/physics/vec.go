// Package physics is the shared continuous-space toolkit: float vectors,
// bodies integrated once per tick, and a static playfield of segment, circle
// and box colliders that every ball-and-wall game tests uniformly.
package physics

import "math"

// Vec is a 2D float vector in playfield cells.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Perp() Vec           { return Vec{-v.Y, v.X} }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }

// Norm returns the unit vector, or zero for the zero vector.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec) Rotate(angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// ClampLen limits the vector length to max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Body is a moving circle.
type Body struct {
	Pos    Vec
	Vel    Vec
	Radius float64
}

// Accelerate applies one tick of acceleration: velocity += a.
func (b *Body) Accelerate(a Vec) {
	b.Vel = b.Vel.Add(a)
}

// Integrate applies one tick of motion: position += velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Reflect bounces v off a surface with unit normal n.
// The normal component is reversed and scaled by restitution e in [0, 1],
// so the result is never faster than v.
func Reflect(v, n Vec, e float64) Vec {
	vn := v.Dot(n)
	if vn >= 0 {
		return v
	}
	return v.Sub(n.Scale((1 + e) * vn))
}
