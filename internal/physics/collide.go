package physics

import "math"

// Contact describes a penetration of a body into a collider.
type Contact struct {
	Normal Vec     // Unit vector pointing from the collider toward the body
	Depth  float64 // Penetration depth along Normal
}

// Segment is a static line-segment collider (walls, inlanes, flippers).
type Segment struct {
	A, B Vec
}

// Closest returns the point on the segment nearest to p.
func (s Segment) Closest(p Vec) Vec {
	ab := s.B.Sub(s.A)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return s.A.Add(ab.Scale(t))
}

// Collide tests a body against the segment.
func (s Segment) Collide(b Body) (Contact, bool) {
	q := s.Closest(b.Pos)
	d := b.Pos.Sub(q)
	dist := d.Len()
	if dist >= b.Radius {
		return Contact{}, false
	}
	n := d.Scale(1 / dist)
	if dist == 0 {
		// Center exactly on the line: push against the direction of travel.
		n = s.B.Sub(s.A).Perp().Norm()
		if n.Dot(b.Vel) > 0 {
			n = n.Scale(-1)
		}
	}
	return Contact{Normal: n, Depth: b.Radius - dist}, true
}

// Circle is a static round collider (bumpers, posts).
type Circle struct {
	Center Vec
	Radius float64
}

// Collide tests a body against the circle.
func (c Circle) Collide(b Body) (Contact, bool) {
	d := b.Pos.Sub(c.Center)
	dist := d.Len()
	reach := c.Radius + b.Radius
	if dist >= reach {
		return Contact{}, false
	}
	n := d.Scale(1 / dist)
	if dist == 0 {
		n = V(0, -1)
	}
	return Contact{Normal: n, Depth: reach - dist}, true
}

// Box is an axis-aligned rectangular collider (bricks, paddles).
type Box struct {
	Min, Max Vec
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Min: V(x, y), Max: V(x+w, y+h)}
}

// Collide tests a body against the box.
func (bx Box) Collide(b Body) (Contact, bool) {
	q := V(
		math.Max(bx.Min.X, math.Min(bx.Max.X, b.Pos.X)),
		math.Max(bx.Min.Y, math.Min(bx.Max.Y, b.Pos.Y)),
	)
	d := b.Pos.Sub(q)
	dist := d.Len()
	if dist > 0 {
		if dist >= b.Radius {
			return Contact{}, false
		}
		return Contact{Normal: d.Scale(1 / dist), Depth: b.Radius - dist}, true
	}

	// Center inside the box: leave through the nearest face.
	faces := [4]struct {
		n Vec
		d float64
	}{
		{V(-1, 0), b.Pos.X - bx.Min.X},
		{V(1, 0), bx.Max.X - b.Pos.X},
		{V(0, -1), b.Pos.Y - bx.Min.Y},
		{V(0, 1), bx.Max.Y - b.Pos.Y},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.d < best.d {
			best = f
		}
	}
	return Contact{Normal: best.n, Depth: best.d + b.Radius}, true
}

// Resolve pushes the body out of a contact and reflects its velocity.
func Resolve(b *Body, c Contact, restitution float64) {
	b.Pos = b.Pos.Add(c.Normal.Scale(c.Depth))
	b.Vel = Reflect(b.Vel, c.Normal, restitution)
}
