package physics

import "math"

// Kind identifies which collider list a hit came from.
type Kind int

const (
	KindSegment Kind = iota
	KindCircle
	KindBox
)

// Hit records one resolved collision during Move.
type Hit struct {
	Kind    Kind
	Index   int // Index into the matching Playfield slice
	Contact Contact
}

// Playfield is the static geometry of a continuous-space game.
// Boxes may be toggled off (destroyed bricks) without reallocating.
type Playfield struct {
	Segments    []Segment
	Circles     []Circle
	Boxes       []Box
	BoxActive   []bool
	Restitution float64 // Applied to every contact; 1 is perfectly elastic
}

// Walls returns the three or four edges of a w x h field.
// With openBottom the floor is left out so bodies can fall through.
func Walls(w, h float64, openBottom bool) []Segment {
	segs := []Segment{
		{A: V(0, 0), B: V(w, 0)}, // ceiling
		{A: V(0, 0), B: V(0, h)}, // left
		{A: V(w, 0), B: V(w, h)}, // right
	}
	if !openBottom {
		segs = append(segs, Segment{A: V(0, h), B: V(w, h)})
	}
	return segs
}

// AddBox appends an active box and returns its index.
func (p *Playfield) AddBox(b Box) int {
	p.Boxes = append(p.Boxes, b)
	p.BoxActive = append(p.BoxActive, true)
	return len(p.Boxes) - 1
}

// Move advances the body by one tick of its current velocity, testing every
// collider after each substep. Substeps keep the per-step travel under half
// the body radius so fast bodies cannot tunnel through thin walls.
func (p *Playfield) Move(b *Body) []Hit {
	var hits []Hit

	steps := 1
	if b.Radius > 0 {
		steps = int(math.Ceil(b.Vel.Len() / (b.Radius * 0.5)))
		if steps < 1 {
			steps = 1
		}
	}

	for i := 0; i < steps; i++ {
		// Velocity may change on contact; the remaining substeps use the new one.
		b.Pos = b.Pos.Add(b.Vel.Scale(1 / float64(steps)))
		hits = p.resolve(b, hits)
	}
	return hits
}

func (p *Playfield) resolve(b *Body, hits []Hit) []Hit {
	for i, s := range p.Segments {
		if c, ok := s.Collide(*b); ok {
			Resolve(b, c, p.Restitution)
			hits = append(hits, Hit{Kind: KindSegment, Index: i, Contact: c})
		}
	}
	for i, cc := range p.Circles {
		if c, ok := cc.Collide(*b); ok {
			Resolve(b, c, p.Restitution)
			hits = append(hits, Hit{Kind: KindCircle, Index: i, Contact: c})
		}
	}
	for i, bx := range p.Boxes {
		if !p.BoxActive[i] {
			continue
		}
		if c, ok := bx.Collide(*b); ok {
			Resolve(b, c, p.Restitution)
			hits = append(hits, Hit{Kind: KindBox, Index: i, Contact: c})
		}
	}
	return hits
}
