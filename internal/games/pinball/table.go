package pinball

import "github.com/vovakirdan/arcade-hub/internal/physics"

// Table layout on the default 40x30 field, scaled to the configured size.
// The plunger lane runs down the right edge; both inlanes feed the flippers.
type table struct {
	field    physics.Playfield
	laneX    float64 // Inner wall of the plunger lane
	flippers [2]Flipper
	flipSeg  [2]int // Segment indices of the flippers
}

func buildTable(w, h, flipperLen, restitution float64) table {
	sx, sy := w/40, h/30
	p := func(x, y float64) physics.Vec { return physics.V(x*sx, y*sy) }

	t := table{laneX: 37 * sx}
	segs := physics.Walls(w, h, true)
	segs = append(segs,
		physics.Segment{A: p(0, 4), B: p(4, 0)},     // top-left corner
		physics.Segment{A: p(36, 0), B: p(40, 4)},   // top-right corner, turns the launch
		physics.Segment{A: p(37, 6), B: p(37, 30)},  // plunger lane wall
		physics.Segment{A: p(37, 30), B: p(40, 30)}, // plunger rest
		physics.Segment{A: p(0, 20), B: p(12, 26)},  // left inlane
		physics.Segment{A: p(37, 20), B: p(28, 26)}, // right inlane
	)

	t.flippers[0] = newFlipper(p(12, 26), flipperLen, 1)
	t.flippers[1] = newFlipper(p(28, 26), flipperLen, -1)
	for i := range t.flippers {
		t.flipSeg[i] = len(segs)
		segs = append(segs, t.flippers[i].Segment())
	}

	t.field = physics.Playfield{
		Segments: segs,
		Circles: []physics.Circle{
			{Center: p(12, 8), Radius: 2 * sx},
			{Center: p(26, 8), Radius: 2 * sx},
			{Center: p(19, 13), Radius: 2 * sx},
		},
		Restitution: restitution,
	}
	return t
}

// syncFlippers copies the flipper segments into the playfield.
func (t *table) syncFlippers() {
	for i := range t.flippers {
		t.field.Segments[t.flipSeg[i]] = t.flippers[i].Segment()
	}
}

// flipperAt maps a segment index to a flipper, or -1.
func (t *table) flipperAt(seg int) int {
	for i, s := range t.flipSeg {
		if s == seg {
			return i
		}
	}
	return -1
}
