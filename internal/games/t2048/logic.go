package t2048

import "github.com/vovakirdan/arcade-hub/internal/core"

// Board is a square grid of tile values; 0 is empty. Rows are y.
type Board [][]int

// NewBoard returns an empty n x n board.
func NewBoard(n int) Board {
	b := make(Board, n)
	for y := range b {
		b[y] = make([]int, n)
	}
	return b
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y := range b {
		out[y] = append([]int(nil), b[y]...)
	}
	return out
}

// slideLine packs a line toward index 0, merging equal neighbors once.
// Returns the new line and the sum of merged tiles.
func slideLine(line []int) ([]int, int) {
	out := make([]int, len(line))
	score := 0
	w := 0
	merged := false
	for _, v := range line {
		if v == 0 {
			continue
		}
		if w > 0 && !merged && out[w-1] == v {
			out[w-1] *= 2
			score += out[w-1]
			merged = true
			continue
		}
		out[w] = v
		w++
		merged = false
	}
	return out, score
}

// line returns the cells of lane i read in the direction tiles travel toward.
// Moving left reads each row left to right; moving down reads each column bottom up.
func line(n, i int, d core.Point) []core.Point {
	pts := make([]core.Point, n)
	for k := 0; k < n; k++ {
		switch d {
		case core.Point{X: -1}:
			pts[k] = core.Point{X: k, Y: i}
		case core.Point{X: 1}:
			pts[k] = core.Point{X: n - 1 - k, Y: i}
		case core.Point{Y: -1}:
			pts[k] = core.Point{X: i, Y: k}
		default:
			pts[k] = core.Point{X: i, Y: n - 1 - k}
		}
	}
	return pts
}

// Slide moves every tile in direction d.
// Returns the new board, the merge score and whether anything moved.
func Slide(b Board, d core.Point) (Board, int, bool) {
	n := len(b)
	out := NewBoard(n)
	total := 0
	changed := false

	for i := 0; i < n; i++ {
		pts := line(n, i, d)
		vals := make([]int, n)
		for k, p := range pts {
			vals[k] = b[p.Y][p.X]
		}
		slid, score := slideLine(vals)
		total += score
		for k, p := range pts {
			out[p.Y][p.X] = slid[k]
			if slid[k] != vals[k] {
				changed = true
			}
		}
	}
	return out, total, changed
}

// EmptyCells lists the empty cells in row-major order.
func EmptyCells(b Board) []core.Point {
	var cells []core.Point
	for y := range b {
		for x, v := range b[y] {
			if v == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// CanMove reports whether any slide would change the board.
func CanMove(b Board) bool {
	n := len(b)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := b[y][x]
			if v == 0 {
				return true
			}
			if x+1 < n && b[y][x+1] == v {
				return true
			}
			if y+1 < n && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value.
func MaxTile(b Board) int {
	m := 0
	for y := range b {
		for _, v := range b[y] {
			m = core.Max(m, v)
		}
	}
	return m
}
