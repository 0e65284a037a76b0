package tetris

import "github.com/vovakirdan/arcade-hub/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindS
	KindZ
	KindL
	KindJ
	KindT
	kindCount
)

// Shape is a piece matrix; true cells are occupied. Rows are y, columns x.
type Shape [][]bool

var shapes = [kindCount]Shape{
	KindI: parse("1111"),
	KindO: parse("11", "11"),
	KindS: parse("011", "110"),
	KindZ: parse("110", "011"),
	KindL: parse("100", "111"),
	KindJ: parse("001", "111"),
	KindT: parse("010", "111"),
}

var colors = [kindCount]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindL: core.ColorOrange,
	KindJ: core.ColorBrightBlue,
	KindT: core.ColorBrightMagenta,
}

func parse(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '1'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate transposes the matrix and then reverses the row order.
func (s Shape) Rotate() Shape {
	w, h := s.Width(), len(s)
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[j][w-1-i]
		}
	}
	return out
}

// Cells returns the occupied offsets.
func (s Shape) Cells() []core.Point {
	var pts []core.Point
	for y, row := range s {
		for x, on := range row {
			if on {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Piece is the falling piece: shape plus origin.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   core.Point
}

// Color returns the piece color.
func (p Piece) Color() core.Color {
	return colors[p.Kind]
}

// Cells returns the occupied board coordinates.
func (p Piece) Cells() []core.Point {
	offs := p.Shape.Cells()
	for i := range offs {
		offs[i] = offs[i].Add(p.Pos)
	}
	return offs
}
