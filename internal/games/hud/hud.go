// Package hud holds the drawing helpers shared by game renderers:
// the status line, board placement and the bordered playfield frame.
package hud

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Height is the number of rows the status line and separator take.
const Height = 2

// Draw writes the title and key/value fields on row 0 and a separator on row 1.
func Draw(dst *core.Screen, title string, fields ...Field) {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(title)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %v", f.Name, f.Value)
	}
	dst.Pen(core.ColorHUD)
	dst.DrawText(0, 0, b.String())
	dst.Pen(core.ColorFrame)
	dst.DrawHLine(0, 1, dst.Width(), '─')
	dst.Pen(core.ColorDefault)
}

// Field is one HUD entry.
type Field struct {
	Name  string
	Value any
}

// F builds a Field.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Origin returns the top-left screen cell for a w x h board framed by a
// one-cell border, centered below the HUD.
func Origin(dst *core.Screen, w, h int) (x, y int) {
	return OriginFor(dst.Width(), dst.Height(), w, h)
}

// OriginFor is Origin for a screen of the given size. Pointer-driven games
// use it to map screen cells back to board cells.
func OriginFor(screenW, screenH, w, h int) (x, y int) {
	x = (screenW - w) / 2
	y = Height + 1 + (screenH-Height-h-2)/2
	if x < 1 {
		x = 1
	}
	if y < Height+1 {
		y = Height + 1
	}
	return x, y
}

// Frame draws a border around a board whose top-left cell is (x, y).
func Frame(dst *core.Screen, x, y, w, h int) {
	dst.Pen(core.ColorGray)
	dst.DrawBox(core.NewRect(x-1, y-1, w+2, h+2))
	dst.Pen(core.ColorDefault)
}

// Fits reports whether a framed w x h board fits under the HUD.
func Fits(dst *core.Screen, w, h int) bool {
	return dst.Width() >= w+2 && dst.Height() >= h+2+Height
}

// TooSmall draws the resize notice.
func TooSmall(dst *core.Screen, w, h int) {
	dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", w+2, h+2+Height))
}
