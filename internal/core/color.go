package core

import "fmt"

// Color is the foreground of a screen cell. The platform maps each value
// to an ANSI color; games only pick from this palette.
type Color uint8

// Palette. The bright variants are for moving or scoring elements,
// the plain ones for terrain.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// Roles shared by the HUD and the session overlays.
const (
	ColorHUD     = ColorBrightWhite
	ColorFrame   = ColorGray
	ColorNotice  = ColorBrightYellow
	ColorWin     = ColorBrightGreen
	ColorLose    = ColorBrightRed
	ColorTimeout = ColorBrightCyan
)

var colorNames = [colorCount]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Valid reports whether c is in the palette.
func (c Color) Valid() bool { return c < colorCount }
