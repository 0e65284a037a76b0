package hud

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

func TestDrawWritesFields(t *testing.T) {
	dst := core.NewScreen(60, 10)
	Draw(dst, "Snake", F("Score", 30), F("Length", 4))

	row := dst.Row(0)
	if !strings.Contains(row, "Snake") || !strings.Contains(row, "Score: 30") || !strings.Contains(row, "Length: 4") {
		t.Errorf("HUD row = %q", row)
	}
	if dst.Get(5, 1) != '─' {
		t.Error("separator missing")
	}
}

func TestOriginCentersBoard(t *testing.T) {
	dst := core.NewScreen(80, 24)
	x, y := Origin(dst, 20, 15)
	if x != 30 {
		t.Errorf("x = %d, expected 30", x)
	}
	if y < Height+1 || y+15 >= 24 {
		t.Errorf("y = %d leaves no room for the frame", y)
	}

	if !Fits(dst, 20, 15) || Fits(dst, 80, 15) {
		t.Error("Fits mismatch")
	}
}
