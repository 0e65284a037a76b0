package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	arcade, err := LoadArcade("")
	if err != nil {
		t.Fatalf("LoadArcade: %v", err)
	}
	want := DefaultArcadeConfig()
	if arcade.Session.TrophyAfter != want.Session.TrophyAfter {
		t.Errorf("TrophyAfter = %v, expected %v", arcade.Session.TrophyAfter, want.Session.TrophyAfter)
	}
	if arcade.Ledger.StartingCredits != 5 {
		t.Errorf("StartingCredits = %d, expected 5", arcade.Ledger.StartingCredits)
	}

	snake, _ := LoadSnake("")
	if snake != DefaultSnakeConfig() {
		t.Errorf("snake defaults differ: %+v", snake)
	}
	tetris, _ := LoadTetris("")
	if tetris != DefaultTetrisConfig() {
		t.Errorf("tetris defaults differ: %+v", tetris)
	}
	pac, _ := LoadPacMan("")
	if pac != DefaultPacManConfig() {
		t.Errorf("pacman defaults differ: %+v", pac)
	}
	pong, _ := LoadPong("")
	if pong != DefaultPongConfig() {
		t.Errorf("pong defaults differ: %+v", pong)
	}
}

func TestEveryGameHasEmbeddedDefault(t *testing.T) {
	for _, name := range []string{
		"arcade", "snake", "tetris", "pacman", "breakout", "minesweeper", "2048",
		"pinball", "flappy", "racer", "pong", "shooter",
	} {
		if GetDefaultYAML(name) == nil {
			t.Errorf("no embedded default for %q", name)
		}
	}
	if GetDefaultYAML("nope") != nil {
		t.Error("unknown name should have no default")
	}
}

func TestCustomPathOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.yaml")
	data := []byte("session:\n  trophy_after: 60s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArcade(path)
	if err != nil {
		t.Fatalf("LoadArcade: %v", err)
	}
	if cfg.Session.TrophyAfter != 60*time.Second {
		t.Errorf("TrophyAfter = %v, expected 60s", cfg.Session.TrophyAfter)
	}
	if cfg.Session.TrophyAmount != 3 {
		t.Errorf("TrophyAmount = %d, expected default 3", cfg.Session.TrophyAmount)
	}
	if !cfg.Session.IsTimeCapped("flappy") || cfg.Session.IsTimeCapped("snake") {
		t.Error("time-capped defaults should survive a partial file")
	}
}

func TestCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("malformed custom file should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	d := DefaultFlappyConfig().Difficulty

	d.ApplyPreset(DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", d)
	}

	d.ApplyPreset(DifficultyFixed)
	if d.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}
