// Package catalog holds the immutable list of game definitions shown in the
// arcade menu. It is loaded once at startup and never mutated.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// ErrUnknownGame is returned when an id is not in the catalog.
var ErrUnknownGame = errors.New("catalog: unknown game")

// Family groups games by how their state is represented.
type Family string

const (
	FamilyGrid       Family = "grid"
	FamilyContinuous Family = "continuous"
)

// Controls names the input scheme used to decode keys for a game.
type Controls string

const (
	ControlsDirectional Controls = "directional" // Up/Down/Left/Right
	ControlsFalling     Controls = "falling"     // Shift, soft/hard drop, rotate
	ControlsBoard       Controls = "board"       // Cursor plus reveal/flag
	ControlsFlippers    Controls = "flippers"    // Left/right flippers, launch
	ControlsJump        Controls = "jump"        // Single jump key
	ControlsLanes       Controls = "lanes"       // Lane left/right
	ControlsPaddleX     Controls = "paddle_x"    // Horizontal paddle, keys or pointer
	ControlsPaddleY     Controls = "paddle_y"    // Vertical paddle, keys or pointer
	ControlsShooter     Controls = "shooter"     // Move and fire
)

// UsesPointer reports whether the scheme also follows the pointer.
func (c Controls) UsesPointer() bool {
	return c == ControlsPaddleX || c == ControlsPaddleY
}

// Definition is a static game descriptor.
type Definition struct {
	ID         string        `yaml:"id" json:"id"`
	Name       string        `yaml:"name" json:"name"`
	Difficulty string        `yaml:"difficulty" json:"difficulty"`
	Duration   string        `yaml:"duration" json:"duration"`
	Reward     int           `yaml:"reward" json:"reward"`
	Family     Family        `yaml:"family" json:"family"`
	Controls   Controls      `yaml:"controls" json:"controls"`
	Tick       time.Duration `yaml:"tick" json:"-"`
}

// Catalog is an ordered, read-only set of definitions.
type Catalog struct {
	games []Definition
	index map[string]int
}

type catalogFile struct {
	Games []Definition `yaml:"games"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if len(f.Games) == 0 {
		return nil, errors.New("catalog: no games")
	}

	c := &Catalog{
		games: f.Games,
		index: make(map[string]int, len(f.Games)),
	}
	for i, d := range f.Games {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog: entry %d has no id", i)
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", d.ID)
		}
		if d.Tick <= 0 {
			return nil, fmt.Errorf("catalog: %s: tick must be positive", d.ID)
		}
		if d.Family != FamilyGrid && d.Family != FamilyContinuous {
			return nil, fmt.Errorf("catalog: %s: unknown family %q", d.ID, d.Family)
		}
		c.index[d.ID] = i
	}
	return c, nil
}

// All returns a copy of the definitions in menu order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.games))
	copy(out, c.games)
	return out
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.games)
}

// At returns the definition at a menu position.
func (c *Catalog) At(i int) Definition {
	return c.games[i]
}

// Get looks up a definition by id.
func (c *Catalog) Get(id string) (Definition, error) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return c.games[i], nil
}

// IndexOf returns the menu position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Next returns the menu position after i, wrapping around.
func (c *Catalog) Next(i int) int {
	return (i + 1) % len(c.games)
}

// Prev returns the menu position before i, wrapping around.
func (c *Catalog) Prev(i int) int {
	return (i - 1 + len(c.games)) % len(c.games)
}
