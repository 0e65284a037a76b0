package pacman

import (
	"math"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// Tile is one maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
)

// maze is the board plus entity start cells.
type maze struct {
	w, h    int
	tiles   [][]Tile
	player  core.Point
	ghosts  []core.Point
	pellets int
}

func newMaze(w, h int) *maze {
	m := &maze{w: w, h: h, tiles: make([][]Tile, h)}
	for y := range m.tiles {
		m.tiles[y] = make([]Tile, w)
	}
	return m
}

func (m *maze) at(p core.Point) Tile {
	if !p.In(m.w, m.h) {
		return TileWall
	}
	return m.tiles[p.Y][p.X]
}

func (m *maze) open(p core.Point) bool {
	return m.at(p) != TileWall
}

// generate builds a random maze for a level.
// Border cells are walls, interior walls are scattered at the level's density,
// cells the player cannot reach are walled in, and every reachable cell except
// the player's gets a pellet.
func (g *Game) generate(level int) *maze {
	for attempt := 0; ; attempt++ {
		m := newMaze(g.cfg.Board.Width, g.cfg.Board.Height)

		density := g.cfg.WallDensity + float64(level-1)*g.cfg.WallDensityStep
		density = math.Min(density, g.cfg.MaxWallDensity)

		m.player = core.Point{X: m.w / 2, Y: m.h / 2}
		for y := 0; y < m.h; y++ {
			for x := 0; x < m.w; x++ {
				p := core.Point{X: x, Y: y}
				switch {
				case x == 0 || y == 0 || x == m.w-1 || y == m.h-1:
					m.tiles[y][x] = TileWall
				case p == m.player:
					m.tiles[y][x] = TileEmpty
				case g.rng.Float64() < density:
					m.tiles[y][x] = TileWall
				default:
					m.tiles[y][x] = TilePellet
				}
			}
		}

		reach := m.reachable(m.player)
		for y := 0; y < m.h; y++ {
			for x := 0; x < m.w; x++ {
				p := core.Point{X: x, Y: y}
				if m.tiles[y][x] == TilePellet {
					if reach[p] {
						m.pellets++
					} else {
						m.tiles[y][x] = TileWall
					}
				}
			}
		}

		count := core.Min(g.cfg.Ghosts.Max, g.cfg.Ghosts.Base+level-1)
		m.ghosts = g.placeGhosts(m, reach, count)

		// A usable maze needs somewhere to go; walls can box the player in.
		if m.pellets >= count+1 || attempt >= 20 {
			return m
		}
	}
}

// placeGhosts picks distinct reachable cells, preferring ones far from the player.
func (g *Game) placeGhosts(m *maze, reach map[core.Point]bool, count int) []core.Point {
	var far, near []core.Point
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			p := core.Point{X: x, Y: y}
			if !reach[p] || p == m.player {
				continue
			}
			if p.Manhattan(m.player) >= g.cfg.MinGhostDistance {
				far = append(far, p)
			} else {
				near = append(near, p)
			}
		}
	}
	g.rng.Shuffle(len(far), func(i, j int) { far[i], far[j] = far[j], far[i] })
	g.rng.Shuffle(len(near), func(i, j int) { near[i], near[j] = near[j], near[i] })

	pool := append(far, near...)
	if count > len(pool) {
		count = len(pool)
	}
	return append([]core.Point(nil), pool[:count]...)
}

// reachable flood-fills open cells from start.
func (m *maze) reachable(start core.Point) map[core.Point]bool {
	seen := map[core.Point]bool{start: true}
	queue := []core.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range core.Dirs4 {
			n := p.Add(d)
			if !seen[n] && m.open(n) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// parseMaze builds a maze from text rows:
// '#' wall, '.' pellet, ' ' empty, 'P' player, 'G' ghost.
func parseMaze(rows []string) *maze {
	w := 0
	for _, r := range rows {
		w = core.Max(w, len(r))
	}
	m := newMaze(w, len(rows))
	for y, r := range rows {
		for x := 0; x < w; x++ {
			ch := byte('#')
			if x < len(r) {
				ch = r[x]
			}
			p := core.Point{X: x, Y: y}
			switch ch {
			case '#':
				m.tiles[y][x] = TileWall
			case '.':
				m.tiles[y][x] = TilePellet
				m.pellets++
			case 'P':
				m.player = p
			case 'G':
				m.ghosts = append(m.ghosts, p)
			}
		}
	}
	return m
}
