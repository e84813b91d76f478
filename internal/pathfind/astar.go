// Package pathfind finds routes for monsters across the dungeon grid.
package pathfind

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"

	"github.com/samdwyer/catacombs/internal/grid"
)

// Path is a route from a start tile to a goal tile. Steps includes both ends.
type Path struct {
	Steps []grid.TilePos
	Cost  int
}

// Next returns the tile to move into, the one right after the start.
func (p Path) Next() (grid.TilePos, bool) {
	if len(p.Steps) < 2 {
		return grid.TilePos{}, false
	}
	return p.Steps[1], true
}

// Finder runs A* searches over a grid of a fixed size. It keeps its search
// buffers between calls, so one Finder should be reused for a whole level.
// A Finder is not safe for concurrent use.
type Finder struct {
	size grid.MapSize
	pr   *paths.PathRange
}

// NewFinder creates a finder for maps of the given size.
func NewFinder(size grid.MapSize) *Finder {
	return &Finder{
		size: size,
		pr:   paths.NewPathRange(gruid.NewRange(0, 0, int(size.Width), int(size.Height))),
	}
}

// Find returns the shortest path from start to goal. Every step costs 1,
// diagonal or not. neighbors lists the candidate moves from a tile and
// walkable filters them; the goal is always enterable, since it is usually
// occupied by whatever is being chased. It returns false if start equals goal,
// either end is out of bounds, or no route exists.
func (f *Finder) Find(start, goal grid.TilePos, neighbors func(grid.TilePos) []grid.TilePos, walkable func(grid.TilePos) bool) (Path, bool) {
	if start == goal || !f.size.InBounds(start) || !f.size.InBounds(goal) {
		return Path{}, false
	}

	search := &astar{
		neighbors: neighbors,
		walkable:  walkable,
		goal:      goal,
		size:      f.size,
	}
	points := f.pr.AstarPath(search, toPoint(start), toPoint(goal))
	if len(points) == 0 {
		return Path{}, false
	}

	steps := make([]grid.TilePos, len(points))
	for i, p := range points {
		steps[i] = fromPoint(p)
	}
	return Path{Steps: steps, Cost: len(steps) - 1}, true
}

// FindPath is a one-shot version of Finder.Find.
func FindPath(start, goal grid.TilePos, size grid.MapSize, neighbors func(grid.TilePos) []grid.TilePos, walkable func(grid.TilePos) bool) (Path, bool) {
	return NewFinder(size).Find(start, goal, neighbors, walkable)
}

// astar implements paths.Astar on top of the caller's neighbor function.
type astar struct {
	neighbors func(grid.TilePos) []grid.TilePos
	walkable  func(grid.TilePos) bool
	goal      grid.TilePos
	size      grid.MapSize
}

func (a *astar) Neighbors(p gruid.Point) []gruid.Point {
	candidates := a.neighbors(fromPoint(p))
	nbs := make([]gruid.Point, 0, len(candidates))
	for _, c := range candidates {
		if !a.size.InBounds(c) {
			continue
		}
		if c == a.goal || a.walkable(c) {
			nbs = append(nbs, toPoint(c))
		}
	}
	return nbs
}

func (a *astar) Cost(from, to gruid.Point) int {
	return 1
}

func (a *astar) Estimation(from, to gruid.Point) int {
	return paths.DistanceChebyshev(from, to)
}

func toPoint(p grid.TilePos) gruid.Point {
	return gruid.Point{X: int(p.X), Y: int(p.Y)}
}

func fromPoint(p gruid.Point) grid.TilePos {
	return grid.Pos(uint32(p.X), uint32(p.Y))
}
