// Package fov computes field of view with symmetric recursive shadowcasting.
//
// The area around the origin is split into four quadrants. Each quadrant is
// scanned row by row, moving away from the origin, while a pair of slopes
// tracks the part of the row that is still lit. Whenever a floor tile is
// followed by a wall the lit cone splits and the part before the wall is
// scanned recursively. Walls are always revealed; floors are revealed only
// when they lie inside the cone measured from tile centers, which makes the
// result symmetric: if A can see floor tile B, B can see A.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/catacombs/internal/grid"
)

// Unlimited disables the depth limit of ComputeLimited.
const Unlimited = -1

// Compute returns the tiles visible from origin. isBlocking reports whether a
// tile blocks sight. Tiles outside size are treated as blocking and never
// returned. The origin is always visible, even if it blocks sight itself.
func Compute(origin grid.TilePos, size grid.MapSize, isBlocking func(grid.TilePos) bool) mapset.Set[grid.TilePos] {
	return ComputeLimited(origin, size, Unlimited, isBlocking)
}

// ComputeLimited is like Compute but stops scanning rows deeper than
// maxDepth, so every visible tile is within maxDepth of origin in Chebyshev
// distance. A negative maxDepth means no limit.
func ComputeLimited(origin grid.TilePos, size grid.MapSize, maxDepth int, isBlocking func(grid.TilePos) bool) mapset.Set[grid.TilePos] {
	visible := mapset.New[grid.TilePos]()
	visible.Put(origin)

	// No row beyond the map's largest dimension can contain an in-bounds tile.
	limit := size.MaxDimension()
	if maxDepth >= 0 && maxDepth < limit {
		limit = maxDepth
	}

	for _, dir := range cardinals {
		s := &scanner{
			quadrant:   quadrant{dir: dir, ox: int(origin.X), oy: int(origin.Y)},
			size:       size,
			maxDepth:   limit,
			isBlocking: isBlocking,
			visible:    visible,
		}
		s.scan(firstRow())
	}

	return visible
}

// scanner carries the state shared by every row of one quadrant.
type scanner struct {
	quadrant   quadrant
	size       grid.MapSize
	maxDepth   int
	isBlocking func(grid.TilePos) bool
	visible    mapset.Set[grid.TilePos]
}

// tileState is what the scan remembers about the previous tile in a row.
type tileState int

const (
	none tileState = iota
	wall
	floor
)

func (s *scanner) scan(r row) {
	if r.depth > s.maxDepth {
		return
	}

	prev := none
	next := r.next()

	for col := r.minCol(); col <= r.maxCol(); col++ {
		pos, inBounds := s.quadrant.transform(r.depth, col, s.size)
		isWall := !inBounds || s.isBlocking(pos)

		if inBounds && (isWall || r.isSymmetric(col)) {
			s.visible.Put(pos)
		}
		if prev == wall && !isWall {
			next.start = tileSlope(r.depth, col)
		}
		if prev == floor && isWall {
			split := next
			split.end = tileSlope(r.depth, col)
			s.scan(split)
		}

		if isWall {
			prev = wall
		} else {
			prev = floor
		}
	}

	if prev == floor {
		s.scan(next)
	}
}
