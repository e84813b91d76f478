package world

import (
	"iter"
	"math/rand"

	"github.com/samdwyer/catacombs/internal/grid"
)

// SimpleTunnel returns the tiles of an L-shaped tunnel from start to end.
// The elbow is either (end.X, start.Y) or (start.X, end.Y), chosen with equal
// probability. Each leg is the full cross product of its x and y spans, so
// both endpoints are always included. The corner is picked when SimpleTunnel
// is called; the returned sequence is meant to be consumed once.
func SimpleTunnel(start, end grid.TilePos, rng *rand.Rand) iter.Seq[grid.TilePos] {
	corner := grid.Pos(start.X, end.Y)
	if rng.Intn(2) == 0 {
		corner = grid.Pos(end.X, start.Y)
	}

	return func(yield func(grid.TilePos) bool) {
		if !sweep(start, corner, yield) {
			return
		}
		sweep(corner, end, yield)
	}
}

// sweep yields every tile in the rectangle spanned by a and b, iterating x
// in the outer loop. It returns false if the consumer stopped early.
func sweep(a, b grid.TilePos, yield func(grid.TilePos) bool) bool {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			if !yield(grid.Pos(x, y)) {
				return false
			}
		}
	}
	return true
}
