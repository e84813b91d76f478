// Package grid provides tile coordinates and map dimensions.
package grid

import "math"

// TileSize is the edge length of a tile in world units. Tiles are square.
const TileSize = 32

// TilePos is the position of a tile in tile coordinates.
type TilePos struct {
	X, Y uint32
}

// Pos is shorthand for constructing a TilePos.
func Pos(x, y uint32) TilePos {
	return TilePos{X: x, Y: y}
}

// WorldPoint is a position in continuous world coordinates.
type WorldPoint struct {
	X, Y float64
}

// Add returns the component-wise sum of p and o.
func (p TilePos) Add(o TilePos) TilePos {
	return TilePos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o. It reports false when either component would go below zero.
func (p TilePos) Sub(o TilePos) (TilePos, bool) {
	if o.X > p.X || o.Y > p.Y {
		return TilePos{}, false
	}
	return TilePos{X: p.X - o.X, Y: p.Y - o.Y}, true
}

// Half divides both components by two, rounding down.
func (p TilePos) Half() TilePos {
	return TilePos{X: p.X / 2, Y: p.Y / 2}
}

// Distance returns the Chebyshev distance between p and o.
func (p TilePos) Distance(o TilePos) uint32 {
	return max(absDiff(p.X, o.X), absDiff(p.Y, o.Y))
}

// Index returns the row-major index of p in a grid of the given size.
func (p TilePos) Index(size MapSize) int {
	return int(p.Y)*int(size.Width) + int(p.X)
}

// FromIndex is the inverse of Index.
func FromIndex(idx int, size MapSize) TilePos {
	w := int(size.Width)
	return TilePos{X: uint32(idx % w), Y: uint32(idx / w)}
}

// World returns the world coordinates of the tile's center.
func (p TilePos) World() WorldPoint {
	return WorldPoint{X: float64(p.X) * TileSize, Y: float64(p.Y) * TileSize}
}

// Corner returns the top-left corner of the tile in world coordinates,
// useful for placing overlays on the tile.
func (p TilePos) Corner() WorldPoint {
	w := p.World()
	return WorldPoint{X: w.X - TileSize/2, Y: w.Y + TileSize/2}
}

// FromWorld converts world coordinates to the nearest tile. It reports false
// for points that round to a negative tile coordinate.
func FromWorld(w WorldPoint) (TilePos, bool) {
	x := math.Round(w.X / TileSize)
	y := math.Round(w.Y / TileSize)
	if x < 0 || y < 0 || x > math.MaxUint32 || y > math.MaxUint32 {
		return TilePos{}, false
	}
	return TilePos{X: uint32(x), Y: uint32(y)}, true
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
