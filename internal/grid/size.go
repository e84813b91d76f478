package grid

const (
	// DefaultWidth and DefaultHeight are the play area used when nothing else is configured.
	DefaultWidth  = 80
	DefaultHeight = 45
)

// MapSize is the size of a map in tiles.
type MapSize struct {
	Width, Height uint32
}

// Size is shorthand for constructing a MapSize.
func Size(width, height uint32) MapSize {
	return MapSize{Width: width, Height: height}
}

// Len returns the number of cells in the map.
func (s MapSize) Len() int {
	return int(s.Width) * int(s.Height)
}

// IsEmpty returns true if the map has no cells.
func (s MapSize) IsEmpty() bool {
	return s.Len() == 0
}

// InBounds returns true if pos lies within the map.
func (s MapSize) InBounds(pos TilePos) bool {
	return pos.X < s.Width && pos.Y < s.Height
}

// Center returns the geometric center of the map in world coordinates.
func (s MapSize) Center() WorldPoint {
	return WorldPoint{
		X: float64(s.Width) * TileSize / 2,
		Y: float64(s.Height) * TileSize / 2,
	}
}

// CenterTile returns the tile nearest to the map center.
func (s MapSize) CenterTile() TilePos {
	pos, _ := FromWorld(s.Center())
	return pos
}

// MaxDimension returns the larger of width and height.
func (s MapSize) MaxDimension() int {
	return int(max(s.Width, s.Height))
}
