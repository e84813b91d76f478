// Package world provides dungeon generation and map management.
package world

// Visibility is a tile's field-of-view classification relative to the player.
type Visibility int

const (
	// Unexplored tiles have never been seen.
	Unexplored Visibility = iota
	// NotVisible tiles were seen before and are remembered, but are out of sight now.
	NotVisible
	// Visible tiles are currently in line of sight.
	Visible
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Unexplored:
		return "unexplored"
	case NotVisible:
		return "not_visible"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

const (
	// RuneWall is the display character for wall tiles.
	RuneWall = '#'
	// RuneFloor is the display character for floor tiles.
	RuneFloor = '.'
)

// Tile holds the state of a single map cell.
type Tile struct {
	BlocksMovement bool
	BlocksSight    bool
	Visibility     Visibility
}

// WallTile returns an unexplored stone wall.
func WallTile() Tile {
	return Tile{BlocksMovement: true, BlocksSight: true}
}

// FloorTile returns an unexplored stone floor.
func FloorTile() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.BlocksMovement
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.BlocksMovement {
		return RuneWall
	}
	return RuneFloor
}
