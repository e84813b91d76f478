package world

import (
	"iter"

	"github.com/samdwyer/catacombs/internal/grid"
)

// Room represents a rectangular room in the dungeon. Start and End are both
// inclusive; the outermost ring of tiles is the room's wall.
type Room struct {
	Start grid.TilePos
	End   grid.TilePos
}

// NewRoom creates a room whose top-left corner is at from. Width and height
// must be at least 1.
func NewRoom(from grid.TilePos, width, height uint32) Room {
	return Room{
		Start: from,
		End:   grid.Pos(from.X+width-1, from.Y+height-1),
	}
}

// Width returns the room's width including its walls.
func (r Room) Width() uint32 {
	return r.End.X - r.Start.X + 1
}

// Height returns the room's height including its walls.
func (r Room) Height() uint32 {
	return r.End.Y - r.Start.Y + 1
}

// Center returns the center of the room, rounded down.
func (r Room) Center() grid.TilePos {
	return r.Start.Add(r.End).Half()
}

// Contains returns true if pos lies within the room's bounds, walls included.
func (r Room) Contains(pos grid.TilePos) bool {
	return pos.X >= r.Start.X && pos.X <= r.End.X && pos.Y >= r.Start.Y && pos.Y <= r.End.Y
}

// Intersects returns true if this room overlaps with another room.
// Rooms that share an edge intersect.
func (r Room) Intersects(other Room) bool {
	return r.Start.X <= other.End.X &&
		r.End.X >= other.Start.X &&
		r.Start.Y <= other.End.Y &&
		r.End.Y >= other.Start.Y
}

// Floor iterates over the room's interior floor tiles, column by column.
func (r Room) Floor() iter.Seq[grid.TilePos] {
	return func(yield func(grid.TilePos) bool) {
		for x := r.Start.X + 1; x < r.End.X; x++ {
			for y := r.Start.Y + 1; y < r.End.Y; y++ {
				if !yield(grid.Pos(x, y)) {
					return
				}
			}
		}
	}
}

// FloorArea returns the number of interior floor tiles.
func (r Room) FloorArea() int {
	if r.Width() < 3 || r.Height() < 3 {
		return 0
	}
	return int(r.Width()-2) * int(r.Height()-2)
}
