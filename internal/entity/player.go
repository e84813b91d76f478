// Package entity provides the actors that move around the dungeon.
package entity

import "github.com/samdwyer/catacombs/internal/grid"

// PlayerGlyph is the symbol drawn for the player.
const PlayerGlyph = '@'

// Player is the actor controlled from the keyboard.
type Player struct {
	Pos grid.TilePos
}

// NewPlayer creates a player at pos.
func NewPlayer(pos grid.TilePos) *Player {
	return &Player{Pos: pos}
}

// Step returns the position one move of (dx, dy) away. It reports false if
// the move would leave the positive quadrant.
func (p *Player) Step(dx, dy int) (grid.TilePos, bool) {
	return Offset(p.Pos, dx, dy)
}

// Offset moves pos by (dx, dy), reporting false if either component would
// become negative.
func Offset(pos grid.TilePos, dx, dy int) (grid.TilePos, bool) {
	x, y := int(pos.X)+dx, int(pos.Y)+dy
	if x < 0 || y < 0 {
		return grid.TilePos{}, false
	}
	return grid.Pos(uint32(x), uint32(y)), true
}
