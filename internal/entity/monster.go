package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catacombs/internal/gamedata"
	"github.com/samdwyer/catacombs/internal/grid"
)

// Monster is a hostile creature in the dungeon.
type Monster struct {
	Def  *gamedata.MobDef
	Pos  grid.TilePos
	Room int // Index of the room it spawned in
}

// NewMonster creates a monster from a data-driven definition.
func NewMonster(def *gamedata.MobDef, pos grid.TilePos, room int) *Monster {
	return &Monster{Def: def, Pos: pos, Room: room}
}

// Name returns the display name.
func (m *Monster) Name() string {
	if m.Def == nil {
		return "Monster"
	}
	return m.Def.Name
}

// Glyph returns the rune to draw.
func (m *Monster) Glyph() rune {
	if m.Def == nil {
		return 'm'
	}
	return m.Def.GlyphRune()
}

// Color returns the tcell color to draw with.
func (m *Monster) Color() tcell.Color {
	if m.Def == nil {
		return tcell.ColorPurple
	}
	return m.Def.TCellColor()
}

// BlocksMovement reports whether other actors have to path around this monster.
func (m *Monster) BlocksMovement() bool {
	return m.Def == nil || m.Def.BlocksMovement
}
