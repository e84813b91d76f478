package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/catacombs/internal/gamedata"
	"github.com/samdwyer/catacombs/internal/grid"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   grid.TilePos
		ok     bool
	}{
		{"east", 1, 0, grid.Pos(3, 2), true},
		{"northwest", -1, 1, grid.Pos(1, 3), true},
		{"to zero", -2, -2, grid.Pos(0, 0), true},
		{"negative x", -3, 0, grid.TilePos{}, false},
		{"negative y", 0, -3, grid.TilePos{}, false},
	}

	for _, tt := range tests {
		got, ok := Offset(grid.Pos(2, 2), tt.dx, tt.dy)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestPlayerStep(t *testing.T) {
	p := NewPlayer(grid.Pos(0, 5))
	_, ok := p.Step(-1, 0)
	assert.False(t, ok)

	next, ok := p.Step(0, 1)
	assert.True(t, ok)
	assert.Equal(t, grid.Pos(0, 6), next)
	assert.Equal(t, grid.Pos(0, 5), p.Pos, "Step does not move the player")
}

func TestMonsterFromDef(t *testing.T) {
	def := &gamedata.MobDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#00FF00", BlocksMovement: true}
	m := NewMonster(def, grid.Pos(4, 4), 2)

	assert.Equal(t, "Orc", m.Name())
	assert.Equal(t, 'o', m.Glyph())
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), m.Color())
	assert.True(t, m.BlocksMovement())
	assert.Equal(t, 2, m.Room)
}

func TestMonsterWithoutDef(t *testing.T) {
	m := NewMonster(nil, grid.Pos(0, 0), -1)
	assert.Equal(t, "Monster", m.Name())
	assert.Equal(t, 'm', m.Glyph())
	assert.True(t, m.BlocksMovement())
}
