package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catacombs/internal/entity"
	"github.com/samdwyer/catacombs/internal/grid"
	"github.com/samdwyer/catacombs/internal/world"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// ScreenPos converts a tile position to screen coordinates. The map's y axis
// points north, the screen's points down, so rows are flipped.
func ScreenPos(m *world.Map, pos grid.TilePos) (x, y int) {
	return int(pos.X), m.Height() - 1 - int(pos.Y)
}

// Render draws the map, the monsters in sight, the player and a status line
// below the map. Tiles that were never seen are left blank.
func (r *Renderer) Render(m *world.Map, player *entity.Player, monsters []*entity.Monster, status string) {
	r.screen.Clear()

	m.Each(func(pos grid.TilePos, t *world.Tile) {
		if t.Visibility == world.Unexplored {
			return
		}
		x, y := ScreenPos(m, pos)
		style := floorStyle
		if t.BlocksSight {
			style = wallStyle
		}
		r.screen.SetContent(x, y, t.Rune(), style)
	})

	for _, mon := range monsters {
		if t, ok := m.Get(mon.Pos); !ok || t.Visibility != world.Visible {
			continue
		}
		x, y := ScreenPos(m, mon.Pos)
		r.screen.SetContent(x, y, mon.Glyph(), tcell.StyleDefault.Foreground(mon.Color()))
	}

	x, y := ScreenPos(m, player.Pos)
	r.screen.SetContent(x, y, entity.PlayerGlyph, playerStyle)

	r.RenderMessage(status, m.Height())
	r.screen.Show()
}

// RenderMessage displays a message on screen row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, statusStyle)
	}
}
