package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/catacombs/internal/ui"
)

// direction is a one-tile step. North is +y.
type direction struct {
	dx, dy int
}

// runeMoves maps vi-style keys to steps.
var runeMoves = map[rune]direction{
	'k': {0, 1},
	'j': {0, -1},
	'h': {-1, 0},
	'l': {1, 0},
	'y': {-1, 1},
	'u': {1, 1},
	'b': {-1, -1},
	'n': {1, -1},
}

// keyMoves maps arrow keys to steps.
var keyMoves = map[tcell.Key]direction{
	tcell.KeyUp:    {0, 1},
	tcell.KeyDown:  {0, -1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
}

// Run draws the game on screen and processes input until the player quits or
// ctx is cancelled. It closes the screen before returning.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	defer screen.Close()
	renderer := ui.NewRenderer(screen)
	status := "arrows/hjklyubn move  . wait  r reveal  q quit"

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			screen.Interrupt()
		case <-stop:
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer.Render(g.level.Map, g.player, g.monsters, status)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			msg, quit := g.HandleKey(ctx, ev)
			if quit {
				return nil
			}
			if msg != "" {
				status = msg
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case nil:
			// The screen was finalized.
			return nil
		}
	}
}

// HandleKey applies one key press. It returns a status message and whether
// the player asked to quit.
func (g *Game) HandleKey(ctx context.Context, ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return "", true
		case '.':
			g.Wait(ctx)
			return fmt.Sprintf("turn %d: you wait", g.turns), false
		case 'r', 'R':
			g.RevealMap(ctx)
			return "the map is revealed", false
		}
		if d, ok := runeMoves[ev.Rune()]; ok {
			return g.moveMessage(g.MovePlayer(ctx, d.dx, d.dy)), false
		}
	default:
		if d, ok := keyMoves[ev.Key()]; ok {
			return g.moveMessage(g.MovePlayer(ctx, d.dx, d.dy)), false
		}
	}
	return "", false
}

func (g *Game) moveMessage(result MoveResult) string {
	switch result {
	case Blocked:
		return "something is in the way"
	case Bumped:
		return fmt.Sprintf("turn %d: a monster blocks your path", g.turns)
	default:
		return fmt.Sprintf("turn %d", g.turns)
	}
}
