package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/catacombs/internal/entity"
	"github.com/samdwyer/catacombs/internal/fov"
	"github.com/samdwyer/catacombs/internal/gamedata"
	"github.com/samdwyer/catacombs/internal/grid"
	"github.com/samdwyer/catacombs/internal/pathfind"
	"github.com/samdwyer/catacombs/internal/telemetry"
	"github.com/samdwyer/catacombs/internal/world"
)

// maxMonstersPerRoom is the upper bound of monsters spawned in one room.
const maxMonstersPerRoom = 3

// Game holds the entire game state.
type Game struct {
	cfg      Config
	log      logrus.FieldLogger
	rng      *rand.Rand
	seed     int64
	level    *world.Level
	player   *entity.Player
	monsters []*entity.Monster
	mobs     *gamedata.MobRegistry
	finder   *pathfind.Finder
	turn     TurnState
	turns    int
}

// New generates a level and populates it. A single random source seeded from
// cfg.Seed drives the layout and the spawns, so equal seeds give equal games.
func New(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Game, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	level, err := world.Generate(ctx, cfg.Gen, rng)
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}

	mobs, err := gamedata.LoadMobRegistry()
	if err != nil {
		return nil, fmt.Errorf("load mobs: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		log:    log.WithField("level_id", level.ID.String()),
		rng:    rng,
		seed:   seed,
		level:  level,
		player: entity.NewPlayer(level.PlayerStart),
		mobs:   mobs,
		finder: pathfind.NewFinder(level.Map.Size()),
		turn:   WaitingForPlayer,
	}
	g.spawnMonsters()
	g.refreshFOV(ctx)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("game.monsters", len(g.monsters)),
		attribute.Int("player.start_x", int(level.PlayerStart.X)),
		attribute.Int("player.start_y", int(level.PlayerStart.Y)),
	)
	g.log.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    level.Map.Rooms().Len(),
		"monsters": len(g.monsters),
	}).Info("game started")

	return g, nil
}

// Seed returns the seed the game was started with.
func (g *Game) Seed() int64 { return g.seed }

// Level returns the current level.
func (g *Game) Level() *world.Level { return g.level }

// Map returns the current level's map.
func (g *Game) Map() *world.Map { return g.level.Map }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Monsters returns every monster on the level.
func (g *Game) Monsters() []*entity.Monster { return g.monsters }

// Turn returns whose move it is.
func (g *Game) Turn() TurnState { return g.turn }

// Turns returns the number of completed turns.
func (g *Game) Turns() int { return g.turns }

// MonsterAt returns the monster standing on pos, or nil.
func (g *Game) MonsterAt(pos grid.TilePos) *entity.Monster {
	for _, m := range g.monsters {
		if m.Pos == pos {
			return m
		}
	}
	return nil
}

// MovePlayer tries to move the player by (dx, dy). Walls and the map edge
// stop the move without spending the turn. Walking into a monster spends the
// turn in place. Otherwise the player moves, the field of view is refreshed
// and the monsters act.
func (g *Game) MovePlayer(ctx context.Context, dx, dy int) MoveResult {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.turn")
	defer span.End()

	g.turn = PlayerTurn
	result := g.resolveMove(ctx, dx, dy)
	span.SetAttributes(
		attribute.String("turn.action", "move"),
		attribute.String("turn.result", result.String()),
		attribute.Int("turn.number", g.turns),
	)

	if result == Blocked {
		g.turn = WaitingForPlayer
		return result
	}
	g.runMonsterTurns()
	g.endTurn()
	return result
}

// Wait spends a turn without moving.
func (g *Game) Wait(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("turn.action", "wait"),
		attribute.Int("turn.number", g.turns),
	)

	g.turn = PlayerTurn
	g.runMonsterTurns()
	g.endTurn()
}

// RevealMap marks every unexplored tile as remembered and refreshes the view.
func (g *Game) RevealMap(ctx context.Context) {
	g.level.Map.RevealAll()
	g.refreshFOV(ctx)
	g.log.Info("map revealed")
}

func (g *Game) resolveMove(ctx context.Context, dx, dy int) MoveResult {
	dest, ok := g.player.Step(dx, dy)
	if !ok || !g.level.Map.IsWalkable(dest) {
		return Blocked
	}
	if m := g.MonsterAt(dest); m != nil {
		g.log.WithFields(logrus.Fields{
			"monster": m.Name(),
			"x":       dest.X,
			"y":       dest.Y,
		}).Debug("player bumped monster")
		return Bumped
	}

	g.player.Pos = dest
	g.refreshFOV(ctx)
	return Moved
}

func (g *Game) endTurn() {
	g.turns++
	g.turn = WaitingForPlayer
}

// runMonsterTurns lets every monster the player can see take one step toward
// the player. Monsters move one after another; each committed step updates
// the occupancy set before the next monster searches.
func (g *Game) runMonsterTurns() {
	g.turn = MonsterTurn
	m := g.level.Map

	occupied := pathfind.NewOccupancy(g.player.Pos)
	for _, mon := range g.monsters {
		if mon.BlocksMovement() {
			occupied.Block(mon.Pos)
		}
	}
	walkable := occupied.Walkable(m.IsWalkable)

	moved := 0
	for _, mon := range g.monsters {
		if tile, ok := m.Get(mon.Pos); !ok || tile.Visibility != world.Visible {
			continue
		}

		path, ok := g.finder.Find(mon.Pos, g.player.Pos, m.NeighborsOf, walkable)
		if !ok {
			continue
		}
		next, ok := path.Next()
		if !ok || next == g.player.Pos {
			continue
		}

		if mon.BlocksMovement() {
			occupied.Move(mon.Pos, next)
		}
		mon.Pos = next
		moved++
		g.log.WithFields(logrus.Fields{
			"monster": mon.Name(),
			"room":    mon.Room,
			"x":       next.X,
			"y":       next.Y,
		}).Debug("monster moved")
	}

	g.log.WithFields(logrus.Fields{
		"turn":  g.turns,
		"moved": moved,
	}).Debug("monsters acted")
}

// refreshFOV recomputes what the player sees and updates tile visibility.
func (g *Game) refreshFOV(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "fov.refresh")
	defer span.End()

	depth := fov.Unlimited
	if g.cfg.FOVRange > 0 {
		depth = g.cfg.FOVRange
	}

	m := g.level.Map
	visible := fov.ComputeLimited(g.player.Pos, m.Size(), depth, m.IsOpaque)
	m.ApplyVisibility(visible)

	span.SetAttributes(
		attribute.Int("fov.visible_tiles", visible.Size()),
		attribute.Int("fov.depth", depth),
	)
}

// spawnMonsters places 0 to maxMonstersPerRoom monsters on random floor tiles
// of every room, never on the player or on each other.
func (g *Game) spawnMonsters() {
	m := g.level.Map
	taken := mapset.Of(g.player.Pos)

	for i, room := range m.Rooms().Rooms() {
		n := g.rng.Intn(maxMonstersPerRoom + 1)
		for _, pos := range m.RandomFloorTiles(room, n, g.rng, taken) {
			def := g.mobs.SpawnRandom(g.rng)
			if def == nil {
				return
			}
			g.monsters = append(g.monsters, entity.NewMonster(def, pos, i))
			taken.Put(pos)
		}
	}
}
