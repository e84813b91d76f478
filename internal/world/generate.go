package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/catacombs/internal/grid"
	"github.com/samdwyer/catacombs/internal/telemetry"
)

const (
	// Default room placement parameters
	DefaultMinRoomSize = 6
	DefaultMaxRoomSize = 10
	DefaultMaxRooms    = 30
)

var (
	// ErrNoRooms is returned when room placement accepts no room at all, so
	// there is nowhere to put the player.
	ErrNoRooms = errors.New("no rooms placed")
	// ErrInvalidConfig is returned for generation parameters that cannot produce a map.
	ErrInvalidConfig = errors.New("invalid generation config")
)

// GenConfig holds the dungeon generation parameters.
type GenConfig struct {
	Width, Height uint32
	// MinRoomSize and MaxRoomSize bound each room side, walls included.
	MinRoomSize, MaxRoomSize uint32
	// MaxRooms is the number of placement attempts. Attempts that overlap an
	// earlier room are dropped, so fewer rooms is normal.
	MaxRooms int
}

// DefaultGenConfig returns the standard 80x45 dungeon parameters.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       grid.DefaultWidth,
		Height:      grid.DefaultHeight,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		MaxRooms:    DefaultMaxRooms,
	}
}

// Validate checks that the parameters can describe a map.
func (c GenConfig) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MinRoomSize < 3:
		return fmt.Errorf("%w: minimum room size %d leaves no floor", ErrInvalidConfig, c.MinRoomSize)
	case c.MinRoomSize > c.MaxRoomSize:
		return fmt.Errorf("%w: minimum room size %d exceeds maximum %d", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MaxRoomSize >= c.Width || c.MaxRoomSize >= c.Height:
		return fmt.Errorf("%w: rooms up to %d do not fit in %dx%d", ErrInvalidConfig, c.MaxRoomSize, c.Width, c.Height)
	case c.MaxRooms < 0:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidConfig, c.MaxRooms)
	}
	return nil
}

// Level is a generated dungeon floor.
type Level struct {
	ID          uuid.UUID
	Map         *Map
	PlayerStart grid.TilePos
}

// Generate builds a dungeon: rooms are placed at random, joined by the
// minimum spanning tree of their Delaunay triangulation, and carved into a
// wall-filled map with elbow tunnels. All randomness comes from rng, so a
// fixed seed produces the same level.
func Generate(ctx context.Context, cfg GenConfig, rng *rand.Rand) (*Level, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	rooms := placeRooms(cfg, rng)
	if len(rooms) == 0 {
		span.SetAttributes(attribute.Bool("failed", true))
		return nil, fmt.Errorf("generate %dx%d after %d attempts: %w", cfg.Width, cfg.Height, cfg.MaxRooms, ErrNoRooms)
	}

	graph := NewRoomGraph(rooms)
	graph.Triangulate()
	triangulated := graph.EdgeCount()
	graph.ReduceToSpanningTree()

	m := NewMap(cfg.Width, cfg.Height)
	for _, room := range graph.Rooms() {
		m.AddRoom(room)
	}
	for _, e := range graph.Edges() {
		m.AddTunnel(SimpleTunnel(graph.Room(e.A).Center(), graph.Room(e.B).Center(), rng))
	}
	m.SetRooms(graph)

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("level id: %w", err)
	}

	level := &Level{
		ID:          id,
		Map:         m,
		PlayerStart: rooms[0].Center(),
	}

	// Record telemetry
	span.SetAttributes(
		attribute.String("dungeon.level_id", id.String()),
		attribute.Int("dungeon.width", int(cfg.Width)),
		attribute.Int("dungeon.height", int(cfg.Height)),
		attribute.Int("dungeon.room_count", graph.Len()),
		attribute.Int("dungeon.triangulated_edges", triangulated),
		attribute.Int("dungeon.corridor_count", graph.EdgeCount()),
		attribute.Int("dungeon.player_start_x", int(level.PlayerStart.X)),
		attribute.Int("dungeon.player_start_y", int(level.PlayerStart.Y)),
		attribute.String("dungeon.fingerprint", fmt.Sprintf("%016x", m.Fingerprint())),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return level, nil
}

// placeRooms makes cfg.MaxRooms placement attempts and keeps every room that
// does not intersect an earlier one.
func placeRooms(cfg GenConfig, rng *rand.Rand) []Room {
	rooms := make([]Room, 0, cfg.MaxRooms)
	span := int(cfg.MaxRoomSize - cfg.MinRoomSize + 1)

	for range cfg.MaxRooms {
		width := cfg.MinRoomSize + uint32(rng.Intn(span))
		height := cfg.MinRoomSize + uint32(rng.Intn(span))

		x := uint32(rng.Intn(int(cfg.Width - width)))
		y := uint32(rng.Intn(int(cfg.Height - height)))

		candidate := NewRoom(grid.Pos(x, y), width, height)
		overlaps := false
		for _, other := range rooms {
			if candidate.Intersects(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, candidate)
		}
	}

	return rooms
}
