package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/catacombs/internal/grid"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	seed := int64(12345)
	ctx := context.Background()

	l1, err := Generate(ctx, DefaultGenConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	l2, err := Generate(ctx, DefaultGenConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	assert.Equal(t, l1.ID, l2.ID)
	assert.Equal(t, l1.PlayerStart, l2.PlayerStart)
	assert.Equal(t, l1.Map.Rooms().Rooms(), l2.Map.Rooms().Rooms())
	assert.Equal(t, l1.Map.Rooms().Edges(), l2.Map.Rooms().Edges())
	assert.Equal(t, l1.Map.Fingerprint(), l2.Map.Fingerprint())
}

func TestDungeonDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	l1, err := Generate(ctx, DefaultGenConfig(), rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	l2, err := Generate(ctx, DefaultGenConfig(), rand.New(rand.NewSource(54321)))
	require.NoError(t, err)

	// Very unlikely to be identical by chance
	assert.NotEqual(t, l1.Map.Fingerprint(), l2.Map.Fingerprint())
	assert.NotEqual(t, l1.ID, l2.ID)
}

func TestGenerateInvariants(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultGenConfig()

	for seed := int64(1); seed <= 25; seed++ {
		level, err := Generate(ctx, cfg, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)

		graph := level.Map.Rooms()
		rooms := graph.Rooms()
		require.NotEmpty(t, rooms)

		// Rooms never overlap
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].Intersects(rooms[j]), "seed %d: rooms %d and %d overlap", seed, i, j)
			}
			assert.True(t, rooms[i].End.X < cfg.Width-1 && rooms[i].End.Y < cfg.Height-1, "seed %d: room %d touches the map edge", seed, i)
		}

		// Corridor plan is a spanning tree
		assert.Equal(t, len(rooms)-1, graph.EdgeCount(), "seed %d", seed)
		assert.True(t, graph.IsConnected(), "seed %d", seed)

		// Player starts at the first room's center, on floor
		assert.Equal(t, rooms[0].Center(), level.PlayerStart)
		assert.True(t, level.Map.IsWalkable(level.PlayerStart))

		// Every room is reachable on foot from the start
		reachable := floodFill(level.Map, level.PlayerStart)
		for i, room := range rooms {
			assert.True(t, reachable.Has(room.Center()), "seed %d: room %d unreachable", seed, i)
			for pos := range room.Floor() {
				assert.True(t, level.Map.IsWalkable(pos), "seed %d: room %d tile %v not carved", seed, i, pos)
			}
		}
	}
}

func TestGenerateNoRooms(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.MaxRooms = 0

	level, err := Generate(context.Background(), cfg, rand.New(rand.NewSource(1)))
	assert.Nil(t, level)
	assert.True(t, errors.Is(err, ErrNoRooms), "got %v", err)
}

func TestGenConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GenConfig)
		valid  bool
	}{
		{"default", func(c *GenConfig) {}, true},
		{"zero width", func(c *GenConfig) { c.Width = 0 }, false},
		{"tiny rooms", func(c *GenConfig) { c.MinRoomSize = 2 }, false},
		{"min above max", func(c *GenConfig) { c.MinRoomSize = 12 }, false},
		{"rooms wider than map", func(c *GenConfig) { c.Width = 10 }, false},
		{"negative attempts", func(c *GenConfig) { c.MaxRooms = -1 }, false},
		{"zero attempts", func(c *GenConfig) { c.MaxRooms = 0 }, true},
	}

	for _, tt := range tests {
		cfg := DefaultGenConfig()
		tt.modify(&cfg)
		err := cfg.Validate()
		if tt.valid {
			assert.NoError(t, err, tt.name)
		} else {
			assert.ErrorIs(t, err, ErrInvalidConfig, tt.name)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Height = 5

	_, err := Generate(context.Background(), cfg, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func floodFill(m *Map, start grid.TilePos) mapset.Set[grid.TilePos] {
	seen := mapset.Of(start)
	queue := []grid.TilePos{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.NeighborsOf(cur) {
			if m.IsWalkable(n) && !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return seen
}
