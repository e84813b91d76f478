package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/catacombs/internal/grid"
)

func collect(seq func(func(grid.TilePos) bool)) []grid.TilePos {
	var out []grid.TilePos
	for pos := range seq {
		out = append(out, pos)
	}
	return out
}

func bounds(tiles []grid.TilePos) (lo, hi grid.TilePos) {
	lo, hi = tiles[0], tiles[0]
	for _, p := range tiles[1:] {
		lo = grid.Pos(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = grid.Pos(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return lo, hi
}

func TestSimpleTunnelStraight(t *testing.T) {
	start, end := grid.Pos(5, 5), grid.Pos(20, 5)

	for seed := int64(0); seed < 8; seed++ {
		tiles := collect(SimpleTunnel(start, end, rand.New(rand.NewSource(seed))))
		require.NotEmpty(t, tiles)

		lo, hi := bounds(tiles)
		assert.Equal(t, grid.Pos(5, 5), lo, "seed %d", seed)
		assert.Equal(t, grid.Pos(20, 5), hi, "seed %d", seed)
		assert.Contains(t, tiles, start)
		assert.Contains(t, tiles, end)
	}
}

func TestSimpleTunnelSinglePoint(t *testing.T) {
	p := grid.Pos(5, 5)
	tiles := collect(SimpleTunnel(p, p, rand.New(rand.NewSource(1))))

	lo, hi := bounds(tiles)
	assert.Equal(t, p, lo)
	assert.Equal(t, p, hi)
}

func TestSimpleTunnelStaysInBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		start := grid.Pos(uint32(rng.Intn(60)), uint32(rng.Intn(40)))
		end := grid.Pos(uint32(rng.Intn(60)), uint32(rng.Intn(40)))

		tiles := collect(SimpleTunnel(start, end, rng))
		lo, hi := bounds(tiles)

		assert.Equal(t, grid.Pos(min(start.X, end.X), min(start.Y, end.Y)), lo)
		assert.Equal(t, grid.Pos(max(start.X, end.X), max(start.Y, end.Y)), hi)
		assert.Contains(t, tiles, start)
		assert.Contains(t, tiles, end)
	}
}

func TestSimpleTunnelElbow(t *testing.T) {
	start, end := grid.Pos(5, 5), grid.Pos(20, 10)
	corners := map[grid.TilePos]bool{}

	for seed := int64(0); seed < 32; seed++ {
		tiles := collect(SimpleTunnel(start, end, rand.New(rand.NewSource(seed))))

		// 16 tiles along x, 6 along y, the corner is yielded by both legs.
		assert.Len(t, tiles, 22)

		for _, p := range tiles {
			onFirst := p.Y == start.Y || p.X == start.X
			onSecond := p.X == end.X || p.Y == end.Y
			assert.True(t, onFirst || onSecond, "tile %v is off the elbow", p)
		}

		switch {
		case contains(tiles, grid.Pos(20, 5)):
			corners[grid.Pos(20, 5)] = true
		case contains(tiles, grid.Pos(5, 10)):
			corners[grid.Pos(5, 10)] = true
		default:
			t.Fatalf("seed %d: no elbow corner in %v", seed, tiles)
		}
	}

	// Both orientations show up across seeds.
	assert.Len(t, corners, 2)
}

func TestSimpleTunnelStopsEarly(t *testing.T) {
	count := 0
	for range SimpleTunnel(grid.Pos(0, 0), grid.Pos(10, 10), rand.New(rand.NewSource(3))) {
		count++
		if count == 4 {
			break
		}
	}
	assert.Equal(t, 4, count)
}

func contains(tiles []grid.TilePos, p grid.TilePos) bool {
	for _, t := range tiles {
		if t == p {
			return true
		}
	}
	return false
}
