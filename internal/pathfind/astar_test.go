package pathfind

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/catacombs/internal/grid"
)

// neighbors8 returns the in-bounds 8-neighborhood of p.
func neighbors8(size grid.MapSize) func(grid.TilePos) []grid.TilePos {
	return func(p grid.TilePos) []grid.TilePos {
		var out []grid.TilePos
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				x, y := int(p.X)+dx, int(p.Y)+dy
				if x < 0 || y < 0 {
					continue
				}
				q := grid.Pos(uint32(x), uint32(y))
				if size.InBounds(q) {
					out = append(out, q)
				}
			}
		}
		return out
	}
}

// bfs returns the number of steps from start to goal, or -1 if unreachable.
// The goal is always enterable.
func bfs(start, goal grid.TilePos, size grid.MapSize, walkable func(grid.TilePos) bool) int {
	dist := map[grid.TilePos]int{start: 0}
	queue := []grid.TilePos{start}
	nbs := neighbors8(size)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return dist[cur]
		}
		for _, n := range nbs(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			if n != goal && !walkable(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

func open(grid.TilePos) bool { return true }

func TestOpenGridPathIsChebyshev(t *testing.T) {
	size := grid.Size(20, 20)
	rng := rand.New(rand.NewSource(3))
	finder := NewFinder(size)

	for i := 0; i < 50; i++ {
		start := grid.Pos(uint32(rng.Intn(20)), uint32(rng.Intn(20)))
		goal := grid.Pos(uint32(rng.Intn(20)), uint32(rng.Intn(20)))
		if start == goal {
			continue
		}

		path, ok := finder.Find(start, goal, neighbors8(size), open)
		require.True(t, ok, "%v -> %v", start, goal)
		assert.Equal(t, int(start.Distance(goal)), path.Cost)
		assert.Equal(t, start, path.Steps[0])
		assert.Equal(t, goal, path.Steps[len(path.Steps)-1])
	}
}

func TestStartEqualsGoal(t *testing.T) {
	size := grid.Size(5, 5)
	_, ok := FindPath(grid.Pos(2, 2), grid.Pos(2, 2), size, neighbors8(size), open)
	assert.False(t, ok)
}

func TestOutOfBounds(t *testing.T) {
	size := grid.Size(5, 5)
	_, ok := FindPath(grid.Pos(2, 2), grid.Pos(9, 2), size, neighbors8(size), open)
	assert.False(t, ok)
}

func TestWalledOffGoal(t *testing.T) {
	size := grid.Size(9, 9)
	// A ring of walls around (6,6).
	walls := mapset.New[grid.TilePos]()
	for x := uint32(5); x <= 7; x++ {
		for y := uint32(5); y <= 7; y++ {
			if x != 6 || y != 6 {
				walls.Put(grid.Pos(x, y))
			}
		}
	}
	walkable := func(p grid.TilePos) bool { return !walls.Has(p) }

	_, ok := FindPath(grid.Pos(0, 0), grid.Pos(6, 6), size, neighbors8(size), walkable)
	assert.False(t, ok)
}

func TestGoalIsAlwaysEnterable(t *testing.T) {
	size := grid.Size(5, 1)
	goal := grid.Pos(4, 0)
	walkable := func(p grid.TilePos) bool { return p != goal }

	path, ok := FindPath(grid.Pos(0, 0), goal, size, neighbors8(size), walkable)
	require.True(t, ok)
	assert.Equal(t, 4, path.Cost)

	next, ok := path.Next()
	require.True(t, ok)
	assert.Equal(t, grid.Pos(1, 0), next)
}

func TestDetourAroundWall(t *testing.T) {
	size := grid.Size(7, 7)
	// Vertical wall at x=3 from y=0 to y=5, leaving a gap at y=6.
	walkable := func(p grid.TilePos) bool { return p.X != 3 || p.Y == 6 }

	path, ok := FindPath(grid.Pos(0, 0), grid.Pos(6, 0), size, neighbors8(size), walkable)
	require.True(t, ok)
	assert.Equal(t, 12, path.Cost)
	assert.Contains(t, path.Steps, grid.Pos(3, 6))
}

func TestMatchesBreadthFirstSearch(t *testing.T) {
	size := grid.Size(12, 12)
	rng := rand.New(rand.NewSource(11))
	finder := NewFinder(size)

	for trial := 0; trial < 60; trial++ {
		walls := mapset.New[grid.TilePos]()
		for i := 0; i < size.Len(); i++ {
			if rng.Float64() < 0.35 {
				walls.Put(grid.FromIndex(i, size))
			}
		}
		walkable := func(p grid.TilePos) bool { return !walls.Has(p) }

		start := grid.FromIndex(rng.Intn(size.Len()), size)
		goal := grid.FromIndex(rng.Intn(size.Len()), size)
		walls.Remove(start)
		if start == goal {
			continue
		}

		want := bfs(start, goal, size, walkable)
		path, ok := finder.Find(start, goal, neighbors8(size), walkable)

		if want < 0 {
			assert.False(t, ok, "trial %d: found a path BFS could not", trial)
			continue
		}
		require.True(t, ok, "trial %d: BFS reached the goal in %d", trial, want)
		assert.Equal(t, want, path.Cost, "trial %d", trial)

		for i := 1; i < len(path.Steps); i++ {
			assert.Equal(t, uint32(1), path.Steps[i-1].Distance(path.Steps[i]), "trial %d: step %d", trial, i)
			if i < len(path.Steps)-1 {
				assert.True(t, walkable(path.Steps[i]), "trial %d: step %d blocked", trial, i)
			}
		}
	}
}

func TestPathNext(t *testing.T) {
	_, ok := Path{}.Next()
	assert.False(t, ok)

	next, ok := Path{Steps: []grid.TilePos{grid.Pos(1, 1), grid.Pos(2, 2)}, Cost: 1}.Next()
	require.True(t, ok)
	assert.Equal(t, grid.Pos(2, 2), next)
}
