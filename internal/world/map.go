package world

import (
	"encoding/binary"
	"iter"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/catacombs/internal/grid"
)

// Map is the tile grid of a level. Tiles are stored row-major, so the tile at
// (x, y) lives at index y*width+x.
type Map struct {
	size  grid.MapSize
	tiles []Tile
	rooms *RoomGraph
}

// NewMap creates a new map filled with walls.
func NewMap(width, height uint32) *Map {
	size := grid.Size(width, height)
	tiles := make([]Tile, size.Len())
	for i := range tiles {
		tiles[i] = WallTile()
	}

	return &Map{
		size:  size,
		tiles: tiles,
		rooms: NewRoomGraph(nil),
	}
}

// Size returns the map's dimensions.
func (m *Map) Size() grid.MapSize {
	return m.size
}

// Width returns the map width in tiles.
func (m *Map) Width() int {
	return int(m.size.Width)
}

// Height returns the map height in tiles.
func (m *Map) Height() int {
	return int(m.size.Height)
}

// Get returns the tile at pos, or false if pos is out of bounds.
func (m *Map) Get(pos grid.TilePos) (*Tile, bool) {
	if !m.size.InBounds(pos) {
		return nil, false
	}
	return &m.tiles[pos.Index(m.size)], true
}

// Rooms returns the room graph that was used to lay out the map.
func (m *Map) Rooms() *RoomGraph {
	return m.rooms
}

// SetRooms records the room graph the map was carved from.
func (m *Map) SetRooms(g *RoomGraph) {
	m.rooms = g
}

// Each calls fn for every tile in index order.
func (m *Map) Each(fn func(pos grid.TilePos, t *Tile)) {
	for i := range m.tiles {
		fn(grid.FromIndex(i, m.size), &m.tiles[i])
	}
}

// IsWalkable returns true if pos is in bounds and its tile does not block movement.
func (m *Map) IsWalkable(pos grid.TilePos) bool {
	t, ok := m.Get(pos)
	return ok && t.IsPassable()
}

// IsOpaque returns true if pos blocks sight. Out of bounds positions are opaque.
func (m *Map) IsOpaque(pos grid.TilePos) bool {
	t, ok := m.Get(pos)
	return !ok || t.BlocksSight
}

// NeighborsOf returns the in-bounds neighbors of pos in the order
// north, east, south, west, northeast, southeast, southwest, northwest.
// North is +y. Components are checked against zero before subtracting, and
// every candidate is checked against the map bounds.
func (m *Map) NeighborsOf(pos grid.TilePos) []grid.TilePos {
	neighbors := make([]grid.TilePos, 0, 8)

	if north := pos.Add(grid.Pos(0, 1)); m.size.InBounds(north) {
		neighbors = append(neighbors, north)
	}
	if east := pos.Add(grid.Pos(1, 0)); m.size.InBounds(east) {
		neighbors = append(neighbors, east)
	}
	// South
	if pos.Y > 0 {
		if south := grid.Pos(pos.X, pos.Y-1); m.size.InBounds(south) {
			neighbors = append(neighbors, south)
		}
	}
	// West
	if pos.X > 0 {
		if west := grid.Pos(pos.X-1, pos.Y); m.size.InBounds(west) {
			neighbors = append(neighbors, west)
		}
	}
	if northeast := pos.Add(grid.Pos(1, 1)); m.size.InBounds(northeast) {
		neighbors = append(neighbors, northeast)
	}
	// Southeast
	if pos.Y > 0 {
		if southeast := grid.Pos(pos.X+1, pos.Y-1); m.size.InBounds(southeast) {
			neighbors = append(neighbors, southeast)
		}
	}
	// Southwest
	if pos.Y > 0 && pos.X > 0 {
		if southwest := grid.Pos(pos.X-1, pos.Y-1); m.size.InBounds(southwest) {
			neighbors = append(neighbors, southwest)
		}
	}
	// Northwest
	if pos.X > 0 {
		if northwest := grid.Pos(pos.X-1, pos.Y+1); m.size.InBounds(northwest) {
			neighbors = append(neighbors, northwest)
		}
	}

	return neighbors
}

// AddRoom carves the room's interior into floor.
func (m *Map) AddRoom(room Room) {
	m.carve(room.Floor())
}

// AddTunnel carves every tile of the tunnel into floor.
func (m *Map) AddTunnel(tunnel iter.Seq[grid.TilePos]) {
	m.carve(tunnel)
}

// carve turns tiles into floor, keeping their visibility. Out of bounds
// positions are skipped.
func (m *Map) carve(tiles iter.Seq[grid.TilePos]) {
	for pos := range tiles {
		if t, ok := m.Get(pos); ok {
			t.BlocksMovement = false
			t.BlocksSight = false
		}
	}
}

// RevealAll marks every unexplored tile as remembered without it having been seen.
func (m *Map) RevealAll() {
	for i := range m.tiles {
		if m.tiles[i].Visibility == Unexplored {
			m.tiles[i].Visibility = NotVisible
		}
	}
}

// ApplyVisibility updates tile visibility from a freshly computed field of
// view. Tiles in the set become Visible; tiles that were Visible and are not
// in the set become NotVisible. Unexplored tiles outside the set stay unexplored.
func (m *Map) ApplyVisibility(visible mapset.Set[grid.TilePos]) {
	for i := range m.tiles {
		t := &m.tiles[i]
		if visible.Has(grid.FromIndex(i, m.size)) {
			t.Visibility = Visible
		} else if t.Visibility == Visible {
			t.Visibility = NotVisible
		}
	}
}

// RandomFloorTiles returns up to n distinct walkable interior tiles of room,
// skipping any position in exclude.
func (m *Map) RandomFloorTiles(room Room, n int, rng *rand.Rand, exclude mapset.Set[grid.TilePos]) []grid.TilePos {
	if n <= 0 {
		return nil
	}

	candidates := make([]grid.TilePos, 0, room.FloorArea())
	for pos := range room.Floor() {
		if exclude.Has(pos) || !m.IsWalkable(pos) {
			continue
		}
		candidates = append(candidates, pos)
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// Fingerprint hashes the map layout. Two maps with the same size and the same
// walls and floors have the same fingerprint; visibility is ignored.
func (m *Map) Fingerprint() uint64 {
	buf := make([]byte, 0, 8+len(m.tiles))
	buf = binary.BigEndian.AppendUint32(buf, m.size.Width)
	buf = binary.BigEndian.AppendUint32(buf, m.size.Height)
	for _, t := range m.tiles {
		var b byte
		if t.BlocksMovement {
			b |= 1
		}
		if t.BlocksSight {
			b |= 2
		}
		buf = append(buf, b)
	}
	return xxhash.Sum64(buf)
}
