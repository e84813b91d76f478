package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/catacombs/internal/grid"
)

// Occupancy tracks tiles held by actors during a turn. Monsters update it as
// soon as they commit to a step so later monsters path around the new layout.
type Occupancy struct {
	blocked mapset.Set[grid.TilePos]
}

// NewOccupancy creates an occupancy set with the given tiles blocked.
func NewOccupancy(blocked ...grid.TilePos) *Occupancy {
	return &Occupancy{blocked: mapset.Of(blocked...)}
}

// Block marks pos as occupied.
func (o *Occupancy) Block(pos grid.TilePos) {
	o.blocked.Put(pos)
}

// Unblock frees pos.
func (o *Occupancy) Unblock(pos grid.TilePos) {
	o.blocked.Remove(pos)
}

// Move frees from and occupies to.
func (o *Occupancy) Move(from, to grid.TilePos) {
	o.blocked.Remove(from)
	o.blocked.Put(to)
}

// IsBlocked returns true if pos is occupied.
func (o *Occupancy) IsBlocked(pos grid.TilePos) bool {
	return o.blocked.Has(pos)
}

// Len returns the number of occupied tiles.
func (o *Occupancy) Len() int {
	return o.blocked.Size()
}

// Walkable combines a terrain predicate with the occupancy set. The returned
// function sees later Block and Move calls.
func (o *Occupancy) Walkable(terrain func(grid.TilePos) bool) func(grid.TilePos) bool {
	return func(pos grid.TilePos) bool {
		return terrain(pos) && !o.blocked.Has(pos)
	}
}
