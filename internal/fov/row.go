package fov

import "github.com/samdwyer/catacombs/internal/grid"

// direction names the four quadrants around the origin.
type direction int

const (
	north direction = iota
	east
	south
	west
)

var cardinals = [...]direction{north, east, south, west}

// quadrant maps (depth, col) coordinates local to one quadrant back to map
// coordinates.
type quadrant struct {
	dir    direction
	ox, oy int
}

// transform returns the map position of a quadrant-local tile. It reports
// false if the position falls outside size.
func (q quadrant) transform(depth, col int, size grid.MapSize) (grid.TilePos, bool) {
	var x, y int
	switch q.dir {
	case north:
		x, y = q.ox+col, q.oy-depth
	case south:
		x, y = q.ox+col, q.oy+depth
	case east:
		x, y = q.ox+depth, q.oy+col
	case west:
		x, y = q.ox-depth, q.oy+col
	}

	if x < 0 || y < 0 || x >= int(size.Width) || y >= int(size.Height) {
		return grid.TilePos{}, false
	}
	return grid.Pos(uint32(x), uint32(y)), true
}

// slope is an exact fraction num/den with den > 0.
type slope struct {
	num, den int
}

// tileSlope returns the slope of the left edge of a tile: (2*col-1) / (2*depth).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// row is one line of tiles at a fixed depth, bounded by two slopes.
type row struct {
	depth      int
	start, end slope
}

func firstRow() row {
	return row{
		depth: 1,
		start: slope{num: -1, den: 1},
		end:   slope{num: 1, den: 1},
	}
}

func (r row) next() row {
	r.depth++
	return r
}

// minCol is depth*start rounded with ties toward the row's low end: ceil(n - 1/2).
func (r row) minCol() int {
	// ceil((2*depth*num - den) / (2*den))
	return ceilDiv(2*r.depth*r.start.num-r.start.den, 2*r.start.den)
}

// maxCol is depth*end rounded with ties toward the row's high end: floor(n + 1/2).
func (r row) maxCol() int {
	// floor((2*depth*num + den) / (2*den))
	return floorDiv(2*r.depth*r.end.num+r.end.den, 2*r.end.den)
}

// isSymmetric reports whether col lies within [depth*start, depth*end]
// without rounding.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ceil(a/b) for b > 0.
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
