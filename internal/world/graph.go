package world

import (
	"cmp"
	"math"
	"slices"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// RoomEdge connects two rooms by index. A is always less than B.
type RoomEdge struct {
	A, B     int
	Distance float64
}

// RoomGraph is an undirected graph of rooms weighted by the Euclidean
// distance between room centers. It is built by Triangulate and then pruned
// to the corridor plan by ReduceToSpanningTree.
type RoomGraph struct {
	rooms []Room
	edges []RoomEdge
}

// NewRoomGraph creates a graph with one node per room and no edges.
func NewRoomGraph(rooms []Room) *RoomGraph {
	return &RoomGraph{rooms: slices.Clone(rooms)}
}

// Len returns the number of rooms.
func (g *RoomGraph) Len() int {
	return len(g.rooms)
}

// Rooms returns the rooms in insertion order.
func (g *RoomGraph) Rooms() []Room {
	return g.rooms
}

// Room returns the room with the given index.
func (g *RoomGraph) Room(i int) Room {
	return g.rooms[i]
}

// Edges returns each undirected edge exactly once, ordered by endpoints.
func (g *RoomGraph) Edges() []RoomEdge {
	return g.edges
}

// EdgeCount returns the number of edges.
func (g *RoomGraph) EdgeCount() int {
	return len(g.edges)
}

// Triangulate replaces the edge set with the Delaunay triangulation of the
// room centers. Two rooms are joined directly and fewer have no edges. If the
// centers are degenerate (all collinear) every pair of rooms is joined instead,
// which the spanning tree reduction turns into a chain.
func (g *RoomGraph) Triangulate() {
	g.edges = g.edges[:0]

	switch len(g.rooms) {
	case 0, 1:
		return
	case 2:
		g.addEdge(0, 1)
		g.sortEdges()
		return
	}

	points := make([]delaunay.Point, len(g.rooms))
	for i, room := range g.rooms {
		c := room.Center()
		points[i] = delaunay.Point{X: float64(c.X), Y: float64(c.Y)}
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil || len(tri.Triangles) == 0 {
		g.connectAll()
		g.sortEdges()
		return
	}

	// Each internal edge shows up as two twin half-edges; keep the one with
	// the larger index. Hull edges have no twin.
	for e := range tri.Triangles {
		twin := tri.Halfedges[e]
		if e > twin || twin == -1 {
			g.addEdge(tri.Triangles[e], tri.Triangles[nextHalfedge(e)])
		}
	}
	g.sortEdges()
}

// ReduceToSpanningTree replaces the edge set with a minimum spanning tree.
// Ties are broken by endpoint indices so the result only depends on the rooms.
func (g *RoomGraph) ReduceToSpanningTree() {
	candidates := slices.Clone(g.edges)
	slices.SortFunc(candidates, func(a, b RoomEdge) int {
		return cmp.Or(
			cmp.Compare(a.Distance, b.Distance),
			cmp.Compare(a.A, b.A),
			cmp.Compare(a.B, b.B),
		)
	})

	sets := newDisjointSet(len(g.rooms))
	tree := make([]RoomEdge, 0, max(len(g.rooms)-1, 0))
	for _, e := range candidates {
		if sets.union(e.A, e.B) {
			tree = append(tree, e)
		}
	}

	g.edges = tree
	g.sortEdges()
}

// IsConnected returns true if every room can reach every other room.
func (g *RoomGraph) IsConnected() bool {
	return len(topo.ConnectedComponents(g.undirected())) <= 1
}

// undirected returns a gonum view of the graph.
func (g *RoomGraph) undirected() *simple.WeightedUndirectedGraph {
	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range g.rooms {
		ug.AddNode(simple.Node(i))
	}
	for _, e := range g.edges {
		ug.SetWeightedEdge(ug.NewWeightedEdge(simple.Node(e.A), simple.Node(e.B), e.Distance))
	}
	return ug
}

func (g *RoomGraph) connectAll() {
	for a := range g.rooms {
		for b := a + 1; b < len(g.rooms); b++ {
			g.addEdge(a, b)
		}
	}
}

func (g *RoomGraph) addEdge(a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	ca, cb := g.rooms[a].Center(), g.rooms[b].Center()
	dist := math.Hypot(float64(ca.X)-float64(cb.X), float64(ca.Y)-float64(cb.Y))
	g.edges = append(g.edges, RoomEdge{A: a, B: b, Distance: dist})
}

func (g *RoomGraph) sortEdges() {
	slices.SortFunc(g.edges, func(a, b RoomEdge) int {
		return cmp.Or(cmp.Compare(a.A, b.A), cmp.Compare(a.B, b.B))
	})
}

// nextHalfedge returns the next half-edge within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// disjointSet is a union-find over room indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets of a and b. It returns false if they were already joined.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	return true
}
