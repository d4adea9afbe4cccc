package internal

import (
	"math"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
)

type NodeStatus int

const (
	Unvisited NodeStatus = iota
	Open
	Closed
)

func (s NodeStatus) String() string {
	switch s {
	case Open:
		return aurora.Yellow("open").String()
	case Closed:
		return aurora.Blue("closed").String()
	default:
		return aurora.Gray(12, "unvisited").String()
	}
}

// Per-triangle search state. Nodes live in a slice parallel to
// Mesh.Triangles and are reused between queries.
type Node struct {
	Triangle int
	// Where the path enters this triangle: the midpoint of the edge shared
	// with Parent, or the destination for the node the search starts from.
	Origin Point
	Parent int
	Given  float64
	Cost   float64
	Status NodeStatus
	// Query that last touched the node. The other fields are only meaningful
	// when this matches the search's current generation.
	Generation uint64
}

type PathResult struct {
	Exists bool
	// Triangle indices from the start triangle to the end triangle.
	Nodes []int
	// Start, every crossing point along Nodes, then end.
	Raw      []Point
	Smoothed []Point
	// Accumulated crossing to crossing distance found by the search.
	Cost float64
}

func (r *PathResult) RawLength() float64 {
	return PolylineLength(r.Raw)
}

func (r *PathResult) SmoothedLength() float64 {
	return PolylineLength(r.Smoothed)
}

func PolylineLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

type Stats struct {
	Pushed int
	Popped int
}

// Best-first search over the dual graph of one mesh. A Search is not safe for
// concurrent use.
type Search struct {
	mesh       *Mesh
	nodes      []Node
	generation uint64
	open       OpenList

	start, end Point
	weight     float64

	considered []Segment
	visited    []Segment
	stats      Stats
}

func NewSearch(mesh *Mesh) *Search {
	s := &Search{}
	s.SetMesh(mesh)
	return s
}

// Replace the mesh. All node state belongs to the old mesh and is dropped.
func (s *Search) SetMesh(mesh *Mesh) {
	s.mesh = mesh
	s.nodes = nil
	if mesh != nil {
		s.nodes = make([]Node, len(mesh.Triangles))
		for i := range s.nodes {
			s.nodes[i].Triangle = i
			s.nodes[i].Parent = NoNeighbor
		}
	}
	s.generation = 0
	s.open = s.open[:0]
	s.clearDiagnostics()
}

func (s *Search) Mesh() *Mesh {
	return s.mesh
}

func (s *Search) Generation() uint64 {
	return s.generation
}

// Status of the node for triangle i in the current query.
func (s *Search) Status(i int) NodeStatus {
	node := &s.nodes[i]
	if node.Generation != s.generation {
		return Unvisited
	}
	return node.Status
}

// Segments from a node's origin to each crossing point pushed to the open
// list during the last query.
func (s *Search) Considered() []Segment {
	return s.considered
}

// Segments from each closed node's origin to its parent's origin during the
// last query.
func (s *Search) Visited() []Segment {
	return s.visited
}

func (s *Search) Stats() Stats {
	return s.stats
}

func (s *Search) clearDiagnostics() {
	s.considered = s.considered[:0]
	s.visited = s.visited[:0]
	s.stats = Stats{}
}

// Octile distance from the query start, scaled by the weight.
func (s *Search) heuristic(p Point) float64 {
	dx := math.Abs(p.X - s.start.X)
	dy := math.Abs(p.Y - s.start.Y)
	low, high := math.Min(dx, dy), math.Max(dx, dy)
	return (low*math.Sqrt2 + high - low) * s.weight
}

// Find a path from start to end. The search runs backward, seeded at the
// destination triangle, so that following parents from the start triangle
// yields the path in travel order.
//
// The weight scales the heuristic: 0 gives Dijkstra, 1 gives A*, and larger
// values trade path quality for fewer expansions.
func (s *Search) FindPath(start, end Point, weight float64) *PathResult {
	s.clearDiagnostics()
	s.open = s.open[:0]
	if s.mesh == nil {
		return &PathResult{}
	}

	startTriangle := s.mesh.Locate(start)
	endTriangle := s.mesh.Locate(end)
	if startTriangle < 0 || endTriangle < 0 {
		Logger().Debug("query point outside mesh",
			zap.Stringer("start", start),
			zap.Stringer("end", end),
			zap.Bool("startFound", startTriangle >= 0),
			zap.Bool("endFound", endTriangle >= 0),
		)
		return &PathResult{}
	}

	s.start, s.end, s.weight = start, end, weight
	s.generation++

	seed := &s.nodes[endTriangle]
	seed.Origin = end
	seed.Parent = NoNeighbor
	seed.Given = 0
	seed.Cost = s.heuristic(end)
	seed.Status = Open
	seed.Generation = s.generation
	s.push(seed)

	for !s.open.Empty() {
		node := s.open.PopMin()
		node.Status = Closed
		s.stats.Popped++
		if node.Parent != NoNeighbor {
			s.visited = append(s.visited, Segment{Start: node.Origin, End: s.nodes[node.Parent].Origin})
		}

		if node.Triangle == startTriangle {
			result := s.reconstruct(node)
			Logger().Debug("found path",
				zap.Int("nodes", len(result.Nodes)),
				zap.Int("pushed", s.stats.Pushed),
				zap.Int("popped", s.stats.Popped),
				zap.Float64("cost", result.Cost),
			)
			return result
		}
		s.expand(node)
	}

	Logger().Debug("no path",
		zap.Int("pushed", s.stats.Pushed),
		zap.Int("popped", s.stats.Popped),
	)
	s.clearDiagnostics()
	return &PathResult{}
}

func (s *Search) push(node *Node) {
	s.open.Insert(node)
	s.stats.Pushed++
}

func (s *Search) expand(node *Node) {
	tri := s.mesh.Triangles[node.Triangle]
	for k, neighbor := range tri.Neighbors {
		if neighbor == NoNeighbor {
			continue
		}
		crossing := tri.Edges[k].Midpoint()
		given := node.Given + Distance(node.Origin, crossing)
		cost := given + s.heuristic(crossing)

		next := &s.nodes[neighbor]
		switch s.Status(neighbor) {
		case Unvisited:
			next.Origin = crossing
			next.Parent = node.Triangle
			next.Given = given
			next.Cost = cost
			next.Status = Open
			next.Generation = s.generation
			s.push(next)
		case Open:
			if cost >= next.Cost {
				continue
			}
			s.open.DecreaseKey(next, cost)
			next.Origin = crossing
			next.Parent = node.Triangle
			next.Given = given
		default:
			continue
		}
		s.considered = append(s.considered, Segment{Start: node.Origin, End: crossing})
	}
}

func (s *Search) reconstruct(startNode *Node) *PathResult {
	result := &PathResult{
		Exists: true,
		Raw:    []Point{s.start},
		Cost:   startNode.Given,
	}
	for i := startNode.Triangle; i != NoNeighbor; i = s.nodes[i].Parent {
		result.Nodes = append(result.Nodes, i)
		result.Raw = append(result.Raw, s.nodes[i].Origin)
	}
	result.Smoothed = Funnel(s.start, s.end, s.portals(result.Nodes))
	return result
}

// Shared edges between consecutive path triangles, in travel order.
func (s *Search) portals(nodes []int) []Segment {
	portals := make([]Segment, 0, len(nodes))
	for i := 0; i+1 < len(nodes); i++ {
		tri := s.mesh.Triangles[nodes[i]]
		k := tri.NeighborIndex(nodes[i+1])
		if k < 0 {
			fatalf("triangles %d and %d on the path are not adjacent", nodes[i], nodes[i+1])
		}
		portals = append(portals, tri.Edges[k])
	}
	return portals
}
