package internal

import "go.uber.org/zap"

type edgeSlot struct {
	triangle int
	edge     int
}

// Wire up triangle adjacency. Every diagonal must be an edge of exactly two
// triangles, which become each other's neighbors across it. All other edges
// lie on the boundary or a hole and keep NoNeighbor.
func (m *Mesh) ConnectNeighbors() {
	slots := make(map[segmentKey][]edgeSlot, len(m.Triangles)*3)
	for i, tri := range m.Triangles {
		tri.Neighbors = [3]int{NoNeighbor, NoNeighbor, NoNeighbor}
		for k, edge := range tri.Edges {
			key := edge.key()
			slots[key] = append(slots[key], edgeSlot{triangle: i, edge: k})
		}
	}

	for _, diagonal := range m.Diagonals {
		matches := slots[diagonal.key()]
		if len(matches) != 2 {
			fatalf("diagonal %v->%v is shared by %d triangles", diagonal.Start, diagonal.End, len(matches))
		}
		a, b := matches[0], matches[1]
		m.Triangles[a.triangle].Neighbors[a.edge] = b.triangle
		m.Triangles[b.triangle].Neighbors[b.edge] = a.triangle
	}

	Logger().Debug("connected dual graph",
		zap.Int("triangles", len(m.Triangles)),
		zap.Int("diagonals", len(m.Diagonals)),
	)
}

// Index of the triangle containing p, or -1 if p is outside the mesh. A point
// on a shared edge belongs to the first triangle found.
func (m *Mesh) Locate(p Point) int {
	for i, tri := range m.Triangles {
		if tri.Contains(p) {
			return i
		}
	}
	return -1
}

// Total area covered by the mesh.
func (m *Mesh) Area() float64 {
	var area float64
	for _, tri := range m.Triangles {
		area += tri.Area()
	}
	return area
}
