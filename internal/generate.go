package internal

import "go.uber.org/zap"

// Run the whole pipeline on rings that already passed ValidateRings: cut the
// polygon into monotone pieces, triangulate each piece, and connect the
// triangles into a dual graph.
func GenerateMesh(boundary []Point, holes [][]Point) *Mesh {
	rings := make([][]Point, 0, len(holes)+1)
	rings = append(rings, boundary)
	rings = append(rings, holes...)

	arena := NewVertexArena(rings...)
	arena.Classify()
	arena.PartitionIntoMonotones()

	mesh := &Mesh{Diagonals: append([]Segment(nil), arena.Diagonals...)}
	pieces := arena.Pieces()
	for _, piece := range pieces {
		triangles, diagonals := TriangulateMonotone(piece)
		mesh.Triangles = append(mesh.Triangles, triangles...)
		mesh.Diagonals = append(mesh.Diagonals, diagonals...)
	}
	mesh.ConnectNeighbors()

	Logger().Debug("generated navmesh",
		zap.Int("vertices", len(arena.Vertices)),
		zap.Int("holes", len(holes)),
		zap.Int("pieces", len(pieces)),
		zap.Int("triangles", len(mesh.Triangles)),
	)
	return mesh
}
