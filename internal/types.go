package internal

import "github.com/go-gl/mathgl/mgl64"

type Point struct {
	X float64
	Y float64
}

func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func pointFromVec(v mgl64.Vec2) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Points are values, so segments compare with ==. The sweep cares about
// direction (Start is processed first), while adjacency matching does not; see
// Matches.
type Segment struct {
	Start Point
	End   Point
}

// Index used in Triangle.Neighbors for an edge that lies on the boundary or on
// a hole.
const NoNeighbor = -1

// Triangles are always counterclockwise. Edges[i] runs from the i-th corner to
// the next one, and Neighbors[i] is the index of the triangle on the other
// side of Edges[i] in the owning mesh.
type Triangle struct {
	Edges     [3]Segment
	Neighbors [3]int
}

type Mesh struct {
	Triangles []*Triangle
	// Every synthetic edge added by decomposition and triangulation. Each one is
	// shared by exactly two triangles.
	Diagonals []Segment
}

type Polygon struct {
	Points []Point
}

type PointStack []Point

type PointSet map[Point]struct{}
