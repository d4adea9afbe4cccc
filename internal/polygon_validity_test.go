package internal

// This contains no actual tests. It is just a helper for testing mesh
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is a valid triangulation of a polygon with holes.
// The rules are:
//  1. The set of points in the triangles must equal the set of points in the rings.
//  2. Every ring edge is an edge of exactly one triangle.
//  3. Every triangle is counterclockwise with nonzero area.
//  4. The sum of the areas of all triangles equals the area of the polygon.
//  5. There are n + 2h - 2 triangles for n vertices and h holes.
//  6. Every diagonal is shared by exactly two triangles, which are each other's
//     neighbors across it.
func AssertValidTriangulation(t *testing.T, boundary []Point, holes [][]Point, mesh *Mesh) {
	t.Helper()
	require.True(t, Polygon{Points: boundary}.IsCCW(), "boundary is not counterclockwise")

	rings := append([][]Point{boundary}, holes...)
	ringPoints := make(PointSet)
	expectedArea := 0.0
	vertexCount := 0
	for _, ring := range rings {
		for _, p := range ring {
			ringPoints.Add(p)
		}
		expectedArea += SignedArea(ring)
		vertexCount += len(ring)
	}

	trianglePoints := make(PointSet)
	edgeUses := make(map[segmentKey]int)
	var triangleArea float64
	for _, tri := range mesh.Triangles {
		require.Greater(t, tri.SignedArea(), 0.0, "triangle must be counterclockwise with nonzero area: %s", tri)
		triangleArea += tri.Area()
		for _, edge := range tri.Edges {
			trianglePoints.Add(edge.Start)
			edgeUses[edge.key()]++
		}
	}
	require.True(t, ringPoints.Equals(trianglePoints), "set of points in the triangles must equal the set of points in the rings")

	for _, ring := range rings {
		poly := Polygon{Points: ring}
		for i := range ring {
			edge := poly.Edge(i)
			assert.Equal(t, 1, edgeUses[edge.key()], "ring edge %v-%v must belong to exactly one triangle", edge.Start, edge.End)
		}
	}

	assert.InDelta(t, expectedArea, triangleArea, 1e-6, "sum of the areas of all triangles must equal the area of the polygon")
	assert.Len(t, mesh.Triangles, vertexCount+2*len(holes)-2)

	AssertValidDualGraph(t, mesh)
}

func AssertValidDualGraph(t *testing.T, mesh *Mesh) {
	t.Helper()
	for _, diagonal := range mesh.Diagonals {
		shared := 0
		for _, tri := range mesh.Triangles {
			if tri.EdgeIndex(diagonal) >= 0 {
				shared++
			}
		}
		assert.Equal(t, 2, shared, "diagonal %v-%v must be shared by two triangles", diagonal.Start, diagonal.End)
	}

	for i, tri := range mesh.Triangles {
		for k, neighbor := range tri.Neighbors {
			if neighbor == NoNeighbor {
				continue
			}
			other := mesh.Triangles[neighbor]
			back := other.EdgeIndex(tri.Edges[k])
			require.GreaterOrEqual(t, back, 0, "neighbor %d of triangle %d does not share edge %d", neighbor, i, k)
			assert.Equal(t, i, other.Neighbors[back], "adjacency of %d and %d is not symmetric", i, neighbor)
		}
	}
}

// Sample a grid over the polygon and check that the mesh covers exactly the
// points inside the boundary and outside every hole.
func validateMeshBySampling(t *testing.T, boundary []Point, holes [][]Point, mesh *Mesh) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range boundary {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// The odd offset keeps samples off the (mostly round) vertex coordinates
	step := math.Max(maxX-minX, maxY-minY) / 50
	const offset = 0.01371

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			expected := Polygon{Points: boundary}.ContainsPointByEvenOdd(p)
			for _, hole := range holes {
				if (Polygon{Points: hole}).ContainsPointByEvenOdd(p) {
					expected = false
				}
			}
			actual := mesh.Locate(p) >= 0
			if expected {
				assert.True(t, actual, "point %v should be in the mesh", p)
			} else {
				assert.False(t, actual, "point %v should not be in the mesh", p)
			}
		}
	}
}

// Used in the helpers above, this is a "normalized" line segment, where the
// lower point (by sweep order) always comes first
type normalizedSegment struct {
	lower, upper Point
}

func newNormalizedSegment(a, b Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}
