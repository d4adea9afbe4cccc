package internal

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/navmesh/internal/dbg"
)

// Tolerance for comparisons on derived quantities (areas, point location).
// Vertex positions themselves are always compared exactly.
const Epsilon = 1e-9

// Sweep order. A point is "above" another if it has a larger Y, or the same Y
// and a smaller X. This simulates a coordinate system rotated slightly
// clockwise, so no two distinct points are ever at the same height and
// horizontal edges need no special casing in the vertex classification.
func (p Point) Below(other Point) bool {
	if p.Y == other.Y {
		return p.X > other.X
	}
	return p.Y < other.Y
}

func (p Point) Above(other Point) bool {
	return other.Below(p)
}

func (p Point) Sub(other Point) Point {
	return pointFromVec(p.Vec().Sub(other.Vec()))
}

func (p Point) Add(other Point) Point {
	return pointFromVec(p.Vec().Add(other.Vec()))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func Distance(a, b Point) float64 {
	return a.Vec().Sub(b.Vec()).Len()
}

func Dot(a, b Point) float64 {
	return a.Vec().Dot(b.Vec())
}

// Z component of the cross product of the vectors a and b.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Twice the signed area of the triangle o, a, b. Positive when b lies to the
// left of the directed line o->a.
func Orientation(o, a, b Point) float64 {
	return Cross(a.Sub(o), b.Sub(o))
}

// Clockwise angle in radians, in [0, 2π), needed to rotate the direction from
// onto the direction to.
func AngleBetween(from, to Point) float64 {
	angle := math.Atan2(from.Y, from.X) - math.Atan2(to.Y, to.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

func Midpoint(a, b Point) Point {
	return pointFromVec(a.Vec().Add(b.Vec()).Mul(0.5))
}

// Shoelace area of a closed ring. Positive for counterclockwise rings.
func SignedArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += Cross(p, q)
	}
	return sum / 2
}

func ApproxEqual(a, b float64) bool {
	return mgl64.FloatEqualThreshold(a, b, Epsilon)
}

func PointsApproxEqual(a, b Point) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}

func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Order-insensitive equality; an edge matches its reverse.
func (s Segment) Matches(other Segment) bool {
	return s == other || s == other.Reverse()
}

func (s Segment) Midpoint() Point {
	return Midpoint(s.Start, s.End)
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// X coordinate of the segment's line at height y. Endpoints are returned
// exactly. A horizontal segment reports its leftmost x.
func (s Segment) SolveForX(y float64) float64 {
	switch {
	case s.IsHorizontal():
		return math.Min(s.Start.X, s.End.X)
	case y == s.Start.Y:
		return s.Start.X
	case y == s.End.Y:
		return s.End.X
	}
	t := (y - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + t*(s.End.X-s.Start.X)
}

// Key used to match segments regardless of direction.
type segmentKey struct {
	upper, lower Point
}

func (s Segment) key() segmentKey {
	if s.Start.Below(s.End) {
		return segmentKey{upper: s.End, lower: s.Start}
	}
	return segmentKey{upper: s.Start, lower: s.End}
}

// Build a counterclockwise triangle from three corners in any order.
func NewTriangle(a, b, c Point) *Triangle {
	if Orientation(a, b, c) < 0 {
		b, c = c, b
	}
	return &Triangle{
		Edges: [3]Segment{
			{Start: a, End: b},
			{Start: b, End: c},
			{Start: c, End: a},
		},
		Neighbors: [3]int{NoNeighbor, NoNeighbor, NoNeighbor},
	}
}

func (t *Triangle) Points() [3]Point {
	return [3]Point{t.Edges[0].Start, t.Edges[1].Start, t.Edges[2].Start}
}

func (t *Triangle) SignedArea() float64 {
	p := t.Points()
	return Orientation(p[0], p[1], p[2]) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) Centroid() Point {
	p := t.Points()
	return pointFromVec(p[0].Vec().Add(p[1].Vec()).Add(p[2].Vec()).Mul(1.0 / 3))
}

// Index of the edge matching s, or -1.
func (t *Triangle) EdgeIndex(s Segment) int {
	for i, edge := range t.Edges {
		if edge.Matches(s) {
			return i
		}
	}
	return -1
}

// Index of the edge shared with the neighbor at the given mesh index, or -1.
func (t *Triangle) NeighborIndex(neighbor int) int {
	for i, n := range t.Neighbors {
		if n == neighbor && n != NoNeighbor {
			return i
		}
	}
	return -1
}

// Whether p lies inside the triangle or on its border. The bounding box check
// rejects most triangles before the per-edge side test.
func (t *Triangle) Contains(p Point) bool {
	corners := t.Points()
	minX := math.Min(corners[0].X, math.Min(corners[1].X, corners[2].X))
	maxX := math.Max(corners[0].X, math.Max(corners[1].X, corners[2].X))
	minY := math.Min(corners[0].Y, math.Min(corners[1].Y, corners[2].Y))
	maxY := math.Max(corners[0].Y, math.Max(corners[1].Y, corners[2].Y))
	if p.X < minX-Epsilon || p.X > maxX+Epsilon || p.Y < minY-Epsilon || p.Y > maxY+Epsilon {
		return false
	}

	// Every edge must see p on its left (or on the edge itself)
	for _, edge := range t.Edges {
		if Orientation(edge.Start, edge.End, p) < -Epsilon*edge.Length() {
			return false
		}
	}
	return true
}

func (t *Triangle) String() string {
	p := t.Points()
	return fmt.Sprintf("%s[%v %v %v]", t.DbgName(), p[0], p[1], p[2])
}

func (t *Triangle) DbgName() string {
	return aurora.Cyan(dbg.Name(t)).String()
}

func (poly Polygon) SignedArea() float64 {
	return SignedArea(poly.Points)
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) Edge(i int) Segment {
	return Segment{
		Start: poly.Points[CircularIndex(i, len(poly.Points))],
		End:   poly.Points[CircularIndex(i+1, len(poly.Points))],
	}
}

// Even-odd point in polygon test, counting crossings of a ray cast to the right.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	crossings := 0
	for i := range poly.Points {
		edge := poly.Edge(i)
		if edge.Start.Below(p) != edge.End.Below(p) && !edge.IsHorizontal() && edge.SolveForX(p.Y) > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() Point {
	if len(*s) == 0 {
		fatalf("pop from empty point stack")
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	if len(*s) == 0 {
		fatalf("peek at empty point stack")
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
