package internal

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrTooFewPoints     = errors.New("ring has fewer than 3 points")
	ErrNonFinite        = errors.New("point coordinate is not finite")
	ErrZeroLengthEdge   = errors.New("ring has a zero length edge")
	ErrWinding          = errors.New("ring has the wrong winding")
	ErrSelfIntersecting = errors.New("ring intersects itself")
	ErrHoleOutside      = errors.New("hole is not inside the boundary")
	ErrHolesOverlap     = errors.New("holes overlap")
)

// Check that the boundary and holes form a valid polygon with holes: every
// ring is simple, the boundary winds counterclockwise, the holes wind
// clockwise, every hole is strictly inside the boundary and no two holes
// touch.
func ValidateRings(boundary []Point, holes [][]Point) error {
	if err := validateRing(boundary); err != nil {
		return errors.Wrap(err, "boundary")
	}
	if SignedArea(boundary) <= 0 {
		return errors.Wrap(ErrWinding, "boundary must be counterclockwise")
	}
	for i, hole := range holes {
		if err := validateRing(hole); err != nil {
			return errors.Wrapf(err, "hole %d", i)
		}
		if SignedArea(hole) >= 0 {
			return errors.Wrapf(ErrWinding, "hole %d must be clockwise", i)
		}
	}

	boundaryPoly := Polygon{Points: boundary}
	for i, hole := range holes {
		if ringsIntersect(boundary, hole) || !boundaryPoly.ContainsPointByEvenOdd(hole[0]) {
			return errors.Wrapf(ErrHoleOutside, "hole %d", i)
		}
		for j := 0; j < i; j++ {
			other := holes[j]
			if ringsIntersect(hole, other) ||
				(Polygon{Points: other}).ContainsPointByEvenOdd(hole[0]) ||
				(Polygon{Points: hole}).ContainsPointByEvenOdd(other[0]) {
				return errors.Wrapf(ErrHolesOverlap, "holes %d and %d", j, i)
			}
		}
	}
	return nil
}

func validateRing(ring []Point) error {
	n := len(ring)
	if n < 3 {
		return errors.Wrapf(ErrTooFewPoints, "got %d", n)
	}
	for _, p := range ring {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrNonFinite, "%v", p)
		}
	}
	poly := Polygon{Points: ring}
	for i := 0; i < n; i++ {
		if ring[i] == ring[CircularIndex(i+1, n)] {
			return errors.Wrapf(ErrZeroLengthEdge, "at %v", ring[i])
		}
	}
	for i := 0; i < n; i++ {
		a := poly.Edge(i)
		for j := i + 1; j < n; j++ {
			b := poly.Edge(j)
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Neighbors share an endpoint, so they only intersect if they fold
				// back over each other.
				if foldsBack(a, b) {
					return errors.Wrapf(ErrSelfIntersecting, "edges %d and %d overlap", i, j)
				}
				continue
			}
			if segmentsIntersect(a, b) {
				return errors.Wrapf(ErrSelfIntersecting, "edges %d and %d cross", i, j)
			}
		}
	}
	return nil
}

func ringsIntersect(a, b []Point) bool {
	polyA, polyB := Polygon{Points: a}, Polygon{Points: b}
	for i := range a {
		for j := range b {
			if segmentsIntersect(polyA.Edge(i), polyB.Edge(j)) {
				return true
			}
		}
	}
	return false
}

// Whether two segments share any point, including touching endpoints and
// collinear overlap.
func segmentsIntersect(a, b Segment) bool {
	o1 := sign(Orientation(a.Start, a.End, b.Start))
	o2 := sign(Orientation(a.Start, a.End, b.End))
	o3 := sign(Orientation(b.Start, b.End, a.Start))
	o4 := sign(Orientation(b.Start, b.End, a.End))

	if o1 != o2 && o3 != o4 {
		return true
	}
	return (o1 == 0 && onSegment(a, b.Start)) ||
		(o2 == 0 && onSegment(a, b.End)) ||
		(o3 == 0 && onSegment(b, a.Start)) ||
		(o4 == 0 && onSegment(b, a.End))
}

// Two edges that share an endpoint, checked for lying along each other.
func foldsBack(a, b Segment) bool {
	var shared, p, q Point
	switch {
	case a.End == b.Start:
		shared, p, q = a.End, a.Start, b.End
	case b.End == a.Start:
		shared, p, q = a.Start, a.End, b.Start
	default:
		return segmentsIntersect(a, b)
	}
	u, v := p.Sub(shared), q.Sub(shared)
	return Cross(u, v) == 0 && Dot(u, v) > 0
}

// Whether p, already known to be collinear with s, lies within its extent.
func onSegment(s Segment, p Point) bool {
	return p.X >= math.Min(s.Start.X, s.End.X) && p.X <= math.Max(s.Start.X, s.End.X) &&
		p.Y >= math.Min(s.Start.Y, s.End.Y) && p.Y <= math.Max(s.Start.Y, s.End.Y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
