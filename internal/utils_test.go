package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepOrder(t *testing.T) {
	assert.True(t, Point{0, 0}.Below(Point{0, 1}))
	assert.True(t, Point{0, 1}.Above(Point{0, 0}))
	// Same height: the point further left is above
	assert.True(t, Point{1, 0}.Below(Point{0, 0}))
	assert.True(t, Point{-1, 0}.Above(Point{0, 0}))
	assert.False(t, Point{0, 0}.Below(Point{0, 0}))
	assert.False(t, Point{0, 0}.Above(Point{0, 0}))
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(3, 3))
	assert.Equal(t, 2, CircularIndex(-1, 3))
	assert.Equal(t, 1, CircularIndex(7, 3))
}

func TestAngleBetween(t *testing.T) {
	east := Point{1, 0}
	assert.InDelta(t, 0, AngleBetween(east, east), Epsilon)
	// Clockwise from east to south is a quarter turn
	assert.InDelta(t, math.Pi/2, AngleBetween(east, Point{0, -1}), Epsilon)
	assert.InDelta(t, 3*math.Pi/2, AngleBetween(east, Point{0, 1}), Epsilon)
	assert.InDelta(t, math.Pi, AngleBetween(Point{0, 1}, Point{0, -1}), Epsilon)
	assert.InDelta(t, math.Pi/4, AngleBetween(Point{-1, 0}, Point{-1, 1}), Epsilon)
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s corners", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			a, b, c := Point{0, -1}, Point{1, 0}, Point{0, 1}
			if cwI == 1 {
				a, b = b, a
			}
			// NewTriangle always normalizes to counterclockwise
			tri := NewTriangle(a, b, c)
			assert.InDelta(t, 1, tri.SignedArea(), Epsilon)
			assert.Equal(t, a, tri.Points()[0])
			for _, n := range tri.Neighbors {
				assert.Equal(t, NoNeighbor, n)
			}

			stretched := NewTriangle(Point{a.X, a.Y * 2}, Point{b.X, b.Y * 2}, Point{c.X, c.Y * 2})
			assert.InDelta(t, 2, stretched.SignedArea(), Epsilon)
		})
	}
}

func TestTriangleContains(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	assert.True(t, tri.Contains(Point{1, 1}))
	assert.True(t, tri.Contains(Point{0, 0}), "corners are contained")
	assert.True(t, tri.Contains(Point{2, 2}), "edges are contained")
	assert.False(t, tri.Contains(Point{3, 3}))
	assert.False(t, tri.Contains(Point{-1, 1}))
	assert.False(t, tri.Contains(Point{10, 10}))
}

func TestSegment(t *testing.T) {
	s := Segment{Start: Point{0, 4}, End: Point{2, 0}}

	t.Run("Matches ignores direction", func(t *testing.T) {
		assert.True(t, s.Matches(s.Reverse()))
		assert.False(t, s.Matches(Segment{Start: Point{0, 4}, End: Point{2, 1}}))
		assert.Equal(t, s.key(), s.Reverse().key())
	})

	t.Run("SolveForX", func(t *testing.T) {
		assert.Equal(t, 0.0, s.SolveForX(4))
		assert.Equal(t, 2.0, s.SolveForX(0))
		assert.InDelta(t, 1, s.SolveForX(2), Epsilon)

		horizontal := Segment{Start: Point{5, 1}, End: Point{3, 1}}
		assert.Equal(t, 3.0, horizontal.SolveForX(1))
	})

	t.Run("Midpoint", func(t *testing.T) {
		assert.Equal(t, Point{1, 2}, s.Midpoint())
	})
}

func TestPolygon(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	assert.True(t, square.IsCCW())
	assert.InDelta(t, 4, square.SignedArea(), Epsilon)
	assert.False(t, square.Reverse().IsCCW())
	assert.InDelta(t, 4, square.Reverse().Area(), Epsilon)

	assert.True(t, square.ContainsPointByEvenOdd(Point{1, 1}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{3, 1}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{-1, 1}))
}

func TestPointStack(t *testing.T) {
	var stack PointStack
	assert.True(t, stack.Empty())
	stack.Push(Point{1, 1})
	stack.Push(Point{2, 2})
	assert.Equal(t, Point{2, 2}, stack.Peek())
	assert.Equal(t, Point{2, 2}, stack.Pop())
	assert.Equal(t, 1, stack.Len())
	assert.Equal(t, Point{1, 1}, stack.Pop())
	assert.True(t, stack.Empty())
	assert.Panics(t, func() { stack.Pop() })
}
