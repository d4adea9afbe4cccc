package internal

import (
	"fmt"
	"sort"
)

// An edge that is currently crossed by the sweep line. Helper is the arena
// index of the lowest vertex seen so far that can see the edge from the right.
type Edge struct {
	Segment
	Helper int
}

func (e *Edge) String() string {
	return fmt.Sprintf("%v->%v (helper %d)", e.Start, e.End, e.Helper)
}

// Active sweep edges ordered from left to right by where they cross the
// current sweep line. The sweep line is never stored; each operation positions
// itself at the height implied by its argument.
//
// Active edges never cross, so the order is the same at every height where
// they are all defined, which is what makes binary search valid here.
type SortedEdgeList struct {
	edges []*Edge
}

func (l *SortedEdgeList) Len() int {
	return len(l.edges)
}

// Edges in left to right order. The returned slice must not be modified.
func (l *SortedEdgeList) Edges() []*Edge {
	return l.edges
}

func (l *SortedEdgeList) Insert(edge *Edge) {
	y, x := edge.Start.Y, edge.Start.X
	i := sort.Search(len(l.edges), func(i int) bool {
		return l.edges[i].SolveForX(y) >= x
	})
	l.edges = append(l.edges, nil)
	copy(l.edges[i+1:], l.edges[i:])
	l.edges[i] = edge
}

func (l *SortedEdgeList) Delete(segment Segment) {
	i := l.indexOf(segment)
	copy(l.edges[i:], l.edges[i+1:])
	l.edges[len(l.edges)-1] = nil
	l.edges = l.edges[:len(l.edges)-1]
}

func (l *SortedEdgeList) FindExact(segment Segment) *Edge {
	return l.edges[l.indexOf(segment)]
}

// Position of the edge with exactly these endpoints. The binary search lands
// in the neighborhood of the edge, keyed at the segment's lower end, and the
// scan widens outward from there.
func (l *SortedEdgeList) indexOf(segment Segment) int {
	y := segment.End.Y
	x := segment.SolveForX(y)
	start := sort.Search(len(l.edges), func(i int) bool {
		return l.edges[i].SolveForX(y) >= x
	})

	for offset := 0; offset <= len(l.edges); offset++ {
		for _, i := range [2]int{start + offset, start - offset - 1} {
			if i >= 0 && i < len(l.edges) && l.edges[i].Segment == segment {
				return i
			}
		}
	}
	fatalf("edge %v->%v is not in the sweep list", segment.Start, segment.End)
	return -1
}

// The rightmost edge whose crossing of p's sweep line is at or to the left of
// p.
func (l *SortedEdgeList) FindLeftOf(p Point) *Edge {
	i := sort.Search(len(l.edges), func(i int) bool {
		return l.edges[i].SolveForX(p.Y) > p.X
	})
	if i == 0 {
		fatalf("no sweep edge to the left of %v", p)
	}
	return l.edges[i-1]
}
