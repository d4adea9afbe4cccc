package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

type VertexType int

const (
	Regular VertexType = iota
	Start
	End
	Split
	Merge
)

func (t VertexType) String() string {
	switch t {
	case Start:
		return aurora.Green("Start").String()
	case End:
		return aurora.Red("End").String()
	case Split:
		return aurora.Yellow("Split").String()
	case Merge:
		return aurora.Magenta("Merge").String()
	default:
		return "Regular"
	}
}

// A polygon vertex during decomposition. Prev, Next and Diagonals are indices
// into the owning arena.
type Vertex struct {
	Position Point
	Type     VertexType
	Prev     int
	Next     int
	// Cleared once the face walk has used the boundary edge to Next.
	EdgeToNextAvailable bool
	Diagonals           []int
}

func (v *Vertex) String() string {
	return fmt.Sprintf("%v %v", v.Position, v.Type)
}

// All the rings of one polygon with holes. The boundary must be
// counterclockwise and the holes clockwise, so that the interior is always to
// the left of each ring edge.
type VertexArena struct {
	Vertices  []Vertex
	Diagonals []Segment
}

func NewVertexArena(rings ...[]Point) *VertexArena {
	arena := &VertexArena{}
	for _, ring := range rings {
		offset := len(arena.Vertices)
		for i, p := range ring {
			arena.Vertices = append(arena.Vertices, Vertex{
				Position:            p,
				Prev:                offset + CircularIndex(i-1, len(ring)),
				Next:                offset + CircularIndex(i+1, len(ring)),
				EdgeToNextAvailable: true,
			})
		}
	}
	return arena
}

func (a *VertexArena) position(i int) Point {
	return a.Vertices[i].Position
}

// The boundary edge from vertex i to its successor.
func (a *VertexArena) forwardSegment(i int) Segment {
	return Segment{Start: a.position(i), End: a.position(a.Vertices[i].Next)}
}

// Tag every vertex with its role in the sweep.
func (a *VertexArena) Classify() {
	for i := range a.Vertices {
		v := &a.Vertices[i]
		prev := a.position(v.Prev)
		next := a.position(v.Next)
		convex := Cross(v.Position.Sub(prev), next.Sub(v.Position)) > 0

		switch {
		case prev.Below(v.Position) && next.Below(v.Position):
			if convex {
				v.Type = Start
			} else {
				v.Type = Split
			}
		case prev.Above(v.Position) && next.Above(v.Position):
			if convex {
				v.Type = End
			} else {
				v.Type = Merge
			}
		default:
			v.Type = Regular
		}
	}
}

func (a *VertexArena) hasDiagonal(i, j int) bool {
	for _, d := range a.Vertices[i].Diagonals {
		if d == j {
			return true
		}
	}
	return false
}

// Connect two vertices with a diagonal. Diagonals that would duplicate a ring
// edge or an existing diagonal are ignored.
func (a *VertexArena) AddDiagonal(i, j int) {
	if i == j || a.Vertices[i].Next == j || a.Vertices[i].Prev == j || a.hasDiagonal(i, j) {
		return
	}
	a.Vertices[i].Diagonals = append(a.Vertices[i].Diagonals, j)
	a.Vertices[j].Diagonals = append(a.Vertices[j].Diagonals, i)
	a.Diagonals = append(a.Diagonals, Segment{Start: a.position(i), End: a.position(j)})
}
