package internal

import (
	"sort"

	"go.uber.org/zap"
)

// Sweep a horizontal line from top to bottom, adding diagonals until no split
// or merge vertices remain. Afterwards, the rings together with the diagonals
// divide the polygon into y-monotone pieces (see Pieces).
//
// The edges stored in the sweep list are exactly those with the interior to
// their right, which are the edges pointing downward in the sweep order.
func (a *VertexArena) PartitionIntoMonotones() {
	order := a.SweepOrder()
	var list SortedEdgeList
	for _, i := range order {
		switch a.Vertices[i].Type {
		case Start:
			a.handleStart(&list, i)
		case End:
			a.handleEnd(&list, i)
		case Split:
			a.handleSplit(&list, i)
		case Merge:
			a.handleMerge(&list, i)
		default:
			a.handleRegular(&list, i)
		}
	}
	if list.Len() != 0 {
		fatalf("sweep finished with %d active edges", list.Len())
	}
	Logger().Debug("partitioned into monotones",
		zap.Int("vertices", len(a.Vertices)),
		zap.Int("diagonals", len(a.Diagonals)),
	)
}

// Arena indices from the top of the sweep to the bottom.
func (a *VertexArena) SweepOrder() []int {
	order := make([]int, len(a.Vertices))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.position(order[i]).Above(a.position(order[j]))
	})
	return order
}

func (a *VertexArena) handleStart(list *SortedEdgeList, i int) {
	list.Insert(&Edge{Segment: a.forwardSegment(i), Helper: i})
}

// Retire the edge arriving at i from above.
func (a *VertexArena) handleEnd(list *SortedEdgeList, i int) {
	incoming := a.forwardSegment(a.Vertices[i].Prev)
	edge := list.FindExact(incoming)
	if a.Vertices[edge.Helper].Type == Merge {
		a.AddDiagonal(i, edge.Helper)
	}
	list.Delete(incoming)
}

func (a *VertexArena) handleSplit(list *SortedEdgeList, i int) {
	left := list.FindLeftOf(a.position(i))
	a.AddDiagonal(i, left.Helper)
	left.Helper = i
	a.handleStart(list, i)
}

func (a *VertexArena) handleMerge(list *SortedEdgeList, i int) {
	a.handleEnd(list, i)
	a.updateLeftHelper(list, i)
}

func (a *VertexArena) handleRegular(list *SortedEdgeList, i int) {
	v := &a.Vertices[i]
	if a.position(v.Next).Below(v.Position) {
		// Interior is to the right, so this vertex is on the left side of the
		// region: hand the downward chain over to the next edge.
		a.handleEnd(list, i)
		a.handleStart(list, i)
	} else {
		a.updateLeftHelper(list, i)
	}
}

// Make i the helper of the edge directly to its left, first connecting i to
// the outgoing helper if that was a merge vertex.
func (a *VertexArena) updateLeftHelper(list *SortedEdgeList, i int) {
	left := list.FindLeftOf(a.position(i))
	if a.Vertices[left.Helper].Type == Merge {
		a.AddDiagonal(i, left.Helper)
	}
	left.Helper = i
}
