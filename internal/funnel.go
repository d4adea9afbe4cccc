package internal

type portal struct {
	left, right Point
}

// String pull a path through a sequence of portals (the edges crossed going
// from start to end), returning start, every corner the path must wrap around,
// and end.
//
// Each edge must be oriented as in the counterclockwise triangle being left.
func Funnel(start, end Point, edges []Segment) []Point {
	if len(edges) == 0 {
		return []Point{start, end}
	}

	portals := make([]portal, 0, len(edges)+2)
	portals = append(portals, portal{left: start, right: start})
	reference := start
	for _, edge := range edges {
		portals = append(portals, orientPortal(reference, edge))
		reference = edge.Midpoint()
	}
	portals = append(portals, portal{left: end, right: end})

	path := []Point{start}
	appendCorner := func(p Point) {
		if path[len(path)-1] != p {
			path = append(path, p)
		}
	}

	apex, left, right := start, start, start
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	for i := 1; i < len(portals); i++ {
		next := portals[i]

		// Tighten the right side
		if Orientation(apex, right, next.right) >= 0 {
			if apex == right || Orientation(apex, left, next.right) < 0 {
				right = next.right
				rightIndex = i
			} else {
				// Right crossed over left, so left is a corner
				appendCorner(left)
				apex, apexIndex = left, leftIndex
				right, rightIndex = apex, apexIndex
				i = apexIndex
				continue
			}
		}

		// Tighten the left side
		if Orientation(apex, left, next.left) <= 0 {
			if apex == left || Orientation(apex, right, next.left) > 0 {
				left = next.left
				leftIndex = i
			} else {
				// Left crossed over right, so right is a corner
				appendCorner(right)
				apex, apexIndex = right, rightIndex
				left, leftIndex = apex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	appendCorner(end)
	return path
}

// Decide which end of a portal edge is on the traveler's left, looking from
// the previous crossing point toward the middle of the edge. When the two are
// collinear, the edge's own direction is used: the end of a counterclockwise
// edge is on the left of anyone leaving through it.
func orientPortal(reference Point, edge Segment) portal {
	heading := edge.Midpoint().Sub(reference)
	if Cross(heading, edge.End.Sub(reference)) < 0 {
		return portal{left: edge.Start, right: edge.End}
	}
	return portal{left: edge.End, right: edge.Start}
}
