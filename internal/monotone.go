package internal

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The sweep order of Point.Below() is used here as well, so horizontal edges
// are treated exactly as they were when the pieces were cut. The polygon must
// be counterclockwise.

// Which side of a monotone piece a vertex lies on. The top and bottom vertices
// belong to neither chain.
type Chain int

const (
	ChainNone Chain = iota
	ChainLeft
	ChainRight
)

// Triangulate a monotone piece, returning the triangles along with the
// diagonals that were added to cut them out.
func TriangulateMonotone(polygon Polygon) ([]*Triangle, []Segment) {
	n := len(polygon.Points)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}
	if n == 3 {
		return []*Triangle{NewTriangle(polygon.Points[0], polygon.Points[1], polygon.Points[2])}, nil
	}

	triangles := make([]*Triangle, 0, n-2)
	diagonals := make([]Segment, 0, n-3)

	sortedPoints, chains := sortMonotoneChains(polygon)
	bottomPoint := sortedPoints[n-1]

	addDiagonal := func(a, b Point) {
		diagonals = append(diagonals, Segment{Start: a, End: b})
	}

	// Create the stack and populate it with the first two points
	stack := make(PointStack, 0, n)
	stack.Push(sortedPoints[0])
	stack.Push(sortedPoints[1])
	// Iterate over the remainder of the sorted points, leaving out the bottom
	for i := 2; i < n-1; i++ {
		p := sortedPoints[i]
		chain := chains[p]

		if chain != chains[stack.Peek()] {
			// We've jumped to the other chain, so monotonicity guarantees that all
			// stack points are visible from the current point. Fan out to all of
			// them. The last one is already connected to p by a polygon edge.
			for stack.Len() > 1 {
				a := stack.Pop()
				b := stack.Peek()
				addDiagonal(p, a)
				triangles = append(triangles, NewTriangle(p, a, b))
			}
			stack.Pop()
			// Put the last two points on the stack
			stack.Push(sortedPoints[i-1])
			stack.Push(p)
		} else {
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()
			for !stack.Empty() && canConnect(p, stack.Peek(), v, chain) {
				top := stack.Pop()
				addDiagonal(p, top)
				triangles = append(triangles, NewTriangle(p, top, v))
				v = top
			}
			// Put the last v back on the stack, and then the current point
			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, fan the bottom point out to everything left on the stack. The
	// first and last stack points are its polygon neighbors, so only the points
	// in between get diagonals.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if !stack.Empty() {
			addDiagonal(bottomPoint, p)
		}
		triangles = append(triangles, NewTriangle(bottomPoint, p, l))
		l = p
	}
	return triangles, diagonals
}

// Sort the points of a monotone polygon from top to bottom, and label each one
// with its chain. Walking forward from the top runs down the left chain;
// walking backward runs down the right chain.
func sortMonotoneChains(polygon Polygon) ([]Point, map[Point]Chain) {
	n := len(polygon.Points)

	var topPointIndex int
	for i, point := range polygon.Points {
		if point.Above(polygon.Points[topPointIndex]) {
			topPointIndex = i
		}
	}

	sortedPoints := make([]Point, 0, n)
	sortedPoints = append(sortedPoints, polygon.Points[topPointIndex])
	chains := map[Point]Chain{polygon.Points[topPointIndex]: ChainNone}

	// Merge the two chains, starting from the top
	leftOffset := 1
	rightOffset := 1
	for {
		leftPoint := polygon.Points[CircularIndex(topPointIndex+leftOffset, n)]
		rightPoint := polygon.Points[CircularIndex(topPointIndex-rightOffset, n)]

		// If we've met up, we've found the bottom point
		if leftPoint == rightPoint {
			sortedPoints = append(sortedPoints, leftPoint)
			chains[leftPoint] = ChainNone
			break
		}

		if leftPoint.Above(rightPoint) {
			chains[leftPoint] = ChainLeft
			sortedPoints = append(sortedPoints, leftPoint)
			leftOffset++
		} else {
			chains[rightPoint] = ChainRight
			sortedPoints = append(sortedPoints, rightPoint)
			rightOffset++
		}
	}
	return sortedPoints, chains
}

// Whether p can see candidate past the last popped point, on a chain. On the
// left chain the clockwise angle from prev to candidate, seen from p, must be
// under a half turn; on the right chain it must be over one. Collinear points
// never connect, so no zero area triangles are produced.
func canConnect(p, candidate, prev Point, chain Chain) bool {
	turn := Orientation(p, candidate, prev)
	if chain == ChainLeft {
		return turn > 0
	}
	return turn < 0
}
