package internal

// Walk the faces formed by the rings and the diagonals, returning one
// counterclockwise polygon per face.
//
// Each walk starts on a boundary edge that no face has claimed yet. At every
// vertex it takes the outgoing edge with the smallest clockwise turn from the
// direction it arrived from, which keeps the face on its left. Boundary edges
// belong to exactly one face and are claimed as they are walked; diagonals
// belong to two faces and are never claimed.
func (a *VertexArena) Pieces() []Polygon {
	var pieces []Polygon
	for i := range a.Vertices {
		if !a.Vertices[i].EdgeToNextAvailable {
			continue
		}
		a.Vertices[i].EdgeToNextAvailable = false

		piece := Polygon{Points: []Point{a.position(i)}}
		prev, curr := i, a.Vertices[i].Next
		for curr != i {
			if len(piece.Points) > len(a.Vertices) {
				fatalf("face walk from %v did not close", a.position(i))
			}
			piece.Points = append(piece.Points, a.position(curr))
			next := a.nextInFace(curr, prev)
			if next == a.Vertices[curr].Next {
				a.Vertices[curr].EdgeToNextAvailable = false
			}
			prev, curr = curr, next
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

func (a *VertexArena) nextInFace(curr, prev int) int {
	origin := a.position(curr)
	back := a.position(prev).Sub(origin)

	best := a.Vertices[curr].Next
	bestAngle := AngleBetween(back, a.position(best).Sub(origin))
	for _, d := range a.Vertices[curr].Diagonals {
		if d == prev {
			continue
		}
		if angle := AngleBetween(back, a.position(d).Sub(origin)); angle < bestAngle {
			best, bestAngle = d, angle
		}
	}
	return best
}
