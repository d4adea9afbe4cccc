package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// See ParseSVG for how they're read. If anything goes wrong, loading panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *SVGScene {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	scene, err := ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return scene
}

var fixtureNames = []string{"square", "square_hole", "comb", "rooms", "island"}

// Some ad hoc shapes specified in code. Each returns a counterclockwise
// boundary and clockwise holes.

func SimpleStar() ([]Point, [][]Point) {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points, nil
}

func SquareWithHole() ([]Point, [][]Point) {
	outerPoints := []Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}

	holePoints := []Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}

	return outerPoints, [][]Point{holePoints}
}

func StarOutline() ([]Point, [][]Point) {
	filledPoints := []Point{}
	holePoints := []Point{}
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	const holeOuterRadius = filledOuterRadius - 2
	const holeInnerRadius = filledInnerRadius - 2
	for i := 0; i < 10; i++ {
		var (
			filledRadius float64
			holeRadius   float64
		)
		if i%2 == 0 {
			filledRadius = filledOuterRadius
			holeRadius = holeOuterRadius
		} else {
			filledRadius = filledInnerRadius
			holeRadius = holeInnerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		filledPoints = append(filledPoints, Point{X: filledRadius * math.Cos(angle), Y: filledRadius * math.Sin(angle)})
		holePoints = append(holePoints, Point{X: holeRadius * math.Cos(angle), Y: holeRadius * math.Sin(angle)})
	}

	return filledPoints, [][]Point{Polygon{Points: holePoints}.Reverse().Points}
}

// A star with a ring of small square holes between its points.
func StarWithManyHoles() ([]Point, [][]Point) {
	boundary, _ := SimpleStar()
	for i := range boundary {
		boundary[i].X *= 4
		boundary[i].Y *= 4
	}
	var holes [][]Point
	for i := 0; i < 5; i++ {
		angle := 2*math.Pi*float64(i)/5 + math.Pi/5
		cx, cy := 5*math.Cos(angle), 5*math.Sin(angle)
		holes = append(holes, []Point{
			{X: cx - 1, Y: cy - 1},
			{X: cx - 1, Y: cy + 1},
			{X: cx + 1, Y: cy + 1},
			{X: cx + 1, Y: cy - 1},
		})
	}
	return boundary, holes
}

// A zigzag strip, with a reflex vertex at every bend.
func Zigzag() ([]Point, [][]Point) {
	var bottom, top []Point
	for i := 0; i <= 8; i++ {
		x := float64(i) * 2
		y := 0.0
		if i%2 == 1 {
			y = 3
		}
		bottom = append(bottom, Point{X: x, Y: y})
		top = append(top, Point{X: x, Y: y + 2})
	}
	boundary := append([]Point(nil), bottom...)
	for i := len(top) - 1; i >= 0; i-- {
		boundary = append(boundary, top[i])
	}
	return boundary, nil
}

// Rotate a polygon about the origin. Useful for producing vertices that are
// not axis aligned from simple shapes.
func rotateRings(boundary []Point, holes [][]Point, angle float64) ([]Point, [][]Point) {
	sin, cos := math.Sincos(angle)
	rotate := func(ring []Point) []Point {
		rotated := make([]Point, len(ring))
		for i, p := range ring {
			rotated[i] = Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
		}
		return rotated
	}
	rotatedHoles := make([][]Point, len(holes))
	for i, hole := range holes {
		rotatedHoles[i] = rotate(hole)
	}
	return rotate(boundary), rotatedHoles
}

// Mirror a polygon across the Y axis, preserving windings.
func reflectRings(boundary []Point, holes [][]Point) ([]Point, [][]Point) {
	reflect := func(ring []Point) []Point {
		reflected := make([]Point, len(ring))
		for i, p := range ring {
			reflected[i] = Point{X: -p.X, Y: p.Y}
		}
		return Polygon{Points: reflected}.Reverse().Points
	}
	reflectedHoles := make([][]Point, len(holes))
	for i, hole := range holes {
		reflectedHoles[i] = reflect(hole)
	}
	return reflect(boundary), reflectedHoles
}
