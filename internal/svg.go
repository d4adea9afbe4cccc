package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds every <polygon>
// in the document: the first one is the boundary and the rest are holes.
// Windings are normalized, so the drawing program's winding doesn't matter.
// Circles with the id "start" or "end" mark query points.
type SVGScene struct {
	Boundary []Point
	Holes    [][]Point
	Markers  map[string]Point
}

func ParseSVG(r io.Reader) (*SVGScene, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	scene := &SVGScene{Markers: map[string]Point{}}
	for i, polygonEl := range polygons {
		points, err := parsePointList(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		if i == 0 {
			scene.Boundary = points
		} else {
			scene.Holes = append(scene.Holes, points)
		}
	}
	scene.Boundary, scene.Holes = OrientRings(scene.Boundary, scene.Holes)

	for _, circleEl := range rootEl.FindAll("circle") {
		id := circleEl.Attributes["id"]
		if id == "" {
			continue
		}
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %q cx", id)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %q cy", id)
		}
		scene.Markers[id] = Point{X: x, Y: y}
	}
	return scene, nil
}

// Parse "x,y x,y ..." as found in the points attribute.
func parsePointList(s string) ([]Point, error) {
	var points []Point
	for _, pointString := range strings.Fields(s) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// Return copies of the rings with the boundary counterclockwise and every hole
// clockwise.
func OrientRings(boundary []Point, holes [][]Point) ([]Point, [][]Point) {
	orient := func(ring []Point, ccw bool) []Point {
		poly := Polygon{Points: append([]Point(nil), ring...)}
		if poly.IsCCW() != ccw {
			poly = poly.Reverse()
		}
		return poly.Points
	}
	orientedHoles := make([][]Point, 0, len(holes))
	for _, hole := range holes {
		orientedHoles = append(orientedHoles, orient(hole, false))
	}
	return orient(boundary, true), orientedHoles
}
