// Package scenario loads a walkable area and an optional query from a file.
//
// Three formats are understood, chosen by file extension:
//
//   - .yaml/.yml: a document with boundary, holes, start, end and weight keys,
//     points written as [x, y] pairs.
//   - .svg: the first <polygon> is the boundary and the rest are holes. Circles
//     with the id "start" or "end" mark the query.
//   - anything else: plain text with one "x y" point per line and a blank line
//     between rings. The first ring is the boundary.
//
// Windings never matter; every loader returns a counterclockwise boundary and
// clockwise holes.
package scenario

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/navmesh/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Point = internal.Point

type Scenario struct {
	Boundary []Point
	Holes    [][]Point
	// Query, where the file provides one.
	Start, End *Point
	Weight     *float64
}

func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scenario")
	}
	defer f.Close()

	var s *Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ParseYAML(f)
	case ".svg":
		s, err = ParseSVG(f)
	default:
		s, err = ParseText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

type yamlScenario struct {
	Boundary [][2]float64   `yaml:"boundary"`
	Holes    [][][2]float64 `yaml:"holes"`
	Start    *[2]float64    `yaml:"start"`
	End      *[2]float64    `yaml:"end"`
	Weight   *float64       `yaml:"weight"`
}

func ParseYAML(r io.Reader) (*Scenario, error) {
	var doc yamlScenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding yaml")
	}
	if len(doc.Boundary) == 0 {
		return nil, errors.New("scenario has no boundary")
	}

	toPoints := func(pairs [][2]float64) []Point {
		points := make([]Point, len(pairs))
		for i, pair := range pairs {
			points[i] = Point{X: pair[0], Y: pair[1]}
		}
		return points
	}
	toPoint := func(pair *[2]float64) *Point {
		if pair == nil {
			return nil
		}
		return &Point{X: pair[0], Y: pair[1]}
	}

	holes := make([][]Point, len(doc.Holes))
	for i, hole := range doc.Holes {
		holes[i] = toPoints(hole)
	}
	s := &Scenario{
		Start:  toPoint(doc.Start),
		End:    toPoint(doc.End),
		Weight: doc.Weight,
	}
	s.Boundary, s.Holes = internal.OrientRings(toPoints(doc.Boundary), holes)
	return s, nil
}

func ParseSVG(r io.Reader) (*Scenario, error) {
	scene, err := internal.ParseSVG(r)
	if err != nil {
		return nil, err
	}
	s := &Scenario{Boundary: scene.Boundary, Holes: scene.Holes}
	if start, ok := scene.Markers["start"]; ok {
		s.Start = &start
	}
	if end, ok := scene.Markers["end"]; ok {
		s.End = &end
	}
	return s, nil
}

func ParseText(r io.Reader) (*Scenario, error) {
	var rings [][]Point
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	if len(rings) == 0 {
		return nil, errors.New("scenario has no boundary")
	}

	s := &Scenario{}
	s.Boundary, s.Holes = internal.OrientRings(rings[0], rings[1:])
	return s, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "parsing y")
	}
	return Point{X: x, Y: y}, nil
}
