// A navigation mesh package for Go.
//
// This package converts a polygonal walkable area, which may be non-convex and
// may contain holes, into a mesh of triangles containing only the original
// points, and finds smoothed paths across it with a weighted A* search over the
// triangles.
package navmesh

import (
	"math"

	"github.com/osuushi/navmesh/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Mesh = internal.Mesh
type PathResult = internal.PathResult
type Stats = internal.Stats

// Input errors. Every error returned by Generate has one of these as its cause,
// unless the pipeline itself failed.
var (
	ErrTooFewPoints     = internal.ErrTooFewPoints
	ErrNonFinite        = internal.ErrNonFinite
	ErrZeroLengthEdge   = internal.ErrZeroLengthEdge
	ErrWinding          = internal.ErrWinding
	ErrSelfIntersecting = internal.ErrSelfIntersecting
	ErrHoleOutside      = internal.ErrHoleOutside
	ErrHolesOverlap     = internal.ErrHolesOverlap
)

var ErrInvalidWeight = errors.New("weight must be a non-negative number")

// Triangulate the area inside boundary and outside every hole, and connect the
// triangles into a graph for path finding.
//
// The boundary must give its points in counterclockwise order, and each hole
// in clockwise order. Use Orient if the windings are unknown.
func Generate(boundary []Point, holes ...[]Point) (mesh *Mesh, err error) {
	if err := internal.ValidateRings(boundary, holes); err != nil {
		return nil, err
	}
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = errors.Wrap(recoveredErr, "generating navmesh")
		}
	}()
	return internal.GenerateMesh(boundary, holes), nil
}

// Return copies of the rings with the windings Generate expects.
func Orient(boundary []Point, holes ...[]Point) ([]Point, [][]Point) {
	return internal.OrientRings(boundary, holes)
}

// Answers path queries against one mesh. Search state is kept between queries
// and reset lazily, so a Navigator is cheap to query repeatedly. It is not
// safe for concurrent use.
type Navigator struct {
	search *internal.Search
}

func NewNavigator(mesh *Mesh) *Navigator {
	return &Navigator{search: internal.NewSearch(mesh)}
}

// Switch to a different mesh. Results from earlier queries refer to the old
// mesh's triangles.
func (n *Navigator) SetMesh(mesh *Mesh) {
	n.search.SetMesh(mesh)
}

func (n *Navigator) Mesh() *Mesh {
	return n.search.Mesh()
}

// Find a path from start to end.
//
// The weight scales the heuristic: 0 searches like Dijkstra's algorithm, 1 is
// plain A*, and larger values expand fewer triangles at the cost of path
// quality.
//
// If either point is outside the mesh, or no path connects them, the result
// is not an error but has Exists set to false.
func (n *Navigator) FindPath(start, end Point, weight float64) (result *PathResult, err error) {
	if math.IsNaN(weight) || weight < 0 {
		return nil, errors.Wrapf(ErrInvalidWeight, "got %g", weight)
	}
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = errors.Wrap(recoveredErr, "finding path")
		}
	}()
	return n.search.FindPath(start, end, weight), nil
}

// Segments from each triangle to the crossings it pushed onto the open list
// during the last query. Empty when the last query found no path.
func (n *Navigator) Considered() []Segment {
	return n.search.Considered()
}

// Segments from each expanded triangle back to its parent during the last
// query.
func (n *Navigator) Visited() []Segment {
	return n.search.Visited()
}

func (n *Navigator) Stats() Stats {
	return n.search.Stats()
}

// Route debug logging from mesh generation and path queries to l. Nothing is
// logged by default; pass nil to go back to that.
func SetLogger(l *zap.Logger) {
	internal.SetLogger(l)
}

func Logger() *zap.Logger {
	return internal.Logger()
}
