package navmesh

import (
	"github.com/osuushi/navmesh/internal"
	"github.com/pkg/errors"
)

var ErrNoSuchHole = errors.New("no such hole")

// A triangular obstacle. Any winding is accepted.
type Hole [3]Point

// A triangle 100 units wide around the origin.
var DefaultHole = Hole{{X: -50, Y: -50}, {X: 50, Y: -50}, {X: 0, Y: 50}}

func (h Hole) Center() Point {
	return Point{X: (h[0].X + h[1].X + h[2].X) / 3, Y: (h[0].Y + h[1].Y + h[2].Y) / 3}
}

// The hole's points in clockwise order.
func (h Hole) clockwise() []Point {
	points := []Point{h[0], h[1], h[2]}
	if internal.SignedArea(points) > 0 {
		points[1], points[2] = points[2], points[1]
	}
	return points
}

// An editable search area: a rectangle centred on the origin with triangular
// holes cut out of it, plus one path query that is kept up to date as the
// area changes.
//
// Every edit regenerates the mesh and re-runs the query. An edit that would
// make the area invalid (a hole crossing the boundary or another hole, say)
// is undone and its error returned.
type Area struct {
	width, height float64
	holes         []Hole
	mesh          *Mesh
	navigator     *Navigator

	start, end Point
	weight     float64
	path       *PathResult
}

func NewArea(width, height float64, start, end Point) (*Area, error) {
	if !(width > 0 && height > 0) {
		return nil, errors.Errorf("area must have a positive size, got %gx%g", width, height)
	}
	a := &Area{
		width:     width,
		height:    height,
		navigator: NewNavigator(nil),
		start:     start,
		end:       end,
		weight:    1,
	}
	if err := a.regenerate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Counterclockwise corners of the area.
func (a *Area) Boundary() []Point {
	w, h := a.width/2, a.height/2
	return []Point{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}
}

func (a *Area) Holes() []Hole {
	return append([]Hole(nil), a.holes...)
}

func (a *Area) Mesh() *Mesh {
	return a.mesh
}

// The navigator answering the area's query, for its diagnostics.
func (a *Area) Navigator() *Navigator {
	return a.navigator
}

// Result of the query for the current start, end and weight.
func (a *Area) Path() *PathResult {
	return a.path
}

func (a *Area) Start() Point {
	return a.start
}

func (a *Area) End() Point {
	return a.end
}

func (a *Area) Weight() float64 {
	return a.weight
}

// Add a hole, returning its index.
func (a *Area) AddHole(hole Hole) (int, error) {
	a.holes = append(a.holes, hole)
	if err := a.regenerate(); err != nil {
		a.holes = a.holes[:len(a.holes)-1]
		return -1, err
	}
	return len(a.holes) - 1, nil
}

func (a *Area) RemoveHole(i int) error {
	if err := a.checkHole(i); err != nil {
		return err
	}
	removed := a.holes[i]
	a.holes = append(a.holes[:i], a.holes[i+1:]...)
	if err := a.regenerate(); err != nil {
		// Put it back so the area is unchanged
		a.holes = append(a.holes[:i], append([]Hole{removed}, a.holes[i:]...)...)
		return err
	}
	return nil
}

// Translate hole i so its centroid is at center.
func (a *Area) MoveHole(i int, center Point) error {
	if err := a.checkHole(i); err != nil {
		return err
	}
	old := a.holes[i]
	delta := center.Sub(old.Center())
	var moved Hole
	for k, p := range old {
		moved[k] = p.Add(delta)
	}
	return a.replaceHole(i, moved)
}

// Move a single corner of hole i.
func (a *Area) SetHoleVertex(i, corner int, p Point) error {
	if err := a.checkHole(i); err != nil {
		return err
	}
	if corner < 0 || corner > 2 {
		return errors.Errorf("hole corner %d out of range", corner)
	}
	edited := a.holes[i]
	edited[corner] = p
	return a.replaceHole(i, edited)
}

func (a *Area) SetStart(p Point) error {
	a.start = p
	return a.query()
}

func (a *Area) SetEnd(p Point) error {
	a.end = p
	return a.query()
}

func (a *Area) SetWeight(weight float64) error {
	old := a.weight
	a.weight = weight
	if err := a.query(); err != nil {
		a.weight = old
		return err
	}
	return nil
}

func (a *Area) checkHole(i int) error {
	if i < 0 || i >= len(a.holes) {
		return errors.Wrapf(ErrNoSuchHole, "index %d of %d", i, len(a.holes))
	}
	return nil
}

func (a *Area) replaceHole(i int, hole Hole) error {
	old := a.holes[i]
	a.holes[i] = hole
	if err := a.regenerate(); err != nil {
		a.holes[i] = old
		return err
	}
	return nil
}

// Rebuild the mesh from the boundary and holes, then re-run the query. The
// mesh is only replaced if generation succeeds.
func (a *Area) regenerate() error {
	holes := make([][]Point, len(a.holes))
	for i, hole := range a.holes {
		holes[i] = hole.clockwise()
	}
	mesh, err := Generate(a.Boundary(), holes...)
	if err != nil {
		return err
	}
	a.mesh = mesh
	a.navigator.SetMesh(mesh)
	return a.query()
}

func (a *Area) query() error {
	path, err := a.navigator.FindPath(a.start, a.end, a.weight)
	if err != nil {
		return err
	}
	a.path = path
	return nil
}
