package internal

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/navmesh/internal/dbg"
)

// Padding around the mesh, in pixels
const drawPadding = 40

// Everything that can be drawn for one query against a mesh. Any field may be
// left empty.
type Scene struct {
	Mesh       *Mesh
	Path       *PathResult
	Considered []Segment
	Visited    []Segment
	Start, End *Point
	// Print a readable name in every triangle
	Labels bool
	// Draw the raw path as the result and leave out the smoothed one
	RawOnly bool
}

// Render the scene. Scale is in pixels per mesh unit.
func (s Scene) Draw(scale float64) *gg.Context {
	minX, minY, maxX, maxY := s.bounds()

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale and
	// move the minimum corner to the origin
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	lineWidth := 2 / scale
	if s.Mesh != nil {
		s.drawMesh(c, lineWidth)
	}
	c.SetRGBA(1, 0.6, 0, 0.6)
	s.drawSegments(c, s.Considered, lineWidth)
	c.SetRGBA(1, 0.2, 0.2, 0.9)
	s.drawSegments(c, s.Visited, lineWidth)
	if s.Path != nil && s.Path.Exists && s.RawOnly {
		c.SetRGB(1, 1, 1)
		drawPolyline(c, s.Path.Raw, lineWidth*1.5)
	} else if s.Path != nil && s.Path.Exists {
		c.SetRGB(0.4, 0.4, 1)
		c.SetDash(6/scale, 4/scale)
		drawPolyline(c, s.Path.Raw, lineWidth)
		c.SetDash()
		c.SetRGB(1, 1, 1)
		drawPolyline(c, s.Path.Smoothed, lineWidth*1.5)
	}

	markerSize := 6 / scale
	if s.Start != nil {
		c.SetRGB(0, 1, 0)
		c.DrawRectangle(s.Start.X-markerSize, s.Start.Y-markerSize, markerSize*2, markerSize*2)
		c.Fill()
	}
	if s.End != nil {
		c.SetRGB(1, 0, 0)
		c.DrawRegularPolygon(3, s.End.X, s.End.Y, markerSize*1.5, 0)
		c.Fill()
	}
	return c
}

func (s Scene) drawMesh(c *gg.Context, lineWidth float64) {
	// Fill the triangles, then stroke them
	for _, tri := range s.Mesh.Triangles {
		pts := tri.Points()
		tracePolygon(c, pts[:])
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
	}
	c.SetLineWidth(lineWidth)
	for _, tri := range s.Mesh.Triangles {
		for k, edge := range tri.Edges {
			if tri.Neighbors[k] == NoNeighbor {
				c.SetRGB(1, 1, 0)
			} else {
				c.SetRGBA(0, 1, 0, 0.5)
			}
			c.DrawLine(edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
			c.Stroke()
		}
	}

	if !s.Labels {
		return
	}
	c.SetRGB(1, 1, 1)
	for _, tri := range s.Mesh.Triangles {
		center := tri.Centroid()
		// Text has to be drawn in native coordinates, or it comes out upside down
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(tri), x, y, 0.5, 0.5)
		c.Pop()
	}
}

func (s Scene) drawSegments(c *gg.Context, segments []Segment, lineWidth float64) {
	c.SetLineWidth(lineWidth)
	for _, segment := range segments {
		c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
		c.Stroke()
	}
}

func drawPolyline(c *gg.Context, points []Point, lineWidth float64) {
	if len(points) < 2 {
		return
	}
	c.SetLineWidth(lineWidth)
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}

func tracePolygon(c *gg.Context, points []Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	include := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if s.Mesh != nil {
		for _, tri := range s.Mesh.Triangles {
			for _, p := range tri.Points() {
				include(p)
			}
		}
	}
	for _, p := range []*Point{s.Start, s.End} {
		if p != nil {
			include(*p)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

func (s Scene) EncodePNG(w io.Writer, scale float64) error {
	return s.Draw(scale).EncodePNG(w)
}

func (s Scene) SavePNG(path string, scale float64) error {
	return s.Draw(scale).SavePNG(path)
}

// Draw the scene and print it in the terminal (iTerm only).
func (s Scene) DbgDraw(scale float64) error {
	path := filepath.Join(os.TempDir(), "navmesh.png")
	if err := s.SavePNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
