package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/navmesh"
	"github.com/osuushi/navmesh/internal"
	"github.com/osuushi/navmesh/internal/scenario"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. Loads a scenario file, builds the mesh, and either
// answers a path query or renders the mesh.
//
//	navmesh path rooms.yaml --start 1,6 --end 19,6 --weight 2 --png out.png
//	navmesh render rooms.svg --out mesh.png --labels
var (
	app     = kingpin.New("navmesh", "Build navigation meshes and find paths across them.")
	verbose = app.Flag("verbose", "Log debug output from the mesh pipeline and search.").Short('v').Bool()
	logFile = app.Flag("log-file", "Also write JSON logs to this file, rotated when it grows.").String()

	pathCmd      = app.Command("path", "Find a path through a scenario.")
	pathScenario = pathCmd.Arg("scenario", "Scenario file (.yaml, .svg or text).").Required().ExistingFile()
	pathStart    = pointFlag(pathCmd.Flag("start", "Start point as x,y. Overrides the scenario."))
	pathEnd      = pointFlag(pathCmd.Flag("end", "End point as x,y. Overrides the scenario."))
	pathWeight   = weightFlag(pathCmd.Flag("weight", "Heuristic weight. 0 is Dijkstra, 1 is A*. Overrides the scenario."))
	pathPNG      = pathCmd.Flag("png", "Render the mesh, search and path to this file.").String()
	pathImgcat   = pathCmd.Flag("imgcat", "Print the rendering in the terminal (iTerm only).").Bool()
	pathScale    = pathCmd.Flag("scale", "Pixels per unit when rendering.").Default("20").Float64()
	pathNoSmooth = pathCmd.Flag("no-smooth", "Report and draw the unsmoothed path through edge midpoints.").Bool()
	pathHide     = pathCmd.Flag("hide-considered", "Leave the nodes the search considered out of the rendering.").Bool()

	renderCmd      = app.Command("render", "Render the mesh of a scenario.")
	renderScenario = renderCmd.Arg("scenario", "Scenario file (.yaml, .svg or text).").Required().ExistingFile()
	renderOut      = renderCmd.Flag("out", "Output PNG file.").Short('o').Default("navmesh.png").String()
	renderScale    = renderCmd.Flag("scale", "Pixels per unit.").Default("20").Float64()
	renderLabels   = renderCmd.Flag("labels", "Name every triangle.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose, *logFile)
	app.FatalIfError(err, "setting up logging")
	defer logger.Sync()
	navmesh.SetLogger(logger)

	switch command {
	case pathCmd.FullCommand():
		err = runPath()
	case renderCmd.FullCommand():
		err = runRender()
	}
	if err != nil {
		logger.Error("failed", zap.String("command", command), zap.Error(err))
		app.Fatalf("%v", err)
	}
}

func loadMesh(path string) (*scenario.Scenario, *navmesh.Mesh, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}
	mesh, err := navmesh.Generate(s.Boundary, s.Holes...)
	if err != nil {
		return nil, nil, err
	}
	return s, mesh, nil
}

func runPath() error {
	s, mesh, err := loadMesh(*pathScenario)
	if err != nil {
		return err
	}

	start, end := s.Start, s.End
	if pathStart.set {
		start = &pathStart.Point
	}
	if pathEnd.set {
		end = &pathEnd.Point
	}
	if start == nil || end == nil {
		return errors.New("no start or end point; pass --start and --end")
	}
	weight := 1.0
	if s.Weight != nil {
		weight = *s.Weight
	}
	if pathWeight.set {
		weight = pathWeight.weight
	}

	nav := navmesh.NewNavigator(mesh)
	result, err := nav.FindPath(*start, *end, weight)
	if err != nil {
		return err
	}
	printResult(result, nav.Stats(), !*pathNoSmooth)

	scene := pathScene(mesh, result, nav, start, end, !*pathNoSmooth, !*pathHide)
	if *pathPNG != "" {
		if err := scene.SavePNG(*pathPNG, *pathScale); err != nil {
			return errors.Wrap(err, "saving png")
		}
	}
	if *pathImgcat {
		return scene.DbgDraw(*pathScale)
	}
	return nil
}

func pathScene(mesh *navmesh.Mesh, result *navmesh.PathResult, nav *navmesh.Navigator, start, end *navmesh.Point, smooth, showConsidered bool) internal.Scene {
	scene := internal.Scene{
		Mesh:    mesh,
		Path:    result,
		Start:   start,
		End:     end,
		RawOnly: !smooth,
	}
	if showConsidered {
		scene.Considered = nav.Considered()
		scene.Visited = nav.Visited()
	}
	return scene
}

func runRender() error {
	_, mesh, err := loadMesh(*renderScenario)
	if err != nil {
		return err
	}
	scene := internal.Scene{Mesh: mesh, Labels: *renderLabels}
	if err := scene.SavePNG(*renderOut, *renderScale); err != nil {
		return errors.Wrap(err, "saving png")
	}
	fmt.Printf("Wrote %d triangles to %s\n", len(mesh.Triangles), *renderOut)
	return nil
}

func printResult(result *navmesh.PathResult, stats navmesh.Stats, smooth bool) {
	if !result.Exists {
		fmt.Println("No path")
		return
	}
	fmt.Printf("Triangles: %d\n", len(result.Nodes))
	fmt.Printf("Expanded: %d of %d pushed\n", stats.Popped, stats.Pushed)
	fmt.Printf("Raw length: %.3f\n", result.RawLength())
	if smooth {
		fmt.Printf("Smoothed length: %.3f\n", result.SmoothedLength())
	}
	fmt.Println(formatPath(result, smooth))
}

func formatPath(result *navmesh.PathResult, smooth bool) string {
	path := result.Raw
	if smooth {
		path = result.Smoothed
	}
	points := make([]string, len(path))
	for i, p := range path {
		points[i] = p.String()
	}
	return strings.Join(points, " -> ")
}

// A kingpin value for "x,y" points that remembers whether it was given.
type pointValue struct {
	navmesh.Point
	set bool
}

func pointFlag(flag *kingpin.FlagClause) *pointValue {
	value := &pointValue{}
	flag.SetValue(value)
	return value
}

func (v *pointValue) Set(s string) error {
	coords := strings.Split(s, ",")
	if len(coords) != 2 {
		return errors.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return errors.Wrap(err, "invalid y")
	}
	v.Point = navmesh.Point{X: x, Y: y}
	v.set = true
	return nil
}

func (v *pointValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%g,%g", v.X, v.Y)
}

type weightValue struct {
	weight float64
	set    bool
}

func weightFlag(flag *kingpin.FlagClause) *weightValue {
	value := &weightValue{}
	flag.SetValue(value)
	return value
}

func (v *weightValue) Set(s string) error {
	weight, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrap(err, "invalid weight")
	}
	v.weight = weight
	v.set = true
	return nil
}

func (v *weightValue) String() string {
	return strconv.FormatFloat(v.weight, 'g', -1, 64)
}
