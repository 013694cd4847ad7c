package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/clip"
	"github.com/gogpu/rastergeom/raster"
	"github.com/gogpu/rastergeom/render"
	"github.com/gogpu/rastergeom/transform"
)

// config holds the parsed scene parameters.
type config struct {
	width, height int

	dda       [4]float64
	bresenham [4]float64
	circle    [3]float64
	ellipse   [4]float64

	window  clip.Window
	lines   []clip.Segment
	polygon []rastergeom.Point

	ops   []transform.Op
	shape []rastergeom.Point
	model string
}

// stats counts what a scene drew.
type stats struct {
	points   int
	segments int
}

// scene renders one picture.
type scene struct {
	name string
	draw func(cfg *config) (*render.Canvas, stats, error)
}

var scenes = []scene{
	{"primitives", drawPrimitives},
	{"clipping", drawClipping},
	{"polygon", drawPolygon},
	{"transform2d", drawTransform2D},
	{"transform3d", drawTransform3D},
}

func findScene(name string) (scene, bool) {
	for _, s := range scenes {
		if s.name == name {
			return s, true
		}
	}
	return scene{}, false
}

var (
	background = color.RGBA{R: 13, G: 13, B: 26, A: 255}
	dimRed     = color.RGBA{R: 255, G: 51, B: 51, A: 255}
)

// drawPrimitives plots the four scan-conversion algorithms in pixel units
// around the canvas center.
func drawPrimitives(cfg *config) (*render.Canvas, stats, error) {
	c, err := render.NewCanvas(cfg.width, cfg.height, render.WithPointSize(2))
	if err != nil {
		return nil, stats{}, err
	}
	c.Axes(render.Gray)

	d, b := cfg.dda, cfg.bresenham
	layers := []struct {
		pts []rastergeom.Point
		col color.Color
	}{
		{raster.DDA(d[0], d[1], d[2], d[3]), render.Red},
		{raster.Bresenham(b[0], b[1], b[2], b[3]), render.Green},
		{raster.MidpointCircle(cfg.circle[0], cfg.circle[1], cfg.circle[2]), render.Blue},
		{raster.MidpointEllipse(cfg.ellipse[0], cfg.ellipse[1], cfg.ellipse[2], cfg.ellipse[3]), render.Yellow},
	}

	var st stats
	for _, l := range layers {
		c.Plot(l.pts, l.col)
		st.points += len(l.pts)
	}
	return c, st, c.Caption("DDA (red)  Bresenham (green)  circle (blue)  ellipse (yellow)", render.White)
}

// ndcCanvas creates a canvas whose world square [-1, 1] fits the shorter
// side, for scenes specified in normalized coordinates.
func ndcCanvas(cfg *config) (*render.Canvas, error) {
	unit := float64(min(cfg.width, cfg.height)) / 2
	return render.NewCanvas(cfg.width, cfg.height,
		render.WithUnit(unit),
		render.WithBackground(background),
	)
}

// drawClipping shows Cohen–Sutherland line clipping: full lines in gray,
// accepted parts in red and the window border between crossings in red.
func drawClipping(cfg *config) (*render.Canvas, stats, error) {
	c, err := ndcCanvas(cfg)
	if err != nil {
		return nil, stats{}, err
	}
	c.Window(cfg.window, render.White)

	border := clip.LineBorderSegments(cfg.lines, cfg.window)
	for _, s := range border {
		c.Line(s.Start, s.End, render.Red)
	}

	st := stats{segments: len(border)}
	for _, l := range cfg.lines {
		c.Line(l.P0, l.P1, render.Gray)
		if ok, q1, q2 := clip.ClipSegment(l.P0, l.P1, cfg.window); ok {
			c.Line(q1, q2, dimRed)
			st.segments++
		}
	}
	return c, st, c.Caption("Cohen-Sutherland line clipping", render.White)
}

// drawPolygon colors polygon edges by their position relative to the
// window and draws the border segments enclosed by the polygon.
func drawPolygon(cfg *config) (*render.Canvas, stats, error) {
	c, err := ndcCanvas(cfg)
	if err != nil {
		return nil, stats{}, err
	}
	c.Window(cfg.window, render.White)

	border := clip.BorderSegments(cfg.polygon, cfg.window)
	for _, s := range border {
		c.Line(s.Start, s.End, render.Red)
	}
	st := stats{segments: len(border)}

	n := len(cfg.polygon)
	for i := range n {
		p1, p2 := cfg.polygon[i], cfg.polygon[(i+1)%n]
		in1, in2 := clip.IsInside(p1, cfg.window), clip.IsInside(p2, cfg.window)
		switch {
		case in1 && in2:
			c.Line(p1, p2, render.Red)
		case !in1 && !in2:
			c.Line(p1, p2, render.Gray)
		default:
			c.Line(p1, p2, render.Gray)
			if ok, q1, q2 := clip.ClipSegment(p1, p2, cfg.window); ok {
				c.Line(q1, q2, render.Red)
			}
		}
	}
	return c, st, c.Caption("polygon border segments", render.White)
}

// drawTransform2D draws the shape before (green) and after (red) the
// composed transform.
func drawTransform2D(cfg *config) (*render.Canvas, stats, error) {
	m, err := transform.Chain(cfg.ops...)
	if err != nil {
		return nil, stats{}, err
	}
	c, err := render.NewCanvas(cfg.width, cfg.height)
	if err != nil {
		return nil, stats{}, err
	}
	c.Axes(render.Gray)

	moved := m.TransformPoints(cfg.shape)
	c.Polyline(cfg.shape, true, render.Green)
	c.Polyline(moved, true, render.Red)

	rastergeom.Logger().Debug("rasterdemo: transform2d", "matrix", m.String())
	st := stats{points: len(moved), segments: 2 * len(moved)}
	return c, st, c.Caption(fmt.Sprintf("transform %v", cfg.ops), render.White)
}

// cubeVertices and cubeEdges describe a unit cube centered at the origin.
var (
	cubeVertices = []transform.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
	}
	cubeEdges = [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// modelOffset moves the transformed cube to the right of the reference cube.
var modelOffset = transform.Translate3D(2, 0, 0)

// models are the 3D model transforms selectable with -model.
var models = map[string]transform.Matrix4{
	"translate": modelOffset,
	"rotate":    transform.Compose4(modelOffset, transform.RotateY(0.8), transform.RotateX(0.5)),
	"scale":     transform.Compose4(modelOffset, transform.Scale3D(0.5, 1.5, 0.5)),
	"shear":     transform.Compose4(modelOffset, transform.Shear3D(transform.Shear{XY: 0.5})),
}

// drawTransform3D projects a reference cube and a transformed cube through
// a perspective camera.
func drawTransform3D(cfg *config) (*render.Canvas, stats, error) {
	model, ok := models[cfg.model]
	if !ok {
		return nil, stats{}, fmt.Errorf("unknown model %q", cfg.model)
	}

	aspect := float64(cfg.width) / float64(cfg.height)
	viewProj := transform.Compose4(
		transform.Perspective(45*math.Pi/180, aspect, 0.1, 100),
		transform.LookAt(transform.V3(0, 0, 5), transform.V3(0, 0, 0), transform.V3(0, 1, 0)),
	)

	// NDC y spans the height; x is widened by the aspect ratio.
	c, err := render.NewCanvas(cfg.width, cfg.height,
		render.WithUnit(float64(cfg.height)/2),
		render.WithBackground(background),
	)
	if err != nil {
		return nil, stats{}, err
	}

	var st stats
	for _, cube := range []struct {
		m   transform.Matrix4
		col color.Color
	}{
		{transform.Identity4(), render.Gray},
		{model, render.Green},
	} {
		pts, visible := render.ProjectAll(viewProj.Mul(cube.m), cubeVertices)
		for _, e := range cubeEdges {
			a, b := e[0], e[1]
			if !visible[a] || !visible[b] {
				continue
			}
			c.Line(
				rastergeom.Pt(pts[a].X*aspect, pts[a].Y),
				rastergeom.Pt(pts[b].X*aspect, pts[b].Y),
				cube.col,
			)
			st.segments++
		}
		st.points += len(pts)
	}
	return c, st, c.Caption("3D "+cfg.model, render.White)
}
