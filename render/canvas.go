// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/clip"
	"github.com/gogpu/rastergeom/raster"
)

// Errors returned by NewCanvas.
var (
	ErrInvalidSize = errors.New("render: invalid canvas size")
	ErrInvalidUnit = errors.New("render: invalid unit")
)

// Canvas is a CPU-backed drawing surface addressed in world coordinates.
type Canvas struct {
	img       *image.RGBA
	origin    rastergeom.Point
	unit      float64
	pointSize int

	// face is created on the first Label call.
	face font.Face
}

// NewCanvas creates a width×height canvas cleared to the background color.
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.unit > 0) || math.IsInf(o.unit, 1) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidUnit, o.unit)
	}
	if o.centered {
		o.origin = rastergeom.Pt(float64(width)/2, float64(height)/2)
	}

	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		origin:    o.origin,
		unit:      o.unit,
		pointSize: o.pointSize,
	}
	c.Clear(o.background)
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the underlying image. It shares memory with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// ToPixel maps a world point to continuous pixel coordinates.
func (c *Canvas) ToPixel(p rastergeom.Point) rastergeom.Point {
	return rastergeom.Pt(c.origin.X+p.X*c.unit, c.origin.Y-p.Y*c.unit)
}

// ToWorld is the inverse of ToPixel.
func (c *Canvas) ToWorld(px rastergeom.Point) rastergeom.Point {
	return rastergeom.Pt((px.X-c.origin.X)/c.unit, (c.origin.Y-px.Y)/c.unit)
}

// SetPixel sets a single pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.Set(x, y, col)
}

// Plot draws every point as a square of the configured point size.
// Non-finite points are skipped.
func (c *Canvas) Plot(pts []rastergeom.Point, col color.Color) {
	half := (c.pointSize - 1) / 2
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		px := c.ToPixel(p).Round()
		x0, y0 := int(px.X)-half, int(px.Y)-half
		for dy := range c.pointSize {
			for dx := range c.pointSize {
				c.SetPixel(x0+dx, y0+dy, col)
			}
		}
	}
}

// Line draws a one-pixel line between two world points. The segment is
// clipped to the canvas first and then rasterized with Bresenham's
// algorithm in pixel space.
func (c *Canvas) Line(a, b rastergeom.Point, col color.Color) {
	ok, pa, pb := clip.ClipSegment(c.ToPixel(a), c.ToPixel(b), c.pixelWindow())
	if !ok {
		return
	}
	for _, p := range raster.Bresenham(pa.X, pa.Y, pb.X, pb.Y) {
		c.SetPixel(int(p.X), int(p.Y), col)
	}
}

// pixelWindow is the canvas extent in pixel coordinates, one pixel wider
// on every side so that rounding at the border still lands on the canvas.
func (c *Canvas) pixelWindow() clip.Window {
	return clip.Window{XMin: -1, YMin: -1, XMax: float64(c.Width()), YMax: float64(c.Height())}
}

// Polyline connects consecutive points. When closed is true the last point
// is joined back to the first.
func (c *Canvas) Polyline(pts []rastergeom.Point, closed bool, col color.Color) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], col)
	}
	if closed && len(pts) > 2 {
		c.Line(pts[len(pts)-1], pts[0], col)
	}
}

// Segments draws each segment independently.
func (c *Canvas) Segments(segs []clip.Segment, col color.Color) {
	for _, s := range segs {
		c.Line(s.P0, s.P1, col)
	}
}

// Window outlines a clip window.
func (c *Canvas) Window(w clip.Window, col color.Color) {
	corners := w.Corners()
	c.Polyline(corners[:], true, col)
}

// Axes draws the world x and y axes across the whole canvas.
func (c *Canvas) Axes(col color.Color) {
	o := c.origin.Round()
	x, y := int(o.X), int(o.Y)
	for px := range c.Width() {
		c.SetPixel(px, y, col)
	}
	for py := range c.Height() {
		c.SetPixel(x, py, col)
	}
}
