package clip

import (
	"errors"
	"fmt"

	"github.com/gogpu/rastergeom"
)

// ErrInvalidWindow is returned when a window's minimum is not strictly
// below its maximum on both axes, or a bound is not finite.
var ErrInvalidWindow = errors.New("clip: invalid window")

// Window is an axis-aligned clip rectangle.
// XMin < XMax and YMin < YMax must hold; use [NewWindow] or
// [Window.Validate] to check values that come from user input.
type Window struct {
	XMin, YMin float64
	XMax, YMax float64
}

// NewWindow creates a Window from its bounds.
func NewWindow(xmin, ymin, xmax, ymax float64) (Window, error) {
	w := Window{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate reports whether the window is well formed.
func (w Window) Validate() error {
	if !rastergeom.IsFinite(w.XMin, w.YMin, w.XMax, w.YMax) {
		return fmt.Errorf("%w: non-finite bounds %v", ErrInvalidWindow, w)
	}
	if w.XMin >= w.XMax || w.YMin >= w.YMax {
		return fmt.Errorf("%w: min (%g,%g) must be below max (%g,%g)",
			ErrInvalidWindow, w.XMin, w.YMin, w.XMax, w.YMax)
	}
	return nil
}

// Width returns XMax - XMin.
func (w Window) Width() float64 {
	return w.XMax - w.XMin
}

// Height returns YMax - YMin.
func (w Window) Height() float64 {
	return w.YMax - w.YMin
}

// Contains returns true if p lies inside the window or on its boundary.
func (w Window) Contains(p rastergeom.Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// Corners returns the window corners counter-clockwise starting at the
// lower-left one, which is the order used to draw the outline as a loop.
func (w Window) Corners() [4]rastergeom.Point {
	return [4]rastergeom.Point{
		{X: w.XMin, Y: w.YMin},
		{X: w.XMax, Y: w.YMin},
		{X: w.XMax, Y: w.YMax},
		{X: w.XMin, Y: w.YMax},
	}
}

// Edge returns the two endpoints of a window edge, ordered by increasing
// coordinate along the edge.
func (w Window) Edge(e Edge) (rastergeom.Point, rastergeom.Point) {
	switch e {
	case EdgeLeft:
		return rastergeom.Pt(w.XMin, w.YMin), rastergeom.Pt(w.XMin, w.YMax)
	case EdgeBottom:
		return rastergeom.Pt(w.XMin, w.YMin), rastergeom.Pt(w.XMax, w.YMin)
	case EdgeRight:
		return rastergeom.Pt(w.XMax, w.YMin), rastergeom.Pt(w.XMax, w.YMax)
	default:
		return rastergeom.Pt(w.XMin, w.YMax), rastergeom.Pt(w.XMax, w.YMax)
	}
}

// IsInside returns true if p lies inside w or on its boundary.
// It is the predicate used to decide whether a segment crosses the window.
func IsInside(p rastergeom.Point, w Window) bool {
	return w.Contains(p)
}
