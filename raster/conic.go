package raster

import (
	"math"

	"github.com/gogpu/rastergeom"
)

// MidpointCircle rasterizes the circle of radius r centred at (xc,yc)
// using the integer midpoint algorithm. One octant is walked from (0,r)
// until x passes y, and all eight symmetric points are emitted per step.
//
// Centre and radius are rounded first. A negative radius returns nil and
// a zero radius returns the centre alone.
func MidpointCircle(xc, yc, r float64) []rastergeom.Point {
	if !inRange(xc, yc, r) {
		return nil
	}
	cx, cy, radius := math.Round(xc), math.Round(yc), int(math.Round(r))
	switch {
	case radius < 0:
		return nil
	case radius == 0:
		return []rastergeom.Point{rastergeom.Pt(cx, cy)}
	}

	// One step per x in [0, r/√2], eight points each.
	points := make([]rastergeom.Point, 0, 8*(radius*3/4+2))

	x, y := 0, radius
	p := 1 - radius
	for x <= y {
		fx, fy := float64(x), float64(y)
		points = append(points,
			rastergeom.Pt(cx+fx, cy+fy), rastergeom.Pt(cx-fx, cy+fy),
			rastergeom.Pt(cx+fx, cy-fy), rastergeom.Pt(cx-fx, cy-fy),
			rastergeom.Pt(cx+fy, cy+fx), rastergeom.Pt(cx-fy, cy+fx),
			rastergeom.Pt(cx+fy, cy-fx), rastergeom.Pt(cx-fy, cy-fx),
		)
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
	return points
}

// MidpointEllipse rasterizes the axis-aligned ellipse with radii rx, ry
// centred at (xc,yc) using the two-region midpoint algorithm.
//
// Region 1 covers the part of the first quadrant where the slope magnitude
// is below 1 and steps x; region 2 steps y down to the major axis. The
// switch happens where 2·ry²·x reaches 2·rx²·y. Each step emits the four
// quadrant-symmetric points.
//
// Centre and radii are rounded first. A negative radius returns nil. When
// exactly one radius is zero the ellipse is flat and is returned as the
// segment between its extrema; when both are zero the centre is returned.
func MidpointEllipse(xc, yc, rx, ry float64) []rastergeom.Point {
	if !inRange(xc, yc, rx, ry) {
		return nil
	}
	cx, cy := math.Round(xc), math.Round(yc)
	a, b := math.Round(rx), math.Round(ry)
	switch {
	case a < 0 || b < 0:
		return nil
	case a == 0 && b == 0:
		return []rastergeom.Point{rastergeom.Pt(cx, cy)}
	case a == 0 || b == 0:
		return Bresenham(cx-a, cy-b, cx+a, cy+b)
	}

	rx2, ry2 := a*a, b*b
	points := make([]rastergeom.Point, 0, 4*int(a+b+2))
	quad := func(x, y float64) {
		points = append(points,
			rastergeom.Pt(cx+x, cy+y), rastergeom.Pt(cx-x, cy+y),
			rastergeom.Pt(cx+x, cy-y), rastergeom.Pt(cx-x, cy-y),
		)
	}

	x, y := 0.0, b

	// Region 1
	p := ry2 - rx2*b + 0.25*rx2
	for 2*ry2*x < 2*rx2*y {
		quad(x, y)
		x++
		if p < 0 {
			p += 2*ry2*x + ry2
		} else {
			y--
			p += 2*ry2*x - 2*rx2*y + ry2
		}
	}

	// Region 2
	p = ry2*(x+0.5)*(x+0.5) + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		quad(x, y)
		y--
		if p > 0 {
			p += -2*rx2*y + rx2
		} else {
			x++
			p += 2*ry2*x - 2*rx2*y + rx2
		}
	}
	return points
}
