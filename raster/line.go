package raster

import (
	"math"

	"github.com/gogpu/rastergeom"
)

// maxSpan bounds every coordinate, radius and line span accepted by the
// rasterizers. Larger values return nil.
const maxSpan = 1 << 24

// inRange reports whether all vs are finite and within ±maxSpan.
func inRange(vs ...float64) bool {
	if !rastergeom.IsFinite(vs...) {
		return false
	}
	for _, v := range vs {
		if math.Abs(v) > maxSpan {
			return false
		}
	}
	return true
}

// DDA rasterizes the segment (x1,y1)-(x2,y2) with the digital differential
// analyzer: the longer axis advances one unit per sample and the other
// axis by the matching fraction, and each sample is rounded.
//
// Coincident endpoints give a single point.
func DDA(x1, y1, x2, y2 float64) []rastergeom.Point {
	if !inRange(x1, y1, x2, y2) {
		return nil
	}

	dx, dy := x2-x1, y2-y1
	steps := max(math.Abs(dx), math.Abs(dy))
	switch {
	case steps > maxSpan:
		return nil
	case steps == 0:
		return []rastergeom.Point{rastergeom.Pt(x1, y1).Round()}
	}

	// Non-integral spans are stretched to the next whole step count so the
	// last sample still lands on the end point.
	n := int(math.Ceil(steps))
	xInc := dx / float64(n)
	yInc := dy / float64(n)

	points := make([]rastergeom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := x1 + float64(i)*xInc
		y := y1 + float64(i)*yInc
		points = append(points, rastergeom.Pt(math.Round(x), math.Round(y)))
	}
	return points
}

// Bresenham rasterizes the segment (x1,y1)-(x2,y2) with Bresenham's
// integer line algorithm. Endpoints are rounded first.
//
// The algorithm always walks the major axis in increasing order: steep
// lines are transposed and the endpoints are swapped when the walk would
// run backwards, so for such lines the result starts at (x2,y2).
func Bresenham(x1, y1, x2, y2 float64) []rastergeom.Point {
	if !inRange(x1, y1, x2, y2) {
		return nil
	}

	ax, ay := int(math.Round(x1)), int(math.Round(y1))
	bx, by := int(math.Round(x2)), int(math.Round(y2))

	if max(abs(bx-ax), abs(by-ay)) > maxSpan {
		return nil
	}

	steep := abs(by-ay) > abs(bx-ax)
	if steep {
		ax, ay = ay, ax
		bx, by = by, bx
	}
	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	dx := bx - ax
	dy := abs(by - ay)
	yStep := 1
	if by < ay {
		yStep = -1
	}

	points := make([]rastergeom.Point, 0, dx+1)
	p := 2*dy - dx
	y := ay
	for x := ax; x <= bx; x++ {
		if steep {
			points = append(points, rastergeom.Pt(float64(y), float64(x)))
		} else {
			points = append(points, rastergeom.Pt(float64(x), float64(y)))
		}
		if p >= 0 {
			y += yStep
			p -= 2 * dx
		}
		p += 2 * dy
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
