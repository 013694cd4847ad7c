package clip

import (
	"cmp"
	"math"
	"slices"

	"github.com/gogpu/rastergeom"
)

// Edge identifies one side of the clip window.
type Edge uint8

// Window edges, in the order intersections are searched and reported.
const (
	EdgeLeft Edge = iota
	EdgeBottom
	EdgeRight
	EdgeTop
)

// numEdges is the number of window edges.
const numEdges = 4

// parallelEpsilon is the smallest |dx| or |dy| for which a segment is
// intersected with a vertical or horizontal window edge.
const parallelEpsilon = 1e-4

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	default:
		return "unknown"
	}
}

// Intersection is a point where a segment crosses a window edge.
type Intersection struct {
	rastergeom.Point
	Edge Edge
}

// BorderSegment is a piece of the window boundary lying on Edge between
// two consecutive crossings of the input geometry.
type BorderSegment struct {
	Start, End rastergeom.Point
	Edge       Edge
}

// Segment is a line segment given by its endpoints.
type Segment struct {
	P0, P1 rastergeom.Point
}

// Intersections returns the points where the segment p1-p2 crosses the
// boundary of w, at most one per edge, in edge order.
//
// Only segments with exactly one endpoint inside the window are
// considered; a segment entirely inside or entirely outside yields nil.
// Near-parallel crossings (|delta| <= 1e-4) are ignored.
func Intersections(p1, p2 rastergeom.Point, w Window) []Intersection {
	if w.Contains(p1) == w.Contains(p2) {
		return nil
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	var out []Intersection
	if straddles(p1.X, p2.X, w.XMin) && math.Abs(dx) > parallelEpsilon {
		y := p1.Y + (w.XMin-p1.X)/dx*dy
		if y >= w.YMin && y <= w.YMax {
			out = append(out, Intersection{Point: rastergeom.Pt(w.XMin, y), Edge: EdgeLeft})
		}
	}
	if straddles(p1.Y, p2.Y, w.YMin) && math.Abs(dy) > parallelEpsilon {
		x := p1.X + (w.YMin-p1.Y)/dy*dx
		if x >= w.XMin && x <= w.XMax {
			out = append(out, Intersection{Point: rastergeom.Pt(x, w.YMin), Edge: EdgeBottom})
		}
	}
	if straddles(p1.X, p2.X, w.XMax) && math.Abs(dx) > parallelEpsilon {
		y := p1.Y + (w.XMax-p1.X)/dx*dy
		if y >= w.YMin && y <= w.YMax {
			out = append(out, Intersection{Point: rastergeom.Pt(w.XMax, y), Edge: EdgeRight})
		}
	}
	if straddles(p1.Y, p2.Y, w.YMax) && math.Abs(dy) > parallelEpsilon {
		x := p1.X + (w.YMax-p1.Y)/dy*dx
		if x >= w.XMin && x <= w.XMax {
			out = append(out, Intersection{Point: rastergeom.Pt(x, w.YMax), Edge: EdgeTop})
		}
	}
	return out
}

// straddles reports whether a and b lie on different sides of the line
// v = edge, where the edge itself counts as the upper side.
func straddles(a, b, edge float64) bool {
	return (a < edge && b >= edge) || (a >= edge && b < edge)
}

// BorderSegments returns the pieces of the window boundary between
// successive crossings of the closed polygon through the given vertices
// (the last vertex connects back to the first).
//
// Crossings are grouped by edge, sorted along the edge, and paired
// (0,1), (2,3), ... into segments. An unpaired last crossing on an edge is
// dropped. The result is grouped by edge in Left, Bottom, Right, Top order.
// A polygon that never crosses the boundary yields nil.
func BorderSegments(polygon []rastergeom.Point, w Window) []BorderSegment {
	if len(polygon) < 2 {
		return nil
	}
	var hits []Intersection
	for i, p := range polygon {
		next := polygon[(i+1)%len(polygon)]
		hits = append(hits, Intersections(p, next, w)...)
	}
	return pairCrossings(hits)
}

// LineBorderSegments is like [BorderSegments] for a set of independent
// segments: each segment contributes its own crossings and no segment is
// connected to the next.
func LineBorderSegments(lines []Segment, w Window) []BorderSegment {
	var hits []Intersection
	for _, l := range lines {
		hits = append(hits, Intersections(l.P0, l.P1, w)...)
	}
	return pairCrossings(hits)
}

// pairCrossings buckets crossings by edge, sorts each bucket along its edge
// and pairs consecutive crossings.
func pairCrossings(hits []Intersection) []BorderSegment {
	if len(hits) < 2 {
		return nil
	}

	var buckets [numEdges][]rastergeom.Point
	for _, h := range hits {
		buckets[h.Edge] = append(buckets[h.Edge], h.Point)
	}

	var out []BorderSegment
	for e := range Edge(numEdges) {
		pts := buckets[e]
		if len(pts) < 2 {
			continue
		}
		vertical := e == EdgeLeft || e == EdgeRight
		slices.SortStableFunc(pts, func(a, b rastergeom.Point) int {
			if vertical {
				return cmp.Compare(a.Y, b.Y)
			}
			return cmp.Compare(a.X, b.X)
		})
		for i := 0; i+1 < len(pts); i += 2 {
			out = append(out, BorderSegment{Start: pts[i], End: pts[i+1], Edge: e})
		}
	}
	return out
}
