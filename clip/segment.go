package clip

import "github.com/gogpu/rastergeom"

// maxClipSteps bounds the Cohen-Sutherland loop. Each step moves one
// endpoint onto a window edge and removes at least one violated half-plane,
// so two endpoints with at most two bits each need no more than four.
const maxClipSteps = 4

// ClipSegment clips the segment p1-p2 to w using the Cohen-Sutherland
// algorithm.
//
// It returns accept=false if no part of the segment lies in the window;
// the returned points are then the unmodified inputs. Otherwise q1 and q2
// are the clipped endpoints, in the same order as p1 and p2. A segment
// entirely inside the window is returned unchanged.
//
// Edges are tested in the order Top, Bottom, Right, Left. Non-finite
// input and a zero denominator on the offending edge reject the segment,
// so the result never carries NaN or Inf.
func ClipSegment(p1, p2 rastergeom.Point, w Window) (accept bool, q1, q2 rastergeom.Point) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return false, p1, p2
	}

	a, b := p1, p2
	codeA := ComputeOutCode(a, w)
	codeB := ComputeOutCode(b, w)

	for range maxClipSteps + 1 {
		if (codeA | codeB) == Inside {
			// Both inside - trivially accept
			return true, a, b
		}
		if (codeA & codeB) != 0 {
			// Both outside the same half-plane - trivially reject
			return false, p1, p2
		}

		codeOut := codeA
		if codeOut == Inside {
			codeOut = codeB
		}

		p, ok := edgeIntersection(a, b, codeOut, w)
		if !ok {
			return false, p1, p2
		}

		if codeOut == codeA {
			a = p
			codeA = ComputeOutCode(a, w)
		} else {
			b = p
			codeB = ComputeOutCode(b, w)
		}
	}

	return false, p1, p2
}

// edgeIntersection intersects the line through a and b with the first
// window edge named in code, in priority order Top, Bottom, Right, Left.
// It returns false when the line is parallel to that edge.
func edgeIntersection(a, b rastergeom.Point, code OutCode, w Window) (rastergeom.Point, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	switch {
	case code&Top != 0:
		if dy == 0 {
			return rastergeom.Point{}, false
		}
		return rastergeom.Pt(a.X+dx*(w.YMax-a.Y)/dy, w.YMax), true
	case code&Bottom != 0:
		if dy == 0 {
			return rastergeom.Point{}, false
		}
		return rastergeom.Pt(a.X+dx*(w.YMin-a.Y)/dy, w.YMin), true
	case code&Right != 0:
		if dx == 0 {
			return rastergeom.Point{}, false
		}
		return rastergeom.Pt(w.XMax, a.Y+dy*(w.XMax-a.X)/dx), true
	case code&Left != 0:
		if dx == 0 {
			return rastergeom.Point{}, false
		}
		return rastergeom.Pt(w.XMin, a.Y+dy*(w.XMin-a.X)/dx), true
	}
	return rastergeom.Point{}, false
}
