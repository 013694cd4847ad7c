// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/transform"
)

// Project applies m to v and performs the perspective divide, returning
// normalized device x and y. ok is false when the point lies on or behind
// the camera plane (w <= 0) or the result is not finite; such points must
// not be drawn.
func Project(m transform.Matrix4, v transform.Vec3) (p rastergeom.Point, ok bool) {
	x, y, _, w := m.MulVec4(v.X, v.Y, v.Z, 1)
	if !(w > 0) {
		return rastergeom.Point{}, false
	}
	p = rastergeom.Pt(x/w, y/w)
	return p, p.IsFinite()
}

// ProjectAll projects every vertex. Vertices that cannot be projected are
// reported as false in the returned mask.
func ProjectAll(m transform.Matrix4, vs []transform.Vec3) ([]rastergeom.Point, []bool) {
	pts := make([]rastergeom.Point, len(vs))
	visible := make([]bool, len(vs))
	for i, v := range vs {
		pts[i], visible[i] = Project(m, v)
	}
	return pts, visible
}
