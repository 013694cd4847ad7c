// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/rastergeom/transform"
)

func TestProjectIdentity(t *testing.T) {
	p, ok := Project(transform.Identity4(), transform.V3(0.5, -0.25, 3))
	assert.True(t, ok)
	assert.InDelta(t, 0.5, p.X, 1e-12)
	assert.InDelta(t, -0.25, p.Y, 1e-12)
}

func TestProjectPerspective(t *testing.T) {
	eye := transform.V3(0, 0, 5)
	m := transform.Compose4(
		transform.Perspective(math.Pi/4, 1, 0.1, 100),
		transform.LookAt(eye, transform.V3(0, 0, 0), transform.V3(0, 1, 0)),
	)

	p, ok := Project(m, transform.V3(0, 0, 0))
	assert.True(t, ok)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)

	// Farther points appear closer to the center.
	near, ok := Project(m, transform.V3(1, 0, 2))
	assert.True(t, ok)
	far, ok := Project(m, transform.V3(1, 0, -2))
	assert.True(t, ok)
	assert.Greater(t, near.X, far.X)
	assert.Positive(t, far.X)

	_, ok = Project(m, eye)
	assert.False(t, ok, "point at the eye")
	_, ok = Project(m, transform.V3(0, 0, 10))
	assert.False(t, ok, "point behind the camera")
}

func TestProjectAll(t *testing.T) {
	m := transform.Compose4(
		transform.Perspective(math.Pi/2, 1, 1, 10),
		transform.LookAt(transform.V3(0, 0, 5), transform.V3(0, 0, 0), transform.V3(0, 1, 0)),
	)
	pts, visible := ProjectAll(m, []transform.Vec3{
		transform.V3(0, 0, 0),
		transform.V3(0, 0, 6),
	})
	assert.Len(t, pts, 2)
	assert.Equal(t, []bool{true, false}, visible)
}
