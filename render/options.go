// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/rastergeom"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, _ := render.NewCanvas(400, 400,
//	    render.WithOrigin(20, 380),
//	    render.WithUnit(4),
//	    render.WithBackground(render.White),
//	)
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	origin     rastergeom.Point
	centered   bool
	unit       float64
	background color.Color
	pointSize  int
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		centered:   true, // origin at the canvas center
		unit:       1,
		background: Black,
		pointSize:  1,
	}
}

// WithOrigin places the world origin at pixel (x, y).
// The default is the center of the canvas.
func WithOrigin(x, y float64) Option {
	return func(o *canvasOptions) {
		o.origin = rastergeom.Pt(x, y)
		o.centered = false
	}
}

// WithUnit sets the number of pixels per world unit. It must be positive
// and finite; NewCanvas rejects other values.
func WithUnit(pixels float64) Option {
	return func(o *canvasOptions) {
		o.unit = pixels
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithPointSize sets the side length in pixels of the square drawn by Plot.
// Values below 1 are treated as 1.
func WithPointSize(n int) Option {
	return func(o *canvasOptions) {
		o.pointSize = max(n, 1)
	}
}
