// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws rasterized geometry onto an in-memory canvas and
// writes it as PNG.
//
// The geometry packages (raster, clip, transform) produce plain point
// sequences, segments and matrices. A [Canvas] receives them in world
// coordinates, maps them to pixels and stores the result in an
// *image.RGBA.
//
// # Coordinate system
//
// World coordinates are y-up. The world origin sits at a configurable pixel
// position (the canvas center by default) and one world unit spans a
// configurable number of pixels:
//
//	px = origin.X + x*unit
//	py = origin.Y - y*unit
//
// # Usage
//
//	c, err := render.NewCanvas(800, 600, render.WithUnit(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.Axes(render.Gray)
//	c.Plot(raster.MidpointCircle(0, 0, 20), render.Blue)
//	if err := c.SavePNG("circle.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// A Canvas is not safe for concurrent use.
package render
