// Package rastergeom provides the geometry core of a small 2D/3D raster
// graphics toolkit.
//
// # Overview
//
// rastergeom turns continuous primitives into pixels and builds the
// matrices that place them in a scene. It is split into small packages
// that depend only on the [Point] type defined here:
//
//   - raster: DDA and Bresenham lines, midpoint circles and ellipses
//   - clip: Cohen-Sutherland outcodes and segment clipping against a
//     rectangular window, plus border segments between crossings
//   - transform: 3x3 (2D) and 4x4 (3D) matrices, composition, perspective
//     and look-at
//   - render: a software canvas that receives the produced points and
//     matrices and writes PNG images
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/rastergeom/clip"
//		"github.com/gogpu/rastergeom/raster"
//	)
//
//	line := raster.Bresenham(0, 0, 40, 15)
//
//	w, _ := clip.NewWindow(-1, -1, 1, 1)
//	ok, p0, p1 := clip.ClipSegment(rastergeom.Pt(-2, 0), rastergeom.Pt(2, 0), w)
//
// # Coordinate System
//
// The geometry packages use mathematical coordinates:
//   - X increases right
//   - Y increases up (a clip window's bottom edge is its minimum y)
//   - 2D rotations take degrees, 3D rotations take radians, both
//     counter-clockwise / right-handed
//
// The render package flips Y when it maps world units to image rows.
//
// # Purity
//
// Everything in raster, clip and transform is a pure function over value
// types. Results are freshly allocated on every call and can be shared
// between goroutines once produced.
package rastergeom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
