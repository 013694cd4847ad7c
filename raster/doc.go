// Package raster scan-converts lines, circles and ellipses into integer
// pixel positions.
//
// Every function returns a freshly allocated slice of points whose
// coordinates are whole numbers (rounded half away from zero). The slice
// order is the generation order of the algorithm, which callers use as draw
// order. Both endpoints of a line and all extrema of a conic are included.
//
// Non-finite parameters produce a nil slice, as do coordinates, radii or
// line spans whose magnitude exceeds 1<<24. Radius handling:
//
//   - a negative radius is rejected (nil)
//   - MidpointCircle with radius 0 returns the centre
//   - MidpointEllipse with one zero radius returns the flat ellipse as a
//     Bresenham segment between its extrema; with both radii 0 it returns
//     the centre
//
// The conic rasterizers emit every symmetric image of each generated
// octant/quadrant point, so points on the axes can appear more than once.
package raster
