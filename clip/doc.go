// Package clip classifies and clips 2D geometry against an axis-aligned
// rectangular window.
//
// The window is always passed explicitly as a [Window] value; there is no
// package-level clip state. The y axis points up, so the window's bottom
// edge is its minimum y. Points on the window boundary are inside.
//
// Three families of operations are provided:
//
//   - [ComputeOutCode] and [IsInside] classify single points
//   - [ClipSegment] implements Cohen-Sutherland segment clipping
//   - [BorderSegments] and [LineBorderSegments] find where a polygon or a
//     set of lines crosses the window boundary and pair the crossings on
//     each window edge into pieces of the boundary
package clip
