package clip

import (
	"strings"

	"github.com/gogpu/rastergeom"
)

// OutCode is the Cohen-Sutherland region code of a point: the set of
// window half-planes the point violates.
type OutCode uint8

// Outcode bits. Left/Right and Bottom/Top are never set together.
const (
	Inside OutCode = 0
	Left   OutCode = 1
	Right  OutCode = 2
	Bottom OutCode = 4
	Top    OutCode = 8
)

// ComputeOutCode returns the outcode of p relative to w.
// A point on the boundary is inside for that axis.
func ComputeOutCode(p rastergeom.Point, w Window) OutCode {
	code := Inside

	if p.X < w.XMin {
		code |= Left
	} else if p.X > w.XMax {
		code |= Right
	}

	if p.Y < w.YMin {
		code |= Bottom
	} else if p.Y > w.YMax {
		code |= Top
	}

	return code
}

// Has reports whether all bits of flag are set in c.
func (c OutCode) Has(flag OutCode) bool {
	return c&flag == flag
}

// String returns the set bits joined by "|", or "INSIDE".
func (c OutCode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, b := range []struct {
		bit  OutCode
		name string
	}{{Left, "LEFT"}, {Right, "RIGHT"}, {Bottom, "BOTTOM"}, {Top, "TOP"}} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}
