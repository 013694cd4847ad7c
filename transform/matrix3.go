package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/rastergeom"
)

// Matrix3 is a 3x3 row-major matrix acting on 2D homogeneous coordinates:
//
//	| m[0] m[1] m[2] |   | x |
//	| m[3] m[4] m[5] | · | y |
//	| m[6] m[7] m[8] |   | 1 |
type Matrix3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate2D creates a translation matrix.
func Translate2D(tx, ty float64) Matrix3 {
	return Matrix3{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

// Rotate2D creates a counter-clockwise rotation about the origin.
// The angle is in degrees.
func Rotate2D(degrees float64) Matrix3 {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Matrix3{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Scale2D creates a scaling matrix about the origin.
func Scale2D(sx, sy float64) Matrix3 {
	return Matrix3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Shear2D creates a shear matrix: x' = x + shx·y, y' = shy·x + y.
func Shear2D(shx, shy float64) Matrix3 {
	return Matrix3{
		1, shx, 0,
		shy, 1, 0,
		0, 0, 1,
	}
}

// Reflection names one of the fixed 2D reflections.
type Reflection uint8

// Supported reflections.
const (
	ReflectX            Reflection = iota + 1 // about the x axis
	ReflectY                                  // about the y axis
	ReflectOrigin                             // through the origin
	ReflectDiagonal                           // about the line y = x
	ReflectAntiDiagonal                       // about the line y = -x
)

// String returns the reflection name as accepted by ParseReflection.
func (r Reflection) String() string {
	switch r {
	case ReflectX:
		return "x"
	case ReflectY:
		return "y"
	case ReflectOrigin:
		return "origin"
	case ReflectDiagonal:
		return "y=x"
	case ReflectAntiDiagonal:
		return "y=-x"
	default:
		return fmt.Sprintf("Reflection(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the defined reflections.
func (r Reflection) Valid() bool {
	return r >= ReflectX && r <= ReflectAntiDiagonal
}

// Reflect2D returns the matrix of a fixed reflection.
// An undefined Reflection yields the identity.
func Reflect2D(r Reflection) Matrix3 {
	switch r {
	case ReflectX:
		return Matrix3{
			1, 0, 0,
			0, -1, 0,
			0, 0, 1,
		}
	case ReflectY:
		return Matrix3{
			-1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}
	case ReflectOrigin:
		return Matrix3{
			-1, 0, 0,
			0, -1, 0,
			0, 0, 1,
		}
	case ReflectDiagonal:
		return Matrix3{
			0, 1, 0,
			1, 0, 0,
			0, 0, 1,
		}
	case ReflectAntiDiagonal:
		return Matrix3{
			0, -1, 0,
			-1, 0, 0,
			0, 0, 1,
		}
	default:
		return Identity3()
	}
}

// Mul returns the product m·n. Applied to a point, n acts first.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[row*3+k] * n[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

// Compose3 multiplies the matrices left to right: Compose3(a, b, c) is
// a·b·c, so c is applied first. With no arguments it returns the identity.
func Compose3(ms ...Matrix3) Matrix3 {
	r := Identity3()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// At returns the element at the given row and column.
func (m Matrix3) At(row, col int) float64 {
	return m[row*3+col]
}

// TransformPoint applies the matrix to p. For a projective matrix the
// result is divided by the homogeneous coordinate when it is non-zero.
func (m Matrix3) TransformPoint(p rastergeom.Point) rastergeom.Point {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	w := m[6]*p.X + m[7]*p.Y + m[8]
	if w != 0 && w != 1 {
		return rastergeom.Pt(x/w, y/w)
	}
	return rastergeom.Pt(x, y)
}

// TransformPoints applies the matrix to every point and returns a new slice.
func (m Matrix3) TransformPoints(ps []rastergeom.Point) []rastergeom.Point {
	out := make([]rastergeom.Point, len(ps))
	for i, p := range ps {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m Matrix3) ApproxEqual(n Matrix3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the matrix is exactly the identity.
func (m Matrix3) IsIdentity() bool {
	return m == Identity3()
}

// ColumnMajor returns the matrix as float32 values in column-major order,
// the layout of a GLSL/WGSL mat3 uniform.
func (m Matrix3) ColumnMajor() [9]float32 {
	var out [9]float32
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[col*3+row] = float32(m[row*3+col])
		}
	}
	return out
}

// String formats the matrix one row per line.
func (m Matrix3) String() string {
	return fmt.Sprintf("[%g %g %g]\n[%g %g %g]\n[%g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
