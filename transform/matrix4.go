package transform

import (
	"fmt"
	"math"
)

// Matrix4 is a 4x4 row-major matrix acting on 3D homogeneous coordinates.
// Element (row, col) is m[row*4+col]; the translation is m[3], m[7], m[11].
type Matrix4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3D creates a translation matrix.
func Translate3D(tx, ty, tz float64) Matrix4 {
	return Matrix4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// Scale3D creates a scaling matrix about the origin.
func Scale3D(sx, sy, sz float64) Matrix4 {
	return Matrix4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// RotateX creates a right-handed rotation about the x axis (radians).
func RotateX(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a right-handed rotation about the y axis (radians).
func RotateY(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a right-handed rotation about the z axis (radians).
func RotateZ(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Shear holds the six independent 3D shear coefficients. The first
// letter names the coordinate that changes and the second the coordinate
// it is sheared by: XY adds XY·y to x.
type Shear struct {
	XY, XZ float64
	YX, YZ float64
	ZX, ZY float64
}

// Shear3D creates a general shear matrix.
func Shear3D(s Shear) Matrix4 {
	return Matrix4{
		1, s.XY, s.XZ, 0,
		s.YX, 1, s.YZ, 0,
		s.ZX, s.ZY, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective creates a symmetric-frustum perspective projection.
// fovY is the vertical field of view in radians, aspect is width/height,
// and near/far are the positive distances to the clip planes. The result
// maps the view frustum to the OpenGL clip cube: z = -near goes to
// NDC depth -1 and z = -far to +1 after the divide by w.
func Perspective(fovY, aspect, near, far float64) Matrix4 {
	f := 1 / math.Tan(fovY/2)
	depth := near - far
	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / depth, 2 * far * near / depth,
		0, 0, -1, 0,
	}
}

// LookAt creates a view matrix for a camera at eye looking at target.
//
// The camera basis is forward = normalize(target - eye),
// right = normalize(forward × up) and up' = right × forward. The view
// looks down -Z, so eye maps to the origin and target onto the negative
// z axis. A degenerate basis (eye == target, or up parallel to the view
// direction) yields zero rows rather than NaN.
func LookAt(eye, target, up Vec3) Matrix4 {
	f := target.Sub(eye).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f)
	return Matrix4{
		r.X, r.Y, r.Z, -r.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Mul returns the product m·n. Applied to a point, n acts first.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * n[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// Compose4 multiplies the matrices left to right: Compose4(p, v, m) is
// p·v·m, the usual projection·view·model order. With no arguments it
// returns the identity.
func Compose4(ms ...Matrix4) Matrix4 {
	r := Identity4()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float64 {
	return m[row*4+col]
}

// MulVec4 multiplies the matrix by the homogeneous column vector
// (x, y, z, w).
func (m Matrix4) MulVec4(x, y, z, w float64) (rx, ry, rz, rw float64) {
	rx = m[0]*x + m[1]*y + m[2]*z + m[3]*w
	ry = m[4]*x + m[5]*y + m[6]*z + m[7]*w
	rz = m[8]*x + m[9]*y + m[10]*z + m[11]*w
	rw = m[12]*x + m[13]*y + m[14]*z + m[15]*w
	return rx, ry, rz, rw
}

// TransformPoint applies the matrix to v with w = 1 and drops the
// resulting w. It performs no perspective divide.
func (m Matrix4) TransformPoint(v Vec3) Vec3 {
	x, y, z, _ := m.MulVec4(v.X, v.Y, v.Z, 1)
	return Vec3{X: x, Y: y, Z: z}
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m Matrix4) ApproxEqual(n Matrix4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}

// IsIdentity returns true if the matrix is exactly the identity.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// ColumnMajor returns the matrix as float32 values in column-major order,
// the layout of a GLSL/WGSL mat4 uniform.
func (m Matrix4) ColumnMajor() [16]float32 {
	var out [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = float32(m[row*4+col])
		}
	}
	return out
}

// String formats the matrix one row per line.
func (m Matrix4) String() string {
	return fmt.Sprintf("[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
