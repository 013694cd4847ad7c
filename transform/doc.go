// Package transform builds and composes affine and projective
// transformation matrices.
//
// [Matrix3] holds 2D transforms in homogeneous coordinates and [Matrix4]
// holds 3D ones. Both are row-major arrays used with column vectors:
// a point p is transformed as M·p, so the translation lives in the last
// column. Use ColumnMajor to obtain the layout GPU uniforms expect.
//
// Matrices are values. Every constructor and every Mul returns a new
// matrix; nothing is modified in place. Note that the zero value is the
// zero matrix, not the identity: start chains from [Identity3] or
// [Identity4].
//
// # Composition order
//
// Matrix multiplication is associative but not commutative. In
//
//	m := transform.Compose3(transform.Translate2D(5, 0), transform.Rotate2D(90))
//
// the rotation is applied first and the translation second: the
// first-applied transform is the right-most factor.
package transform
