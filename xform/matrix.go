package xform

import (
	"math"

	"github.com/cwbudde/algo-vector/scalar"
)

// Matrix3x2 is a 2D affine transform. The third row holds the translation.
type Matrix3x2[T scalar.Float] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

// Identity3x2 returns the identity transform.
func Identity3x2[T scalar.Float]() Matrix3x2[T] {
	return Matrix3x2[T]{M11: 1, M22: 1}
}

// Translation3x2 returns a translation by (x, y).
func Translation3x2[T scalar.Float](x, y T) Matrix3x2[T] {
	return Matrix3x2[T]{M11: 1, M22: 1, M31: x, M32: y}
}

// Scale3x2 returns a scale by (sx, sy) around the origin.
func Scale3x2[T scalar.Float](sx, sy T) Matrix3x2[T] {
	return Matrix3x2[T]{M11: sx, M22: sy}
}

// Rotation3x2 returns a counter-clockwise rotation by radians around the origin.
func Rotation3x2[T scalar.Float](radians T) Matrix3x2[T] {
	s, c := math.Sincos(float64(radians))
	return Matrix3x2[T]{M11: T(c), M12: T(s), M21: T(-s), M22: T(c)}
}

// Mul returns m*o: transforming by the result applies m first, then o.
func (m Matrix3x2[T]) Mul(o Matrix3x2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{
		M11: m.M11*o.M11 + m.M12*o.M21,
		M12: m.M11*o.M12 + m.M12*o.M22,
		M21: m.M21*o.M11 + m.M22*o.M21,
		M22: m.M21*o.M12 + m.M22*o.M22,
		M31: m.M31*o.M11 + m.M32*o.M21 + o.M31,
		M32: m.M31*o.M12 + m.M32*o.M22 + o.M32,
	}
}

// Matrix4x4 is a row-major 4x4 matrix.
type Matrix4x4[T scalar.Float] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Identity4x4 returns the identity matrix.
func Identity4x4[T scalar.Float]() Matrix4x4[T] {
	return Matrix4x4[T]{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Translation4x4 returns a translation by (x, y, z).
func Translation4x4[T scalar.Float](x, y, z T) Matrix4x4[T] {
	m := Identity4x4[T]()
	m.M41, m.M42, m.M43 = x, y, z
	return m
}

// Scale4x4 returns a scale by (sx, sy, sz) around the origin.
func Scale4x4[T scalar.Float](sx, sy, sz T) Matrix4x4[T] {
	return Matrix4x4[T]{M11: sx, M22: sy, M33: sz, M44: 1}
}

// RotationX returns a rotation by radians around the X axis.
func RotationX[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := math.Sincos(float64(radians))
	m := Identity4x4[T]()
	m.M22, m.M23 = T(c), T(s)
	m.M32, m.M33 = T(-s), T(c)
	return m
}

// RotationY returns a rotation by radians around the Y axis.
func RotationY[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := math.Sincos(float64(radians))
	m := Identity4x4[T]()
	m.M11, m.M13 = T(c), T(-s)
	m.M31, m.M33 = T(s), T(c)
	return m
}

// RotationZ returns a rotation by radians around the Z axis.
func RotationZ[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := math.Sincos(float64(radians))
	m := Identity4x4[T]()
	m.M11, m.M12 = T(c), T(s)
	m.M21, m.M22 = T(-s), T(c)
	return m
}

// RotationFromQuaternion returns the matrix that rotates row vectors the same
// way q does.
func RotationFromQuaternion[T scalar.Float](q Quaternion[T]) Matrix4x4[T] {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, xw := q.X*q.Y, q.X*q.Z, q.X*q.W
	yz, yw, zw := q.Y*q.Z, q.Y*q.W, q.Z*q.W

	m := Identity4x4[T]()
	m.M11 = 1 - 2*(yy+zz)
	m.M12 = 2 * (xy + zw)
	m.M13 = 2 * (xz - yw)
	m.M21 = 2 * (xy - zw)
	m.M22 = 1 - 2*(zz+xx)
	m.M23 = 2 * (yz + xw)
	m.M31 = 2 * (xz + yw)
	m.M32 = 2 * (yz - xw)
	m.M33 = 1 - 2*(yy+xx)
	return m
}

// Rows returns the matrix as a row-major array.
func (m Matrix4x4[T]) Rows() [4][4]T {
	return [4][4]T{
		{m.M11, m.M12, m.M13, m.M14},
		{m.M21, m.M22, m.M23, m.M24},
		{m.M31, m.M32, m.M33, m.M34},
		{m.M41, m.M42, m.M43, m.M44},
	}
}

// FromRows builds a matrix from a row-major array.
func FromRows[T scalar.Float](r [4][4]T) Matrix4x4[T] {
	return Matrix4x4[T]{
		M11: r[0][0], M12: r[0][1], M13: r[0][2], M14: r[0][3],
		M21: r[1][0], M22: r[1][1], M23: r[1][2], M24: r[1][3],
		M31: r[2][0], M32: r[2][1], M33: r[2][2], M34: r[2][3],
		M41: r[3][0], M42: r[3][1], M43: r[3][2], M44: r[3][3],
	}
}

// Mul returns m*o: transforming by the result applies m first, then o.
func (m Matrix4x4[T]) Mul(o Matrix4x4[T]) Matrix4x4[T] {
	a, b := m.Rows(), o.Rows()
	var r [4][4]T
	for i := range 4 {
		for j := range 4 {
			var sum T
			for k := range 4 {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return FromRows(r)
}
