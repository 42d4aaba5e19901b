package vec2

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/xform"
)

// Transform returns the point v transformed by m, translation included.
func Transform[T scalar.Float](v Vec[T], m xform.Matrix3x2[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21 + m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// TransformNormal returns the direction v transformed by m, ignoring the
// translation row.
func TransformNormal[T scalar.Float](v Vec[T], m xform.Matrix3x2[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformMatrix4x4 returns the point (v.X, v.Y, 0, 1) transformed by m,
// keeping X and Y.
func TransformMatrix4x4[T scalar.Float](v Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// Rotate returns v rotated by q as the vector (v.X, v.Y, 0), keeping X and Y.
func Rotate[T scalar.Float](v Vec[T], q xform.Quaternion[T]) Vec[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	yy2 := q.Y * y2
	zz2 := q.Z * z2

	return Vec[T]{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2),
	}
}

// TransformSlice writes Transform(src[i], m) to dst[i]. dst may alias src.
func TransformSlice[T scalar.Float](dst, src []Vec[T], m xform.Matrix3x2[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	for i, v := range src {
		dst[i] = Transform(v, m)
	}
	return nil
}

// RotateSlice writes Rotate(src[i], q) to dst[i]. dst may alias src.
func RotateSlice[T scalar.Float](dst, src []Vec[T], q xform.Quaternion[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	for i, v := range src {
		dst[i] = Rotate(v, q)
	}
	return nil
}
