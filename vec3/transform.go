package vec3

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/xform"
)

// Transform returns the point v transformed by m, translation included.
func Transform[T scalar.Float](v Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal returns the direction v transformed by m, ignoring
// translation.
func TransformNormal[T scalar.Float](v Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// TransformCoordinate transforms the point (v, 1) by m and projects the
// result back to w = 1.
func TransformCoordinate[T scalar.Float](v Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	w := v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + m.M44
	return QuoScalar(Transform(v, m), w)
}

// Rotate returns v rotated by the unit quaternion q.
func Rotate[T scalar.Float](v Vec[T], q xform.Quaternion[T]) Vec[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2, zz2 := q.Y*y2, q.Y*z2, q.Z*z2

	return Vec[T]{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		Z: v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

// TransformSlice writes Transform(src[i], m) to dst[i]. dst may alias src.
func TransformSlice[T scalar.Float](dst, src []Vec[T], m xform.Matrix4x4[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	for i, v := range src {
		dst[i] = Transform(v, m)
	}
	return nil
}

// RotateSlice writes Rotate(src[i], q) to dst[i]. dst may alias src.
func RotateSlice[T scalar.Float](dst, src []Vec[T], q xform.Quaternion[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	for i, v := range src {
		dst[i] = Rotate(v, q)
	}
	return nil
}
