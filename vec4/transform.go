package vec4

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/xform"
)

// Transform returns v transformed by m.
func Transform[T scalar.Float](v Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	return Vec[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		W: v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// TransformPoint returns the homogeneous point (p, 1) transformed by m.
func TransformPoint[T scalar.Float](p vec3.Vec[T], m xform.Matrix4x4[T]) Vec[T] {
	return Transform(FromVec3(p), m)
}

// Rotate returns v with its XYZ part rotated by q. W is kept.
func Rotate[T scalar.Float](v Vec[T], q xform.Quaternion[T]) Vec[T] {
	return FromVec3W(vec3.Rotate(v.Vec3(), q), v.W)
}

// TransformSlice writes Transform(src[i], m) to dst[i]. dst may alias src.
func TransformSlice[T scalar.Float](dst, src []Vec[T], m xform.Matrix4x4[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec4: %w", err)
	}
	for i, v := range src {
		dst[i] = Transform(v, m)
	}
	return nil
}

// RotateSlice writes Rotate(src[i], q) to dst[i]. dst may alias src.
func RotateSlice[T scalar.Float](dst, src []Vec[T], q xform.Quaternion[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec4: %w", err)
	}
	for i, v := range src {
		dst[i] = Rotate(v, q)
	}
	return nil
}
