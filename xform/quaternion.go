package xform

import (
	"math"

	"github.com/cwbudde/algo-vector/scalar"
)

// Quaternion is a rotation quaternion with vector part (X, Y, Z) and scalar
// part W.
type Quaternion[T scalar.Float] struct {
	X, Y, Z, W T
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged.
func IdentityQuaternion[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// QuaternionFromAxisAngle returns the rotation of angle radians around the
// unit axis (x, y, z).
func QuaternionFromAxisAngle[T scalar.Float](x, y, z, angle T) Quaternion[T] {
	half := float64(angle) / 2
	s := T(math.Sin(half))
	return Quaternion[T]{X: x * s, Y: y * s, Z: z * s, W: T(math.Cos(half))}
}

// Mul returns the Hamilton product q*p. Rotating by the product applies p
// first, then q.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// Conjugate returns (-X, -Y, -Z, W), the inverse of a unit quaternion.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the Euclidean norm of q.
func (q Quaternion[T]) Length() T {
	return scalar.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length. A zero quaternion is returned
// unchanged.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	l := q.Length()
	if l == 0 {
		return q
	}
	inv := 1 / l
	return Quaternion[T]{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}
