package vec3

import (
	"math"

	"github.com/cwbudde/algo-vector/scalar"
)

// Dot returns the sum of the componentwise products in T's arithmetic.
func (v Vec[T]) Dot(o Vec[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns v.Dot(v).
func (v Vec[T]) LengthSquared() T { return v.Dot(v) }

// DistanceSquared returns (v - o).LengthSquared().
func (v Vec[T]) DistanceSquared(o Vec[T]) T { return v.Sub(o).LengthSquared() }

// Reflect returns v - 2*Dot(v, n)*n.
func (v Vec[T]) Reflect(n Vec[T]) Vec[T] {
	d := 2 * v.Dot(n)
	return v.Sub(n.MulScalar(d))
}

// Clamp returns v with each component limited to [lo, hi].
func (v Vec[T]) Clamp(lo, hi Vec[T]) Vec[T] {
	return Vec[T]{
		X: scalar.Clamp(v.X, lo.X, hi.X),
		Y: scalar.Clamp(v.Y, lo.Y, hi.Y),
		Z: scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// ClampScalar returns v with each component limited to [lo, hi].
func (v Vec[T]) ClampScalar(lo, hi T) Vec[T] { return v.Clamp(Splat(lo), Splat(hi)) }

// ClampInPlace limits each component of v to [lo, hi].
func (v *Vec[T]) ClampInPlace(lo, hi Vec[T]) { *v = v.Clamp(lo, hi) }

// Min returns the componentwise minimum.
func Min[T scalar.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{X: scalar.Min(a.X, b.X), Y: scalar.Min(a.Y, b.Y), Z: scalar.Min(a.Z, b.Z)}
}

// Max returns the componentwise maximum.
func Max[T scalar.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{X: scalar.Max(a.X, b.X), Y: scalar.Max(a.Y, b.Y), Z: scalar.Max(a.Z, b.Z)}
}

// Abs returns the componentwise absolute value.
func Abs[T scalar.Signed](v Vec[T]) Vec[T] {
	return Vec[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z)}
}

// Cross returns the right-handed cross product a × b.
func Cross[T scalar.Number](a, b Vec[T]) Vec[T] {
	return Vec[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of v.
func Length[T scalar.Float](v Vec[T]) T { return scalar.Sqrt(v.LengthSquared()) }

// Distance returns the Euclidean distance between a and b.
func Distance[T scalar.Float](a, b Vec[T]) T { return scalar.Sqrt(a.DistanceSquared(b)) }

// Normalize returns v divided by its length, or the zero vector when the
// length is exactly zero.
func Normalize[T scalar.Float](v Vec[T]) Vec[T] { return NormalizeFallback(v, true) }

// NormalizeFallback returns v divided by its length. A zero-length v yields
// the zero vector if allowZero is set, and the unit Z axis otherwise.
func NormalizeFallback[T scalar.Float](v Vec[T], allowZero bool) Vec[T] {
	l := Length(v)
	if l != 0 {
		return Vec[T]{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
	}
	if allowZero {
		return Vec[T]{}
	}
	return UnitZ[T]()
}

// NormalizeInPlace replaces v with Normalize(v).
func NormalizeInPlace[T scalar.Float](v *Vec[T]) { *v = Normalize(*v) }

// NearlyEqual reports whether every component pair is equal within eps.
func NearlyEqual[T scalar.Float](a, b Vec[T], eps T) bool {
	return scalar.NearlyEqual(a.X, b.X, eps) &&
		scalar.NearlyEqual(a.Y, b.Y, eps) &&
		scalar.NearlyEqual(a.Z, b.Z, eps)
}

func apply[T scalar.Float](v Vec[T], fn func(float64) float64) Vec[T] {
	return Vec[T]{X: T(fn(float64(v.X))), Y: T(fn(float64(v.Y))), Z: T(fn(float64(v.Z)))}
}

// Floor rounds each component toward negative infinity.
func Floor[T scalar.Float](v Vec[T]) Vec[T] { return apply(v, math.Floor) }

// FloorInPlace replaces v with Floor(v).
func FloorInPlace[T scalar.Float](v *Vec[T]) { *v = Floor(*v) }

// Ceil rounds each component toward positive infinity.
func Ceil[T scalar.Float](v Vec[T]) Vec[T] { return apply(v, math.Ceil) }

// Round rounds each component to the nearest integer, halves away from zero.
func Round[T scalar.Float](v Vec[T]) Vec[T] { return apply(v, math.Round) }

// Saturate clamps each component to [0, 1].
func Saturate[T scalar.Float](v Vec[T]) Vec[T] { return v.ClampScalar(0, 1) }
