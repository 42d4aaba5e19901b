package vec4

import (
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
)

// Convert returns v with each component converted to U using Go's native
// numeric conversion.
func Convert[U, T scalar.Number](v Vec[T]) Vec[U] {
	return Vec[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

// FromVec2 widens v to (v.X, v.Y, 1, 1).
func FromVec2[T scalar.Number](v vec2.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: 1, W: 1}
}

// FromVec2ZW widens v to (v.X, v.Y, z, w).
func FromVec2ZW[T scalar.Number](v vec2.Vec[T], z, w T) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: z, W: w}
}

// FromVec3 widens v to (v.X, v.Y, v.Z, 1).
func FromVec3[T scalar.Number](v vec3.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// FromVec3W widens v to (v.X, v.Y, v.Z, w).
func FromVec3W[T scalar.Number](v vec3.Vec[T], w T) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec2 drops Z and W.
func (v Vec[T]) Vec2() vec2.Vec[T] {
	return vec2.Vec[T]{X: v.X, Y: v.Y}
}

// Vec3 drops W.
func (v Vec[T]) Vec3() vec3.Vec[T] {
	return vec3.Vec[T]{X: v.X, Y: v.Y, Z: v.Z}
}
