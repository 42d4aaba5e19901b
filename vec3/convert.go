package vec3

import (
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
)

// Convert returns v with each component converted to U using Go's native
// numeric conversion.
func Convert[U, T scalar.Number](v Vec[T]) Vec[U] {
	return Vec[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// FromVec2 widens v to (v.X, v.Y, 1).
func FromVec2[T scalar.Number](v vec2.Vec[T]) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: 1}
}

// FromVec2Z widens v to (v.X, v.Y, z).
func FromVec2Z[T scalar.Number](v vec2.Vec[T], z T) Vec[T] {
	return Vec[T]{X: v.X, Y: v.Y, Z: z}
}

// Vec2 drops Z.
func (v Vec[T]) Vec2() vec2.Vec[T] {
	return vec2.Vec[T]{X: v.X, Y: v.Y}
}
