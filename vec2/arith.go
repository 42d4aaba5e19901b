package vec2

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Add returns v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the componentwise product of v and o.
func (v Vec[T]) Mul(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the componentwise quotient of v and o. For integer kinds a zero
// component in o fails with scalar.ErrDivisionByZero and the zero vector.
func (v Vec[T]) Div(o Vec[T]) (Vec[T], error) {
	x, err := scalar.Div(v.X, o.X)
	if err != nil {
		return Vec[T]{}, fmt.Errorf("vec2: X: %w", err)
	}
	y, err := scalar.Div(v.Y, o.Y)
	if err != nil {
		return Vec[T]{}, fmt.Errorf("vec2: Y: %w", err)
	}
	return Vec[T]{X: x, Y: y}, nil
}

// AddScalar returns v + (s, s).
func (v Vec[T]) AddScalar(s T) Vec[T] {
	return Vec[T]{X: v.X + s, Y: v.Y + s}
}

// SubScalar returns v - (s, s).
func (v Vec[T]) SubScalar(s T) Vec[T] {
	return Vec[T]{X: v.X - s, Y: v.Y - s}
}

// MulScalar returns v scaled by s.
func (v Vec[T]) MulScalar(s T) Vec[T] {
	return Vec[T]{X: v.X * s, Y: v.Y * s}
}

// DivScalar returns v divided by s.
func (v Vec[T]) DivScalar(s T) (Vec[T], error) {
	return v.Div(Splat(s))
}

// ScalarAdd returns (s, s) + v.
func ScalarAdd[T scalar.Number](s T, v Vec[T]) Vec[T] {
	return Splat(s).Add(v)
}

// ScalarSub returns (s, s) - v.
func ScalarSub[T scalar.Number](s T, v Vec[T]) Vec[T] {
	return Splat(s).Sub(v)
}

// ScalarMul returns (s, s) * v.
func ScalarMul[T scalar.Number](s T, v Vec[T]) Vec[T] {
	return Splat(s).Mul(v)
}

// ScalarDiv returns (s, s) / v.
func ScalarDiv[T scalar.Number](s T, v Vec[T]) (Vec[T], error) {
	return Splat(s).Div(v)
}

// AddSaturate returns v + o with each component clamped to T's range.
func (v Vec[T]) AddSaturate(o Vec[T]) Vec[T] {
	return Vec[T]{X: scalar.AddSat(v.X, o.X), Y: scalar.AddSat(v.Y, o.Y)}
}

// SubSaturate returns v - o with each component clamped to T's range.
func (v Vec[T]) SubSaturate(o Vec[T]) Vec[T] {
	return Vec[T]{X: scalar.SubSat(v.X, o.X), Y: scalar.SubSat(v.Y, o.Y)}
}

// Negate returns 0 - v.
func Negate[T scalar.Signed](v Vec[T]) Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

// Quo returns the componentwise IEEE quotient of v and o.
func Quo[T scalar.Float](v, o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X / o.X, Y: v.Y / o.Y}
}

// QuoScalar returns v divided by s using IEEE division.
func QuoScalar[T scalar.Float](v Vec[T], s T) Vec[T] {
	return Vec[T]{X: v.X / s, Y: v.Y / s}
}
