package vec4

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Add returns v + o.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v - o.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Mul returns the componentwise product.
func (v Vec[T]) Mul(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z, W: v.W * o.W}
}

// Div returns the componentwise quotient, failing with
// scalar.ErrDivisionByZero on an integer zero divisor.
func (v Vec[T]) Div(o Vec[T]) (Vec[T], error) {
	a, b := v.Array(), o.Array()
	var r [Size]T
	for i := range r {
		q, err := scalar.Div(a[i], b[i])
		if err != nil {
			return Vec[T]{}, fmt.Errorf("vec4: component %d: %w", i, err)
		}
		r[i] = q
	}
	return FromArray(r), nil
}

// AddScalar returns v + s per component.
func (v Vec[T]) AddScalar(s T) Vec[T] { return v.Add(Splat(s)) }

// SubScalar returns v - s per component.
func (v Vec[T]) SubScalar(s T) Vec[T] { return v.Sub(Splat(s)) }

// MulScalar returns v scaled by s.
func (v Vec[T]) MulScalar(s T) Vec[T] {
	return Vec[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v divided by s.
func (v Vec[T]) DivScalar(s T) (Vec[T], error) { return v.Div(Splat(s)) }

// ScalarAdd returns s + v per component.
func ScalarAdd[T scalar.Number](s T, v Vec[T]) Vec[T] { return Splat(s).Add(v) }

// ScalarSub returns s - v per component.
func ScalarSub[T scalar.Number](s T, v Vec[T]) Vec[T] { return Splat(s).Sub(v) }

// ScalarMul returns s * v per component.
func ScalarMul[T scalar.Number](s T, v Vec[T]) Vec[T] { return Splat(s).Mul(v) }

// ScalarDiv returns s / v per component.
func ScalarDiv[T scalar.Number](s T, v Vec[T]) (Vec[T], error) { return Splat(s).Div(v) }

// AddSaturate returns v + o clamped to T's range.
func (v Vec[T]) AddSaturate(o Vec[T]) Vec[T] {
	return Vec[T]{
		X: scalar.AddSat(v.X, o.X),
		Y: scalar.AddSat(v.Y, o.Y),
		Z: scalar.AddSat(v.Z, o.Z),
		W: scalar.AddSat(v.W, o.W),
	}
}

// SubSaturate returns v - o clamped to T's range.
func (v Vec[T]) SubSaturate(o Vec[T]) Vec[T] {
	return Vec[T]{
		X: scalar.SubSat(v.X, o.X),
		Y: scalar.SubSat(v.Y, o.Y),
		Z: scalar.SubSat(v.Z, o.Z),
		W: scalar.SubSat(v.W, o.W),
	}
}

// Negate returns 0 - v.
func Negate[T scalar.Signed](v Vec[T]) Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Quo returns the componentwise IEEE quotient.
func Quo[T scalar.Float](v, o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X / o.X, Y: v.Y / o.Y, Z: v.Z / o.Z, W: v.W / o.W}
}

// QuoScalar returns v divided by s using IEEE division.
func QuoScalar[T scalar.Float](v Vec[T], s T) Vec[T] {
	return Vec[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}
