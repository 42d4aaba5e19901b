package vec3

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Size is the number of components in a [Vec].
const Size = 3

// Vec is a 3-component vector with components X, Y, Z at indices 0, 1, 2.
type Vec[T scalar.Number] struct {
	X, Y, Z T
}

// New returns (x, y, z).
func New[T scalar.Number](x, y, z T) Vec[T] {
	return Vec[T]{X: x, Y: y, Z: z}
}

// Splat returns (s, s, s).
func Splat[T scalar.Number](s T) Vec[T] {
	return Vec[T]{X: s, Y: s, Z: s}
}

// FromSlice returns the first three elements of s as a vector. It fails
// with scalar.ErrInvalidArgument if s is nil or too short.
func FromSlice[T scalar.Number](s []T) (Vec[T], error) {
	if err := scalar.CheckLength(s, Size); err != nil {
		return Vec[T]{}, fmt.Errorf("vec3: %w", err)
	}
	return Vec[T]{X: s[0], Y: s[1], Z: s[2]}, nil
}

// FromArray returns (a[0], a[1], a[2]).
func FromArray[T scalar.Number](a [Size]T) Vec[T] {
	return Vec[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Zero returns (0, 0, 0).
func Zero[T scalar.Number]() Vec[T] { return Vec[T]{} }

// One returns (1, 1, 1).
func One[T scalar.Number]() Vec[T] { return Vec[T]{X: 1, Y: 1, Z: 1} }

// UnitX returns (1, 0, 0).
func UnitX[T scalar.Number]() Vec[T] { return Vec[T]{X: 1} }

// UnitY returns (0, 1, 0).
func UnitY[T scalar.Number]() Vec[T] { return Vec[T]{Y: 1} }

// UnitZ returns (0, 0, 1).
func UnitZ[T scalar.Number]() Vec[T] { return Vec[T]{Z: 1} }

// Len returns the number of components.
func (v Vec[T]) Len() int { return Size }

// At returns component i.
func (v Vec[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	var zero T
	return zero, fmt.Errorf("vec3: %w", scalar.CheckIndex(i, Size))
}

// Set replaces component i with x.
func (v *Vec[T]) Set(i int, x T) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		return fmt.Errorf("vec3: %w", scalar.CheckIndex(i, Size))
	}
	return nil
}

// Array returns the components in index order.
func (v Vec[T]) Array() [Size]T {
	return [Size]T{v.X, v.Y, v.Z}
}

// Unpack returns the components as separate values.
func (v Vec[T]) Unpack() (x, y, z T) {
	return v.X, v.Y, v.Z
}

// AppendTo appends the components to dst and returns the extended slice.
func (v Vec[T]) AppendTo(dst []T) []T {
	return append(dst, v.X, v.Y, v.Z)
}

// CopyTo writes the components to dst[0:3].
func (v Vec[T]) CopyTo(dst []T) error {
	if err := scalar.CheckLength(dst, Size); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	return nil
}

// Flatten writes src as interleaved components (x0, y0, z0, x1, ...) to dst.
func Flatten[T scalar.Number](dst []T, src []Vec[T]) error {
	if src == nil {
		return fmt.Errorf("vec3: %w: nil source", scalar.ErrInvalidArgument)
	}
	if err := scalar.CheckLength(dst, Size*len(src)); err != nil {
		return fmt.Errorf("vec3: %w", err)
	}
	for i, v := range src {
		o := Size * i
		dst[o], dst[o+1], dst[o+2] = v.X, v.Y, v.Z
	}
	return nil
}

// Unflatten reads interleaved components from src into dst and returns the
// number of vectors written. A trailing partial vector in src is ignored.
func Unflatten[T scalar.Number](dst []Vec[T], src []T) (int, error) {
	if src == nil || dst == nil {
		return 0, fmt.Errorf("vec3: %w: nil slice", scalar.ErrInvalidArgument)
	}
	n := len(src) / Size
	if len(dst) < n {
		return 0, fmt.Errorf("vec3: %w: destination holds %d vectors, source %d",
			scalar.ErrInvalidArgument, len(dst), n)
	}
	for i := range n {
		o := Size * i
		dst[i] = Vec[T]{X: src[o], Y: src[o+1], Z: src[o+2]}
	}
	return n, nil
}

// Equals reports exact componentwise equality.
func (v Vec[T]) Equals(o Vec[T]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Hash returns an order-sensitive hash consistent with Equals.
func (v Vec[T]) Hash() uint64 {
	return scalar.Hash(v.X, v.Y, v.Z)
}

// String returns "X:x Y:y Z:z".
func (v Vec[T]) String() string {
	return scalar.FormatVector(v.X, v.Y, v.Z)
}

// Format implements fmt.Formatter with per-component verbs.
func (v Vec[T]) Format(f fmt.State, verb rune) {
	scalar.WriteFormatted(f, verb, v.X, v.Y, v.Z)
}
