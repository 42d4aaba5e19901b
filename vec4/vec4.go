package vec4

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Size is the number of components in a [Vec].
const Size = 4

// Vec is a 4-component vector with components X, Y, Z, W at indices 0..3.
type Vec[T scalar.Number] struct {
	X, Y, Z, W T
}

// New returns (x, y, z, w).
func New[T scalar.Number](x, y, z, w T) Vec[T] {
	return Vec[T]{X: x, Y: y, Z: z, W: w}
}

// Splat returns (s, s, s, s).
func Splat[T scalar.Number](s T) Vec[T] {
	return Vec[T]{X: s, Y: s, Z: s, W: s}
}

// FromSlice returns the first four elements of s as a vector.
func FromSlice[T scalar.Number](s []T) (Vec[T], error) {
	if err := scalar.CheckLength(s, Size); err != nil {
		return Vec[T]{}, fmt.Errorf("vec4: %w", err)
	}
	return Vec[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// FromArray returns (a[0], a[1], a[2], a[3]).
func FromArray[T scalar.Number](a [Size]T) Vec[T] {
	return Vec[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Zero returns (0, 0, 0, 0).
func Zero[T scalar.Number]() Vec[T] { return Vec[T]{} }

// One returns (1, 1, 1, 1).
func One[T scalar.Number]() Vec[T] { return Vec[T]{X: 1, Y: 1, Z: 1, W: 1} }

// UnitX returns (1, 0, 0, 0).
func UnitX[T scalar.Number]() Vec[T] { return Vec[T]{X: 1} }

// UnitY returns (0, 1, 0, 0).
func UnitY[T scalar.Number]() Vec[T] { return Vec[T]{Y: 1} }

// UnitZ returns (0, 0, 1, 0).
func UnitZ[T scalar.Number]() Vec[T] { return Vec[T]{Z: 1} }

// UnitW returns (0, 0, 0, 1).
func UnitW[T scalar.Number]() Vec[T] { return Vec[T]{W: 1} }

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
	case 3:
		return v.W, nil
	}
	var zero T
	return zero, fmt.Errorf("vec4: %w", scalar.CheckIndex(i, Size))
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
	case 3:
		v.W = x
	default:
		return fmt.Errorf("vec4: %w", scalar.CheckIndex(i, Size))
	}
	return nil
}

// Array returns the components in index order.
func (v Vec[T]) Array() [Size]T {
	return [Size]T{v.X, v.Y, v.Z, v.W}
}

// Unpack returns the components as separate values.
func (v Vec[T]) Unpack() (x, y, z, w T) {
	return v.X, v.Y, v.Z, v.W
}

// AppendTo appends the components to dst and returns the extended slice.
func (v Vec[T]) AppendTo(dst []T) []T {
	return append(dst, v.X, v.Y, v.Z, v.W)
}

// CopyTo writes the components to dst[0:4].
func (v Vec[T]) CopyTo(dst []T) error {
	if err := scalar.CheckLength(dst, Size); err != nil {
		return fmt.Errorf("vec4: %w", err)
	}
	dst[0], dst[1], dst[2], dst[3] = v.X, v.Y, v.Z, v.W
	return nil
}

// Flatten writes src as interleaved components to dst.
func Flatten[T scalar.Number](dst []T, src []Vec[T]) error {
	if src == nil {
		return fmt.Errorf("vec4: %w: nil source", scalar.ErrInvalidArgument)
	}
	if err := scalar.CheckLength(dst, Size*len(src)); err != nil {
		return fmt.Errorf("vec4: %w", err)
	}
	for i, v := range src {
		o := Size * i
		dst[o], dst[o+1], dst[o+2], dst[o+3] = v.X, v.Y, v.Z, v.W
	}
	return nil
}

// Unflatten reads interleaved components from src into dst and returns the
// number of vectors written.
func Unflatten[T scalar.Number](dst []Vec[T], src []T) (int, error) {
	if src == nil || dst == nil {
		return 0, fmt.Errorf("vec4: %w: nil slice", scalar.ErrInvalidArgument)
	}
	n := len(src) / Size
	if len(dst) < n {
		return 0, fmt.Errorf("vec4: %w: destination holds %d vectors, source %d",
			scalar.ErrInvalidArgument, len(dst), n)
	}
	for i := range n {
		o := Size * i
		dst[i] = Vec[T]{X: src[o], Y: src[o+1], Z: src[o+2], W: src[o+3]}
	}
	return n, nil
}

// Equals reports exact componentwise equality.
func (v Vec[T]) Equals(o Vec[T]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

// Hash returns an order-sensitive hash consistent with Equals.
func (v Vec[T]) Hash() uint64 {
	return scalar.Hash(v.X, v.Y, v.Z, v.W)
}

// String returns "X:x Y:y Z:z W:w".
func (v Vec[T]) String() string {
	return scalar.FormatVector(v.X, v.Y, v.Z, v.W)
}

// Format implements fmt.Formatter with per-component verbs.
func (v Vec[T]) Format(f fmt.State, verb rune) {
	scalar.WriteFormatted(f, verb, v.X, v.Y, v.Z, v.W)
}
